package utils

import "testing"

func TestFormatPKR(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Rs 0"},
		{950, "Rs 950"},
		{76500, "Rs 76,500"},
		{1250000, "Rs 1,250,000"},
		{-42000, "-Rs 42,000"},
	}
	for _, c := range cases {
		if got := FormatPKR(c.in); got != c.want {
			t.Fatalf("FormatPKR(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParsePKR(t *testing.T) {
	for _, c := range []struct {
		in   string
		want int64
	}{
		{"Rs 76,500", 76500},
		{"76500", 76500},
		{"rs 1,250,000", 1250000},
	} {
		got, err := ParsePKR(c.in)
		if err != nil {
			t.Fatalf("ParsePKR(%q) error: %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParsePKR(%q) = %d, want %d", c.in, got, c.want)
		}
	}
	if _, err := ParsePKR("  "); err == nil {
		t.Fatalf("blank input must error")
	}
}
