package domain

import (
	"testing"
	"time"
)

func TestRunningBalancesFold(t *testing.T) {
	got := RunningBalances(0, []int64{5000, -1000, 2000, -6000})
	want := []int64{5000, 4000, 6000, 0}
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("balance_after[%d] got %d want %d", i, got[i], want[i])
		}
	}
}

func TestRunningBalancesOrderSensitive(t *testing.T) {
	forward := RunningBalances(1000, []int64{3000, -4000})
	reversed := RunningBalances(1000, []int64{-4000, 3000})
	// final balance matches, intermediate balances do not
	if forward[1] != reversed[1] {
		t.Fatalf("final balances should agree: %d vs %d", forward[1], reversed[1])
	}
	if forward[0] == reversed[0] {
		t.Fatalf("reordering should change intermediate balances")
	}
}

func TestRunningPartyBalances(t *testing.T) {
	got := RunningPartyBalances(10000, []DebitCredit{
		{Debit: 50000},
		{Credit: 20000},
		{Debit: 5000, Credit: 5000},
	})
	want := []int64{60000, 40000, 40000}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d got %d want %d", i, got[i], want[i])
		}
	}
}

func TestRemainingClampsAtZero(t *testing.T) {
	if got := Remaining(10000, 4000); got != 6000 {
		t.Fatalf("remaining got %d want 6000", got)
	}
	if got := Remaining(10000, 12000); got != 0 {
		t.Fatalf("overpaid remaining must clamp to 0, got %d", got)
	}
}

func TestDeriveReceivableStatus(t *testing.T) {
	today := time.Date(2026, 8, 15, 14, 30, 0, 0, time.Local)

	if s := DeriveReceivableStatus(10000, 0, "2026-08-20", today, false); s != ReceivablePending {
		t.Fatalf("untouched future invoice should be pending, got %s", s)
	}
	if s := DeriveReceivableStatus(10000, 4000, "2026-08-20", today, false); s != ReceivablePartiallyPaid {
		t.Fatalf("partial payment should be partially_paid, got %s", s)
	}
	if s := DeriveReceivableStatus(10000, 10000, "2026-08-01", today, false); s != ReceivablePaid {
		t.Fatalf("fully collected invoice is paid even past due, got %s", s)
	}
	if s := DeriveReceivableStatus(10000, 4000, "2026-08-14", today, false); s != ReceivableOverdue {
		t.Fatalf("past-due open invoice should be overdue, got %s", s)
	}
	// due today is not yet overdue, regardless of time of day
	if s := DeriveReceivableStatus(10000, 0, "2026-08-15", today, false); s != ReceivablePending {
		t.Fatalf("due today should still be pending, got %s", s)
	}
	// cancelled sticks even when fully paid
	if s := DeriveReceivableStatus(10000, 10000, "2026-08-01", today, true); s != ReceivableCancelled {
		t.Fatalf("cancelled must be sticky, got %s", s)
	}
}

func TestMonthsToClear(t *testing.T) {
	if got := MonthsToClear(42000, 7000); got != 6 {
		t.Fatalf("exact division got %d want 6", got)
	}
	if got := MonthsToClear(42000, 8000); got != 6 {
		t.Fatalf("ceil division got %d want 6", got)
	}
	if got := MonthsToClear(42000, 0); got != 0 {
		t.Fatalf("zero deduction must yield 0, got %d", got)
	}
	if got := MonthsToClear(0, 7000); got != 0 {
		t.Fatalf("nothing owed must yield 0, got %d", got)
	}
}

func TestExpectedClearDate(t *testing.T) {
	from := time.Date(2026, 8, 15, 0, 0, 0, 0, time.Local)
	if got := ExpectedClearDate(from, 21000, 7000); got != "2026-11-15" {
		t.Fatalf("clear date got %s want 2026-11-15", got)
	}
	if got := ExpectedClearDate(from, 21000, 0); got != "" {
		t.Fatalf("no deduction must yield empty clear date, got %q", got)
	}
}
