package domain

import "testing"

func TestCancelledIsTerminal(t *testing.T) {
	for _, to := range []TripStatus{TripDraft, TripActive, TripCompleted, TripLocked} {
		if CanTransition(TripCancelled, to) {
			t.Fatalf("CANCELLED must never transition to %s", to)
		}
	}
}

func TestCompletedAndLockedAreTerminal(t *testing.T) {
	for _, from := range []TripStatus{TripCompleted, TripLocked} {
		if !from.IsTerminal() {
			t.Fatalf("%s should be terminal", from)
		}
		for _, to := range []TripStatus{TripDraft, TripActive, TripCancelled} {
			if CanTransition(from, to) {
				t.Fatalf("%s must not transition to %s", from, to)
			}
		}
	}
}

func TestDraftAndActiveEdges(t *testing.T) {
	cases := []struct {
		from, to TripStatus
		ok       bool
	}{
		{TripDraft, TripActive, true},
		{TripDraft, TripCompleted, true},
		{TripDraft, TripCancelled, true},
		{TripActive, TripDraft, true},
		{TripActive, TripCompleted, true},
		{TripActive, TripCancelled, true},
		{TripDraft, TripLocked, false},
		{TripActive, TripLocked, false},
	}
	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.ok {
			t.Fatalf("%s -> %s: got %v want %v", c.from, c.to, got, c.ok)
		}
	}
}

func TestCancelRequiresReason(t *testing.T) {
	if err := ValidateTripTransition(TripActive, TripCancelled, "   "); !IsValidation(err) {
		t.Fatalf("blank reason should be a validation error, got %v", err)
	}
	if err := ValidateTripTransition(TripActive, TripCancelled, "client backed out"); err != nil {
		t.Fatalf("cancel with reason should pass, got %v", err)
	}
}

func TestValidateCollectionBounds(t *testing.T) {
	if err := ValidateCollection(0, 10000); !IsValidation(err) {
		t.Fatalf("zero amount must be rejected, got %v", err)
	}
	if err := ValidateCollection(-500, 10000); !IsValidation(err) {
		t.Fatalf("negative amount must be rejected, got %v", err)
	}
	if err := ValidateCollection(10001, 10000); !IsValidation(err) {
		t.Fatalf("amount above remaining must be rejected, got %v", err)
	}
	if err := ValidateCollection(10000, 10000); err != nil {
		t.Fatalf("exact remaining should pass, got %v", err)
	}
	if err := ValidateCollection(1, 10000); err != nil {
		t.Fatalf("partial amount should pass, got %v", err)
	}
}

func TestStaffExitBlockedByAdvanceBalance(t *testing.T) {
	if err := ValidateStaffExit(42000, false); !IsConflict(err) {
		t.Fatalf("exit with outstanding advance must conflict, got %v", err)
	}
	if err := ValidateStaffExit(42000, true); err != nil {
		t.Fatalf("override should allow the exit, got %v", err)
	}
	if err := ValidateStaffExit(0, false); err != nil {
		t.Fatalf("zero balance should allow the exit, got %v", err)
	}
}

func TestParseTripStatus(t *testing.T) {
	if s, ok := ParseTripStatus(" active "); !ok || s != TripActive {
		t.Fatalf("parse failed: %v %v", s, ok)
	}
	if _, ok := ParseTripStatus("running"); ok {
		t.Fatalf("unknown status must not parse")
	}
}
