package domain

import "strings"

// TripStatus is the lifecycle state of a trip entry.
type TripStatus string

const (
	TripDraft     TripStatus = "DRAFT"
	TripActive    TripStatus = "ACTIVE"
	TripCompleted TripStatus = "COMPLETED"
	TripLocked    TripStatus = "LOCKED"
	TripCancelled TripStatus = "CANCELLED"
)

// ParseTripStatus normalizes user/database input into a known status.
func ParseTripStatus(s string) (TripStatus, bool) {
	switch TripStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case TripDraft:
		return TripDraft, true
	case TripActive:
		return TripActive, true
	case TripCompleted:
		return TripCompleted, true
	case TripLocked:
		return TripLocked, true
	case TripCancelled:
		return TripCancelled, true
	}
	return "", false
}

// IsTerminal reports whether no further transitions (or financial edits)
// are allowed from this status.
func (s TripStatus) IsTerminal() bool {
	switch s {
	case TripCompleted, TripLocked, TripCancelled:
		return true
	}
	return false
}

// tripEdges enumerates the legal trip transitions. Terminal states have no
// outgoing edges; CANCELLED in particular can never be reactivated.
var tripEdges = map[TripStatus][]TripStatus{
	TripDraft:  {TripActive, TripCompleted, TripCancelled},
	TripActive: {TripDraft, TripCompleted, TripCancelled},
}

// CanTransition reports whether from -> to is a legal edge.
func CanTransition(from, to TripStatus) bool {
	for _, next := range tripEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTripTransition checks the edge and its preconditions before any
// mutating request is issued. Cancelling requires a non-empty reason.
func ValidateTripTransition(from, to TripStatus, reason string) error {
	if !CanTransition(from, to) {
		return ValidationError{Field: "status", Msg: string(from) + " cannot become " + string(to)}
	}
	if to == TripCancelled && strings.TrimSpace(reason) == "" {
		return ValidationError{Field: "cancel_reason", Msg: "cancellation requires a reason"}
	}
	return nil
}

// ValidateCollection enforces 0 < amount <= remaining before submission.
func ValidateCollection(amount, remaining int64) error {
	if amount <= 0 {
		return ValidationError{Field: "amount", Msg: "amount must be greater than zero"}
	}
	if amount > remaining {
		return ValidationError{Field: "amount", Msg: "amount exceeds remaining balance"}
	}
	return nil
}

// ValidateStaffExit blocks marking an employee inactive while advances are
// outstanding, unless the caller explicitly overrides.
func ValidateStaffExit(advanceBalance int64, override bool) error {
	if advanceBalance > 0 && !override {
		return ConflictError{Resource: "staff", Msg: "advance balance outstanding, override required"}
	}
	return nil
}
