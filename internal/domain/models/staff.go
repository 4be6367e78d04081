package models

import (
	"strings"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
)

// Staff is an employee on the payroll with a running advance balance.
type Staff struct {
	ID               int64              `json:"id"`
	Name             string             `json:"name"`
	Phone            string             `json:"phone,omitempty"`
	Designation      string             `json:"designation,omitempty"`
	GrossSalary      int64              `json:"gross_salary"`
	MonthlyDeduction int64              `json:"monthly_deduction"`
	AdvanceBalance   int64              `json:"advance_balance"`
	Status           domain.StaffStatus `json:"status"`
	JoinedAt         string             `json:"joined_at,omitempty"`
	CreatedAt        string             `json:"created_at,omitempty"`
}

func (s Staff) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	if s.GrossSalary <= 0 {
		return domain.ValidationError{Field: "gross_salary", Msg: "must be greater than zero"}
	}
	if s.MonthlyDeduction < 0 {
		return domain.ValidationError{Field: "monthly_deduction", Msg: "cannot be negative"}
	}
	return nil
}

// AdvanceEntry is one chronological row of an employee's advance ledger.
// Positive amount = advance given (debit), negative = recovery (credit).
// BalanceAfter is derived by the running-balance fold, never entered.
type AdvanceEntry struct {
	ID           int64  `json:"id"`
	StaffID      int64  `json:"staff_id"`
	Date         string `json:"date"`
	Amount       int64  `json:"amount"`
	Description  string `json:"description,omitempty"`
	BalanceAfter int64  `json:"balance_after"`
	CreatedAt    string `json:"created_at,omitempty"`
}

func (e AdvanceEntry) Validate() error {
	if e.StaffID <= 0 {
		return domain.ValidationError{Field: "staff_id", Msg: "staff is required"}
	}
	if e.Amount == 0 {
		return domain.ValidationError{Field: "amount", Msg: "amount cannot be zero"}
	}
	if strings.TrimSpace(e.Date) == "" {
		return domain.ValidationError{Field: "date", Msg: "date is required"}
	}
	return nil
}

// AdvanceSummary is the header block of the advance-ledger screen.
type AdvanceSummary struct {
	CurrentBalance    int64  `json:"current_balance"`
	MonthlyDeduction  int64  `json:"monthly_deduction"`
	MonthsToClear     int    `json:"months_to_clear"`
	ExpectedClearDate string `json:"expected_clear_date,omitempty"`
}

// AdvanceLedger is the full ledger response for one employee.
type AdvanceLedger struct {
	Staff   Staff          `json:"staff"`
	Entries []AdvanceEntry `json:"entries"`
	Summary AdvanceSummary `json:"summary"`
}
