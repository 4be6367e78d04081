package models

import (
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
)

// PayrollEntry is one employee's salary sheet for a month. NetPayable is
// always derived from the other four amounts.
type PayrollEntry struct {
	ID      int64 `json:"id"`
	StaffID int64 `json:"staff_id"`
	Month   int   `json:"month"`
	Year    int   `json:"year"`

	GrossSalary      int64 `json:"gross_salary"`
	Arrears          int64 `json:"arrears"`
	AdvanceDeduction int64 `json:"advance_deduction"`
	OtherDeductions  int64 `json:"other_deductions"`
	NetPayable       int64 `json:"net_payable"`

	IsPaid    bool   `json:"is_paid"`
	PaidAt    string `json:"paid_at,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Recompute refreshes the derived net payable in place.
func (p *PayrollEntry) Recompute() {
	p.NetPayable = domain.NetPayable(p.GrossSalary, p.Arrears, p.AdvanceDeduction, p.OtherDeductions)
}

func (p PayrollEntry) Validate() error {
	if p.StaffID <= 0 {
		return domain.ValidationError{Field: "staff_id", Msg: "staff is required"}
	}
	if p.Month < 1 || p.Month > 12 {
		return domain.ValidationError{Field: "month", Msg: "must be 1-12"}
	}
	if p.Year < 2000 || p.Year > 2100 {
		return domain.ValidationError{Field: "year", Msg: "out of range"}
	}
	if p.GrossSalary <= 0 {
		return domain.ValidationError{Field: "gross_salary", Msg: "must be greater than zero"}
	}
	for _, f := range []struct {
		name  string
		value int64
	}{
		{"arrears", p.Arrears},
		{"advance_deduction", p.AdvanceDeduction},
		{"other_deductions", p.OtherDeductions},
	} {
		if f.value < 0 {
			return domain.ValidationError{Field: f.name, Msg: "cannot be negative"}
		}
	}
	return nil
}
