package models

import (
	"strings"
	"time"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
)

// Payable is money the company owes a vendor, mirroring Receivable on the
// vendor side; derivation rules are shared.
type Payable struct {
	ID         int64  `json:"id"`
	VendorID   int64  `json:"vendor_id"`
	TripID     int64  `json:"trip_id,omitempty"`
	BillNumber string `json:"bill_number"`
	TotalAmount int64 `json:"total_amount"`
	PaidAmount  int64 `json:"paid_amount"`
	DueDate     string `json:"due_date"`

	Status domain.ReceivableStatus `json:"status"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

func (p Payable) Remaining() int64 {
	return domain.Remaining(p.TotalAmount, p.PaidAmount)
}

func (p *Payable) Refresh(now time.Time) {
	p.Status = domain.DeriveReceivableStatus(
		p.TotalAmount, p.PaidAmount, p.DueDate, now,
		p.Status == domain.ReceivableCancelled,
	)
}

func (p Payable) Validate() error {
	if p.VendorID <= 0 {
		return domain.ValidationError{Field: "vendor_id", Msg: "vendor is required"}
	}
	if strings.TrimSpace(p.BillNumber) == "" {
		return domain.ValidationError{Field: "bill_number", Msg: "bill number is required"}
	}
	if p.TotalAmount <= 0 {
		return domain.ValidationError{Field: "total_amount", Msg: "must be greater than zero"}
	}
	if strings.TrimSpace(p.DueDate) == "" {
		return domain.ValidationError{Field: "due_date", Msg: "due date is required"}
	}
	return nil
}

// Settlement is a payment made against a payable.
type Settlement struct {
	ID        int64  `json:"id"`
	PayableID int64  `json:"payable_id"`
	Amount    int64  `json:"amount"`
	Date      string `json:"date"`
	Channel   string `json:"channel"`
	Remarks   string `json:"remarks,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (s Settlement) Validate() error {
	if s.PayableID <= 0 {
		return domain.ValidationError{Field: "payable_id", Msg: "payable is required"}
	}
	if s.Amount <= 0 {
		return domain.ValidationError{Field: "amount", Msg: "must be greater than zero"}
	}
	if strings.TrimSpace(s.Date) == "" {
		return domain.ValidationError{Field: "date", Msg: "date is required"}
	}
	return nil
}
