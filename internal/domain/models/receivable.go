package models

import (
	"strings"
	"time"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
)

// Receivable is money owed to the company by a client, usually raised from
// a completed trip but also creatable standalone.
type Receivable struct {
	ID            int64  `json:"id"`
	ClientID      int64  `json:"client_id"`
	TripID        int64  `json:"trip_id,omitempty"`
	InvoiceNumber string `json:"invoice_number"`
	TotalAmount   int64  `json:"total_amount"`
	PaidAmount    int64  `json:"paid_amount"`
	DueDate       string `json:"due_date"`

	Status domain.ReceivableStatus `json:"status"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Remaining is always derived, never stored independently.
func (r Receivable) Remaining() int64 {
	return domain.Remaining(r.TotalAmount, r.PaidAmount)
}

// Refresh recomputes the status from amounts and due date as of now.
func (r *Receivable) Refresh(now time.Time) {
	r.Status = domain.DeriveReceivableStatus(
		r.TotalAmount, r.PaidAmount, r.DueDate, now,
		r.Status == domain.ReceivableCancelled,
	)
}

func (r Receivable) Validate() error {
	if r.ClientID <= 0 {
		return domain.ValidationError{Field: "client_id", Msg: "client is required"}
	}
	if strings.TrimSpace(r.InvoiceNumber) == "" {
		return domain.ValidationError{Field: "invoice_number", Msg: "invoice number is required"}
	}
	if r.TotalAmount <= 0 {
		return domain.ValidationError{Field: "total_amount", Msg: "must be greater than zero"}
	}
	if strings.TrimSpace(r.DueDate) == "" {
		return domain.ValidationError{Field: "due_date", Msg: "due date is required"}
	}
	return nil
}

// Collection is a payment received against a receivable.
type Collection struct {
	ID           int64  `json:"id"`
	ReceivableID int64  `json:"receivable_id"`
	Amount       int64  `json:"amount"`
	Date         string `json:"date"`
	Channel      string `json:"channel"` // cash, bank, cheque, online
	Remarks      string `json:"remarks,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

func (c Collection) Validate() error {
	if c.ReceivableID <= 0 {
		return domain.ValidationError{Field: "receivable_id", Msg: "receivable is required"}
	}
	if c.Amount <= 0 {
		return domain.ValidationError{Field: "amount", Msg: "must be greater than zero"}
	}
	if strings.TrimSpace(c.Date) == "" {
		return domain.ValidationError{Field: "date", Msg: "date is required"}
	}
	return nil
}
