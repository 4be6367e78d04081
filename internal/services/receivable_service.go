package services

import (
	"fmt"
	"time"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/repositories"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/utils"
)

// ReceivableService handles client invoices and collections against them.
type ReceivableService struct {
	ReceivableRepo repositories.ReceivableRepository
	PartyRepo      repositories.PartyRepository
	RequestID      string
}

// List returns receivables with statuses refreshed against today, so an
// invoice that slipped past its due date shows overdue without a write.
func (s ReceivableService) List(clientID int64, status domain.ReceivableStatus) ([]models.Receivable, error) {
	recs, err := s.ReceivableRepo.List(clientID, status)
	if err != nil {
		return nil, domain.InternalError{Msg: "receivable list failed", Err: err}
	}
	now := time.Now()
	for i := range recs {
		recs[i].Refresh(now)
	}
	return recs, nil
}

func (s ReceivableService) Get(id int64) (models.Receivable, []models.Collection, error) {
	rec, err := s.ReceivableRepo.GetByID(id)
	if err != nil {
		return rec, nil, err
	}
	rec.Refresh(time.Now())
	cols, err := s.ReceivableRepo.ListCollections(id)
	if err != nil {
		return rec, nil, domain.InternalError{Msg: "collection list failed", Err: err}
	}
	return rec, cols, nil
}

func (s ReceivableService) Create(rec models.Receivable) (models.Receivable, error) {
	if err := rec.Validate(); err != nil {
		return rec, err
	}
	if exists, err := s.ReceivableRepo.InvoiceExists(rec.InvoiceNumber, 0); err != nil {
		return rec, domain.InternalError{Msg: "invoice lookup failed", Err: err}
	} else if exists {
		return rec, domain.ConflictError{Resource: "receivable", Msg: "invoice number already in use"}
	}

	rec.PaidAmount = 0
	rec.Refresh(time.Now())

	id, err := s.ReceivableRepo.Create(rec)
	if err != nil {
		return rec, domain.InternalError{Msg: "receivable insert failed", Err: err}
	}
	rec.ID = id

	utils.LogEvent(s.RequestID, "receivable", "create", fmt.Sprintf("id=%d invoice=%s", id, rec.InvoiceNumber))
	return rec, nil
}

// Collect applies a payment. The cap check runs before any write: a
// request above the remaining balance never reaches the database.
func (s ReceivableService) Collect(col models.Collection) (models.Receivable, error) {
	var rec models.Receivable

	if err := col.Validate(); err != nil {
		return rec, err
	}

	rec, err := s.ReceivableRepo.GetByID(col.ReceivableID)
	if err != nil {
		return rec, err
	}
	if rec.Status == domain.ReceivableCancelled {
		return rec, domain.ConflictError{Resource: "receivable", Msg: "cancelled invoices cannot collect"}
	}

	if err := domain.ValidateCollection(col.Amount, rec.Remaining()); err != nil {
		return rec, err
	}

	newPaid := rec.PaidAmount + col.Amount
	newStatus := domain.DeriveReceivableStatus(rec.TotalAmount, newPaid, rec.DueDate, time.Now(), false)

	if _, err := s.ReceivableRepo.ApplyCollection(col, newPaid, newStatus); err != nil {
		return rec, domain.InternalError{Msg: "collection apply failed", Err: err}
	}

	rec.PaidAmount = newPaid
	rec.Status = newStatus

	utils.LogEvent(s.RequestID, "receivable", "collect",
		fmt.Sprintf("id=%d amount=%d remaining=%d status=%s", rec.ID, col.Amount, rec.Remaining(), rec.Status))
	return rec, nil
}

// ClientLedger builds the debit/credit statement for one client with
// running balances applied in chronological order.
func (s ReceivableService) ClientLedger(clientID int64) (models.PartyLedger, error) {
	var out models.PartyLedger

	party, err := s.PartyRepo.GetByID(clientID)
	if err != nil {
		return out, err
	}
	if party.Kind != models.PartyClient {
		return out, domain.ValidationError{Field: "client_id", Msg: "party is not a client"}
	}

	rows, err := s.ReceivableRepo.ClientLedgerRows(clientID)
	if err != nil {
		return out, domain.InternalError{Msg: "ledger query failed", Err: err}
	}

	entries := make([]domain.DebitCredit, len(rows))
	for i, row := range rows {
		entries[i] = domain.DebitCredit{Debit: row.Debit, Credit: row.Credit}
	}
	balances := domain.RunningPartyBalances(0, entries)
	for i := range rows {
		rows[i].BalanceAfter = balances[i]
	}

	out = models.PartyLedger{Party: party, Opening: 0, Rows: rows}
	if len(balances) > 0 {
		out.Closing = balances[len(balances)-1]
	}
	return out, nil
}
