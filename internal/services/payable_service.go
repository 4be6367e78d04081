package services

import (
	"fmt"
	"time"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/repositories"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/utils"
)

// PayableService is the vendor-side mirror of ReceivableService.
type PayableService struct {
	PayableRepo repositories.PayableRepository
	PartyRepo   repositories.PartyRepository
	RequestID   string
}

func (s PayableService) List(vendorID int64, status domain.ReceivableStatus) ([]models.Payable, error) {
	pays, err := s.PayableRepo.List(vendorID, status)
	if err != nil {
		return nil, domain.InternalError{Msg: "payable list failed", Err: err}
	}
	now := time.Now()
	for i := range pays {
		pays[i].Refresh(now)
	}
	return pays, nil
}

func (s PayableService) Get(id int64) (models.Payable, []models.Settlement, error) {
	pay, err := s.PayableRepo.GetByID(id)
	if err != nil {
		return pay, nil, err
	}
	pay.Refresh(time.Now())
	settles, err := s.PayableRepo.ListSettlements(id)
	if err != nil {
		return pay, nil, domain.InternalError{Msg: "settlement list failed", Err: err}
	}
	return pay, settles, nil
}

func (s PayableService) Create(pay models.Payable) (models.Payable, error) {
	if err := pay.Validate(); err != nil {
		return pay, err
	}
	if exists, err := s.PayableRepo.BillExists(pay.BillNumber, 0); err != nil {
		return pay, domain.InternalError{Msg: "bill lookup failed", Err: err}
	} else if exists {
		return pay, domain.ConflictError{Resource: "payable", Msg: "bill number already in use"}
	}

	pay.PaidAmount = 0
	pay.Refresh(time.Now())

	id, err := s.PayableRepo.Create(pay)
	if err != nil {
		return pay, domain.InternalError{Msg: "payable insert failed", Err: err}
	}
	pay.ID = id

	utils.LogEvent(s.RequestID, "payable", "create", fmt.Sprintf("id=%d bill=%s", id, pay.BillNumber))
	return pay, nil
}

// Settle applies a payment to a vendor bill under the same cap rule as
// collections: never more than the remaining balance.
func (s PayableService) Settle(set models.Settlement) (models.Payable, error) {
	var pay models.Payable

	if err := set.Validate(); err != nil {
		return pay, err
	}

	pay, err := s.PayableRepo.GetByID(set.PayableID)
	if err != nil {
		return pay, err
	}
	if pay.Status == domain.ReceivableCancelled {
		return pay, domain.ConflictError{Resource: "payable", Msg: "cancelled bills cannot settle"}
	}

	if err := domain.ValidateCollection(set.Amount, pay.Remaining()); err != nil {
		return pay, err
	}

	newPaid := pay.PaidAmount + set.Amount
	newStatus := domain.DeriveReceivableStatus(pay.TotalAmount, newPaid, pay.DueDate, time.Now(), false)

	if _, err := s.PayableRepo.ApplySettlement(set, newPaid, newStatus); err != nil {
		return pay, domain.InternalError{Msg: "settlement apply failed", Err: err}
	}

	pay.PaidAmount = newPaid
	pay.Status = newStatus

	utils.LogEvent(s.RequestID, "payable", "settle",
		fmt.Sprintf("id=%d amount=%d remaining=%d status=%s", pay.ID, set.Amount, pay.Remaining(), pay.Status))
	return pay, nil
}

// VendorLedger builds the debit/credit statement for one vendor.
func (s PayableService) VendorLedger(vendorID int64) (models.PartyLedger, error) {
	var out models.PartyLedger

	party, err := s.PartyRepo.GetByID(vendorID)
	if err != nil {
		return out, err
	}
	if party.Kind != models.PartyVendor {
		return out, domain.ValidationError{Field: "vendor_id", Msg: "party is not a vendor"}
	}

	rows, err := s.PayableRepo.VendorLedgerRows(vendorID)
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
