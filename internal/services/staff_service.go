package services

import (
	"fmt"
	"time"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/repositories"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/utils"
)

// StaffService manages employees and their advance ledgers.
type StaffService struct {
	StaffRepo repositories.StaffRepository
	RequestID string
}

func (s StaffService) Create(st models.Staff) (models.Staff, error) {
	if err := st.Validate(); err != nil {
		return st, err
	}
	if st.Status == "" {
		st.Status = domain.StaffActive
	}
	id, err := s.StaffRepo.Create(st)
	if err != nil {
		return st, domain.InternalError{Msg: "staff insert failed", Err: err}
	}
	st.ID = id
	utils.LogEvent(s.RequestID, "staff", "create", fmt.Sprintf("id=%d name=%s", id, st.Name))
	return st, nil
}

func (s StaffService) Update(id int64, st models.Staff) (models.Staff, error) {
	existing, err := s.StaffRepo.GetByID(id)
	if err != nil {
		return st, err
	}
	st.ID = id
	st.Status = existing.Status
	st.AdvanceBalance = existing.AdvanceBalance
	if err := st.Validate(); err != nil {
		return st, err
	}
	if err := s.StaffRepo.Update(st); err != nil {
		return st, domain.InternalError{Msg: "staff update failed", Err: err}
	}
	return st, nil
}

// GrantAdvance appends a positive (debit) entry to the advance ledger.
func (s StaffService) GrantAdvance(staffID int64, amount int64, date, description string) (models.AdvanceEntry, error) {
	if amount <= 0 {
		return models.AdvanceEntry{}, domain.ValidationError{Field: "amount", Msg: "advance must be greater than zero"}
	}
	return s.appendEntry(staffID, amount, date, description)
}

// RecordRecovery appends a negative (credit) entry. Recoveries cannot
// exceed the outstanding balance; the ledger never goes negative.
func (s StaffService) RecordRecovery(staffID int64, amount int64, date, description string) (models.AdvanceEntry, error) {
	if amount <= 0 {
		return models.AdvanceEntry{}, domain.ValidationError{Field: "amount", Msg: "recovery must be greater than zero"}
	}
	st, err := s.StaffRepo.GetByID(staffID)
	if err != nil {
		return models.AdvanceEntry{}, err
	}
	if amount > st.AdvanceBalance {
		return models.AdvanceEntry{}, domain.ValidationError{Field: "amount", Msg: "recovery exceeds advance balance"}
	}
	return s.appendEntry(staffID, -amount, date, description)
}

func (s StaffService) appendEntry(staffID, amount int64, date, description string) (models.AdvanceEntry, error) {
	var out models.AdvanceEntry

	st, err := s.StaffRepo.GetByID(staffID)
	if err != nil {
		return out, err
	}

	entry := models.AdvanceEntry{
		StaffID:     staffID,
		Date:        utils.TrimOrEmpty(date),
		Amount:      amount,
		Description: utils.TrimOrEmpty(description),
	}
	if entry.Date == "" {
		entry.Date = utils.NowLocalDate()
	}
	if err := entry.Validate(); err != nil {
		return out, err
	}

	// balance_after = previous balance + signed amount, the same fold the
	// ledger read applies.
	entry.BalanceAfter = st.AdvanceBalance + amount

	id, err := s.StaffRepo.AppendAdvanceEntry(entry)
	if err != nil {
		return out, domain.InternalError{Msg: "advance entry insert failed", Err: err}
	}
	entry.ID = id

	utils.LogEvent(s.RequestID, "staff", "advance",
		fmt.Sprintf("staff_id=%d amount=%d balance=%d", staffID, amount, entry.BalanceAfter))
	return entry, nil
}

// Ledger returns the chronological advance ledger with running balances
// recomputed from the entries, plus the recovery projection summary.
func (s StaffService) Ledger(staffID int64) (models.AdvanceLedger, error) {
	var out models.AdvanceLedger

	st, err := s.StaffRepo.GetByID(staffID)
	if err != nil {
		return out, err
	}
	entries, err := s.StaffRepo.ListAdvanceEntries(staffID)
	if err != nil {
		return out, domain.InternalError{Msg: "advance list failed", Err: err}
	}

	amounts := make([]int64, len(entries))
	for i, e := range entries {
		amounts[i] = e.Amount
	}
	balances := domain.RunningBalances(0, amounts)
	for i := range entries {
		entries[i].BalanceAfter = balances[i]
	}

	current := int64(0)
	if len(balances) > 0 {
		current = balances[len(balances)-1]
	}

	now := time.Now()
	out = models.AdvanceLedger{
		Staff:   st,
		Entries: entries,
		Summary: models.AdvanceSummary{
			CurrentBalance:    current,
			MonthlyDeduction:  st.MonthlyDeduction,
			MonthsToClear:     domain.MonthsToClear(current, st.MonthlyDeduction),
			ExpectedClearDate: domain.ExpectedClearDate(now, current, st.MonthlyDeduction),
		},
	}
	return out, nil
}

// Exit marks an employee inactive. Blocked while advances are outstanding
// unless the caller explicitly overrides.
func (s StaffService) Exit(staffID int64, override bool) error {
	st, err := s.StaffRepo.GetByID(staffID)
	if err != nil {
		return err
	}
	if st.Status == domain.StaffInactive {
		return domain.ConflictError{Resource: "staff", Msg: "already inactive"}
	}
	if err := domain.ValidateStaffExit(st.AdvanceBalance, override); err != nil {
		return err
	}
	if err := s.StaffRepo.UpdateStatus(staffID, domain.StaffInactive); err != nil {
		return domain.InternalError{Msg: "status update failed", Err: err}
	}
	utils.LogEvent(s.RequestID, "staff", "exit",
		fmt.Sprintf("staff_id=%d balance=%d override=%t", staffID, st.AdvanceBalance, override))
	return nil
}
