package services

import (
	"fmt"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/repositories"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/utils"
)

// PayrollService generates monthly salary entries and settles them.
type PayrollService struct {
	PayrollRepo repositories.PayrollRepository
	StaffRepo   repositories.StaffRepository
	StaffSvc    StaffService
	RequestID   string
}

// GenerateInput is the payload for one salary sheet entry. Gross salary
// comes from the staff record; the advance deduction is capped at the
// outstanding balance so payroll never over-recovers.
type GenerateInput struct {
	StaffID         int64 `json:"staff_id"`
	Month           int   `json:"month"`
	Year            int   `json:"year"`
	Arrears         int64 `json:"arrears"`
	OtherDeductions int64 `json:"other_deductions"`
}

func (s PayrollService) Generate(in GenerateInput) (models.PayrollEntry, error) {
	var out models.PayrollEntry

	st, err := s.StaffRepo.GetByID(in.StaffID)
	if err != nil {
		return out, err
	}
	if st.Status != domain.StaffActive {
		return out, domain.ConflictError{Resource: "payroll", Msg: "staff is not active"}
	}

	deduction := st.MonthlyDeduction
	if deduction > st.AdvanceBalance {
		deduction = st.AdvanceBalance
	}

	entry := models.PayrollEntry{
		StaffID:          in.StaffID,
		Month:            in.Month,
		Year:             in.Year,
		GrossSalary:      st.GrossSalary,
		Arrears:          in.Arrears,
		AdvanceDeduction: deduction,
		OtherDeductions:  in.OtherDeductions,
	}
	entry.Recompute()
	if err := entry.Validate(); err != nil {
		return out, err
	}

	if exists, err := s.PayrollRepo.Exists(in.StaffID, in.Month, in.Year); err != nil {
		return out, domain.InternalError{Msg: "payroll lookup failed", Err: err}
	} else if exists {
		return out, domain.ConflictError{Resource: "payroll", Msg: fmt.Sprintf("entry for %d/%d already exists", in.Month, in.Year)}
	}

	id, err := s.PayrollRepo.Create(entry)
	if err != nil {
		return out, domain.InternalError{Msg: "payroll insert failed", Err: err}
	}
	entry.ID = id

	utils.LogEvent(s.RequestID, "payroll", "generate",
		fmt.Sprintf("id=%d staff_id=%d period=%d/%d net=%d", id, in.StaffID, in.Month, in.Year, entry.NetPayable))
	return entry, nil
}

// MarkPaid settles the entry and books the advance deduction into the
// staff ledger as a recovery, keeping the two ledgers consistent.
func (s PayrollService) MarkPaid(id int64) (models.PayrollEntry, error) {
	entry, err := s.PayrollRepo.GetByID(id)
	if err != nil {
		return entry, err
	}
	if entry.IsPaid {
		return entry, domain.ConflictError{Resource: "payroll", Msg: "entry is already paid"}
	}

	if err := s.PayrollRepo.MarkPaid(id); err != nil {
		return entry, domain.InternalError{Msg: "mark paid failed", Err: err}
	}
	entry.IsPaid = true

	if entry.AdvanceDeduction > 0 {
		desc := fmt.Sprintf("salary deduction %02d/%d", entry.Month, entry.Year)
		if _, err := s.staffSvc().RecordRecovery(entry.StaffID, entry.AdvanceDeduction, "", desc); err != nil {
			utils.LogEvent(s.RequestID, "payroll", "mark_paid",
				fmt.Sprintf("id=%d recovery booking failed: %v", id, err))
			return entry, err
		}
	}

	utils.LogEvent(s.RequestID, "payroll", "mark_paid", fmt.Sprintf("id=%d", id))
	return entry, nil
}

func (s PayrollService) ListByPeriod(month, year int) ([]models.PayrollEntry, error) {
	if month < 1 || month > 12 {
		return nil, domain.ValidationError{Field: "month", Msg: "must be 1-12"}
	}
	entries, err := s.PayrollRepo.ListByPeriod(month, year)
	if err != nil {
		return nil, domain.InternalError{Msg: "payroll list failed", Err: err}
	}
	return entries, nil
}

func (s PayrollService) staffSvc() StaffService {
	svc := s.StaffSvc
	if svc.StaffRepo.DB == nil {
		svc.StaffRepo = s.StaffRepo
	}
	svc.RequestID = s.RequestID
	return svc
}
