package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/repositories"
)

func payrollService(db *sqlmockDB) PayrollService {
	return PayrollService{
		PayrollRepo: repositories.PayrollRepository{DB: db.DB},
		StaffRepo:   repositories.StaffRepository{DB: db.DB},
	}
}

func TestGenerateCapsDeductionAtAdvanceBalance(t *testing.T) {
	db := newSQLMock(t)
	defer db.Close()

	// monthly deduction 7000, but only 3000 outstanding
	db.mock.ExpectQuery("SELECT (.+) FROM staff WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(staffRow(5, "Imran", 7000, 3000, "active"))
	db.mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM payroll_entries").
		WithArgs(int64(5), 8, 2026).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	db.mock.ExpectExec("INSERT INTO payroll_entries").
		WithArgs(int64(5), 8, 2026, int64(50000), int64(0), int64(3000), int64(0), int64(47000)).
		WillReturnResult(sqlmock.NewResult(61, 1))

	svc := payrollService(db)
	entry, err := svc.Generate(GenerateInput{StaffID: 5, Month: 8, Year: 2026})
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if entry.AdvanceDeduction != 3000 {
		t.Fatalf("deduction got %d want 3000", entry.AdvanceDeduction)
	}
	if entry.NetPayable != 47000 {
		t.Fatalf("net payable got %d want 47000", entry.NetPayable)
	}
	if err := db.mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGenerateDuplicatePeriodConflicts(t *testing.T) {
	db := newSQLMock(t)
	defer db.Close()

	db.mock.ExpectQuery("SELECT (.+) FROM staff WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(staffRow(5, "Imran", 7000, 42000, "active"))
	db.mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM payroll_entries").
		WithArgs(int64(5), 8, 2026).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	svc := payrollService(db)
	if _, err := svc.Generate(GenerateInput{StaffID: 5, Month: 8, Year: 2026}); !domain.IsConflict(err) {
		t.Fatalf("duplicate period must conflict, got %v", err)
	}
}

func TestGenerateForInactiveStaffConflicts(t *testing.T) {
	db := newSQLMock(t)
	defer db.Close()

	db.mock.ExpectQuery("SELECT (.+) FROM staff WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(staffRow(5, "Imran", 7000, 0, "inactive"))

	svc := payrollService(db)
	if _, err := svc.Generate(GenerateInput{StaffID: 5, Month: 8, Year: 2026}); !domain.IsConflict(err) {
		t.Fatalf("inactive staff must conflict, got %v", err)
	}
}

func TestMarkPaidBooksAdvanceRecovery(t *testing.T) {
	db := newSQLMock(t)
	defer db.Close()

	db.mock.ExpectQuery("SELECT (.+) FROM payroll_entries WHERE id").
		WithArgs(int64(61)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "staff_id", "month", "year",
			"gross_salary", "arrears", "advance_deduction",
			"other_deductions", "net_payable", "is_paid", "paid_at",
		}).AddRow(61, 5, 8, 2026, 50000, 0, 3000, 0, 47000, false, ""))
	db.mock.ExpectExec("UPDATE payroll_entries SET is_paid").
		WithArgs(int64(61)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// recovery booked into the advance ledger
	db.mock.ExpectQuery("SELECT (.+) FROM staff WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(staffRow(5, "Imran", 7000, 3000, "active"))
	db.mock.ExpectQuery("SELECT (.+) FROM staff WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(staffRow(5, "Imran", 7000, 3000, "active"))
	db.mock.ExpectBegin()
	db.mock.ExpectExec("INSERT INTO staff_advances").
		WillReturnResult(sqlmock.NewResult(71, 1))
	db.mock.ExpectExec("UPDATE staff SET advance_balance").
		WithArgs(int64(0), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	db.mock.ExpectCommit()

	svc := payrollService(db)
	entry, err := svc.MarkPaid(61)
	if err != nil {
		t.Fatalf("mark paid error: %v", err)
	}
	if !entry.IsPaid {
		t.Fatalf("entry should be marked paid")
	}
	if err := db.mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
