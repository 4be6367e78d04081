package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/repositories"
)

func staffRow(id int64, name string, deduction, balance int64, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "phone", "designation",
		"gross_salary", "monthly_deduction", "advance_balance",
		"status", "joined_at",
	}).AddRow(id, name, "", "", 50000, deduction, balance, status, "2024-01-01")
}

func TestGrantAdvanceWritesRunningBalance(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM staff WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(staffRow(5, "Imran", 7000, 42000, "active"))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO staff_advances").
		WithArgs(int64(5), "2026-08-10", int64(15000), "fuel advance", int64(57000)).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec("UPDATE staff SET advance_balance").
		WithArgs(int64(57000), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := StaffService{StaffRepo: repositories.StaffRepository{DB: db}}
	entry, err := svc.GrantAdvance(5, 15000, "2026-08-10", "fuel advance")
	if err != nil {
		t.Fatalf("grant advance error: %v", err)
	}
	if entry.BalanceAfter != 57000 {
		t.Fatalf("balance_after got %d want 57000", entry.BalanceAfter)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRecordRecoveryCappedAtBalance(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM staff WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(staffRow(5, "Imran", 7000, 42000, "active"))

	svc := StaffService{StaffRepo: repositories.StaffRepository{DB: db}}
	_, err = svc.RecordRecovery(5, 42001, "2026-08-10", "")
	if !domain.IsValidation(err) {
		t.Fatalf("recovery above balance must be a validation error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no write may run for a rejected recovery: %v", err)
	}
}

func TestExitBlockedWithOutstandingAdvance(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM staff WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(staffRow(5, "Imran", 7000, 42000, "active"))

	svc := StaffService{StaffRepo: repositories.StaffRepository{DB: db}}
	if err := svc.Exit(5, false); !domain.IsConflict(err) {
		t.Fatalf("exit with 42000 outstanding must conflict, got %v", err)
	}
}

func TestExitWithOverrideSucceeds(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM staff WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(staffRow(5, "Imran", 7000, 42000, "active"))
	mock.ExpectExec("UPDATE staff SET status").
		WithArgs("inactive", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := StaffService{StaffRepo: repositories.StaffRepository{DB: db}}
	if err := svc.Exit(5, true); err != nil {
		t.Fatalf("override exit should pass, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLedgerSummaryProjection(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM staff WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(staffRow(5, "Imran", 7000, 42000, "active"))
	mock.ExpectQuery("FROM staff_advances").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "staff_id", "entry_date", "amount", "description", "balance_after"}).
			AddRow(1, 5, "2026-05-01", 50000, "advance", 0).
			AddRow(2, 5, "2026-06-30", -8000, "payroll recovery", 0))

	svc := StaffService{StaffRepo: repositories.StaffRepository{DB: db}}
	ledger, err := svc.Ledger(5)
	if err != nil {
		t.Fatalf("ledger error: %v", err)
	}
	// running balances recomputed from entries, not trusted from storage
	if ledger.Entries[0].BalanceAfter != 50000 || ledger.Entries[1].BalanceAfter != 42000 {
		t.Fatalf("running balances wrong: %d, %d", ledger.Entries[0].BalanceAfter, ledger.Entries[1].BalanceAfter)
	}
	if ledger.Summary.CurrentBalance != 42000 {
		t.Fatalf("current balance got %d want 42000", ledger.Summary.CurrentBalance)
	}
	if ledger.Summary.MonthsToClear != 6 {
		t.Fatalf("months to clear got %d want 6", ledger.Summary.MonthsToClear)
	}
	if ledger.Summary.ExpectedClearDate == "" {
		t.Fatalf("expected clear date should be set")
	}
}
