package repositories

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
)

func TestAppendAdvanceEntryUpdatesStaffBalance(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO staff_advances").
		WithArgs(int64(5), "2026-08-10", int64(15000), "tyre repair advance", int64(57000)).
		WillReturnResult(sqlmock.NewResult(31, 1))
	mock.ExpectExec("UPDATE staff SET advance_balance").
		WithArgs(int64(57000), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := StaffRepository{DB: db}
	id, err := repo.AppendAdvanceEntry(models.AdvanceEntry{
		StaffID:      5,
		Date:         "2026-08-10",
		Amount:       15000,
		Description:  "tyre repair advance",
		BalanceAfter: 57000,
	})
	if err != nil {
		t.Fatalf("append advance error: %v", err)
	}
	if id != 31 {
		t.Fatalf("entry id got %d want 31", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAppendAdvanceEntryRollsBackWhenBalanceUpdateFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO staff_advances").
		WillReturnResult(sqlmock.NewResult(31, 1))
	mock.ExpectExec("UPDATE staff SET advance_balance").
		WillReturnError(errForced)
	mock.ExpectRollback()

	repo := StaffRepository{DB: db}
	if _, err := repo.AppendAdvanceEntry(models.AdvanceEntry{StaffID: 5, Date: "2026-08-10", Amount: 15000, BalanceAfter: 57000}); err == nil {
		t.Fatalf("expected error when staff balance update fails")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStaffGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM staff WHERE id").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "phone", "designation",
			"gross_salary", "monthly_deduction", "advance_balance",
			"status", "joined_at",
		}))

	repo := StaffRepository{DB: db}
	if _, err := repo.GetByID(404); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestListAdvanceEntriesOldestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "staff_id", "entry_date", "amount", "description", "balance_after"}).
		AddRow(1, 5, "2026-07-01", 5000, "advance", 5000).
		AddRow(2, 5, "2026-07-31", -1000, "payroll recovery", 4000)

	mock.ExpectQuery("FROM staff_advances").
		WithArgs(int64(5)).
		WillReturnRows(rows)

	repo := StaffRepository{DB: db}
	entries, err := repo.ListAdvanceEntries(5)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entry count got %d want 2", len(entries))
	}
	if entries[1].BalanceAfter != 4000 {
		t.Fatalf("balance_after got %d want 4000", entries[1].BalanceAfter)
	}
}
