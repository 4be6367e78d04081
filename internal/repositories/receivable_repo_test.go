package repositories

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
)

var errForced = errors.New("forced failure")

func TestReceivableApplyCollectionTransactional(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO collections").
		WithArgs(int64(7), int64(4000), "2026-08-10", "bank", nil).
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectExec("UPDATE receivables SET paid_amount").
		WithArgs(int64(9000), "partially_paid", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := ReceivableRepository{DB: db}
	id, err := repo.ApplyCollection(models.Collection{
		ReceivableID: 7,
		Amount:       4000,
		Date:         "2026-08-10",
		Channel:      "bank",
	}, 9000, domain.ReceivablePartiallyPaid)
	if err != nil {
		t.Fatalf("apply collection error: %v", err)
	}
	if id != 21 {
		t.Fatalf("collection id got %d want 21", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReceivableApplyCollectionRollsBackOnUpdateFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO collections").
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectExec("UPDATE receivables SET paid_amount").
		WillReturnError(errForced)
	mock.ExpectRollback()

	repo := ReceivableRepository{DB: db}
	if _, err := repo.ApplyCollection(models.Collection{ReceivableID: 7, Amount: 4000, Date: "2026-08-10", Channel: "cash"}, 9000, domain.ReceivablePartiallyPaid); err == nil {
		t.Fatalf("expected error when receivable update fails")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReceivableGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM receivables WHERE id").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "client_id", "trip_id", "invoice_number",
			"total_amount", "paid_amount", "due_date", "status",
		}))

	repo := ReceivableRepository{DB: db}
	if _, err := repo.GetByID(99); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestReceivableListFiltersByClientAndStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "client_id", "trip_id", "invoice_number",
		"total_amount", "paid_amount", "due_date", "status",
	}).AddRow(1, 3, 0, "INV-001", 100000, 40000, "2026-08-20", "partially_paid")

	mock.ExpectQuery("SELECT (.+) FROM receivables WHERE 1=1 AND client_id = \\? AND status = \\?").
		WithArgs(int64(3), "partially_paid").
		WillReturnRows(rows)

	repo := ReceivableRepository{DB: db}
	out, err := repo.List(3, domain.ReceivablePartiallyPaid)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(out) != 1 || out[0].InvoiceNumber != "INV-001" {
		t.Fatalf("unexpected result: %+v", out)
	}
	if out[0].Remaining() != 60000 {
		t.Fatalf("remaining got %d want 60000", out[0].Remaining())
	}
}
