package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/repositories"
)

func tripRowCols() []string {
	return []string{
		"id", "reference", "trip_date", "vehicle_id", "client_id", "vendor_id",
		"freight_mode", "total_tonnage", "billing_tonnage", "rate_per_ton",
		"vendor_freight", "client_freight", "local_shifting_charges",
		"advance_paid", "fuel_cost", "other_charges",
		"status", "cancel_reason", "remarks",
	}
}

func tripService(db *sqlmockDB) TripService {
	return TripService{
		TripRepo:       repositories.TripRepository{DB: db.DB},
		ReceivableRepo: repositories.ReceivableRepository{DB: db.DB},
		PayableRepo:    repositories.PayableRepository{DB: db.DB},
	}
}

func TestUpdateRejectedOnTerminalTrip(t *testing.T) {
	db := newSQLMock(t)
	defer db.Close()

	db.mock.ExpectQuery("SELECT (.+) FROM trips WHERE id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(tripRowCols()).
			AddRow(9, "TRP-AAAA1111", "2026-07-01", 2, 3, 4,
				"total", 0, 0, 0,
				60000, 100000, 0,
				0, 0, 0,
				"COMPLETED", "", ""))

	svc := tripService(db)
	_, err := svc.Update(9, models.Trip{
		Reference: "TRP-AAAA1111", TripDate: "2026-07-01",
		VehicleID: 2, ClientID: 3, VendorID: 4,
		FreightMode: domain.FreightModeTotal, ClientFreight: 120000, VendorFreight: 60000,
	})
	if !domain.IsConflict(err) {
		t.Fatalf("editing a completed trip must conflict, got %v", err)
	}
	if err := db.mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("only the read may run: %v", err)
	}
}

func TestCompleteRaisesReceivableAndPayable(t *testing.T) {
	db := newSQLMock(t)
	defer db.Close()

	db.mock.ExpectQuery("SELECT (.+) FROM trips WHERE id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(tripRowCols()).
			AddRow(9, "TRP-AAAA1111", "2026-07-01", 2, 3, 4,
				"per_ton", 40, 40, 2500,
				70000, 0, 5000,
				0, 0, 0,
				"ACTIVE", "", ""))

	db.mock.ExpectExec("UPDATE trips SET status").
		WithArgs("COMPLETED", nil, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// client invoice for the derived freight
	db.mock.ExpectExec("INSERT INTO receivables").
		WillReturnResult(sqlmock.NewResult(51, 1))
	// vendor bill for the vendor freight
	db.mock.ExpectExec("INSERT INTO payables").
		WillReturnResult(sqlmock.NewResult(52, 1))

	svc := tripService(db)
	out, err := svc.Complete(9)
	if err != nil {
		t.Fatalf("complete error: %v", err)
	}
	if out.Trip.Status != domain.TripCompleted {
		t.Fatalf("status got %s want COMPLETED", out.Trip.Status)
	}
	if out.Calc.ClientFreight != 100000 {
		t.Fatalf("derived freight got %d want 100000", out.Calc.ClientFreight)
	}
	if err := db.mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCancelReversesLinkedDocuments(t *testing.T) {
	db := newSQLMock(t)
	defer db.Close()

	db.mock.ExpectQuery("SELECT (.+) FROM trips WHERE id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(tripRowCols()).
			AddRow(9, "TRP-AAAA1111", "2026-07-01", 2, 3, 4,
				"total", 0, 0, 0,
				60000, 100000, 0,
				0, 0, 0,
				"ACTIVE", "", ""))

	db.mock.ExpectExec("UPDATE trips SET status").
		WithArgs("CANCELLED", "client backed out", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	db.mock.ExpectQuery("SELECT (.+) FROM receivables WHERE trip_id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "client_id", "trip_id", "invoice_number",
			"total_amount", "paid_amount", "due_date", "status",
		}).AddRow(51, 3, 9, "INV-TRP-AAAA1111", 100000, 0, "2026-07-31", "pending"))
	db.mock.ExpectExec("UPDATE receivables SET status").
		WithArgs("cancelled", int64(51)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	db.mock.ExpectQuery("SELECT (.+) FROM payables WHERE trip_id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "vendor_id", "trip_id", "bill_number",
			"total_amount", "paid_amount", "due_date", "status",
		}).AddRow(52, 4, 9, "BILL-TRP-AAAA1111", 60000, 0, "2026-07-31", "pending"))
	db.mock.ExpectExec("UPDATE payables SET status").
		WithArgs("cancelled", int64(52)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := tripService(db)
	if err := svc.Cancel(9, "client backed out"); err != nil {
		t.Fatalf("cancel error: %v", err)
	}
	if err := db.mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCancelWithoutReasonRejected(t *testing.T) {
	db := newSQLMock(t)
	defer db.Close()

	db.mock.ExpectQuery("SELECT (.+) FROM trips WHERE id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(tripRowCols()).
			AddRow(9, "TRP-AAAA1111", "2026-07-01", 2, 3, 4,
				"total", 0, 0, 0,
				60000, 100000, 0,
				0, 0, 0,
				"ACTIVE", "", ""))

	svc := tripService(db)
	if err := svc.Cancel(9, "  "); !domain.IsValidation(err) {
		t.Fatalf("cancel without reason must be a validation error, got %v", err)
	}
}

func TestCancelledTripCannotComplete(t *testing.T) {
	db := newSQLMock(t)
	defer db.Close()

	db.mock.ExpectQuery("SELECT (.+) FROM trips WHERE id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(tripRowCols()).
			AddRow(9, "TRP-AAAA1111", "2026-07-01", 2, 3, 4,
				"total", 0, 0, 0,
				60000, 100000, 0,
				0, 0, 0,
				"CANCELLED", "dup entry", ""))

	svc := tripService(db)
	if _, err := svc.Complete(9); !domain.IsValidation(err) {
		t.Fatalf("cancelled trip must never complete, got %v", err)
	}
}
