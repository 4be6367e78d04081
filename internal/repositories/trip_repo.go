package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/GhulamAlichaudhry/pgt-tms-backend/internal/config"
	intdb "github.com/GhulamAlichaudhry/pgt-tms-backend/internal/db"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
)

type TripRepository struct {
	DB *sql.DB
}

func (r TripRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripColumns = `id, reference, trip_date, vehicle_id, client_id, vendor_id,
	freight_mode, COALESCE(total_tonnage,0), COALESCE(billing_tonnage,0), COALESCE(rate_per_ton,0),
	COALESCE(vendor_freight,0), COALESCE(client_freight,0), COALESCE(local_shifting_charges,0),
	COALESCE(advance_paid,0), COALESCE(fuel_cost,0), COALESCE(other_charges,0),
	status, COALESCE(cancel_reason,''), COALESCE(remarks,'')`

func scanTrip(row interface{ Scan(...any) error }) (models.Trip, error) {
	var t models.Trip
	var mode, status string
	err := row.Scan(
		&t.ID, &t.Reference, &t.TripDate, &t.VehicleID, &t.ClientID, &t.VendorID,
		&mode, &t.TotalTonnage, &t.BillingTonnage, &t.RatePerTon,
		&t.VendorFreight, &t.ClientFreight, &t.LocalShifting,
		&t.AdvancePaid, &t.FuelCost, &t.OtherCharges,
		&status, &t.CancelReason, &t.Remarks,
	)
	if err != nil {
		return t, err
	}
	t.FreightMode = domain.FreightMode(strings.TrimSpace(mode))
	if st, ok := domain.ParseTripStatus(status); ok {
		t.Status = st
	} else {
		t.Status = domain.TripActive
	}
	return t, nil
}

// List returns trips newest first, optionally filtered by date range and status.
func (r TripRepository) List(startDate, endDate string, status domain.TripStatus) ([]models.Trip, error) {
	where := []string{"1=1"}
	args := []any{}
	if s := strings.TrimSpace(startDate); s != "" {
		where = append(where, "trip_date >= ?")
		args = append(args, s)
	}
	if s := strings.TrimSpace(endDate); s != "" {
		where = append(where, "trip_date <= ?")
		args = append(args, s)
	}
	if status != "" {
		where = append(where, "status = ?")
		args = append(args, string(status))
	}

	rows, err := r.db().Query(`SELECT `+tripColumns+` FROM trips WHERE `+strings.Join(where, " AND ")+` ORDER BY trip_date DESC, id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TripRepository) GetByID(id int64) (models.Trip, error) {
	row := r.db().QueryRow(`SELECT `+tripColumns+` FROM trips WHERE id = ?`, id)
	t, err := scanTrip(row)
	if err == sql.ErrNoRows {
		return t, domain.NotFoundError{Resource: "trip"}
	}
	return t, err
}

func (r TripRepository) ReferenceExists(reference string, excludeID int64) (bool, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM trips WHERE reference = ? AND id <> ?`, reference, excludeID).Scan(&n)
	return n > 0, err
}

func (r TripRepository) Create(t models.Trip) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO trips (reference, trip_date, vehicle_id, client_id, vendor_id,
			freight_mode, total_tonnage, billing_tonnage, rate_per_ton,
			vendor_freight, client_freight, local_shifting_charges,
			advance_paid, fuel_cost, other_charges,
			status, remarks, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`,
		t.Reference, t.TripDate, t.VehicleID, t.ClientID, t.VendorID,
		string(t.FreightMode), t.TotalTonnage, t.BillingTonnage, t.RatePerTon,
		t.VendorFreight, t.ClientFreight, t.LocalShifting,
		t.AdvancePaid, t.FuelCost, t.OtherCharges,
		string(t.Status), intdb.NullIfEmpty(t.Remarks),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Update rewrites the editable fields. Callers gate financial edits on
// trip status before reaching here.
func (r TripRepository) Update(t models.Trip) error {
	_, err := r.db().Exec(`
		UPDATE trips SET reference=?, trip_date=?, vehicle_id=?, client_id=?, vendor_id=?,
			freight_mode=?, total_tonnage=?, billing_tonnage=?, rate_per_ton=?,
			vendor_freight=?, client_freight=?, local_shifting_charges=?,
			advance_paid=?, fuel_cost=?, other_charges=?,
			remarks=?, updated_at=NOW()
		WHERE id=?
	`,
		t.Reference, t.TripDate, t.VehicleID, t.ClientID, t.VendorID,
		string(t.FreightMode), t.TotalTonnage, t.BillingTonnage, t.RatePerTon,
		t.VendorFreight, t.ClientFreight, t.LocalShifting,
		t.AdvancePaid, t.FuelCost, t.OtherCharges,
		intdb.NullIfEmpty(t.Remarks), t.ID,
	)
	return err
}

func (r TripRepository) UpdateStatus(id int64, status domain.TripStatus, reason string) error {
	_, err := r.db().Exec(`UPDATE trips SET status=?, cancel_reason=?, updated_at=NOW() WHERE id=?`,
		string(status), intdb.NullIfEmpty(strings.TrimSpace(reason)), id)
	return err
}
