package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	intconfig "github.com/GhulamAlichaudhry/pgt-tms-backend/internal/config"
	intdb "github.com/GhulamAlichaudhry/pgt-tms-backend/internal/db"
)

type ReportRepository struct {
	DB *sql.DB
}

func (r ReportRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// TripTotals are the raw sums the finance report is derived from.
type TripTotals struct {
	TripCount     int   `json:"trip_count"`
	ClientFreight int64 `json:"client_freight"`
	VendorFreight int64 `json:"vendor_freight"`
	LocalShifting int64 `json:"local_shifting_charges"`
	AdvancePaid   int64 `json:"advance_paid"`
	FuelCost      int64 `json:"fuel_cost"`
	OtherCharges  int64 `json:"other_charges"`
}

// SumTrips aggregates non-cancelled trips over a date range. Optional
// charge columns added in later schema revisions are probed first so the
// report still works against an older database.
func (r ReportRepository) SumTrips(startDate, endDate string) (TripTotals, error) {
	var t TripTotals
	db := r.db()

	cols := []string{
		"COUNT(*)",
		"COALESCE(SUM(client_freight),0)",
		"COALESCE(SUM(vendor_freight),0)",
		"COALESCE(SUM(local_shifting_charges),0)",
		"COALESCE(SUM(advance_paid),0)",
	}
	hasFuel := intdb.HasColumn(db, "trips", "fuel_cost")
	hasOther := intdb.HasColumn(db, "trips", "other_charges")
	if hasFuel {
		cols = append(cols, "COALESCE(SUM(fuel_cost),0)")
	} else {
		cols = append(cols, "0")
	}
	if hasOther {
		cols = append(cols, "COALESCE(SUM(other_charges),0)")
	} else {
		cols = append(cols, "0")
	}

	where := []string{"status <> 'CANCELLED'"}
	args := []any{}
	if s := strings.TrimSpace(startDate); s != "" {
		where = append(where, "trip_date >= ?")
		args = append(args, s)
	}
	if s := strings.TrimSpace(endDate); s != "" {
		where = append(where, "trip_date <= ?")
		args = append(args, s)
	}

	query := fmt.Sprintf(`SELECT %s FROM trips WHERE %s`, strings.Join(cols, ","), strings.Join(where, " AND "))
	err := db.QueryRow(query, args...).Scan(
		&t.TripCount, &t.ClientFreight, &t.VendorFreight, &t.LocalShifting,
		&t.AdvancePaid, &t.FuelCost, &t.OtherCharges,
	)
	return t, err
}

// OutstandingReceivables sums remaining amounts on open receivables.
func (r ReportRepository) OutstandingReceivables() (int64, error) {
	var total int64
	err := r.db().QueryRow(`
		SELECT COALESCE(SUM(total_amount - paid_amount), 0)
		FROM receivables
		WHERE status NOT IN ('paid', 'cancelled')
	`).Scan(&total)
	return total, err
}

// OutstandingPayables sums remaining amounts on open payables.
func (r ReportRepository) OutstandingPayables() (int64, error) {
	var total int64
	err := r.db().QueryRow(`
		SELECT COALESCE(SUM(total_amount - paid_amount), 0)
		FROM payables
		WHERE status NOT IN ('paid', 'cancelled')
	`).Scan(&total)
	return total, err
}

// AdvanceExposure sums outstanding staff advances.
func (r ReportRepository) AdvanceExposure() (int64, error) {
	var total int64
	err := r.db().QueryRow(`
		SELECT COALESCE(SUM(advance_balance), 0) FROM staff WHERE advance_balance > 0
	`).Scan(&total)
	return total, err
}
