package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/GhulamAlichaudhry/pgt-tms-backend/internal/config"
	intdb "github.com/GhulamAlichaudhry/pgt-tms-backend/internal/db"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
)

type PayableRepository struct {
	DB *sql.DB
}

func (r PayableRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const payableColumns = `id, vendor_id, COALESCE(trip_id,0), bill_number,
	COALESCE(total_amount,0), COALESCE(paid_amount,0), due_date, status`

func scanPayable(row interface{ Scan(...any) error }) (models.Payable, error) {
	var p models.Payable
	var status string
	err := row.Scan(
		&p.ID, &p.VendorID, &p.TripID, &p.BillNumber,
		&p.TotalAmount, &p.PaidAmount, &p.DueDate, &status,
	)
	p.Status = domain.ReceivableStatus(strings.TrimSpace(status))
	return p, err
}

func (r PayableRepository) List(vendorID int64, status domain.ReceivableStatus) ([]models.Payable, error) {
	where := []string{"1=1"}
	args := []any{}
	if vendorID > 0 {
		where = append(where, "vendor_id = ?")
		args = append(args, vendorID)
	}
	if status != "" {
		where = append(where, "status = ?")
		args = append(args, string(status))
	}

	rows, err := r.db().Query(`SELECT `+payableColumns+` FROM payables WHERE `+strings.Join(where, " AND ")+` ORDER BY due_date ASC, id ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Payable{}
	for rows.Next() {
		p, err := scanPayable(rows)
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PayableRepository) GetByID(id int64) (models.Payable, error) {
	row := r.db().QueryRow(`SELECT `+payableColumns+` FROM payables WHERE id = ?`, id)
	p, err := scanPayable(row)
	if err == sql.ErrNoRows {
		return p, domain.NotFoundError{Resource: "payable"}
	}
	return p, err
}

func (r PayableRepository) GetByTripID(tripID int64) (models.Payable, error) {
	row := r.db().QueryRow(`SELECT `+payableColumns+` FROM payables WHERE trip_id = ?`, tripID)
	p, err := scanPayable(row)
	if err == sql.ErrNoRows {
		return p, domain.NotFoundError{Resource: "payable"}
	}
	return p, err
}

func (r PayableRepository) BillExists(billNumber string, excludeID int64) (bool, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM payables WHERE bill_number = ? AND id <> ?`, billNumber, excludeID).Scan(&n)
	return n > 0, err
}

func (r PayableRepository) Create(p models.Payable) (int64, error) {
	var tripID any
	if p.TripID > 0 {
		tripID = p.TripID
	}
	res, err := r.db().Exec(`
		INSERT INTO payables (vendor_id, trip_id, bill_number, total_amount, paid_amount, due_date, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, p.VendorID, tripID, p.BillNumber, p.TotalAmount, p.PaidAmount, p.DueDate, string(p.Status))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ApplySettlement mirrors ReceivableRepository.ApplyCollection.
func (r PayableRepository) ApplySettlement(s models.Settlement, newPaid int64, newStatus domain.ReceivableStatus) (int64, error) {
	tx, err := r.db().Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO settlements (payable_id, amount, paid_on, channel, remarks, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())
	`, s.PayableID, s.Amount, s.Date, s.Channel, intdb.NullIfEmpty(s.Remarks))
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if _, err := tx.Exec(`UPDATE payables SET paid_amount=?, status=?, updated_at=NOW() WHERE id=?`,
		newPaid, string(newStatus), s.PayableID); err != nil {
		return 0, err
	}

	return id, tx.Commit()
}

func (r PayableRepository) UpdateStatus(id int64, status domain.ReceivableStatus) error {
	_, err := r.db().Exec(`UPDATE payables SET status=?, updated_at=NOW() WHERE id=?`, string(status), id)
	return err
}

func (r PayableRepository) ListSettlements(payableID int64) ([]models.Settlement, error) {
	rows, err := r.db().Query(`
		SELECT id, payable_id, COALESCE(amount,0), paid_on, COALESCE(channel,''), COALESCE(remarks,'')
		FROM settlements
		WHERE payable_id = ?
		ORDER BY paid_on ASC, id ASC
	`, payableID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Settlement{}
	for rows.Next() {
		var s models.Settlement
		if err := rows.Scan(&s.ID, &s.PayableID, &s.Amount, &s.Date, &s.Channel, &s.Remarks); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// VendorLedgerRows returns bill debits and settlement credits for one
// vendor, oldest first.
func (r PayableRepository) VendorLedgerRows(vendorID int64) ([]models.PartyLedgerRow, error) {
	rows, err := r.db().Query(`
		SELECT entry_date, reference, description, debit, credit FROM (
			SELECT p.due_date AS entry_date, p.bill_number AS reference,
			       'bill' AS description, p.total_amount AS debit, 0 AS credit, p.id AS sort_id
			FROM payables p
			WHERE p.vendor_id = ? AND p.status <> 'cancelled'
			UNION ALL
			SELECT s.paid_on, p.bill_number, CONCAT('settlement/', s.channel), 0, s.amount, s.id
			FROM settlements s
			JOIN payables p ON p.id = s.payable_id
			WHERE p.vendor_id = ? AND p.status <> 'cancelled'
		) ledger
		ORDER BY entry_date ASC, sort_id ASC
	`, vendorID, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PartyLedgerRow{}
	for rows.Next() {
		var row models.PartyLedgerRow
		if err := rows.Scan(&row.Date, &row.Reference, &row.Description, &row.Debit, &row.Credit); err != nil {
			return out, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
