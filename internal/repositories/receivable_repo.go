package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/GhulamAlichaudhry/pgt-tms-backend/internal/config"
	intdb "github.com/GhulamAlichaudhry/pgt-tms-backend/internal/db"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
)

type ReceivableRepository struct {
	DB *sql.DB
}

func (r ReceivableRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const receivableColumns = `id, client_id, COALESCE(trip_id,0), invoice_number,
	COALESCE(total_amount,0), COALESCE(paid_amount,0), due_date, status`

func scanReceivable(row interface{ Scan(...any) error }) (models.Receivable, error) {
	var rec models.Receivable
	var status string
	err := row.Scan(
		&rec.ID, &rec.ClientID, &rec.TripID, &rec.InvoiceNumber,
		&rec.TotalAmount, &rec.PaidAmount, &rec.DueDate, &status,
	)
	rec.Status = domain.ReceivableStatus(strings.TrimSpace(status))
	return rec, err
}

func (r ReceivableRepository) List(clientID int64, status domain.ReceivableStatus) ([]models.Receivable, error) {
	where := []string{"1=1"}
	args := []any{}
	if clientID > 0 {
		where = append(where, "client_id = ?")
		args = append(args, clientID)
	}
	if status != "" {
		where = append(where, "status = ?")
		args = append(args, string(status))
	}

	rows, err := r.db().Query(`SELECT `+receivableColumns+` FROM receivables WHERE `+strings.Join(where, " AND ")+` ORDER BY due_date ASC, id ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Receivable{}
	for rows.Next() {
		rec, err := scanReceivable(rows)
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r ReceivableRepository) GetByID(id int64) (models.Receivable, error) {
	row := r.db().QueryRow(`SELECT `+receivableColumns+` FROM receivables WHERE id = ?`, id)
	rec, err := scanReceivable(row)
	if err == sql.ErrNoRows {
		return rec, domain.NotFoundError{Resource: "receivable"}
	}
	return rec, err
}

func (r ReceivableRepository) GetByTripID(tripID int64) (models.Receivable, error) {
	row := r.db().QueryRow(`SELECT `+receivableColumns+` FROM receivables WHERE trip_id = ?`, tripID)
	rec, err := scanReceivable(row)
	if err == sql.ErrNoRows {
		return rec, domain.NotFoundError{Resource: "receivable"}
	}
	return rec, err
}

func (r ReceivableRepository) InvoiceExists(invoiceNumber string, excludeID int64) (bool, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM receivables WHERE invoice_number = ? AND id <> ?`, invoiceNumber, excludeID).Scan(&n)
	return n > 0, err
}

func (r ReceivableRepository) Create(rec models.Receivable) (int64, error) {
	var tripID any
	if rec.TripID > 0 {
		tripID = rec.TripID
	}
	res, err := r.db().Exec(`
		INSERT INTO receivables (client_id, trip_id, invoice_number, total_amount, paid_amount, due_date, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`, rec.ClientID, tripID, rec.InvoiceNumber, rec.TotalAmount, rec.PaidAmount, rec.DueDate, string(rec.Status))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ApplyCollection records the collection row and bumps paid_amount/status
// in one transaction so a failure never leaves the two halves apart.
func (r ReceivableRepository) ApplyCollection(col models.Collection, newPaid int64, newStatus domain.ReceivableStatus) (int64, error) {
	tx, err := r.db().Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO collections (receivable_id, amount, collected_on, channel, remarks, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())
	`, col.ReceivableID, col.Amount, col.Date, col.Channel, intdb.NullIfEmpty(col.Remarks))
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if _, err := tx.Exec(`UPDATE receivables SET paid_amount=?, status=?, updated_at=NOW() WHERE id=?`,
		newPaid, string(newStatus), col.ReceivableID); err != nil {
		return 0, err
	}

	return id, tx.Commit()
}

func (r ReceivableRepository) UpdateStatus(id int64, status domain.ReceivableStatus) error {
	_, err := r.db().Exec(`UPDATE receivables SET status=?, updated_at=NOW() WHERE id=?`, string(status), id)
	return err
}

func (r ReceivableRepository) ListCollections(receivableID int64) ([]models.Collection, error) {
	rows, err := r.db().Query(`
		SELECT id, receivable_id, COALESCE(amount,0), collected_on, COALESCE(channel,''), COALESCE(remarks,'')
		FROM collections
		WHERE receivable_id = ?
		ORDER BY collected_on ASC, id ASC
	`, receivableID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Collection{}
	for rows.Next() {
		var c models.Collection
		if err := rows.Scan(&c.ID, &c.ReceivableID, &c.Amount, &c.Date, &c.Channel, &c.Remarks); err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ClientLedgerRows returns invoice debits and collection credits for one
// client, oldest first, ready for the running-balance fold.
func (r ReceivableRepository) ClientLedgerRows(clientID int64) ([]models.PartyLedgerRow, error) {
	rows, err := r.db().Query(`
		SELECT entry_date, reference, description, debit, credit FROM (
			SELECT r.due_date AS entry_date, r.invoice_number AS reference,
			       'invoice' AS description, r.total_amount AS debit, 0 AS credit, r.id AS sort_id
			FROM receivables r
			WHERE r.client_id = ? AND r.status <> 'cancelled'
			UNION ALL
			SELECT c.collected_on, r.invoice_number, CONCAT('collection/', c.channel), 0, c.amount, c.id
			FROM collections c
			JOIN receivables r ON r.id = c.receivable_id
			WHERE r.client_id = ? AND r.status <> 'cancelled'
		) ledger
		ORDER BY entry_date ASC, sort_id ASC
	`, clientID, clientID)
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
