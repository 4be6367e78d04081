package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/GhulamAlichaudhry/pgt-tms-backend/internal/config"
	intdb "github.com/GhulamAlichaudhry/pgt-tms-backend/internal/db"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
)

type StaffRepository struct {
	DB *sql.DB
}

func (r StaffRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const staffColumns = `id, name, COALESCE(phone,''), COALESCE(designation,''),
	COALESCE(gross_salary,0), COALESCE(monthly_deduction,0), COALESCE(advance_balance,0),
	status, COALESCE(joined_at,'')`

func scanStaff(row interface{ Scan(...any) error }) (models.Staff, error) {
	var s models.Staff
	var status string
	err := row.Scan(
		&s.ID, &s.Name, &s.Phone, &s.Designation,
		&s.GrossSalary, &s.MonthlyDeduction, &s.AdvanceBalance,
		&status, &s.JoinedAt,
	)
	s.Status = domain.StaffStatus(strings.TrimSpace(status))
	return s, err
}

func (r StaffRepository) List(status domain.StaffStatus) ([]models.Staff, error) {
	where := "1=1"
	args := []any{}
	if status != "" {
		where = "status = ?"
		args = append(args, string(status))
	}

	rows, err := r.db().Query(`SELECT `+staffColumns+` FROM staff WHERE `+where+` ORDER BY name ASC, id ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Staff{}
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r StaffRepository) GetByID(id int64) (models.Staff, error) {
	row := r.db().QueryRow(`SELECT `+staffColumns+` FROM staff WHERE id = ?`, id)
	s, err := scanStaff(row)
	if err == sql.ErrNoRows {
		return s, domain.NotFoundError{Resource: "staff"}
	}
	return s, err
}

func (r StaffRepository) Create(s models.Staff) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO staff (name, phone, designation, gross_salary, monthly_deduction, advance_balance, status, joined_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 0, ?, ?, NOW(), NOW())
	`, s.Name, intdb.NullIfEmpty(s.Phone), intdb.NullIfEmpty(s.Designation),
		s.GrossSalary, s.MonthlyDeduction, string(s.Status), intdb.NullIfEmpty(s.JoinedAt))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r StaffRepository) Update(s models.Staff) error {
	_, err := r.db().Exec(`
		UPDATE staff SET name=?, phone=?, designation=?, gross_salary=?, monthly_deduction=?, updated_at=NOW()
		WHERE id=?
	`, s.Name, intdb.NullIfEmpty(s.Phone), intdb.NullIfEmpty(s.Designation),
		s.GrossSalary, s.MonthlyDeduction, s.ID)
	return err
}

func (r StaffRepository) UpdateStatus(id int64, status domain.StaffStatus) error {
	_, err := r.db().Exec(`UPDATE staff SET status=?, updated_at=NOW() WHERE id=?`, string(status), id)
	return err
}

// ListAdvanceEntries returns a staff member's ledger oldest first; the
// stored balance_after column is what the reducer wrote at insert time.
func (r StaffRepository) ListAdvanceEntries(staffID int64) ([]models.AdvanceEntry, error) {
	rows, err := r.db().Query(`
		SELECT id, staff_id, entry_date, COALESCE(amount,0), COALESCE(description,''), COALESCE(balance_after,0)
		FROM staff_advances
		WHERE staff_id = ?
		ORDER BY entry_date ASC, id ASC
	`, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.AdvanceEntry{}
	for rows.Next() {
		var e models.AdvanceEntry
		if err := rows.Scan(&e.ID, &e.StaffID, &e.Date, &e.Amount, &e.Description, &e.BalanceAfter); err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// AppendAdvanceEntry stores the entry and the new running balance in one
// transaction; the staff row's advance_balance always equals the last
// entry's balance_after.
func (r StaffRepository) AppendAdvanceEntry(e models.AdvanceEntry) (int64, error) {
	tx, err := r.db().Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO staff_advances (staff_id, entry_date, amount, description, balance_after, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())
	`, e.StaffID, e.Date, e.Amount, intdb.NullIfEmpty(e.Description), e.BalanceAfter)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if _, err := tx.Exec(`UPDATE staff SET advance_balance=?, updated_at=NOW() WHERE id=?`,
		e.BalanceAfter, e.StaffID); err != nil {
		return 0, err
	}

	return id, tx.Commit()
}
