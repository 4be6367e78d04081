package repositories

import (
	"database/sql"

	intconfig "github.com/GhulamAlichaudhry/pgt-tms-backend/internal/config"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
)

type PayrollRepository struct {
	DB *sql.DB
}

func (r PayrollRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const payrollColumns = `id, staff_id, month, year,
	COALESCE(gross_salary,0), COALESCE(arrears,0), COALESCE(advance_deduction,0),
	COALESCE(other_deductions,0), COALESCE(net_payable,0), is_paid, COALESCE(paid_at,'')`

func scanPayroll(row interface{ Scan(...any) error }) (models.PayrollEntry, error) {
	var p models.PayrollEntry
	err := row.Scan(
		&p.ID, &p.StaffID, &p.Month, &p.Year,
		&p.GrossSalary, &p.Arrears, &p.AdvanceDeduction,
		&p.OtherDeductions, &p.NetPayable, &p.IsPaid, &p.PaidAt,
	)
	return p, err
}

// ListByPeriod returns all payroll entries for one month.
func (r PayrollRepository) ListByPeriod(month, year int) ([]models.PayrollEntry, error) {
	rows, err := r.db().Query(`SELECT `+payrollColumns+` FROM payroll_entries WHERE month = ? AND year = ? ORDER BY staff_id ASC`, month, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PayrollEntry{}
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PayrollRepository) GetByID(id int64) (models.PayrollEntry, error) {
	row := r.db().QueryRow(`SELECT `+payrollColumns+` FROM payroll_entries WHERE id = ?`, id)
	p, err := scanPayroll(row)
	if err == sql.ErrNoRows {
		return p, domain.NotFoundError{Resource: "payroll entry"}
	}
	return p, err
}

// Exists reports whether staff+month+year already has an entry; the sheet
// is keyed on that triple.
func (r PayrollRepository) Exists(staffID int64, month, year int) (bool, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM payroll_entries WHERE staff_id = ? AND month = ? AND year = ?`,
		staffID, month, year).Scan(&n)
	return n > 0, err
}

func (r PayrollRepository) Create(p models.PayrollEntry) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO payroll_entries (staff_id, month, year, gross_salary, arrears, advance_deduction, other_deductions, net_payable, is_paid, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, NOW(), NOW())
	`, p.StaffID, p.Month, p.Year, p.GrossSalary, p.Arrears, p.AdvanceDeduction, p.OtherDeductions, p.NetPayable)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r PayrollRepository) MarkPaid(id int64) error {
	_, err := r.db().Exec(`UPDATE payroll_entries SET is_paid=1, paid_at=NOW(), updated_at=NOW() WHERE id=?`, id)
	return err
}
