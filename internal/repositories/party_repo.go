package repositories

import (
	"database/sql"
	"strings"

	intconfig "github.com/GhulamAlichaudhry/pgt-tms-backend/internal/config"
	intdb "github.com/GhulamAlichaudhry/pgt-tms-backend/internal/db"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
)

type PartyRepository struct {
	DB *sql.DB
}

func (r PartyRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r PartyRepository) List(kind models.PartyKind) ([]models.Party, error) {
	where := "1=1"
	args := []any{}
	if kind != "" {
		where = "kind = ?"
		args = append(args, string(kind))
	}

	rows, err := r.db().Query(`
		SELECT id, name, kind, COALESCE(phone,''), COALESCE(address,''), active
		FROM parties WHERE `+where+` ORDER BY name ASC, id ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Party{}
	for rows.Next() {
		var p models.Party
		var kindRaw string
		if err := rows.Scan(&p.ID, &p.Name, &kindRaw, &p.Phone, &p.Address, &p.Active); err != nil {
			return out, err
		}
		p.Kind = models.PartyKind(strings.TrimSpace(kindRaw))
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PartyRepository) GetByID(id int64) (models.Party, error) {
	var p models.Party
	var kindRaw string
	err := r.db().QueryRow(`
		SELECT id, name, kind, COALESCE(phone,''), COALESCE(address,''), active
		FROM parties WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &kindRaw, &p.Phone, &p.Address, &p.Active)
	if err == sql.ErrNoRows {
		return p, domain.NotFoundError{Resource: "party"}
	}
	p.Kind = models.PartyKind(strings.TrimSpace(kindRaw))
	return p, err
}

func (r PartyRepository) Create(p models.Party) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO parties (name, kind, phone, address, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, 1, NOW(), NOW())
	`, p.Name, string(p.Kind), intdb.NullIfEmpty(p.Phone), intdb.NullIfEmpty(p.Address))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r PartyRepository) Update(p models.Party) error {
	_, err := r.db().Exec(`
		UPDATE parties SET name=?, phone=?, address=?, active=?, updated_at=NOW() WHERE id=?
	`, p.Name, intdb.NullIfEmpty(p.Phone), intdb.NullIfEmpty(p.Address), p.Active, p.ID)
	return err
}
