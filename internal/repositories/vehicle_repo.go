package repositories

import (
	"database/sql"

	intconfig "github.com/GhulamAlichaudhry/pgt-tms-backend/internal/config"
	intdb "github.com/GhulamAlichaudhry/pgt-tms-backend/internal/db"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
)

type VehicleRepository struct {
	DB *sql.DB
}

func (r VehicleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r VehicleRepository) List() ([]models.Vehicle, error) {
	rows, err := r.db().Query(`
		SELECT id, reg_number, COALESCE(model,''), COALESCE(capacity_tons,0), owned, active
		FROM vehicles ORDER BY reg_number ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Vehicle{}
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.RegNumber, &v.Model, &v.CapacityTons, &v.Owned, &v.Active); err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r VehicleRepository) GetByID(id int64) (models.Vehicle, error) {
	var v models.Vehicle
	err := r.db().QueryRow(`
		SELECT id, reg_number, COALESCE(model,''), COALESCE(capacity_tons,0), owned, active
		FROM vehicles WHERE id = ?`, id).
		Scan(&v.ID, &v.RegNumber, &v.Model, &v.CapacityTons, &v.Owned, &v.Active)
	if err == sql.ErrNoRows {
		return v, domain.NotFoundError{Resource: "vehicle"}
	}
	return v, err
}

func (r VehicleRepository) Create(v models.Vehicle) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO vehicles (reg_number, model, capacity_tons, owned, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, 1, NOW(), NOW())
	`, v.RegNumber, intdb.NullIfEmpty(v.Model), v.CapacityTons, v.Owned)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r VehicleRepository) Update(v models.Vehicle) error {
	_, err := r.db().Exec(`
		UPDATE vehicles SET reg_number=?, model=?, capacity_tons=?, owned=?, active=?, updated_at=NOW() WHERE id=?
	`, v.RegNumber, intdb.NullIfEmpty(v.Model), v.CapacityTons, v.Owned, v.Active, v.ID)
	return err
}
