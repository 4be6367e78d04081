package models

import (
	"strings"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
)

// Vehicle is a truck in the fleet, owned or hired.
type Vehicle struct {
	ID           int64   `json:"id"`
	RegNumber    string  `json:"reg_number"`
	Model        string  `json:"model,omitempty"`
	CapacityTons float64 `json:"capacity_tons,omitempty"`
	Owned        bool    `json:"owned"`
	Active       bool    `json:"active"`
	CreatedAt    string  `json:"created_at,omitempty"`
}

func (v Vehicle) Validate() error {
	if strings.TrimSpace(v.RegNumber) == "" {
		return domain.ValidationError{Field: "reg_number", Msg: "registration number is required"}
	}
	return nil
}
