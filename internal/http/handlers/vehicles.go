package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/repositories"
)

// GET /api/vehicles
func GetVehicles(c *gin.Context) {
	repo := repositories.VehicleRepository{}
	out, err := repo.List()
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "vehicle list failed", Err: err})
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/vehicles
func CreateVehicle(c *gin.Context) {
	var v models.Vehicle
	if !BindJSONOrError(c, &v) {
		return
	}
	if err := v.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}
	repo := repositories.VehicleRepository{}
	id, err := repo.Create(v)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "vehicle insert failed", Err: err})
		return
	}
	v.ID = id
	v.Active = true
	c.JSON(http.StatusCreated, v)
}

// PUT /api/vehicles/:id
func UpdateVehicle(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var v models.Vehicle
	if !BindJSONOrError(c, &v) {
		return
	}
	v.ID = id
	if err := v.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}
	repo := repositories.VehicleRepository{}
	if _, err := repo.GetByID(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := repo.Update(v); err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "vehicle update failed", Err: err})
		return
	}
	c.JSON(http.StatusOK, v)
}
