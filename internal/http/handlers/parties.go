package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/repositories"
)

// GET /api/parties?kind=client|vendor
func GetParties(c *gin.Context) {
	kind := models.PartyKind(c.Query("kind"))
	repo := repositories.PartyRepository{}
	out, err := repo.List(kind)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "party list failed", Err: err})
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/parties
func CreateParty(c *gin.Context) {
	var p models.Party
	if !BindJSONOrError(c, &p) {
		return
	}
	if err := p.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}
	repo := repositories.PartyRepository{}
	id, err := repo.Create(p)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "party insert failed", Err: err})
		return
	}
	p.ID = id
	p.Active = true
	c.JSON(http.StatusCreated, p)
}

// PUT /api/parties/:id
func UpdateParty(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var p models.Party
	if !BindJSONOrError(c, &p) {
		return
	}
	repo := repositories.PartyRepository{}
	existing, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	p.ID = id
	p.Kind = existing.Kind
	if err := p.Validate(); err != nil {
		RespondDomainError(c, err)
		return
	}
	if err := repo.Update(p); err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "party update failed", Err: err})
		return
	}
	c.JSON(http.StatusOK, p)
}
