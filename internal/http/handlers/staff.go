package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/repositories"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/services"
)

func staffService(c *gin.Context) services.StaffService {
	return services.StaffService{
		StaffRepo: repositories.StaffRepository{},
		RequestID: requestID(c),
	}
}

// GET /api/staff
func GetStaff(c *gin.Context) {
	status := domain.StaffStatus(c.Query("status"))
	repo := repositories.StaffRepository{}
	out, err := repo.List(status)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "staff list failed", Err: err})
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/staff
func CreateStaff(c *gin.Context) {
	var st models.Staff
	if !BindJSONOrError(c, &st) {
		return
	}
	out, err := staffService(c).Create(st)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// PUT /api/staff/:id
func UpdateStaff(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var st models.Staff
	if !BindJSONOrError(c, &st) {
		return
	}
	out, err := staffService(c).Update(id, st)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type advanceRequest struct {
	Amount      int64  `json:"amount"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// POST /api/staff/:id/advances
func GrantAdvance(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var req advanceRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	entry, err := staffService(c).GrantAdvance(id, req.Amount, req.Date, req.Description)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// POST /api/staff/:id/recoveries
func RecordRecovery(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var req advanceRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	entry, err := staffService(c).RecordRecovery(id, req.Amount, req.Date, req.Description)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// GET /api/staff/:id/ledger
func GetAdvanceLedger(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	ledger, err := staffService(c).Ledger(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ledger)
}

type exitRequest struct {
	Override bool `json:"override"`
}

// POST /api/staff/:id/exit
func ExitStaff(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var req exitRequest
	if c.Request.ContentLength > 0 {
		if !BindJSONOrError(c, &req) {
			return
		}
	}
	if err := staffService(c).Exit(id, req.Override); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "staff marked inactive"})
}
