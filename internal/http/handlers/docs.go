package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/repositories"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/services"
)

func docsService(c *gin.Context) services.DocsService {
	return services.DocsService{
		TripRepo:    repositories.TripRepository{},
		PartyRepo:   repositories.PartyRepository{},
		PayrollRepo: repositories.PayrollRepository{},
		StaffRepo:   repositories.StaffRepository{},
		RequestID:   requestID(c),
	}
}

// GET /api/trips/:id/invoice
func GetTripInvoicePDF(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	data, name, err := docsService(c).TripInvoicePDF(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// GET /api/payroll/:id/slip
func GetPayrollSlipPDF(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	data, name, err := docsService(c).PayrollSlipPDF(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
