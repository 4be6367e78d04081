package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/repositories"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/services"
)

func payrollService(c *gin.Context) services.PayrollService {
	return services.PayrollService{
		PayrollRepo: repositories.PayrollRepository{},
		StaffRepo:   repositories.StaffRepository{},
		RequestID:   requestID(c),
	}
}

// GET /api/payroll?month=&year=
func GetPayroll(c *gin.Context) {
	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))

	entries, err := payrollService(c).ListByPeriod(month, year)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// POST /api/payroll
func GeneratePayroll(c *gin.Context) {
	var in services.GenerateInput
	if !BindJSONOrError(c, &in) {
		return
	}
	entry, err := payrollService(c).Generate(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// POST /api/payroll/:id/pay
func MarkPayrollPaid(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	entry, err := payrollService(c).MarkPaid(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}
