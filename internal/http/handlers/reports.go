package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/repositories"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/services"
)

func reportService(c *gin.Context) services.ReportService {
	return services.ReportService{
		ReportRepo: repositories.ReportRepository{},
		RequestID:  requestID(c),
	}
}

// GET /api/reports/finance?start_date=&end_date=
func GetFinanceReport(c *gin.Context) {
	report, err := reportService(c).Finance(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GET /api/reports/finance/export
func ExportFinanceReport(c *gin.Context) {
	svc := services.ExportService{ReportSvc: reportService(c), RequestID: requestID(c)}
	data, name, err := svc.FinanceXLSX(c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
