package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/repositories"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/services"
)

func receivableService(c *gin.Context) services.ReceivableService {
	return services.ReceivableService{
		ReceivableRepo: repositories.ReceivableRepository{},
		PartyRepo:      repositories.PartyRepository{},
		RequestID:      requestID(c),
	}
}

// GET /api/receivables
func GetReceivables(c *gin.Context) {
	clientID, _ := strconv.ParseInt(c.Query("client_id"), 10, 64)
	status := domain.ReceivableStatus(c.Query("status"))

	recs, err := receivableService(c).List(clientID, status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	out := make([]gin.H, 0, len(recs))
	for _, r := range recs {
		out = append(out, gin.H{"receivable": r, "remaining_amount": r.Remaining()})
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/receivables/:id
func GetReceivableByID(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	rec, cols, err := receivableService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"receivable":       rec,
		"remaining_amount": rec.Remaining(),
		"collections":      cols,
	})
}

// POST /api/receivables
func CreateReceivable(c *gin.Context) {
	var rec models.Receivable
	if !BindJSONOrError(c, &rec) {
		return
	}
	out, err := receivableService(c).Create(rec)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"receivable": out, "remaining_amount": out.Remaining()})
}

// POST /api/receivables/:id/collections
func CreateCollection(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var col models.Collection
	if !BindJSONOrError(c, &col) {
		return
	}
	col.ReceivableID = id

	rec, err := receivableService(c).Collect(col)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"receivable": rec, "remaining_amount": rec.Remaining()})
}

// GET /api/clients/:id/ledger
func GetClientLedger(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	ledger, err := receivableService(c).ClientLedger(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ledger)
}
