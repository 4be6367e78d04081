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

func payableService(c *gin.Context) services.PayableService {
	return services.PayableService{
		PayableRepo: repositories.PayableRepository{},
		PartyRepo:   repositories.PartyRepository{},
		RequestID:   requestID(c),
	}
}

// GET /api/payables
func GetPayables(c *gin.Context) {
	vendorID, _ := strconv.ParseInt(c.Query("vendor_id"), 10, 64)
	status := domain.ReceivableStatus(c.Query("status"))

	pays, err := payableService(c).List(vendorID, status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	out := make([]gin.H, 0, len(pays))
	for _, p := range pays {
		out = append(out, gin.H{"payable": p, "remaining_amount": p.Remaining()})
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/payables/:id
func GetPayableByID(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	pay, settles, err := payableService(c).Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"payable":          pay,
		"remaining_amount": pay.Remaining(),
		"settlements":      settles,
	})
}

// POST /api/payables
func CreatePayable(c *gin.Context) {
	var pay models.Payable
	if !BindJSONOrError(c, &pay) {
		return
	}
	out, err := payableService(c).Create(pay)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"payable": out, "remaining_amount": out.Remaining()})
}

// POST /api/payables/:id/settlements
func CreateSettlement(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var set models.Settlement
	if !BindJSONOrError(c, &set) {
		return
	}
	set.PayableID = id

	pay, err := payableService(c).Settle(set)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"payable": pay, "remaining_amount": pay.Remaining()})
}

// GET /api/vendors/:id/ledger
func GetVendorLedger(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	ledger, err := payableService(c).VendorLedger(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ledger)
}
