package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/repositories"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/services"
)

func tripService(c *gin.Context) services.TripService {
	return services.TripService{
		TripRepo:       repositories.TripRepository{},
		ReceivableRepo: repositories.ReceivableRepository{},
		PayableRepo:    repositories.PayableRepository{},
		RequestID:      requestID(c),
	}
}

// GET /api/trips
func GetTrips(c *gin.Context) {
	var status domain.TripStatus
	if raw := c.Query("status"); raw != "" {
		st, ok := domain.ParseTripStatus(raw)
		if !ok {
			respondError(c, http.StatusBadRequest, "validation_error", "unknown status", nil)
			return
		}
		status = st
	}

	repo := repositories.TripRepository{}
	trips, err := repo.List(c.Query("start_date"), c.Query("end_date"), status)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Msg: "trip list failed", Err: err})
		return
	}

	out := make([]models.TripWithCalc, 0, len(trips))
	for _, t := range trips {
		out = append(out, models.TripWithCalc{Trip: t, Calc: domain.ComputeTrip(t.CalcInput())})
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/trips/:id
func GetTripByID(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	repo := repositories.TripRepository{}
	t, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.TripWithCalc{Trip: t, Calc: domain.ComputeTrip(t.CalcInput())})
}

// POST /api/trips
func CreateTrip(c *gin.Context) {
	var t models.Trip
	if !BindJSONOrError(c, &t) {
		return
	}
	out, err := tripService(c).Create(t)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// PUT /api/trips/:id
func UpdateTrip(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var t models.Trip
	if !BindJSONOrError(c, &t) {
		return
	}
	out, err := tripService(c).Update(id, t)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/trips/:id/complete
func CompleteTrip(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	out, err := tripService(c).Complete(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type cancelTripRequest struct {
	Reason string `json:"reason"`
}

// POST /api/trips/:id/cancel
func CancelTrip(c *gin.Context) {
	id, ok := IDParamOrError(c)
	if !ok {
		return
	}
	var req cancelTripRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := tripService(c).Cancel(id, strings.TrimSpace(req.Reason)); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "trip cancelled"})
}

// POST /api/trips/quote
// Returns derived figures for unsaved input, so forms can show profit and
// the loss warning as the user types without persisting anything.
func QuoteTrip(c *gin.Context) {
	var in domain.TripInput
	if !BindJSONOrError(c, &in) {
		return
	}
	c.JSON(http.StatusOK, domain.ComputeTrip(domain.NormalizeFreightInput(in)))
}
