package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain/models"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/repositories"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/utils"
)

// TripService owns the trip lifecycle: create/update with server-side
// recomputation of derived fields, completion (raises the client invoice
// and vendor bill), and cancellation (reverses both).
type TripService struct {
	TripRepo       repositories.TripRepository
	ReceivableRepo repositories.ReceivableRepository
	PayableRepo    repositories.PayableRepository
	RequestID      string
}

// settlementTermDays is how long clients/vendors get to settle a trip's
// invoice or bill.
const settlementTermDays = 30

// Create validates, normalizes and stores a new trip. The stored
// client_freight is always the derived value, so a later read recomputes
// to the same figures.
func (s TripService) Create(t models.Trip) (models.TripWithCalc, error) {
	var out models.TripWithCalc

	if strings.TrimSpace(t.Reference) == "" {
		t.Reference = generateTripReference()
	}
	t = normalizeTrip(t)
	if err := t.Validate(); err != nil {
		return out, err
	}

	if exists, err := s.TripRepo.ReferenceExists(t.Reference, 0); err != nil {
		return out, domain.InternalError{Msg: "reference lookup failed", Err: err}
	} else if exists {
		return out, domain.ConflictError{Resource: "trip", Msg: "reference already in use"}
	}

	if t.Status == "" {
		t.Status = domain.TripActive
	}
	if t.Status != domain.TripDraft && t.Status != domain.TripActive {
		return out, domain.ValidationError{Field: "status", Msg: "new trips start as DRAFT or ACTIVE"}
	}

	calc := domain.ComputeTrip(t.CalcInput())
	t.ClientFreight = calc.ClientFreight

	id, err := s.TripRepo.Create(t)
	if err != nil {
		return out, domain.InternalError{Msg: "trip insert failed", Err: err}
	}
	t.ID = id

	utils.LogEvent(s.RequestID, "trip", "create", fmt.Sprintf("id=%d ref=%s", id, t.Reference))
	return models.TripWithCalc{Trip: t, Calc: calc}, nil
}

// Update rewrites an editable trip. Financial edits on terminal trips are
// rejected here, before anything reaches the database.
func (s TripService) Update(id int64, t models.Trip) (models.TripWithCalc, error) {
	var out models.TripWithCalc

	existing, err := s.TripRepo.GetByID(id)
	if err != nil {
		return out, err
	}
	if existing.Status.IsTerminal() {
		return out, domain.ConflictError{Resource: "trip", Msg: "financial fields are locked in status " + string(existing.Status)}
	}

	t.ID = id
	t.Status = existing.Status
	if strings.TrimSpace(t.Reference) == "" {
		t.Reference = existing.Reference
	}
	t = normalizeTrip(t)
	if err := t.Validate(); err != nil {
		return out, err
	}

	if exists, err := s.TripRepo.ReferenceExists(t.Reference, id); err != nil {
		return out, domain.InternalError{Msg: "reference lookup failed", Err: err}
	} else if exists {
		return out, domain.ConflictError{Resource: "trip", Msg: "reference already in use"}
	}

	calc := domain.ComputeTrip(t.CalcInput())
	t.ClientFreight = calc.ClientFreight

	if err := s.TripRepo.Update(t); err != nil {
		return out, domain.InternalError{Msg: "trip update failed", Err: err}
	}

	utils.LogEvent(s.RequestID, "trip", "update", fmt.Sprintf("id=%d", id))
	return models.TripWithCalc{Trip: t, Calc: calc}, nil
}

// Complete transitions the trip to COMPLETED and raises the linked
// receivable (client side) and payable (vendor side).
func (s TripService) Complete(id int64) (models.TripWithCalc, error) {
	var out models.TripWithCalc

	t, err := s.TripRepo.GetByID(id)
	if err != nil {
		return out, err
	}
	if err := domain.ValidateTripTransition(t.Status, domain.TripCompleted, ""); err != nil {
		return out, err
	}

	calc := domain.ComputeTrip(t.CalcInput())
	due := time.Now().AddDate(0, 0, settlementTermDays).Format("2006-01-02")

	if err := s.TripRepo.UpdateStatus(id, domain.TripCompleted, ""); err != nil {
		return out, domain.InternalError{Msg: "status update failed", Err: err}
	}
	t.Status = domain.TripCompleted

	rec := models.Receivable{
		ClientID:      t.ClientID,
		TripID:        t.ID,
		InvoiceNumber: "INV-" + t.Reference,
		TotalAmount:   calc.ClientFreight,
		DueDate:       due,
		Status:        domain.ReceivablePending,
	}
	if _, err := s.ReceivableRepo.Create(rec); err != nil {
		utils.LogEvent(s.RequestID, "trip", "complete", fmt.Sprintf("id=%d receivable insert failed: %v", id, err))
		return out, domain.InternalError{Msg: "receivable insert failed", Err: err}
	}

	pay := models.Payable{
		VendorID:    t.VendorID,
		TripID:      t.ID,
		BillNumber:  "BILL-" + t.Reference,
		TotalAmount: t.VendorFreight,
		DueDate:     due,
		Status:      domain.ReceivablePending,
	}
	if _, err := s.PayableRepo.Create(pay); err != nil {
		utils.LogEvent(s.RequestID, "trip", "complete", fmt.Sprintf("id=%d payable insert failed: %v", id, err))
		return out, domain.InternalError{Msg: "payable insert failed", Err: err}
	}

	utils.LogEvent(s.RequestID, "trip", "complete", fmt.Sprintf("id=%d ref=%s", id, t.Reference))
	return models.TripWithCalc{Trip: t, Calc: calc}, nil
}

// Cancel transitions the trip to CANCELLED and reverses the linked
// receivable and payable so neither side keeps charging a dead trip.
func (s TripService) Cancel(id int64, reason string) error {
	t, err := s.TripRepo.GetByID(id)
	if err != nil {
		return err
	}
	if err := domain.ValidateTripTransition(t.Status, domain.TripCancelled, reason); err != nil {
		return err
	}

	if err := s.TripRepo.UpdateStatus(id, domain.TripCancelled, reason); err != nil {
		return domain.InternalError{Msg: "status update failed", Err: err}
	}

	if rec, err := s.ReceivableRepo.GetByTripID(id); err == nil {
		if err := s.ReceivableRepo.UpdateStatus(rec.ID, domain.ReceivableCancelled); err != nil {
			return domain.InternalError{Msg: "receivable reversal failed", Err: err}
		}
	} else if !domain.IsNotFound(err) {
		return domain.InternalError{Msg: "receivable lookup failed", Err: err}
	}

	if pay, err := s.PayableRepo.GetByTripID(id); err == nil {
		if err := s.PayableRepo.UpdateStatus(pay.ID, domain.ReceivableCancelled); err != nil {
			return domain.InternalError{Msg: "payable reversal failed", Err: err}
		}
	} else if !domain.IsNotFound(err) {
		return domain.InternalError{Msg: "payable lookup failed", Err: err}
	}

	utils.LogEvent(s.RequestID, "trip", "cancel", fmt.Sprintf("id=%d reason=%s", id, strings.TrimSpace(reason)))
	return nil
}

func normalizeTrip(t models.Trip) models.Trip {
	t.Reference = utils.NormalizeSpace(t.Reference)
	t.Remarks = utils.TrimOrEmpty(t.Remarks)
	in := domain.NormalizeFreightInput(t.CalcInput())
	t.FreightMode = in.FreightMode
	t.BillingTonnage = in.BillingTonnage
	t.RatePerTon = in.RatePerTon
	t.ClientFreight = in.ClientFreight
	return t
}

func generateTripReference() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "TRP-" + id[:8]
}
