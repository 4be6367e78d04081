package models

import (
	"strings"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
)

// Trip is a single freight movement linking a vehicle, client and vendor.
// Monetary fields are whole PKR. Dates are YYYY-MM-DD strings on the wire.
type Trip struct {
	ID        int64  `json:"id"`
	Reference string `json:"reference"`
	TripDate  string `json:"trip_date"`

	VehicleID int64 `json:"vehicle_id"`
	ClientID  int64 `json:"client_id"`
	VendorID  int64 `json:"vendor_id"`

	FreightMode    domain.FreightMode `json:"freight_mode"`
	TotalTonnage   float64            `json:"total_tonnage"`
	BillingTonnage float64            `json:"billing_tonnage"`
	RatePerTon     int64              `json:"rate_per_ton"`

	VendorFreight int64 `json:"vendor_freight"`
	ClientFreight int64 `json:"client_freight"`
	LocalShifting int64 `json:"local_shifting_charges"`
	AdvancePaid   int64 `json:"advance_paid"`
	FuelCost      int64 `json:"fuel_cost"`
	OtherCharges  int64 `json:"other_charges"`

	Status       domain.TripStatus `json:"status"`
	CancelReason string            `json:"cancel_reason,omitempty"`
	Remarks      string            `json:"remarks,omitempty"`

	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// CalcInput maps the stored fields into the calculator's input shape.
func (t Trip) CalcInput() domain.TripInput {
	return domain.TripInput{
		FreightMode:    t.FreightMode,
		BillingTonnage: t.BillingTonnage,
		RatePerTon:     t.RatePerTon,
		ClientFreight:  t.ClientFreight,
		VendorFreight:  t.VendorFreight,
		LocalShifting:  t.LocalShifting,
		AdvancePaid:    t.AdvancePaid,
		FuelCost:       t.FuelCost,
		OtherCharges:   t.OtherCharges,
	}
}

// Validate performs boundary validation on an incoming trip payload.
func (t Trip) Validate() error {
	if strings.TrimSpace(t.Reference) == "" {
		return domain.ValidationError{Field: "reference", Msg: "reference is required"}
	}
	if strings.TrimSpace(t.TripDate) == "" {
		return domain.ValidationError{Field: "trip_date", Msg: "trip date is required"}
	}
	if t.ClientID <= 0 {
		return domain.ValidationError{Field: "client_id", Msg: "client is required"}
	}
	if t.VendorID <= 0 {
		return domain.ValidationError{Field: "vendor_id", Msg: "vendor is required"}
	}
	switch t.FreightMode {
	case domain.FreightModeTotal, domain.FreightModePerTon:
	default:
		return domain.ValidationError{Field: "freight_mode", Msg: "must be total or per_ton"}
	}
	if t.FreightMode == domain.FreightModePerTon {
		if t.BillingTonnage <= 0 {
			return domain.ValidationError{Field: "billing_tonnage", Msg: "required in per_ton mode"}
		}
		if t.RatePerTon <= 0 {
			return domain.ValidationError{Field: "rate_per_ton", Msg: "required in per_ton mode"}
		}
	} else if t.ClientFreight <= 0 {
		return domain.ValidationError{Field: "client_freight", Msg: "must be greater than zero"}
	}
	if t.VendorFreight <= 0 {
		return domain.ValidationError{Field: "vendor_freight", Msg: "must be greater than zero"}
	}
	for _, f := range []struct {
		name  string
		value int64
	}{
		{"local_shifting_charges", t.LocalShifting},
		{"advance_paid", t.AdvancePaid},
		{"fuel_cost", t.FuelCost},
		{"other_charges", t.OtherCharges},
	} {
		if f.value < 0 {
			return domain.ValidationError{Field: f.name, Msg: "cannot be negative"}
		}
	}
	return nil
}

// TripWithCalc pairs stored fields with freshly derived ones; list and
// detail responses always carry both.
type TripWithCalc struct {
	Trip Trip            `json:"trip"`
	Calc domain.TripCalc `json:"calc"`
}
