package domain

import "math"

// FreightMode discriminates how client freight is priced.
type FreightMode string

const (
	FreightModeTotal  FreightMode = "total"
	FreightModePerTon FreightMode = "per_ton"
)

// RoundMoney rounds to whole PKR. All amounts are stored as plain rupees.
func RoundMoney(x float64) int64 {
	return int64(math.Round(x))
}

// ClientFreight returns the billable client freight for a trip.
// In per_ton mode the value is derived from tonnage x rate and the manual
// amount is ignored; otherwise the manual amount is taken as entered.
// Pure and idempotent: same inputs always give the same output.
func ClientFreight(mode FreightMode, billingTonnage float64, ratePerTon int64, manual int64) int64 {
	if mode == FreightModePerTon && billingTonnage > 0 && ratePerTon > 0 {
		return RoundMoney(billingTonnage * float64(ratePerTon))
	}
	return manual
}

// GrossProfit = client freight - (vendor freight + local shifting charges).
func GrossProfit(clientFreight, vendorFreight, localShifting int64) int64 {
	return clientFreight - (vendorFreight + localShifting)
}

// NetProfit subtracts the operating deductions from gross profit.
func NetProfit(grossProfit, advancePaid, fuelCost int64, otherCharges ...int64) int64 {
	net := grossProfit - advancePaid - fuelCost
	for _, c := range otherCharges {
		net -= c
	}
	return net
}

// ProfitMargin returns net profit as a percentage of client freight.
// Zero freight yields 0, never NaN or Inf.
func ProfitMargin(netProfit, clientFreight int64) float64 {
	if clientFreight <= 0 {
		return 0
	}
	return float64(netProfit) / float64(clientFreight) * 100
}

// NetPayable = gross salary + arrears - advance deduction - other deductions.
func NetPayable(grossSalary, arrears, advanceDeduction, otherDeductions int64) int64 {
	return grossSalary + arrears - advanceDeduction - otherDeductions
}

// TripInput carries the raw financial fields of a trip entry.
// Missing fields default to zero, which the arithmetic treats as absent.
type TripInput struct {
	FreightMode    FreightMode `json:"freight_mode"`
	BillingTonnage float64     `json:"billing_tonnage"`
	RatePerTon     int64       `json:"rate_per_ton"`
	ClientFreight  int64       `json:"client_freight"` // manual amount, used when mode is total
	VendorFreight  int64       `json:"vendor_freight"`
	LocalShifting  int64       `json:"local_shifting_charges"`
	AdvancePaid    int64       `json:"advance_paid"`
	FuelCost       int64       `json:"fuel_cost"`
	OtherCharges   int64       `json:"other_charges"`
}

// TripCalc holds every derived financial field of a trip.
type TripCalc struct {
	ClientFreight int64   `json:"clientFreight"`
	GrossProfit   int64   `json:"grossProfit"`
	NetProfit     int64   `json:"netProfit"`
	MarginPercent float64 `json:"marginPercent"`

	// LossWarning flags client freight below vendor freight. The trip is
	// still savable; the caller should ask for confirmation first.
	LossWarning bool `json:"lossWarning"`
}

// ComputeTrip derives all financial fields from raw trip input in one pass.
func ComputeTrip(in TripInput) TripCalc {
	client := ClientFreight(in.FreightMode, in.BillingTonnage, in.RatePerTon, in.ClientFreight)
	gross := GrossProfit(client, in.VendorFreight, in.LocalShifting)
	net := NetProfit(gross, in.AdvancePaid, in.FuelCost, in.OtherCharges)

	return TripCalc{
		ClientFreight: client,
		GrossProfit:   gross,
		NetProfit:     net,
		MarginPercent: ProfitMargin(net, client),
		LossWarning:   client < in.VendorFreight,
	}
}

// NormalizeFreightInput clears the fields the selected mode makes
// irrelevant, so a stale manual amount or stale tonnage never leaks into
// the derived values after the user switches modes.
func NormalizeFreightInput(in TripInput) TripInput {
	switch in.FreightMode {
	case FreightModePerTon:
		in.ClientFreight = 0
	default:
		in.FreightMode = FreightModeTotal
		in.BillingTonnage = 0
		in.RatePerTon = 0
	}
	return in
}
