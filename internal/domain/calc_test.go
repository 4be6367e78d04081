package domain

import "testing"

func TestClientFreightPerTonDerivation(t *testing.T) {
	got := ClientFreight(FreightModePerTon, 25.5, 3000, 999999)
	if got != 76500 {
		t.Fatalf("per-ton freight wrong: got %d want 76500", got)
	}
	// same inputs, same output, no matter how often it runs
	for i := 0; i < 5; i++ {
		if again := ClientFreight(FreightModePerTon, 25.5, 3000, 999999); again != got {
			t.Fatalf("recompute drifted: got %d want %d", again, got)
		}
	}
}

func TestClientFreightTotalModeUsesManualAmount(t *testing.T) {
	if got := ClientFreight(FreightModeTotal, 25.5, 3000, 80000); got != 80000 {
		t.Fatalf("total mode should take manual amount, got %d", got)
	}
}

func TestClientFreightPerTonFallsBackWhenIncomplete(t *testing.T) {
	if got := ClientFreight(FreightModePerTon, 0, 3000, 50000); got != 50000 {
		t.Fatalf("missing tonnage should fall back to manual amount, got %d", got)
	}
	if got := ClientFreight(FreightModePerTon, 25.5, 0, 50000); got != 50000 {
		t.Fatalf("missing rate should fall back to manual amount, got %d", got)
	}
}

func TestClientFreightRoundsToWholeRupees(t *testing.T) {
	// 10.333 x 3001 = 31009.333 -> 31009
	if got := ClientFreight(FreightModePerTon, 10.333, 3001, 0); got != 31009 {
		t.Fatalf("rounding wrong: got %d want 31009", got)
	}
}

func TestGrossProfitRespondsLinearlyToVendorFreight(t *testing.T) {
	base := GrossProfit(100000, 60000, 5000)
	if base != 35000 {
		t.Fatalf("gross profit wrong: got %d want 35000", base)
	}
	bumped := GrossProfit(100000, 61000, 5000)
	if base-bumped != 1000 {
		t.Fatalf("vendor freight +1000 should cut gross profit by exactly 1000, delta %d", base-bumped)
	}
}

func TestNetProfitSubtractsAllDeductions(t *testing.T) {
	if got := NetProfit(35000, 10000, 8000, 2000); got != 15000 {
		t.Fatalf("net profit wrong: got %d want 15000", got)
	}
}

func TestProfitMarginZeroFreightIsZero(t *testing.T) {
	if got := ProfitMargin(15000, 0); got != 0 {
		t.Fatalf("zero freight must yield 0 margin, got %v", got)
	}
	if got := ProfitMargin(15000, -100); got != 0 {
		t.Fatalf("negative freight must yield 0 margin, got %v", got)
	}
}

func TestProfitMarginPercentage(t *testing.T) {
	got := ProfitMargin(25000, 100000)
	if got != 25 {
		t.Fatalf("margin wrong: got %v want 25", got)
	}
}

func TestComputeTripEndToEnd(t *testing.T) {
	in := TripInput{
		FreightMode:    FreightModePerTon,
		BillingTonnage: 40,
		RatePerTon:     2500,
		VendorFreight:  70000,
		LocalShifting:  5000,
		AdvancePaid:    10000,
		FuelCost:       5000,
	}
	calc := ComputeTrip(in)
	if calc.ClientFreight != 100000 {
		t.Fatalf("client freight got %d want 100000", calc.ClientFreight)
	}
	if calc.GrossProfit != 25000 {
		t.Fatalf("gross profit got %d want 25000", calc.GrossProfit)
	}
	if calc.NetProfit != 10000 {
		t.Fatalf("net profit got %d want 10000", calc.NetProfit)
	}
	if calc.MarginPercent != 10 {
		t.Fatalf("margin got %v want 10", calc.MarginPercent)
	}
	if calc.LossWarning {
		t.Fatalf("loss warning should be off when freight covers vendor cost")
	}
}

func TestComputeTripLossWarning(t *testing.T) {
	calc := ComputeTrip(TripInput{
		FreightMode:   FreightModeTotal,
		ClientFreight: 50000,
		VendorFreight: 60000,
	})
	if !calc.LossWarning {
		t.Fatalf("client freight below vendor freight must raise the loss warning")
	}
	if calc.GrossProfit != -10000 {
		t.Fatalf("negative gross profit expected, got %d", calc.GrossProfit)
	}
}

func TestNormalizeFreightInputClearsStaleFields(t *testing.T) {
	perTon := NormalizeFreightInput(TripInput{
		FreightMode:    FreightModePerTon,
		BillingTonnage: 20,
		RatePerTon:     3000,
		ClientFreight:  123456, // stale manual amount from before the switch
	})
	if perTon.ClientFreight != 0 {
		t.Fatalf("per-ton mode must clear the manual amount, got %d", perTon.ClientFreight)
	}

	total := NormalizeFreightInput(TripInput{
		FreightMode:    FreightModeTotal,
		ClientFreight:  80000,
		BillingTonnage: 20,
		RatePerTon:     3000,
	})
	if total.BillingTonnage != 0 || total.RatePerTon != 0 {
		t.Fatalf("total mode must clear tonnage and rate, got %v / %d", total.BillingTonnage, total.RatePerTon)
	}
}

func TestNetPayable(t *testing.T) {
	if got := NetPayable(50000, 2000, 7000, 1000); got != 44000 {
		t.Fatalf("net payable got %d want 44000", got)
	}
}
