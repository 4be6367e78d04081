package services

import (
	"fmt"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/repositories"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/utils"
)

// FinanceReport is the cash-flow/profitability summary for a date range.
type FinanceReport struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`

	Totals repositories.TripTotals `json:"totals"`

	GrossProfit   int64   `json:"gross_profit"`
	NetProfit     int64   `json:"net_profit"`
	MarginPercent float64 `json:"margin_percent"`

	OutstandingReceivables int64 `json:"outstanding_receivables"`
	OutstandingPayables    int64 `json:"outstanding_payables"`
	AdvanceExposure        int64 `json:"advance_exposure"`
}

// ReportService derives the finance report from raw sums; profit and
// margin use the same calculator as individual trips.
type ReportService struct {
	ReportRepo repositories.ReportRepository
	RequestID  string
}

func (s ReportService) Finance(startDate, endDate string) (FinanceReport, error) {
	var out FinanceReport

	totals, err := s.ReportRepo.SumTrips(startDate, endDate)
	if err != nil {
		return out, domain.InternalError{Msg: "trip aggregation failed", Err: err}
	}

	gross := domain.GrossProfit(totals.ClientFreight, totals.VendorFreight, totals.LocalShifting)
	net := domain.NetProfit(gross, totals.AdvancePaid, totals.FuelCost, totals.OtherCharges)

	out = FinanceReport{
		StartDate:     startDate,
		EndDate:       endDate,
		Totals:        totals,
		GrossProfit:   gross,
		NetProfit:     net,
		MarginPercent: domain.ProfitMargin(net, totals.ClientFreight),
	}

	if out.OutstandingReceivables, err = s.ReportRepo.OutstandingReceivables(); err != nil {
		return out, domain.InternalError{Msg: "receivable aggregation failed", Err: err}
	}
	if out.OutstandingPayables, err = s.ReportRepo.OutstandingPayables(); err != nil {
		return out, domain.InternalError{Msg: "payable aggregation failed", Err: err}
	}
	if out.AdvanceExposure, err = s.ReportRepo.AdvanceExposure(); err != nil {
		return out, domain.InternalError{Msg: "advance aggregation failed", Err: err}
	}

	utils.LogEvent(s.RequestID, "report", "finance",
		fmt.Sprintf("range=%s..%s trips=%d net=%d", startDate, endDate, totals.TripCount, net))
	return out, nil
}
