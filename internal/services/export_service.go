package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/utils"
)

// ExportService renders the finance report as an Excel workbook.
type ExportService struct {
	ReportSvc ReportService
	RequestID string
}

func (s ExportService) FinanceXLSX(startDate, endDate string) ([]byte, string, error) {
	svc := s.ReportSvc
	svc.RequestID = s.RequestID
	report, err := svc.Finance(startDate, endDate)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Finance"
	f.SetSheetName("Sheet1", sheet)

	rows := [][]any{
		{"Finance Report"},
		{"From", valueOr(startDate, "(all)"), "To", valueOr(endDate, "(all)")},
		{},
		{"Trips", report.Totals.TripCount},
		{"Client Freight", report.Totals.ClientFreight},
		{"Vendor Freight", report.Totals.VendorFreight},
		{"Local Shifting Charges", report.Totals.LocalShifting},
		{"Advance Paid", report.Totals.AdvancePaid},
		{"Fuel Cost", report.Totals.FuelCost},
		{"Other Charges", report.Totals.OtherCharges},
		{},
		{"Gross Profit", report.GrossProfit},
		{"Net Profit", report.NetProfit},
		{"Margin %", fmt.Sprintf("%.2f", report.MarginPercent)},
		{},
		{"Outstanding Receivables", report.OutstandingReceivables},
		{"Outstanding Payables", report.OutstandingPayables},
		{"Staff Advance Exposure", report.AdvanceExposure},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, "", domain.InternalError{Msg: "xlsx cell error", Err: err}
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, "", domain.InternalError{Msg: "xlsx write error", Err: err}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "xlsx render failed", Err: err}
	}

	utils.LogEvent(s.RequestID, "report", "export_xlsx",
		fmt.Sprintf("range=%s..%s", startDate, endDate))
	return buf.Bytes(), "finance-report.xlsx", nil
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
