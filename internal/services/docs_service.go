package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/domain"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/repositories"
	"github.com/GhulamAlichaudhry/pgt-tms-backend/internal/utils"
)

// DocsService renders trip invoices and payroll slips as PDFs.
type DocsService struct {
	TripRepo    repositories.TripRepository
	PartyRepo   repositories.PartyRepository
	PayrollRepo repositories.PayrollRepository
	StaffRepo   repositories.StaffRepository
	RequestID   string
}

// TripInvoicePDF builds the client-facing invoice for one trip.
func (s DocsService) TripInvoicePDF(tripID int64) ([]byte, string, error) {
	t, err := s.TripRepo.GetByID(tripID)
	if err != nil {
		return nil, "", err
	}

	clientName := "-"
	if client, err := s.PartyRepo.GetByID(t.ClientID); err == nil {
		clientName = client.Name
	}

	calc := domain.ComputeTrip(t.CalcInput())
	utils.LogEvent(s.RequestID, "docs", "trip_invoice", fmt.Sprintf("trip_id=%d", tripID))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Trip Invoice", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "TRIP INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reference      : %s", safe(t.Reference)),
		fmt.Sprintf("Date           : %s", safe(t.TripDate)),
		fmt.Sprintf("Client         : %s", safe(clientName)),
		fmt.Sprintf("Freight Mode   : %s", safe(string(t.FreightMode))),
	}
	if t.FreightMode == domain.FreightModePerTon {
		lines = append(lines,
			fmt.Sprintf("Billing Tons   : %.2f", t.BillingTonnage),
			fmt.Sprintf("Rate / Ton     : %s", utils.FormatPKR(t.RatePerTon)),
		)
	}
	lines = append(lines,
		fmt.Sprintf("Client Freight : %s", utils.FormatPKR(calc.ClientFreight)),
		fmt.Sprintf("Status         : %s", string(t.Status)),
	)
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Payment is due within 30 days of the trip date.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "pdf render failed", Err: err}
	}
	name := fmt.Sprintf("invoice-%s.pdf", safeFilenamePart(t.Reference))
	return buf.Bytes(), name, nil
}

// PayrollSlipPDF builds the salary slip for one payroll entry.
func (s DocsService) PayrollSlipPDF(entryID int64) ([]byte, string, error) {
	entry, err := s.PayrollRepo.GetByID(entryID)
	if err != nil {
		return nil, "", err
	}
	staffName := "-"
	if st, err := s.StaffRepo.GetByID(entry.StaffID); err == nil {
		staffName = st.Name
	}

	utils.LogEvent(s.RequestID, "docs", "payroll_slip", fmt.Sprintf("entry_id=%d", entryID))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Salary Slip", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "SALARY SLIP")
	pdf.Ln(12)

	paid := "UNPAID"
	if entry.IsPaid {
		paid = "PAID"
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Employee          : %s", safe(staffName)),
		fmt.Sprintf("Period            : %02d/%d", entry.Month, entry.Year),
		fmt.Sprintf("Gross Salary      : %s", utils.FormatPKR(entry.GrossSalary)),
		fmt.Sprintf("Arrears           : %s", utils.FormatPKR(entry.Arrears)),
		fmt.Sprintf("Advance Deduction : %s", utils.FormatPKR(entry.AdvanceDeduction)),
		fmt.Sprintf("Other Deductions  : %s", utils.FormatPKR(entry.OtherDeductions)),
		fmt.Sprintf("Net Payable       : %s", utils.FormatPKR(entry.NetPayable)),
		fmt.Sprintf("Status            : %s", paid),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, l)
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "pdf render failed", Err: err}
	}
	name := fmt.Sprintf("salary-slip-%d-%02d-%d.pdf", entry.StaffID, entry.Month, entry.Year)
	return buf.Bytes(), name, nil
}

func safe(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	replacer := strings.NewReplacer(" ", "-", "/", "-", "\\", "-")
	if s == "" {
		return "doc"
	}
	return replacer.Replace(s)
}
