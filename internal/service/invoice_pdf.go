package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/br70-Solution/voxia-app/internal/analytics"
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

var invoiceStatusLabels = map[string]string{
	entity.InvoicePaid:    "Payée",
	entity.InvoicePending: "En attente",
	entity.InvoiceOverdue: "En retard",
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2) + " DA"
}

func formatInvoiceDate(value string) string {
	t, ok := analytics.ParseTime(value, time.UTC)
	if !ok {
		return value
	}
	return t.Format("02/01/2006")
}

// InvoicePDF renders a printable A4 invoice. patient may be nil when the
// record no longer exists.
func InvoicePDF(invoice *dto.InvoiceResponse, patient *dto.PatientResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(5, 150, 105)
	pdf.CellFormat(110, 10, "Voxia Manager", "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, tr(invoice.ID), "", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(110, 6, tr("Cabinet d'Audioprothèse"), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, formatInvoiceDate(invoice.Date), "", 1, "R", false, 0, "")
	pdf.Ln(8)

	billedTo := invoice.PatientID
	if patient != nil {
		billedTo = patient.FullName()
	}
	pdf.SetFillColor(243, 244, 246)
	pdf.CellFormat(0, 6, tr("Facturé à:"), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, tr(billedTo), "", 1, "L", true, 0, "")
	if invoice.Insurance != "" {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, tr("Mutuelle: "+invoice.Insurance), "", 1, "L", true, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(90, 8, "Description", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, tr("Qté"), "B", 0, "C", false, 0, "")
	pdf.CellFormat(35, 8, "Prix Unit.", "B", 0, "R", false, 0, "")
	pdf.CellFormat(0, 8, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range invoice.Items {
		pdf.CellFormat(90, 8, tr(item.Description), "B", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", item.Quantity), "B", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, formatAmount(item.UnitPrice), "B", 0, "R", false, 0, "")
		pdf.CellFormat(0, 8, formatAmount(item.Total), "B", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(145, 10, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(0, 10, formatAmount(invoice.Amount), "", 1, "R", false, 0, "")
	pdf.Ln(6)

	status, ok := invoiceStatusLabels[invoice.Status]
	if !ok {
		status = invoice.Status
	}
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, tr(status), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice %s: %w", invoice.ID, err)
	}
	return buf.Bytes(), nil
}
