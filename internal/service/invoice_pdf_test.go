package service

import (
	"bytes"
	"testing"

	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func TestInvoicePDF(t *testing.T) {
	invoice := &dto.InvoiceResponse{
		ID:        "INV-2024-001",
		PatientID: "1",
		Date:      "2024-05-15",
		Amount:    decimal.NewFromInt(1250),
		Status:    entity.InvoicePending,
		Items: []entity.InvoiceItem{
			{Description: "Appareil auditif", Quantity: 1, UnitPrice: decimal.NewFromInt(1250), Total: decimal.NewFromInt(1250)},
		},
	}

	for _, patient := range []*dto.PatientResponse{{ID: "1", FirstName: "Hélène", LastName: "Dupont"}, nil} {
		data, err := InvoicePDF(invoice, patient)
		if err != nil {
			t.Fatalf("InvoicePDF: %v", err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF")) {
			t.Fatalf("output is not a PDF document")
		}
	}
}

func TestFormatInvoiceDate(t *testing.T) {
	if got := formatInvoiceDate("2024-05-15T10:00:00.000Z"); got != "15/05/2024" {
		t.Fatalf("formatInvoiceDate = %q, want 15/05/2024", got)
	}
	if got := formatInvoiceDate("demain"); got != "demain" {
		t.Fatalf("unparsable dates should pass through, got %q", got)
	}
}

func TestFormatAmount(t *testing.T) {
	if got := formatAmount(decimal.RequireFromString("12.5")); got != "12.50 DA" {
		t.Fatalf("formatAmount = %q", got)
	}
}
