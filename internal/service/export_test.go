package service

import (
	"bytes"
	"testing"

	"github.com/br70-Solution/voxia-app/internal/analytics"
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/shopspring/decimal"
)

func TestExportWorkbookHasOneSheetPerCollection(t *testing.T) {
	ds := analytics.Dataset{
		Patients: []dto.PatientResponse{{ID: "1", FirstName: "Jean", LastName: "Dupont"}},
		StockItems: []dto.StockItemResponse{
			{ID: "STK-001", Name: "Piles 312", Quantity: 4, PurchasePrice: decimal.NewFromInt(2)},
		},
	}

	data, err := ExportWorkbook(ds)
	if err != nil {
		t.Fatalf("ExportWorkbook: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Fatalf("workbook is not a zip archive")
	}

	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	names := map[string]bool{}
	for _, name := range file.GetSheetMap() {
		names[name] = true
	}
	for _, want := range []string{"Utilisateurs", "Patients", "Audiogrammes", "Appareils", "Appareillages", "Rendez-vous", "Factures", "Dépenses", "Stock"} {
		if !names[want] {
			t.Fatalf("sheet %q missing from %v", want, names)
		}
	}
	if names["Sheet1"] {
		t.Fatalf("default sheet left in the workbook")
	}
	if got := file.GetCellValue("Patients", "C2"); got != "Dupont" {
		t.Fatalf("Patients!C2 = %q, want Dupont", got)
	}
}

func TestDatasetSheetsRowsMatchHeaders(t *testing.T) {
	ds := analytics.Dataset{
		Users:          []dto.UserResponse{{ID: "1"}},
		Patients:       []dto.PatientResponse{{ID: "1"}},
		Audiograms:     []dto.AudiogramResponse{{ID: "1"}},
		HearingAids:    []dto.HearingAidResponse{{ID: "1"}},
		PatientDevices: []dto.PatientDeviceResponse{{ID: "1"}},
		Appointments:   []dto.AppointmentResponse{{ID: "1"}},
		Invoices:       []dto.InvoiceResponse{{ID: "1"}},
		Expenses:       []dto.ExpenseResponse{{ID: "1"}},
		StockItems:     []dto.StockItemResponse{{ID: "1"}},
	}

	for _, s := range datasetSheets(ds) {
		if len(s.headers) > len(columnLetters) {
			t.Fatalf("%s: %d columns do not fit the column letters", s.name, len(s.headers))
		}
		if len(s.rows) != 1 {
			t.Fatalf("%s: %d rows, want 1", s.name, len(s.rows))
		}
		if len(s.rows[0]) != len(s.headers) {
			t.Fatalf("%s: row has %d cells for %d headers", s.name, len(s.rows[0]), len(s.headers))
		}
	}
}
