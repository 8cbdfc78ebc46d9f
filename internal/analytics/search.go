package analytics

import (
	"strings"

	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
)

func containsFold(value, term string) bool {
	return strings.Contains(strings.ToLower(value), term)
}

func SearchPatients(patients []dto.PatientResponse, term string) []dto.PatientResponse {
	if term == "" {
		return patients
	}
	term = strings.ToLower(term)
	out := []dto.PatientResponse{}
	for _, p := range patients {
		if containsFold(p.FirstName, term) || containsFold(p.LastName, term) || containsFold(p.FullName(), term) {
			out = append(out, p)
		}
	}
	return out
}

func SearchStockItems(items []dto.StockItemResponse, term string) []dto.StockItemResponse {
	if term == "" {
		return items
	}
	term = strings.ToLower(term)
	out := []dto.StockItemResponse{}
	for _, item := range items {
		if containsFold(item.Name, term) || containsFold(item.SKU, term) ||
			containsFold(item.Brand, term) || containsFold(item.Category, term) {
			out = append(out, item)
		}
	}
	return out
}

// SearchInvoices matches the patient's name without case, or the invoice id exactly as typed.
func SearchInvoices(invoices []dto.InvoiceResponse, patients []dto.PatientResponse, term string) []dto.InvoiceResponse {
	if term == "" {
		return invoices
	}
	names := make(map[string]string, len(patients))
	for _, p := range patients {
		names[p.ID] = p.FullName()
	}
	lower := strings.ToLower(term)
	out := []dto.InvoiceResponse{}
	for _, inv := range invoices {
		if containsFold(names[inv.PatientID], lower) || strings.Contains(inv.ID, term) {
			out = append(out, inv)
		}
	}
	return out
}

func SearchExpenses(expenses []dto.ExpenseResponse, term string) []dto.ExpenseResponse {
	if term == "" {
		return expenses
	}
	term = strings.ToLower(term)
	out := []dto.ExpenseResponse{}
	for _, exp := range expenses {
		if containsFold(exp.Description, term) || containsFold(exp.Supplier, term) || containsFold(exp.Category, term) {
			out = append(out, exp)
		}
	}
	return out
}
