package analytics

import (
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"

	"github.com/shopspring/decimal"
)

type StockSummary struct {
	TotalItems    int                     `json:"totalItems"`
	TotalQuantity int                     `json:"totalQuantity"`
	LowStock      []dto.StockItemResponse `json:"lowStock"`
	StockValue    decimal.Decimal         `json:"stockValue"`
}

// SummarizeStock lists items at or below their threshold and values the
// inventory at purchase price.
func SummarizeStock(items []dto.StockItemResponse) StockSummary {
	summary := StockSummary{
		TotalItems: len(items),
		LowStock:   LowStock(items),
		StockValue: decimal.Zero,
	}
	for _, item := range items {
		summary.TotalQuantity += item.Quantity
		summary.StockValue = summary.StockValue.Add(item.PurchasePrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return summary
}

func LowStock(items []dto.StockItemResponse) []dto.StockItemResponse {
	low := []dto.StockItemResponse{}
	for _, item := range items {
		if item.Quantity <= item.MinQuantity {
			low = append(low, item)
		}
	}
	return low
}

type InvoiceSummary struct {
	Count         int             `json:"count"`
	PaidRevenue   decimal.Decimal `json:"paidRevenue"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
	OverdueAmount decimal.Decimal `json:"overdueAmount"`
}

func SummarizeInvoices(invoices []dto.InvoiceResponse) InvoiceSummary {
	summary := InvoiceSummary{
		Count:         len(invoices),
		PaidRevenue:   decimal.Zero,
		PendingAmount: decimal.Zero,
		OverdueAmount: decimal.Zero,
	}
	for _, inv := range invoices {
		switch inv.Status {
		case entity.InvoicePaid:
			summary.PaidRevenue = summary.PaidRevenue.Add(inv.Amount)
		case entity.InvoicePending:
			summary.PendingAmount = summary.PendingAmount.Add(inv.Amount)
		case entity.InvoiceOverdue:
			summary.OverdueAmount = summary.OverdueAmount.Add(inv.Amount)
		}
	}
	return summary
}

type ExpenseSummary struct {
	Count   int             `json:"count"`
	Paid    decimal.Decimal `json:"paid"`
	Pending decimal.Decimal `json:"pending"`
}

func SummarizeExpenses(expenses []dto.ExpenseResponse) ExpenseSummary {
	summary := ExpenseSummary{
		Count:   len(expenses),
		Paid:    decimal.Zero,
		Pending: decimal.Zero,
	}
	for _, exp := range expenses {
		switch exp.Status {
		case entity.ExpensePaid:
			summary.Paid = summary.Paid.Add(exp.Amount)
		case entity.ExpensePending:
			summary.Pending = summary.Pending.Add(exp.Amount)
		}
	}
	return summary
}

// ItemTotal is the line total of an invoice item.
func ItemTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// InvoiceTotal sums the line totals.
func InvoiceTotal(items []entity.InvoiceItem) decimal.Decimal {
	return entity.ItemsTotal(items)
}
