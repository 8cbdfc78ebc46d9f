package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	InvoicePending = "pending"
	InvoicePaid    = "paid"
	InvoiceOverdue = "overdue"
)

func init() {
	// Money travels as JSON numbers, both on the wire and inside JSON columns.
	decimal.MarshalJSONWithoutQuotes = true
}

type InvoiceItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

type Invoice struct {
	ID        string                           `gorm:"type:varchar(64);primaryKey"`
	PatientID string                           `gorm:"type:varchar(64);not null;index"`
	Date      string                           `gorm:"type:varchar(40);not null"`
	Amount    decimal.Decimal                  `gorm:"type:decimal(12,2);not null"`
	Status    string                           `gorm:"type:varchar(16)"`
	Items     datatypes.JSONSlice[InvoiceItem] `gorm:"not null"`
	Insurance string                           `gorm:"type:varchar(255)"`

	Patient *Patient `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// ItemsTotal sums the line totals of items.
func ItemsTotal(items []InvoiceItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Total)
	}
	return total
}
