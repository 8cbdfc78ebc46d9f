package entity

import "github.com/shopspring/decimal"

const DefaultStockUnit = "unite"

type StockItem struct {
	ID            string          `gorm:"type:varchar(64);primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Category      string          `gorm:"type:varchar(64)"`
	SKU           string          `gorm:"column:sku;type:varchar(64)"`
	Brand         string          `gorm:"type:varchar(255)"`
	Unit          string          `gorm:"type:varchar(16);not null"`
	Quantity      int             `gorm:"not null"`
	MinQuantity   int             `gorm:"not null"`
	MaxQuantity   int             `gorm:"not null"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SalePrice     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Location      string          `gorm:"type:varchar(255)"`
	Supplier      string          `gorm:"type:varchar(255)"`
	Image         string          `gorm:"type:text"`
	Notes         string          `gorm:"type:text"`
	LastRestock   string          `gorm:"type:varchar(40)"`
}

func (StockItem) TableName() string {
	return "stock_items"
}

// IsLow reports whether the item is at or below its alert threshold.
func (s StockItem) IsLow() bool {
	return s.Quantity <= s.MinQuantity
}
