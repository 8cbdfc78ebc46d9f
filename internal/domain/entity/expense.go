package entity

import "github.com/shopspring/decimal"

const (
	ExpensePaid      = "payée"
	ExpensePending   = "en_attente"
	ExpenseCancelled = "annulée"
)

type Expense struct {
	ID            string          `gorm:"type:varchar(64);primaryKey"`
	Date          string          `gorm:"type:varchar(40);not null"`
	Category      string          `gorm:"type:varchar(64);not null"`
	Description   string          `gorm:"type:text"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Supplier      string          `gorm:"type:varchar(255)"`
	Status        string          `gorm:"type:varchar(16)"`
	PaymentMethod string          `gorm:"type:varchar(32)"`
	Notes         string          `gorm:"type:text"`
}

func (Expense) TableName() string {
	return "expenses"
}
