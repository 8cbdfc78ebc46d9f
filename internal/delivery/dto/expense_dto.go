package dto

import "github.com/shopspring/decimal"

type CreateExpenseRequest struct {
	ID            string          `json:"id" validate:"omitempty,max=64"`
	Date          string          `json:"date" validate:"required,isodate"`
	Category      string          `json:"category" validate:"required"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Supplier      string          `json:"supplier,omitempty"`
	Status        string          `json:"status" validate:"omitempty,oneof=payée en_attente annulée"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

type UpdateExpenseRequest struct {
	Date          *string          `json:"date" validate:"omitempty,isodate"`
	Category      *string          `json:"category" validate:"omitempty,min=1"`
	Description   *string          `json:"description"`
	Amount        *decimal.Decimal `json:"amount"`
	Supplier      *string          `json:"supplier"`
	Status        *string          `json:"status" validate:"omitempty,oneof=payée en_attente annulée"`
	PaymentMethod *string          `json:"paymentMethod"`
	Notes         *string          `json:"notes"`
}

type ExpenseResponse struct {
	ID            string          `json:"id"`
	Date          string          `json:"date"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Supplier      string          `json:"supplier,omitempty"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}
