package dto

import (
	"github.com/br70-Solution/voxia-app/internal/domain/entity"

	"github.com/shopspring/decimal"
)

type CreateInvoiceRequest struct {
	ID        string               `json:"id" validate:"omitempty,max=64"`
	PatientID string               `json:"patientId" validate:"required"`
	Date      string               `json:"date" validate:"required,isodate"`
	Amount    *decimal.Decimal     `json:"amount"`
	Status    string               `json:"status" validate:"omitempty,oneof=pending paid overdue"`
	Items     []entity.InvoiceItem `json:"items"`
	Insurance string               `json:"insurance,omitempty"`
}

type UpdateInvoiceRequest struct {
	PatientID *string               `json:"patientId" validate:"omitempty,min=1"`
	Date      *string               `json:"date" validate:"omitempty,isodate"`
	Amount    *decimal.Decimal      `json:"amount"`
	Status    *string               `json:"status" validate:"omitempty,oneof=pending paid overdue"`
	Items     *[]entity.InvoiceItem `json:"items"`
	Insurance *string               `json:"insurance"`
}

type InvoiceResponse struct {
	ID        string               `json:"id"`
	PatientID string               `json:"patientId"`
	Date      string               `json:"date"`
	Amount    decimal.Decimal      `json:"amount"`
	Status    string               `json:"status"`
	Items     []entity.InvoiceItem `json:"items"`
	Insurance string               `json:"insurance,omitempty"`
}
