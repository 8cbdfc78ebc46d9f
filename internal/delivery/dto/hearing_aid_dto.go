package dto

import "github.com/shopspring/decimal"

type CreateHearingAidRequest struct {
	ID         string          `json:"id" validate:"omitempty,max=64"`
	Brand      string          `json:"brand" validate:"required"`
	Model      string          `json:"model" validate:"required"`
	Technology string          `json:"technology" validate:"omitempty,oneof=basic mid premium ultra"`
	Type       string          `json:"type" validate:"omitempty,oneof=RIC BTE CIC ITC ITE BAHA"`
	Price      decimal.Decimal `json:"price"`
	Features   []string        `json:"features"`
	Image      string          `json:"image,omitempty"`
}

type UpdateHearingAidRequest struct {
	Brand      *string          `json:"brand" validate:"omitempty,min=1"`
	Model      *string          `json:"model" validate:"omitempty,min=1"`
	Technology *string          `json:"technology" validate:"omitempty,oneof=basic mid premium ultra"`
	Type       *string          `json:"type" validate:"omitempty,oneof=RIC BTE CIC ITC ITE BAHA"`
	Price      *decimal.Decimal `json:"price"`
	Features   *[]string        `json:"features"`
	Image      *string          `json:"image"`
}

type HearingAidResponse struct {
	ID         string          `json:"id"`
	Brand      string          `json:"brand"`
	Model      string          `json:"model"`
	Technology string          `json:"technology"`
	Type       string          `json:"type"`
	Price      decimal.Decimal `json:"price"`
	Features   []string        `json:"features"`
	Image      string          `json:"image,omitempty"`
}
