package dto

import "github.com/shopspring/decimal"

type CreateStockItemRequest struct {
	ID            string          `json:"id" validate:"omitempty,max=64"`
	Name          string          `json:"name" validate:"required"`
	Category      string          `json:"category"`
	SKU           string          `json:"sku,omitempty"`
	Brand         string          `json:"brand,omitempty"`
	Unit          string          `json:"unit"`
	Quantity      int             `json:"quantity"`
	MinQuantity   int             `json:"minQuantity" validate:"gte=0"`
	MaxQuantity   int             `json:"maxQuantity" validate:"gte=0"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Location      string          `json:"location,omitempty"`
	Supplier      string          `json:"supplier,omitempty"`
	Image         string          `json:"image,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	LastRestock   string          `json:"lastRestock,omitempty"`
}

type UpdateStockItemRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1"`
	Category      *string          `json:"category"`
	SKU           *string          `json:"sku"`
	Brand         *string          `json:"brand"`
	Unit          *string          `json:"unit"`
	Quantity      *int             `json:"quantity"`
	MinQuantity   *int             `json:"minQuantity" validate:"omitempty,gte=0"`
	MaxQuantity   *int             `json:"maxQuantity" validate:"omitempty,gte=0"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	SalePrice     *decimal.Decimal `json:"salePrice"`
	Location      *string          `json:"location"`
	Supplier      *string          `json:"supplier"`
	Image         *string          `json:"image"`
	Notes         *string          `json:"notes"`
	LastRestock   *string          `json:"lastRestock"`
}

type RestockRequest struct {
	Quantity int `json:"quantity" validate:"gt=0"`
}

type StockItemResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	SKU           string          `json:"sku,omitempty"`
	Brand         string          `json:"brand,omitempty"`
	Unit          string          `json:"unit"`
	Quantity      int             `json:"quantity"`
	MinQuantity   int             `json:"minQuantity"`
	MaxQuantity   int             `json:"maxQuantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	Location      string          `json:"location,omitempty"`
	Supplier      string          `json:"supplier,omitempty"`
	Image         string          `json:"image,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	LastRestock   string          `json:"lastRestock,omitempty"`
}
