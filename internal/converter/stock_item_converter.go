package converter

import (
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
)

func StockItemRequestToEntity(req *dto.CreateStockItemRequest) *entity.StockItem {
	item := &entity.StockItem{
		ID:            idOrNew(req.ID),
		Name:          req.Name,
		Category:      req.Category,
		SKU:           req.SKU,
		Brand:         req.Brand,
		Unit:          req.Unit,
		Quantity:      req.Quantity,
		MinQuantity:   req.MinQuantity,
		MaxQuantity:   req.MaxQuantity,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		Location:      req.Location,
		Supplier:      req.Supplier,
		Image:         req.Image,
		Notes:         req.Notes,
		LastRestock:   req.LastRestock,
	}
	if item.Unit == "" {
		item.Unit = entity.DefaultStockUnit
	}
	return item
}

func ApplyStockItemUpdate(item *entity.StockItem, req *dto.UpdateStockItemRequest) {
	set(&item.Name, req.Name)
	set(&item.Category, req.Category)
	set(&item.SKU, req.SKU)
	set(&item.Brand, req.Brand)
	set(&item.Unit, req.Unit)
	set(&item.Quantity, req.Quantity)
	set(&item.MinQuantity, req.MinQuantity)
	set(&item.MaxQuantity, req.MaxQuantity)
	set(&item.PurchasePrice, req.PurchasePrice)
	set(&item.SalePrice, req.SalePrice)
	set(&item.Location, req.Location)
	set(&item.Supplier, req.Supplier)
	set(&item.Image, req.Image)
	set(&item.Notes, req.Notes)
	set(&item.LastRestock, req.LastRestock)
}

func StockItemToResponse(item *entity.StockItem) *dto.StockItemResponse {
	if item == nil {
		return nil
	}

	return &dto.StockItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		Category:      item.Category,
		SKU:           item.SKU,
		Brand:         item.Brand,
		Unit:          item.Unit,
		Quantity:      item.Quantity,
		MinQuantity:   item.MinQuantity,
		MaxQuantity:   item.MaxQuantity,
		PurchasePrice: item.PurchasePrice,
		SalePrice:     item.SalePrice,
		Location:      item.Location,
		Supplier:      item.Supplier,
		Image:         item.Image,
		Notes:         item.Notes,
		LastRestock:   item.LastRestock,
	}
}

func StockItemsToResponses(items []entity.StockItem) []dto.StockItemResponse {
	responses := make([]dto.StockItemResponse, len(items))
	for i := range items {
		responses[i] = *StockItemToResponse(&items[i])
	}
	return responses
}
