package repository

import (
	"github.com/br70-Solution/voxia-app/internal/domain/entity"

	"gorm.io/gorm"
)

type StockItemRepository interface {
	CrudRepository[entity.StockItem]
	// Restock adds quantity in a single statement and returns the rows affected.
	Restock(db *gorm.DB, id string, quantity int, at string) (int64, error)
	FindLow(db *gorm.DB) ([]entity.StockItem, error)
}
