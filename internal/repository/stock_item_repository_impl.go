package repository

import (
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
	domainRepo "github.com/br70-Solution/voxia-app/internal/domain/repository"

	"gorm.io/gorm"
)

type stockItemRepository struct {
	crudRepository[entity.StockItem]
}

func NewStockItemRepository() domainRepo.StockItemRepository {
	return &stockItemRepository{crudRepository[entity.StockItem]{order: "name, id"}}
}

func (r *stockItemRepository) Restock(db *gorm.DB, id string, quantity int, at string) (int64, error) {
	result := db.Model(&entity.StockItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity":     gorm.Expr("quantity + ?", quantity),
			"last_restock": at,
		})
	return result.RowsAffected, result.Error
}

func (r *stockItemRepository) FindLow(db *gorm.DB) ([]entity.StockItem, error) {
	var items []entity.StockItem
	if err := db.Where("quantity <= min_quantity").Order(r.order).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
