package usecase

import (
	"context"
	"errors"

	"github.com/br70-Solution/voxia-app/internal/analytics"
	"github.com/br70-Solution/voxia-app/internal/converter"
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
	"github.com/br70-Solution/voxia-app/internal/domain/repository"
	"github.com/br70-Solution/voxia-app/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrStockItemNotFound = errors.New("stock item not found")

type StockItemUsecase interface {
	CrudUsecase[dto.CreateStockItemRequest, dto.UpdateStockItemRequest, dto.StockItemResponse]
	// Restock adds quantity to the stored amount and stamps lastRestock.
	Restock(ctx context.Context, id string, quantity int) (*dto.StockItemResponse, error)
	LowStock(ctx context.Context) ([]dto.StockItemResponse, error)
	Search(ctx context.Context, term string) ([]dto.StockItemResponse, error)
	Summary(ctx context.Context) (*analytics.StockSummary, error)
}

type stockItemUsecase struct {
	*crudUsecase[entity.StockItem, dto.CreateStockItemRequest, dto.UpdateStockItemRequest, dto.StockItemResponse]
	stockItemRepo repository.StockItemRepository
}

func NewStockItemUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	stockItemRepo repository.StockItemRepository,
	lists *service.ListCache,
) StockItemUsecase {
	return &stockItemUsecase{
		crudUsecase: &crudUsecase[entity.StockItem, dto.CreateStockItemRequest, dto.UpdateStockItemRequest, dto.StockItemResponse]{
			db:          db,
			log:         log,
			repo:        stockItemRepo,
			lists:       lists,
			collection:  service.CollectionStockItems,
			notFound:    ErrStockItemNotFound,
			newEntity:   converter.StockItemRequestToEntity,
			apply:       converter.ApplyStockItemUpdate,
			toResponse:  converter.StockItemToResponse,
			toResponses: converter.StockItemsToResponses,
		},
		stockItemRepo: stockItemRepo,
	}
}

func (u *stockItemUsecase) Restock(ctx context.Context, id string, quantity int) (*dto.StockItemResponse, error) {
	db := u.db.WithContext(ctx)

	affected, err := u.stockItemRepo.Restock(db, id, quantity, entity.Now())
	if err != nil {
		u.log.Warnf("Failed to restock item %s: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrStockItemNotFound
	}
	u.lists.Invalidate(ctx, service.CollectionStockItems)

	return u.GetByID(ctx, id)
}

func (u *stockItemUsecase) LowStock(ctx context.Context) ([]dto.StockItemResponse, error) {
	items, err := u.stockItemRepo.FindLow(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find low stock items: %+v", err)
		return nil, err
	}
	return converter.StockItemsToResponses(items), nil
}

func (u *stockItemUsecase) Search(ctx context.Context, term string) ([]dto.StockItemResponse, error) {
	items, err := u.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.SearchStockItems(items, term), nil
}

func (u *stockItemUsecase) Summary(ctx context.Context) (*analytics.StockSummary, error) {
	items, err := u.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := analytics.SummarizeStock(items)
	return &summary, nil
}
