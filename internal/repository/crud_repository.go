package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// crudRepository implements the operations every entity table supports.
// Entity repositories embed it and add their own queries.
type crudRepository[T any] struct {
	order string
}

func (r *crudRepository[T]) Upsert(db *gorm.DB, record *T) error {
	return db.Omit(clause.Associations).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(record).Error
}

func (r *crudRepository[T]) CreateInBatches(db *gorm.DB, records []T) error {
	if len(records) == 0 {
		return nil
	}
	return db.Omit(clause.Associations).CreateInBatches(records, 100).Error
}

func (r *crudRepository[T]) FindAll(db *gorm.DB) ([]T, error) {
	var records []T
	if err := db.Order(r.order).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *crudRepository[T]) FindByID(db *gorm.DB, id string) (*T, error) {
	var record T
	err := db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *crudRepository[T]) Update(db *gorm.DB, record *T) error {
	return db.Omit(clause.Associations).Save(record).Error
}

func (r *crudRepository[T]) Delete(db *gorm.DB, id string) (int64, error) {
	result := db.Where("id = ?", id).Delete(new(T))
	return result.RowsAffected, result.Error
}

func (r *crudRepository[T]) DeleteAll(db *gorm.DB) error {
	return db.Where("1 = 1").Delete(new(T)).Error
}
