package repository

import "gorm.io/gorm"

// CrudRepository is the storage contract shared by every entity. Each method
// runs on the given db handle so callers can pass a transaction.
type CrudRepository[T any] interface {
	Upsert(db *gorm.DB, record *T) error
	CreateInBatches(db *gorm.DB, records []T) error
	FindAll(db *gorm.DB) ([]T, error)
	FindByID(db *gorm.DB, id string) (*T, error)
	Update(db *gorm.DB, record *T) error
	Delete(db *gorm.DB, id string) (int64, error)
	DeleteAll(db *gorm.DB) error
}
