package repository

import (
	"github.com/br70-Solution/voxia-app/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	CrudRepository[entity.User]
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	UpdateLastLogin(db *gorm.DB, id string, at string) error
	Count(db *gorm.DB) (int64, error)
}
