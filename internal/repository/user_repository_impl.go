package repository

import (
	"errors"

	"github.com/br70-Solution/voxia-app/internal/domain/entity"
	domainRepo "github.com/br70-Solution/voxia-app/internal/domain/repository"

	"gorm.io/gorm"
)

type userRepository struct {
	crudRepository[entity.User]
}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{crudRepository[entity.User]{order: "created_at, id"}}
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateLastLogin(db *gorm.DB, id string, at string) error {
	return db.Model(&entity.User{}).Where("id = ?", id).Update("last_login", at).Error
}

func (r *userRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.User{}).Count(&total).Error
	return total, err
}
