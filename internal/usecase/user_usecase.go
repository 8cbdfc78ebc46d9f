package usecase

import (
	"context"
	"errors"

	"github.com/br70-Solution/voxia-app/internal/converter"
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
	"github.com/br70-Solution/voxia-app/internal/domain/repository"
	"github.com/br70-Solution/voxia-app/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

type UserUsecase interface {
	CrudUsecase[dto.CreateUserRequest, dto.UpdateUserRequest, dto.UserResponse]
}

type userUsecase struct {
	*crudUsecase[entity.User, dto.CreateUserRequest, dto.UpdateUserRequest, dto.UserResponse]
	bcryptCost int
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	lists *service.ListCache,
	bcryptCost int,
) UserUsecase {
	return &userUsecase{
		crudUsecase: &crudUsecase[entity.User, dto.CreateUserRequest, dto.UpdateUserRequest, dto.UserResponse]{
			db:          db,
			log:         log,
			repo:        userRepo,
			lists:       lists,
			collection:  service.CollectionUsers,
			notFound:    ErrUserNotFound,
			newEntity:   converter.UserRequestToEntity,
			apply:       converter.ApplyUserUpdate,
			toResponse:  converter.UserToResponse,
			toResponses: converter.UsersToResponses,
		},
		bcryptCost: bcryptCost,
	}
}

func hashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (u *userUsecase) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	user := converter.UserRequestToEntity(req)

	hashed, err := hashPassword(req.Password, u.bcryptCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}
	user.Password = hashed

	return u.save(ctx, user)
}

func (u *userUsecase) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	return u.update(ctx, id, func(user *entity.User) error {
		converter.ApplyUserUpdate(user, req)
		if req.Password == nil {
			return nil
		}

		hashed, err := hashPassword(*req.Password, u.bcryptCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return err
		}
		user.Password = hashed
		return nil
	})
}
