package converter

import (
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
)

// UserRequestToEntity builds a User from a create request. The password is
// copied as given; hashing is the caller's job.
func UserRequestToEntity(req *dto.CreateUserRequest) *entity.User {
	user := &entity.User{
		ID:        idOrNew(req.ID),
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		Avatar:    req.Avatar,
		CreatedAt: req.CreatedAt,
		LastLogin: req.LastLogin,
	}
	if user.CreatedAt == "" {
		user.CreatedAt = entity.Now()
	}
	return user
}

// ApplyUserUpdate copies the supplied fields, except the password, onto user.
func ApplyUserUpdate(user *entity.User, req *dto.UpdateUserRequest) {
	set(&user.Name, req.Name)
	set(&user.Email, req.Email)
	set(&user.Role, req.Role)
	set(&user.Avatar, req.Avatar)
	set(&user.CreatedAt, req.CreatedAt)
	set(&user.LastLogin, req.LastLogin)
}

func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Avatar:    user.Avatar,
		CreatedAt: user.CreatedAt,
		LastLogin: user.LastLogin,
	}
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}
