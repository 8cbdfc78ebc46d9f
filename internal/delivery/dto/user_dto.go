package dto

// Request DTOs

type CreateUserRequest struct {
	ID        string `json:"id" validate:"omitempty,max=64"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,max=72"`
	Role      string `json:"role" validate:"required,oneof=admin audioprothesiste assistant"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	LastLogin string `json:"lastLogin,omitempty"`
}

type UpdateUserRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=1,max=72"`
	Role      *string `json:"role" validate:"omitempty,oneof=admin audioprothesiste assistant"`
	Avatar    *string `json:"avatar"`
	CreatedAt *string `json:"createdAt"`
	LastLogin *string `json:"lastLogin"`
}

// Response DTOs

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	LastLogin string `json:"lastLogin,omitempty"`
}
