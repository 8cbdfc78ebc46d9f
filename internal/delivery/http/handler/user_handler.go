package handler

import (
	"encoding/json"
	"net/http"

	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/delivery/http/middleware"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
	"github.com/br70-Solution/voxia-app/internal/usecase"
	"github.com/br70-Solution/voxia-app/pkg/response"
	"github.com/br70-Solution/voxia-app/pkg/validator"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	*crudHandler[dto.CreateUserRequest, dto.UpdateUserRequest, dto.UserResponse]
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		crudHandler: &crudHandler[dto.CreateUserRequest, dto.UpdateUserRequest, dto.UserResponse]{
			usecase:   userUsecase,
			validator: validator,
			name:      "User",
			plural:    "users",
		},
	}
}

// Update lets an administrator edit any account and everyone else edit
// their own, without changing their role.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req dto.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	role, _ := middleware.GetRoleFromContext(r.Context())
	if role != entity.RoleAdmin {
		userID, _ := middleware.GetUserIDFromContext(r.Context())
		if userID != id {
			response.Forbidden(w, "You can only update your own profile")
			return
		}
		if req.Role != nil && *req.Role != role {
			response.Forbidden(w, "You cannot change your own role")
			return
		}
	}

	user, err := h.usecase.Update(r.Context(), id, &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update user")
		return
	}

	response.Success(w, http.StatusOK, "User updated successfully", user)
}
