package handler

import (
	"encoding/json"
	"net/http"

	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/usecase"
	"github.com/br70-Solution/voxia-app/pkg/response"
)

type SeedHandler struct {
	seedUsecase usecase.SeedUsecase
}

func NewSeedHandler(seedUsecase usecase.SeedUsecase) *SeedHandler {
	return &SeedHandler{seedUsecase: seedUsecase}
}

// Seed replaces every table named in the body with the rows given for it.
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	var req dto.SeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	result, err := h.seedUsecase.Seed(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to seed database")
		return
	}

	response.Success(w, http.StatusOK, "Database seeded successfully", result)
}
