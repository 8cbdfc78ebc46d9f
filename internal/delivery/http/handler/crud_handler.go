package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/br70-Solution/voxia-app/internal/usecase"
	"github.com/br70-Solution/voxia-app/pkg/response"
	"github.com/br70-Solution/voxia-app/pkg/validator"

	"github.com/gorilla/mux"
)

// crudHandler serves list, read, create, update and delete for one
// collection. name is the singular label used in messages.
type crudHandler[C any, U any, R any] struct {
	usecase   usecase.CrudUsecase[C, U, R]
	validator *validator.CustomValidator
	name      string
	plural    string
	// search, when set, serves GET with a ?q= term.
	search func(ctx context.Context, term string) ([]R, error)
}

func (h *crudHandler[C, U, R]) Create(w http.ResponseWriter, r *http.Request) {
	var req C
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.usecase.Create(r.Context(), &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to create "+strings.ToLower(h.name))
		return
	}

	response.Success(w, http.StatusOK, h.name+" saved successfully", record)
}

func (h *crudHandler[C, U, R]) GetAll(w http.ResponseWriter, r *http.Request) {
	var (
		records []R
		err     error
	)
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if term != "" && h.search != nil {
		records, err = h.search(r.Context(), term)
	} else {
		records, err = h.usecase.GetAll(r.Context())
	}
	if err != nil {
		response.InternalServerError(w, "Failed to get "+h.plural)
		return
	}

	response.Success(w, http.StatusOK, capitalize(h.plural)+" retrieved successfully", records)
}

func (h *crudHandler[C, U, R]) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	record, err := h.usecase.GetByID(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err, "Failed to get "+strings.ToLower(h.name))
		return
	}

	response.Success(w, http.StatusOK, h.name+" retrieved successfully", record)
}

// Update applies a partial body: absent fields keep their stored value.
func (h *crudHandler[C, U, R]) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req U
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	record, err := h.usecase.Update(r.Context(), id, &req)
	if err != nil {
		writeUsecaseError(w, err, "Failed to update "+strings.ToLower(h.name))
		return
	}

	response.Success(w, http.StatusOK, h.name+" updated successfully", record)
}

func (h *crudHandler[C, U, R]) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.usecase.Delete(r.Context(), id); err != nil {
		writeUsecaseError(w, err, "Failed to delete "+strings.ToLower(h.name))
		return
	}

	response.Success(w, http.StatusOK, h.name+" deleted successfully", map[string]string{"id": id})
}
