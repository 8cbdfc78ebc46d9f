package handler

import (
	"encoding/json"
	"net/http"

	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/usecase"
	"github.com/br70-Solution/voxia-app/pkg/response"
	"github.com/br70-Solution/voxia-app/pkg/validator"

	"github.com/gorilla/mux"
)

type StockItemHandler struct {
	*crudHandler[dto.CreateStockItemRequest, dto.UpdateStockItemRequest, dto.StockItemResponse]
	stockItemUsecase usecase.StockItemUsecase
}

func NewStockItemHandler(stockItemUsecase usecase.StockItemUsecase, validator *validator.CustomValidator) *StockItemHandler {
	return &StockItemHandler{
		crudHandler: &crudHandler[dto.CreateStockItemRequest, dto.UpdateStockItemRequest, dto.StockItemResponse]{
			usecase:   stockItemUsecase,
			validator: validator,
			name:      "Stock item",
			plural:    "stock items",
			search:    stockItemUsecase.Search,
		},
		stockItemUsecase: stockItemUsecase,
	}
}

// Restock handles stock replenishment
// @Summary Restock an item
// @Description Add a quantity to the stored stock and set lastRestock to now
// @Tags Stock
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Stock item ID"
// @Param request body dto.RestockRequest true "Restock Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /stock-items/{id}/restock [post]
func (h *StockItemHandler) Restock(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req dto.RestockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.stockItemUsecase.Restock(r.Context(), id, req.Quantity)
	if err != nil {
		writeUsecaseError(w, err, "Failed to restock item")
		return
	}

	response.Success(w, http.StatusOK, "Stock item restocked successfully", item)
}

func (h *StockItemHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stockItemUsecase.Summary(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to summarize stock")
		return
	}

	response.Success(w, http.StatusOK, "Stock summary retrieved successfully", summary)
}
