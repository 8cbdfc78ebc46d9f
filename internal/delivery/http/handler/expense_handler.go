package handler

import (
	"net/http"

	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/usecase"
	"github.com/br70-Solution/voxia-app/pkg/response"
	"github.com/br70-Solution/voxia-app/pkg/validator"
)

type ExpenseHandler struct {
	*crudHandler[dto.CreateExpenseRequest, dto.UpdateExpenseRequest, dto.ExpenseResponse]
	expenseUsecase usecase.ExpenseUsecase
}

func NewExpenseHandler(expenseUsecase usecase.ExpenseUsecase, validator *validator.CustomValidator) *ExpenseHandler {
	return &ExpenseHandler{
		crudHandler: &crudHandler[dto.CreateExpenseRequest, dto.UpdateExpenseRequest, dto.ExpenseResponse]{
			usecase:   expenseUsecase,
			validator: validator,
			name:      "Expense",
			plural:    "expenses",
			search:    expenseUsecase.Search,
		},
		expenseUsecase: expenseUsecase,
	}
}

func (h *ExpenseHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.expenseUsecase.Summary(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to summarize expenses")
		return
	}

	response.Success(w, http.StatusOK, "Expense summary retrieved successfully", summary)
}
