package converter

import (
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
)

func ExpenseRequestToEntity(req *dto.CreateExpenseRequest) *entity.Expense {
	return &entity.Expense{
		ID:            idOrNew(req.ID),
		Date:          req.Date,
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		Supplier:      req.Supplier,
		Status:        req.Status,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	}
}

func ApplyExpenseUpdate(expense *entity.Expense, req *dto.UpdateExpenseRequest) {
	set(&expense.Date, req.Date)
	set(&expense.Category, req.Category)
	set(&expense.Description, req.Description)
	set(&expense.Amount, req.Amount)
	set(&expense.Supplier, req.Supplier)
	set(&expense.Status, req.Status)
	set(&expense.PaymentMethod, req.PaymentMethod)
	set(&expense.Notes, req.Notes)
}

func ExpenseToResponse(expense *entity.Expense) *dto.ExpenseResponse {
	if expense == nil {
		return nil
	}

	return &dto.ExpenseResponse{
		ID:            expense.ID,
		Date:          expense.Date,
		Category:      expense.Category,
		Description:   expense.Description,
		Amount:        expense.Amount,
		Supplier:      expense.Supplier,
		Status:        expense.Status,
		PaymentMethod: expense.PaymentMethod,
		Notes:         expense.Notes,
	}
}

func ExpensesToResponses(expenses []entity.Expense) []dto.ExpenseResponse {
	responses := make([]dto.ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = *ExpenseToResponse(&expenses[i])
	}
	return responses
}
