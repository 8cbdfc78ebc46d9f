package repository

import (
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
	domainRepo "github.com/br70-Solution/voxia-app/internal/domain/repository"
)

type expenseRepository struct {
	crudRepository[entity.Expense]
}

func NewExpenseRepository() domainRepo.ExpenseRepository {
	return &expenseRepository{crudRepository[entity.Expense]{order: "date, id"}}
}
