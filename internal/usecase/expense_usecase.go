package usecase

import (
	"context"
	"errors"

	"github.com/br70-Solution/voxia-app/internal/analytics"
	"github.com/br70-Solution/voxia-app/internal/converter"
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
	"github.com/br70-Solution/voxia-app/internal/domain/repository"
	"github.com/br70-Solution/voxia-app/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrExpenseNotFound = errors.New("expense not found")

type ExpenseUsecase interface {
	CrudUsecase[dto.CreateExpenseRequest, dto.UpdateExpenseRequest, dto.ExpenseResponse]
	Search(ctx context.Context, term string) ([]dto.ExpenseResponse, error)
	Summary(ctx context.Context) (*analytics.ExpenseSummary, error)
}

type expenseUsecase struct {
	*crudUsecase[entity.Expense, dto.CreateExpenseRequest, dto.UpdateExpenseRequest, dto.ExpenseResponse]
}

func NewExpenseUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	expenseRepo repository.ExpenseRepository,
	lists *service.ListCache,
) ExpenseUsecase {
	return &expenseUsecase{
		crudUsecase: &crudUsecase[entity.Expense, dto.CreateExpenseRequest, dto.UpdateExpenseRequest, dto.ExpenseResponse]{
			db:          db,
			log:         log,
			repo:        expenseRepo,
			lists:       lists,
			collection:  service.CollectionExpenses,
			notFound:    ErrExpenseNotFound,
			newEntity:   converter.ExpenseRequestToEntity,
			apply:       converter.ApplyExpenseUpdate,
			toResponse:  converter.ExpenseToResponse,
			toResponses: converter.ExpensesToResponses,
		},
	}
}

func (u *expenseUsecase) Search(ctx context.Context, term string) ([]dto.ExpenseResponse, error) {
	expenses, err := u.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.SearchExpenses(expenses, term), nil
}

func (u *expenseUsecase) Summary(ctx context.Context) (*analytics.ExpenseSummary, error) {
	expenses, err := u.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := analytics.SummarizeExpenses(expenses)
	return &summary, nil
}
