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

var ErrInvoiceNotFound = errors.New("invoice not found")

type InvoiceUsecase interface {
	CrudUsecase[dto.CreateInvoiceRequest, dto.UpdateInvoiceRequest, dto.InvoiceResponse]
	// Search matches the patient's full name, ignoring case, or the invoice id.
	Search(ctx context.Context, term string) ([]dto.InvoiceResponse, error)
	Summary(ctx context.Context) (*analytics.InvoiceSummary, error)
}

type invoiceUsecase struct {
	*crudUsecase[entity.Invoice, dto.CreateInvoiceRequest, dto.UpdateInvoiceRequest, dto.InvoiceResponse]
	patients PatientUsecase
}

func NewInvoiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	invoiceRepo repository.InvoiceRepository,
	patients PatientUsecase,
	lists *service.ListCache,
) InvoiceUsecase {
	return &invoiceUsecase{
		crudUsecase: &crudUsecase[entity.Invoice, dto.CreateInvoiceRequest, dto.UpdateInvoiceRequest, dto.InvoiceResponse]{
			db:          db,
			log:         log,
			repo:        invoiceRepo,
			lists:       lists,
			collection:  service.CollectionInvoices,
			notFound:    ErrInvoiceNotFound,
			newEntity:   converter.InvoiceRequestToEntity,
			apply:       converter.ApplyInvoiceUpdate,
			toResponse:  converter.InvoiceToResponse,
			toResponses: converter.InvoicesToResponses,
		},
		patients: patients,
	}
}

func (u *invoiceUsecase) Search(ctx context.Context, term string) ([]dto.InvoiceResponse, error) {
	invoices, err := u.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if term == "" {
		return invoices, nil
	}

	patients, err := u.patients.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.SearchInvoices(invoices, patients, term), nil
}

func (u *invoiceUsecase) Summary(ctx context.Context) (*analytics.InvoiceSummary, error) {
	invoices, err := u.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := analytics.SummarizeInvoices(invoices)
	return &summary, nil
}
