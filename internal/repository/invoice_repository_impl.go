package repository

import (
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
	domainRepo "github.com/br70-Solution/voxia-app/internal/domain/repository"
)

type invoiceRepository struct {
	crudRepository[entity.Invoice]
}

func NewInvoiceRepository() domainRepo.InvoiceRepository {
	return &invoiceRepository{crudRepository[entity.Invoice]{order: "date, id"}}
}
