package repository

import "github.com/br70-Solution/voxia-app/internal/domain/entity"

type InvoiceRepository interface {
	CrudRepository[entity.Invoice]
}
