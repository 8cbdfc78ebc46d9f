package converter

import (
	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/domain/entity"
)

func invoiceItemsOrEmpty(items []entity.InvoiceItem) []entity.InvoiceItem {
	if items == nil {
		return []entity.InvoiceItem{}
	}
	return items
}

// InvoiceRequestToEntity builds an Invoice; a missing amount is the sum of item totals.
func InvoiceRequestToEntity(req *dto.CreateInvoiceRequest) *entity.Invoice {
	invoice := &entity.Invoice{
		ID:        idOrNew(req.ID),
		PatientID: req.PatientID,
		Date:      req.Date,
		Status:    req.Status,
		Items:     invoiceItemsOrEmpty(req.Items),
		Insurance: req.Insurance,
	}
	if req.Amount != nil {
		invoice.Amount = *req.Amount
	} else {
		invoice.Amount = entity.ItemsTotal(req.Items)
	}
	return invoice
}

func ApplyInvoiceUpdate(invoice *entity.Invoice, req *dto.UpdateInvoiceRequest) {
	set(&invoice.PatientID, req.PatientID)
	set(&invoice.Date, req.Date)
	set(&invoice.Status, req.Status)
	set(&invoice.Insurance, req.Insurance)
	if req.Items != nil {
		invoice.Items = invoiceItemsOrEmpty(*req.Items)
		if req.Amount == nil {
			invoice.Amount = entity.ItemsTotal(invoice.Items)
		}
	}
	set(&invoice.Amount, req.Amount)
}

func InvoiceToResponse(invoice *entity.Invoice) *dto.InvoiceResponse {
	if invoice == nil {
		return nil
	}

	return &dto.InvoiceResponse{
		ID:        invoice.ID,
		PatientID: invoice.PatientID,
		Date:      invoice.Date,
		Amount:    invoice.Amount,
		Status:    invoice.Status,
		Items:     invoiceItemsOrEmpty(invoice.Items),
		Insurance: invoice.Insurance,
	}
}

func InvoicesToResponses(invoices []entity.Invoice) []dto.InvoiceResponse {
	responses := make([]dto.InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = *InvoiceToResponse(&invoices[i])
	}
	return responses
}
