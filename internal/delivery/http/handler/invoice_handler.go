package handler

import (
	"net/http"

	"github.com/br70-Solution/voxia-app/internal/delivery/dto"
	"github.com/br70-Solution/voxia-app/internal/usecase"
	"github.com/br70-Solution/voxia-app/pkg/response"
	"github.com/br70-Solution/voxia-app/pkg/validator"

	"github.com/gorilla/mux"
)

type InvoiceHandler struct {
	*crudHandler[dto.CreateInvoiceRequest, dto.UpdateInvoiceRequest, dto.InvoiceResponse]
	invoiceUsecase usecase.InvoiceUsecase
	reportUsecase  usecase.ReportUsecase
}

func NewInvoiceHandler(invoiceUsecase usecase.InvoiceUsecase, reportUsecase usecase.ReportUsecase, validator *validator.CustomValidator) *InvoiceHandler {
	return &InvoiceHandler{
		crudHandler: &crudHandler[dto.CreateInvoiceRequest, dto.UpdateInvoiceRequest, dto.InvoiceResponse]{
			usecase:   invoiceUsecase,
			validator: validator,
			name:      "Invoice",
			plural:    "invoices",
			search:    invoiceUsecase.Search,
		},
		invoiceUsecase: invoiceUsecase,
		reportUsecase:  reportUsecase,
	}
}

func (h *InvoiceHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.invoiceUsecase.Summary(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to summarize invoices")
		return
	}

	response.Success(w, http.StatusOK, "Invoice summary retrieved successfully", summary)
}

// PDF renders the printable invoice.
func (h *InvoiceHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	document, err := h.reportUsecase.InvoicePDF(r.Context(), id)
	if err != nil {
		writeUsecaseError(w, err, "Failed to render invoice")
		return
	}

	response.File(w, "application/pdf", "facture-"+id+".pdf", document)
}
