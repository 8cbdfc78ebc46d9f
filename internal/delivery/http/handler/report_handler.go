package handler

import (
	"net/http"
	"time"

	"github.com/br70-Solution/voxia-app/internal/analytics"
	"github.com/br70-Solution/voxia-app/internal/service"
	"github.com/br70-Solution/voxia-app/internal/usecase"
	"github.com/br70-Solution/voxia-app/pkg/response"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase}
}

func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.reportUsecase.Dashboard(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to build dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

// Statistics accepts ?range=day|week|month|6months|12months, 6months by default.
func (h *ReportHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	rng, err := analytics.ParseRange(r.URL.Query().Get("range"))
	if err != nil {
		response.BadRequest(w, "Unknown range, use day, week, month, 6months or 12months")
		return
	}

	stats, err := h.reportUsecase.Statistics(r.Context(), rng)
	if err != nil {
		response.InternalServerError(w, "Failed to build statistics")
		return
	}

	response.Success(w, http.StatusOK, "Statistics retrieved successfully", stats)
}

func (h *ReportHandler) Export(w http.ResponseWriter, r *http.Request) {
	workbook, err := h.reportUsecase.Export(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to export data")
		return
	}

	filename := "voxia-export-" + time.Now().Format("2006-01-02") + ".xlsx"
	response.File(w, service.ExportContentType, filename, workbook)
}
