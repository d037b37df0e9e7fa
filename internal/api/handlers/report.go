package handlers

import (
	"net/http"
	"strconv"

	service "github.com/storekeeperhq/pos-platform/internal/services"
	"github.com/storekeeperhq/pos-platform/internal/utils/response"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Forecast serves the per-product stockout projection. The trailing window is
// taken from the days query parameter; the service applies its default when
// the parameter is absent or unusable.
func (h *ReportHandler) Forecast() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		days, _ := strconv.Atoi(r.URL.Query().Get("days"))

		forecast, err := h.reportService.Forecast(r.Context(), days)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, forecast)
	}
}
