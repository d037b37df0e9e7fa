package handlers

import (
	"net/http"

	service "github.com/storekeeperhq/pos-platform/internal/services"
	"github.com/storekeeperhq/pos-platform/internal/utils/response"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Summary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		summary, err := h.dashboardService.GetSummary(r.Context())
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, summary)
	}
}
