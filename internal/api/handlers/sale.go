package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/storekeeperhq/pos-platform/internal/api/middleware"
	"github.com/storekeeperhq/pos-platform/internal/models"
	service "github.com/storekeeperhq/pos-platform/internal/services"
	"github.com/storekeeperhq/pos-platform/internal/utils"
	"github.com/storekeeperhq/pos-platform/internal/utils/response"
)

type SaleHandler struct {
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewSaleHandler(checkoutService service.CheckoutService) *SaleHandler {
	return &SaleHandler{checkoutService: checkoutService, validator: validator.New()}
}

// Checkout turns a cart into a completed sale. Stock is debited inside the
// same transaction that persists the sale, so the response either carries a
// fully recorded sale or nothing changed.
func (h *SaleHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CheckoutRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		sale, err := h.checkoutService.Checkout(r.Context(), &req)
		if err != nil {
			logger.Warn("Checkout failed", slog.Int("lines", len(req.Items)), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Sale recorded", slog.Int64("saleId", sale.ID), slog.Float64("total", sale.Total))
		response.Success(w, http.StatusCreated, sale)
	}
}

func (h *SaleHandler) GetSale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		sale, err := h.checkoutService.GetSaleByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, sale)
	}
}

func (h *SaleHandler) ListSales() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		page, pageSize := pageParams(r)

		sales, total, err := h.checkoutService.ListSales(r.Context(), page, pageSize)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, pagedResponse{Items: sales, Total: total, Page: page, PageSize: pageSize})
	}
}

func (h *SaleHandler) DeleteSale() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		if err := h.checkoutService.DeleteSale(r.Context(), id); err != nil {
			logger.Error("Sale deletion failed", slog.Int64("saleId", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Sale deleted", slog.Int64("saleId", id))
		response.Success(w, http.StatusOK, map[string]int64{"id": id})
	}
}
