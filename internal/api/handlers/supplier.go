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

type SupplierHandler struct {
	supplierService service.SupplierService
	validator       *validator.Validate
}

func NewSupplierHandler(supplierService service.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService, validator: validator.New()}
}

func (h *SupplierHandler) CreateSupplier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateSupplierRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		supplier, err := h.supplierService.CreateSupplier(r.Context(), &req)
		if err != nil {
			logger.Error("Supplier creation failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusCreated, supplier)
	}
}

func (h *SupplierHandler) UpdateSupplier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req models.UpdateSupplierRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		supplier, err := h.supplierService.UpdateSupplier(r.Context(), id, &req)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, supplier)
	}
}

func (h *SupplierHandler) DeleteSupplier() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		if err := h.supplierService.DeleteSupplier(r.Context(), id); err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]int64{"id": id})
	}
}

func (h *SupplierHandler) ListSuppliers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		suppliers, err := h.supplierService.ListSuppliers(r.Context())
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, suppliers)
	}
}
