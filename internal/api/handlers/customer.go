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

type CustomerHandler struct {
	customerService service.CustomerService
	validator       *validator.Validate
}

func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, validator: validator.New()}
}

func (h *CustomerHandler) CreateCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateCustomerRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		customer, err := h.customerService.CreateCustomer(r.Context(), &req)
		if err != nil {
			logger.Error("Customer creation failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusCreated, customer)
	}
}

func (h *CustomerHandler) GetCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		customer, err := h.customerService.GetCustomerByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, customer)
	}
}

func (h *CustomerHandler) UpdateCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req models.UpdateCustomerRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		customer, err := h.customerService.UpdateCustomer(r.Context(), id, &req)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, customer)
	}
}

func (h *CustomerHandler) DeleteCustomer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		if err := h.customerService.DeleteCustomer(r.Context(), id); err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, map[string]int64{"id": id})
	}
}

func (h *CustomerHandler) ListCustomers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		customers, err := h.customerService.ListCustomers(r.Context())
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, customers)
	}
}
