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

type PurchaseOrderHandler struct {
	orderService service.PurchaseOrderService
	validator    *validator.Validate
}

func NewPurchaseOrderHandler(orderService service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{orderService: orderService, validator: validator.New()}
}

func (h *PurchaseOrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreatePurchaseOrderRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.CreateOrder(r.Context(), &req)
		if err != nil {
			logger.Error("Purchase order creation failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Purchase order created", slog.Int64("orderId", order.ID), slog.Int64("supplierId", order.SupplierID))
		response.Success(w, http.StatusCreated, order)
	}
}

func (h *PurchaseOrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		order, err := h.orderService.GetOrderByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, order)
	}
}

func (h *PurchaseOrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		page, pageSize := pageParams(r)

		orders, total, err := h.orderService.ListOrders(r.Context(), page, pageSize)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, pagedResponse{Items: orders, Total: total, Page: page, PageSize: pageSize})
	}
}

func (h *PurchaseOrderHandler) UpdateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req models.UpdatePurchaseOrderRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.UpdateOrder(r.Context(), id, &req)
		if err != nil {
			logger.Warn("Purchase order update rejected", slog.Int64("orderId", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Purchase order updated", slog.Int64("orderId", id))
		response.Success(w, http.StatusOK, order)
	}
}

// UpdateStatus drives the receive and cancel transitions. Receiving credits
// stock for every line inside one transaction.
func (h *PurchaseOrderHandler) UpdateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		var req models.UpdateOrderStatusRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		order, err := h.orderService.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			logger.Warn("Purchase order transition rejected", slog.Int64("orderId", id), slog.String("target", string(req.Status)), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Purchase order transitioned", slog.Int64("orderId", id), slog.String("status", string(order.Status)))
		response.Success(w, http.StatusOK, order)
	}
}

func (h *PurchaseOrderHandler) DeleteOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := parseID(w, r)
		if !ok {
			return
		}

		if err := h.orderService.DeleteOrder(r.Context(), id); err != nil {
			logger.Error("Purchase order deletion failed", slog.Int64("orderId", id), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		logger.Info("Purchase order deleted", slog.Int64("orderId", id))
		response.Success(w, http.StatusOK, map[string]int64{"id": id})
	}
}
