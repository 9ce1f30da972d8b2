package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/boituva/beachclub/internal/logger"
	"github.com/boituva/beachclub/internal/models"
	"github.com/boituva/beachclub/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddOrderHandler - order intake: registers a new open order line
func AddOrderHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.OrderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if req.Client == "" {
			http.Error(w, "Client is required", http.StatusBadRequest)
			return
		}

		order, err := s.AddOrder(r.Context(), req.Client, req.Product, req.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidQuantity):
				http.Error(w, "Quantity must be a positive integer", http.StatusUnprocessableEntity)
			case errors.Is(err, services.ErrUnknownProduct):
				http.Error(w, "Product is not registered", http.StatusUnprocessableEntity)
			default:
				writeStorageError(w, err, "Failed to add order")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(orderToResponse(*order)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			return
		}
	})
}

// GetOrdersHandler - order history for one client, newest first
func GetOrdersHandler(s services.OrdersService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := chi.URLParam(r, "client")
		orders, err := s.GetOrders(r.Context(), client)
		if err != nil {
			writeStorageError(w, err, "Failed to get orders")
			return
		}
		if len(orders) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.OrderResponse
		for _, order := range orders {
			response = append(response, orderToResponse(order))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

func orderToResponse(order models.OrderData) models.OrderResponse {
	response := models.OrderResponse{
		ID:        order.ID,
		Product:   order.Product,
		Quantity:  order.Quantity,
		Status:    order.Status,
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
	}
	if order.PaidAt != nil {
		response.PaidAt = order.PaidAt.Format(time.RFC3339)
	}
	return response
}
