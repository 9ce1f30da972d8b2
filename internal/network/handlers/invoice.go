package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/boituva/beachclub/internal/helpers"
	"github.com/boituva/beachclub/internal/logger"
	"github.com/boituva/beachclub/internal/models"
	"github.com/boituva/beachclub/internal/services"
	"github.com/boituva/beachclub/internal/storage"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OpenClientsHandler - distinct clients with at least one open order,
// used by the cashier to pick who to invoice.
func OpenClientsHandler(s services.InvoiceService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clients, err := s.ListOpenClients(r.Context())
		if err != nil {
			writeStorageError(w, err, "Failed to list open clients")
			return
		}
		if len(clients) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(clients); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// ComputeInvoiceHandler - prices a client's open orders into an invoice.
// The optional coupon query parameter applies a discount; an unknown code
// just leaves the total unchanged. 204 means nothing to invoice.
func ComputeInvoiceHandler(s services.InvoiceService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := chi.URLParam(r, "client")
		invoice, err := s.ComputeInvoice(r.Context(), client)
		if err != nil {
			writeStorageError(w, err, "Failed to compute invoice")
			return
		}
		if invoice == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		result := s.ApplyCoupon(*invoice, r.URL.Query().Get("coupon"))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// SettleInvoiceHandler - closes out a client's open orders against a
// payment method. With order_ids the settlement is pinned to the priced
// snapshot and rejected with 409 when the snapshot went stale; without
// them every currently open order is swept (legacy mode).
func SettleInvoiceHandler(s services.InvoiceService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		client := chi.URLParam(r, "client")

		var req models.SettleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		method, err := models.ParsePaymentMethod(req.Method)
		if err != nil {
			http.Error(w, "Unknown payment method", http.StatusUnprocessableEntity)
			return
		}

		logger.Info("Settling invoice", "client", client, "cashier", username)

		var settled int64
		if len(req.OrderIDs) > 0 {
			err = s.SettleOrders(r.Context(), client, method, req.OrderIDs)
			settled = int64(len(req.OrderIDs))
		} else {
			settled, err = s.SettleInvoice(r.Context(), client, method)
		}
		if err != nil {
			if errors.Is(err, services.ErrInvoiceOutdated) {
				http.Error(w, "Invoice outdated, recompute before settling", http.StatusConflict)
				return
			}
			writeStorageError(w, err, "Failed to settle invoice")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(models.SettleResponse{Settled: settled}); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// writeStorageError - maps the storage error taxonomy to HTTP statuses:
// unavailability is retryable (503), rejection is the caller's fault (422).
func writeStorageError(w http.ResponseWriter, err error, message string) {
	logger.Error(message, zap.Error(err))
	switch {
	case errors.Is(err, storage.ErrUnavailable):
		http.Error(w, "Storage unavailable, retry later", http.StatusServiceUnavailable)
	case errors.Is(err, storage.ErrRejected):
		http.Error(w, "Request rejected by storage", http.StatusUnprocessableEntity)
	default:
		http.Error(w, "Server Error", http.StatusInternalServerError)
	}
}
