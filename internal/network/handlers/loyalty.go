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

// GetLoyaltyBalanceHandler - current point balance of a club client
func GetLoyaltyBalanceHandler(s services.LoyaltyService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := chi.URLParam(r, "client")
		balance, err := s.GetBalance(r.Context(), client)
		if err != nil {
			writeStorageError(w, err, "Failed to get loyalty balance")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(balance); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// GetLoyaltyHistoryHandler - full ledger for a client, oldest first
func GetLoyaltyHistoryHandler(s services.LoyaltyService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := chi.URLParam(r, "client")
		entries, err := s.GetEntries(r.Context(), client)
		if err != nil {
			writeStorageError(w, err, "Failed to get loyalty history")
			return
		}
		if len(entries) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.LoyaltyEntryResponse
		for _, entry := range entries {
			item := models.LoyaltyEntryResponse{
				Points:      entry.Points,
				Kind:        entry.Kind,
				ProcessedAt: entry.ProcessedAt.Format(time.RFC3339),
			}
			if entry.OrderID != nil {
				item.OrderID = *entry.OrderID
			}
			response = append(response, item)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// AddLoyaltyPointsHandler - manual point grant from the back office
func AddLoyaltyPointsHandler(s services.LoyaltyService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := chi.URLParam(r, "client")
		var req models.LoyaltyPointsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		err := s.AddPoints(r.Context(), client, req.Points)
		if err != nil {
			if errors.Is(err, services.ErrInvalidPoints) {
				http.Error(w, "Points must be a positive integer", http.StatusUnprocessableEntity)
				return
			}
			writeStorageError(w, err, "Failed to add points")
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

// RedeemRewardHandler - burns the fixed reward cost from the balance
func RedeemRewardHandler(s services.LoyaltyService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := chi.URLParam(r, "client")
		err := s.RedeemReward(r.Context(), client)
		if err != nil {
			if errors.Is(err, services.ErrInsufficientPoints) {
				http.Error(w, "Insufficient points", http.StatusPaymentRequired)
				return
			}
			writeStorageError(w, err, "Failed to redeem reward")
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}
