package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/boituva/beachclub/internal/logger"
	"github.com/boituva/beachclub/internal/models"
	"github.com/boituva/beachclub/internal/services"
	"github.com/boituva/beachclub/internal/storage"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddClientHandler - registers a club client
func AddClientHandler(s services.ClientsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.ClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		err := s.AddClient(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidEmail):
				http.Error(w, "Invalid e-mail address", http.StatusUnprocessableEntity)
			case errors.Is(err, services.ErrClientAlreadyExists):
				http.Error(w, "Client already registered", http.StatusConflict)
			default:
				writeStorageError(w, err, "Failed to add client")
			}
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
}

// GetClientsHandler - client registry listing, newest first
func GetClientsHandler(s services.ClientsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clients, err := s.GetClients(r.Context())
		if err != nil {
			writeStorageError(w, err, "Failed to get clients")
			return
		}
		if len(clients) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.ClientResponse
		for _, client := range clients {
			response = append(response, models.ClientResponse{
				FullName:   client.FullName,
				Email:      client.Email,
				Phone:      client.Phone,
				Registered: client.CreatedAt.Format(time.RFC3339),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// DeleteClientHandler - removes a client by e-mail
func DeleteClientHandler(s services.ClientsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := chi.URLParam(r, "email")
		err := s.DeleteClient(r.Context(), email)
		if err != nil {
			if errors.Is(err, storage.ErrClientNotFound) {
				http.Error(w, "Client not found", http.StatusNotFound)
				return
			}
			writeStorageError(w, err, "Failed to delete client")
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}
