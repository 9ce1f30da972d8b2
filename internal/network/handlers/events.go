package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/boituva/beachclub/internal/logger"
	"github.com/boituva/beachclub/internal/models"
	"github.com/boituva/beachclub/internal/services"
	"github.com/boituva/beachclub/internal/storage"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ScheduleEventHandler - adds an event to the club calendar
func ScheduleEventHandler(s services.EventsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.EventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if req.Name == "" {
			http.Error(w, "Event name is required", http.StatusBadRequest)
			return
		}

		event, err := s.ScheduleEvent(r.Context(), req)
		if err != nil {
			if errors.Is(err, services.ErrInvalidEventDate) {
				http.Error(w, "Date must be YYYY-MM-DD", http.StatusUnprocessableEntity)
				return
			}
			writeStorageError(w, err, "Failed to schedule event")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(eventToResponse(*event)); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			return
		}
	})
}

// GetMonthEventsHandler - events of one calendar month, query parameters
// year and month
func GetMonthEventsHandler(s services.EventsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		year, err := strconv.Atoi(r.URL.Query().Get("year"))
		if err != nil {
			http.Error(w, "Invalid year", http.StatusBadRequest)
			return
		}
		month, err := strconv.Atoi(r.URL.Query().Get("month"))
		if err != nil {
			http.Error(w, "Invalid month", http.StatusBadRequest)
			return
		}

		events, err := s.GetMonthEvents(r.Context(), year, month)
		if err != nil {
			if errors.Is(err, services.ErrInvalidMonth) {
				http.Error(w, "Month must be between 1 and 12", http.StatusUnprocessableEntity)
				return
			}
			writeStorageError(w, err, "Failed to get events")
			return
		}
		if len(events) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.EventResponse
		for _, event := range events {
			response = append(response, eventToResponse(event))
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

// CancelEventHandler - removes an event from the calendar
func CancelEventHandler(s services.EventsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		err := s.CancelEvent(r.Context(), id)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				http.Error(w, "Event not found", http.StatusNotFound)
				return
			}
			writeStorageError(w, err, "Failed to cancel event")
			return
		}
		w.WriteHeader(http.StatusOK)
	})
}

func eventToResponse(event models.EventData) models.EventResponse {
	return models.EventResponse{
		ID:               event.ID,
		Name:             event.Name,
		Description:      event.Description,
		Date:             event.Date.Format("2006-01-02"),
		RegistrationOpen: event.RegistrationOpen,
	}
}
