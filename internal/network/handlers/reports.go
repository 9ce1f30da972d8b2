package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/boituva/beachclub/internal/logger"
	"github.com/boituva/beachclub/internal/models"
	"github.com/boituva/beachclub/internal/services"
	"go.uber.org/zap"
)

const reportDateLayout = "2006-01-02"

// GetDailyRevenueHandler - settled revenue per day over a date range,
// query parameters from and to (YYYY-MM-DD, to exclusive)
func GetDailyRevenueHandler(s services.ReportService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		from, to, ok := parseRange(w, r)
		if !ok {
			return
		}

		revenue, err := s.GetDailyRevenue(r.Context(), from, to)
		if err != nil {
			if errors.Is(err, services.ErrInvalidDateRange) {
				http.Error(w, "Invalid date range", http.StatusUnprocessableEntity)
				return
			}
			writeStorageError(w, err, "Failed to get daily revenue")
			return
		}
		if len(revenue) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		var response []models.DailyRevenueResponse
		for _, day := range revenue {
			response = append(response, models.DailyRevenueResponse{
				Day:     day.Day.Format(reportDateLayout),
				Revenue: day.Revenue.InexactFloat64(),
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

// ForecastRevenueHandler - least-squares projection of daily revenue,
// query parameter days on top of the from/to range
func ForecastRevenueHandler(s services.ReportService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		from, to, ok := parseRange(w, r)
		if !ok {
			return
		}
		days, err := strconv.Atoi(r.URL.Query().Get("days"))
		if err != nil {
			http.Error(w, "Invalid days", http.StatusBadRequest)
			return
		}

		projected, err := s.ForecastRevenue(r.Context(), from, to, days)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidForecastDays):
				http.Error(w, "Days must be positive", http.StatusUnprocessableEntity)
			case errors.Is(err, services.ErrInvalidDateRange):
				http.Error(w, "Invalid date range", http.StatusUnprocessableEntity)
			default:
				writeStorageError(w, err, "Failed to forecast revenue")
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		response := models.ForecastResponse{Days: days, Projected: projected}
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.Error("Failed to encode JSON response:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	})
}

func parseRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	from, err := time.Parse(reportDateLayout, r.URL.Query().Get("from"))
	if err != nil {
		http.Error(w, "Invalid from date", http.StatusBadRequest)
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(reportDateLayout, r.URL.Query().Get("to"))
	if err != nil {
		http.Error(w, "Invalid to date", http.StatusBadRequest)
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
