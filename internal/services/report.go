package services

import (
	"context"
	"errors"
	"time"

	"github.com/boituva/beachclub/internal/models"
	"github.com/boituva/beachclub/internal/storage"
)

var (
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrInvalidForecastDays = errors.New("forecast days must be positive")
)

type ReportService interface {
	GetDailyRevenue(ctx context.Context, from time.Time, to time.Time) ([]models.DailyRevenue, error)
	ForecastRevenue(ctx context.Context, from time.Time, to time.Time, days int) ([]float64, error)
}

type Report struct {
	Storage storage.ReportsStorage
}

// Creates the service
func NewReport(storage storage.ReportsStorage) ReportService {
	return &Report{Storage: storage}
}

// GetDailyRevenue - settled revenue per calendar day over [from, to)
func (s *Report) GetDailyRevenue(ctx context.Context, from time.Time, to time.Time) ([]models.DailyRevenue, error) {
	if !to.After(from) {
		return nil, ErrInvalidDateRange
	}
	return s.Storage.GetDailyRevenue(ctx, from, to)
}

// ForecastRevenue - naive projection of daily revenue: a least-squares
// line fitted over the observed series, extended the requested number of
// days ahead. Projections never go below zero.
func (s *Report) ForecastRevenue(ctx context.Context, from time.Time, to time.Time, days int) ([]float64, error) {
	if days <= 0 {
		return nil, ErrInvalidForecastDays
	}
	revenue, err := s.GetDailyRevenue(ctx, from, to)
	if err != nil {
		return nil, err
	}
	series := make([]float64, len(revenue))
	for i, day := range revenue {
		series[i] = day.Revenue.InexactFloat64()
	}
	return ForecastSeries(series, days), nil
}

// ForecastSeries - fits y = a + b*x by ordinary least squares over the
// series indexed 0..n-1 and evaluates the next `days` points, clamped at
// zero. Fewer than two observations yield a flat projection.
func ForecastSeries(series []float64, days int) []float64 {
	projected := make([]float64, days)
	n := float64(len(series))
	if len(series) == 0 {
		return projected
	}
	if len(series) == 1 {
		for i := range projected {
			projected[i] = series[0]
		}
		return projected
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, y := range series {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	b := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	a := (sumY - b*sumX) / n

	for i := range projected {
		x := n + float64(i)
		value := a + b*x
		if value < 0 {
			value = 0
		}
		projected[i] = value
	}
	return projected
}
