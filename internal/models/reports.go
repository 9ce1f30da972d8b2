package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyRevenue - settled revenue for one calendar day
type DailyRevenue struct {
	Day     time.Time
	Revenue decimal.Decimal
}

// DailyRevenueResponse - revenue row as returned to the caller
type DailyRevenueResponse struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
}

// ForecastResponse - projected daily revenue for the days ahead
type ForecastResponse struct {
	Days      int       `json:"days"`
	Projected []float64 `json:"projected"`
}
