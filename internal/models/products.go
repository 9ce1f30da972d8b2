package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock movement kinds
const (
	StockIn  = "in"
	StockOut = "out"
)

// ProductRequest - product registration payload
type ProductRequest struct {
	Name      string  `json:"name"`
	Supplier  string  `json:"supplier"`
	UnitPrice float64 `json:"unit_price"`
	UnitCost  float64 `json:"unit_cost"`
}

// ProductData - stored product
type ProductData struct {
	ID        string
	Name      string
	Supplier  string
	UnitPrice decimal.Decimal
	UnitCost  decimal.Decimal
	CreatedAt time.Time
}

// ProductResponse - product as returned to the caller
type ProductResponse struct {
	Name      string  `json:"name"`
	Supplier  string  `json:"supplier"`
	UnitPrice float64 `json:"unit_price"`
	UnitCost  float64 `json:"unit_cost"`
	CreatedAt string  `json:"created_at"`
}

// StockMovementRequest - stock in/out payload
type StockMovementRequest struct {
	Product  string `json:"product"`
	Quantity int64  `json:"quantity"`
	Kind     string `json:"kind"`
}

// StockMovement - stored stock ledger entry
type StockMovement struct {
	ID        string
	Product   string
	Quantity  int64
	Kind      string
	CreatedAt time.Time
}

// StockLevel - current on-hand quantity for a product
type StockLevel struct {
	Product string `json:"product"`
	OnHand  int64  `json:"on_hand"`
}
