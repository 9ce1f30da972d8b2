package models

import "time"

// Order statuses. An order is created OPEN and transitions exactly once
// to one of the PAID_* statuses when the client's invoice is settled.
const (
	OrderStatusOpen       = "OPEN"
	OrderStatusPaidDebit  = "PAID_DEBIT"
	OrderStatusPaidCredit = "PAID_CREDIT"
	OrderStatusPaidPix    = "PAID_PIX"
	OrderStatusPaidCash   = "PAID_CASH"
)

// OrderRequest - incoming order intake payload
type OrderRequest struct {
	Client   string `json:"client"`
	Product  string `json:"product"`
	Quantity int64  `json:"quantity"`
}

// OrderData - stored order line
type OrderData struct {
	ID        string
	Client    string
	Product   string
	Quantity  int64
	Status    string
	CreatedAt time.Time
	PaidAt    *time.Time
}

// OrderResponse - order line as returned to the caller
type OrderResponse struct {
	ID        string `json:"id"`
	Product   string `json:"product"`
	Quantity  int64  `json:"quantity"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	PaidAt    string `json:"paid_at,omitempty"`
}

// OpenOrderLine - raw open order row joined with the product registry.
// UnitPrice comes back as text and is parsed defensively by the invoice
// engine (malformed values count as zero).
type OpenOrderLine struct {
	OrderID   string
	Product   string
	Quantity  int64
	UnitPrice string
	CreatedAt time.Time
}
