package models

import "time"

// Loyalty ledger entry kinds
const (
	LoyaltyEarn   = "earn"
	LoyaltyRedeem = "redeem"
)

// LoyaltyEntry - one ledger entry; Points is positive for earn and
// negative for redeem. OrderID links automatic accruals to the settled
// order they were computed from.
type LoyaltyEntry struct {
	ID          int64
	Client      string
	Points      int64
	Kind        string
	OrderID     *string
	ProcessedAt time.Time
}

// LoyaltyBalance - current point balance for a client
type LoyaltyBalance struct {
	Client string `json:"client"`
	Points int64  `json:"points"`
}

// LoyaltyPointsRequest - manual point grant payload
type LoyaltyPointsRequest struct {
	Points int64 `json:"points"`
}

// LoyaltyEntryResponse - ledger entry as returned to the caller
type LoyaltyEntryResponse struct {
	Points      int64  `json:"points"`
	Kind        string `json:"kind"`
	OrderID     string `json:"order_id,omitempty"`
	ProcessedAt string `json:"processed_at"`
}
