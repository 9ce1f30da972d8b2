package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PaymentMethod - the four accepted payment methods, each mapped 1:1 to a
// PAID_* order status.
type PaymentMethod string

const (
	PaymentDebit  PaymentMethod = "debit"
	PaymentCredit PaymentMethod = "credit"
	PaymentPix    PaymentMethod = "pix"
	PaymentCash   PaymentMethod = "cash"
)

var paidStatuses = map[PaymentMethod]string{
	PaymentDebit:  OrderStatusPaidDebit,
	PaymentCredit: OrderStatusPaidCredit,
	PaymentPix:    OrderStatusPaidPix,
	PaymentCash:   OrderStatusPaidCash,
}

// OrderStatus returns the PAID_* status the method settles orders into.
func (m PaymentMethod) OrderStatus() (string, bool) {
	status, ok := paidStatuses[m]
	return status, ok
}

// ParsePaymentMethod validates a method received from the caller.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	m := PaymentMethod(value)
	if _, ok := paidStatuses[m]; !ok {
		return "", fmt.Errorf("unknown payment method %q", value)
	}
	return m, nil
}

// InvoiceLine - one printed receipt line: all open order rows for the same
// product collapsed into a single priced line.
type InvoiceLine struct {
	Product   string          `json:"product"`
	Quantity  int64           `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// Invoice - ephemeral priced view over a client's open orders. It has no
// identity of its own; settlement mutates the underlying orders. OrderIDs
// pins the exact rows that were priced so settlement can detect drift.
type Invoice struct {
	Client              string          `json:"client"`
	Lines               []InvoiceLine   `json:"lines"`
	OrderIDs            []string        `json:"order_ids"`
	CouponCode          string          `json:"coupon_code,omitempty"`
	DiscountRate        decimal.Decimal `json:"discount_rate"`
	TotalBeforeDiscount decimal.Decimal `json:"total_before_discount"`
	TotalAfterDiscount  decimal.Decimal `json:"total_after_discount"`
}

// SettleRequest - settlement payload. OrderIDs, when present, requests the
// snapshot-pinned mode; without it every currently open order is swept.
type SettleRequest struct {
	Method   string   `json:"method"`
	OrderIDs []string `json:"order_ids,omitempty"`
}

// SettleResponse - number of orders transitioned by a settlement
type SettleResponse struct {
	Settled int64 `json:"settled"`
}
