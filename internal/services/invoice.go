package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/boituva/beachclub/internal/coupons"
	"github.com/boituva/beachclub/internal/logger"
	"github.com/boituva/beachclub/internal/models"
	"github.com/boituva/beachclub/internal/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	// ErrInvoiceOutdated - the open orders changed between pricing and
	// settlement; nothing was settled, recompute the invoice.
	ErrInvoiceOutdated = errors.New("invoice outdated, recompute before settling")
)

// Money amounts are rounded half-up to 2 decimal places, per line and on
// the discounted total.
const moneyScale = 2

type InvoiceService interface {
	ListOpenClients(ctx context.Context) ([]string, error)
	ComputeInvoice(ctx context.Context, client string) (*models.Invoice, error)
	ApplyCoupon(invoice models.Invoice, code string) models.Invoice
	SettleInvoice(ctx context.Context, client string, method models.PaymentMethod) (int64, error)
	SettleOrders(ctx context.Context, client string, method models.PaymentMethod, orderIDs []string) error
}

type Invoice struct {
	Storage storage.OrdersStorage
}

// Creates the invoice engine
func NewInvoice(storage storage.OrdersStorage) InvoiceService {
	return &Invoice{Storage: storage}
}

// ListOpenClients - the distinct clients that currently have at least one
// open order.
func (s *Invoice) ListOpenClients(ctx context.Context) ([]string, error) {
	clients, err := s.Storage.GetOpenClients(ctx)
	if err != nil {
		logger.Error("Failed to list open clients", zap.Error(err))
		return nil, err
	}
	return clients, nil
}

// ComputeInvoice - prices the client's open orders into one receipt line
// per product. A client with no open orders yields a nil invoice and no
// error. Prices arrive as text and malformed values count as zero.
func (s *Invoice) ComputeInvoice(ctx context.Context, client string) (*models.Invoice, error) {
	rows, err := s.Storage.GetOpenOrderLines(ctx, client)
	if err != nil {
		logger.Error("Failed to get open order lines", zap.Error(err))
		return nil, err
	}
	if len(rows) == 0 {
		// nothing to invoice
		return nil, nil
	}

	type group struct {
		quantity  int64
		unitPrice decimal.Decimal
	}
	groups := make(map[string]*group)
	var products []string
	orderIDs := make([]string, 0, len(rows))

	for _, row := range rows {
		orderIDs = append(orderIDs, row.OrderID)
		g, ok := groups[row.Product]
		if !ok {
			g = &group{unitPrice: coercePrice(row.Product, row.UnitPrice)}
			groups[row.Product] = g
			products = append(products, row.Product)
		}
		g.quantity += row.Quantity
	}

	invoice := &models.Invoice{
		Client:   client,
		OrderIDs: orderIDs,
	}
	total := decimal.Zero
	for _, product := range products {
		g := groups[product]
		lineTotal := g.unitPrice.Mul(decimal.NewFromInt(g.quantity)).Round(moneyScale)
		invoice.Lines = append(invoice.Lines, models.InvoiceLine{
			Product:   product,
			Quantity:  g.quantity,
			LineTotal: lineTotal,
		})
		total = total.Add(lineTotal)
	}
	invoice.TotalBeforeDiscount = total
	invoice.TotalAfterDiscount = total
	return invoice, nil
}

// ApplyCoupon - pure recomputation of the discounted total. The lookup is
// case-sensitive; an unknown or empty code yields a zero rate and no error,
// mirroring how the cashier flow has always behaved.
func (s *Invoice) ApplyCoupon(invoice models.Invoice, code string) models.Invoice {
	rate, ok := coupons.Resolve(code)
	if !ok {
		rate = decimal.Zero
	}
	invoice.CouponCode = code
	invoice.DiscountRate = rate
	invoice.TotalAfterDiscount = invoice.TotalBeforeDiscount.
		Mul(decimal.NewFromInt(1).Sub(rate)).
		Round(moneyScale)
	return invoice
}

// SettleInvoice - legacy settlement: transitions every order open for the
// client at the instant the update runs, not the set priced earlier.
// Returns the number of orders transitioned; zero is still a success.
func (s *Invoice) SettleInvoice(ctx context.Context, client string, method models.PaymentMethod) (int64, error) {
	status, ok := method.OrderStatus()
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, method)
	}
	settled, err := s.Storage.SettleClientOrders(ctx, client, status, time.Now())
	if err != nil {
		logger.Error("Failed to settle client orders", zap.Error(err))
		return 0, err
	}
	logger.Info("Invoice settled", "client", client, "method", string(method), "orders", settled)
	return settled, nil
}

// SettleOrders - snapshot settlement pinned to the orders a prior
// ComputeInvoice priced. Orders created after pricing are left untouched
// and a changed pin set aborts the whole settlement.
func (s *Invoice) SettleOrders(ctx context.Context, client string, method models.PaymentMethod, orderIDs []string) error {
	status, ok := method.OrderStatus()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, method)
	}
	if len(orderIDs) == 0 {
		return nil
	}
	err := s.Storage.SettleOrdersByID(ctx, client, orderIDs, status, time.Now())
	if err != nil {
		if errors.Is(err, storage.ErrOrdersChanged) {
			logger.Warn("Stale invoice settlement rejected", "client", client)
			return ErrInvoiceOutdated
		}
		logger.Error("Failed to settle orders", zap.Error(err))
		return err
	}
	logger.Info("Invoice settled", "client", client, "method", string(method), "orders", len(orderIDs))
	return nil
}

// coercePrice - defensive parse of a price-like value coming back from
// storage as text. Malformed or missing values count as zero instead of
// failing the whole invoice.
func coercePrice(product string, raw string) decimal.Decimal {
	if raw == "" {
		return decimal.Zero
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		logger.Warn("Malformed unit price, treating as zero", "product", product, "value", raw)
		return decimal.Zero
	}
	return price
}
