package storage

import (
	"context"
	"errors"
	"time"

	"github.com/boituva/beachclub/internal/models"
	"github.com/shopspring/decimal"
)

type UsersStorage interface {
	AddUser(ctx context.Context, login string, password string) error
	GetUser(ctx context.Context, login string) (*models.UserData, error)
}

type OrdersStorage interface {
	AddOrder(ctx context.Context, order models.OrderData) error
	GetOrders(ctx context.Context, client string) ([]models.OrderData, error)
	GetOpenClients(ctx context.Context) ([]string, error)
	GetOpenOrderLines(ctx context.Context, client string) ([]models.OpenOrderLine, error)
	SettleClientOrders(ctx context.Context, client string, status string, paidAt time.Time) (int64, error)
	SettleOrdersByID(ctx context.Context, client string, orderIDs []string, status string, paidAt time.Time) error
}

type ProductsStorage interface {
	AddProduct(ctx context.Context, product models.ProductData) error
	GetProducts(ctx context.Context) ([]models.ProductData, error)
	GetProduct(ctx context.Context, name string) (*models.ProductData, error)
	UpdateProductPrice(ctx context.Context, name string, price decimal.Decimal) error
	DeleteProduct(ctx context.Context, name string) error
	AddStockMovement(ctx context.Context, movement models.StockMovement) error
	GetStockLevel(ctx context.Context, product string) (int64, error)
}

type ClientsStorage interface {
	AddClient(ctx context.Context, client models.ClientData) error
	GetClients(ctx context.Context) ([]models.ClientData, error)
	DeleteClient(ctx context.Context, email string) error
}

type EventsStorage interface {
	AddEvent(ctx context.Context, event models.EventData) error
	GetMonthEvents(ctx context.Context, year int, month time.Month) ([]models.EventData, error)
	DeleteEvent(ctx context.Context, id string) error
}

type LoyaltyStorage interface {
	GetBalance(ctx context.Context, client string) (int64, error)
	GetEntries(ctx context.Context, client string) ([]models.LoyaltyEntry, error)
	AddEntry(ctx context.Context, entry models.LoyaltyEntry) error
	CreditSettledOrders(ctx context.Context, limit int) (int64, error)
}

type ReportsStorage interface {
	GetDailyRevenue(ctx context.Context, from time.Time, to time.Time) ([]models.DailyRevenue, error)
}

type Storage struct {
	Users    UsersStorage
	Orders   OrdersStorage
	Products ProductsStorage
	Clients  ClientsStorage
	Events   EventsStorage
	Loyaltys LoyaltyStorage
	Reports  ReportsStorage
}

// Creates the storage facade
func NewStorage(db *Database) Storage {
	return Storage{
		Users:    NewUsersStorage(db),
		Orders:   NewOrdersStorage(db),
		Products: NewProductsStorage(db),
		Clients:  NewClientsStorage(db),
		Events:   NewEventsStorage(db),
		Loyaltys: NewLoyaltyStorage(db),
		Reports:  NewReportsStorage(db),
	}
}

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProductNotFound = errors.New("product not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrEventNotFound   = errors.New("event not found")

	ErrAlreadyExists = errors.New("already exists")

	// ErrOrdersChanged - a snapshot-pinned settlement found that at least
	// one priced order is no longer open; nothing was transitioned.
	ErrOrdersChanged = errors.New("open orders changed since they were priced")

	// ErrUnavailable - connectivity or timeout failure, caller may retry.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrRejected - constraint violation or malformed input, not retryable.
	ErrRejected = errors.New("storage rejected the operation")
)
