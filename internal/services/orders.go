package services

import (
	"context"
	"errors"
	"time"

	"github.com/boituva/beachclub/internal/models"
	"github.com/boituva/beachclub/internal/storage"
	"github.com/boituva/beachclub/internal/validators"
	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrUnknownProduct  = errors.New("product is not registered")
)

type OrdersService interface {
	AddOrder(ctx context.Context, client string, product string, quantity int64) (*models.OrderData, error)
	GetOrders(ctx context.Context, client string) ([]models.OrderData, error)
}

type Orders struct {
	Storage  storage.OrdersStorage
	Products storage.ProductsStorage
}

// Creates the service
func NewOrders(orders storage.OrdersStorage, products storage.ProductsStorage) OrdersService {
	return &Orders{Storage: orders, Products: products}
}

// AddOrder - registers a new open order line for a club client. The
// product must exist in the registry so the invoice engine can price it
// later.
func (s *Orders) AddOrder(ctx context.Context, client string, product string, quantity int64) (*models.OrderData, error) {
	if !validators.CheckQuantity(quantity) {
		return nil, ErrInvalidQuantity
	}

	if _, err := s.Products.GetProduct(ctx, product); err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			return nil, ErrUnknownProduct
		}
		return nil, err
	}

	order := models.OrderData{
		ID:        uuid.New().String(),
		Client:    client,
		Product:   product,
		Quantity:  quantity,
		Status:    models.OrderStatusOpen,
		CreatedAt: time.Now(),
	}
	if err := s.Storage.AddOrder(ctx, order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrders - order history for a client, newest first
func (s *Orders) GetOrders(ctx context.Context, client string) ([]models.OrderData, error) {
	return s.Storage.GetOrders(ctx, client)
}
