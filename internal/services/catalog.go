package services

import (
	"context"
	"errors"
	"time"

	"github.com/boituva/beachclub/internal/logger"
	"github.com/boituva/beachclub/internal/models"
	"github.com/boituva/beachclub/internal/storage"
	"github.com/boituva/beachclub/internal/validators"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrProductAlreadyExists = errors.New("product already exists")
	ErrInvalidPrice         = errors.New("price must not be negative")
	ErrInvalidStockKind     = errors.New("stock movement kind must be 'in' or 'out'")
	ErrInsufficientStock    = errors.New("insufficient stock for removal")
)

type CatalogService interface {
	AddProduct(ctx context.Context, request models.ProductRequest) error
	GetProducts(ctx context.Context) ([]models.ProductData, error)
	UpdatePrice(ctx context.Context, name string, price decimal.Decimal) error
	DeleteProduct(ctx context.Context, name string) error
	RegisterMovement(ctx context.Context, request models.StockMovementRequest) error
	GetStockLevel(ctx context.Context, product string) (*models.StockLevel, error)
}

type Catalog struct {
	Storage storage.ProductsStorage
}

// Creates the service
func NewCatalog(storage storage.ProductsStorage) CatalogService {
	return &Catalog{Storage: storage}
}

// AddProduct - registers a product with its supplier and prices
func (s *Catalog) AddProduct(ctx context.Context, request models.ProductRequest) error {
	price := decimal.NewFromFloat(request.UnitPrice)
	if price.IsNegative() {
		return ErrInvalidPrice
	}
	product := models.ProductData{
		ID:        uuid.New().String(),
		Name:      request.Name,
		Supplier:  request.Supplier,
		UnitPrice: price,
		UnitCost:  decimal.NewFromFloat(request.UnitCost),
		CreatedAt: time.Now(),
	}
	err := s.Storage.AddProduct(ctx, product)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return ErrProductAlreadyExists
		}
		logger.Error("Failed to add product", zap.Error(err))
		return err
	}
	return nil
}

func (s *Catalog) GetProducts(ctx context.Context) ([]models.ProductData, error) {
	return s.Storage.GetProducts(ctx)
}

func (s *Catalog) UpdatePrice(ctx context.Context, name string, price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrInvalidPrice
	}
	return s.Storage.UpdateProductPrice(ctx, name, price)
}

func (s *Catalog) DeleteProduct(ctx context.Context, name string) error {
	return s.Storage.DeleteProduct(ctx, name)
}

// RegisterMovement - records a stock intake or removal. Removals are
// rejected when they would drive the on-hand level negative.
func (s *Catalog) RegisterMovement(ctx context.Context, request models.StockMovementRequest) error {
	if !validators.CheckQuantity(request.Quantity) {
		return ErrInvalidQuantity
	}
	if !validators.CheckStockKind(request.Kind) {
		return ErrInvalidStockKind
	}

	if _, err := s.Storage.GetProduct(ctx, request.Product); err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			return ErrUnknownProduct
		}
		return err
	}

	if request.Kind == models.StockOut {
		level, err := s.Storage.GetStockLevel(ctx, request.Product)
		if err != nil {
			logger.Error("Failed to get stock level", zap.Error(err))
			return err
		}
		if level < request.Quantity {
			return ErrInsufficientStock
		}
	}

	movement := models.StockMovement{
		ID:        uuid.New().String(),
		Product:   request.Product,
		Quantity:  request.Quantity,
		Kind:      request.Kind,
		CreatedAt: time.Now(),
	}
	return s.Storage.AddStockMovement(ctx, movement)
}

func (s *Catalog) GetStockLevel(ctx context.Context, product string) (*models.StockLevel, error) {
	level, err := s.Storage.GetStockLevel(ctx, product)
	if err != nil {
		return nil, err
	}
	return &models.StockLevel{Product: product, OnHand: level}, nil
}
