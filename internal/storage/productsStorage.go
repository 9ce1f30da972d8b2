package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/boituva/beachclub/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	InsertProduct = `INSERT INTO PRODUCTS (id, name, supplier, unit_price, unit_cost, created_at)
					 VALUES ($1, $2, $3, $4, $5, $6);`
	GetProducts = `SELECT id, name, supplier, unit_price, unit_cost, created_at
				   FROM PRODUCTS ORDER BY name;`
	GetProduct = `SELECT id, name, supplier, unit_price, unit_cost, created_at
				  FROM PRODUCTS WHERE name=$1;`
	UpdateProductPrice = `UPDATE PRODUCTS SET unit_price = $1 WHERE name = $2;`
	DeleteProduct      = `DELETE FROM PRODUCTS WHERE name = $1;`

	InsertStockMovement = `INSERT INTO STOCK_MOVEMENTS (id, product, quantity, kind, created_at)
						   VALUES ($1, $2, $3, $4, $5);`
	GetStockLevel = `SELECT COALESCE(SUM(CASE WHEN kind = 'in' THEN quantity ELSE -quantity END), 0)
					 FROM STOCK_MOVEMENTS WHERE product = $1;`
)

type ProductDatabase struct {
	DB *Database
}

// Creates the products storage
func NewProductsStorage(db *Database) ProductsStorage {
	return &ProductDatabase{DB: db}
}

func (s *ProductDatabase) AddProduct(ctx context.Context, product models.ProductData) error {
	_, err := s.DB.Pool.Exec(ctx, InsertProduct,
		product.ID,
		product.Name,
		product.Supplier,
		product.UnitPrice,
		product.UnitCost,
		product.CreatedAt,
	)
	if err != nil {
		return wrapError("add product", err)
	}
	return nil
}

func (s *ProductDatabase) GetProducts(ctx context.Context) ([]models.ProductData, error) {
	var products []models.ProductData
	rows, err := s.DB.Pool.Query(ctx, GetProducts)
	if err != nil {
		return nil, wrapError("get products", err)
	}
	defer rows.Close()
	for rows.Next() {
		var product models.ProductData
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Supplier,
			&product.UnitPrice,
			&product.UnitCost,
			&product.CreatedAt,
		)
		if err != nil {
			return products, fmt.Errorf("failed scan product data: %w", err)
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (s *ProductDatabase) GetProduct(ctx context.Context, name string) (*models.ProductData, error) {
	var product models.ProductData
	err := s.DB.Pool.QueryRow(ctx, GetProduct, name).Scan(
		&product.ID,
		&product.Name,
		&product.Supplier,
		&product.UnitPrice,
		&product.UnitCost,
		&product.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, wrapError("get product", err)
	}
	return &product, nil
}

func (s *ProductDatabase) UpdateProductPrice(ctx context.Context, name string, price decimal.Decimal) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdateProductPrice, price, name)
	if err != nil {
		return wrapError("update product price", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (s *ProductDatabase) DeleteProduct(ctx context.Context, name string) error {
	tag, err := s.DB.Pool.Exec(ctx, DeleteProduct, name)
	if err != nil {
		return wrapError("delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

func (s *ProductDatabase) AddStockMovement(ctx context.Context, movement models.StockMovement) error {
	_, err := s.DB.Pool.Exec(ctx, InsertStockMovement,
		movement.ID,
		movement.Product,
		movement.Quantity,
		movement.Kind,
		movement.CreatedAt,
	)
	if err != nil {
		return wrapError("add stock movement", err)
	}
	return nil
}

func (s *ProductDatabase) GetStockLevel(ctx context.Context, product string) (int64, error) {
	var level int64
	err := s.DB.Pool.QueryRow(ctx, GetStockLevel, product).Scan(&level)
	if err != nil {
		return 0, wrapError("get stock level", err)
	}
	return level, nil
}
