package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/boituva/beachclub/internal/logger"
	"github.com/boituva/beachclub/internal/models"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	InsertOrder = `INSERT INTO ORDERS (id, client, product, quantity, status, created_at)
				   VALUES ($1, $2, $3, $4, $5, $6);`
	GetOrders = `SELECT id, product, quantity, status, created_at, paid_at
				 FROM ORDERS WHERE client=$1 ORDER BY created_at DESC;`
	GetOpenClients = `SELECT DISTINCT client FROM ORDERS WHERE status=$1 ORDER BY client;`

	// unit_price is selected as text on purpose: the registry may hold no
	// row for a legacy product name and the engine coerces what it gets.
	GetOpenOrderLines = `SELECT o.id, o.product, o.quantity, COALESCE(p.unit_price::text, '') AS unit_price, o.created_at
						 FROM ORDERS o
						 LEFT JOIN PRODUCTS p ON p.name = o.product
						 WHERE o.client=$1 AND o.status=$2
						 ORDER BY o.created_at;`

	SettleClientOrders = `UPDATE ORDERS
						  SET status = $1, paid_at = $2
						  WHERE client = $3 AND status = $4;`
	SettleOrdersByID = `UPDATE ORDERS
						SET status = $1, paid_at = $2
						WHERE id = ANY($3) AND client = $4 AND status = $5;`
)

type OrderDatabase struct {
	DB *Database
}

// Creates the orders storage
func NewOrdersStorage(db *Database) OrdersStorage {
	return &OrderDatabase{DB: db}
}

func (s *OrderDatabase) AddOrder(ctx context.Context, order models.OrderData) error {
	_, err := s.DB.Pool.Exec(ctx, InsertOrder,
		order.ID,
		order.Client,
		order.Product,
		order.Quantity,
		order.Status,
		order.CreatedAt,
	)
	if err != nil {
		return wrapError("add order", err)
	}
	return nil
}

func (s *OrderDatabase) GetOrders(ctx context.Context, client string) ([]models.OrderData, error) {
	var orders []models.OrderData
	rows, err := s.DB.Pool.Query(ctx, GetOrders, client)
	if err != nil {
		return nil, wrapError("get orders", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			id        string
			product   string
			quantity  int64
			status    string
			createdAt time.Time
			paidAt    *time.Time
		)
		err := rows.Scan(&id, &product, &quantity, &status, &createdAt, &paidAt)
		if err != nil {
			return orders, fmt.Errorf("failed scan order data: %w", err)
		}
		orders = append(orders, models.OrderData{
			ID:        id,
			Client:    client,
			Product:   product,
			Quantity:  quantity,
			Status:    status,
			CreatedAt: createdAt,
			PaidAt:    paidAt,
		})
	}
	return orders, rows.Err()
}

func (s *OrderDatabase) GetOpenClients(ctx context.Context) ([]string, error) {
	var clients []string
	rows, err := s.DB.Pool.Query(ctx, GetOpenClients, models.OrderStatusOpen)
	if err != nil {
		return nil, wrapError("get open clients", err)
	}
	defer rows.Close()
	for rows.Next() {
		var client string
		if err := rows.Scan(&client); err != nil {
			return clients, fmt.Errorf("failed scan open client: %w", err)
		}
		clients = append(clients, client)
	}
	return clients, rows.Err()
}

func (s *OrderDatabase) GetOpenOrderLines(ctx context.Context, client string) ([]models.OpenOrderLine, error) {
	var lines []models.OpenOrderLine
	rows, err := s.DB.Pool.Query(ctx, GetOpenOrderLines, client, models.OrderStatusOpen)
	if err != nil {
		return nil, wrapError("get open order lines", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			orderID   string
			product   string
			quantity  int64
			unitPrice string
			createdAt time.Time
		)
		err := rows.Scan(&orderID, &product, &quantity, &unitPrice, &createdAt)
		if err != nil {
			return lines, fmt.Errorf("failed scan open order line: %w", err)
		}
		lines = append(lines, models.OpenOrderLine{
			OrderID:   orderID,
			Product:   product,
			Quantity:  quantity,
			UnitPrice: unitPrice,
			CreatedAt: createdAt,
		})
	}
	return lines, rows.Err()
}

// SettleClientOrders - transitions every currently open order of the client
// in one statement: the set settled is exactly the set open at the instant
// the UPDATE runs.
func (s *OrderDatabase) SettleClientOrders(ctx context.Context, client string, status string, paidAt time.Time) (int64, error) {
	tag, err := s.DB.Pool.Exec(ctx, SettleClientOrders, status, paidAt, client, models.OrderStatusOpen)
	if err != nil {
		return 0, wrapError("settle client orders", err)
	}
	return tag.RowsAffected(), nil
}

// SettleOrdersByID - transitions exactly the pinned orders inside one
// transaction. When any pinned order is no longer open the whole settlement
// rolls back and ErrOrdersChanged is returned.
func (s *OrderDatabase) SettleOrdersByID(ctx context.Context, client string, orderIDs []string, status string, paidAt time.Time) error {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return wrapError("settle orders begin", err)
	}

	// guaranteed rollback on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("SettleOrdersByID. rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	tag, err := tx.Exec(ctx, SettleOrdersByID, status, paidAt, orderIDs, client, models.OrderStatusOpen)
	if err != nil {
		return wrapError("settle orders", err)
	}
	if tag.RowsAffected() != int64(len(orderIDs)) {
		err = ErrOrdersChanged
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return wrapError("settle orders commit", err)
	}
	return nil
}
