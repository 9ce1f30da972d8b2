package storage

import (
	"context"
	"fmt"

	"github.com/boituva/beachclub/internal/models"
)

const (
	InsertLoyaltyEntry = `INSERT INTO LOYALTY (client, points, kind, order_id)
						  VALUES ($1, $2, $3, $4);`
	GetLoyaltyBalance = `SELECT COALESCE(SUM(points), 0) FROM LOYALTY WHERE client = $1;`
	GetLoyaltyEntries = `SELECT id, client, points, kind, order_id, processed_at
						 FROM LOYALTY WHERE client = $1 ORDER BY processed_at;`

	// CreditSettledOrders - claims a batch of settled orders that have not
	// been credited yet and writes one earn entry per order, all in a
	// single atomic statement. SKIP LOCKED keeps concurrent workers off
	// each other's batches. Points per order: floor(quantity x unit price).
	CreditSettledOrders = `WITH claimed AS (
							   SELECT o.id FROM ORDERS o
							   WHERE o.status IN ('PAID_DEBIT', 'PAID_CREDIT', 'PAID_PIX', 'PAID_CASH')
							     AND o.points_credited = FALSE
							   ORDER BY o.paid_at
							   LIMIT $1
							   FOR UPDATE SKIP LOCKED
						   ), updated AS (
							   UPDATE ORDERS SET points_credited = TRUE
							   WHERE id IN (SELECT id FROM claimed)
							   RETURNING id, client, product, quantity
						   )
						   INSERT INTO LOYALTY (client, points, kind, order_id)
						   SELECT u.client,
								  FLOOR(u.quantity * COALESCE(p.unit_price, 0))::BIGINT,
								  'earn',
								  u.id
						   FROM updated u
						   LEFT JOIN PRODUCTS p ON p.name = u.product;`
)

type LoyaltyDatabase struct {
	DB *Database
}

// Creates the loyalty storage
func NewLoyaltyStorage(db *Database) LoyaltyStorage {
	return &LoyaltyDatabase{DB: db}
}

func (s *LoyaltyDatabase) GetBalance(ctx context.Context, client string) (int64, error) {
	var points int64
	err := s.DB.Pool.QueryRow(ctx, GetLoyaltyBalance, client).Scan(&points)
	if err != nil {
		return 0, wrapError("get loyalty balance", err)
	}
	return points, nil
}

func (s *LoyaltyDatabase) GetEntries(ctx context.Context, client string) ([]models.LoyaltyEntry, error) {
	var entries []models.LoyaltyEntry
	rows, err := s.DB.Pool.Query(ctx, GetLoyaltyEntries, client)
	if err != nil {
		return nil, wrapError("get loyalty entries", err)
	}
	defer rows.Close()
	for rows.Next() {
		var entry models.LoyaltyEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Client,
			&entry.Points,
			&entry.Kind,
			&entry.OrderID,
			&entry.ProcessedAt,
		)
		if err != nil {
			return entries, fmt.Errorf("failed scan loyalty entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (s *LoyaltyDatabase) AddEntry(ctx context.Context, entry models.LoyaltyEntry) error {
	_, err := s.DB.Pool.Exec(ctx, InsertLoyaltyEntry,
		entry.Client,
		entry.Points,
		entry.Kind,
		entry.OrderID,
	)
	if err != nil {
		return wrapError("add loyalty entry", err)
	}
	return nil
}

func (s *LoyaltyDatabase) CreditSettledOrders(ctx context.Context, limit int) (int64, error) {
	tag, err := s.DB.Pool.Exec(ctx, CreditSettledOrders, limit)
	if err != nil {
		return 0, wrapError("credit settled orders", err)
	}
	return tag.RowsAffected(), nil
}
