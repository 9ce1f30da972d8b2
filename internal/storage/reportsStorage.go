package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/boituva/beachclub/internal/models"
	"github.com/shopspring/decimal"
)

const (
	// settled revenue per calendar day of payment
	GetDailyRevenue = `SELECT DATE_TRUNC('day', o.paid_at) AS day,
							  SUM(o.quantity * COALESCE(p.unit_price, 0)) AS revenue
					   FROM ORDERS o
					   LEFT JOIN PRODUCTS p ON p.name = o.product
					   WHERE o.status IN ('PAID_DEBIT', 'PAID_CREDIT', 'PAID_PIX', 'PAID_CASH')
					     AND o.paid_at >= $1 AND o.paid_at < $2
					   GROUP BY day
					   ORDER BY day;`
)

type ReportDatabase struct {
	DB *Database
}

// Creates the reports storage
func NewReportsStorage(db *Database) ReportsStorage {
	return &ReportDatabase{DB: db}
}

func (s *ReportDatabase) GetDailyRevenue(ctx context.Context, from time.Time, to time.Time) ([]models.DailyRevenue, error) {
	var revenue []models.DailyRevenue
	rows, err := s.DB.Pool.Query(ctx, GetDailyRevenue, from, to)
	if err != nil {
		return nil, wrapError("get daily revenue", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			day    time.Time
			amount decimal.Decimal
		)
		if err := rows.Scan(&day, &amount); err != nil {
			return revenue, fmt.Errorf("failed scan revenue data: %w", err)
		}
		revenue = append(revenue, models.DailyRevenue{Day: day, Revenue: amount})
	}
	return revenue, rows.Err()
}
