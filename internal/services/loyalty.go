package services

import (
	"context"
	"errors"

	"github.com/boituva/beachclub/internal/logger"
	"github.com/boituva/beachclub/internal/models"
	"github.com/boituva/beachclub/internal/storage"
	"go.uber.org/zap"
)

var (
	ErrInsufficientPoints = errors.New("insufficient points for reward")
	ErrInvalidPoints      = errors.New("points must be a positive integer")
)

// A reward costs a fixed amount of points.
const RewardCost = 100

type LoyaltyService interface {
	GetBalance(ctx context.Context, client string) (*models.LoyaltyBalance, error)
	GetEntries(ctx context.Context, client string) ([]models.LoyaltyEntry, error)
	AddPoints(ctx context.Context, client string, points int64) error
	RedeemReward(ctx context.Context, client string) error
	CreditSettledOrders(ctx context.Context, batchSize int) (int64, error)
}

type Loyalty struct {
	Storage storage.LoyaltyStorage
}

// Creates the service
func NewLoyalty(storage storage.LoyaltyStorage) LoyaltyService {
	return &Loyalty{Storage: storage}
}

// GetBalance - current point balance of a club client
func (s *Loyalty) GetBalance(ctx context.Context, client string) (*models.LoyaltyBalance, error) {
	points, err := s.Storage.GetBalance(ctx, client)
	if err != nil {
		logger.Error("Failed to get loyalty balance", zap.Error(err))
		return nil, err
	}
	return &models.LoyaltyBalance{Client: client, Points: points}, nil
}

// GetEntries - full ledger for a client, oldest first
func (s *Loyalty) GetEntries(ctx context.Context, client string) ([]models.LoyaltyEntry, error) {
	return s.Storage.GetEntries(ctx, client)
}

// AddPoints - manual point grant from the back office
func (s *Loyalty) AddPoints(ctx context.Context, client string, points int64) error {
	if points <= 0 {
		return ErrInvalidPoints
	}
	return s.Storage.AddEntry(ctx, models.LoyaltyEntry{
		Client: client,
		Points: points,
		Kind:   models.LoyaltyEarn,
	})
}

// RedeemReward - burns the fixed reward cost from the client's balance
func (s *Loyalty) RedeemReward(ctx context.Context, client string) error {
	points, err := s.Storage.GetBalance(ctx, client)
	if err != nil {
		logger.Error("Failed to get loyalty balance", zap.Error(err))
		return err
	}
	if points < RewardCost {
		return ErrInsufficientPoints
	}
	return s.Storage.AddEntry(ctx, models.LoyaltyEntry{
		Client: client,
		Points: -RewardCost,
		Kind:   models.LoyaltyRedeem,
	})
}

// CreditSettledOrders - credits points for settled orders that have not
// been credited yet; called by the background worker.
func (s *Loyalty) CreditSettledOrders(ctx context.Context, batchSize int) (int64, error) {
	credited, err := s.Storage.CreditSettledOrders(ctx, batchSize)
	if err != nil {
		logger.Error("Failed to credit settled orders", zap.Error(err))
		return 0, err
	}
	if credited > 0 {
		logger.Info("Credited loyalty points", "orders", credited)
	}
	return credited, nil
}
