package worker

import (
	"context"
	"sync"
	"time"

	"github.com/boituva/beachclub/internal/logger"
	"github.com/boituva/beachclub/internal/services"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "loyalty-accrual",
		Timeout: 30 * time.Second, // retry the storage after 30s
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// stop hammering a failing database after 5 misses
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker state change", "name", name, "from", from.String(), "to", to.String())
		},
	})
}

// LoyaltyWorker - credits loyalty points for settled orders in the
// background.
type LoyaltyWorker struct {
	Loyalty      services.LoyaltyService
	Breaker      *gobreaker.CircuitBreaker
	Limiter      *rate.Limiter
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	BatchSize    int
	PollInterval time.Duration
}

// NewLoyaltyWorker - builds the accrual worker
func NewLoyaltyWorker(loyalty services.LoyaltyService, batchSize int, pollInterval time.Duration) *LoyaltyWorker {
	return &LoyaltyWorker{
		Loyalty:      loyalty,
		Breaker:      InitCircuitBreaker(),
		Limiter:      rate.NewLimiter(rate.Every(time.Second), 1),
		QuitChan:     make(chan struct{}),
		BatchSize:    batchSize,
		PollInterval: pollInterval,
	}
}

// Start - launches the worker in the background
func (w *LoyaltyWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - stops the worker and waits for it to drain
func (w *LoyaltyWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - main worker loop
func (w *LoyaltyWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("LoyaltyWorker signal stop")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.ProcessBatch(ctx)
		}
	}
}

// ProcessBatch - credits one batch of settled orders
func (w *LoyaltyWorker) ProcessBatch(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("Storage unavailable for loyalty accrual. Waiting...")
		return
	}
	if err := w.Limiter.Wait(ctx); err != nil {
		return
	}

	_, err := w.Breaker.Execute(func() (interface{}, error) {
		return w.Loyalty.CreditSettledOrders(ctx, w.BatchSize)
	})
	if err != nil {
		logger.Error("Error crediting loyalty points", err)
	}
}
