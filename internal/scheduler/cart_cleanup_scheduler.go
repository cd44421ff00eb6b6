package scheduler

import (
	"time"

	"github.com/ekaracan/kitapkurdu/internal/app/repository"
	"github.com/ekaracan/kitapkurdu/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Persisted carts are checkout-time snapshots; anything older than this
// belongs to an attempt that never completed.
const staleCartAge = 48 * time.Hour

// CartCleanupScheduler periodically sweeps abandoned cart containers
type CartCleanupScheduler struct {
	cron     *cron.Cron
	cartRepo repository.CartRepository
}

func NewCartCleanupScheduler(cartRepo repository.CartRepository) *CartCleanupScheduler {
	return &CartCleanupScheduler{
		cron:     cron.New(),
		cartRepo: cartRepo,
	}
}

// Start registers the nightly sweep and launches the cron runner
func (s *CartCleanupScheduler) Start() error {
	_, err := s.cron.AddFunc("0 3 * * *", s.sweep)
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.Info("Cart cleanup scheduler started", map[string]interface{}{
		"schedule": "0 3 * * *",
	})
	return nil
}

func (s *CartCleanupScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cart cleanup scheduler stopped")
}

func (s *CartCleanupScheduler) sweep() {
	cutoff := time.Now().Add(-staleCartAge)

	removed, err := s.cartRepo.DeleteStale(cutoff)
	if err != nil {
		logger.Error("Cart cleanup sweep failed", err)
		return
	}

	if removed > 0 {
		logger.Info("Stale carts removed", map[string]interface{}{
			"count": removed,
		})
	}
}
