package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type webhookRedeliverer interface {
	Redeliver(ctx context.Context) (int, error)
}

// Scheduler periodically sweeps the webhook outbox so deliveries that
// failed in-request (or were interrupted by a crash) still get their
// bounded redelivery attempts.
type Scheduler struct {
	dispatcher webhookRedeliverer
	interval   time.Duration
	logger     logger.Logger
}

func New(
	dispatcher webhookRedeliverer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		dispatcher: dispatcher,
		interval:   interval,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("webhook redelivery sweep started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("webhook redelivery sweep stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	delivered, err := s.dispatcher.Redeliver(ctx)
	if err != nil {
		s.logger.Error("webhook redelivery sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if delivered > 0 {
		s.logger.Info("webhooks redelivered",
			logger.Int("count", delivered),
		)
	}
}
