package worker

import (
	"context"
	"time"

	"github.com/rookgm/storedesk/internal/logger"
	"go.uber.org/zap"
)

// Refresher refreshes some view from backend
type Refresher interface {
	Refresh(ctx context.Context) error
}

// QueuePoller is worker refreshes queue display
type QueuePoller struct {
	display  Refresher
	interval time.Duration
}

// NewQueuePoller create new queue poller
func NewQueuePoller(display Refresher, interval time.Duration) *QueuePoller {
	return &QueuePoller{display: display, interval: interval}
}

// Run refreshes display until ctx is done
func (qp *QueuePoller) Run(ctx context.Context) {
	qp.refresh(ctx)

	ticker := time.NewTicker(qp.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Debug("queue poller is done")
			return
		case <-ticker.C:
			qp.refresh(ctx)
		}
	}
}

func (qp *QueuePoller) refresh(ctx context.Context) {
	if err := qp.display.Refresh(ctx); err != nil {
		logger.Log.Warn("error refreshing queue", zap.Error(err))
	}
}
