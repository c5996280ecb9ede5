package worker

import (
	"context"
	"time"

	"github.com/rookgm/storedesk/internal/cache"
	"github.com/rookgm/storedesk/internal/logger"
	"github.com/rookgm/storedesk/internal/models"
	"go.uber.org/zap"
)

// OrderSource fetches store orders from backend
type OrderSource interface {
	OrdersByStatus(ctx context.Context, storeID string, status models.OrderStatus) ([]models.Order, error)
	OrdersByDate(ctx context.Context, storeID string, date time.Time) ([]models.Order, error)
}

// PendingObserver is told pending order count after every refresh
type PendingObserver interface {
	Observe(pending int)
}

// OrderPoller is worker keeps order cache in sync with backend
type OrderPoller struct {
	src      OrderSource
	orders   *cache.OrderCache
	observer PendingObserver
	storeID  string
	interval time.Duration
	now      func() time.Time
}

// NewOrderPoller create new order poller
func NewOrderPoller(src OrderSource, orders *cache.OrderCache, observer PendingObserver, storeID string, interval time.Duration) *OrderPoller {
	return &OrderPoller{
		src:      src,
		orders:   orders,
		observer: observer,
		storeID:  storeID,
		interval: interval,
		now:      time.Now,
	}
}

// Run polls orders until ctx is done. First poll happens immediately.
func (op *OrderPoller) Run(ctx context.Context) {
	if err := op.Poll(ctx); err != nil {
		logger.Log.Error("error polling orders", zap.Error(err))
	}

	ticker := time.NewTicker(op.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Debug("order poller is done")
			return
		case <-ticker.C:
			if err := op.Poll(ctx); err != nil {
				logger.Log.Error("error polling orders", zap.Error(err))
			}
		}
	}
}

// Poll runs one refresh cycle. On error cache and observer are left untouched.
func (op *OrderPoller) Poll(ctx context.Context) error {
	token := op.orders.BeginFetch()

	pending, err := op.src.OrdersByStatus(ctx, op.storeID, models.OrderStatusPending)
	if err != nil {
		return err
	}
	today, err := op.src.OrdersByDate(ctx, op.storeID, op.now())
	if err != nil {
		return err
	}

	stale := op.orders.ApplyFetch(token, merge(pending, today))
	if stale > 0 {
		logger.Log.Debug("kept locally updated orders", zap.Int("count", stale))
	}

	op.observer.Observe(op.orders.PendingCount())
	return nil
}

// merge joins order lists by id, later lists win
func merge(lists ...[]models.Order) []models.Order {
	seen := make(map[string]int)
	var out []models.Order

	for _, list := range lists {
		for _, o := range list {
			if i, ok := seen[o.ID]; ok {
				out[i] = o
				continue
			}
			seen[o.ID] = len(out)
			out = append(out, o)
		}
	}
	return out
}
