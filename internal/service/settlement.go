package service

import (
	"context"
	"time"

	"github.com/rookgm/storedesk/internal/cache"
	"github.com/rookgm/storedesk/internal/models"
	"github.com/rookgm/storedesk/internal/settlement"
)

// upper bound of one table settlement, detached from console request
const settleTimeout = time.Minute

// SettlementService implements SettlementService interface
type SettlementService struct {
	orders  *cache.OrderCache
	settler *settlement.Settler
	events  EventRepository
	now     func() time.Time
}

// NewSettlementService creates new SettlementService instance
func NewSettlementService(orders *cache.OrderCache, settler *settlement.Settler, events EventRepository) *SettlementService {
	return &SettlementService{
		orders:  orders,
		settler: settler,
		events:  events,
		now:     time.Now,
	}
}

// CODGroups returns outstanding cash-on-delivery groups ordered by table
func (ss *SettlementService) CODGroups() []*settlement.Group {
	groups := settlement.GroupCODPending(ss.orders.List(nil))

	out := make([]*settlement.Group, 0, len(groups))
	for _, key := range settlement.SortedKeys(groups) {
		out = append(out, groups[key])
	}
	return out
}

// SettleTable marks every outstanding order of table paid. Orders that
// were marked paid stay paid even if others failed.
func (ss *SettlementService) SettleTable(ctx context.Context, table string) (*settlement.Result, error) {
	groups := settlement.GroupCODPending(ss.orders.List(nil))
	g, ok := groups[table]
	if !ok {
		return nil, models.ErrDataNotFound
	}

	// client disconnect must not abort updates already started
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
	defer cancel()

	res := ss.settler.MarkGroupPaid(ctx, g.OrderIDs())

	for _, o := range res.Outcomes {
		if o.Err == nil {
			ss.orders.Patch(o.OrderID, func(order *models.Order) {
				order.PaymentStatus = models.PaymentStatusCompleted
			})
		}
		recordEvent(ctx, ss.events, ss.now(), o.OrderID, models.EventPayment,
			string(models.PaymentStatusPending), string(models.PaymentStatusCompleted), o.Err)
	}

	return &res, nil
}
