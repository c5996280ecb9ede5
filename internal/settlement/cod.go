package settlement

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"sync"

	"github.com/rookgm/storedesk/internal/logger"
	"github.com/rookgm/storedesk/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// TableNotSpecified is catch-all group of orders without table number
const TableNotSpecified = "Table Not Specified"

// tablePattern matches "Table 5", "table5", "TABLE no. 5", "Table #05"
var tablePattern = regexp.MustCompile(`(?i)\btable\s*(?:no\.?|number|#)?\s*(\d+)`)

// Group is outstanding cash-on-delivery orders of one table
type Group struct {
	Key          string          `json:"table"`
	Orders       []models.Order  `json:"orders"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	CustomerName string          `json:"customerName"`
	PhoneNumber  string          `json:"phoneNumber"`
}

// OrderIDs returns ids of group orders
func (g *Group) OrderIDs() []string {
	ids := make([]string, 0, len(g.Orders))
	for _, o := range g.Orders {
		ids = append(ids, o.ID)
	}
	return ids
}

// IsCODPending reports whether order is unsettled cash-on-delivery order
func IsCODPending(o *models.Order) bool {
	return o.PaymentMethod == models.PaymentMethodCOD &&
		o.PaymentStatus != models.PaymentStatusCompleted &&
		o.Status != models.OrderStatusCancelled
}

// TableKey extracts table key from delivery address
func TableKey(address string) string {
	m := tablePattern.FindStringSubmatch(address)
	if m == nil {
		return TableNotSpecified
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return TableNotSpecified
	}
	return "Table " + strconv.Itoa(n)
}

// GroupCODPending groups unsettled cash-on-delivery orders by table
func GroupCODPending(orders []models.Order) map[string]*Group {
	groups := make(map[string]*Group)

	for _, o := range orders {
		if !IsCODPending(&o) {
			continue
		}

		key := TableKey(o.DeliveryAddress)
		g, ok := groups[key]
		if !ok {
			g = &Group{Key: key, TotalAmount: decimal.Zero}
			groups[key] = g
		}

		g.Orders = append(g.Orders, o)
		g.TotalAmount = g.TotalAmount.Add(o.TotalAmount)
		g.CustomerName = o.CustomerName
		g.PhoneNumber = o.PhoneNumber
	}

	return groups
}

// SortedKeys returns group keys by table number, catch-all group last
func SortedKeys(groups map[string]*Group) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}

	num := func(k string) int {
		m := tablePattern.FindStringSubmatch(k)
		if m == nil {
			return -1
		}
		n, _ := strconv.Atoi(m[1])
		return n
	}

	sort.Slice(keys, func(i, j int) bool {
		ni, nj := num(keys[i]), num(keys[j])
		switch {
		case ni < 0 && nj < 0:
			return keys[i] < keys[j]
		case ni < 0:
			return false
		case nj < 0:
			return true
		}
		return ni < nj
	})
	return keys
}

// PaymentUpdater updates order payment status
type PaymentUpdater interface {
	UpdatePaymentStatus(ctx context.Context, orderID string, status models.PaymentStatus) error
}

// Outcome is settlement result of one order
type Outcome struct {
	OrderID string `json:"orderId"`
	Err     error  `json:"-"`
}

// Result is result of group settlement
type Result struct {
	Outcomes []Outcome
	// Err aggregates every failed order, nil when all succeeded
	Err error
}

// Settled returns ids of orders marked paid
func (r *Result) Settled() []string {
	var ids []string
	for _, o := range r.Outcomes {
		if o.Err == nil {
			ids = append(ids, o.OrderID)
		}
	}
	return ids
}

// Failed returns ids of orders that could not be marked paid
func (r *Result) Failed() []string {
	var ids []string
	for _, o := range r.Outcomes {
		if o.Err != nil {
			ids = append(ids, o.OrderID)
		}
	}
	return ids
}

// Settler marks cash-on-delivery orders paid
type Settler struct {
	updater PaymentUpdater
}

// NewSettler creates new Settler instance
func NewSettler(updater PaymentUpdater) *Settler {
	return &Settler{updater: updater}
}

// MarkGroupPaid marks every order paid, one request per order. Every order is
// attempted regardless of earlier failures and succeeded updates are not rolled back.
func (s *Settler) MarkGroupPaid(ctx context.Context, orderIDs []string) Result {
	outcomes := make([]Outcome, len(orderIDs))

	var wg sync.WaitGroup
	for i, id := range orderIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			outcomes[i] = Outcome{
				OrderID: id,
				Err:     s.updater.UpdatePaymentStatus(ctx, id, models.PaymentStatusCompleted),
			}
		}(i, id)
	}
	wg.Wait()

	var errs error
	for _, o := range outcomes {
		if o.Err != nil {
			logger.Log.Error("mark order paid", zap.String("order", o.OrderID), zap.Error(o.Err))
			errs = multierr.Append(errs, o.Err)
		}
	}

	return Result{Outcomes: outcomes, Err: errs}
}
