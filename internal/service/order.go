package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rookgm/storedesk/internal/cache"
	"github.com/rookgm/storedesk/internal/logger"
	"github.com/rookgm/storedesk/internal/models"
	"github.com/rookgm/storedesk/internal/orderstatus"
	"go.uber.org/zap"
)

// default lifetime of requested transition
const transitionTTL = 5 * time.Minute

// OrderBackend is interface for order-related backend calls
type OrderBackend interface {
	// OrdersByDate returns store orders placed on day of date
	OrdersByDate(ctx context.Context, storeID string, date time.Time) ([]models.Order, error)
	// UpdateOrderStatus asks backend to move order to status
	UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error
	// NotifyReady pushes "ready for pickup" notification to customer
	NotifyReady(ctx context.Context, orderID string) error
}

// EventRepository is interface for interacting with the event journal
type EventRepository interface {
	// Record stores event
	Record(ctx context.Context, event *models.Event) error
	// ListByOrder returns events of order, oldest first
	ListByOrder(ctx context.Context, orderID string) ([]models.Event, error)
}

// OrderService implements OrderService interface
type OrderService struct {
	backend OrderBackend
	orders  *cache.OrderCache
	events  EventRepository
	store   models.Store
	now     func() time.Time

	mu       sync.Mutex
	pending  map[uuid.UUID]models.PendingTransition
	inflight map[string]struct{}
}

// NewOrderService creates new OrderService instance
func NewOrderService(backend OrderBackend, orders *cache.OrderCache, events EventRepository, store models.Store) *OrderService {
	return &OrderService{
		backend:  backend,
		orders:   orders,
		events:   events,
		store:    store,
		now:      time.Now,
		pending:  make(map[uuid.UUID]models.PendingTransition),
		inflight: make(map[string]struct{}),
	}
}

// ListOrders returns cached orders, all of them if status is empty
func (os *OrderService) ListOrders(status models.OrderStatus) []models.Order {
	if status == "" {
		return os.orders.List(nil)
	}
	return os.orders.List(cache.StatusFilter(models.ParseOrderStatus(string(status))))
}

// DailyOrders returns store orders of date straight from backend
func (os *OrderService) DailyOrders(ctx context.Context, date time.Time) ([]models.Order, error) {
	return os.backend.OrdersByDate(ctx, os.store.ID, date)
}

// Actions returns actions available for order
func (os *OrderService) Actions(orderID string) ([]models.Action, error) {
	order, ok := os.orders.Get(orderID)
	if !ok {
		return nil, models.ErrDataNotFound
	}
	return orderstatus.AvailableActions(&order, os.store.Category), nil
}

// RequestTransition starts two-step status change of order
func (os *OrderService) RequestTransition(ctx context.Context, orderID string, to models.OrderStatus) (*models.PendingTransition, error) {
	order, ok := os.orders.Get(orderID)
	if !ok {
		return nil, models.ErrDataNotFound
	}

	to = models.ParseOrderStatus(string(to))
	err := orderstatus.CheckTransition(&order, to, os.store.Category, "")
	if err != nil && !errors.Is(err, models.ErrOTPRequired) {
		return nil, err
	}

	now := os.now()
	pt := models.PendingTransition{
		ID:          uuid.New(),
		OrderID:     orderID,
		From:        order.Status,
		To:          to,
		RequiresOTP: orderstatus.RequiresOTP(order.Status, to),
		ExpiresAt:   now.Add(transitionTTL),
	}

	os.mu.Lock()
	os.pruneLocked(now)
	os.pending[pt.ID] = pt
	os.mu.Unlock()

	logger.Log.Debug("transition requested",
		zap.String("order", orderID),
		zap.String("from", string(pt.From)),
		zap.String("to", string(pt.To)))

	return &pt, nil
}

// ConfirmTransition performs requested transition. otp is only used for
// OTP gated transitions. On OTP or backend failure the request stays
// pending so the operator can retry. Only one confirm per order runs at a
// time, others get ErrTransitionNotAllowed.
func (os *OrderService) ConfirmTransition(ctx context.Context, id uuid.UUID, otp string) (*models.Order, error) {
	pt, err := os.takePending(id)
	if err != nil {
		return nil, err
	}
	retry := false
	defer func() { os.release(pt, retry) }()

	order, ok := os.orders.Get(pt.OrderID)
	if !ok {
		return nil, models.ErrDataNotFound
	}

	if order.Status != pt.From {
		// order moved since the request
		return nil, models.ErrTransitionNotAllowed
	}

	if err := ValidateOTP(otp); err != nil {
		retry = true
		return nil, err
	}

	if err := orderstatus.CheckTransition(&order, pt.To, os.store.Category, otp); err != nil {
		os.record(ctx, pt.OrderID, models.EventStatus, string(pt.From), string(pt.To), err)
		retry = errors.Is(err, models.ErrOTPMismatch) || errors.Is(err, models.ErrOTPRequired)
		return nil, err
	}

	if err := os.backend.UpdateOrderStatus(ctx, pt.OrderID, pt.To); err != nil {
		logger.Log.Error("update order status", zap.String("order", pt.OrderID), zap.Error(err))
		os.record(ctx, pt.OrderID, models.EventStatus, string(pt.From), string(pt.To), err)
		retry = true
		return nil, err
	}

	updated, ok := os.orders.Patch(pt.OrderID, func(o *models.Order) {
		o.Status = pt.To
	})
	if !ok {
		updated = order
		updated.Status = pt.To
	}
	os.record(ctx, pt.OrderID, models.EventStatus, string(pt.From), string(pt.To), nil)

	logger.Log.Info("order status updated",
		zap.String("order", pt.OrderID),
		zap.String("status", string(pt.To)))

	return &updated, nil
}

// CancelTransition discards requested transition
func (os *OrderService) CancelTransition(id uuid.UUID) error {
	os.mu.Lock()
	defer os.mu.Unlock()

	if _, ok := os.pending[id]; !ok {
		return models.ErrTransitionNotFound
	}
	delete(os.pending, id)
	return nil
}

// NotifyReady tells customer order is ready for pickup
func (os *OrderService) NotifyReady(ctx context.Context, orderID string) error {
	err := os.backend.NotifyReady(ctx, orderID)
	os.record(ctx, orderID, models.EventNotify, "", "ready", err)
	return err
}

// Events returns journal of order
func (os *OrderService) Events(ctx context.Context, orderID string) ([]models.Event, error) {
	return os.events.ListByOrder(ctx, orderID)
}

// takePending removes request from pending set and marks its order in flight
func (os *OrderService) takePending(id uuid.UUID) (models.PendingTransition, error) {
	os.mu.Lock()
	defer os.mu.Unlock()

	pt, ok := os.pending[id]
	if !ok {
		return models.PendingTransition{}, models.ErrTransitionNotFound
	}
	if os.now().After(pt.ExpiresAt) {
		delete(os.pending, id)
		return models.PendingTransition{}, models.ErrTransitionExpired
	}
	if _, busy := os.inflight[pt.OrderID]; busy {
		return models.PendingTransition{}, models.ErrTransitionNotAllowed
	}
	delete(os.pending, id)
	os.inflight[pt.OrderID] = struct{}{}
	return pt, nil
}

// release clears in flight mark of order, retry puts request back to pending set
func (os *OrderService) release(pt models.PendingTransition, retry bool) {
	os.mu.Lock()
	defer os.mu.Unlock()

	delete(os.inflight, pt.OrderID)
	if retry {
		os.pending[pt.ID] = pt
	}
}

func (os *OrderService) pruneLocked(now time.Time) {
	for id, pt := range os.pending {
		if now.After(pt.ExpiresAt) {
			delete(os.pending, id)
		}
	}
}

// record journals mutation attempt, journal failures are only logged
func (os *OrderService) record(ctx context.Context, orderID string, kind models.EventKind, from, to string, cause error) {
	recordEvent(ctx, os.events, os.now(), orderID, kind, from, to, cause)
}

func recordEvent(ctx context.Context, events EventRepository, now time.Time, orderID string, kind models.EventKind, from, to string, cause error) {
	event := &models.Event{
		ID:        uuid.New(),
		OrderID:   orderID,
		Kind:      kind,
		From:      from,
		To:        to,
		CreatedAt: now,
	}
	if cause != nil {
		event.Err = cause.Error()
	}
	if err := events.Record(ctx, event); err != nil {
		logger.Log.Error("record order event", zap.String("order", orderID), zap.Error(err))
	}
}
