package repository

import (
	"context"
	"sync"

	"github.com/rookgm/storedesk/internal/models"
)

// MemoryEventRepository keeps events in process memory. Used when no database is configured.
type MemoryEventRepository struct {
	mu     sync.RWMutex
	ids    map[string]struct{}
	events map[string][]models.Event
}

// NewMemoryEventRepository creates new MemoryEventRepository instance
func NewMemoryEventRepository() *MemoryEventRepository {
	return &MemoryEventRepository{
		ids:    make(map[string]struct{}),
		events: make(map[string][]models.Event),
	}
}

// Record stores event
func (mr *MemoryEventRepository) Record(ctx context.Context, event *models.Event) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	id := event.ID.String()
	if _, ok := mr.ids[id]; ok {
		return models.ErrConflictData
	}
	mr.ids[id] = struct{}{}
	mr.events[event.OrderID] = append(mr.events[event.OrderID], *event)

	return nil
}

// ListByOrder returns events of order, oldest first
func (mr *MemoryEventRepository) ListByOrder(ctx context.Context, orderID string) ([]models.Event, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	events := make([]models.Event, len(mr.events[orderID]))
	copy(events, mr.events[orderID])

	return events, nil
}
