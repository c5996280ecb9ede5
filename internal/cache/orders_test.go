package cache

import (
	"testing"
	"time"

	"github.com/rookgm/storedesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func order(id string, status models.OrderStatus) models.Order {
	return models.Order{ID: id, OrderID: "ORD-" + id, Status: status}
}

func TestOrderCache_ApplyFetch(t *testing.T) {
	c := NewOrderCache()

	tok := c.BeginFetch()
	stale := c.ApplyFetch(tok, []models.Order{
		order("1", models.OrderStatusPending),
		order("2", models.OrderStatusProcessing),
	})
	assert.Zero(t, stale)
	assert.Equal(t, 1, c.PendingCount())

	o, ok := c.Get("2")
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusProcessing, o.Status)
	assert.NotZero(t, o.Version)

	// next fetch drops orders the backend no longer returns
	tok = c.BeginFetch()
	c.ApplyFetch(tok, []models.Order{order("2", models.OrderStatusProcessing)})
	_, ok = c.Get("1")
	assert.False(t, ok)
	assert.Zero(t, c.PendingCount())
}

func TestOrderCache_StaleFetchDiscarded(t *testing.T) {
	c := NewOrderCache()
	c.ApplyFetch(c.BeginFetch(), []models.Order{order("1", models.OrderStatusPending)})

	// fetch starts, then operator moves order, then stale fetch arrives
	tok := c.BeginFetch()
	_, ok := c.Patch("1", func(o *models.Order) { o.Status = models.OrderStatusProcessing })
	require.True(t, ok)

	stale := c.ApplyFetch(tok, []models.Order{order("1", models.OrderStatusPending)})
	assert.Equal(t, 1, stale)

	o, _ := c.Get("1")
	assert.Equal(t, models.OrderStatusProcessing, o.Status)

	// fetch started after the mutation wins
	tok = c.BeginFetch()
	stale = c.ApplyFetch(tok, []models.Order{order("1", models.OrderStatusDelivered)})
	assert.Zero(t, stale)
	o, _ = c.Get("1")
	assert.Equal(t, models.OrderStatusDelivered, o.Status)
}

func TestOrderCache_PatchedOrderSurvivesFetchOmission(t *testing.T) {
	c := NewOrderCache()
	c.ApplyFetch(c.BeginFetch(), []models.Order{order("1", models.OrderStatusPending)})

	tok := c.BeginFetch()
	c.Patch("1", func(o *models.Order) { o.Status = models.OrderStatusCancelled })
	c.ApplyFetch(tok, nil)

	o, ok := c.Get("1")
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusCancelled, o.Status)
}

func TestOrderCache_PatchUnknown(t *testing.T) {
	c := NewOrderCache()
	_, ok := c.Patch("missing", func(o *models.Order) { o.Status = models.OrderStatusCancelled })
	assert.False(t, ok)
}

func TestOrderCache_List(t *testing.T) {
	c := NewOrderCache()
	now := time.Now()
	a := order("a", models.OrderStatusPending)
	a.OrderDate = now.Add(-time.Hour)
	b := order("b", models.OrderStatusPending)
	b.OrderDate = now
	d := order("d", models.OrderStatusDelivered)
	d.OrderDate = now.Add(-2 * time.Hour)
	c.ApplyFetch(c.BeginFetch(), []models.Order{a, b, d})

	pending := c.List(StatusFilter(models.OrderStatusPending))
	require.Len(t, pending, 2)
	assert.Equal(t, "b", pending[0].ID)
	assert.Equal(t, "a", pending[1].ID)

	assert.Len(t, c.List(nil), 3)
}
