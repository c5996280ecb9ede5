package queue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rookgm/storedesk/internal/models"
)

// NoQueue is shown for a queue that is not serving anyone
const NoQueue = "No Queue"

// ServingSource returns currently serving tickets of store
type ServingSource interface {
	CurrentServing(ctx context.Context, storeID string) (*models.QueueSnapshot, error)
}

// Line is rendered state of one queue
type Line struct {
	Name          string `json:"name"`
	Serving       bool   `json:"serving"`
	CurrentTicket int    `json:"currentTicket,omitempty"`
	NextTicket    int    `json:"nextTicket"`
	Text          string `json:"text"`
}

// View is rendered queue display
type View struct {
	Online    Line      `json:"online"`
	WalkIn    Line      `json:"walkIn"`
	FetchedAt time.Time `json:"fetchedAt"`
	Loaded    bool      `json:"loaded"`
}

// Display keeps last fetched queue snapshot of store
type Display struct {
	src     ServingSource
	storeID string

	mu   sync.RWMutex
	last *models.QueueSnapshot
}

// NewDisplay creates new Display instance
func NewDisplay(src ServingSource, storeID string) *Display {
	return &Display{src: src, storeID: storeID}
}

// Refresh fetches snapshot. On error the previous snapshot is kept.
func (d *Display) Refresh(ctx context.Context) error {
	snap, err := d.src.CurrentServing(ctx, d.storeID)
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.last = snap
	d.mu.Unlock()

	return nil
}

// Snapshot returns last fetched snapshot, nil before first successful refresh
func (d *Display) Snapshot() *models.QueueSnapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.last
}

// Render returns view of last snapshot
func (d *Display) Render() View {
	snap := d.Snapshot()
	if snap == nil {
		return View{
			Online: renderLine("Online", models.QueueState{}),
			WalkIn: renderLine("Walk-in", models.QueueState{}),
		}
	}
	return View{
		Online:    renderLine("Online", snap.Online),
		WalkIn:    renderLine("Walk-in", snap.WalkIn),
		FetchedAt: snap.FetchedAt,
		Loaded:    true,
	}
}

func renderLine(name string, q models.QueueState) Line {
	if q.CurrentTicket == nil {
		return Line{
			Name:       name,
			NextTicket: q.NextTicketNumber,
			Text:       name + ": " + NoQueue,
		}
	}
	return Line{
		Name:          name,
		Serving:       true,
		CurrentTicket: *q.CurrentTicket,
		NextTicket:    q.NextTicketNumber,
		Text:          fmt.Sprintf("%s: now serving #%d, next #%d", name, *q.CurrentTicket, q.NextTicketNumber),
	}
}
