package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/rookgm/storedesk/internal/models"
)

// CurrentServing returns currently serving tickets of store queues
func (c *Client) CurrentServing(ctx context.Context, storeID string) (*models.QueueSnapshot, error) {
	// GET /booking/current/{storeId}
	snap := models.QueueSnapshot{}
	if err := c.do(ctx, http.MethodGet, nil, nil, &snap, "booking", "current", storeID); err != nil {
		return nil, err
	}
	snap.FetchedAt = time.Now()
	return &snap, nil
}

// Slots returns available time slots per weekday
func (c *Client) Slots(ctx context.Context, storeID string) ([]models.DaySlots, error) {
	// GET /booking/slots/{storeId}
	var slots []models.DaySlots
	if err := c.do(ctx, http.MethodGet, nil, nil, &slots, "booking", "slots", storeID); err != nil {
		return nil, err
	}
	return slots, nil
}

// CreateOnlineTicket books online queue ticket
func (c *Client) CreateOnlineTicket(ctx context.Context, ticket *models.Ticket) (*models.Ticket, error) {
	// POST /booking/online
	created := models.Ticket{}
	if err := c.do(ctx, http.MethodPost, nil, ticket, &created, "booking", "online"); err != nil {
		return nil, err
	}
	return &created, nil
}

// AddTableReservation books table
func (c *Client) AddTableReservation(ctx context.Context, res *models.TableReservation) (*models.TableReservation, error) {
	// POST /booking/table/add
	created := models.TableReservation{}
	if err := c.do(ctx, http.MethodPost, nil, res, &created, "booking", "table", "add"); err != nil {
		return nil, err
	}
	return &created, nil
}

// UserTickets returns tickets user holds in store
func (c *Client) UserTickets(ctx context.Context, userID, storeID string) ([]models.Ticket, error) {
	// GET /booking/tickets/{userId}/{storeId}
	var tickets []models.Ticket
	if err := c.do(ctx, http.MethodGet, nil, nil, &tickets, "booking", "tickets", userID, storeID); err != nil {
		return nil, err
	}
	return tickets, nil
}

// UserTables returns table reservations of user
func (c *Client) UserTables(ctx context.Context, userID string) ([]models.TableReservation, error) {
	// GET /booking/table/{userId}
	var tables []models.TableReservation
	if err := c.do(ctx, http.MethodGet, nil, nil, &tables, "booking", "table", userID); err != nil {
		return nil, err
	}
	return tables, nil
}
