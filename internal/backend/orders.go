package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/rookgm/storedesk/internal/models"
)

// orderList accepts both a bare array and an {"orders": [...]} envelope
type orderList []models.Order

func (l *orderList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, (*[]models.Order)(l))
	}
	var env struct {
		Orders []models.Order `json:"orders"`
		Data   []models.Order `json:"data"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	if env.Orders != nil {
		*l = env.Orders
	} else {
		*l = env.Data
	}
	return nil
}

// OrdersByStatus returns store orders in status
func (c *Client) OrdersByStatus(ctx context.Context, storeID string, status models.OrderStatus) ([]models.Order, error) {
	// GET /orders/store/{storeId}/status?status=<status>
	var orders orderList
	q := url.Values{"status": {string(status)}}
	if err := c.do(ctx, http.MethodGet, q, nil, &orders, "orders", "store", storeID, "status"); err != nil {
		return nil, err
	}
	return orders, nil
}

// OrdersByDate returns store orders placed on day of date
func (c *Client) OrdersByDate(ctx context.Context, storeID string, date time.Time) ([]models.Order, error) {
	// GET /orders/store/{storeId}?date=<iso-date>
	var orders orderList
	q := url.Values{"date": {date.Format(time.DateOnly)}}
	if err := c.do(ctx, http.MethodGet, q, nil, &orders, "orders", "store", storeID); err != nil {
		return nil, err
	}
	return orders, nil
}

type statusRequest struct {
	Status models.OrderStatus `json:"status"`
}

// UpdateOrderStatus asks backend to move order to status
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) error {
	// PATCH /orders/status/{orderId}
	return c.do(ctx, http.MethodPatch, nil, statusRequest{Status: status}, nil, "orders", "status", orderID)
}

type paymentRequest struct {
	PaymentStatus models.PaymentStatus `json:"paymentStatus"`
}

// UpdatePaymentStatus sets order payment status
func (c *Client) UpdatePaymentStatus(ctx context.Context, orderID string, status models.PaymentStatus) error {
	// PATCH /orders/payment/{orderId}
	return c.do(ctx, http.MethodPatch, nil, paymentRequest{PaymentStatus: status}, nil, "orders", "payment", orderID)
}

// NotifyReady pushes "ready for pickup" notification to customer
func (c *Client) NotifyReady(ctx context.Context, orderID string) error {
	// POST /orders/{orderId}/notify-ready
	return c.do(ctx, http.MethodPost, nil, nil, nil, "orders", orderID, "notify-ready")
}
