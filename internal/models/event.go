package models

import (
	"time"

	"github.com/google/uuid"
)

// EventKind is kind of journaled order event
type EventKind string

const (
	EventStatus  EventKind = "status"
	EventPayment EventKind = "payment"
	EventNotify  EventKind = "notify"
)

// Event is journal entry of a mutation attempt made by the desk
type Event struct {
	ID        uuid.UUID `json:"id"`
	OrderID   string    `json:"orderId"`
	Kind      EventKind `json:"kind"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to"`
	Err       string    `json:"error,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// PendingTransition is requested but not yet confirmed status change
type PendingTransition struct {
	ID          uuid.UUID   `json:"id"`
	OrderID     string      `json:"orderId"`
	From        OrderStatus `json:"from"`
	To          OrderStatus `json:"to"`
	RequiresOTP bool        `json:"requiresOtp"`
	ExpiresAt   time.Time   `json:"expiresAt"`
}
