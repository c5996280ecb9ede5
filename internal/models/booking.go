package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ticket status
const (
	TicketStatusPending   = "pending"
	TicketStatusConfirmed = "confirmed"
)

// Ticket is queue ticket entity
type Ticket struct {
	ID             string          `json:"id,omitempty"`
	StoreID        string          `json:"storeId"`
	UserID         string          `json:"userId"`
	TicketNumber   int             `json:"ticketNumber"`
	Status         string          `json:"status"`
	CustomerName   string          `json:"customerName,omitempty"`
	PhoneNumber    string          `json:"phoneNumber,omitempty"`
	NumberOfPeople int             `json:"numberOfPeople"`
	IsPaid         bool            `json:"isPaid"`
	PaymentAmount  decimal.Decimal `json:"paymentAmount"`
	CreatedAt      time.Time       `json:"createdAt,omitempty"`
}

// TableReservation is table booking entity
type TableReservation struct {
	ID              string    `json:"id,omitempty"`
	StoreID         string    `json:"storeId"`
	UserID          string    `json:"userId"`
	CustomerName    string    `json:"customerName,omitempty"`
	PhoneNumber     string    `json:"phoneNumber,omitempty"`
	ReservationDate time.Time `json:"reservationDate"`
	TimeSlot        string    `json:"timeSlot"`
	NumberOfPeople  int       `json:"numberOfPeople"`
	Status          string    `json:"status,omitempty"`
}

// DaySlots is list of bookable time slots for weekday
type DaySlots struct {
	Day   string   `json:"day"`
	Slots []string `json:"slots"`
}

// QueueState is state of one ticket queue
type QueueState struct {
	CurrentTicket    *int `json:"currentTicket"`
	NextTicketNumber int  `json:"nextTicketNumber"`
}

// QueueSnapshot is currently serving tickets of both queues
type QueueSnapshot struct {
	Online    QueueState `json:"online"`
	WalkIn    QueueState `json:"walkIn"`
	FetchedAt time.Time  `json:"-"`
}
