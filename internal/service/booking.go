package service

import (
	"context"
	"strings"
	"time"

	"github.com/rookgm/storedesk/internal/models"
)

// BookingBackend is interface for booking-related backend calls
type BookingBackend interface {
	Slots(ctx context.Context, storeID string) ([]models.DaySlots, error)
	CreateOnlineTicket(ctx context.Context, ticket *models.Ticket) (*models.Ticket, error)
	AddTableReservation(ctx context.Context, res *models.TableReservation) (*models.TableReservation, error)
	UserTickets(ctx context.Context, userID, storeID string) ([]models.Ticket, error)
	UserTables(ctx context.Context, userID string) ([]models.TableReservation, error)
}

// BookingService implements BookingService interface
type BookingService struct {
	backend BookingBackend
	storeID string
	// userID is taken from backend token, may be empty
	userID string
	now    func() time.Time
}

// NewBookingService creates new BookingService instance
func NewBookingService(backend BookingBackend, storeID string, token *models.TokenPayload) *BookingService {
	bs := &BookingService{
		backend: backend,
		storeID: storeID,
		now:     time.Now,
	}
	if token != nil {
		bs.userID = token.UserID
	}
	return bs
}

// Slots returns bookable slots of store
func (bs *BookingService) Slots(ctx context.Context) ([]models.DaySlots, error) {
	return bs.backend.Slots(ctx, bs.storeID)
}

// BookOnline books online queue ticket
func (bs *BookingService) BookOnline(ctx context.Context, ticket *models.Ticket) (*models.Ticket, error) {
	if err := ValidateName(ticket.CustomerName); err != nil {
		return nil, err
	}
	phone, err := NormalizePhone(ticket.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if err := ValidatePeople(ticket.NumberOfPeople); err != nil {
		return nil, err
	}

	req := *ticket
	req.PhoneNumber = phone
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.StoreID = bs.storeID
	if req.UserID == "" {
		req.UserID = bs.userID
	}

	return bs.backend.CreateOnlineTicket(ctx, &req)
}

// ReserveTable books table
func (bs *BookingService) ReserveTable(ctx context.Context, res *models.TableReservation) (*models.TableReservation, error) {
	if err := ValidateName(res.CustomerName); err != nil {
		return nil, err
	}
	phone, err := NormalizePhone(res.PhoneNumber)
	if err != nil {
		return nil, err
	}
	if err := ValidatePeople(res.NumberOfPeople); err != nil {
		return nil, err
	}
	if strings.TrimSpace(res.TimeSlot) == "" {
		return nil, &models.ValidationError{Field: "timeSlot", Reason: "is required"}
	}

	now := bs.now()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	if res.ReservationDate.IsZero() || res.ReservationDate.Before(today) {
		return nil, &models.ValidationError{Field: "reservationDate", Reason: "must not be in the past"}
	}

	req := *res
	req.PhoneNumber = phone
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.StoreID = bs.storeID
	if req.UserID == "" {
		req.UserID = bs.userID
	}

	return bs.backend.AddTableReservation(ctx, &req)
}

// UserTickets returns tickets of user in store, token user if userID is empty
func (bs *BookingService) UserTickets(ctx context.Context, userID string) ([]models.Ticket, error) {
	userID, err := bs.user(userID)
	if err != nil {
		return nil, err
	}
	return bs.backend.UserTickets(ctx, userID, bs.storeID)
}

// UserTables returns table reservations of user, token user if userID is empty
func (bs *BookingService) UserTables(ctx context.Context, userID string) ([]models.TableReservation, error) {
	userID, err := bs.user(userID)
	if err != nil {
		return nil, err
	}
	return bs.backend.UserTables(ctx, userID)
}

func (bs *BookingService) user(userID string) (string, error) {
	if userID != "" {
		return userID, nil
	}
	if bs.userID == "" {
		return "", &models.ValidationError{Field: "userId", Reason: "is required"}
	}
	return bs.userID, nil
}
