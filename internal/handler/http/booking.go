package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rookgm/storedesk/internal/models"
)

type BookingService interface {
	Slots(ctx context.Context) ([]models.DaySlots, error)
	BookOnline(ctx context.Context, ticket *models.Ticket) (*models.Ticket, error)
	ReserveTable(ctx context.Context, res *models.TableReservation) (*models.TableReservation, error)
	UserTickets(ctx context.Context, userID string) ([]models.Ticket, error)
	UserTables(ctx context.Context, userID string) ([]models.TableReservation, error)
}

// BookingHandler represents HTTP handler for booking-related requests
type BookingHandler struct {
	svc BookingService
}

// NewBookingHandler creates new BookingHandler instance
func NewBookingHandler(svc BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// Slots returns bookable time slots
func (bh *BookingHandler) Slots() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slots, err := bh.svc.Slots(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, slots)
	}
}

// BookOnline books online queue ticket
// 201 - билет создан;
// 400 - неверные данные клиента;
// 409, 502 - ошибка backend.
func (bh *BookingHandler) BookOnline() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ticket models.Ticket
		if err := decodeJSON(r, &ticket); err != nil {
			writeError(w, err)
			return
		}

		created, err := bh.svc.BookOnline(r.Context(), &ticket)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

// ReserveTable books table
// 201 - стол забронирован;
// 400 - неверные данные клиента;
// 409, 502 - ошибка backend.
func (bh *BookingHandler) ReserveTable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var res models.TableReservation
		if err := decodeJSON(r, &res); err != nil {
			writeError(w, err)
			return
		}

		created, err := bh.svc.ReserveTable(r.Context(), &res)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

// UserTickets returns tickets of user
func (bh *BookingHandler) UserTickets() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tickets, err := bh.svc.UserTickets(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			writeError(w, err)
			return
		}
		if tickets == nil {
			tickets = []models.Ticket{}
		}
		writeJSON(w, http.StatusOK, tickets)
	}
}

// UserTables returns table reservations of user
func (bh *BookingHandler) UserTables() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tables, err := bh.svc.UserTables(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			writeError(w, err)
			return
		}
		if tables == nil {
			tables = []models.TableReservation{}
		}
		writeJSON(w, http.StatusOK, tables)
	}
}
