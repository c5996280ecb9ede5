package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rookgm/storedesk/internal/models"
)

type OrderService interface {
	// ListOrders returns cached orders, all if status is empty
	ListOrders(status models.OrderStatus) []models.Order
	// DailyOrders returns backend orders of date
	DailyOrders(ctx context.Context, date time.Time) ([]models.Order, error)
	// Actions returns actions available for order
	Actions(orderID string) ([]models.Action, error)
	// RequestTransition starts two-step status change
	RequestTransition(ctx context.Context, orderID string, to models.OrderStatus) (*models.PendingTransition, error)
	// ConfirmTransition performs requested status change
	ConfirmTransition(ctx context.Context, id uuid.UUID, otp string) (*models.Order, error)
	// CancelTransition discards requested status change
	CancelTransition(id uuid.UUID) error
	// NotifyReady notifies customer order is ready
	NotifyReady(ctx context.Context, orderID string) error
	// Events returns journal of order
	Events(ctx context.Context, orderID string) ([]models.Event, error)
}

// OrderHandler represents HTTP handler for order-related requests
type OrderHandler struct {
	svc OrderService
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// ListOrders returns cached store orders
// 200 - успешная обработка запроса.
func (oh *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders := oh.svc.ListOrders(models.OrderStatus(r.URL.Query().Get("status")))
		if orders == nil {
			orders = []models.Order{}
		}
		writeJSON(w, http.StatusOK, orders)
	}
}

// DailyOrders returns orders placed on date, today if date is not set
// 200 - успешная обработка запроса;
// 400 - неверный формат даты.
func (oh *OrderHandler) DailyOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := time.Now()
		if v := r.URL.Query().Get("date"); v != "" {
			d, err := time.ParseInLocation(time.DateOnly, v, time.Local)
			if err != nil {
				writeError(w, &models.ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"})
				return
			}
			date = d
		}

		orders, err := oh.svc.DailyOrders(r.Context(), date)
		if err != nil {
			writeError(w, err)
			return
		}
		if orders == nil {
			orders = []models.Order{}
		}
		writeJSON(w, http.StatusOK, orders)
	}
}

// Actions returns actions operator may take on order
// 200 - успешная обработка запроса;
// 404 - заказ не найден.
func (oh *OrderHandler) Actions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actions, err := oh.svc.Actions(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, actions)
	}
}

type transitionRequest struct {
	Status string `json:"status"`
}

// RequestTransition asks to move order to status, operator must confirm
// 201 - запрос на переход создан;
// 400 - неверный формат запроса;
// 404 - заказ не найден;
// 422 - переход запрещён.
func (oh *OrderHandler) RequestTransition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req transitionRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}
		if req.Status == "" {
			writeError(w, &models.ValidationError{Field: "status", Reason: "is required"})
			return
		}

		pt, err := oh.svc.RequestTransition(r.Context(), chi.URLParam(r, "id"), models.OrderStatus(req.Status))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, pt)
	}
}

type confirmRequest struct {
	OTP string `json:"otp"`
}

// ConfirmTransition performs requested transition
// 200 - заказ обновлён;
// 400 - неверный формат запроса;
// 404 - запрос на переход не найден;
// 410 - запрос на переход истёк;
// 422 - неверный OTP;
// 409, 502 - ошибка backend.
func (oh *OrderHandler) ConfirmTransition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, &models.ValidationError{Field: "id", Reason: "must be UUID"})
			return
		}

		var req confirmRequest
		if r.ContentLength != 0 {
			if err := decodeJSON(r, &req); err != nil {
				writeError(w, err)
				return
			}
		}

		order, err := oh.svc.ConfirmTransition(r.Context(), id, req.OTP)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, order)
	}
}

// CancelTransition discards requested transition
// 204 - запрос отменён;
// 404 - запрос на переход не найден.
func (oh *OrderHandler) CancelTransition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, &models.ValidationError{Field: "id", Reason: "must be UUID"})
			return
		}

		if err := oh.svc.CancelTransition(id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NotifyReady sends "ready for pickup" notification
// 202 - уведомление отправлено.
func (oh *OrderHandler) NotifyReady() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := oh.svc.NotifyReady(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}
}

// Events returns mutation journal of order
// 200 - успешная обработка запроса;
// 204 - нет данных для ответа.
func (oh *OrderHandler) Events() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := oh.svc.Events(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		if len(events) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, events)
	}
}
