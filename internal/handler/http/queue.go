package handler

import (
	"context"
	"net/http"

	"github.com/rookgm/storedesk/internal/alert"
	"github.com/rookgm/storedesk/internal/queue"
)

type QueueDisplay interface {
	// Render returns view of last fetched snapshot
	Render() queue.View
	// Refresh fetches snapshot from backend
	Refresh(ctx context.Context) error
}

type AlertControl interface {
	// Dismiss silences current alert
	Dismiss()
	// State returns alert state
	State() alert.State
	// Pending returns last observed pending count
	Pending() int
}

// QueueHandler represents HTTP handler for queue display
type QueueHandler struct {
	display QueueDisplay
}

// NewQueueHandler creates new QueueHandler instance
func NewQueueHandler(display QueueDisplay) *QueueHandler {
	return &QueueHandler{display: display}
}

// Queue returns rendered queue display
func (qh *QueueHandler) Queue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, qh.display.Render())
	}
}

// Refresh refreshes queue display now
// 200 - успешная обработка запроса;
// 502 - backend недоступен, возвращается прежнее состояние.
func (qh *QueueHandler) Refresh() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := qh.display.Refresh(r.Context()); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, qh.display.Render())
	}
}

// AlertHandler represents HTTP handler for new order alert
type AlertHandler struct {
	alert AlertControl
}

// NewAlertHandler creates new AlertHandler instance
func NewAlertHandler(alert AlertControl) *AlertHandler {
	return &AlertHandler{alert: alert}
}

type alertResponse struct {
	State   string `json:"state"`
	Pending int    `json:"pending"`
}

// Status returns alert state
func (ah *AlertHandler) Status() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, alertResponse{
			State:   ah.alert.State().String(),
			Pending: ah.alert.Pending(),
		})
	}
}

// Dismiss silences alert, repeated calls are no-op
func (ah *AlertHandler) Dismiss() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ah.alert.Dismiss()
		w.WriteHeader(http.StatusNoContent)
	}
}
