package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/rookgm/storedesk/internal/middleware"
	"go.uber.org/zap"
)

// Handlers groups console handlers
type Handlers struct {
	Orders     *OrderHandler
	Settlement *SettlementHandler
	Queue      *QueueHandler
	Alert      *AlertHandler
	Booking    *BookingHandler
}

// NewRouter creates console router
func NewRouter(log *zap.Logger, passwordHash string, h Handlers) chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.Logging(log))
	router.Use(middleware.Auth(passwordHash))

	router.Route("/api/orders", func(r chi.Router) {
		r.Get("/", h.Orders.ListOrders())
		r.Get("/daily", h.Orders.DailyOrders())
		r.Get("/{id}/actions", h.Orders.Actions())
		r.Post("/{id}/transitions", h.Orders.RequestTransition())
		r.Post("/{id}/notify-ready", h.Orders.NotifyReady())
		r.Get("/{id}/events", h.Orders.Events())
	})
	router.Post("/api/transitions/{id}/confirm", h.Orders.ConfirmTransition())
	router.Delete("/api/transitions/{id}", h.Orders.CancelTransition())

	router.Get("/api/settlement/cod", h.Settlement.CODGroups())
	router.Post("/api/settlement/cod/paid", h.Settlement.MarkPaid())

	router.Get("/api/queue", h.Queue.Queue())
	router.Post("/api/queue/refresh", h.Queue.Refresh())

	router.Get("/api/alert", h.Alert.Status())
	router.Post("/api/alert/dismiss", h.Alert.Dismiss())

	router.Route("/api/booking", func(r chi.Router) {
		r.Get("/slots", h.Booking.Slots())
		r.Post("/online", h.Booking.BookOnline())
		r.Post("/table", h.Booking.ReserveTable())
		r.Get("/tickets/{userID}", h.Booking.UserTickets())
		r.Get("/tables/{userID}", h.Booking.UserTables())
	})

	return router
}
