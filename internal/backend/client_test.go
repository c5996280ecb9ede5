package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rookgm/storedesk/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api", "secret-token", 2*time.Second)
}

func TestClient_OrdersByStatus(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "bare_array",
			body: `[{"id":"o1","orderId":"ORD-1","status":"PENDING","paymentMethod":"COD","paymentStatus":"pending","totalAmount":120.5}]`,
		},
		{
			name: "orders_envelope",
			body: `{"orders":[{"id":"o1","orderId":"ORD-1","status":"pending","paymentMethod":"cod","paymentStatus":"Pending","totalAmount":"120.50"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/orders/store/s1/status", r.URL.Path)
				assert.Equal(t, "pending", r.URL.Query().Get("status"))
				assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = io.WriteString(w, tt.body)
			})

			orders, err := c.OrdersByStatus(context.Background(), "s1", models.OrderStatusPending)
			require.NoError(t, err)
			require.Len(t, orders, 1)
			assert.Equal(t, models.OrderStatusPending, orders[0].Status)
			assert.Equal(t, models.PaymentMethodCOD, orders[0].PaymentMethod)
			assert.Equal(t, models.PaymentStatusPending, orders[0].PaymentStatus)
			assert.True(t, decimal.RequireFromString("120.5").Equal(orders[0].TotalAmount))
		})
	}
}

func TestClient_OrdersByDate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/store/s1", r.URL.Path)
		assert.Equal(t, "2026-10-15", r.URL.Query().Get("date"))
		_, _ = io.WriteString(w, `[]`)
	})

	orders, err := c.OrdersByDate(context.Background(), "s1", time.Date(2026, 10, 15, 18, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestClient_UpdateOrderStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/orders/status/o1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"status": "delivered"}, body)
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, c.UpdateOrderStatus(context.Background(), "o1", models.OrderStatusDelivered))
}

func TestClient_UpdatePaymentStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/orders/payment/o1", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"paymentStatus": "completed"}, body)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, c.UpdatePaymentStatus(context.Background(), "o1", models.PaymentStatusCompleted))
}

func TestClient_NotifyReady(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders/o1/notify-ready", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, c.NotifyReady(context.Background(), "o1"))
	assert.True(t, called)
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		retryAfter string
		wantIs     []error
		wantMsg    string
	}{
		{
			name:    "rejected_400",
			status:  http.StatusBadRequest,
			body:    `{"message":"invalid status"}`,
			wantIs:  []error{models.ErrRejected},
			wantMsg: "invalid status",
		},
		{
			name:   "not_found_404",
			status: http.StatusNotFound,
			body:   `{"error":"order not found"}`,
			wantIs: []error{models.ErrRejected, models.ErrDataNotFound},
		},
		{
			name:   "server_fault_500",
			status: http.StatusInternalServerError,
			body:   `oops`,
			wantIs: []error{models.ErrServerFault},
		},
		{
			name:       "too_many_requests",
			status:     http.StatusTooManyRequests,
			retryAfter: "7",
			wantIs:     []error{models.ErrRejected},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if tt.retryAfter != "" {
					w.Header().Set("Retry-After", tt.retryAfter)
				}
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			err := c.UpdateOrderStatus(context.Background(), "o1", models.OrderStatusCancelled)
			require.Error(t, err)
			for _, target := range tt.wantIs {
				assert.ErrorIs(t, err, target)
			}

			var apiErr *models.APIError
			if errors.As(err, &apiErr) {
				assert.Equal(t, tt.status, apiErr.StatusCode)
				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, apiErr.Message)
				}
			}

			var tooMany models.TooManyRequestsError
			if errors.As(err, &tooMany) {
				assert.Equal(t, 7*time.Second, tooMany.RetryAfter)
			}
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, "", time.Second)
	_, err := c.OrdersByStatus(context.Background(), "s1", models.OrderStatusPending)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNetwork)
}

func TestClient_Timeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c := NewClient(srv.URL, "", 50*time.Millisecond)
	err := c.NotifyReady(context.Background(), "o1")

	var netErr *models.NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.True(t, netErr.Timeout())
}

func TestClient_CurrentServing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/booking/current/s1", r.URL.Path)
		_, _ = io.WriteString(w, `{"online":{"currentTicket":12,"nextTicketNumber":15},"walkIn":{"currentTicket":null,"nextTicketNumber":1}}`)
	})

	snap, err := c.CurrentServing(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, snap.Online.CurrentTicket)
	assert.Equal(t, 12, *snap.Online.CurrentTicket)
	assert.Equal(t, 15, snap.Online.NextTicketNumber)
	assert.Nil(t, snap.WalkIn.CurrentTicket)
	assert.False(t, snap.FetchedAt.IsZero())
}

func TestClient_Booking(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/booking/slots/s1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"day":"Monday","slots":["10:00-11:00","11:00-12:00"]}]`)
	})
	mux.HandleFunc("/api/booking/online", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var in models.Ticket
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.TicketNumber = 42
		in.Status = models.TicketStatusPending
		_ = json.NewEncoder(w).Encode(in)
	})
	mux.HandleFunc("/api/booking/table/add", func(w http.ResponseWriter, r *http.Request) {
		var in models.TableReservation
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = "r1"
		in.Status = "pending"
		_ = json.NewEncoder(w).Encode(in)
	})
	mux.HandleFunc("/api/booking/tickets/u1/s1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"ticketNumber":3,"status":"confirmed","storeId":"s1","userId":"u1","numberOfPeople":2}]`)
	})
	mux.HandleFunc("/api/booking/table/u1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":"r1","storeId":"s1","userId":"u1","timeSlot":"19:00","numberOfPeople":4,"reservationDate":"2026-10-20T00:00:00Z"}]`)
	})
	c := newTestClient(t, mux.ServeHTTP)
	ctx := context.Background()

	slots, err := c.Slots(ctx, "s1")
	require.NoError(t, err)
	if diff := cmp.Diff([]models.DaySlots{{Day: "Monday", Slots: []string{"10:00-11:00", "11:00-12:00"}}}, slots); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	ticket, err := c.CreateOnlineTicket(ctx, &models.Ticket{StoreID: "s1", UserID: "u1", NumberOfPeople: 2})
	require.NoError(t, err)
	assert.Equal(t, 42, ticket.TicketNumber)

	res, err := c.AddTableReservation(ctx, &models.TableReservation{StoreID: "s1", UserID: "u1", TimeSlot: "19:00", NumberOfPeople: 4})
	require.NoError(t, err)
	assert.Equal(t, "r1", res.ID)

	tickets, err := c.UserTickets(ctx, "u1", "s1")
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, 3, tickets[0].TicketNumber)

	tables, err := c.UserTables(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tables, 1)
	assert.Equal(t, 4, tables[0].NumberOfPeople)
}
