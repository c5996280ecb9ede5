package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rookgm/storedesk/internal/handler/http/mocks"
	"github.com/rookgm/storedesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingHandler_BookOnline(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(t *testing.T) *mocks.MockBookingService
		wantStatusCode int
	}{
		{
			name: "valid_request_return_201",
			body: `{"customerName":"Asha","phoneNumber":"9876543210","numberOfPeople":2}`,
			setup: func(t *testing.T) *mocks.MockBookingService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockBookingService(ctrl)
				svcMock.EXPECT().BookOnline(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, ticket *models.Ticket) (*models.Ticket, error) {
						assert.Equal(t, "Asha", ticket.CustomerName)
						out := *ticket
						out.TicketNumber = 14
						return &out, nil
					})
				return svcMock
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name: "invalid_phone_return_400",
			body: `{"customerName":"Asha","phoneNumber":"12","numberOfPeople":2}`,
			setup: func(t *testing.T) *mocks.MockBookingService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockBookingService(ctrl)
				svcMock.EXPECT().BookOnline(gomock.Any(), gomock.Any()).
					Return(nil, &models.ValidationError{Field: "phoneNumber", Reason: "must be a 10 digit number"})
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name: "backend_rejected_return_409",
			body: `{"customerName":"Asha","phoneNumber":"9876543210","numberOfPeople":2}`,
			setup: func(t *testing.T) *mocks.MockBookingService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockBookingService(ctrl)
				svcMock.EXPECT().BookOnline(gomock.Any(), gomock.Any()).
					Return(nil, &models.APIError{StatusCode: http.StatusBadRequest, Message: "queue closed"})
				return svcMock
			},
			wantStatusCode: http.StatusConflict,
		},
		{
			name: "throttled_return_429",
			body: `{"customerName":"Asha","phoneNumber":"9876543210","numberOfPeople":2}`,
			setup: func(t *testing.T) *mocks.MockBookingService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockBookingService(ctrl)
				svcMock.EXPECT().BookOnline(gomock.Any(), gomock.Any()).
					Return(nil, models.NewTooManyRequestsError(30 * time.Second))
				return svcMock
			},
			wantStatusCode: http.StatusTooManyRequests,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/booking/online", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler := NewBookingHandler(tt.setup(t))
			h := handler.BookOnline()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)

			switch tt.wantStatusCode {
			case http.StatusCreated:
				var got models.Ticket
				require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
				assert.Equal(t, 14, got.TicketNumber)
			case http.StatusTooManyRequests:
				assert.Equal(t, "30", res.Header.Get("Retry-After"))
			}
		})
	}
}

func TestBookingHandler_ReserveTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	svcMock := mocks.NewMockBookingService(ctrl)
	svcMock.EXPECT().ReserveTable(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, res *models.TableReservation) (*models.TableReservation, error) {
			assert.Equal(t, "19:00-20:00", res.TimeSlot)
			assert.Equal(t, 2026, res.ReservationDate.Year())
			out := *res
			out.ID = "r1"
			return &out, nil
		})

	body := `{"customerName":"Ravi","phoneNumber":"9876543210","numberOfPeople":4,` +
		`"timeSlot":"19:00-20:00","reservationDate":"2026-10-20T00:00:00Z"}`

	w := httptest.NewRecorder()
	NewBookingHandler(svcMock).ReserveTable()(w, httptest.NewRequest(http.MethodPost, "/api/booking/table", strings.NewReader(body)))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	NewBookingHandler(svcMock).ReserveTable()(w, httptest.NewRequest(http.MethodPost, "/api/booking/table", strings.NewReader("nope")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_Lookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	svcMock := mocks.NewMockBookingService(ctrl)
	svcMock.EXPECT().Slots(gomock.Any()).Return([]models.DaySlots{{Day: "Friday", Slots: []string{"19:00-20:00"}}}, nil)
	svcMock.EXPECT().UserTickets(gomock.Any(), "u1").Return(nil, nil)
	svcMock.EXPECT().UserTables(gomock.Any(), "u1").Return(nil, models.ErrValidation)

	bh := NewBookingHandler(svcMock)

	w := httptest.NewRecorder()
	bh.Slots()(w, httptest.NewRequest(http.MethodGet, "/api/booking/slots", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	bh.UserTickets()(w, withURLParam(httptest.NewRequest(http.MethodGet, "/api/booking/tickets/u1", nil), "userID", "u1"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = httptest.NewRecorder()
	bh.UserTables()(w, withURLParam(httptest.NewRequest(http.MethodGet, "/api/booking/tables/u1", nil), "userID", "u1"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
