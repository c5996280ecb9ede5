package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/rookgm/storedesk/internal/handler/http/mocks"
	"github.com/rookgm/storedesk/internal/models"
	"github.com/rookgm/storedesk/internal/settlement"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestSettlementHandler_CODGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	svcMock := mocks.NewMockSettlementService(ctrl)
	svcMock.EXPECT().CODGroups().Return([]*settlement.Group{
		{Key: "Table 5", TotalAmount: decimal.RequireFromString("350.50")},
	})

	w := httptest.NewRecorder()
	NewSettlementHandler(svcMock).CODGroups()(w, httptest.NewRequest(http.MethodGet, "/api/settlement/cod", nil))

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var got []map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "Table 5", got[0]["table"])
	assert.Equal(t, "350.5", got[0]["totalAmount"])
}

func TestSettlementHandler_MarkPaid(t *testing.T) {
	failure := errors.New("offline")
	tests := []struct {
		name           string
		body           string
		setup          func(t *testing.T) *mocks.MockSettlementService
		wantStatusCode int
		wantBody       *settleResponse
	}{
		{
			name: "all_settled_return_200",
			body: `{"table":"Table 5"}`,
			setup: func(t *testing.T) *mocks.MockSettlementService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockSettlementService(ctrl)
				svcMock.EXPECT().SettleTable(gomock.Any(), "Table 5").Return(&settlement.Result{
					Outcomes: []settlement.Outcome{{OrderID: "1"}, {OrderID: "2"}},
				}, nil)
				return svcMock
			},
			wantStatusCode: http.StatusOK,
			wantBody:       &settleResponse{Settled: []string{"1", "2"}, Failed: []string{}},
		},
		{
			name: "partial_return_207",
			body: `{"table":"Table 5"}`,
			setup: func(t *testing.T) *mocks.MockSettlementService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockSettlementService(ctrl)
				svcMock.EXPECT().SettleTable(gomock.Any(), "Table 5").Return(&settlement.Result{
					Outcomes: []settlement.Outcome{{OrderID: "1"}, {OrderID: "2", Err: failure}},
					Err:      multierr.Append(nil, failure),
				}, nil)
				return svcMock
			},
			wantStatusCode: http.StatusMultiStatus,
			wantBody:       &settleResponse{Settled: []string{"1"}, Failed: []string{"2"}, Error: "offline"},
		},
		{
			name: "all_failed_return_502",
			body: `{"table":"Table 5"}`,
			setup: func(t *testing.T) *mocks.MockSettlementService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockSettlementService(ctrl)
				svcMock.EXPECT().SettleTable(gomock.Any(), "Table 5").Return(&settlement.Result{
					Outcomes: []settlement.Outcome{{OrderID: "1", Err: failure}},
					Err:      failure,
				}, nil)
				return svcMock
			},
			wantStatusCode: http.StatusBadGateway,
		},
		{
			name: "unknown_table_return_404",
			body: `{"table":"Table 9"}`,
			setup: func(t *testing.T) *mocks.MockSettlementService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockSettlementService(ctrl)
				svcMock.EXPECT().SettleTable(gomock.Any(), "Table 9").Return(nil, models.ErrDataNotFound)
				return svcMock
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "empty_table_return_400",
			body: `{"table":" "}`,
			setup: func(t *testing.T) *mocks.MockSettlementService {
				ctrl := gomock.NewController(t)

				svcMock := mocks.NewMockSettlementService(ctrl)
				svcMock.EXPECT().SettleTable(gomock.Any(), gomock.Any()).Times(0)
				return svcMock
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/settlement/cod/paid", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler := NewSettlementHandler(tt.setup(t))
			h := handler.MarkPaid()
			h(w, req)

			res := w.Result()
			defer res.Body.Close()
			assert.Equal(t, tt.wantStatusCode, res.StatusCode)

			if tt.wantBody != nil {
				var got settleResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
				if diff := cmp.Diff(*tt.wantBody, got); diff != "" {
					t.Errorf("mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}
