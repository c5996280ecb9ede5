package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/rookgm/storedesk/internal/models"
	"github.com/rookgm/storedesk/internal/settlement"
)

type SettlementService interface {
	// CODGroups returns outstanding cash-on-delivery groups
	CODGroups() []*settlement.Group
	// SettleTable marks every order of table paid
	SettleTable(ctx context.Context, table string) (*settlement.Result, error)
}

// SettlementHandler represents HTTP handler for cash-on-delivery settlement
type SettlementHandler struct {
	svc SettlementService
}

// NewSettlementHandler creates new SettlementHandler instance
func NewSettlementHandler(svc SettlementService) *SettlementHandler {
	return &SettlementHandler{svc: svc}
}

// CODGroups returns unsettled orders grouped by table
// 200 - успешная обработка запроса.
func (sh *SettlementHandler) CODGroups() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, sh.svc.CODGroups())
	}
}

type settleRequest struct {
	Table string `json:"table"`
}

type settleResponse struct {
	Settled []string `json:"settled"`
	Failed  []string `json:"failed"`
	Error   string   `json:"error,omitempty"`
}

// MarkPaid marks every order of table paid
// 200 - все заказы оплачены;
// 207 - часть заказов не удалось обновить;
// 400 - неверный формат запроса;
// 404 - стол не найден;
// 502 - ни один заказ не удалось обновить.
func (sh *SettlementHandler) MarkPaid() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req settleRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}
		if strings.TrimSpace(req.Table) == "" {
			writeError(w, &models.ValidationError{Field: "table", Reason: "is required"})
			return
		}

		res, err := sh.svc.SettleTable(r.Context(), req.Table)
		if err != nil {
			writeError(w, err)
			return
		}

		resp := settleResponse{
			Settled: res.Settled(),
			Failed:  res.Failed(),
		}
		if resp.Settled == nil {
			resp.Settled = []string{}
		}
		if resp.Failed == nil {
			resp.Failed = []string{}
		}

		status := http.StatusOK
		if res.Err != nil {
			resp.Error = res.Err.Error()
			status = http.StatusMultiStatus
			if len(resp.Settled) == 0 {
				status = http.StatusBadGateway
			}
		}
		writeJSON(w, status, resp)
	}
}
