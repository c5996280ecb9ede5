package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rookgm/storedesk/internal/logger"
	"github.com/rookgm/storedesk/internal/models"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes v with status code
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Debug("encode response", zap.Error(err))
	}
}

// writeError maps service error to status code
// 400 - client-side validation failed;
// 404 - order, table or pending transition not found;
// 410 - pending transition expired;
// 422 - transition not allowed or OTP missing/wrong;
// 409 - backend rejected request, 404 if backend did not find it;
// 429 - backend throttles requests;
// 502 - backend unreachable or failed.
func writeError(w http.ResponseWriter, err error) {
	var (
		apiErr  *models.APIError
		tooMany models.TooManyRequestsError
	)

	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, models.ErrValidation):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, models.ErrTransitionExpired):
		status, msg = http.StatusGone, err.Error()
	case errors.Is(err, models.ErrTransitionNotAllowed),
		errors.Is(err, models.ErrUnknownStatus),
		errors.Is(err, models.ErrOTPRequired),
		errors.Is(err, models.ErrOTPMismatch):
		status, msg = http.StatusUnprocessableEntity, err.Error()
	case errors.As(err, &tooMany):
		w.Header().Set("Retry-After", strconv.Itoa(int(tooMany.RetryAfter.Seconds())))
		status, msg = http.StatusTooManyRequests, err.Error()
	case errors.Is(err, models.ErrNetwork), errors.Is(err, models.ErrServerFault):
		status, msg = http.StatusBadGateway, err.Error()
	case errors.Is(err, models.ErrTransitionNotFound), errors.Is(err, models.ErrDataNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.As(err, &apiErr):
		status, msg = http.StatusConflict, err.Error()
	}

	if status >= http.StatusInternalServerError {
		logger.Log.Error("request failed", zap.Int("status", status), zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &models.ValidationError{Field: "body", Reason: "malformed JSON"}
	}
	return nil
}
