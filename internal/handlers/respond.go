package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/a2sh3r/bono/internal/logger"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

var validate = validator.New()

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", zap.Error(err))
	}
}

func writeErrorMessage(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// decodeJSON reads a JSON body into dst and runs its validate tags.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := dec.Decode(dst); err != nil {
		return apperrors.ErrInvalidRequest
	}
	if err := validate.Struct(dst); err != nil {
		return apperrors.ErrInvalidRequest
	}
	return nil
}

// writeError maps service errors to HTTP statuses. A payment that failed
// verification also wraps ErrPaymentNotFound, so it is matched first.
// Anything unrecognized is logged and reported as a 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var code int
	switch {
	case errors.Is(err, apperrors.ErrPaymentNotVerified),
		errors.Is(err, apperrors.ErrInvalidRequest),
		errors.Is(err, apperrors.ErrInvalidAmount),
		errors.Is(err, apperrors.ErrMissingBankAccount),
		errors.Is(err, apperrors.ErrSelfTransfer),
		errors.Is(err, apperrors.ErrInsufficientBalance):
		code = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrCreatorNotFound),
		errors.Is(err, apperrors.ErrWithdrawalNotFound),
		errors.Is(err, apperrors.ErrPaymentNotFound):
		code = http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidState),
		errors.Is(err, apperrors.ErrCreatorExists),
		errors.Is(err, apperrors.ErrHandleTaken):
		code = http.StatusConflict
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrInvalidAuthHeader),
		errors.Is(err, apperrors.ErrInvalidSignature):
		code = http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrProviderNotConfigured):
		code = http.StatusServiceUnavailable
	default:
		logger.Log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		writeErrorMessage(w, apperrors.ErrInternalServer.Error(), http.StatusInternalServerError)
		return
	}

	msg := err.Error()
	if errors.Is(err, apperrors.ErrPaymentNotVerified) {
		msg = apperrors.ErrPaymentNotVerified.Error()
	}
	writeErrorMessage(w, msg, code)
}

func queryID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ErrInvalidRequest
	}
	return id, nil
}

// queryLimit returns 0 when the parameter is absent, leaving the default to
// the repository.
func queryLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, apperrors.ErrInvalidRequest
	}
	return limit, nil
}
