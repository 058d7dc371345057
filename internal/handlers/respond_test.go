package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"invalid amount", apperrors.ErrInvalidAmount, http.StatusBadRequest, apperrors.ErrInvalidAmount.Error()},
		{"insufficient balance", apperrors.ErrInsufficientBalance, http.StatusBadRequest, apperrors.ErrInsufficientBalance.Error()},
		{"self transfer", apperrors.ErrSelfTransfer, http.StatusBadRequest, apperrors.ErrSelfTransfer.Error()},
		{"creator not found", apperrors.ErrCreatorNotFound, http.StatusNotFound, apperrors.ErrCreatorNotFound.Error()},
		{"wrapped withdrawal not found", fmt.Errorf("approve: %w", apperrors.ErrWithdrawalNotFound), http.StatusNotFound, "approve: withdrawal request not found"},
		{"invalid state", apperrors.ErrInvalidState, http.StatusConflict, apperrors.ErrInvalidState.Error()},
		{"handle taken", apperrors.ErrHandleTaken, http.StatusConflict, apperrors.ErrHandleTaken.Error()},
		{
			"unverified payment wins over not found",
			fmt.Errorf("%w: %w", apperrors.ErrPaymentNotVerified, apperrors.ErrPaymentNotFound),
			http.StatusBadRequest,
			apperrors.ErrPaymentNotVerified.Error(),
		},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, apperrors.ErrInvalidCredentials.Error()},
		{"provider missing", apperrors.ErrProviderNotConfigured, http.StatusServiceUnavailable, apperrors.ErrProviderNotConfigured.Error()},
		{"persistence", apperrors.Persistence("transfer", errors.New("conn reset")), http.StatusInternalServerError, apperrors.ErrInternalServer.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			writeError(w, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			var body map[string]string
			decodeBody(t, w, &body)
			assert.Equal(t, tt.wantMsg, body["error"])
		})
	}
}
