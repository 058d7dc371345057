package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/a2sh3r/bono/internal/middleware"
	service_mocks "github.com/a2sh3r/bono/internal/mocks/service_mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_AdminLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOperatorService := service_mocks.NewMockOperatorService(ctrl)
	h := &Handler{operatorService: mockOperatorService, secretKey: "test"}

	t.Run("token issued", func(t *testing.T) {
		mockOperatorService.EXPECT().Authenticate(gomock.Any(), "admin1", "pass").Return(nil)

		w := httptest.NewRecorder()
		h.AdminLogin(w, newJSONRequest(http.MethodPost, "/api/admin/login", `{"login":"admin1","password":"pass"}`))

		require.Equal(t, http.StatusOK, w.Code)
		var got tokenResponse
		decodeBody(t, w, &got)
		require.NotEmpty(t, got.Token)
		assert.Equal(t, "Bearer "+got.Token, w.Header().Get("Authorization"))

		// the issued token must pass the admin guard and carry the login as operator id
		var operatorID string
		guarded := middleware.AdminMiddleware("test")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			operatorID, _ = middleware.GetOperatorID(r.Context())
		}))
		req := httptest.NewRequest(http.MethodGet, "/api/admin/withdrawals/pending", nil)
		req.Header.Set("Authorization", "Bearer "+got.Token)
		guarded.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, "admin1", operatorID)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockOperatorService.EXPECT().Authenticate(gomock.Any(), "admin1", "nope").Return(apperrors.ErrInvalidCredentials)

		w := httptest.NewRecorder()
		h.AdminLogin(w, newJSONRequest(http.MethodPost, "/api/admin/login", `{"login":"admin1","password":"nope"}`))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
