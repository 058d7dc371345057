package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_Routes(t *testing.T) {
	handler := &Handler{}
	router := NewRouter(handler, RouterOptions{
		SecretKey:     "testsecret",
		WebhookSecret: "whsec",
		RateLimit:     100,
		RateBurst:     100,
	})

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/api/user", "", http.StatusBadRequest},
		{http.MethodGet, "/api/user/transactions?userId=abc", "", http.StatusBadRequest},
		{http.MethodPost, "/api/transfer", "{", http.StatusBadRequest},
		{http.MethodPost, "/api/purchase", `{"amount":"5"}`, http.StatusBadRequest},
		{http.MethodPost, "/api/payment/callback", `{"reference":"bono_1_x"}`, http.StatusUnauthorized},
		{http.MethodPost, "/api/admin/login", `{}`, http.StatusBadRequest},
		{http.MethodGet, "/api/admin/withdrawals/pending", "", http.StatusUnauthorized},
		{http.MethodPost, "/api/withdrawals/approve", `{"withdrawalId":1}`, http.StatusUnauthorized},
		{http.MethodPatch, "/api/creators/abc", `{}`, http.StatusBadRequest},
		{http.MethodDelete, "/api/transfer", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/notfound", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
