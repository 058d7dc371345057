package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/a2sh3r/bono/internal/hash"
	"github.com/a2sh3r/bono/internal/logger"
	"go.uber.org/zap"
)

const (
	SignatureHeader = "X-Payment-Signature"

	maxSignedBody = 1 << 20
)

// NewHashMiddleware checks the HMAC-SHA256 signature of the request body
// against SignatureHeader. With an empty key every request passes.
func NewHashMiddleware(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(io.LimitReader(r.Body, maxSignedBody))
			if err != nil {
				jsonError(w, "failed to read body", http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if err := hash.VerifyHash(string(body), key, r.Header.Get(SignatureHeader)); err != nil {
				logger.Log.Warn("rejected request with bad signature",
					zap.String("path", r.URL.Path),
					zap.String("remote_addr", r.RemoteAddr))
				jsonError(w, "invalid payload signature", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
