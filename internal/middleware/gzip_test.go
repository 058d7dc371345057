package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		_, _ = w.Write(b)
	})
}

func TestGzipMiddleware_CompressesResponse(t *testing.T) {
	h := NewGzipMiddleware()(echoHandler())

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("hello"))
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	gz, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	out, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(out))
}

func TestGzipMiddleware_InflatesRequest(t *testing.T) {
	h := NewGzipMiddleware()(echoHandler())

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, _ = gz.Write([]byte("compressed body"))
	require.NoError(t, gz.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "compressed body", rec.Body.String())
}

func TestGzipMiddleware_InvalidBody(t *testing.T) {
	h := NewGzipMiddleware()(echoHandler())

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
