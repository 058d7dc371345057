package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/a2sh3r/bono/internal/logger"
	"go.uber.org/zap"
)

var gzipWriters = sync.Pool{
	New: func() any { return gzip.NewWriter(io.Discard) },
}

type gzipResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w gzipResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

// NewGzipMiddleware inflates gzip request bodies and compresses responses for
// clients that accept it.
func NewGzipMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Content-Encoding") == "gzip" {
				gz, err := gzip.NewReader(r.Body)
				if err != nil {
					jsonError(w, "invalid gzip body", http.StatusBadRequest)
					return
				}

				defer func() {
					if err := gz.Close(); err != nil {
						logger.Log.Error("failed to close gzip reader", zap.Error(err))
					}
				}()

				r.Body = io.NopCloser(gz)
				r.Header.Del("Content-Encoding")
			}

			if acceptsGzip(r) {
				w.Header().Set("Content-Encoding", "gzip")
				w.Header().Add("Vary", "Accept-Encoding")
				w.Header().Del("Content-Length")

				gz := gzipWriters.Get().(*gzip.Writer)
				gz.Reset(w)

				defer func() {
					if err := gz.Close(); err != nil {
						logger.Log.Error("failed to close gzip writer", zap.Error(err))
					}
					gzipWriters.Put(gz)
				}()

				w = gzipResponseWriter{Writer: gz, ResponseWriter: w}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func acceptsGzip(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept-Encoding"), "gzip")
}
