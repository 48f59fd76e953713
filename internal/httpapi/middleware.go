// Package httpapi is the loopback HTTP control surface for govietd: a
// settings UI or tray app talks to this instead of D-Bus when it wants
// JSON request/response semantics (shortcut CRUD, config mutators,
// buffer introspection, health checks). It carries the same engine
// operations as the D-Bus object in cmd/govietd/main.go, just over a
// different transport, grounded in the request-scoped middleware chain
// the pack's vietnamese-converter API server uses.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

type ctxKey int

const requestIDKey ctxKey = 0

// RequestID stamps every request with a UUID, echoed back in the
// X-Request-Id header and threaded through the logger so a settings-UI
// bug report can be correlated with a specific daemon log line.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RequestLogger logs each request's method, path, status, and duration
// at Info level once the handler returns.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			log.Info("http request",
				"request_id", requestIDFrom(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration", time.Since(start),
			)
		})
	}
}

// Recoverer turns a handler panic into a 500 instead of taking the whole
// daemon down; the keystroke path in internal/engine never panics, but a
// malformed shortcut-CRUD request body reaching a handler should not be
// able to kill the process the keyboard hook depends on.
func Recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic recovered", "request_id", requestIDFrom(r.Context()),
						"panic", rec, "stack", string(debug.Stack()))
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"internal error"}`))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimit caps config-mutating requests per second. The engine's own
// concurrency model (spec §5) only guards process_key against setter
// calls racing on the same goroutine-free state; a settings UI that gets
// into a retry loop over this HTTP surface should not be able to starve
// that same lock, so mutating endpoints sit behind a token bucket.
func RateLimit(perSecond int) func(http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(perSecond), perSecond)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":"rate limit exceeded"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
