package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/warp/cash-office/cashdrop"
)

const (
	HeaderUserID = "X-User-ID"
	HeaderAdmin  = "X-User-Admin"
)

type ctxKey int

const (
	actorKey ctxKey = iota
	loggerKey
)

// Identity reads the caller from request headers. Missing headers yield a
// zero Actor; the core rejects writes from it.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, _ := strconv.ParseBool(strings.TrimSpace(r.Header.Get(HeaderAdmin)))
		actor := cashdrop.Actor{
			UserID: strings.TrimSpace(r.Header.Get(HeaderUserID)),
			Admin:  admin,
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey, actor)))
	})
}

// ActorFrom returns the caller stored by Identity.
func ActorFrom(ctx context.Context) cashdrop.Actor {
	actor, _ := ctx.Value(actorKey).(cashdrop.Actor)
	return actor
}

// RequestLogging logs one line per request with the chi request id and
// stores a request-scoped logger in the context.
func RequestLogging(logger logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			entry := logger.WithFields(logrus.Fields{
				"request_id": middleware.GetReqID(r.Context()),
				"method":     r.Method,
				"path":       r.URL.Path,
			})
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(context.WithValue(r.Context(), loggerKey, entry)))

			entry = entry.WithFields(logrus.Fields{
				"status":   ww.Status(),
				"bytes":    ww.BytesWritten(),
				"duration": time.Since(start).String(),
				"user_id":  r.Header.Get(HeaderUserID),
			})
			if ww.Status() >= http.StatusInternalServerError {
				entry.Warn("request")
				return
			}
			entry.Info("request")
		})
	}
}

// RequestLogger returns the request-scoped logger, or fallback outside a
// request.
func RequestLogger(ctx context.Context, fallback logrus.FieldLogger) logrus.FieldLogger {
	if entry, ok := ctx.Value(loggerKey).(logrus.FieldLogger); ok {
		return entry
	}
	return fallback
}
