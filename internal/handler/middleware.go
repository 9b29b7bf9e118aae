package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"liebrero-server/internal/domain"

	"github.com/google/uuid"
)

// AuthMiddleware verifies the bearer credential on protected routes. The
// token is read from Authorization or x-access-token, with an optional
// case-insensitive "Bearer " prefix. The gate is stateless: a valid
// signature and expiry is all it takes.
func AuthMiddleware(authService domain.AuthService, logger domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")
			if token == "" {
				token = r.Header.Get("x-access-token")
			}
			if token == "" {
				writeError(w, http.StatusUnauthorized, "Token no proporcionado")
				return
			}

			if len(token) >= 7 && strings.EqualFold(token[:7], "Bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				writeError(w, http.StatusUnauthorized, "Token no proporcionado")
				return
			}

			claims, err := authService.VerifyToken(token)
			if err != nil {
				logger.Warn("token verification failed", "path", r.URL.Path)
				writeError(w, http.StatusUnauthorized, "Token inválido o expirado")
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			ctx = context.WithValue(ctx, tokenContextKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDMiddleware tags every request with a unique id, echoed back in
// the X-Request-ID header.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)
		ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// AccessLogMiddleware logs one line per request.
func AccessLogMiddleware(logger domain.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			requestID, _ := GetRequestIDFromContext(r)
			logger.Info("request handled",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start),
				"request_id", requestID,
			)
		})
	}
}
