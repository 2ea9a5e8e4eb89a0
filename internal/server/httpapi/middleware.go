package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/grafibook/automotora/internal/common"
	"github.com/grafibook/automotora/internal/server/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// claimsFromContext returns the session claims the auth middleware stored,
// or nil outside a guarded route.
func claimsFromContext(ctx context.Context) *auth.Claims {
	c, _ := ctx.Value(claimsKey).(*auth.Claims)
	return c
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start).String(),
		)
	})
}

// authMiddleware guards mutating routes. Every rejection is the same 401
// regardless of cause; what actually failed (missing header, bad signature,
// expiry) goes to the log only.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get(common.AuthorizationHeaderName)
		if !strings.HasPrefix(header, common.BearerPrefix) {
			s.logger.Warn(r.Context(), "request without bearer token", "path", r.URL.Path)
			s.writeError(w, r, common.ErrorUnauthorized)
			return
		}

		token := strings.TrimPrefix(header, common.BearerPrefix)

		claims, err := s.users.Authorize(r.Context(), token)
		if err != nil {
			s.logger.Warn(r.Context(), "token rejected", "path", r.URL.Path, "reason", err.Error())
			s.writeError(w, r, common.ErrorUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
