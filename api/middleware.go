package api

import (
	"context"
	"net/http"
	"os"
	"strings"

	"log/slog"

	"github.com/gorilla/mux"

	"github.com/garnizeh/portfolio/internal/auth"
	"github.com/garnizeh/portfolio/internal/config"
)

type ctxKey string

// CtxIdentity holds the authenticated admin identity (auth.Claims) for
// protected routes.
const CtxIdentity ctxKey = "identity"

// package-level logger used by middleware and helpers; can be set via SetLogger from caller
var logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// SetLogger installs a logger for the api package. Passing nil is a no-op.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l
	}
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote", r.RemoteAddr),
		)
		next.ServeHTTP(w, r)
	})
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic", slog.Any("err", err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// AdminAuthMiddleware guards write routes. A missing or invalid bearer
// token is 401. A token that verifies but names anyone other than the
// configured administrator, or carries the wrong role, is 403; the caller
// proved an identity, just not the one allowed in.
func AdminAuthMiddleware(cfg *config.Config) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const scheme = "bearer "

			header := r.Header.Get("Authorization")
			if len(header) < len(scheme) || !strings.EqualFold(header[:len(scheme)], scheme) {
				http.Error(w, "Not authenticated", http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimSpace(header[len(scheme):])
			if tokenStr == "" {
				http.Error(w, "Not authenticated", http.StatusUnauthorized)
				return
			}

			claims, err := auth.ValidateToken(cfg.JWTSecret, tokenStr)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			if claims.Email != cfg.AdminEmail || claims.Role != auth.RoleAdmin {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), CtxIdentity, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
