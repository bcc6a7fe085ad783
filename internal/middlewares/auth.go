package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-messenger/internal/jwt"
	"github.com/sbilibin2017/gw-messenger/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// identityKey is an unexported type for the identity context key.
type identityKey struct{}

// UsernameFromContext returns the authenticated username set by
// AuthMiddleware, or "" if the request is unauthenticated.
func UsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(identityKey{}).(string)
	return username
}

// SetUsernameToContext stores the authenticated username in the context.
func SetUsernameToContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, identityKey{}, username)
}

// AuthMiddleware returns a middleware that resolves the request identity
// from its session token. On any failure it short-circuits with 401 and
// never invokes the downstream handler.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			ctx = SetUsernameToContext(ctx, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
}
