package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "eventsync/internal/delivery/http/helpers"
	"eventsync/internal/domain"
)

type contextKey string

const claimsKey contextKey = "claims"

// TokenHeader is the primary header carrying the auth token.
const TokenHeader = "x-auth-token"

// SetClaims returns a context carrying the verified token claims. Used by auth middleware.
func SetClaims(ctx context.Context, claims *domain.TokenClaims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the authenticated caller's claims from the context, if present.
func ClaimsFromContext(ctx context.Context) (*domain.TokenClaims, bool) {
	c, ok := ctx.Value(claimsKey).(*domain.TokenClaims)
	return c, ok && c != nil
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	c, ok := ClaimsFromContext(ctx)
	if !ok || c.UserID == "" {
		return "", false
	}
	return c.UserID, true
}

// tokenFromRequest reads x-auth-token, falling back to an Authorization Bearer header.
func tokenFromRequest(r *http.Request) string {
	if t := strings.TrimSpace(r.Header.Get(TokenHeader)); t != "" {
		return t
	}
	const prefix = "Bearer "
	auth := r.Header.Get("Authorization")
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}
	return ""
}

// RequireAuth returns a wrapper that validates the token and sets its claims in the request context.
// If the token is missing or invalid, it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "No token, authorization denied")
				return
			}
			claims, err := verifier.Verify(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "Token is not valid")
				return
			}
			r = r.WithContext(SetClaims(r.Context(), claims))
			next(w, r)
		}
	}
}

// RequireRole wraps RequireAuth and additionally rejects callers whose role differs with 403.
func RequireRole(verifier domain.TokenVerifier, logger *slog.Logger, role string) func(http.HandlerFunc) http.HandlerFunc {
	auth := RequireAuth(verifier, logger)
	return func(next http.HandlerFunc) http.HandlerFunc {
		return auth(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok || claims.Role != role {
				h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "Access denied, "+role+" only")
				return
			}
			next(w, r)
		})
	}
}
