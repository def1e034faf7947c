package middleware

import (
	"context"
	"net/http"
	"strings"

	"notesapp/pkg/logger"
	"notesapp/pkg/response"
)

type contextKey string

const UserIDKey contextKey = "userID"

// TokenVerifier resolves a token to the user id it was issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthMiddleware rejects requests without a valid "Authorization: Bearer"
// token and stores the verified user id in the request context.
func AuthMiddleware(tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				response.Fail(w, http.StatusUnauthorized, "Unauthorized: No token provided")
				return
			}

			userID, err := tokens.Verify(tokenString)
			if err != nil {
				logger.Sugar.Debugf("Invalid token on %s %s: %v", r.Method, r.URL.Path, err)
				response.Fail(w, http.StatusUnauthorized, "Unauthorized: Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, tokenString, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	tokenString = strings.TrimSpace(tokenString)
	return tokenString, tokenString != ""
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// UserIDFromContext returns the id stored by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}
