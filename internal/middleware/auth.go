package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/haulledger/backend/internal/auth"
	"github.com/haulledger/backend/internal/handler"
)

// TokenVerifier turns a bearer token into the caller's user ID.
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// publicPaths are served without a token.
var publicPaths = map[string]bool{
	"/healthz":      true,
	"/openapi.yaml": true,
}

// NewAuthHandler returns a middleware that authenticates every request except
// those on publicPaths. The token comes from the Authorization header or,
// because browsers cannot set headers on a websocket upgrade, from the
// access_token query parameter. The user ID is stored with auth.WithUserID.
func NewAuthHandler(v TokenVerifier, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				handler.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
				return
			}
			userID, err := v.Verify(token)
			if err != nil {
				msg := "invalid token"
				if errors.Is(err, auth.ErrExpiredToken) {
					msg = "token expired"
				}
				log.DebugContext(r.Context(), "rejected token", "path", r.URL.Path, "error", err)
				handler.WriteError(w, http.StatusUnauthorized, "unauthorized", msg)
				return
			}

			if info, ok := r.Context().Value(requestInfoKey{}).(*requestInfo); ok {
				info.userID = userID
			}
			next.ServeHTTP(w, r.WithContext(auth.WithUserID(r.Context(), userID)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	if h := r.Header.Get("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", false
		}
		t := strings.TrimSpace(parts[1])
		return t, t != ""
	}
	if t := r.URL.Query().Get("access_token"); t != "" {
		return t, true
	}
	return "", false
}
