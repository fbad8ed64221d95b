package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const callerIDKey contextKey = "callerID"

// TokenVerifier validates a bearer token and returns the stable subject id.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// Authenticate resolves the request's bearer credential before any handler
// runs; a missing or invalid token short-circuits with 401 and no store
// access happens.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respondUnauthorized(w, "missing authorization header")
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				respondUnauthorized(w, "invalid authorization header format")
				return
			}

			callerID, err := verifier.Verify(parts[1])
			if err != nil {
				respondUnauthorized(w, "invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), callerIDKey, callerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerID returns the authenticated subject id stored by Authenticate.
func CallerID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(callerIDKey).(string)
	return id, ok && id != ""
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
