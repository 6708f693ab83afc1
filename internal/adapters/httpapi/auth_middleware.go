package httpapi

import (
	"net/http"
	"strings"
)

// newAuthMiddleware enforces Authorization: Bearer <token> and resolves the
// token to its account, which is stored in the request context.
func newAuthMiddleware(store *Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authz := r.Header.Get("Authorization")
			const prefix = "Bearer "
			if !strings.HasPrefix(authz, prefix) {
				writeJSON(w, http.StatusUnauthorized, envelope{Status: "error", Message: "Nicht angemeldet."})
				return
			}
			token := strings.TrimSpace(strings.TrimPrefix(authz, prefix))
			if token == "" {
				writeJSON(w, http.StatusUnauthorized, envelope{Status: "error", Message: "Nicht angemeldet."})
				return
			}
			account, err := store.Resolve(token)
			if err != nil {
				writeJSON(w, http.StatusUnauthorized, envelope{Status: "error", Message: "Nicht angemeldet."})
				return
			}
			next.ServeHTTP(w, r.WithContext(WithAccount(r.Context(), account)))
		})
	}
}
