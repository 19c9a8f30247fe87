package middleware

import (
	"net/http"
	"strings"

	"github.com/BerrybeansTech/shopo-ecom-client-sub001/pkg/utils"
)

// Bearer requires an Authorization bearer token and stashes it in the request
// context for relaying to the account store. The token is not validated here:
// the upstream is the authority, and a 401-class answer from it is the
// session-invalidation signal.
func Bearer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == "" || token == authHeader {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			ctx := utils.SetTokenContext(r.Context(), token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
