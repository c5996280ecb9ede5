package middleware

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

const consoleRealm = `Basic realm="storedesk"`

// Auth checks console basic auth password against bcrypt hash.
// Any user name is accepted. Empty hash disables the check.
func Auth(passwordHash string) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if passwordHash == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, password, ok := r.BasicAuth()
			if !ok || bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) != nil {
				w.Header().Set("WWW-Authenticate", consoleRealm)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
