package middleware

import (
	"net/http"

	"github.com/2beens/underthebar/pkg"

	log "github.com/sirupsen/logrus"
)

const authRealm = "underthebar settings"

// AuthMiddlewareHandler guards the settings server with basic auth, checked
// against a bcrypt password hash. An empty hash disables the check.
type AuthMiddlewareHandler struct {
	passwordHash string
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(passwordHash string, allowedPaths ...string) *AuthMiddlewareHandler {
	allowed := make(map[string]bool, len(allowedPaths))
	for _, p := range allowedPaths {
		allowed[p] = true
	}
	return &AuthMiddlewareHandler{
		passwordHash: passwordHash,
		allowedPaths: allowed,
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if h.passwordHash == "" || h.allowedPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			_, password, ok := r.BasicAuth()
			if !ok || !pkg.CheckPasswordHash(password, h.passwordHash) {
				log.Warnf("auth: unauthorized request [%s] %s", r.Method, r.URL.Path)
				w.Header().Set("WWW-Authenticate", `Basic realm="`+authRealm+`", charset="UTF-8"`)
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
