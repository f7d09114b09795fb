package delivery

import (
	"net/http"
	"strings"

	"github.com/Vovarama1992/moore_demo/internal/ports"
)

// AuthMiddleware закрывает админские ручки (правила текста, история)
func AuthMiddleware(auth ports.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				writeMessage(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			valid, err := auth.ValidateToken(r.Context(), token)
			if err != nil || !valid {
				writeMessage(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
