package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/memora/intake/internal/http/response"
)

// AdminOnlyMiddleware пропускает только пользователей с ролью admin или master.
// Остальным возвращается 403 Forbidden.
func AdminOnlyMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok || !user.IsAdmin() {
				log.Error("no permission for admin operation")
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("no permission"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
