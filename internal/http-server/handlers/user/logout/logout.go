package logout

import (
	"log/slog"
	"net/http"

	"turfbooker/internal/lib/api/response"
	"turfbooker/internal/session"

	"github.com/go-chi/render"
)

type LogoutResponse struct {
	response.Response
}

func New(log *slog.Logger, sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.logout.New"

		log = log.With(slog.String("op", op))

		if cookie, err := r.Cookie(session.CookieName); err == nil {
			sessions.Delete(cookie.Value)
		}

		sessions.ClearCookie(w)

		log.Info("user logged out")

		render.JSON(w, r, LogoutResponse{
			Response: response.OK(),
		})
	}
}
