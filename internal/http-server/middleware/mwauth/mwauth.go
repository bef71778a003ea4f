package mwauth

import (
	"context"
	"net/http"

	"turfbooker/internal/lib/api/response"
	"turfbooker/internal/session"

	"github.com/go-chi/render"
)

type ctxKey struct{}

// New rejects requests without a valid session cookie before they
// reach booking handlers and injects the user ID into the request
// context otherwise.
func New(sessions *session.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			userID, ok := sessions.UserID(cookie.Value)
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		}

		return http.HandlerFunc(fn)
	}
}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

func UserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(ctxKey{}).(int64)

	return userID, ok
}
