package login

import (
	"errors"
	"log/slog"
	"net/http"

	"turfbooker/internal/lib/api/response"
	"turfbooker/internal/lib/logger/sl"
	"turfbooker/internal/models"
	"turfbooker/internal/session"
	"turfbooker/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	response.Response
	Username string `json:"username,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	UserByUsername(username string) (*models.User, error)
}

func New(log *slog.Logger, userProvider UserProvider, sessions *session.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.login.New"

		log = log.With(slog.String("op", op))

		var req LoginRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("username", req.Username))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		user, err := userProvider.UserByUsername(req.Username)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				log.Info("unknown username", slog.String("username", req.Username))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid username or password"))
				return
			}

			log.Error("failed to get user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		if err = bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(req.Password)); err != nil {
			log.Info("password mismatch", slog.String("username", req.Username))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid username or password"))
			return
		}

		sid := sessions.Create(user.ID)
		sessions.SetCookie(w, sid)

		log.Info("user logged in", slog.Int64("user_id", user.ID))

		render.JSON(w, r, LoginResponse{
			Response: response.OK(),
			Username: user.Username,
		})
	}
}
