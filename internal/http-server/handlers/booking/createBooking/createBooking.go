package createBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"turfbooker/internal/http-server/middleware/mwauth"
	"turfbooker/internal/lib/api/response"
	"turfbooker/internal/lib/logger/sl"
	"turfbooker/internal/slots"
	"turfbooker/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BookingRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type BookingResponse struct {
	response.Response
	ID int64 `json:"id,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingSaver
type BookingSaver interface {
	CreateBooking(userID int64, date, startTime, endTime string) (int64, error)
}

func New(log *slog.Logger, bookingSaver BookingSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			log.Error("no authenticated user in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		log = log.With(slog.Int64("user_id", userID))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		if !slots.OnGrid(req.StartTime, req.EndTime) {
			log.Error("requested interval is off the booking grid",
				slog.String("start_time", req.StartTime),
				slog.String("end_time", req.EndTime),
			)
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("time slot is not on the booking grid"))
			return
		}

		id, err := bookingSaver.CreateBooking(userID, req.Date, req.StartTime, req.EndTime)
		if err != nil {
			if errors.Is(err, storage.ErrSlotTaken) {
				log.Info("slot already booked",
					slog.String("date", req.Date),
					slog.String("start_time", req.StartTime),
				)
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("slot already booked"))
				return
			}

			log.Error("failed to create booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create booking"))
			return
		}

		log.Info("booking created", slog.Int64("id", id))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, BookingResponse{
			Response: response.OK(),
			ID:       id,
		})
	}
}
