package getSlots

import (
	"log/slog"
	"net/http"
	"time"

	"turfbooker/internal/lib/api/response"
	"turfbooker/internal/lib/logger/sl"
	"turfbooker/internal/models"
	"turfbooker/internal/slots"

	"github.com/go-chi/render"
)

const dateLayout = "2006-01-02"

type SlotsResponse struct {
	response.Response
	Date  string            `json:"date"`
	Slots []models.TimeSlot `json:"slots"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookedSlotsProvider
type BookedSlotsProvider interface {
	BookedSlots(date string) (map[slots.Interval]struct{}, error)
}

func New(log *slog.Logger, slotsProvider BookedSlotsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getSlots.New"

		log = log.With(slog.String("op", op))

		date := r.URL.Query().Get("date")
		if date == "" {
			date = time.Now().Format(dateLayout)
		} else if _, err := time.Parse(dateLayout, date); err != nil {
			log.Error("invalid date format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid date format"))
			return
		}

		log = log.With(slog.String("date", date))

		booked, err := slotsProvider.BookedSlots(date)
		if err != nil {
			log.Error("failed to get booked slots", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get slots"))
			return
		}

		slotList := slots.Generate(booked)

		log.Info("slots retrieved successfully", slog.Int("booked", len(booked)))

		responseOK(w, r, date, slotList)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, date string, slotList []models.TimeSlot) {
	render.JSON(w, r, SlotsResponse{
		Response: response.OK(),
		Date:     date,
		Slots:    slotList,
	})
}
