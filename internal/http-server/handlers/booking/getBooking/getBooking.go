package getBooking

import (
	"context"
	"hotelBooking/internal/http-server/middleware/auth"
	"hotelBooking/internal/lib/api/response"
	"hotelBooking/internal/lib/apperr"
	"hotelBooking/internal/lib/logger/sl"
	"hotelBooking/internal/models"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// BookingResponse flattens the booking next to the status field.
type BookingResponse struct {
	response.Response
	*models.Booking
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingGetter
type BookingGetter interface {
	Booking(ctx context.Context, userID int) (*models.Booking, error)
}

func New(log *slog.Logger, getter BookingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBooking.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		userID, ok := auth.UserID(r.Context())
		if !ok {
			log.Error("user id is missing from context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		log = log.With(slog.Int("user_id", userID))

		booking, err := getter.Booking(r.Context(), userID)
		if err != nil {
			log.Error("failed to get booking", sl.Err(err))

			switch apperr.KindOf(err) {
			case apperr.KindNotFound:
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
			case apperr.KindUnauthorized:
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get booking"))
			}
			return
		}

		log.Info("booking successfully received", slog.Int("booking_id", booking.ID))

		responseOK(w, r, booking)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking *models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
