package getHotelRooms

import (
	"context"
	"hotelBooking/internal/http-server/middleware/auth"
	"hotelBooking/internal/lib/api/response"
	"hotelBooking/internal/lib/apperr"
	"hotelBooking/internal/lib/logger/sl"
	"hotelBooking/internal/models"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type HotelResponse struct {
	response.Response
	Hotel *models.Hotel `json:"hotel"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HotelGetter
type HotelGetter interface {
	HotelWithRooms(ctx context.Context, userID, hotelID int) (*models.Hotel, error)
}

func New(log *slog.Logger, hotels HotelGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.hotel.getHotelRooms.New"

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

		hotelIDStr := chi.URLParam(r, "hotelId")
		if hotelIDStr == "" {
			log.Error("hotel id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("hotel id is required"))
			return
		}

		hotelID, err := strconv.Atoi(hotelIDStr)
		if err != nil || hotelID <= 0 {
			log.Error("invalid hotel id format", slog.String("hotel_id", hotelIDStr))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid hotel id format"))
			return
		}

		log = log.With(slog.Int("user_id", userID), slog.Int("hotel_id", hotelID))

		hotel, err := hotels.HotelWithRooms(r.Context(), userID, hotelID)
		if err != nil {
			log.Error("failed to get hotel rooms", sl.Err(err))

			switch apperr.KindOf(err) {
			case apperr.KindNotFound:
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
			case apperr.KindUnauthorized:
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get hotel rooms"))
			}
			return
		}

		log.Info("hotel rooms successfully received", slog.Int("rooms", len(hotel.Rooms)))

		responseOK(w, r, hotel)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, hotel *models.Hotel) {
	render.JSON(w, r, HotelResponse{
		Response: response.OK(),
		Hotel:    hotel,
	})
}
