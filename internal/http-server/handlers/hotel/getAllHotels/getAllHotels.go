package getAllHotels

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

type HotelsResponse struct {
	response.Response
	Hotels []models.Hotel `json:"hotels"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HotelsGetter
type HotelsGetter interface {
	Hotels(ctx context.Context, userID int) ([]models.Hotel, error)
}

func New(log *slog.Logger, hotels HotelsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.hotel.getAllHotels.New"

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

		list, err := hotels.Hotels(r.Context(), userID)
		if err != nil {
			log.Error("failed to get hotels", sl.Err(err), slog.Int("user_id", userID))

			switch apperr.KindOf(err) {
			case apperr.KindNotFound:
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
			case apperr.KindUnauthorized:
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get hotels"))
			}
			return
		}

		if list == nil {
			list = []models.Hotel{}
		}

		log.Info("hotels successfully received", slog.Int("count", len(list)))

		responseOK(w, r, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, hotels []models.Hotel) {
	render.JSON(w, r, HotelsResponse{
		Response: response.OK(),
		Hotels:   hotels,
	})
}
