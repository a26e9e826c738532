package updateBooking

import (
	"context"
	"encoding/json"
	"errors"
	"hotelBooking/internal/http-server/middleware/auth"
	"hotelBooking/internal/lib/api/response"
	"hotelBooking/internal/lib/apperr"
	"hotelBooking/internal/lib/logger/sl"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BookingRequest struct {
	RoomID int `json:"roomId" validate:"required,gt=0"`
}

type BookingResponse struct {
	response.Response
	BookingID int `json:"bookingId"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingUpdater
type BookingUpdater interface {
	UpdateBooking(ctx context.Context, userID, roomID, bookingID int) (int, error)
}

func New(log *slog.Logger, booking BookingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

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

		var req BookingRequest

		// An empty body is left to validation: it has no room id. A roomId
		// of the wrong JSON type answers like any other invalid room id.
		err := render.DecodeJSON(r.Body, &req)

		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr) && typeErr.Field == "roomId":
			log.Error("invalid room id type", sl.Err(err))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("field RoomID must be a positive integer"))
			return
		case err != nil && !errors.Is(err, io.EOF):
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
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		bookingID, err := strconv.Atoi(chi.URLParam(r, "bookingId"))
		if err != nil || bookingID <= 0 {
			log.Error("invalid booking id", slog.String("booking_id", chi.URLParam(r, "bookingId")))
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("invalid booking id"))
			return
		}

		log = log.With(slog.Int("booking_id", bookingID))

		bookingID, err = booking.UpdateBooking(r.Context(), userID, req.RoomID, bookingID)
		if err != nil {
			log.Error("failed to update booking", sl.Err(err))

			switch apperr.KindOf(err) {
			case apperr.KindNotFound:
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(err.Error()))
			case apperr.KindUnauthorized:
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error(err.Error()))
			default:
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("failed to update booking"))
			}
			return
		}

		log.Info("booking updated", slog.Int("room_id", req.RoomID))

		responseOK(w, r, bookingID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookingID int) {
	render.JSON(w, r, BookingResponse{
		Response:  response.OK(),
		BookingID: bookingID,
	})
}
