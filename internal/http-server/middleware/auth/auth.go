// Package auth resolves bearer session tokens to user ids.
package auth

import (
	"context"
	"errors"
	"hotelBooking/internal/lib/api/response"
	"hotelBooking/internal/lib/logger/sl"
	"hotelBooking/internal/storage"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"
)

type ctxKey struct{}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionFinder
type SessionFinder interface {
	UserIDByToken(ctx context.Context, token string) (int, error)
}

// New rejects requests without a valid "Authorization: Bearer <token>"
// header and stores the session's user id in the request context.
func New(log *slog.Logger, sessions SessionFinder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				unauthorized(w, r)
				return
			}

			userID, err := sessions.UserIDByToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					unauthorized(w, r)
					return
				}

				log.Error("failed to resolve session", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to authenticate"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		}

		return http.HandlerFunc(fn)
	}
}

func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

func UserID(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(ctxKey{}).(int)
	return userID, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)

	return token, token != ""
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error("unauthorized"))
}
