package main

import (
	"context"
	"errors"
	"fmt"
	"hotelBooking/internal/config"
	"hotelBooking/internal/http-server/handlers/booking/createBooking"
	"hotelBooking/internal/http-server/handlers/booking/getBooking"
	"hotelBooking/internal/http-server/handlers/booking/updateBooking"
	"hotelBooking/internal/http-server/handlers/hotel/getAllHotels"
	"hotelBooking/internal/http-server/handlers/hotel/getHotelRooms"
	"hotelBooking/internal/http-server/middleware/auth"
	"hotelBooking/internal/http-server/middleware/mwlogger"
	"hotelBooking/internal/lib/logger/handlers/slogpretty"
	"hotelBooking/internal/lib/logger/sl"
	"hotelBooking/internal/services/booking"
	"hotelBooking/internal/services/eligibility"
	"hotelBooking/internal/services/hotel"
	"hotelBooking/internal/storage/postgres"
	"hotelBooking/internal/storage/sqlite"
	"hotelBooking/internal/storage/sqlstore"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting hotel booking", slog.String("env", cfg.Env), slog.String("storage", cfg.Storage.Driver))
	log.Debug("Debug messages are enabled")

	store, err := openStorage(context.Background(), &cfg.Storage)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	checker := eligibility.New(store, store)
	bookings := booking.New(log, checker, store)
	hotels := hotel.New(checker, store)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Group(func(r chi.Router) {
		r.Use(auth.New(log, store))

		r.Get("/booking", getBooking.New(log, bookings))
		r.Post("/booking", createBooking.New(log, bookings))
		r.Put("/booking/{bookingId}", updateBooking.New(log, bookings))

		r.Get("/hotels", getAllHotels.New(log, hotels))
		r.Get("/hotels/{hotelId}", getHotelRooms.New(log, hotels))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = store.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func openStorage(ctx context.Context, cfg *config.Storage) (*sqlstore.Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.InitDB(ctx, &cfg.Database)
	case config.DriverSQLite:
		return sqlite.Open(ctx, cfg.SQLite.Path)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
