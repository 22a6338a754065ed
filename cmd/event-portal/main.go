package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventPortal/internal/config"
	"eventPortal/internal/http-server/handlers/auth/login"
	"eventPortal/internal/http-server/handlers/auth/logout"
	"eventPortal/internal/http-server/handlers/auth/me"
	"eventPortal/internal/http-server/handlers/auth/register"
	"eventPortal/internal/http-server/handlers/booking/createBooking"
	"eventPortal/internal/http-server/handlers/booking/getBooking"
	"eventPortal/internal/http-server/handlers/booking/myBookings"
	"eventPortal/internal/http-server/handlers/event/createEvent"
	"eventPortal/internal/http-server/handlers/event/deleteEvent"
	"eventPortal/internal/http-server/handlers/event/getEvent"
	"eventPortal/internal/http-server/handlers/event/listEvents"
	"eventPortal/internal/http-server/handlers/event/manageEvents"
	"eventPortal/internal/http-server/handlers/event/publishEvent"
	"eventPortal/internal/http-server/handlers/event/reserveSeats"
	"eventPortal/internal/http-server/handlers/event/updateEvent"
	"eventPortal/internal/http-server/handlers/ticket/bookingTickets"
	"eventPortal/internal/http-server/handlers/ticket/myTickets"
	"eventPortal/internal/http-server/handlers/ticket/ticketCode"
	"eventPortal/internal/http-server/handlers/user/updateRole"
	"eventPortal/internal/http-server/middleware/mwauth"
	"eventPortal/internal/http-server/middleware/mwlogger"
	"eventPortal/internal/http-server/middleware/mwrawpath"
	"eventPortal/internal/http-server/view"
	"eventPortal/internal/lib/api/request"
	"eventPortal/internal/lib/logger/handlers/slogpretty"
	"eventPortal/internal/lib/logger/sl"
	"eventPortal/internal/lib/timestamp"
	"eventPortal/internal/portal"
	"eventPortal/internal/session"
	"eventPortal/internal/session/storage/file"
	"eventPortal/internal/session/storage/postgres"
	"eventPortal/internal/session/storage/redis"
	"eventPortal/internal/upstream"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const apiPrefix = "/api"

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting event portal", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	log.Info("upstream services",
		slog.String("users", cfg.Services.UserURL),
		slog.String("events", cfg.Services.EventURL),
		slog.String("bookings", cfg.Services.BookingURL),
		slog.String("tickets", cfg.Services.TicketingURL),
	)

	loc, err := cfg.Location()
	if err != nil {
		log.Error("failed to load display timezone", sl.Err(err))
		os.Exit(1)
	}

	storage, err := openStorage(context.Background(), cfg.Session)
	if err != nil {
		log.Error("failed to init session storage", slog.String("driver", cfg.Session.Driver), sl.Err(err))
		os.Exit(1)
	}

	sess, err := session.Open(context.Background(), log, storage)
	if err != nil {
		log.Error("failed to restore session", sl.Err(err))
		os.Exit(1)
	}

	client := request.New(log, &http.Client{Timeout: cfg.Upstream.Timeout})
	services := upstream.New(client, cfg.Services)

	catalog := portal.NewCatalog(log, services.Events, sess, loc)
	bookings := portal.NewBookings(log, services.Events, services.Bookings, services.Tickets, sess)
	auth := portal.NewAuth(log, services.Users, sess)

	views := view.New(timestamp.NewFormatter(loc))

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(mwrawpath.New)
	router.Use(middleware.URLFormat)

	router.Route(apiPrefix, func(r chi.Router) {
		r.Get("/events", listEvents.New(log, catalog, views))
		r.Get("/events/{id}", getEvent.New(log, catalog, views))

		r.Post("/auth/login", login.New(log, auth))
		r.Post("/auth/register", register.New(log, auth))
		r.Post("/auth/logout", logout.New(log, auth))

		// Booking answers a logged-out user from the booking form itself.
		r.Post("/events/{id}/bookings", createBooking.New(log, catalog, bookings, views))

		r.Group(func(r chi.Router) {
			r.Use(mwauth.RequireUser(sess))

			r.Get("/auth/me", me.New(log, auth))
			r.Delete("/events/{id}", deleteEvent.New(log, catalog))

			r.Get("/bookings/mine", myBookings.New(log, bookings, views))
			r.Get("/bookings/{id}", getBooking.New(log, bookings, views))

			r.Get("/bookings/{id}/tickets", bookingTickets.New(log, bookings, views, apiPrefix))
			r.Get("/tickets/mine", myTickets.New(log, bookings, views, apiPrefix))
			r.Get("/tickets/{number}/{kind}", ticketCode.New(log, bookings))
		})

		r.Group(func(r chi.Router) {
			r.Use(mwauth.RequireAdmin(sess))

			r.Post("/events", createEvent.New(log, catalog, views))
			r.Put("/events/{id}", updateEvent.New(log, catalog, views))
			r.Post("/events/{id}/publish", publishEvent.New(log, catalog, views))
			r.Post("/events/{id}/reserve", reserveSeats.New(log, catalog))
			r.Get("/manage/events", manageEvents.New(log, catalog, views))
			r.Put("/users/{id}/role", updateRole.New(log, auth))
		})
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
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = sess.Close(); err != nil {
		log.Error("failed to close session storage", sl.Err(err))
	}

	log.Info("session storage closed")
}

func openStorage(ctx context.Context, cfg config.Session) (session.Storage, error) {
	switch cfg.Driver {
	case config.SessionDriverFile:
		return file.New(cfg.Dir)
	case config.SessionDriverPostgres:
		return postgres.New(ctx, cfg.PostgresDSN)
	case config.SessionDriverRedis:
		return redis.New(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
	default:
		return nil, fmt.Errorf("unknown session driver %q", cfg.Driver)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog()
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
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
