package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dimitrije/parking-control/internal/apidoc"
	"github.com/dimitrije/parking-control/internal/config"
	"github.com/dimitrije/parking-control/internal/database"
	"github.com/dimitrije/parking-control/internal/handlers"
	"github.com/dimitrije/parking-control/internal/logging"
	reqlog "github.com/dimitrije/parking-control/internal/middleware"
	"github.com/dimitrije/parking-control/internal/services"
	"github.com/dimitrije/parking-control/internal/sse"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	apiDoc, err := apidoc.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load API document")
	}

	hubCtx, stopHub := context.WithCancel(ctx)
	defer stopHub()

	eventHub := sse.NewHub()
	go eventHub.Run(hubCtx)

	parkingSpotService := services.NewParkingSpotService(db,
		services.WithValidateOnUpdate(cfg.ValidateOnUpdate),
		services.WithNotifier(eventHub),
	)

	parkingSpotHandler := handlers.NewParkingSpotHandler(parkingSpotService)
	eventsHandler := handlers.NewEventsHandler(eventHub)
	healthHandler := handlers.NewHealthHandler(db)
	docHandler := apidoc.NewHandler(apiDoc)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       3600,
	}))
	app.Use(middleware.BodyParser())

	app.Post("/parking-spot", parkingSpotHandler.Create)
	app.Get("/parking-spot", parkingSpotHandler.List)
	app.Get("/parking-spot/:id", parkingSpotHandler.Get)
	app.Put("/parking-spot/:id", parkingSpotHandler.Update)
	app.Delete("/parking-spot/:id", parkingSpotHandler.Delete)

	app.Get("/events", eventsHandler.Stream)
	app.Get("/health", healthHandler.Check)
	app.Get("/openapi.json", docHandler.Serve)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           reqlog.RequestLogger(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", server.Addr).
			Str("env", cfg.Env).
			Bool("validate_on_update", cfg.ValidateOnUpdate).
			Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Open event streams end when the hub stops.
	stopHub()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
