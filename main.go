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

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"salonpro-web/apiclient"
	"salonpro-web/booking"
	"salonpro-web/config"
	"salonpro-web/controllers"
	"salonpro-web/routes"
	"salonpro-web/services"
	"salonpro-web/templates"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)
	gin.SetMode(cfg.GinMode)

	api, err := apiclient.New(apiclient.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
		Logger:  logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("api client")
	}
	sealer, err := services.NewTokenSealer(cfg.SessionSecret)
	if err != nil {
		logger.Fatal().Err(err).Msg("token sealer")
	}
	store, closeStore, err := openStore(cfg, sealer)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.SessionDriver).Msg("session store")
	}
	defer closeStore()

	auth := services.NewAuthService(api)
	catalog := services.NewCatalogService(api)
	slots := services.NewSlotService(api)
	appointments := services.NewAppointmentService(api)
	sessions := services.NewSessionManager(store, auth, logger, services.SessionConfig{
		TTL:             cfg.SessionTTL,
		RevalidateAfter: cfg.SessionRevalidateAfter,
	})
	toasts := services.NewToasts()
	workspaces := booking.NewRegistry()

	sweeper := services.NewSweeperService(store, logger, cfg.SessionTTL, toasts, workspaces)
	if err := sweeper.StartScheduler(cfg.SweepSchedule); err != nil {
		logger.Fatal().Err(err).Msg("sweeper")
	}

	ctl := controllers.New(controllers.Deps{
		Sessions:     sessions,
		Auth:         auth,
		Catalog:      catalog,
		Slots:        slots,
		Appointments: appointments,
		Users:        services.NewUserService(api),
		Reviews:      services.NewReviewService(api),
		Reports:      services.NewReportService(api),
		Toasts:       toasts,
		Workspaces:   workspaces,
		Booker:       booking.NewBooker(catalog, slots, appointments, logger),
		Planner:      booking.NewPlanner(slots, logger),
		Logger:       logger,
	})

	tmpl, err := templates.Load(time.Now)
	if err != nil {
		logger.Fatal().Err(err).Msg("templates")
	}
	r := routes.SetupRouter(ctl, cfg, logger, tmpl)
	if cfg.GinMode == gin.DebugMode {
		printRoutes(r, logger)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.APITimeout + 15*time.Second,
		IdleTimeout:       2 * time.Minute,
	}
	go func() {
		logger.Info().Str("port", cfg.Port).Str("api", cfg.APIBaseURL).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	<-sweeper.Stop().Done()
	logger.Info().Msg("server stopped")
}

// openStore picks the session store for the configured driver.
func openStore(cfg *config.Config, sealer *services.TokenSealer) (services.SessionStore, func(), error) {
	switch cfg.SessionDriver {
	case config.DriverPostgres, config.DriverSQLite:
		db, err := config.ConnectDB(cfg)
		if err != nil {
			return nil, nil, err
		}
		store := services.NewGormSessionStore(db, sealer)
		if err := store.Migrate(); err != nil {
			return nil, nil, fmt.Errorf("migrate sessions: %w", err)
		}
		return store, func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}, nil
	case config.DriverRedis:
		client := config.ConnectRedis(cfg)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		return services.NewRedisSessionStore(client, sealer), func() { client.Close() }, nil
	default:
		return services.NewMemorySessionStore(sealer), func() {}, nil
	}
}

func printRoutes(r *gin.Engine, logger zerolog.Logger) {
	for _, route := range r.Routes() {
		logger.Debug().Msgf("%-6s %s", route.Method, route.Path)
	}
}
