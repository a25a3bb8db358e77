// Package main is the entrypoint for the Sanad API server.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sanadhub/sanad/internal/auth"
	"github.com/sanadhub/sanad/internal/authz"
	"github.com/sanadhub/sanad/internal/config"
	"github.com/sanadhub/sanad/internal/handler"
	"github.com/sanadhub/sanad/internal/kvstore"
	"github.com/sanadhub/sanad/internal/metrics"
	"github.com/sanadhub/sanad/internal/middleware"
	"github.com/sanadhub/sanad/internal/seed"
	"github.com/sanadhub/sanad/internal/server"
	"github.com/sanadhub/sanad/internal/store"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize storage adapter
	storage, err := kvstore.Open(ctx, kvstore.Options{
		Driver:      kvstore.Driver(cfg.StorageDriver),
		DataDir:     cfg.DataDir,
		RedisURL:    cfg.RedisURL,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		logger.Error("failed to open storage", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	logger.Info("storage ready", "driver", cfg.StorageDriver)

	// Initialize domain state
	recorder := metrics.NewInMemory()
	st := store.New(storage, logger, recorder)
	st.Hydrate(ctx)

	if cfg.SeedOnStartup {
		if err := seed.Apply(ctx, st, logger); err != nil {
			logger.Error("failed to seed data", "error", err)
			os.Exit(1)
		}
	}

	// Initialize auth
	authenticator := auth.New(st, storage, logger, recorder)
	authenticator.Restore(ctx)

	// Setup router
	r := setupRouter(st, storage, authenticator, recorder, cfg, logger)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)
	srv.OnShutdown("storage", func(ctx context.Context) error {
		return storage.Close()
	})

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"storage_driver", cfg.StorageDriver,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
// Entity routes are gated by the declared route table: the path key names
// the dashboard page the API route backs.
func setupRouter(
	st *store.Store,
	storage kvstore.Store,
	authenticator *auth.Authenticator,
	recorder *metrics.InMemoryRecorder,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	secCfg := middleware.DefaultSecurityConfig()
	secCfg.IsDevelopment = cfg.IsDevelopment()
	secCfg.MaxRequestBodySize = cfg.MaxRequestBodySize
	r.Use(middleware.Security(secCfg))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	// Handlers
	healthHandler := handler.NewHealthHandler(storage)
	metricsHandler := handler.NewMetricsHandler(recorder)
	authHandler := handler.NewAuthHandler(authenticator, logger)
	beneficiaryHandler := handler.NewBeneficiaryHandler(st, logger)
	assistanceHandler := handler.NewAssistanceHandler(st, logger)
	organizationHandler := handler.NewOrganizationHandler(st, logger)
	projectHandler := handler.NewProjectHandler(st, logger)
	aidFileHandler := handler.NewAidFileHandler(st, logger)
	branchHandler := handler.NewBranchHandler(st, logger)
	userHandler := handler.NewUserHandler(st, logger)
	statsHandler := handler.NewStatsHandler(st)
	exportHandler := handler.NewExportHandler(st, logger, recorder)

	// Probes and metrics (no auth required)
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	r.Get("/metrics", metricsHandler.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		// Login is the only unauthenticated API route
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(authenticator, logger))

			r.Post("/auth/logout", authHandler.Logout)
			r.Get("/auth/me", authHandler.Me)

			r.Route("/beneficiaries", func(r chi.Router) {
				r.Use(middleware.RequireRoute("/beneficiaries"))
				r.Get("/", beneficiaryHandler.List)
				r.Post("/", beneficiaryHandler.Create)
				r.Get("/{id}", beneficiaryHandler.Get)
				r.Patch("/{id}", beneficiaryHandler.Update)
				r.Delete("/{id}", beneficiaryHandler.Delete)
				r.Get("/{id}/assistances", beneficiaryHandler.Assistances)
			})

			r.Route("/assistances", func(r chi.Router) {
				r.Use(middleware.RequireRoute("/assistances"))
				r.Get("/", assistanceHandler.List)
				r.Post("/", assistanceHandler.Create)
				r.Get("/{id}", assistanceHandler.Get)
				r.Patch("/{id}", assistanceHandler.Update)
				r.Delete("/{id}", assistanceHandler.Delete)
			})

			r.Route("/organizations", func(r chi.Router) {
				r.Use(middleware.RequireRoute("/organizations"))
				r.Get("/", organizationHandler.List)
				r.Post("/", organizationHandler.Create)
				r.Get("/{id}", organizationHandler.Get)
				r.Patch("/{id}", organizationHandler.Update)
				r.Delete("/{id}", organizationHandler.Delete)
				r.Get("/{id}/projects", organizationHandler.Projects)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Use(middleware.RequireRoute("/projects"))
				r.Get("/", projectHandler.List)
				r.Post("/", projectHandler.Create)
				r.Get("/{id}", projectHandler.Get)
				r.Patch("/{id}", projectHandler.Update)
				r.Delete("/{id}", projectHandler.Delete)
			})

			r.Route("/aid-files", func(r chi.Router) {
				r.Use(middleware.RequireRoute("/aid-files"))
				r.Get("/", aidFileHandler.List)
				r.Post("/", aidFileHandler.Create)
				r.Get("/{id}", aidFileHandler.Get)
				r.Patch("/{id}", aidFileHandler.Update)
				r.Delete("/{id}", aidFileHandler.Delete)
			})

			r.Route("/branches", func(r chi.Router) {
				r.Use(middleware.RequireRoute("/branches"))
				r.Get("/", branchHandler.List)
				r.Post("/", branchHandler.Create)
				r.Get("/{id}", branchHandler.Get)
				r.Patch("/{id}", branchHandler.Update)
				r.Delete("/{id}", branchHandler.Delete)
				r.Get("/{id}/users", branchHandler.Users)
			})

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireRoute("/users"))
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
				r.Get("/{id}", userHandler.Get)
				r.Patch("/{id}", userHandler.Update)
				r.Delete("/{id}", userHandler.Delete)
			})

			// Dashboard aggregates: open to every authenticated role
			r.Route("/stats", func(r chi.Router) {
				r.Use(middleware.RequireRoute("/dashboard"))
				r.Get("/summary", statsHandler.Summary)
				r.Get("/assistances/by-status", statsHandler.ByStatus)
				r.Get("/assistances/by-type", statsHandler.ByType)
				r.Get("/assistances/monthly", statsHandler.Monthly)
			})

			r.With(middleware.RequireRoles(authz.Reviewers...)).
				Get("/export/{entity}.xlsx", exportHandler.Export)
		})
	})

	// 404 and 405 handlers
	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	return r
}
