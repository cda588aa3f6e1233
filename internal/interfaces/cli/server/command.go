package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"servicedesk/internal/application/servicerequest/usecases"
	"servicedesk/internal/domain/servicerequest"
	"servicedesk/internal/infrastructure/config"
	"servicedesk/internal/infrastructure/database"
	"servicedesk/internal/infrastructure/email"
	"servicedesk/internal/infrastructure/migration"
	"servicedesk/internal/infrastructure/objectstore"
	"servicedesk/internal/infrastructure/repository"
	"servicedesk/internal/infrastructure/repository/memory"
	httpRouter "servicedesk/internal/interfaces/http"
	"servicedesk/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the service desk HTTP server with the configured storage driver.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", true, "Run database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	ginMode := mapEnvToGinMode(env)

	cfg, err := config.Load(ginMode)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting server",
		"environment", env,
		"storage_driver", cfg.Storage.Driver)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	repo, cleanup, err := buildRepository(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	store, err := objectstore.NewLocalStore(cfg.Storage.ObjectsDir, cfg.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to initialize object store: %w", err)
	}

	var notifier usecases.StatusNotifier
	if cfg.Email.Enabled {
		notifier = email.NewSMTPNotifier(&cfg.Email)
		logger.Info("email notifications enabled", "smtp_host", cfg.Email.SMTPHost)
	} else {
		notifier = email.NewNoopNotifier()
	}

	router := httpRouter.NewRouter(repo, store, notifier, cfg, logger.NewLogger())
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

// buildRepository selects the storage driver at process start. The in-memory
// driver never touches the database configuration.
func buildRepository(cfg *config.Config) (servicerequest.Repository, func(), error) {
	if cfg.Storage.Driver == "memory" {
		logger.Info("using in-memory storage; data will not survive a restart")
		return memory.NewServiceRequestRepository(), func() {}, nil
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	cleanup := func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}

	if autoMigrate {
		manager := migration.NewManager(cfg.Server.Mode, cfg.Database.Driver)
		if err := manager.Migrate(database.Get()); err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	return repository.NewServiceRequestRepository(database.Get()), cleanup, nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
