package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loja-sql/internal/api"
	"loja-sql/internal/config"
	"loja-sql/internal/domain/address"
	"loja-sql/internal/domain/customer"
	"loja-sql/internal/event"
	"loja-sql/internal/infrastructure/database/migrations"
	"loja-sql/internal/infrastructure/database/postgres"
	"loja-sql/internal/infrastructure/logging"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/spf13/viper"
)

type services struct {
	customers customer.CustomerService
	addresses address.Service
}

func main() {
	cfg, logger := initializeApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(ctx, cfg.Database, logger); err != nil {
		logger.Error("Failed to apply database migrations", "error", err)
		os.Exit(1)
	}

	dbPool := initializeDatabase(ctx, cfg, logger)
	defer closeDatabase(dbPool, logger)

	publisher, closePublisher, err := initializePublisher(cfg.RabbitMQ, logger)
	if err != nil {
		logger.Error("Failed to initialize event publisher", "error", err)
		os.Exit(1)
	}
	defer closePublisher()

	svcs := initializeServices(dbPool, publisher, logger)
	router := api.SetupRouter(ctx, svcs.customers, svcs.addresses, cfg, logger)

	srv, serverErrors, shutdownChan := startServer(cfg, router, logger)
	handleShutdown(srv, cancel, shutdownChan, serverErrors, logger)
}

func initializeApp() (*config.Config, *slog.Logger) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	cfg, err := config.LoadConfig(".")
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Logger)
	logger.Info("Application starting...", "config_source", viper.ConfigFileUsed())

	return cfg, logger
}

func runMigrations(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) error {
	if !cfg.AutoMigrate {
		logger.Info("Automatic migrations disabled")
		return nil
	}
	return migrations.Up(ctx, cfg.URL, logger)
}

func initializeDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) *pgxpool.Pool {
	logger.Info("Initializing database connection pool...")
	dbPool, err := postgres.NewConnectionPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("Failed to initialize database connection pool", "error", err)
		os.Exit(1)
	}
	return dbPool
}

func closeDatabase(dbPool *pgxpool.Pool, logger *slog.Logger) {
	logger.Info("Closing database connection pool...")
	dbPool.Close()
}

func initializePublisher(cfg config.RabbitMQConfig, logger *slog.Logger) (event.EventPublisher, func(), error) {
	if !cfg.Enabled {
		logger.Info("RabbitMQ disabled, domain events will be dropped")
		return event.NoopPublisher{}, func() {}, nil
	}

	conn, err := event.Dial(cfg)
	if err != nil {
		return nil, nil, err
	}
	publisher, err := event.NewRabbitMQEventPublisher(conn, cfg.ExchangeName, logger)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	return publisher, closeConnection(conn, logger), nil
}

func closeConnection(conn *amqp.Connection, logger *slog.Logger) func() {
	return func() {
		logger.Info("Closing RabbitMQ connection...")
		if err := conn.Close(); err != nil {
			logger.Warn("Failed to close RabbitMQ connection", "error", err)
		}
	}
}

func initializeServices(dbPool *pgxpool.Pool, publisher event.EventPublisher, logger *slog.Logger) services {
	logger.Info("Initializing application components...")
	customerRepo := postgres.NewCustomerRepository(dbPool, logger)
	addressRepo := postgres.NewAddressRepository(dbPool, logger)
	uow := postgres.NewUnitOfWork(dbPool, logger)

	return services{
		customers: customer.NewCustomerService(customerRepo, addressRepo, uow, publisher, logger),
		addresses: address.NewService(addressRepo, logger),
	}
}

func startServer(cfg *config.Config, router http.Handler, logger *slog.Logger) (*http.Server, <-chan error, <-chan os.Signal) {
	logger.Info("Setting up HTTP server...", "port", cfg.Server.Port)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info(fmt.Sprintf("Server listening on port %d", cfg.Server.Port))
		err := srv.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server error", "error", err)
			serverErrors <- err
		} else {
			logger.Info("Server closed gracefully.")
			serverErrors <- nil
		}
	}()
	return srv, serverErrors, shutdownChan
}

func handleShutdown(srv *http.Server, stopBackground context.CancelFunc, shutdownChan <-chan os.Signal, serverErrors <-chan error, logger *slog.Logger) {
	logger.Info("Shutdown handler started. Waiting for signal or server error...")

	var triggerReason string
	select {
	case sig := <-shutdownChan:
		triggerReason = "signal: " + sig.String()
		logger.Info("Shutdown signal received.", "signal", sig.String())
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server exited unexpectedly before signal", "error", err)
			os.Exit(1)
		}
		triggerReason = "server exited"
		logger.Info("Server goroutine finished before signal.", "error", err)
	}

	logger.Info("Starting graceful shutdown...", "trigger", triggerReason)
	stopBackground()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	logger.Info("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", "error", err)
		if err := srv.Close(); err != nil {
			logger.Error("HTTP server forced close failed", "error", err)
		}
	} else {
		logger.Info("HTTP server gracefully stopped.")
	}

	logger.Info("Waiting for server goroutine to confirm exit...")
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("Server goroutine exited with unexpected error after shutdown", "error", err)
		} else {
			logger.Info("Server goroutine confirmed exit.")
		}
	case <-time.After(5 * time.Second):
		logger.Warn("Timed out waiting for server goroutine confirmation.")
	}

	logger.Info("Application shutdown process complete.")
}

func setupLogger(cfg config.LoggerConfig) *slog.Logger {
	return logging.NewLogger(cfg)
}
