package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"loja-sql/internal/api/handler"
	mw "loja-sql/internal/api/middleware"
	"loja-sql/internal/config"
	"loja-sql/internal/domain/address"
	"loja-sql/internal/domain/customer"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter wires every route. ctx bounds background work owned by the middleware.
func SetupRouter(ctx context.Context, customerService customer.CustomerService, addressService address.Service, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(ctx, router, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)
	setupAuthRoutes(router, cfg, logger)
	setupCustomerRoutes(router, cfg, customerService, logger)
	setupAddressRoutes(router, cfg, addressService, logger)
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	return router
}

func setupMiddleware(ctx context.Context, router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(mw.NewRateLimiterMiddleware(ctx, cfg.Server.RateLimit, logger).Middleware)
	router.Use(mw.MetricsMiddleware())
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupAuthRoutes(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	authHandler := handler.NewAuthHandler(cfg.Server.Auth, logger)
	router.Route("/auth", func(r chi.Router) {
		r.Post("/token", authHandler.GenerateBearerToken)
	})
}

func setupCustomerRoutes(r chi.Router, cfg *config.Config, svc customer.CustomerService, logger *slog.Logger) {
	h := handler.NewCustomerHandler(svc, logger)

	r.Route("/customers", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Post("/", h.CreateCustomer)
		r.Get("/", h.ListCustomers)
		r.Post("/with-address", h.CreateCustomerWithAddress)
		r.Route("/{customerID}", func(r chi.Router) {
			r.Get("/", h.GetCustomer)
			r.Put("/", h.UpdateCustomer)
			r.Delete("/", h.DeleteCustomer)
		})
	})
}

func setupAddressRoutes(r chi.Router, cfg *config.Config, svc address.Service, logger *slog.Logger) {
	h := handler.NewAddressHandler(svc, logger)

	r.Route("/addresses", func(r chi.Router) {
		r.Use(mw.AuthMiddleware(cfg.Server.Auth, logger))
		r.Post("/", h.CreateAddress)
		r.Get("/", h.ListAddresses)
		r.Route("/{addressID}", func(r chi.Router) {
			r.Get("/", h.GetAddress)
			r.Put("/", h.UpdateAddress)
			r.Delete("/", h.DeleteAddress)
		})
	})
}
