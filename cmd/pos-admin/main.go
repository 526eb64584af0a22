//go:generate swag init -g main.go -d ./,../../internal/api/handlers,../../internal/models,../../internal/utils/response -o ../../docs

// @title						POS Admin API
// @version					1.0
// @description				Point of sale and back office API: catalog, purchasing, cart and checkout, sales reporting.
// @BasePath					/api/v1
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/pos-admin/internal/api/middleware"
	"github.com/aaravmahajanofficial/pos-admin/internal/cache"
	"github.com/aaravmahajanofficial/pos-admin/internal/config"
	"github.com/aaravmahajanofficial/pos-admin/internal/events"
	"github.com/aaravmahajanofficial/pos-admin/internal/health"
	"github.com/aaravmahajanofficial/pos-admin/internal/metrics"
	repository "github.com/aaravmahajanofficial/pos-admin/internal/repositories"
	service "github.com/aaravmahajanofficial/pos-admin/internal/services"
	"github.com/aaravmahajanofficial/pos-admin/internal/telemetry"
	"github.com/aaravmahajanofficial/pos-admin/pkg/sendGrid"
	"github.com/aaravmahajanofficial/pos-admin/pkg/stripe"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.Otel, cfg.Env)
	if err != nil {
		slog.Error("Failed to initialize tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, err := repository.New(ctx, cfg)
	if err != nil {
		slog.Error("Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	publisher := events.NewNoopPublisher()
	if cfg.AMQP.URL != "" {
		if publisher, err = events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange); err != nil {
			slog.Error("Error connecting to the message broker", slog.String("error", err.Error()))
			os.Exit(1)
		}
	} else {
		slog.Info("AMQP url not set, domain events will be dropped")
	}

	redisCache := cache.NewRedisCache(redisClient, &cfg.Cache)
	jwtKey := []byte(cfg.Security.JWTKey)
	stripeClient := stripe.NewStripeClient(cfg.Stripe.APIKey, cfg.Stripe.Currency)
	sendGridClient := sendGrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	masterService := service.NewMasterService(repository.NewMasterRepo(repos.DB))
	partyService := service.NewPartyService(repository.NewPartyRepo(repos.DB))
	productService := service.NewProductService(repository.NewProductRepo(repos.DB), redisCache, cfg.Cache)
	notificationService := service.NewNotificationService(repository.NewNotificationRepo(repos.DB), sendGridClient, cfg.Store.Name)
	saleRepo := repository.NewSaleRepo(repos.DB)

	services := Services{
		User: service.NewUserService(
			repository.NewUserRepo(repos.DB),
			repository.NewRateLimitRepo(redisClient, cfg.RateConfig),
			jwtKey,
			time.Duration(cfg.Security.JWTExpiryHours)*time.Hour,
		),
		Master:       masterService,
		Party:        partyService,
		Product:      productService,
		Purchase:     service.NewPurchaseService(repository.NewPurchaseRepo(repos.DB), productService, partyService, publisher),
		Cart:         service.NewCartService(redisCache, cfg.Cache, cfg.Store, productService, partyService, saleRepo, stripeClient, notificationService, publisher),
		Sale:         service.NewSaleService(saleRepo, notificationService),
		Label:        service.NewLabelService(productService),
		Notification: notificationService,
	}

	healthHandler, err := health.NewHealthHandler(cfg, health.Dependencies{Payments: stripeClient})
	if err != nil {
		slog.Error("Failed to create health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	routerMux := http.NewServeMux()
	registerRoutes(routerMux, services, middleware.NewAuthMiddleware(jwtKey))
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining; metrics must sit directly on the mux
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = middleware.CORS(cfg.AllowedOrigin)(handler)
	handler = otelhttp.NewHandler(handler, cfg.Otel.ServiceName)

	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	slog.Info("Server is starting...", slog.String("address", cfg.Addr), slog.String("env", cfg.Env))

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		slog.Error("Failed to start server", slog.String("error", err.Error()))
	case <-ctx.Done():
		slog.Warn("Shutdown signal received. Preparing to stop the server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("Server shut down gracefully")
	}

	closers := []struct {
		name  string
		close func() error
	}{
		{"event publisher", publisher.Close},
		{"redis", redisClient.Close},
		{"database", repos.Close},
	}
	for _, c := range closers {
		if err := c.close(); err != nil {
			slog.Error("Error closing "+c.name, slog.String("error", err.Error()))
		}
	}

	if err := shutdownTracer(shutdownCtx); err != nil {
		slog.Error("Error flushing traces", slog.String("error", err.Error()))
	}
}
