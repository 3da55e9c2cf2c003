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

	"credit-card-service/config"
	"credit-card-service/internal/adapter/encryption"
	"credit-card-service/internal/adapter/gateway"
	httpHandler "credit-card-service/internal/adapter/http/handler"
	pgStorage "credit-card-service/internal/adapter/storage/postgres"
	redisStorage "credit-card-service/internal/adapter/storage/redis"
	"credit-card-service/internal/core/ports"
	"credit-card-service/internal/service"
	"credit-card-service/pkg/logger"
)

func main() {
	cfgPath := os.Getenv("CCS_CONFIG_FILE")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Bool("gateway_simulated", cfg.Gateway.Simulate).
		Msg("Starting Credit Card Service")

	ctx := context.Background()

	// PostgreSQL
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	if cfg.Database.Migrate {
		if err := pgStorage.Migrate(ctx, pool, logger.Component(log, "migrate")); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	cipher, err := encryption.NewCardCipher(cfg.Card.EncryptionKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize card cipher")
	}
	cardStore := pgStorage.NewCardStore(pool, cipher)

	// Payment gateway
	tokenSvc := service.NewGatewayTokenService(cfg.Gateway.TokenSecret, cfg.Gateway.TokenTTL, cfg.Gateway.TokenIssuer)
	httpClient := &http.Client{Timeout: cfg.Gateway.Timeout}
	if cfg.Gateway.Simulate {
		httpClient.Transport = gateway.NewSimulatedTransport(cfg.Gateway.FailRate, tokenSvc)
		log.Warn().Float64("fail_rate", cfg.Gateway.FailRate).Msg("Using simulated payment gateway")
	}
	gatewayClient := gateway.NewClient(cfg.Gateway.URL, httpClient, tokenSvc, logger.Component(log, "gateway"))

	processor := service.NewPaymentProcessor(gatewayClient, logger.Component(log, "payment-processor"))
	shops := service.NewStaticShopDirectory(cfg.Shop.IBAN)
	cardSvc := service.NewCreditCardService(cardStore, processor, shops, logger.Component(log, "credit-card-service"))

	healthCheckers := []ports.HealthChecker{pgStorage.NewHealthCheck(pool)}

	deps := httpHandler.RouterDeps{
		CardSvc: cardSvc,
		Logger:  log,
	}

	// Redis backs rate limiting only.
	if cfg.RateLimit.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		deps.RateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}
	deps.HealthCheckers = healthCheckers

	router := httpHandler.SetupRouter(deps)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
