package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classbook/internal/api"
	"classbook/internal/config"
	"classbook/internal/database"
	"classbook/internal/domain"
	"classbook/internal/logging"
	"classbook/internal/metrics"
	"classbook/internal/notify"
	"classbook/internal/service"
	"classbook/internal/session"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	cfg, logger, closer, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer (func(c io.Closer) { _ = c.Close() })(closer)
	}

	db, err := initDatabase(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions := initSessionStore(ctx, cfg, logger)

	notifier, err := notify.NewTelegramNotifier(cfg.Telegram, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("telegram notifier disabled")
		notifier = nil
	}

	svc := api.Services{
		Auth:     service.NewAuthService(db, sessions, logger),
		Users:    service.NewUserService(db, cfg.Auth, logger),
		Rooms:    service.NewRoomService(db, logger),
		Reports:  service.NewReportService(db),
		Bookings: newBookingService(db, notifier, logger),
	}

	if cfg.Monitoring.PrometheusEnabled {
		startMetrics(cfg.Monitoring, logger)
	}

	server := api.NewHTTPServer(*cfg, db, svc, logger)
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// newBookingService keeps the notifier wiring out of the Services
// literal: a nil *TelegramNotifier must become a nil interface.
func newBookingService(db *database.DB, notifier *notify.TelegramNotifier, logger *zerolog.Logger) *service.BookingService {
	var n domain.Notifier
	if notifier != nil {
		n = notifier
	}
	return service.NewBookingService(db, n, logger)
}

func loadConfigAndLogger() (*config.Config, *zerolog.Logger, io.Closer, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := baseLogger.With().Str("component", "server-main").Logger()
	return cfg, &logger, closer, nil
}

func initDatabase(cfg *config.Config, logger *zerolog.Logger) (*database.DB, error) {
	db, err := database.NewDB(cfg.Database.Path, logger)
	if err != nil {
		logger.Error().Err(err).Msg("database init failed")
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), cfg.Auth.BcryptCost)
	if err != nil {
		db.Close()
		return nil, err
	}
	if err := db.Seed(context.Background(), string(hash)); err != nil {
		logger.Error().Err(err).Msg("seed failed")
		db.Close()
		return nil, err
	}
	return db, nil
}

// initSessionStore assembles the session backend. With Redis
// configured the store fails over to process memory when Redis is
// unreachable; without it, memory is the only backend.
func initSessionStore(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) domain.SessionStore {
	ttl := time.Duration(cfg.Session.TTLHours) * time.Hour
	memory := session.NewMemorySessionStore(ttl)

	if cfg.Redis.Address == "" {
		logger.Info().Msg("redis not configured, using in-memory sessions")
		return memory
	}

	client := session.NewRedisClient(cfg.Redis)
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Msg("redis unavailable")
	}
	primary := session.NewRedisSessionStore(client, ttl)
	return session.NewFailoverSessionStore(primary, memory, logger)
}

func startMetrics(cfg config.MonitoringConfig, logger *zerolog.Logger) {
	metrics.Register()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", cfg.PrometheusPort)
	go func() {
		logger.Info().Str("addr", addr).Msg("metrics server listening")
		if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("metrics server error")
		}
	}()
}
