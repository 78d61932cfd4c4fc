package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"github.com/njprem/DestiMatch_Web/internal/config"
	"github.com/njprem/DestiMatch_Web/internal/gateway"
	"github.com/njprem/DestiMatch_Web/internal/logging"
	"github.com/njprem/DestiMatch_Web/internal/repository/memory"
	miniorepo "github.com/njprem/DestiMatch_Web/internal/repository/minio"
	"github.com/njprem/DestiMatch_Web/internal/repository/ports"
	"github.com/njprem/DestiMatch_Web/internal/repository/postgres"
	"github.com/njprem/DestiMatch_Web/internal/repository/sqlite"
	"github.com/njprem/DestiMatch_Web/internal/repository/sqlstore"
	"github.com/njprem/DestiMatch_Web/internal/service"
	transport "github.com/njprem/DestiMatch_Web/internal/transport/http"
	"github.com/njprem/DestiMatch_Web/internal/util"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run owns every deferred close so that startup and server failures still
// flush the log writer and release storage.
func run() error {
	cfg := config.Load()

	if cfg.LogstashTCPAddr != "" {
		writer, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr, logging.WithQueueSize(cfg.LogstashQueueSize))
		if err != nil {
			return fmt.Errorf("logstash: %w", err)
		}
		defer writer.Close()
		log.SetOutput(io.MultiWriter(os.Stdout, writer))
	}

	ctx := context.Background()
	store, closeStore, err := openStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer closeStore()

	signer, err := util.NewVisitorSigner(cfg.CookieSecret)
	if err != nil {
		return fmt.Errorf("visitor cookie: %w", err)
	}

	api := gateway.New(cfg.APIBaseURL)

	history := service.NewHistoryService()
	auth := service.NewAuthService(api)
	e := transport.NewServer(transport.ServerConfig{
		Router: transport.RouterConfig{
			AllowOrigins: cfg.AllowOrigins,
			RateLimitRPS: cfg.RateLimitRPS,
		},
		Visitors:        signer,
		Storage:         store,
		SecureCookies:   cfg.CookieSecure,
		SwaggerSpecPath: cfg.SwaggerSpecPath,
	}, transport.Services{
		Auth:            auth,
		Destinations:    service.NewDestinationService(api, api, history),
		Search:          service.NewSearchService(api, cfg.SearchViewCapacity),
		Favorites:       service.NewFavoriteService(api),
		Reviews:         service.NewReviewService(api),
		Recommendations: service.NewRecommendationService(api),
		Profiles:        service.NewProfileService(history),
	})

	log.Printf("DestiMatch web listening on :%s (storage=%s, api=%s)", cfg.Port, cfg.StorageDriver, cfg.APIBaseURL)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return serve(e, ":"+cfg.Port, quit)
}

// serve runs e until a signal arrives on quit or the listener fails.
func serve(e *echo.Echo, addr string, quit <-chan os.Signal) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-quit:
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	return nil
}

func openStorage(ctx context.Context, cfg config.Config) (ports.KeyValueStore, func(), error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres, config.StorageSQLite:
		open := func() (*sqlx.DB, error) { return postgres.New(cfg.DatabaseURL) }
		if cfg.StorageDriver == config.StorageSQLite {
			open = func() (*sqlx.DB, error) { return sqlite.New(cfg.SQLitePath) }
		}
		db, err := open()
		if err != nil {
			return nil, nil, err
		}
		store := sqlstore.NewKeyValueStore(db, cfg.StorageTable)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return store, func() { _ = db.Close() }, nil
	case config.StorageMinIO:
		client, err := miniorepo.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
		if err != nil {
			return nil, nil, err
		}
		objects := miniorepo.NewStorage(client)
		if err := objects.EnsureBucket(ctx, cfg.MinIOBucketStorage); err != nil {
			return nil, nil, err
		}
		return miniorepo.NewKeyValueStore(objects, cfg.MinIOBucketStorage), func() {}, nil
	default:
		return memory.NewKeyValueStore(), func() {}, nil
	}
}
