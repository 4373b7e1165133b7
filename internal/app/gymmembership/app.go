// Package gymmembership собирает HTTP API клуба: хранилище, кэш, сервисы и маршруты.
package gymmembership

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/gym-membership/internal/cache"
	"github.com/magabrotheeeer/gym-membership/internal/config"
	adminhandler "github.com/magabrotheeeer/gym-membership/internal/http/handlers/admin"
	authhandler "github.com/magabrotheeeer/gym-membership/internal/http/handlers/auth"
	"github.com/magabrotheeeer/gym-membership/internal/http/handlers/health"
	memberhandler "github.com/magabrotheeeer/gym-membership/internal/http/handlers/member"
	membershiphandler "github.com/magabrotheeeer/gym-membership/internal/http/handlers/membership"
	planhandler "github.com/magabrotheeeer/gym-membership/internal/http/handlers/plan"
	"github.com/magabrotheeeer/gym-membership/internal/http/middlewarectx"
	"github.com/magabrotheeeer/gym-membership/internal/lib/jwt"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
	"github.com/magabrotheeeer/gym-membership/internal/lib/tracing"
	"github.com/magabrotheeeer/gym-membership/internal/lib/validate"
	"github.com/magabrotheeeer/gym-membership/internal/migrations"
	adminservice "github.com/magabrotheeeer/gym-membership/internal/services/admin"
	authservice "github.com/magabrotheeeer/gym-membership/internal/services/auth"
	memberservice "github.com/magabrotheeeer/gym-membership/internal/services/member"
	membershipservice "github.com/magabrotheeeer/gym-membership/internal/services/membership"
	planservice "github.com/magabrotheeeer/gym-membership/internal/services/plan"
	"github.com/magabrotheeeer/gym-membership/internal/storage/repository"
)

const (
	shutdownTimeout = 15 * time.Second
	dbRetries       = 10
	dbRetryDelay    = 3 * time.Second
)

// App HTTP-сервер со всеми зависимостями.
type App struct {
	server   *http.Server
	logger   *slog.Logger
	db       *repository.Storage
	cache    *cache.Cache
	shutdown tracing.Shutdown
}

// New подключается к базе и Redis, применяет миграции, создаёт первого
// администратора и собирает маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "gymmembership.New"

	shutdown, err := tracing.Setup(ctx, cfg.Tracing)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.WaitReady(ctx, dbRetries, dbRetryDelay); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	redisCache, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	admins := adminservice.NewService(db, logger)
	if err = admins.EnsureBootstrap(ctx, cfg.BootstrapAdmin); err != nil {
		_ = db.Close()
		_ = redisCache.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	plans := planservice.NewService(db, db, redisCache, logger, cfg.CacheTTL)
	memberships := membershipservice.NewService(db, db, plans, logger)
	members := memberservice.NewService(db, memberships, logger)
	tokens := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.Issuer, cfg.Audience, cfg.TokenTTL)
	auth := authservice.NewService(db, db, tokens, logger)

	v := validate.New()
	router := chi.NewRouter()
	RegisterRoutes(router, logger, Handlers{
		Auth: authhandler.New(logger, auth, v),
		Health: health.New(logger, map[string]health.Pinger{
			"database": db,
			"cache":    redisCache,
		}),
		Admin:      adminhandler.New(logger, admins, v),
		Member:     memberhandler.New(logger, members, v),
		Membership: membershiphandler.New(logger, memberships, members, v),
		Plan:       planhandler.New(logger, plans, v),
		Tokens:     auth,
		Limiter:    middlewarectx.NewIPRateLimiter(cfg.RPS, cfg.Burst),
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		db:       db,
		cache:    redisCache,
		shutdown: shutdown,
	}, nil
}

// Run обслуживает запросы до отмены ctx, затем плавно останавливает сервер.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err = a.server.Shutdown(timeoutCtx)
	}
	a.close()
	return err
}

func (a *App) close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.cache.Close(); err != nil {
		a.logger.Error("failed to close redis", sl.Err(err))
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close database", sl.Err(err))
	}
	if err := a.shutdown(ctx); err != nil {
		a.logger.Error("failed to flush traces", sl.Err(err))
	}
}
