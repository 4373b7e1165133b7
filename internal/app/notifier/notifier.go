// Package notifier собирает процесс, который ищет истекающие абонементы и
// публикует напоминания в RabbitMQ.
package notifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/gym-membership/internal/cache"
	"github.com/magabrotheeeer/gym-membership/internal/config"
	"github.com/magabrotheeeer/gym-membership/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
	membershipservice "github.com/magabrotheeeer/gym-membership/internal/services/membership"
	notifierservice "github.com/magabrotheeeer/gym-membership/internal/services/notifier"
	planservice "github.com/magabrotheeeer/gym-membership/internal/services/plan"
	"github.com/magabrotheeeer/gym-membership/internal/storage/repository"
)

const (
	dbRetries    = 10
	dbRetryDelay = 3 * time.Second
)

// App приложение планировщика уведомлений.
type App struct {
	service *notifierservice.Service
	db      *repository.Storage
	cache   *cache.Cache
	conn    *amqp.Connection
	ch      *amqp.Channel
	logger  *slog.Logger
}

// New подключается к базе, Redis и RabbitMQ и создаёт планировщик.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "notifier.New"

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.MaxRetries, cfg.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.NotificationQueues())
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a := &App{conn: conn, ch: ch, logger: logger}

	a.db, err = repository.New(cfg.StorageConnectionString)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = a.db.WaitReady(ctx, dbRetries, dbRetryDelay); err != nil {
		a.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a.cache, err = cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	plans := planservice.NewService(a.db, a.db, a.cache, logger, cfg.CacheTTL)
	memberships := membershipservice.NewService(a.db, a.db, plans, logger)
	a.service = notifierservice.NewService(memberships, ch, logger, cfg.Notifier.Interval, cfg.Notifier.Window)
	logger.Debug("expiry notifier configured",
		slog.Duration("interval", cfg.Notifier.Interval),
		slog.Duration("window", cfg.Notifier.Window),
	)

	return a, nil
}

// Run запускает поиск по расписанию и блокирует до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("expiry notifier started")
	a.service.Run(ctx)
	a.logger.Info("shutting down expiry notifier")
	a.close()
	return nil
}

func (a *App) close() {
	if a.ch != nil {
		if err := a.ch.Close(); err != nil {
			a.logger.Error("failed to close channel", sl.Err(err))
		}
	}
	if a.conn != nil {
		if err := a.conn.Close(); err != nil {
			a.logger.Error("failed to close connection", sl.Err(err))
		}
	}
	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Error("failed to close redis", sl.Err(err))
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("failed to close database", sl.Err(err))
		}
	}
}
