// Package sender собирает процесс, который читает напоминания из RabbitMQ и
// отправляет их письмами.
package sender

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/gym-membership/internal/config"
	"github.com/magabrotheeeer/gym-membership/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
	"github.com/magabrotheeeer/gym-membership/internal/lib/smtp"
	senderservice "github.com/magabrotheeeer/gym-membership/internal/services/sender"
)

// App приложение отправки писем.
type App struct {
	conn    *amqp.Connection
	ch      *amqp.Channel
	service *senderservice.Service
	logger  *slog.Logger
}

// New подключается к RabbitMQ и настраивает SMTP-транспорт.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "sender.New"

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.MaxRetries, cfg.RetryDelay)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.NotificationQueues())
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	transport := smtp.NewTransport(cfg.SMTP, logger)

	return &App{
		conn:    conn,
		ch:      ch,
		service: senderservice.NewService(transport, logger),
		logger:  logger,
	}, nil
}

// Run обрабатывает очередь напоминаний до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info("sender started", slog.String("queue", rabbitmq.QueueMembershipExpiring))
	err := rabbitmq.Consume(ctx, a.ch, rabbitmq.QueueMembershipExpiring, a.service.HandleMembershipExpiring, a.logger)
	if err != nil {
		a.logger.Error("consumer stopped with error", sl.Err(err))
	}

	a.logger.Info("sender shutting down gracefully")
	if cerr := a.ch.Close(); cerr != nil {
		a.logger.Error("failed to close channel", sl.Err(cerr))
	}
	if cerr := a.conn.Close(); cerr != nil {
		a.logger.Error("failed to close connection", sl.Err(cerr))
	}
	return err
}
