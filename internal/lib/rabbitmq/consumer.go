package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
)

const prefetch = 10

// ErrDiscard помечает сообщение, которое бессмысленно обрабатывать повторно.
// Такое сообщение отклоняется без возврата в очередь.
var ErrDiscard = errors.New("discard message")

// Consume читает очередь queueName и передаёт тело каждого сообщения в handler,
// обрабатывая не больше prefetch сообщений одновременно. Ошибка handler
// возвращает сообщение в очередь, если она не оборачивает ErrDiscard.
// Блокирует до отмены ctx или закрытия канала и дожидается уже запущенных
// обработчиков.
func Consume(ctx context.Context, ch *amqp.Channel, queueName string, handler func([]byte) error, log *slog.Logger) error {
	const op = "rabbitmq.Consume"
	deliveries, err := ch.Consume(queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	serve(ctx, deliveries, handler, log)
	return nil
}

// acknowledger подтверждение доставки, отделённое от amqp.Delivery для тестов.
type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func serve(ctx context.Context, deliveries <-chan amqp.Delivery, handler func([]byte) error, log *slog.Logger) {
	var wg sync.WaitGroup
	defer wg.Wait()

	sem := make(chan struct{}, prefetch)
	for {
		select {
		case d, ok := <-deliveries:
			if !ok {
				log.Warn("delivery channel closed")
				return
			}
			sem <- struct{}{}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() { <-sem }()
				handle(d.Body, d, handler, log)
			}()
		case <-ctx.Done():
			return
		}
	}
}

func handle(body []byte, ack acknowledger, handler func([]byte) error, log *slog.Logger) {
	if err := handler(body); err != nil {
		requeue := !errors.Is(err, ErrDiscard)
		log.Error("failed to handle message", sl.Err(err), slog.Bool("requeue", requeue))
		if nackErr := ack.Nack(false, requeue); nackErr != nil {
			log.Error("failed to nack message", sl.Err(nackErr))
		}
		return
	}
	if err := ack.Ack(false); err != nil {
		log.Error("failed to ack message", sl.Err(err))
	}
}
