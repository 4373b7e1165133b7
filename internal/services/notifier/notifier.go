// Package notifier периодически публикует напоминания об окончании абонементов.
package notifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/gym-membership/internal/lib/metrics"
	"github.com/magabrotheeeer/gym-membership/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// Memberships источник истекающих абонементов.
type Memberships interface {
	ExpiringBetween(ctx context.Context, from, to time.Time) ([]*models.ExpiringMembership, error)
}

// Service ищет абонементы, срок которых заканчивается в пределах window,
// и публикует по сообщению на каждый. Каждый проход начинается там, где
// закончился предыдущий успешный, поэтому абонемент попадает в рассылку один раз.
type Service struct {
	memberships Memberships
	publisher   rabbitmq.Publisher
	log         *slog.Logger
	interval    time.Duration
	window      time.Duration
	now         func() time.Time
	covered     time.Time
}

// NewService создаёт Service.
func NewService(memberships Memberships, publisher rabbitmq.Publisher, log *slog.Logger, interval, window time.Duration) *Service {
	return &Service{
		memberships: memberships,
		publisher:   publisher,
		log:         log,
		interval:    interval,
		window:      window,
		now:         time.Now,
	}
}

// Run выполняет проверку сразу и затем раз в interval, пока не отменён ctx.
func (s *Service) Run(ctx context.Context) {
	s.NotifyExpiring(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.NotifyExpiring(ctx)
		case <-ctx.Done():
			s.log.Info("expiry notifier stopped")
			return
		}
	}
}

// NotifyExpiring выполняет один проход и возвращает число опубликованных сообщений.
// Ошибки публикации отдельных сообщений не прерывают проход.
func (s *Service) NotifyExpiring(ctx context.Context) int {
	now := s.now()
	from, to := now, now.Add(s.window)
	if s.covered.After(from) {
		from = s.covered
	}
	if !to.After(from) {
		return 0
	}

	s.log.Info("looking for expiring memberships", slog.Time("from", from), slog.Time("to", to))
	list, err := s.memberships.ExpiringBetween(ctx, from, to)
	if err != nil {
		s.log.Error("failed to find expiring memberships", sl.Err(err))
		return 0
	}
	s.covered = to
	if len(list) == 0 {
		s.log.Info("no expiring memberships found")
		return 0
	}

	published := 0
	for _, m := range list {
		err = rabbitmq.PublishMessage(s.publisher, rabbitmq.Exchange, rabbitmq.RoutingKeyMembershipExpiring, m)
		if err != nil {
			metrics.NotificationsPublished.WithLabelValues(metrics.ResultError).Inc()
			s.log.Error("failed to publish notification",
				slog.String("membership_id", m.MembershipID.String()), sl.Err(err))
			continue
		}
		metrics.NotificationsPublished.WithLabelValues(metrics.ResultOK).Inc()
		published++
	}
	s.log.Info("expiring memberships published", slog.Int("found", len(list)), slog.Int("published", published))
	return published
}
