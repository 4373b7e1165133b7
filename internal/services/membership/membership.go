// Package membership содержит жизненный цикл абонемента: оформление,
// продление, отметку об оплате и выборку истекающих абонементов.
package membership

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/magabrotheeeer/gym-membership/internal/lib/metrics"
	"github.com/magabrotheeeer/gym-membership/internal/lib/pricing"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// Repository методы хранилища абонементов.
type Repository interface {
	GetMemberships(ctx context.Context) ([]*models.Membership, error)
	GetMembershipByID(ctx context.Context, id uuid.UUID) (*models.Membership, error)
	RenewMembership(ctx context.Context, m models.Membership, now time.Time) error
	SetFeePaid(ctx context.Context, id uuid.UUID, paid bool) error
	ExpiringBetween(ctx context.Context, from, to time.Time) ([]*models.ExpiringMembership, error)
}

// MemberRepository поиск участника, которому принадлежит абонемент.
type MemberRepository interface {
	GetMemberByID(ctx context.Context, id uuid.UUID) (*models.Member, error)
}

// Plans поиск плана с ценой.
type Plans interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.PlanView, error)
}

// Service реализует операции над абонементами.
type Service struct {
	repo    Repository
	members MemberRepository
	plans   Plans
	log     *slog.Logger
	now     func() time.Time
	tracer  trace.Tracer
}

// NewService создаёт Service.
func NewService(repo Repository, members MemberRepository, plans Plans, log *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		members: members,
		plans:   plans,
		log:     log,
		now:     time.Now,
		tracer:  otel.Tracer("gym-membership/membership"),
	}
}

// Create рассчитывает новый абонемент по плану и длительности. Абонемент не
// сохраняется: его записывает регистрация участника в одной транзакции.
func (s *Service) Create(ctx context.Context, planID uuid.UUID, d pricing.Duration) (*models.Membership, error) {
	const op = "membership.Create"

	plan, err := s.plans.GetByID(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	term, err := pricing.Quote(plan.Price, d, s.now())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &models.Membership{
		ID:        uuid.New(),
		From:      term.From,
		To:        term.To,
		Duration:  d,
		Fee:       term.Fee,
		IsFeePaid: false,
		PlanID:    &plan.ID,
	}, nil
}

// Renew продлевает абонемент на выбранный план и длительность. Активный
// абонемент продлить нельзя. Проверки выполняются в порядке: абонемент
// существует, абонемент не активен, план существует.
func (s *Service) Renew(ctx context.Context, id uuid.UUID, req models.MembershipUpdateRequest) (*models.MembershipView, error) {
	const op = "membership.Renew"
	ctx, span := s.tracer.Start(ctx, "membership.renew", trace.WithAttributes(
		attribute.String("membership.id", id.String()),
		attribute.Int("membership.duration", int(req.Duration)),
	))
	defer span.End()

	v, err := s.renew(ctx, id, req)
	metrics.MembershipRenewals.WithLabelValues(renewResult(err)).Inc()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("renewed membership",
		slog.String("membership_id", id.String()),
		slog.String("duration", req.Duration.String()),
		slog.Float64("fee", v.Fee),
	)
	return v, nil
}

func (s *Service) renew(ctx context.Context, id uuid.UUID, req models.MembershipUpdateRequest) (*models.MembershipView, error) {
	now := s.now()

	current, err := s.repo.GetMembershipByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pricing.IsActive(current.To, now) {
		return nil, models.ErrMembershipStillActive
	}
	plan, err := s.plans.GetByID(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}
	term, err := pricing.Quote(plan.Price, req.Duration, now)
	if err != nil {
		return nil, err
	}

	renewed := models.Membership{
		ID:        id,
		From:      term.From,
		To:        term.To,
		Duration:  req.Duration,
		Fee:       term.Fee,
		IsFeePaid: false,
		PlanID:    &plan.ID,
	}
	if err = s.repo.RenewMembership(ctx, renewed, now); err != nil {
		return nil, err
	}
	v := renewed.View()
	v.Plan = plan
	return v, nil
}

func renewResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, models.ErrMembershipStillActive):
		return metrics.ResultStillActive
	case errors.Is(err, models.ErrNotFound):
		return metrics.ResultNotFound
	default:
		return metrics.ResultError
	}
}

// RenewOwn продлевает абонемент участника memberID.
func (s *Service) RenewOwn(ctx context.Context, memberID uuid.UUID, req models.MembershipUpdateRequest) (*models.MembershipView, error) {
	const op = "membership.RenewOwn"

	member, err := s.members.GetMemberByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.Renew(ctx, member.MembershipID, req)
}

// GetAll возвращает все абонементы вместе с планами.
func (s *Service) GetAll(ctx context.Context) ([]*models.MembershipView, error) {
	const op = "membership.GetAll"

	list, err := s.repo.GetMemberships(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	plans := make(map[uuid.UUID]*models.PlanView)
	result := make([]*models.MembershipView, 0, len(list))
	for _, m := range list {
		v, err := s.view(ctx, m, plans)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, v)
	}
	return result, nil
}

// GetByID возвращает абонемент вместе с планом.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.MembershipView, error) {
	const op = "membership.GetByID"

	m, err := s.repo.GetMembershipByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	v, err := s.view(ctx, m, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

// MarkFeePaid отмечает, что участник оплатил абонемент.
func (s *Service) MarkFeePaid(ctx context.Context, id uuid.UUID) error {
	const op = "membership.MarkFeePaid"

	if err := s.repo.SetFeePaid(ctx, id, true); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("membership fee paid", slog.String("membership_id", id.String()))
	return nil
}

// ExpiringBetween возвращает абонементы, срок которых заканчивается в [from, to).
func (s *Service) ExpiringBetween(ctx context.Context, from, to time.Time) ([]*models.ExpiringMembership, error) {
	const op = "membership.ExpiringBetween"

	list, err := s.repo.ExpiringBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

func (s *Service) view(ctx context.Context, m *models.Membership, known map[uuid.UUID]*models.PlanView) (*models.MembershipView, error) {
	v := m.View()
	if m.PlanID == nil {
		return v, nil
	}
	if p, ok := known[*m.PlanID]; ok {
		v.Plan = p
		return v, nil
	}
	p, err := s.plans.GetByID(ctx, *m.PlanID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}
	v.Plan = p
	if known != nil {
		known[*m.PlanID] = p
	}
	return v, nil
}
