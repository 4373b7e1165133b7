// Package plan содержит бизнес-логику планов абонементов: CRUD, кэширование
// и правила удаления.
package plan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

const allPlansKey = "plans:all"

func planKey(id uuid.UUID) string {
	return "plan:" + id.String()
}

// Repository методы хранилища планов.
type Repository interface {
	CreatePlan(ctx context.Context, p models.MembershipPlan) error
	GetPlans(ctx context.Context) ([]*models.MembershipPlan, error)
	GetPlanByID(ctx context.Context, id uuid.UUID) (*models.MembershipPlan, error)
	UpdatePlan(ctx context.Context, p models.MembershipPlan) error
	SetPlanForDeletion(ctx context.Context, id uuid.UUID, forDeletion bool) error
	HasActiveMemberships(ctx context.Context, planID uuid.UUID, now time.Time) (bool, error)
	DeletePlan(ctx context.Context, id uuid.UUID, now time.Time) error
}

// AdminRepository поиск администратора, последним изменившего план.
type AdminRepository interface {
	GetAdminByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
}

// Cache описывает JSON-кэш.
type Cache interface {
	// Get пытается получить значение из кэша по ключу.
	Get(ctx context.Context, key string, result any) (bool, error)
	// Set сохраняет значение в кэш с временем жизни.
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	// Invalidate удаляет значения по ключам.
	Invalidate(ctx context.Context, keys ...string) error
}

// Service реализует операции над планами.
type Service struct {
	repo   Repository
	admins AdminRepository
	cache  Cache
	log    *slog.Logger
	ttl    time.Duration
	now    func() time.Time
	tracer trace.Tracer
}

// NewService создаёт Service. ttl задаёт время жизни записей в кэше.
func NewService(repo Repository, admins AdminRepository, cache Cache, log *slog.Logger, ttl time.Duration) *Service {
	return &Service{
		repo:   repo,
		admins: admins,
		cache:  cache,
		log:    log,
		ttl:    ttl,
		now:    time.Now,
		tracer: otel.Tracer("gym-membership/plan"),
	}
}

// GetAll возвращает все планы вместе с их последними редакторами.
func (s *Service) GetAll(ctx context.Context) ([]*models.PlanView, error) {
	const op = "plan.GetAll"

	var plans []*models.MembershipPlan
	if !s.fromCache(ctx, allPlansKey, &plans) {
		var err error
		plans, err = s.repo.GetPlans(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		s.toCache(ctx, allPlansKey, plans)
	}

	admins := make(map[uuid.UUID]*models.AdminView)
	result := make([]*models.PlanView, 0, len(plans))
	for _, p := range plans {
		v, err := s.view(ctx, p, admins)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, v)
	}
	return result, nil
}

// GetByID возвращает план по идентификатору.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.PlanView, error) {
	const op = "plan.GetByID"

	p, err := s.get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	v, err := s.view(ctx, p, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return v, nil
}

// Create создаёт план от имени администратора adminID.
func (s *Service) Create(ctx context.Context, req models.PlanCreateRequest, adminID uuid.UUID) (*models.PlanView, error) {
	const op = "plan.Create"

	p := models.MembershipPlan{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		AdminID:     &adminID,
	}
	if err := s.repo.CreatePlan(ctx, p); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, allPlansKey)
	s.log.Info("created membership plan", slog.String("plan_id", p.ID.String()), slog.String("admin_id", adminID.String()))

	return s.view(ctx, &p, nil)
}

// Update применяет изменения к плану и записывает adminID как последнего редактора.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req models.PlanUpdateRequest, adminID uuid.UUID) (*models.PlanView, error) {
	const op = "plan.Update"

	p, err := s.repo.GetPlanByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Apply(p)
	p.AdminID = &adminID
	if err = s.repo.UpdatePlan(ctx, *p); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, planKey(id), allPlansKey)

	return s.view(ctx, p, nil)
}

// SetForDeletion помечает план на удаление. Повторный вызов ничего не меняет.
func (s *Service) SetForDeletion(ctx context.Context, id uuid.UUID) error {
	return s.setForDeletion(ctx, "plan.SetForDeletion", id, true)
}

// ResetForDeletion снимает пометку на удаление. Повторный вызов ничего не меняет.
func (s *Service) ResetForDeletion(ctx context.Context, id uuid.UUID) error {
	return s.setForDeletion(ctx, "plan.ResetForDeletion", id, false)
}

func (s *Service) setForDeletion(ctx context.Context, op string, id uuid.UUID, flag bool) error {
	if err := s.repo.SetPlanForDeletion(ctx, id, flag); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, planKey(id), allPlansKey)
	s.log.Info("changed plan deletion flag", slog.String("plan_id", id.String()), slog.Bool("for_deletion", flag))
	return nil
}

// Delete удаляет план. План должен быть помечен на удаление, и на нём не
// должно быть абонементов со сроком окончания не раньше текущего момента.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "plan.Delete"
	ctx, span := s.tracer.Start(ctx, "plan.delete", trace.WithAttributes(attribute.String("plan.id", id.String())))
	defer span.End()

	now := s.now()
	p, err := s.repo.GetPlanByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !p.ForDeletion {
		return fmt.Errorf("%s: %w", op, models.ErrPlanNotMarkedForDeletion)
	}
	active, err := s.repo.HasActiveMemberships(ctx, id, now)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if active {
		return fmt.Errorf("%s: %w", op, models.ErrPlanHasActiveMemberships)
	}
	if err = s.repo.DeletePlan(ctx, id, now); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.invalidate(ctx, planKey(id), allPlansKey)
	s.log.Info("deleted membership plan", slog.String("plan_id", id.String()))
	return nil
}

func (s *Service) get(ctx context.Context, id uuid.UUID) (*models.MembershipPlan, error) {
	var p *models.MembershipPlan
	if s.fromCache(ctx, planKey(id), &p) && p != nil {
		return p, nil
	}
	p, err := s.repo.GetPlanByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, planKey(id), p)
	return p, nil
}

// view дополняет план данными администратора. known используется как
// кэш администраторов в пределах одного запроса и может быть nil.
func (s *Service) view(ctx context.Context, p *models.MembershipPlan, known map[uuid.UUID]*models.AdminView) (*models.PlanView, error) {
	v := p.View()
	if p.AdminID == nil {
		return v, nil
	}
	if a, ok := known[*p.AdminID]; ok {
		v.Admin = a
		if a == nil {
			v.AdminID = nil
		}
		return v, nil
	}
	a, err := s.admins.GetAdminByID(ctx, *p.AdminID)
	switch {
	case errors.Is(err, models.ErrNotFound):
		// администратор удалён после записи плана в кэш
		v.AdminID = nil
	case err != nil:
		return nil, err
	default:
		v.Admin = a.View()
	}
	if known != nil {
		known[*p.AdminID] = v.Admin
	}
	return v, nil
}

func (s *Service) fromCache(ctx context.Context, key string, dst any) bool {
	found, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", key), sl.Err(err))
		return false
	}
	return found
}

func (s *Service) toCache(ctx context.Context, key string, value any) {
	if err := s.cache.Set(ctx, key, value, s.ttl); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", key), sl.Err(err))
	}
}

func (s *Service) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		s.log.Warn("failed to invalidate cache", slog.Any("keys", keys), sl.Err(err))
	}
}
