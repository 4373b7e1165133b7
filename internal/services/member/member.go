// Package member содержит операции над участниками клуба, включая
// регистрацию с оформлением абонемента.
package member

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-membership/internal/lib/metrics"
	"github.com/magabrotheeeer/gym-membership/internal/lib/password"
	"github.com/magabrotheeeer/gym-membership/internal/lib/pricing"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// Repository методы хранилища участников.
type Repository interface {
	RegisterMember(ctx context.Context, member models.Member, membership models.Membership) error
	GetMembers(ctx context.Context) ([]*models.Member, error)
	GetMemberByID(ctx context.Context, id uuid.UUID) (*models.Member, error)
	GetMemberByEmail(ctx context.Context, email string) (*models.Member, error)
	GetMemberByMembershipID(ctx context.Context, membershipID uuid.UUID) (*models.Member, error)
	UpdateMember(ctx context.Context, m models.Member) error
	UpdateMemberPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	DeleteMember(ctx context.Context, id uuid.UUID) error
}

// Memberships расчёт нового абонемента и чтение абонемента с планом.
type Memberships interface {
	Create(ctx context.Context, planID uuid.UUID, d pricing.Duration) (*models.Membership, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.MembershipView, error)
}

// Service реализует операции над участниками.
type Service struct {
	repo        Repository
	memberships Memberships
	log         *slog.Logger
}

// NewService создаёт Service.
func NewService(repo Repository, memberships Memberships, log *slog.Logger) *Service {
	return &Service{repo: repo, memberships: memberships, log: log}
}

// Register создаёт участника вместе с абонементом на выбранный план.
func (s *Service) Register(ctx context.Context, req models.MemberCreateRequest) (*models.MemberView, error) {
	const op = "member.Register"

	membership, err := s.memberships.Create(ctx, req.Membership.PlanID, req.Membership.Duration)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	hash, err := password.GetHash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	m := models.Member{
		ID:           uuid.New(),
		Name:         req.Name,
		Surname:      req.Surname,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		MembershipID: membership.ID,
	}
	if err = s.repo.RegisterMember(ctx, m, *membership); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	metrics.MembershipsCreated.WithLabelValues(membership.Duration.String()).Inc()
	s.log.Info("registered member",
		slog.String("member_id", m.ID.String()),
		slog.String("membership_id", membership.ID.String()),
		slog.Float64("fee", membership.Fee),
	)

	v := view(&m)
	v.Membership = membership.View()
	return v, nil
}

// GetAll возвращает всех участников без вложенных абонементов.
func (s *Service) GetAll(ctx context.Context) ([]*models.MemberView, error) {
	const op = "member.GetAll"
	members, err := s.repo.GetMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result := make([]*models.MemberView, 0, len(members))
	for _, m := range members {
		result = append(result, view(m))
	}
	return result, nil
}

// GetByID возвращает участника с абонементом.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.MemberView, error) {
	const op = "member.GetByID"
	m, err := s.repo.GetMemberByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.withMembership(ctx, op, m)
}

// GetByEmail возвращает участника с абонементом по email.
func (s *Service) GetByEmail(ctx context.Context, email string) (*models.MemberView, error) {
	const op = "member.GetByEmail"
	m, err := s.repo.GetMemberByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.withMembership(ctx, op, m)
}

// GetByMembershipID возвращает владельца абонемента.
func (s *Service) GetByMembershipID(ctx context.Context, membershipID uuid.UUID) (*models.MemberView, error) {
	const op = "member.GetByMembershipID"
	m, err := s.repo.GetMemberByMembershipID(ctx, membershipID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.withMembership(ctx, op, m)
}

// Update изменяет данные участника.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req models.MemberUpdateRequest) (*models.MemberView, error) {
	const op = "member.Update"
	m, err := s.repo.GetMemberByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Apply(m)
	if err = s.repo.UpdateMember(ctx, *m); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return view(m), nil
}

// Delete удаляет участника вместе с абонементом.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "member.Delete"
	if err := s.repo.DeleteMember(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("deleted member", slog.String("member_id", id.String()))
	return nil
}

// ChangePassword меняет пароль после проверки текущего.
func (s *Service) ChangePassword(ctx context.Context, id uuid.UUID, req models.PasswordUpdateRequest) error {
	const op = "member.ChangePassword"
	m, err := s.repo.GetMemberByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = password.CompareHash(m.PasswordHash, req.CurrentPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return fmt.Errorf("%s: %w", op, models.ErrWrongPassword)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	hash, err := password.GetHash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = s.repo.UpdateMemberPassword(ctx, id, hash); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *Service) withMembership(ctx context.Context, op string, m *models.Member) (*models.MemberView, error) {
	v := view(m)
	ms, err := s.memberships.GetByID(ctx, m.MembershipID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	v.Membership = ms
	return v, nil
}

func view(m *models.Member) *models.MemberView {
	return &models.MemberView{
		ID:           m.ID,
		Name:         m.Name,
		Surname:      m.Surname,
		Email:        m.Email,
		Phone:        m.Phone,
		MembershipID: m.MembershipID,
	}
}
