// Package auth проверяет учётные данные и выпускает токены доступа.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-membership/internal/lib/jwt"
	"github.com/magabrotheeeer/gym-membership/internal/lib/password"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// AdminRepository поиск администратора по email.
type AdminRepository interface {
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
}

// MemberRepository поиск участника по email.
type MemberRepository interface {
	GetMemberByEmail(ctx context.Context, email string) (*models.Member, error)
}

// Service отвечает за вход и проверку токенов.
type Service struct {
	admins   AdminRepository
	members  MemberRepository
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// NewService создаёт Service.
func NewService(admins AdminRepository, members MemberRepository, jwtMaker jwt.Maker, log *slog.Logger) *Service {
	return &Service{
		admins:   admins,
		members:  members,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Login ищет пользователя сначала среди администраторов, затем среди участников,
// проверяет пароль и выпускает токен с ролью найденной учётной записи.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	const op = "auth.Login"

	id, hash, role, err := s.lookup(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = password.CompareHash(hash, req.Password); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	token, err := s.jwtMaker.GenerateToken(id, req.Email, role)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("user logged in", slog.String("user_id", id.String()), slog.String("role", role))
	return &models.LoginResponse{Token: token, Role: role}, nil
}

func (s *Service) lookup(ctx context.Context, email string) (uuid.UUID, string, string, error) {
	a, err := s.admins.GetAdminByEmail(ctx, email)
	switch {
	case err == nil:
		return a.ID, a.PasswordHash, models.RoleAdmin, nil
	case !errors.Is(err, models.ErrNotFound):
		return uuid.Nil, "", "", err
	}

	m, err := s.members.GetMemberByEmail(ctx, email)
	switch {
	case err == nil:
		return m.ID, m.PasswordHash, models.RoleMember, nil
	case errors.Is(err, models.ErrNotFound):
		return uuid.Nil, "", "", models.ErrInvalidCredentials
	default:
		return uuid.Nil, "", "", err
	}
}

// ValidateToken разбирает токен и возвращает пользователя, от имени которого он выпущен.
func (s *Service) ValidateToken(token string) (*models.Principal, error) {
	const op = "auth.ValidateToken"
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, models.ErrUnauthorized, err)
	}
	id, err := claims.UserID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, models.ErrUnauthorized, err)
	}
	if claims.Role != models.RoleAdmin && claims.Role != models.RoleMember {
		return nil, fmt.Errorf("%s: %w: unknown role", op, models.ErrUnauthorized)
	}
	return &models.Principal{ID: id, Email: claims.Email, Role: claims.Role}, nil
}
