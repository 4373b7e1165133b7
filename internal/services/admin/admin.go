// Package admin содержит операции над учётными записями администраторов.
package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-membership/internal/config"
	"github.com/magabrotheeeer/gym-membership/internal/lib/password"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// Repository методы хранилища администраторов.
type Repository interface {
	CreateAdmin(ctx context.Context, a models.Admin) error
	GetAdmins(ctx context.Context) ([]*models.Admin, error)
	GetAdminByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	UpdateAdmin(ctx context.Context, a models.Admin) error
	UpdateAdminPassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	DeleteAdmin(ctx context.Context, id uuid.UUID) error
}

// Service реализует операции над администраторами.
type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService создаёт Service.
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// GetAll возвращает всех администраторов.
func (s *Service) GetAll(ctx context.Context) ([]*models.AdminView, error) {
	const op = "admin.GetAll"
	admins, err := s.repo.GetAdmins(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	result := make([]*models.AdminView, 0, len(admins))
	for _, a := range admins {
		result = append(result, a.View())
	}
	return result, nil
}

// GetByID возвращает администратора по идентификатору.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.AdminView, error) {
	const op = "admin.GetByID"
	a, err := s.repo.GetAdminByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a.View(), nil
}

// GetByEmail возвращает администратора по email.
func (s *Service) GetByEmail(ctx context.Context, email string) (*models.AdminView, error) {
	const op = "admin.GetByEmail"
	a, err := s.repo.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a.View(), nil
}

// Create создаёт администратора с хэшированным паролем.
func (s *Service) Create(ctx context.Context, req models.AdminCreateRequest) (*models.AdminView, error) {
	const op = "admin.Create"
	hash, err := password.GetHash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	a := models.Admin{
		ID:           uuid.New(),
		Name:         req.Name,
		Surname:      req.Surname,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
	}
	if err = s.repo.CreateAdmin(ctx, a); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("created admin", slog.String("admin_id", a.ID.String()))
	return a.View(), nil
}

// Update изменяет данные администратора.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req models.AdminUpdateRequest) (*models.AdminView, error) {
	const op = "admin.Update"
	a, err := s.repo.GetAdminByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Apply(a)
	if err = s.repo.UpdateAdmin(ctx, *a); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return a.View(), nil
}

// Delete удаляет администратора.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "admin.Delete"
	if err := s.repo.DeleteAdmin(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("deleted admin", slog.String("admin_id", id.String()))
	return nil
}

// ChangePassword меняет пароль после проверки текущего.
func (s *Service) ChangePassword(ctx context.Context, id uuid.UUID, req models.PasswordUpdateRequest) error {
	const op = "admin.ChangePassword"
	a, err := s.repo.GetAdminByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = password.CompareHash(a.PasswordHash, req.CurrentPassword); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return fmt.Errorf("%s: %w", op, models.ErrWrongPassword)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	hash, err := password.GetHash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = s.repo.UpdateAdminPassword(ctx, id, hash); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// EnsureBootstrap создаёт администратора из конфига, если администратора
// с таким email ещё нет. Пустой email ничего не делает.
func (s *Service) EnsureBootstrap(ctx context.Context, cfg config.BootstrapAdmin) error {
	const op = "admin.EnsureBootstrap"
	if cfg.Email == "" {
		return nil
	}
	_, err := s.repo.GetAdminByEmail(ctx, cfg.Email)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, models.ErrNotFound):
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err = s.Create(ctx, models.AdminCreateRequest{
		Name:     cfg.Name,
		Surname:  cfg.Surname,
		Email:    cfg.Email,
		Phone:    cfg.Phone,
		Password: cfg.Password,
	}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("bootstrap admin created", slog.String("email", cfg.Email))
	return nil
}
