package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-membership/internal/models"
)

const adminColumns = `admin_id, admin_name, admin_surname, admin_email, admin_phone, password_hash`

func scanAdmin(row interface{ Scan(...any) error }) (*models.Admin, error) {
	var a models.Admin
	if err := row.Scan(&a.ID, &a.Name, &a.Surname, &a.Email, &a.Phone, &a.PasswordHash); err != nil {
		return nil, err
	}
	return &a, nil
}

// CreateAdmin сохраняет администратора. Email не должен быть занят
// ни администратором, ни участником.
func (s *Storage) CreateAdmin(ctx context.Context, a models.Admin) error {
	const op = "storage.CreateAdmin"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := lockEmail(ctx, tx, a.Email); err != nil {
			return err
		}
		if err := ensureEmailFree(ctx, tx, a.Email, uuid.Nil); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO admins (`+adminColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			a.ID, a.Name, a.Surname, a.Email, a.Phone, a.PasswordHash)
		return err
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	return nil
}

// GetAdmins возвращает всех администраторов.
func (s *Storage) GetAdmins(ctx context.Context) ([]*models.Admin, error) {
	const op = "storage.GetAdmins"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT `+adminColumns+` FROM admins ORDER BY admin_surname, admin_name`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Admin
	for rows.Next() {
		a, err := scanAdmin(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetAdminByID возвращает администратора по идентификатору.
func (s *Storage) GetAdminByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	const op = "storage.GetAdminByID"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	a, err := scanAdmin(s.DB.QueryRowContext(ctx, `SELECT `+adminColumns+` FROM admins WHERE admin_id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return a, nil
}

// GetAdminByEmail возвращает администратора по email без учёта регистра.
func (s *Storage) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	const op = "storage.GetAdminByEmail"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	a, err := scanAdmin(s.DB.QueryRowContext(ctx,
		`SELECT `+adminColumns+` FROM admins WHERE lower(admin_email) = lower($1)`, email))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return a, nil
}

// UpdateAdmin сохраняет изменённые поля администратора, кроме пароля.
func (s *Storage) UpdateAdmin(ctx context.Context, a models.Admin) error {
	const op = "storage.UpdateAdmin"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := lockEmail(ctx, tx, a.Email); err != nil {
			return err
		}
		if err := ensureEmailFree(ctx, tx, a.Email, a.ID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `
			UPDATE admins
			SET admin_name = $2, admin_surname = $3, admin_email = $4, admin_phone = $5
			WHERE admin_id = $1`,
			a.ID, a.Name, a.Surname, a.Email, a.Phone)
		if err != nil {
			return err
		}
		return affectedOrNotFound(res)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	return nil
}

// UpdateAdminPassword заменяет хэш пароля администратора.
func (s *Storage) UpdateAdminPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const op = "storage.UpdateAdminPassword"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	res, err := s.DB.ExecContext(ctx, `UPDATE admins SET password_hash = $2 WHERE admin_id = $1`, id, passwordHash)
	if err == nil {
		err = affectedOrNotFound(res)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	return nil
}

// DeleteAdmin удаляет администратора. Ссылки из планов обнуляются внешним ключом.
func (s *Storage) DeleteAdmin(ctx context.Context, id uuid.UUID) error {
	const op = "storage.DeleteAdmin"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM admins WHERE admin_id = $1`, id)
	if err == nil {
		err = affectedOrNotFound(res)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	return nil
}
