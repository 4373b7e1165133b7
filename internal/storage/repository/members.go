package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-membership/internal/models"
)

const memberColumns = `member_id, member_name, member_surname, member_email, member_phone, password_hash, membership_id`

func scanMember(row interface{ Scan(...any) error }) (*models.Member, error) {
	var m models.Member
	if err := row.Scan(&m.ID, &m.Name, &m.Surname, &m.Email, &m.Phone, &m.PasswordHash, &m.MembershipID); err != nil {
		return nil, err
	}
	return &m, nil
}

// RegisterMember в одной транзакции сохраняет абонемент и участника.
func (s *Storage) RegisterMember(ctx context.Context, member models.Member, membership models.Membership) error {
	const op = "storage.RegisterMember"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := lockEmail(ctx, tx, member.Email); err != nil {
			return err
		}
		if err := ensureEmailFree(ctx, tx, member.Email, uuid.Nil); err != nil {
			return err
		}
		if err := insertMembership(ctx, tx, membership); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO members (`+memberColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			member.ID, member.Name, member.Surname, member.Email, member.Phone,
			member.PasswordHash, membership.ID)
		return err
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	return nil
}

// GetMembers возвращает всех участников.
func (s *Storage) GetMembers(ctx context.Context) ([]*models.Member, error) {
	const op = "storage.GetMembers"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT `+memberColumns+` FROM members ORDER BY member_surname, member_name`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

func (s *Storage) getMemberBy(ctx context.Context, op, where string, arg any) (*models.Member, error) {
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}
	m, err := scanMember(s.DB.QueryRowContext(ctx, `SELECT `+memberColumns+` FROM members WHERE `+where, arg))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return m, nil
}

// GetMemberByID возвращает участника по идентификатору.
func (s *Storage) GetMemberByID(ctx context.Context, id uuid.UUID) (*models.Member, error) {
	return s.getMemberBy(ctx, "storage.GetMemberByID", `member_id = $1`, id)
}

// GetMemberByEmail возвращает участника по email без учёта регистра.
func (s *Storage) GetMemberByEmail(ctx context.Context, email string) (*models.Member, error) {
	return s.getMemberBy(ctx, "storage.GetMemberByEmail", `lower(member_email) = lower($1)`, email)
}

// GetMemberByMembershipID возвращает владельца абонемента.
func (s *Storage) GetMemberByMembershipID(ctx context.Context, membershipID uuid.UUID) (*models.Member, error) {
	return s.getMemberBy(ctx, "storage.GetMemberByMembershipID", `membership_id = $1`, membershipID)
}

// UpdateMember сохраняет изменённые поля участника, кроме пароля и абонемента.
func (s *Storage) UpdateMember(ctx context.Context, m models.Member) error {
	const op = "storage.UpdateMember"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if err := lockEmail(ctx, tx, m.Email); err != nil {
			return err
		}
		if err := ensureEmailFree(ctx, tx, m.Email, m.ID); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `
			UPDATE members
			SET member_name = $2, member_surname = $3, member_email = $4, member_phone = $5
			WHERE member_id = $1`,
			m.ID, m.Name, m.Surname, m.Email, m.Phone)
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

// UpdateMemberPassword заменяет хэш пароля участника.
func (s *Storage) UpdateMemberPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const op = "storage.UpdateMemberPassword"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	res, err := s.DB.ExecContext(ctx, `UPDATE members SET password_hash = $2 WHERE member_id = $1`, id, passwordHash)
	if err == nil {
		err = affectedOrNotFound(res)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	return nil
}

// DeleteMember в одной транзакции удаляет участника и его абонемент.
func (s *Storage) DeleteMember(ctx context.Context, id uuid.UUID) error {
	const op = "storage.DeleteMember"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var membershipID uuid.UUID
		if err := tx.QueryRowContext(ctx,
			`DELETE FROM members WHERE member_id = $1 RETURNING membership_id`, id).Scan(&membershipID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM memberships WHERE membership_id = $1`, membershipID)
		return err
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	return nil
}
