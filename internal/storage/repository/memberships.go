package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-membership/internal/models"
)

const membershipColumns = `membership_id, membership_from, membership_to, plan_duration,
	membership_fee, is_fee_paid, membership_plan_id`

func scanMembership(row interface{ Scan(...any) error }) (*models.Membership, error) {
	var (
		m      models.Membership
		planID uuid.NullUUID
	)
	if err := row.Scan(&m.ID, &m.From, &m.To, &m.Duration, &m.Fee, &m.IsFeePaid, &planID); err != nil {
		return nil, err
	}
	if planID.Valid {
		m.PlanID = &planID.UUID
	}
	return &m, nil
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func insertMembership(ctx context.Context, q querier, m models.Membership) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO memberships (`+membershipColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.From, m.To, int(m.Duration), m.Fee, m.IsFeePaid, nullUUID(m.PlanID))
	return err
}

// GetMemberships возвращает все абонементы.
func (s *Storage) GetMemberships(ctx context.Context) ([]*models.Membership, error) {
	const op = "storage.GetMemberships"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT `+membershipColumns+` FROM memberships ORDER BY membership_to`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
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

// GetMembershipByID возвращает абонемент по идентификатору.
func (s *Storage) GetMembershipByID(ctx context.Context, id uuid.UUID) (*models.Membership, error) {
	const op = "storage.GetMembershipByID"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	m, err := scanMembership(s.DB.QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE membership_id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return m, nil
}

// RenewMembership перезаписывает срок, стоимость и план абонемента, только если
// текущий срок уже закончился к моменту now. Если абонемент ещё активен,
// возвращает ErrMembershipStillActive, если его нет, ErrNotFound.
func (s *Storage) RenewMembership(ctx context.Context, m models.Membership, now time.Time) error {
	const op = "storage.RenewMembership"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	res, err := s.DB.ExecContext(ctx, `
		UPDATE memberships
		SET membership_from = $2, membership_to = $3, plan_duration = $4,
		    membership_fee = $5, is_fee_paid = FALSE, membership_plan_id = $6
		WHERE membership_id = $1 AND membership_to <= $7`,
		m.ID, m.From, m.To, int(m.Duration), m.Fee, nullUUID(m.PlanID), now)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n > 0 {
		return nil
	}

	var exists bool
	if err = s.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM memberships WHERE membership_id = $1)`, m.ID).Scan(&exists); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, models.ErrMembershipStillActive)
}

// SetFeePaid отмечает оплату абонемента.
func (s *Storage) SetFeePaid(ctx context.Context, id uuid.UUID, paid bool) error {
	const op = "storage.SetFeePaid"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	res, err := s.DB.ExecContext(ctx, `UPDATE memberships SET is_fee_paid = $2 WHERE membership_id = $1`, id, paid)
	if err == nil {
		err = affectedOrNotFound(res)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	return nil
}

// ExpiringBetween возвращает абонементы, срок которых заканчивается
// в интервале [from, to), вместе с контактами участника и названием плана.
func (s *Storage) ExpiringBetween(ctx context.Context, from, to time.Time) ([]*models.ExpiringMembership, error) {
	const op = "storage.ExpiringBetween"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, `
		SELECT ms.membership_id, m.member_name || ' ' || m.member_surname, m.member_email,
		       COALESCE(p.plan_name, ''), ms.membership_to, ms.membership_fee, ms.is_fee_paid
		FROM memberships ms
		JOIN members m ON m.membership_id = ms.membership_id
		LEFT JOIN membership_plans p ON p.plan_id = ms.membership_plan_id
		WHERE ms.membership_to >= $1 AND ms.membership_to < $2
		ORDER BY ms.membership_to`, from, to)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.ExpiringMembership
	for rows.Next() {
		var e models.ExpiringMembership
		if err = rows.Scan(&e.MembershipID, &e.MemberName, &e.Email, &e.PlanName, &e.To, &e.Fee, &e.IsFeePaid); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
