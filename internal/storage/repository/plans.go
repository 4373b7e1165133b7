package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-membership/internal/models"
)

const planColumns = `plan_id, plan_name, plan_description, plan_price, for_deletion, admin_id`

func scanPlan(row interface{ Scan(...any) error }) (*models.MembershipPlan, error) {
	var (
		p       models.MembershipPlan
		adminID uuid.NullUUID
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ForDeletion, &adminID); err != nil {
		return nil, err
	}
	if adminID.Valid {
		p.AdminID = &adminID.UUID
	}
	return &p, nil
}

// CreatePlan сохраняет план. Повтор названия возвращает ErrAlreadyExists.
func (s *Storage) CreatePlan(ctx context.Context, p models.MembershipPlan) error {
	const op = "storage.CreatePlan"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO membership_plans (`+planColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.Name, p.Description, p.Price, p.ForDeletion, nullUUID(p.AdminID))
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	return nil
}

// GetPlans возвращает все планы.
func (s *Storage) GetPlans(ctx context.Context) ([]*models.MembershipPlan, error) {
	const op = "storage.GetPlans"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT `+planColumns+` FROM membership_plans ORDER BY plan_price, plan_name`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.MembershipPlan
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// GetPlanByID возвращает план по идентификатору.
func (s *Storage) GetPlanByID(ctx context.Context, id uuid.UUID) (*models.MembershipPlan, error) {
	const op = "storage.GetPlanByID"
	if err := checkCtx(ctx, op); err != nil {
		return nil, err
	}

	p, err := scanPlan(s.DB.QueryRowContext(ctx, `SELECT `+planColumns+` FROM membership_plans WHERE plan_id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return p, nil
}

// UpdatePlan сохраняет название, описание, цену и последнего редактора плана.
func (s *Storage) UpdatePlan(ctx context.Context, p models.MembershipPlan) error {
	const op = "storage.UpdatePlan"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	res, err := s.DB.ExecContext(ctx, `
		UPDATE membership_plans
		SET plan_name = $2, plan_description = $3, plan_price = $4, admin_id = $5
		WHERE plan_id = $1`,
		p.ID, p.Name, p.Description, p.Price, nullUUID(p.AdminID))
	if err == nil {
		err = affectedOrNotFound(res)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	return nil
}

// SetPlanForDeletion устанавливает флаг for_deletion в указанное значение.
func (s *Storage) SetPlanForDeletion(ctx context.Context, id uuid.UUID, forDeletion bool) error {
	const op = "storage.SetPlanForDeletion"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	res, err := s.DB.ExecContext(ctx, `UPDATE membership_plans SET for_deletion = $2 WHERE plan_id = $1`, id, forDeletion)
	if err == nil {
		err = affectedOrNotFound(res)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapError(err))
	}
	return nil
}

// HasActiveMemberships сообщает, есть ли у плана абонементы со сроком
// окончания не раньше now.
func (s *Storage) HasActiveMemberships(ctx context.Context, planID uuid.UUID, now time.Time) (bool, error) {
	const op = "storage.HasActiveMemberships"
	if err := checkCtx(ctx, op); err != nil {
		return false, err
	}

	var exists bool
	err := s.DB.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM memberships WHERE membership_plan_id = $1 AND membership_to >= $2
		)`, planID, now).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// DeletePlan удаляет план, если он помечен на удаление и на нём нет активных
// абонементов на момент now. Условия проверяются в том же запросе DELETE,
// при их нарушении возвращается соответствующая доменная ошибка.
func (s *Storage) DeletePlan(ctx context.Context, id uuid.UUID, now time.Time) error {
	const op = "storage.DeletePlan"
	if err := checkCtx(ctx, op); err != nil {
		return err
	}

	res, err := s.DB.ExecContext(ctx, `
		DELETE FROM membership_plans p
		WHERE p.plan_id = $1
		  AND p.for_deletion
		  AND NOT EXISTS (
		      SELECT 1 FROM memberships ms
		      WHERE ms.membership_plan_id = p.plan_id AND ms.membership_to >= $2
		  )`, id, now)
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

	p, err := s.GetPlanByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !p.ForDeletion {
		return fmt.Errorf("%s: %w", op, models.ErrPlanNotMarkedForDeletion)
	}
	return fmt.Errorf("%s: %w", op, models.ErrPlanHasActiveMemberships)
}
