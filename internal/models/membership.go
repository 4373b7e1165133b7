package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-membership/internal/lib/pricing"
)

// Membership абонемент участника. From, To и Fee всегда рассчитываются
// по тарифной сетке и не задаются пользователем.
type Membership struct {
	ID        uuid.UUID
	From      time.Time
	To        time.Time
	Duration  pricing.Duration
	Fee       float64
	IsFeePaid bool
	PlanID    *uuid.UUID // nil, если план удалён
}

// MembershipView абонемент в ответах API вместе с планом.
type MembershipView struct {
	ID        uuid.UUID        `json:"membership_id"`
	From      time.Time        `json:"membership_from"`
	To        time.Time        `json:"membership_to"`
	Duration  pricing.Duration `json:"plan_duration"`
	Fee       float64          `json:"membership_fee"`
	IsFeePaid bool             `json:"is_fee_paid"`
	PlanID    *uuid.UUID       `json:"membership_plan_id"`
	Plan      *PlanView        `json:"membership_plan,omitempty"`
}

// View возвращает представление абонемента без плана.
func (m *Membership) View() *MembershipView {
	if m == nil {
		return nil
	}
	return &MembershipView{
		ID:        m.ID,
		From:      m.From,
		To:        m.To,
		Duration:  m.Duration,
		Fee:       m.Fee,
		IsFeePaid: m.IsFeePaid,
		PlanID:    m.PlanID,
	}
}

// MembershipCreateRequest выбор плана и длительности при регистрации.
type MembershipCreateRequest struct {
	Duration pricing.Duration `json:"plan_duration" validate:"required,oneof=1 3 6 12"`
	PlanID   uuid.UUID        `json:"membership_plan_id" validate:"required"`
}

// MembershipUpdateRequest продление абонемента.
type MembershipUpdateRequest struct {
	Duration pricing.Duration `json:"plan_duration" validate:"required,oneof=1 3 6 12"`
	PlanID   uuid.UUID        `json:"membership_plan_id" validate:"required"`
}

// ExpiringMembership абонемент, срок которого скоро закончится,
// с контактами участника. Публикуется в очередь уведомлений.
type ExpiringMembership struct {
	MembershipID uuid.UUID `json:"membership_id"`
	MemberName   string    `json:"member_name"`
	Email        string    `json:"email"`
	PlanName     string    `json:"plan_name"`
	To           time.Time `json:"membership_to"`
	Fee          float64   `json:"membership_fee"`
	IsFeePaid    bool      `json:"is_fee_paid"`
}
