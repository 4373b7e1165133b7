package models

import "github.com/google/uuid"

// MembershipPlan план абонемента с ценой за месяц.
type MembershipPlan struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	ForDeletion bool
	AdminID     *uuid.UUID // администратор, последним изменивший план
}

// PlanView план в ответах API.
type PlanView struct {
	ID          uuid.UUID  `json:"plan_id"`
	Name        string     `json:"plan_name"`
	Description string     `json:"plan_description"`
	Price       float64    `json:"plan_price"`
	ForDeletion bool       `json:"for_deletion"`
	AdminID     *uuid.UUID `json:"admin_id"`
	Admin       *AdminView `json:"admin,omitempty"`
}

// View возвращает представление плана без администратора.
func (p *MembershipPlan) View() *PlanView {
	if p == nil {
		return nil
	}
	return &PlanView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ForDeletion: p.ForDeletion,
		AdminID:     p.AdminID,
	}
}

// PlanCreateRequest создание плана.
type PlanCreateRequest struct {
	Name        string  `json:"plan_name" validate:"required,max=100"`
	Description string  `json:"plan_description" validate:"required,max=500"`
	Price       float64 `json:"plan_price" validate:"required,gt=0,lte=1000000"`
}

// PlanUpdateRequest изменение плана. Пустое описание и нулевая цена
// оставляют сохранённые значения.
type PlanUpdateRequest struct {
	Name        string  `json:"plan_name" validate:"required,max=100"`
	Description string  `json:"plan_description" validate:"max=500"`
	Price       float64 `json:"plan_price" validate:"omitempty,gt=0,lte=1000000"`
}

// Apply копирует поля запроса в сущность.
func (r PlanUpdateRequest) Apply(p *MembershipPlan) {
	p.Name = r.Name
	if r.Description != "" {
		p.Description = r.Description
	}
	if r.Price > 0 {
		p.Price = r.Price
	}
}
