package models

import "github.com/google/uuid"

// Member участник клуба. У каждого участника ровно один абонемент.
type Member struct {
	ID           uuid.UUID
	Name         string
	Surname      string
	Email        string
	Phone        string
	PasswordHash string
	MembershipID uuid.UUID
}

// MemberView участник в ответах API вместе с абонементом.
type MemberView struct {
	ID           uuid.UUID       `json:"member_id"`
	Name         string          `json:"member_name"`
	Surname      string          `json:"member_surname"`
	Email        string          `json:"member_email"`
	Phone        string          `json:"member_phone"`
	MembershipID uuid.UUID       `json:"membership_id"`
	Membership   *MembershipView `json:"membership,omitempty"`
}

// MemberCreateRequest регистрация участника вместе с выбором плана и длительности.
type MemberCreateRequest struct {
	Name       string                  `json:"member_name" validate:"required,max=100"`
	Surname    string                  `json:"member_surname" validate:"required,max=100"`
	Email      string                  `json:"member_email" validate:"required,email,max=100"`
	Phone      string                  `json:"member_phone" validate:"required,phone"`
	Password   string                  `json:"member_password" validate:"required,min=8,max=72,strongpassword"`
	Membership MembershipCreateRequest `json:"membership"`
}

// MemberUpdateRequest изменение данных участника. Телефон необязателен:
// пустое значение оставляет сохранённый номер.
type MemberUpdateRequest struct {
	Name    string `json:"member_name" validate:"required,max=100"`
	Surname string `json:"member_surname" validate:"required,max=100"`
	Email   string `json:"member_email" validate:"required,email,max=100"`
	Phone   string `json:"member_phone" validate:"omitempty,phone"`
}

// Apply копирует поля запроса в сущность.
func (r MemberUpdateRequest) Apply(m *Member) {
	m.Name = r.Name
	m.Surname = r.Surname
	m.Email = r.Email
	if r.Phone != "" {
		m.Phone = r.Phone
	}
}
