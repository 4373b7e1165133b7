// Package models содержит доменные структуры приложения: администраторов,
// участников, абонементы и планы, а также структуры запросов и ответов HTTP API.
package models

import "github.com/google/uuid"

// Admin администратор клуба. Хранится в таблице admins.
type Admin struct {
	ID           uuid.UUID
	Name         string
	Surname      string
	Email        string
	Phone        string
	PasswordHash string
}

// AdminView представление администратора в ответах API, без хэша пароля.
type AdminView struct {
	ID      uuid.UUID `json:"admin_id"`
	Name    string    `json:"admin_name"`
	Surname string    `json:"admin_surname"`
	Email   string    `json:"admin_email"`
	Phone   string    `json:"admin_phone"`
}

// View возвращает представление администратора для ответа API.
func (a *Admin) View() *AdminView {
	if a == nil {
		return nil
	}
	return &AdminView{
		ID:      a.ID,
		Name:    a.Name,
		Surname: a.Surname,
		Email:   a.Email,
		Phone:   a.Phone,
	}
}

// AdminCreateRequest тело запроса на создание администратора.
type AdminCreateRequest struct {
	Name     string `json:"admin_name" validate:"required,max=100"`
	Surname  string `json:"admin_surname" validate:"required,max=100"`
	Email    string `json:"admin_email" validate:"required,email,max=100"`
	Phone    string `json:"admin_phone" validate:"required,phone"`
	Password string `json:"admin_password" validate:"required,min=8,max=72,strongpassword"`
}

// AdminUpdateRequest тело запроса на изменение данных администратора.
type AdminUpdateRequest struct {
	Name    string `json:"admin_name" validate:"required,max=100"`
	Surname string `json:"admin_surname" validate:"required,max=100"`
	Email   string `json:"admin_email" validate:"required,email,max=100"`
	Phone   string `json:"admin_phone" validate:"required,phone"`
}

// Apply копирует поля запроса в сущность.
func (r AdminUpdateRequest) Apply(a *Admin) {
	a.Name = r.Name
	a.Surname = r.Surname
	a.Email = r.Email
	a.Phone = r.Phone
}

// PasswordUpdateRequest смена пароля администратором или участником.
type PasswordUpdateRequest struct {
	CurrentPassword    string `json:"current_password" validate:"required"`
	NewPassword        string `json:"new_password" validate:"required,min=8,max=72,strongpassword"`
	ConfirmNewPassword string `json:"confirm_new_password" validate:"required,eqfield=NewPassword"`
}
