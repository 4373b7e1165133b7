package models

import "github.com/google/uuid"

// LoginRequest учётные данные для входа.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse выданный токен и роль пользователя.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Principal аутентифицированный пользователь, извлечённый из токена.
type Principal struct {
	ID    uuid.UUID
	Email string
	Role  string
}
