// Package auth HTTP-обработчик входа.
package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/gym-membership/internal/http/response"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// Service выполняет вход по email и паролю.
type Service interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
}

// Handler обрабатывает POST /api/auth/login.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создаёт Handler.
func New(log *slog.Logger, service Service, validate *validator.Validate) *Handler {
	return &Handler{log: log, service: service, validate: validate}
}

// Login godoc
// @Summary Вход
// @Description Проверяет email и пароль администратора или участника и выдаёт JWT.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Учётные данные"
// @Success 200 {object} response.Response{data=models.LoginResponse}
// @Failure 400 {object} response.Problem
// @Failure 401 {object} response.Problem
// @Failure 429 {object} response.Problem
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.Login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.LoginRequest
	if !response.DecodeAndValidate(w, r, log, h.validate, &req) {
		return
	}

	res, err := h.service.Login(r.Context(), req)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, res)
}
