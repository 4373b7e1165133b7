// Package admin HTTP-обработчики управления администраторами.
package admin

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-membership/internal/http/response"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// Service бизнес-логика администраторов.
type Service interface {
	GetAll(ctx context.Context) ([]*models.AdminView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.AdminView, error)
	GetByEmail(ctx context.Context, email string) (*models.AdminView, error)
	Create(ctx context.Context, req models.AdminCreateRequest) (*models.AdminView, error)
	Update(ctx context.Context, id uuid.UUID, req models.AdminUpdateRequest) (*models.AdminView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ChangePassword(ctx context.Context, id uuid.UUID, req models.PasswordUpdateRequest) error
}

// Handler обрабатывает /api/admin. Все маршруты доступны только администраторам.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создаёт Handler.
func New(log *slog.Logger, service Service, validate *validator.Validate) *Handler {
	return &Handler{log: log, service: service, validate: validate}
}

func (h *Handler) logger(op string, r *http.Request) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

// List godoc
// @Summary Список администраторов
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]models.AdminView}
// @Success 204 "Администраторов нет"
// @Failure 401 {object} response.Problem
// @Failure 403 {object} response.Problem
// @Router /admin [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.admin.List", r)

	list, err := h.service.GetAll(r.Context())
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	if len(list) == 0 {
		response.NoContent(w, r)
		return
	}
	response.OK(w, r, http.StatusOK, list)
}

// Get godoc
// @Summary Администратор по ID
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID администратора"
// @Success 200 {object} response.Response{data=models.AdminView}
// @Failure 400 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Router /admin/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.admin.Get", r)

	id, ok := response.UUIDParam(w, r, log, "id")
	if !ok {
		return
	}
	a, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, a)
}

// GetByEmail godoc
// @Summary Администратор по email
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param email query string true "Email"
// @Success 200 {object} response.Response{data=models.AdminView}
// @Failure 400 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Router /admin/email [get]
func (h *Handler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.admin.GetByEmail", r)

	email := r.URL.Query().Get("email")
	if email == "" {
		response.Error(w, r, http.StatusBadRequest, "email query parameter is required")
		return
	}
	a, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, a)
}

// Create godoc
// @Summary Создать администратора
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.AdminCreateRequest true "Администратор"
// @Success 201 {object} response.Response{data=models.AdminView}
// @Failure 400 {object} response.Problem
// @Failure 409 {object} response.Problem
// @Router /admin [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.admin.Create", r)

	var req models.AdminCreateRequest
	if !response.DecodeAndValidate(w, r, log, h.validate, &req) {
		return
	}
	a, err := h.service.Create(r.Context(), req)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	log.Info("admin created", slog.String("admin_id", a.ID.String()))
	response.OK(w, r, http.StatusCreated, a)
}

// Update godoc
// @Summary Изменить администратора
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID администратора"
// @Param request body models.AdminUpdateRequest true "Новые данные"
// @Success 200 {object} response.Response{data=models.AdminView}
// @Failure 400 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Failure 409 {object} response.Problem
// @Router /admin/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.admin.Update", r)

	id, ok := response.UUIDParam(w, r, log, "id")
	if !ok {
		return
	}
	var req models.AdminUpdateRequest
	if !response.DecodeAndValidate(w, r, log, h.validate, &req) {
		return
	}
	a, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, a)
}

// Delete godoc
// @Summary Удалить администратора
// @Description Планы, которые он последним изменял, остаются без автора.
// @Tags Admin
// @Security BearerAuth
// @Param id path string true "ID администратора"
// @Success 204
// @Failure 404 {object} response.Problem
// @Router /admin/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.admin.Delete", r)

	id, ok := response.UUIDParam(w, r, log, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	log.Info("admin deleted", slog.String("admin_id", id.String()))
	response.NoContent(w, r)
}

// ChangePassword godoc
// @Summary Сменить пароль администратора
// @Tags Admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "ID администратора"
// @Param request body models.PasswordUpdateRequest true "Пароли"
// @Success 204
// @Failure 400 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Router /admin/{id}/password [patch]
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.admin.ChangePassword", r)

	id, ok := response.UUIDParam(w, r, log, "id")
	if !ok {
		return
	}
	var req models.PasswordUpdateRequest
	if !response.DecodeAndValidate(w, r, log, h.validate, &req) {
		return
	}
	if err := h.service.ChangePassword(r.Context(), id, req); err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	response.NoContent(w, r)
}
