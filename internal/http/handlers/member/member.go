// Package member HTTP-обработчики участников клуба.
package member

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-membership/internal/http/middlewarectx"
	"github.com/magabrotheeeer/gym-membership/internal/http/response"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// Service бизнес-логика участников.
type Service interface {
	Register(ctx context.Context, req models.MemberCreateRequest) (*models.MemberView, error)
	GetAll(ctx context.Context) ([]*models.MemberView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.MemberView, error)
	GetByEmail(ctx context.Context, email string) (*models.MemberView, error)
	GetByMembershipID(ctx context.Context, membershipID uuid.UUID) (*models.MemberView, error)
	Update(ctx context.Context, id uuid.UUID, req models.MemberUpdateRequest) (*models.MemberView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ChangePassword(ctx context.Context, id uuid.UUID, req models.PasswordUpdateRequest) error
}

// Handler обрабатывает /api/member.
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

// principal пользователь запроса. Маршруты с этим вызовом стоят за JWTMiddleware.
func principal(w http.ResponseWriter, r *http.Request) (*models.Principal, bool) {
	p, ok := middlewarectx.PrincipalFrom(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "authentication required")
	}
	return p, ok
}

// Register godoc
// @Summary Регистрация участника
// @Description Создаёт участника и его абонемент в одной транзакции.
// @Tags Member
// @Accept json
// @Produce json
// @Param request body models.MemberCreateRequest true "Участник и выбранный план"
// @Success 201 {object} response.Response{data=models.MemberView}
// @Failure 400 {object} response.Problem
// @Failure 404 {object} response.Problem "План не найден"
// @Failure 409 {object} response.Problem "Email занят"
// @Router /member [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.member.Register", r)

	var req models.MemberCreateRequest
	if !response.DecodeAndValidate(w, r, log, h.validate, &req) {
		return
	}
	m, err := h.service.Register(r.Context(), req)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	log.Info("member registered", slog.String("member_id", m.ID.String()))
	response.OK(w, r, http.StatusCreated, m)
}

// List godoc
// @Summary Список участников
// @Tags Member
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]models.MemberView}
// @Success 204
// @Router /member [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.member.List", r)

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

// MyInfo godoc
// @Summary Профиль текущего участника
// @Tags Member
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=models.MemberView}
// @Router /member/myInfo [get]
func (h *Handler) MyInfo(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.member.MyInfo", r)

	p, ok := principal(w, r)
	if !ok {
		return
	}
	m, err := h.service.GetByID(r.Context(), p.ID)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, m)
}

// Get godoc
// @Summary Участник по ID
// @Description Участник может запросить только себя.
// @Tags Member
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID участника"
// @Success 200 {object} response.Response{data=models.MemberView}
// @Failure 403 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Router /member/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.member.Get", r)

	p, ok := principal(w, r)
	if !ok {
		return
	}
	id, ok := response.UUIDParam(w, r, log, "id")
	if !ok {
		return
	}
	if p.Role != models.RoleAdmin && p.ID != id {
		response.WriteError(w, r, log, models.ErrForbidden)
		return
	}
	m, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, m)
}

// GetByMembership godoc
// @Summary Участник по абонементу
// @Tags Member
// @Produce json
// @Security BearerAuth
// @Param membershipId query string true "ID абонемента"
// @Success 200 {object} response.Response{data=models.MemberView}
// @Router /member/membership [get]
func (h *Handler) GetByMembership(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.member.GetByMembership", r)

	id, ok := response.UUIDQuery(w, r, log, "membershipId")
	if !ok {
		return
	}
	m, err := h.service.GetByMembershipID(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, m)
}

// GetByEmail godoc
// @Summary Участник по email
// @Tags Member
// @Produce json
// @Security BearerAuth
// @Param email query string true "Email"
// @Success 200 {object} response.Response{data=models.MemberView}
// @Router /member/email [get]
func (h *Handler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.member.GetByEmail", r)

	email := r.URL.Query().Get("email")
	if email == "" {
		response.Error(w, r, http.StatusBadRequest, "email query parameter is required")
		return
	}
	m, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, m)
}

// Update godoc
// @Summary Изменить свои данные
// @Tags Member
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.MemberUpdateRequest true "Новые данные"
// @Success 200 {object} response.Response{data=models.MemberView}
// @Failure 409 {object} response.Problem
// @Router /member [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.member.Update", r)

	p, ok := principal(w, r)
	if !ok {
		return
	}
	var req models.MemberUpdateRequest
	if !response.DecodeAndValidate(w, r, log, h.validate, &req) {
		return
	}
	m, err := h.service.Update(r.Context(), p.ID, req)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, m)
}

// Delete godoc
// @Summary Удалить свою учётную запись
// @Description Абонемент участника удаляется вместе с ним.
// @Tags Member
// @Security BearerAuth
// @Success 204
// @Router /member [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.member.Delete", r)

	p, ok := principal(w, r)
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), p.ID); err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	log.Info("member deleted", slog.String("member_id", p.ID.String()))
	response.NoContent(w, r)
}

// ChangePassword godoc
// @Summary Сменить свой пароль
// @Tags Member
// @Accept json
// @Security BearerAuth
// @Param request body models.PasswordUpdateRequest true "Пароли"
// @Success 204
// @Failure 400 {object} response.Problem
// @Router /member [patch]
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.member.ChangePassword", r)

	p, ok := principal(w, r)
	if !ok {
		return
	}
	var req models.PasswordUpdateRequest
	if !response.DecodeAndValidate(w, r, log, h.validate, &req) {
		return
	}
	if err := h.service.ChangePassword(r.Context(), p.ID, req); err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	response.NoContent(w, r)
}
