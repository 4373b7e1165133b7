// Package plan HTTP-обработчики планов абонементов.
package plan

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

// Service бизнес-логика планов.
type Service interface {
	GetAll(ctx context.Context) ([]*models.PlanView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.PlanView, error)
	Create(ctx context.Context, req models.PlanCreateRequest, adminID uuid.UUID) (*models.PlanView, error)
	Update(ctx context.Context, id uuid.UUID, req models.PlanUpdateRequest, adminID uuid.UUID) (*models.PlanView, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetForDeletion(ctx context.Context, id uuid.UUID) error
	ResetForDeletion(ctx context.Context, id uuid.UUID) error
}

// Handler обрабатывает /api/membershipPlan.
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
// @Summary Список планов
// @Tags MembershipPlan
// @Produce json
// @Success 200 {object} response.Response{data=[]models.PlanView}
// @Success 204
// @Router /membershipPlan [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.plan.List", r)

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
// @Summary План по ID
// @Tags MembershipPlan
// @Produce json
// @Param id path string true "ID плана"
// @Success 200 {object} response.Response{data=models.PlanView}
// @Failure 404 {object} response.Problem
// @Router /membershipPlan/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.plan.Get", r)

	id, ok := response.UUIDParam(w, r, log, "id")
	if !ok {
		return
	}
	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, p)
}

// Create godoc
// @Summary Создать план
// @Tags MembershipPlan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.PlanCreateRequest true "План"
// @Success 201 {object} response.Response{data=models.PlanView}
// @Failure 400 {object} response.Problem
// @Failure 409 {object} response.Problem "Имя занято"
// @Router /membershipPlan [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.plan.Create", r)

	admin, ok := middlewarectx.PrincipalFrom(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "authentication required")
		return
	}
	var req models.PlanCreateRequest
	if !response.DecodeAndValidate(w, r, log, h.validate, &req) {
		return
	}
	p, err := h.service.Create(r.Context(), req, admin.ID)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	log.Info("plan created", slog.String("plan_id", p.ID.String()))
	response.OK(w, r, http.StatusCreated, p)
}

// Update godoc
// @Summary Изменить план
// @Tags MembershipPlan
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID плана"
// @Param request body models.PlanUpdateRequest true "Новые данные"
// @Success 200 {object} response.Response{data=models.PlanView}
// @Failure 404 {object} response.Problem
// @Failure 409 {object} response.Problem
// @Router /membershipPlan/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.plan.Update", r)

	admin, ok := middlewarectx.PrincipalFrom(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := response.UUIDParam(w, r, log, "id")
	if !ok {
		return
	}
	var req models.PlanUpdateRequest
	if !response.DecodeAndValidate(w, r, log, h.validate, &req) {
		return
	}
	p, err := h.service.Update(r.Context(), id, req, admin.ID)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, p)
}

// Delete godoc
// @Summary Удалить план
// @Description План должен быть помечен на удаление и не иметь действующих абонементов.
// @Tags MembershipPlan
// @Security BearerAuth
// @Param id path string true "ID плана"
// @Success 204
// @Failure 404 {object} response.Problem
// @Failure 409 {object} response.Problem
// @Router /membershipPlan/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.plan.Delete", r)

	id, ok := response.UUIDParam(w, r, log, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	log.Info("plan deleted", slog.String("plan_id", id.String()))
	response.NoContent(w, r)
}

// SetForDeletion godoc
// @Summary Пометить план на удаление
// @Tags MembershipPlan
// @Security BearerAuth
// @Param id path string true "ID плана"
// @Success 204
// @Failure 404 {object} response.Problem
// @Router /membershipPlan/setForDeletion/{id} [patch]
func (h *Handler) SetForDeletion(w http.ResponseWriter, r *http.Request) {
	h.flag(w, r, "handlers.plan.SetForDeletion", h.service.SetForDeletion)
}

// ResetForDeletion godoc
// @Summary Снять пометку на удаление
// @Tags MembershipPlan
// @Security BearerAuth
// @Param id path string true "ID плана"
// @Success 204
// @Failure 404 {object} response.Problem
// @Router /membershipPlan/resetForDeletion/{id} [patch]
func (h *Handler) ResetForDeletion(w http.ResponseWriter, r *http.Request) {
	h.flag(w, r, "handlers.plan.ResetForDeletion", h.service.ResetForDeletion)
}

func (h *Handler) flag(w http.ResponseWriter, r *http.Request, op string, set func(context.Context, uuid.UUID) error) {
	log := h.logger(op, r)

	id, ok := response.UUIDParam(w, r, log, "id")
	if !ok {
		return
	}
	if err := set(r.Context(), id); err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	response.NoContent(w, r)
}
