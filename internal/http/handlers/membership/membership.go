// Package membership HTTP-обработчики абонементов.
package membership

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

// Service бизнес-логика абонементов.
type Service interface {
	GetAll(ctx context.Context) ([]*models.MembershipView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.MembershipView, error)
	RenewOwn(ctx context.Context, memberID uuid.UUID, req models.MembershipUpdateRequest) (*models.MembershipView, error)
	MarkFeePaid(ctx context.Context, id uuid.UUID) error
}

// Members нужен для проверки, что абонемент принадлежит участнику.
type Members interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.MemberView, error)
}

// Handler обрабатывает /api/membership.
type Handler struct {
	log      *slog.Logger
	service  Service
	members  Members
	validate *validator.Validate
}

// New создаёт Handler.
func New(log *slog.Logger, service Service, members Members, validate *validator.Validate) *Handler {
	return &Handler{log: log, service: service, members: members, validate: validate}
}

func (h *Handler) logger(op string, r *http.Request) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

// List godoc
// @Summary Список абонементов
// @Tags Membership
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=[]models.MembershipView}
// @Success 204
// @Router /membership [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.membership.List", r)

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
// @Summary Абонемент по ID
// @Description Участник может запросить только свой абонемент.
// @Tags Membership
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID абонемента"
// @Success 200 {object} response.Response{data=models.MembershipView}
// @Failure 403 {object} response.Problem
// @Failure 404 {object} response.Problem
// @Router /membership/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.membership.Get", r)

	p, ok := middlewarectx.PrincipalFrom(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := response.UUIDParam(w, r, log, "id")
	if !ok {
		return
	}

	if p.Role != models.RoleAdmin {
		owner, err := h.members.GetByID(r.Context(), p.ID)
		if err != nil {
			response.WriteError(w, r, log, err)
			return
		}
		if owner.MembershipID != id {
			response.WriteError(w, r, log, models.ErrForbidden)
			return
		}
	}

	m, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	response.OK(w, r, http.StatusOK, m)
}

// Renew godoc
// @Summary Продлить свой абонемент
// @Description Продление возможно только после окончания текущего срока.
// @Description Стоимость и дата окончания рассчитываются по цене плана и длительности.
// @Tags Membership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.MembershipUpdateRequest true "План и длительность"
// @Success 200 {object} response.Response{data=models.MembershipView}
// @Failure 400 {object} response.Problem "Абонемент ещё действует"
// @Failure 404 {object} response.Problem
// @Router /membership [put]
func (h *Handler) Renew(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.membership.Renew", r)

	p, ok := middlewarectx.PrincipalFrom(r.Context())
	if !ok {
		response.Error(w, r, http.StatusUnauthorized, "authentication required")
		return
	}
	var req models.MembershipUpdateRequest
	if !response.DecodeAndValidate(w, r, log, h.validate, &req) {
		return
	}
	m, err := h.service.RenewOwn(r.Context(), p.ID, req)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	log.Info("membership renewed", slog.String("membership_id", m.ID.String()))
	response.OK(w, r, http.StatusOK, m)
}

// MarkPaid godoc
// @Summary Отметить оплату абонемента
// @Tags Membership
// @Security BearerAuth
// @Param id path string true "ID абонемента"
// @Success 204
// @Failure 404 {object} response.Problem
// @Router /membership/{id}/paid [patch]
func (h *Handler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	log := h.logger("handlers.membership.MarkPaid", r)

	id, ok := response.UUIDParam(w, r, log, "id")
	if !ok {
		return
	}
	if err := h.service.MarkFeePaid(r.Context(), id); err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	response.NoContent(w, r)
}
