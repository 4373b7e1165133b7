package gymmembership

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	// регистрирует описание API для /docs
	_ "github.com/magabrotheeeer/gym-membership/docs"
	"github.com/magabrotheeeer/gym-membership/internal/http/handlers/admin"
	"github.com/magabrotheeeer/gym-membership/internal/http/handlers/auth"
	"github.com/magabrotheeeer/gym-membership/internal/http/handlers/health"
	"github.com/magabrotheeeer/gym-membership/internal/http/handlers/member"
	"github.com/magabrotheeeer/gym-membership/internal/http/handlers/membership"
	"github.com/magabrotheeeer/gym-membership/internal/http/handlers/plan"
	"github.com/magabrotheeeer/gym-membership/internal/http/middlewarectx"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// Handlers обработчики и зависимости, из которых собираются маршруты.
type Handlers struct {
	Auth       *auth.Handler
	Health     *health.Handler
	Admin      *admin.Handler
	Member     *member.Handler
	Membership *membership.Handler
	Plan       *plan.Handler
	Tokens     middlewarectx.TokenValidator
	Limiter    *middlewarectx.IPRateLimiter
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, h Handlers) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.Metrics,
	)

	authn := middlewarectx.JWTMiddleware(h.Tokens, logger)
	adminOnly := middlewarectx.RequireRole(logger, models.RoleAdmin)
	memberOnly := middlewarectx.RequireRole(logger, models.RoleMember)
	anyRole := middlewarectx.RequireRole(logger, models.RoleAdmin, models.RoleMember)

	r.Route("/api", func(r chi.Router) {
		r.With(middlewarectx.RateLimitMiddleware(h.Limiter, logger)).Post("/auth/login", h.Auth.Login)

		r.Route("/admin", func(r chi.Router) {
			r.Use(authn, adminOnly)
			r.Get("/", h.Admin.List)
			r.Post("/", h.Admin.Create)
			r.Get("/email", h.Admin.GetByEmail)
			r.Get("/{id}", h.Admin.Get)
			r.Put("/{id}", h.Admin.Update)
			r.Delete("/{id}", h.Admin.Delete)
			r.Patch("/{id}/password", h.Admin.ChangePassword)
		})

		r.Route("/member", func(r chi.Router) {
			r.Post("/", h.Member.Register)
			r.Group(func(r chi.Router) {
				r.Use(authn)
				r.With(adminOnly).Get("/", h.Member.List)
				r.With(adminOnly).Get("/membership", h.Member.GetByMembership)
				r.With(adminOnly).Get("/email", h.Member.GetByEmail)
				r.With(memberOnly).Get("/myInfo", h.Member.MyInfo)
				r.With(anyRole).Get("/{id}", h.Member.Get)
				r.With(memberOnly).Put("/", h.Member.Update)
				r.With(memberOnly).Delete("/", h.Member.Delete)
				r.With(memberOnly).Patch("/", h.Member.ChangePassword)
			})
		})

		r.Route("/membership", func(r chi.Router) {
			r.Use(authn)
			r.With(adminOnly).Get("/", h.Membership.List)
			r.With(anyRole).Get("/{id}", h.Membership.Get)
			r.With(memberOnly).Put("/", h.Membership.Renew)
			r.With(adminOnly).Patch("/{id}/paid", h.Membership.MarkPaid)
		})

		r.Route("/membershipPlan", func(r chi.Router) {
			r.Get("/", h.Plan.List)
			r.Get("/{id}", h.Plan.Get)
			r.Group(func(r chi.Router) {
				r.Use(authn, adminOnly)
				r.Post("/", h.Plan.Create)
				r.Put("/{id}", h.Plan.Update)
				r.Delete("/{id}", h.Plan.Delete)
				r.Patch("/setForDeletion/{id}", h.Plan.SetForDeletion)
				r.Patch("/resetForDeletion/{id}", h.Plan.ResetForDeletion)
			})
		})
	})

	r.Method(http.MethodGet, "/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
