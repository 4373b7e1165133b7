// Package middlewarectx содержит HTTP middleware: проверку JWT, проверку роли,
// ограничение частоты запросов и сбор метрик.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/gym-membership/internal/http/response"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

type key string

const principalKey key = "principal"

// TokenValidator проверяет токен доступа.
type TokenValidator interface {
	ValidateToken(token string) (*models.Principal, error)
}

// WithPrincipal кладёт пользователя в контекст.
func WithPrincipal(ctx context.Context, p *models.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFrom достаёт пользователя, положенного JWTMiddleware.
func PrincipalFrom(ctx context.Context) (*models.Principal, bool) {
	p, ok := ctx.Value(principalKey).(*models.Principal)
	return p, ok && p != nil
}

// JWTMiddleware проверяет Bearer-токен в заголовке Authorization и кладёт
// пользователя в контекст запроса. Без валидного токена отвечает 401.
func JWTMiddleware(tokens TokenValidator, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"
			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				log.Info("missing or invalid authorization header")
				response.Error(w, r, http.StatusUnauthorized, "missing or invalid authorization header")
				return
			}

			p, err := tokens.ValidateToken(token)
			if err != nil {
				log.Info("invalid or expired token", sl.Err(err))
				response.Error(w, r, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// RequireRole пропускает только пользователей с одной из ролей roles.
// Должен стоять после JWTMiddleware.
func RequireRole(log *slog.Logger, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFrom(r.Context())
			if !ok {
				response.Error(w, r, http.StatusUnauthorized, "authentication required")
				return
			}
			if !slices.Contains(roles, p.Role) {
				log.Info("role not allowed",
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("role", p.Role),
					slog.String("path", r.URL.Path))
				response.Error(w, r, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
