package response

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// DecodeAndValidate читает JSON-тело в dst и проверяет его валидатором.
// При ошибке пишет ответ сам и возвращает false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, log *slog.Logger, v *validator.Validate, dst any) bool {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		if errors.Is(err, io.EOF) {
			WriteError(w, r, log, fmt.Errorf("%w: empty request body", models.ErrBadRequest))
			return false
		}
		WriteError(w, r, log, fmt.Errorf("%w: malformed json: %w", models.ErrBadRequest, err))
		return false
	}
	if err := v.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			log.Info("invalid request", slog.String("errors", verrs.Error()))
			ValidationError(w, r, verrs)
			return false
		}
		WriteError(w, r, log, fmt.Errorf("%w: %w", models.ErrBadRequest, err))
		return false
	}
	return true
}

// UUIDParam разбирает параметр маршрута name как UUID.
// При ошибке пишет 400 и возвращает false.
func UUIDParam(w http.ResponseWriter, r *http.Request, log *slog.Logger, name string) (uuid.UUID, bool) {
	return parseUUID(w, r, log, name, chi.URLParam(r, name))
}

// UUIDQuery разбирает параметр строки запроса name как UUID.
func UUIDQuery(w http.ResponseWriter, r *http.Request, log *slog.Logger, name string) (uuid.UUID, bool) {
	return parseUUID(w, r, log, name, r.URL.Query().Get(name))
}

func parseUUID(w http.ResponseWriter, r *http.Request, log *slog.Logger, name, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		WriteError(w, r, log, fmt.Errorf("%w: %s must be a uuid", models.ErrBadRequest, name))
		return uuid.Nil, false
	}
	return id, true
}
