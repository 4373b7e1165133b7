// Package response формирует единые JSON-ответы HTTP API: конверт
// {"status":"OK","data":...} для успеха и problem details для ошибок.
package response

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/gym-membership/internal/lib/pricing"
	"github.com/magabrotheeeer/gym-membership/internal/lib/sl"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

// StatusOK значение поля status успешного ответа.
const StatusOK = "OK"

// ContentTypeProblem тип содержимого ответа с ошибкой.
const ContentTypeProblem = "application/problem+json"

// Response конверт успешного ответа.
type Response struct {
	Status string `json:"status" example:"OK"`
	Data   any    `json:"data,omitempty"`
}

// Problem описание ошибки в формате RFC 7807.
type Problem struct {
	Type     string              `json:"type" example:"https://httpstatuses.io/404"`
	Title    string              `json:"title" example:"Not Found"`
	Status   int                 `json:"status" example:"404"`
	Detail   string              `json:"detail,omitempty" example:"not found"`
	Instance string              `json:"instance,omitempty" example:"/api/member/0b5b8d0e-7a9f-4a57-9d7f-8d1f4cf1f6a2"`
	Errors   map[string][]string `json:"errors,omitempty"`
}

// OKWithData возвращает успешный Response с данными.
func OKWithData(data any) Response {
	return Response{Status: StatusOK, Data: data}
}

// OK пишет успешный ответ с кодом code.
func OK(w http.ResponseWriter, r *http.Request, code int, data any) {
	render.Status(r, code)
	render.JSON(w, r, OKWithData(data))
}

// NoContent пишет 204 без тела.
func NoContent(w http.ResponseWriter, r *http.Request) {
	render.NoContent(w, r)
}

// WriteProblem пишет problem details с кодом code.
func WriteProblem(w http.ResponseWriter, r *http.Request, p Problem) {
	if p.Type == "" {
		p.Type = fmt.Sprintf("https://httpstatuses.io/%d", p.Status)
	}
	if p.Title == "" {
		p.Title = http.StatusText(p.Status)
	}
	if p.Instance == "" {
		p.Instance = r.URL.Path
	}
	render.Status(r, p.Status)
	render.JSON(problemWriter{w}, r, p)
}

// problemWriter подменяет тип содержимого, выставленный render.JSON,
// на application/problem+json перед записью заголовков.
type problemWriter struct {
	http.ResponseWriter
}

func (w problemWriter) WriteHeader(code int) {
	w.Header().Set("Content-Type", ContentTypeProblem)
	w.ResponseWriter.WriteHeader(code)
}

// Error пишет problem details с кодом code и текстом detail.
func Error(w http.ResponseWriter, r *http.Request, code int, detail string) {
	WriteProblem(w, r, Problem{Status: code, Detail: detail})
}

// StatusFor сопоставляет ошибку предметной области с HTTP-статусом.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrBadRequest),
		errors.Is(err, models.ErrMembershipStillActive),
		errors.Is(err, models.ErrWrongPassword),
		errors.Is(err, models.ErrValueOutOfRange),
		errors.Is(err, pricing.ErrUnknownDuration):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrEmailAlreadyInUse),
		errors.Is(err, models.ErrAlreadyExists),
		errors.Is(err, models.ErrPlanNotMarkedForDeletion),
		errors.Is(err, models.ErrPlanHasActiveMemberships):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// known ошибки, текст которых можно показывать клиенту.
var known = []error{
	models.ErrNotFound,
	models.ErrMembershipStillActive,
	models.ErrWrongPassword,
	models.ErrValueOutOfRange,
	pricing.ErrUnknownDuration,
	models.ErrEmailAlreadyInUse,
	models.ErrAlreadyExists,
	models.ErrPlanNotMarkedForDeletion,
	models.ErrPlanHasActiveMemberships,
	models.ErrInvalidCredentials,
	models.ErrUnauthorized,
	models.ErrForbidden,
}

// WriteError логирует ошибку и пишет соответствующий ей ответ. Внутренние
// ошибки отдаются клиенту без подробностей.
func WriteError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	code := StatusFor(err)
	detail := "internal server error"
	for _, k := range known {
		if errors.Is(err, k) {
			detail = k.Error()
			break
		}
	}
	// ErrBadRequest оборачивается только на уровне HTTP, текст безопасен.
	if errors.Is(err, models.ErrBadRequest) {
		detail = err.Error()
	}

	log = log.With(slog.String("request_id", middleware.GetReqID(r.Context())), slog.Int("status", code))
	if code >= http.StatusInternalServerError {
		log.Error("request failed", sl.Err(err))
	} else {
		log.Info("request rejected", sl.Err(err))
	}
	Error(w, r, code, detail)
}

// ValidationError пишет 400 со списком нарушений по полям.
func ValidationError(w http.ResponseWriter, r *http.Request, errs validator.ValidationErrors) {
	fields := make(map[string][]string, len(errs))
	for _, err := range errs {
		fields[err.Field()] = append(fields[err.Field()], fieldMessage(err))
	}
	WriteProblem(w, r, Problem{
		Status: http.StatusBadRequest,
		Title:  "One or more validation errors occurred.",
		Errors: fields,
	})
}

func fieldMessage(err validator.FieldError) string {
	switch err.ActualTag() {
	case "required":
		return fmt.Sprintf("field %s is a required field", err.Field())
	case "email":
		return fmt.Sprintf("field %s must be a valid email", err.Field())
	case "phone":
		return fmt.Sprintf("field %s must be a valid phone number", err.Field())
	case "strongpassword":
		return fmt.Sprintf("field %s must contain lower and upper case letters, a digit and a special character", err.Field())
	case "min":
		return fmt.Sprintf("field %s must be at least %s characters long", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("field %s must be at most %s characters long", err.Field(), err.Param())
	case "gt":
		return fmt.Sprintf("field %s must be greater than %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("field %s must be one of [%s]", err.Field(), err.Param())
	case "eqfield":
		return fmt.Sprintf("field %s must match %s", err.Field(), err.Param())
	default:
		return fmt.Sprintf("field %s is not valid", err.Field())
	}
}
