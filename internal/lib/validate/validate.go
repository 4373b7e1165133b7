// Package validate настраивает валидатор структур запросов HTTP API.
package validate

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/gym-membership/internal/lib/password"
)

var phoneRe = regexp.MustCompile(`^\+?[0-9][0-9\s\-()]{6,18}$`)

// New возвращает валидатор с правилами phone и strongpassword.
// В ошибках используются имена полей из json-тегов.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return password.IsStrong(fl.Field().String())
	})
	return v
}
