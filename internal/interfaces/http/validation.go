package http

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestor-sucursal/internal/domain/entity"
	"github.com/jhoicas/gestor-sucursal/internal/domain/schedule"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := schedule.ParseHHMM(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		d := fl.Field().Int()
		return d >= 0 && d <= 6
	})
	_ = v.RegisterValidation("shift", func(fl validator.FieldLevel) bool {
		return entity.Shift(fl.Field().String()).Valid()
	})
	return v
}

// bindJSON parsea el cuerpo y valida las etiquetas validate.
func bindJSON(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return badRequest("INVALID_BODY", "cuerpo inválido")
	}
	return validateStruct(out)
}

// bindQuery parsea y valida los parámetros de query.
func bindQuery(c *fiber.Ctx, out any) error {
	if err := c.QueryParser(out); err != nil {
		return badRequest("INVALID_QUERY", "parámetros inválidos")
	}
	return validateStruct(out)
}

func validateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return badRequest("VALIDATION", err.Error())
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return badRequest("VALIDATION", strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " es requerido"
	case "hhmm":
		return fe.Field() + " debe tener formato HH:MM"
	case "weekday":
		return fe.Field() + " debe estar entre 0 (domingo) y 6 (sábado)"
	case "shift":
		return fe.Field() + " debe ser MATUTINO o VESPERTINO"
	case "max":
		return fmt.Sprintf("%s excede %s caracteres", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s inválido (%s)", fe.Field(), fe.Tag())
	}
}

// optionalDay lee ?day=; nil si no viene.
func optionalDay(c *fiber.Ctx) (*int, error) {
	raw := c.Query("day")
	if raw == "" {
		return nil, nil
	}
	d, err := strconv.Atoi(raw)
	if err != nil || d < 0 || d > 6 {
		return nil, badRequest("VALIDATION", "day debe estar entre 0 y 6")
	}
	return &d, nil
}
