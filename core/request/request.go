package request

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/GiyoMoon/WitchTrade-BE/core/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
)

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("lines", validateLines); err != nil {
		panic("request: failed to register lines validation: " + err.Error())
	}
	return v
}

// validateLines implements lines=N, limiting a note to N lines.
func validateLines(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return strings.Count(fl.Field().String(), "\n")+1 <= limit
}

// Parse decodes the JSON body into dest and validates it.
func Parse(c *fiber.Ctx, dest any) error {
	if err := json.Unmarshal(c.Body(), dest); err != nil {
		return apperr.BadRequest("invalid JSON body")
	}
	return Validate(c.UserContext(), dest)
}

// Validate checks dest's `validate` tags.
func Validate(ctx context.Context, dest any) error {
	if err := validate.StructCtx(ctx, dest); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return apperr.BadRequest("field %s failed on %s", fe.Field(), fe.Tag())
		}
		return apperr.BadRequest("validation error")
	}
	return nil
}
