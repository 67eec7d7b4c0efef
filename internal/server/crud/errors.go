package crud

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/Marat1506/hadj-admin/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorsHandler maps storage and validation errors to HTTP errors. Wrapped
// HTTP errors are returned as is.
func ErrorsHandler(c *fiber.Ctx) error {
	err := c.Next()
	if err == nil {
		return nil
	}

	var (
		validationErrs validator.ValidationErrors
		fiberErr       *fiber.Error
	)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrConflict):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.As(err, &validationErrs):
		return fiber.NewError(fiber.StatusBadRequest, validationMessage(validationErrs))
	case errors.As(err, &fiberErr):
		return fiberErr
	}

	return err //nolint:wrapcheck //already wrapped
}

func validationMessage(errs validator.ValidationErrors) string {
	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		field := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", ")))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s characters", field, fe.Param()))
		default:
			messages = append(messages, fmt.Sprintf("%s failed the %q check", field, fe.Tag()))
		}
	}

	return strings.Join(messages, "; ")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}

	r := []rune(s)
	r[0] = unicode.ToLower(r[0])

	return string(r)
}
