package crud

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ID parses the ":id" route parameter.
func ID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id must be a positive integer")
	}

	return id, nil
}

// QueryInt64 parses an optional numeric query parameter. ok is false when
// the parameter is missing.
func QueryInt64(c *fiber.Ctx, name string) (int64, bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fiber.NewError(fiber.StatusBadRequest, name+" must be an integer")
	}

	return v, true, nil
}
