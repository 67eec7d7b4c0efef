package server

import (
	"strings"

	"github.com/Marat1506/hadj-admin/internal/auth"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const localsClaims = "claims"

// NewAuthMiddleware requires a valid bearer token when authentication is
// enabled and stores the claims in the request locals.
func NewAuthMiddleware(authSvc *auth.Service, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !authSvc.Enabled() {
			return c.Next()
		}

		token, _ := strings.CutPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")

		claims, err := authSvc.Validate(strings.TrimSpace(token))
		if err != nil {
			logger.Debug("request rejected", zap.String("path", c.Path()), zap.Error(err))
			return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
		}

		c.Locals(localsClaims, claims)

		return c.Next()
	}
}

// Claims returns the claims of the authenticated request, if any.
func Claims(c *fiber.Ctx) (*auth.JWTClaims, bool) {
	claims, ok := c.Locals(localsClaims).(*auth.JWTClaims)
	return claims, ok
}
