package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthRequired lets every request through until an owner passphrase is set.
// After that a valid owner token cookie is required.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	configured, err := handler.ownerAuth.PassphraseConfigured()
	if err != nil {
		handler.logger.Error("check owner passphrase", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to check authentication")
	}
	if !configured {
		return c.Next()
	}

	if err := handler.authenticateRequest(c); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.Next()
}
