package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/macrolog/internal/services"
	"go.uber.org/zap"
)

func (handler *Handler) Login(c *fiber.Ctx) error {
	limiterKey := requestLimiterKey(c)
	now := handler.now()
	slot, ok := handler.loginLimiter.reserve(limiterKey, now)
	if !ok {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	payload := loginPayload{}
	if err := c.BodyParser(&payload); err != nil {
		slot.release()
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	err := handler.ownerAuth.VerifyPassphrase(payload.Passphrase)
	switch {
	case errors.Is(err, services.ErrOwnerPassphraseNotSet):
		slot.release()
		return apiError(c, fiber.StatusConflict, "owner passphrase is not set")
	case errors.Is(err, services.ErrOwnerPassphraseInvalid):
		handler.logger.Warn("login failed", zap.String("ip", limiterKey))
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	case err != nil:
		slot.release()
		handler.logger.Error("verify owner passphrase", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to verify credentials")
	}

	slot.forgetKey()
	if err := handler.setAuthCookie(c); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
