package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/macrolog/internal/services"
)

func (handler *Handler) CalculateEnergy(c *fiber.Ctx) error {
	profile := services.EnergyProfile{}
	if err := c.BodyParser(&profile); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	result, err := services.CalculateEnergy(profile)
	if errors.Is(err, services.ErrInvalidEnergyProfile) {
		return apiError(c, fiber.StatusBadRequest, "invalid energy profile")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to calculate energy")
	}
	return c.JSON(result)
}
