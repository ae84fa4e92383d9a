package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/macrolog/internal/services"
)

func (handler *Handler) EstimateMeal(c *fiber.Ctx) error {
	payload := mealPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	estimate, err := handler.mealService.Estimate(payload.Text)
	if errors.Is(err, services.ErrEmptyMealText) {
		return sendNoContent(c)
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to estimate meal")
	}
	return c.JSON(estimate)
}

// LogMeal appends a meal to today's log. Blank text is ignored with 204 and
// nothing is stored.
func (handler *Handler) LogMeal(c *fiber.Ctx) error {
	payload := mealPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	entry, dayLog, err := handler.mealService.LogMeal(payload.Text)
	if errors.Is(err, services.ErrEmptyMealText) {
		return sendNoContent(c)
	}
	if err != nil {
		status, message := mealErrorResponse(err)
		return apiError(c, status, message)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Meal logged",
		"entry":   entry,
		"day":     dayLog,
	})
}
