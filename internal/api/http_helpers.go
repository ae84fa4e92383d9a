package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/macrolog/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseDayParam(raw string, location *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("date is required")
	}
	return services.ParseDay(raw, location)
}

// mealErrorResponse maps service failures to a status and a message that is
// safe to show to the client.
func mealErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrMealLogLoadFailed):
		return fiber.StatusInternalServerError, "failed to load meal log"
	case errors.Is(err, services.ErrMealLogSaveFailed), errors.Is(err, services.ErrMealEntryCreateFailed):
		return fiber.StatusInternalServerError, "failed to save meal"
	case errors.Is(err, services.ErrMealTotalsOutOfRange):
		return fiber.StatusUnprocessableEntity, "meal quantities are out of range"
	case errors.Is(err, services.ErrMealLogClearFailed):
		return fiber.StatusInternalServerError, "failed to clear today's log"
	default:
		return fiber.StatusInternalServerError, "unexpected error"
	}
}

func buildExportFilename(from time.Time, to time.Time, extension string) string {
	return fmt.Sprintf("macrolog-%s-to-%s.%s", from.Format("2006-01-02"), to.Format("2006-01-02"), extension)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
