package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/macrolog/internal/services"
)

func (handler *Handler) exportRange(c *fiber.Ctx) (time.Time, time.Time, int, string) {
	today := services.DateAtLocation(handler.now(), handler.location)
	from, to, err := services.ParseExportRange(c.Query("from"), c.Query("to"), today, handler.location)
	switch {
	case errors.Is(err, services.ErrExportFromDateInvalid):
		return time.Time{}, time.Time{}, fiber.StatusBadRequest, "invalid from date"
	case errors.Is(err, services.ErrExportToDateInvalid):
		return time.Time{}, time.Time{}, fiber.StatusBadRequest, "invalid to date"
	case errors.Is(err, services.ErrExportRangeInvalid):
		return time.Time{}, time.Time{}, fiber.StatusBadRequest, "from must not be after to"
	case errors.Is(err, services.ErrExportRangeTooLong):
		return time.Time{}, time.Time{}, fiber.StatusBadRequest, "export range is too long"
	case err != nil:
		return time.Time{}, time.Time{}, fiber.StatusBadRequest, "invalid export range"
	}
	return from, to, 0, ""
}

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	from, to, status, message := handler.exportRange(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	summary, err := handler.exportService.BuildSummary(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch logs")
	}
	return c.JSON(summary)
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	from, to, status, message := handler.exportRange(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	days, err := handler.exportService.LoadLoggedDays(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch logs")
	}

	payload := fiber.Map{
		"exported_at": handler.now().In(handler.location).Format(time.RFC3339),
		"from":        services.FormatDay(from, handler.location),
		"to":          services.FormatDay(to, handler.location),
		"days":        days,
	}
	serialized, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, buildExportFilename(from, to, "json"))
	return c.Send(serialized)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	from, to, status, message := handler.exportRange(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	days, err := handler.exportService.LoadLoggedDays(from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch logs")
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, day := range days {
		if err := writer.Write(day.CSVColumns()); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", buildExportFilename(from, to, "csv"))
	return c.Send(output.Bytes())
}
