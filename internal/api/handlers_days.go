package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetToday(c *fiber.Ctx) error {
	dayLog, err := handler.mealService.FetchTodayLog()
	if err != nil {
		status, message := mealErrorResponse(err)
		return apiError(c, status, message)
	}
	return c.JSON(dayLog)
}

// StartNewDay clears today's log. Earlier days are not touched.
func (handler *Handler) StartNewDay(c *fiber.Ctx) error {
	dayLog, err := handler.mealService.StartNewDay()
	if err != nil {
		status, message := mealErrorResponse(err)
		return apiError(c, status, message)
	}
	return c.JSON(fiber.Map{
		"message": "Started a new day",
		"day":     dayLog,
	})
}

func (handler *Handler) GetDay(c *fiber.Ctx) error {
	day, err := parseDayParam(c.Params("date"), handler.location)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	dayLog, err := handler.mealService.FetchDayLog(day)
	if err != nil {
		status, message := mealErrorResponse(err)
		return apiError(c, status, message)
	}
	return c.JSON(dayLog)
}

func (handler *Handler) GetWeekly(c *fiber.Ctx) error {
	report, err := handler.weeklyService.BuildWeeklyReport(handler.now())
	if err != nil {
		status, message := mealErrorResponse(err)
		return apiError(c, status, message)
	}
	return c.JSON(report)
}
