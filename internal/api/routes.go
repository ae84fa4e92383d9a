package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	api.Get("/foods", handler.AuthRequired, handler.GetFoods)
	api.Post("/estimate", handler.AuthRequired, handler.EstimateMeal)
	api.Post("/meals", handler.AuthRequired, handler.LogMeal)
	api.Post("/energy", handler.AuthRequired, handler.CalculateEnergy)

	today := api.Group("/today", handler.AuthRequired)
	today.Get("", handler.GetToday)
	today.Delete("", handler.StartNewDay)

	api.Get("/days/:date", handler.AuthRequired, handler.GetDay)
	api.Get("/weekly", handler.AuthRequired, handler.GetWeekly)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/summary", handler.ExportSummary)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
