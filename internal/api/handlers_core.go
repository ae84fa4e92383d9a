package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) GetFoods(c *fiber.Ctx) error {
	return c.JSON(handler.interpreter.Rules())
}
