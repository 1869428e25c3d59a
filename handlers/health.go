package handlers

import "github.com/gofiber/fiber/v2"

// Health responde el estado del servicio
func Health(appName, version string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": appName,
			"version": version,
		})
	}
}

// NotFound responde a cualquier ruta no registrada
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":   "Route not found",
		"message": "The requested route does not exist on this server",
		"path":    c.Path(),
		"method":  c.Method(),
	})
}
