package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) SessionRequired(c *fiber.Ctx) error {
	email, err := handler.sessionEmail(c)
	if err != nil {
		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "not logged in"})
		}
		if strings.HasPrefix(c.Path(), "/checkout") {
			return c.Redirect("/login?redirect=checkout", fiber.StatusSeeOther)
		}
		return c.Redirect("/login", fiber.StatusSeeOther)
	}

	c.Locals(contextEmailKey, email)
	return c.Next()
}
