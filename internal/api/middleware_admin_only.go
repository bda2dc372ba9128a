package api

import "github.com/gofiber/fiber/v2"

// AdminOnly runs after SessionRequired and gates the /admin surface on the
// configured operator email.
func (handler *Handler) AdminOnly(c *fiber.Ctx) error {
	email, ok := sessionEmailFromContext(c)
	if !ok || !handler.auth.IsAdminEmail(email) {
		return c.Redirect("/login", fiber.StatusSeeOther)
	}
	return c.Next()
}
