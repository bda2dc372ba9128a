package api

import "github.com/gofiber/fiber/v2"

const (
	sessionCookieName = "user_email"
	contextEmailKey   = "session_email"
)

func sessionEmailFromContext(c *fiber.Ctx) (string, bool) {
	email, ok := c.Locals(contextEmailKey).(string)
	return email, ok && email != ""
}
