package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ikrashahmed/taazamart/internal/services"
)

// CheckoutOrder turns the client-held cart into a persisted order. The order
// is always attributed to the session identity, not whatever email the
// payload claims.
func (handler *Handler) CheckoutOrder(c *fiber.Ctx) error {
	email, ok := sessionEmailFromContext(c)
	if !ok {
		return respondServiceError(c, &services.UnauthenticatedError{})
	}

	input := services.OrderInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	input.CustomerEmail = email

	order, err := handler.orders.CreateOrder(input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"order": order})
}
