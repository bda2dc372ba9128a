package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ikrashahmed/taazamart/internal/services"
)

func (handler *Handler) MyOrders(c *fiber.Ctx) error {
	email, ok := sessionEmailFromContext(c)
	if !ok {
		return respondServiceError(c, &services.UnauthenticatedError{})
	}

	orders, err := handler.orders.ListOrdersByEmail(email)
	if err != nil {
		return respondListError(c, err)
	}
	return c.JSON(orders)
}

func (handler *Handler) MyOrderItems(c *fiber.Ctx) error {
	email, ok := sessionEmailFromContext(c)
	if !ok {
		return respondServiceError(c, &services.UnauthenticatedError{})
	}

	orderID, err := c.ParamsInt("id")
	if err != nil || orderID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid order id")
	}

	items, err := handler.orders.OrderItemsForEmail(uint(orderID), email)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(items)
}
