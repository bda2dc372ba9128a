package api

import (
	"github.com/gofiber/fiber/v2"
)

type orderStatusInput struct {
	Status string `json:"status" form:"status"`
}

func (handler *Handler) AdminOrders(c *fiber.Ctx) error {
	orders, err := handler.orders.ListOrders()
	if err != nil {
		return respondListError(c, err)
	}
	return c.JSON(orders)
}

func (handler *Handler) AdminOrderItems(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil || orderID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid order id")
	}

	items, err := handler.orders.OrderItems(uint(orderID))
	if err != nil {
		return respondListError(c, err)
	}
	return c.JSON(items)
}

func (handler *Handler) AdminUpdateOrderStatus(c *fiber.Ctx) error {
	orderID, err := c.ParamsInt("id")
	if err != nil || orderID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid order id")
	}

	input := orderStatusInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.orders.UpdateStatus(uint(orderID), input.Status); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
