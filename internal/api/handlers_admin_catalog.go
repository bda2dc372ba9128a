package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ikrashahmed/taazamart/internal/services"
)

func (handler *Handler) CreateCategory(c *fiber.Ctx) error {
	input := services.CategoryInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	category, err := handler.catalog.CreateCategory(input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func (handler *Handler) UpdateCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil || categoryID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid category id")
	}

	update := services.CategoryUpdate{}
	if err := c.BodyParser(&update); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.catalog.UpdateCategory(uint(categoryID), update); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeleteCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil || categoryID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid category id")
	}

	if err := handler.catalog.DeleteCategory(uint(categoryID)); err != nil {
		return respondListError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) CreateProduct(c *fiber.Ctx) error {
	input := services.ProductInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	product, err := handler.catalog.CreateProduct(input)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

func (handler *Handler) UpdateProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid product id")
	}

	update := services.ProductUpdate{}
	if err := c.BodyParser(&update); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.catalog.UpdateProduct(uint(productID), update); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) DeleteProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID <= 0 {
		return apiError(c, fiber.StatusBadRequest, "invalid product id")
	}

	if err := handler.catalog.DeleteProduct(uint(productID)); err != nil {
		return respondListError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
