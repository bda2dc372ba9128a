package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Categories(c *fiber.Ctx) error {
	categories, err := handler.catalog.Categories()
	if err != nil {
		return respondListError(c, err)
	}
	return c.JSON(categories)
}

func (handler *Handler) Products(c *fiber.Ctx) error {
	products, err := handler.catalog.Products()
	if err != nil {
		return respondListError(c, err)
	}
	return c.JSON(products)
}

func (handler *Handler) SearchProducts(c *fiber.Ctx) error {
	products, err := handler.catalog.SearchProducts(c.Query("q"))
	if err != nil {
		return respondListError(c, err)
	}
	return c.JSON(products)
}

func (handler *Handler) FeaturedProducts(c *fiber.Ctx) error {
	products, err := handler.catalog.FeaturedProducts()
	if err != nil {
		return respondListError(c, err)
	}
	return c.JSON(products)
}

func (handler *Handler) NewProducts(c *fiber.Ctx) error {
	products, err := handler.catalog.NewProducts()
	if err != nil {
		return respondListError(c, err)
	}
	return c.JSON(products)
}

func (handler *Handler) OnSaleProducts(c *fiber.Ctx) error {
	products, err := handler.catalog.OnSaleProducts()
	if err != nil {
		return respondListError(c, err)
	}
	return c.JSON(products)
}

func (handler *Handler) ProductBySlug(c *fiber.Ctx) error {
	product, err := handler.catalog.ProductBySlug(c.Params("slug"))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(product)
}

func (handler *Handler) ProductsByCategory(c *fiber.Ctx) error {
	products, err := handler.catalog.ProductsByCategory(c.Params("slug"))
	if err != nil {
		return respondListError(c, err)
	}
	return c.JSON(products)
}
