package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/health", handler.Health)

	registerAuthRoutes(app, handler)
	registerCatalogRoutes(app, handler)
	registerOrderRoutes(app, handler)
	registerAdminRoutes(app, handler)
}

func registerAuthRoutes(app *fiber.App, handler *Handler) {
	auth := app.Group("/api/auth")
	auth.Post("/signup", handler.Signup)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", handler.Me)
	auth.Put("/profile", handler.SessionRequired, handler.UpdateProfile)
}

func registerCatalogRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")
	api.Get("/categories", handler.Categories)
	api.Get("/categories/:slug/products", handler.ProductsByCategory)

	// Fixed product paths go first so they are not swallowed by :slug.
	api.Get("/products", handler.Products)
	api.Get("/products/search", handler.SearchProducts)
	api.Get("/products/featured", handler.FeaturedProducts)
	api.Get("/products/new", handler.NewProducts)
	api.Get("/products/on-sale", handler.OnSaleProducts)
	api.Get("/products/:slug", handler.ProductBySlug)
}

func registerOrderRoutes(app *fiber.App, handler *Handler) {
	orders := app.Group("/api/orders", handler.SessionRequired)
	orders.Get("", handler.MyOrders)
	orders.Get("/:id/items", handler.MyOrderItems)

	checkout := app.Group("/checkout", handler.SessionRequired)
	checkout.Post("/orders", handler.CheckoutOrder)
}

func registerAdminRoutes(app *fiber.App, handler *Handler) {
	admin := app.Group("/admin/api", handler.SessionRequired, handler.AdminOnly)

	admin.Post("/categories", handler.CreateCategory)
	admin.Put("/categories/:id", handler.UpdateCategory)
	admin.Delete("/categories/:id", handler.DeleteCategory)

	admin.Post("/products", handler.CreateProduct)
	admin.Put("/products/:id", handler.UpdateProduct)
	admin.Delete("/products/:id", handler.DeleteProduct)

	admin.Get("/orders", handler.AdminOrders)
	admin.Get("/orders/:id/items", handler.AdminOrderItems)
	admin.Put("/orders/:id/status", handler.AdminUpdateOrderStatus)
}
