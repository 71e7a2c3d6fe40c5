package handlers

import (
	"github.com/gofiber/fiber/v2"

	"storekeeper/internal/services"
)

const usage = "Allowed requests: GET /all, GET /product/<id>, POST /product, DELETE /product/<id>"

// Register wires every route of the API onto app. Mutating routes go through
// RequireAuth; reads are open.
func Register(app *fiber.App, deps *Deps, auth *services.AuthService) {
	protected := RequireAuth(auth)

	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(usage) })

	// Categories. The products route is registered first so "products" is
	// never captured as a category id.
	app.Get("/category/products/:id", deps.CategoryHandler.Products)
	app.Post("/category/update/:id", protected, deps.CategoryHandler.Update)
	app.Post("/category", protected, deps.CategoryHandler.Add)
	app.Get("/category", deps.CategoryHandler.List)
	app.Get("/category/:id", deps.CategoryHandler.Get)
	app.Delete("/category/:id", protected, deps.CategoryHandler.Delete)

	// Products
	app.Get("/all", deps.ProductHandler.All)
	app.Post("/product/update/:id", protected, deps.ProductHandler.Update)
	app.Post("/product", protected, deps.ProductHandler.Add)
	app.Get("/product/:id", deps.ProductHandler.Get)
	app.Delete("/product/:id", protected, deps.ProductHandler.Delete)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
}
