package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"storekeeper/internal/domain"
	applog "storekeeper/internal/log"
	"storekeeper/internal/repos"
	"storekeeper/internal/services"
	"storekeeper/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) All(c *fiber.Ctx) error {
	prods, err := h.Catalog.ListAllProducts()
	if err != nil {
		return err
	}
	return c.JSON(prods)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return msg(c, fiber.StatusNotFound, "Product not found.")
	}
	p, err := h.Catalog.GetProduct(id)
	if errors.Is(err, repos.ErrProductNotFound) {
		return msg(c, fiber.StatusNotFound, "Product not found.")
	}
	if err != nil {
		return err
	}
	return c.JSON(p)
}

func (h *ProductHandler) Add(c *fiber.Ctx) error {
	var body struct {
		Name     string `json:"name"`
		Desc     string `json:"desc"`
		Category int64  `json:"category"`
	}
	if err := c.BodyParser(&body); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "product.body"})
		return msg(c, fiber.StatusBadRequest, "Product data not valid.")
	}

	p, err := h.Catalog.AddProduct(body.Name, body.Desc, body.Category)
	switch {
	case errors.Is(err, repos.ErrCategoryNotFound):
		return msg(c, fiber.StatusNotFound, "Category not found")
	case errors.Is(err, services.ErrInvalidInput):
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return msg(c, fiber.StatusBadRequest, "Product data not valid.")
	case err != nil:
		return err
	}
	applog.Audit(c, "product.add", map[string]any{"id": p.ID, "category": p.CategoryID})
	return msg(c, fiber.StatusOK, "Product added.")
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return msg(c, fiber.StatusNotFound, "Product not found.")
	}
	var body struct {
		Name     *string `json:"name"`
		Desc     *string `json:"desc"`
		Category *int64  `json:"category"`
	}
	if err := c.BodyParser(&body); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "product.body"})
		return msg(c, fiber.StatusBadRequest, "Invalid product data")
	}

	patch := domain.ProductPatch{Name: body.Name, Desc: body.Desc, CategoryID: body.Category}
	err := h.Catalog.UpdateProduct(id, patch)
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return msg(c, fiber.StatusBadRequest, "Invalid product data")
	case errors.Is(err, repos.ErrProductNotFound):
		return msg(c, fiber.StatusNotFound, "Product not found.")
	case errors.Is(err, repos.ErrCategoryNotFound):
		return msg(c, fiber.StatusNotFound, "Category not found.")
	case err != nil:
		return err
	}
	applog.Audit(c, "product.update", map[string]any{"id": id})
	return msg(c, fiber.StatusOK, "Product updated.")
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return msg(c, fiber.StatusNotFound, "Product not found.")
	}
	err := h.Catalog.DeleteProduct(id)
	if errors.Is(err, repos.ErrProductNotFound) {
		return msg(c, fiber.StatusNotFound, "Product not found.")
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "product.delete", map[string]any{"id": id})
	return msg(c, fiber.StatusOK, "Product deleted.")
}
