package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "storekeeper/internal/log"
	"storekeeper/internal/repos"
	"storekeeper/internal/services"
	"storekeeper/internal/validate"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

func (h *CategoryHandler) Add(c *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "category.body"})
		return msg(c, fiber.StatusBadRequest, "Invalid category data.")
	}

	cat, err := h.Catalog.AddCategory(body.Name)
	if errors.Is(err, services.ErrInvalidInput) {
		applog.Security(c, "validation.fail", map[string]any{"field": "category.name"})
		return msg(c, fiber.StatusBadRequest, "Invalid category data.")
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "category.add", map[string]any{"id": cat.ID})
	return msg(c, fiber.StatusOK, "Category added.")
}

func (h *CategoryHandler) List(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		return err
	}
	return c.JSON(cats)
}

func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return msg(c, fiber.StatusNotFound, "Category not found")
	}
	cat, err := h.Catalog.GetCategory(id)
	if errors.Is(err, repos.ErrCategoryNotFound) {
		return msg(c, fiber.StatusNotFound, "Category not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(cat)
}

// Products lists the products owned by a category. An unknown or malformed
// id yields an empty list, matching the list-query contract.
func (h *CategoryHandler) Products(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.JSON([]struct{}{})
	}
	prods, err := h.Catalog.ListProductsInCategory(id)
	if err != nil {
		return err
	}
	return c.JSON(prods)
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return msg(c, fiber.StatusNotFound, "Category not found")
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil {
		applog.Security(c, "validation.fail", map[string]any{"field": "category.body"})
		return msg(c, fiber.StatusBadRequest, "Invalid category data.")
	}

	err := h.Catalog.UpdateCategory(id, body.Name)
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		applog.Security(c, "validation.fail", map[string]any{"field": "category.name"})
		return msg(c, fiber.StatusBadRequest, "Invalid category data.")
	case errors.Is(err, repos.ErrCategoryNotFound):
		return msg(c, fiber.StatusNotFound, "Category not found")
	case err != nil:
		return err
	}
	applog.Audit(c, "category.update", map[string]any{"id": id})
	return msg(c, fiber.StatusOK, "Category updated.")
}

func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return msg(c, fiber.StatusNotFound, "Category not found")
	}
	err := h.Catalog.DeleteCategory(id)
	if errors.Is(err, repos.ErrCategoryNotFound) {
		return msg(c, fiber.StatusNotFound, "Category not found")
	}
	if err != nil {
		return err
	}
	applog.Audit(c, "category.delete", map[string]any{"id": id})
	return msg(c, fiber.StatusOK, "Category deleted.")
}
