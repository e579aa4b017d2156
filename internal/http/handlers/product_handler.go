package handlers

import (
	"database/sql"
	"errors"

	applog "nordhem/internal/log"
	"nordhem/internal/services"
	"nordhem/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	ps, err := h.Catalog.ListProducts()
	if err != nil {
		applog.Error(c, "products.list.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	return c.JSON(ps)
}

func (h *ProductHandler) ListNew(c *fiber.Ctx) error {
	ps, err := h.Catalog.ListNew()
	if err != nil {
		applog.Error(c, "products.new.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	return c.JSON(ps)
}

func (h *ProductHandler) ListSale(c *fiber.Ctx) error {
	ps, err := h.Catalog.ListSale()
	if err != nil {
		applog.Error(c, "products.sale.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	return c.JSON(ps)
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ProductID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "id"})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	p, err := h.Catalog.GetProduct(id)
	if errors.Is(err, sql.ErrNoRows) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
	}
	if err != nil {
		applog.Error(c, "products.detail.fail", err, map[string]any{"id": id})
		return fiber.ErrInternalServerError
	}
	return c.JSON(p)
}

func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.Catalog.ListCategories()
	if err != nil {
		applog.Error(c, "categories.list.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	return c.JSON(cats)
}

func (h *ProductHandler) Colors(c *fiber.Ctx) error {
	cols, err := h.Catalog.ListColors()
	if err != nil {
		applog.Error(c, "colors.list.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	return c.JSON(cols)
}

func (h *ProductHandler) Search(c *fiber.Ctx) error {
	rows, err := h.Catalog.Search(c.Query("q"))
	if err != nil {
		applog.Error(c, "search.fail", err, nil)
		return fiber.ErrInternalServerError
	}
	return c.JSON(rows)
}
