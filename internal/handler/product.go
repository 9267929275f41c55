package handler

import (
	"errors"
	"net/http"

	"ecommerce-platform/internal/common"
	"ecommerce-platform/internal/service"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.productService.List(ctx, c.QueryParam("category"), c.QueryParam("search"))
	if err != nil {
		return fail("Failed to fetch products", err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.productService.Get(ctx, c.Param("id"))
	if errors.Is(err, common.ErrorNotFound) {
		return notFound("Product not found", err)
	}
	if err != nil {
		return fail("Failed to fetch product", err)
	}

	return c.JSON(http.StatusOK, product)
}
