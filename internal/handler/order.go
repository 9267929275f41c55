package handler

import (
	"errors"
	"net/http"

	"ecommerce-platform/internal/common"
	"ecommerce-platform/internal/dto"
	"ecommerce-platform/internal/middleware"
	"ecommerce-platform/internal/service"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PlaceOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	orderID, err := h.orderService.PlaceOrder(ctx, middleware.UserID(c), &req)
	if err != nil {
		return fail("Failed to place order", err)
	}

	return c.JSON(http.StatusOK, dto.PlaceOrderResponse{
		OrderID: orderID,
		Message: "Order placed successfully",
	})
}

func (h *OrderHandler) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.ListOrders(ctx, middleware.UserID(c))
	if err != nil {
		return fail("Failed to fetch orders", err)
	}

	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.orderService.GetOrder(ctx, middleware.UserID(c), c.Param("id"))
	if errors.Is(err, common.ErrorNotFound) {
		return notFound("Order not found", err)
	}
	if err != nil {
		return fail("Failed to fetch order", err)
	}

	return c.JSON(http.StatusOK, order)
}
