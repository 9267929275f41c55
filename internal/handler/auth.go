package handler

import (
	"net/http"

	"ecommerce-platform/internal/dto"
	"ecommerce-platform/internal/service"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.authService.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return fail("Registration failed", err)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return fail("Login failed", err)
	}

	return c.JSON(http.StatusOK, resp)
}
