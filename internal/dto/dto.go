package dto

import (
	"ecommerce-platform/internal/model"

	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// PlaceOrderRequest has no user field: the owner always comes from the token.
type PlaceOrderRequest struct {
	Items           []model.LineItem      `json:"items" validate:"required,min=1"`
	Total           decimal.Decimal       `json:"total"`
	ShippingAddress model.ShippingAddress `json:"shippingAddress"`
}

type PlaceOrderResponse struct {
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
