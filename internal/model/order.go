package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const OrderStatusPending = "pending"

// Order keeps its line items and address as embedded JSON documents.
type Order struct {
	ID              string          `gorm:"primaryKey;size:36;not null" json:"_id"`
	UserID          string          `gorm:"size:36;index;not null" json:"userId"`
	Items           []LineItem      `gorm:"serializer:json;type:text" json:"items"`
	Total           decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"total"`
	ShippingAddress ShippingAddress `gorm:"serializer:json;type:text" json:"shippingAddress"`
	Status          string          `gorm:"size:32;index;not null" json:"status"`
	CreatedAt       time.Time       `gorm:"index" json:"createdAt"`
}

type LineItem struct {
	ProductID string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
}

type ShippingAddress struct {
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	City     string `json:"city"`
	ZipCode  string `json:"zipCode"`
}
