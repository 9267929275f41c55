package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// browser client does arithmetic on prices, keep them as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

type User struct {
	ID        string    `gorm:"primaryKey;size:36;not null" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"size:72;not null" json:"-"` // bcrypt hash
	CreatedAt time.Time `json:"createdAt"`
}

type Product struct {
	ID          string          `gorm:"primaryKey;size:36;not null" json:"_id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(20,8);not null" json:"price"`
	Category    string          `gorm:"size:64;index" json:"category"`
	Description string          `gorm:"type:text" json:"description"`
	Image       string          `gorm:"size:512" json:"image"`
}

func AllModels() []any {
	return []any{
		&User{},
		&Product{},
		&Order{},
	}
}
