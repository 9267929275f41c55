package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ecommerce-platform/internal/common"
	"ecommerce-platform/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductFilter struct {
	Category string
	Search   string
}

type ProductRepository interface {
	Seed(ctx context.Context) (int, error)
	FindByID(ctx context.Context, productID string) (*model.Product, error)
	Find(ctx context.Context, filter ProductFilter) ([]*model.Product, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func defaultProducts() []*model.Product {
	return []*model.Product{
		{Name: "Laptop", Price: decimal.NewFromInt(4818), Category: "Electronics", Description: "High-performance laptop", Image: "/images/Laptop.jpg"},
		{Name: "Smartphone", Price: decimal.NewFromInt(699), Category: "Electronics", Description: "Latest smartphone", Image: "https://via.placeholder.com/300x200?text=Phone"},
		{Name: "T-Shirt", Price: decimal.NewFromInt(29), Category: "Clothing", Description: "Cotton t-shirt", Image: "https://via.placeholder.com/300x200?text=T-Shirt"},
		{Name: "Jeans", Price: decimal.NewFromInt(79), Category: "Clothing", Description: "Denim jeans", Image: "https://via.placeholder.com/300x200?text=Jeans"},
		{Name: "Coffee Mug", Price: decimal.NewFromInt(15), Category: "Home", Description: "Ceramic coffee mug", Image: "https://via.placeholder.com/300x200?text=Mug"},
		{Name: "Desk Lamp", Price: decimal.NewFromInt(45), Category: "Home", Description: "LED desk lamp", Image: "https://via.placeholder.com/300x200?text=Lamp"},
	}
}

// Seed inserts the default catalog when the products table is empty and
// returns the number of rows inserted.
func (r *productRepoImpl) Seed(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	products := defaultProducts()
	for _, p := range products {
		p.ID = uuid.NewString()
	}

	if err := r.db.WithContext(ctx).Create(&products).Error; err != nil {
		return 0, fmt.Errorf("seed products: %w", err)
	}
	return len(products), nil
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", productID).
		First(&product).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find product: %w", err)
	}

	return &product, nil
}

func (r *productRepoImpl) Find(ctx context.Context, filter ProductFilter) ([]*model.Product, error) {
	query := r.db.WithContext(ctx).Model(&model.Product{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		query = query.Where(
			"(LOWER(name) LIKE ? ESCAPE '!' OR LOWER(description) LIKE ? ESCAPE '!')",
			pattern, pattern,
		)
	}

	products := []*model.Product{}
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	return products, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
