package server

import (
	"context"
	"fmt"

	"ecommerce-platform/internal/auth"
	"ecommerce-platform/internal/repository"
	"ecommerce-platform/internal/service"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Services struct {
	Auth     service.AuthService
	Orders   service.OrderService
	Products service.ProductService
}

func NewServices(db *gorm.DB, tokens *auth.TokenManager) *Services {
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)

	return &Services{
		Auth:     service.NewAuthService(userRepo, tokens),
		Orders:   service.NewOrderService(orderRepo),
		Products: service.NewProductService(productRepo),
	}
}

// SeedCatalog fills an empty product catalog with the default products.
func (s *Services) SeedCatalog(ctx context.Context, log *zap.Logger) error {
	n, err := s.Products.Seed(ctx)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	if n > 0 {
		log.Info("seeded product catalog", zap.Int("products", n))
	}
	return nil
}
