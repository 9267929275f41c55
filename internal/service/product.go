package service

import (
	"context"

	"ecommerce-platform/internal/model"
	"ecommerce-platform/internal/repository"
)

type ProductService interface {
	List(ctx context.Context, category, search string) ([]*model.Product, error)
	Get(ctx context.Context, productID string) (*model.Product, error)
	Seed(ctx context.Context) (int, error)
}

type productServiceImpl struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productServiceImpl{
		productRepo: productRepo,
	}
}

func (s *productServiceImpl) List(ctx context.Context, category, search string) ([]*model.Product, error) {
	return s.productRepo.Find(ctx, repository.ProductFilter{
		Category: category,
		Search:   search,
	})
}

func (s *productServiceImpl) Get(ctx context.Context, productID string) (*model.Product, error) {
	return s.productRepo.FindByID(ctx, productID)
}

func (s *productServiceImpl) Seed(ctx context.Context) (int, error) {
	return s.productRepo.Seed(ctx)
}
