package product

import (
	"context"
	"errors"
	"fmt"
	"math"

	"souqStore/domain"
	"souqStore/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	Search(ctx context.Context, q, category string, page, limit int) ([]domain.Product, int64, error)
	Categories(ctx context.Context) ([]string, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uint64) error
}

type productService struct {
	productRepo ProductRepository
}

func NewProductService(productRepo ProductRepository) *productService {
	return &productService{
		productRepo: productRepo,
	}
}

func (s *productService) SearchProducts(ctx context.Context, q, category string, page, limit int) (domain.ProductPage, error) {
	if err := ctx.Err(); err != nil {
		return domain.ProductPage{}, fmt.Errorf("context error: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 8
	}
	if limit > 100 {
		limit = 100
	}

	products, total, err := s.productRepo.Search(ctx, q, category, page, limit)
	if err != nil {
		logger.Error("Failed to search products", err)
		return domain.ProductPage{}, err
	}

	if products == nil {
		products = []domain.Product{}
	}

	return domain.ProductPage{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
		Data:       products,
	}, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uint64) (*domain.Product, error) {
	if id == 0 {
		logger.Error("invalid product id")
		return nil, errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find product by id", err)
		return nil, err
	}

	return &product, nil
}

func (s *productService) GetCategories(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	categories, err := s.productRepo.Categories(ctx)
	if err != nil {
		logger.Error("failed to find categories", err)
		return nil, err
	}

	if categories == nil {
		categories = []string{}
	}

	return categories, nil
}

func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Validation
	if product.Name == "" {
		logger.Error("Invalid product data: name is required")
		return nil, errors.New("product name is required")
	}

	if product.Category == "" {
		logger.Error("Invalid product data: category is required")
		return nil, errors.New("product category is required")
	}

	if product.Price <= 0 {
		logger.Error("Invalid product data: price must be greater than 0")
		return nil, errors.New("price must be greater than 0")
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("failed to create new product", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.Info("product created successfully", "product_id", product.ID)

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if product.ID == 0 {
		logger.Error("Invalid product data: ID is required")
		return nil, errors.New("product ID is required")
	}

	if product.Name == "" {
		logger.Error("Invalid product data: name is required")
		return nil, errors.New("product name is required")
	}

	if product.Price <= 0 {
		logger.Error("Invalid product data: price must be greater than 0")
		return nil, errors.New("price must be greater than 0")
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.Error("failed to update product", err)
		return nil, err
	}

	updatedProduct, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("failed to fetch updated product", err)
		return nil, fmt.Errorf("failed to fetch updated product: %w", err)
	}

	return &updatedProduct, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("Invalid product id when deleting product")
		return errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete product", err)
		return err
	}

	logger.Info("product deleted", "product_id", id)

	return nil
}
