package repositories

import (
	"context"

	"github.com/SscSPs/inventory_management_app/internal/core/domain"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a specific product by its identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductByCode retrieves a product by its business code (case-insensitive).
	FindProductByCode(ctx context.Context, code string) (*domain.Product, error)

	// ListProducts retrieves all products in creation order.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// ListProductsPage retrieves a page of products in creation order using token-based pagination.
	// It returns the products, a token for the next page, and an error.
	ListProductsPage(ctx context.Context, limit int, nextToken *string) ([]domain.Product, *string, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct replaces an existing product.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product and returns it.
	DeleteProduct(ctx context.Context, productID string) (*domain.Product, error)
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
