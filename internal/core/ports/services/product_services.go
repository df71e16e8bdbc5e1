package services

import (
	"context"

	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	"github.com/SscSPs/inventory_management_app/internal/dto"
)

// ProductReaderSvc defines read operations for product data
type ProductReaderSvc interface {
	// GetProductByID retrieves a specific product by its unique identifier.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves all products in creation order.
	ListProducts(ctx context.Context) ([]domain.Product, error)

	// ListProductsPage retrieves a page of products using token-based pagination.
	ListProductsPage(ctx context.Context, limit int, nextToken *string) ([]domain.Product, *string, error)

	// SearchProducts matches the keyword case-insensitively against code, name and spec.
	SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error)

	// GetLowStockProducts retrieves all products at or below their safety stock.
	GetLowStockProducts(ctx context.Context) ([]domain.Product, error)
}

// ProductWriterSvc defines write operations for product data
type ProductWriterSvc interface {
	// CreateProduct adds a new product with zero stock.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error)

	// UpdateProduct applies the provided fields to an existing product.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error)

	// DeleteProduct removes a product and returns it. Orders referencing it are left untouched.
	DeleteProduct(ctx context.Context, productID string) (*domain.Product, error)
}

// ProductSvcFacade combines all product-related service interfaces
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
