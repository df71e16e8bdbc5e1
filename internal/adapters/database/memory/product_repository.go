package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/inventory_management_app/internal/apperrors"
	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_management_app/internal/core/ports/repositories"
	"github.com/SscSPs/inventory_management_app/internal/utils/pagination"
)

// ProductRepository keeps products keyed by id.
type ProductRepository struct {
	products *table[domain.Product]
}

// NewProductRepository creates an empty product repository.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: newTable[domain.Product]()}
}

var _ portsrepo.ProductRepositoryFacade = (*ProductRepository)(nil)

// SaveProduct inserts a new product.
func (r *ProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	if !r.products.insert(product.ProductID, product) {
		return fmt.Errorf("%w: product with ID %s already exists", apperrors.ErrDuplicate, product.ProductID)
	}
	return nil
}

// UpdateProduct replaces a stored product.
func (r *ProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	if !r.products.replace(product.ProductID, product) {
		return fmt.Errorf("%w: product %s", apperrors.ErrNotFound, product.ProductID)
	}
	return nil
}

// DeleteProduct removes a product and returns what was stored.
func (r *ProductRepository) DeleteProduct(ctx context.Context, productID string) (*domain.Product, error) {
	product, ok := r.products.remove(productID)
	if !ok {
		return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	return &product, nil
}

// FindProductByID retrieves a product by its ID.
func (r *ProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, ok := r.products.get(productID)
	if !ok {
		return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}
	return &product, nil
}

// FindProductByCode retrieves a product by code, ignoring case and surrounding spaces.
func (r *ProductRepository) FindProductByCode(ctx context.Context, code string) (*domain.Product, error) {
	product, ok := r.products.find(func(p domain.Product) bool { return sameKey(p.Code, code) })
	if !ok {
		return nil, fmt.Errorf("%w: product with code %s", apperrors.ErrNotFound, code)
	}
	return &product, nil
}

// ListProducts retrieves all products in creation order.
func (r *ProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return r.products.all(), nil
}

// ListProductsPage retrieves up to limit products after the cursor in nextToken.
func (r *ProductRepository) ListProductsPage(ctx context.Context, limit int, nextToken *string) ([]domain.Product, *string, error) {
	cursor := ""
	if nextToken != nil && *nextToken != "" {
		_, id, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = id
	}

	page, more, ok := r.products.after(cursor, limit)
	if !ok {
		// The cursor row was deleted; fall back to creation time.
		createdAt, _, _ := pagination.DecodeToken(*nextToken)
		page, more = r.pageAfterTime(createdAt, cursor, limit)
	}

	var token *string
	if more && len(page) > 0 {
		last := page[len(page)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.ProductID)
		token = &t
	}
	return page, token, nil
}

func (r *ProductRepository) pageAfterTime(createdAt time.Time, cursor string, limit int) ([]domain.Product, bool) {
	all := r.products.all()
	page := make([]domain.Product, 0, limit)
	for i, p := range all {
		if p.CreatedAt.Before(createdAt) || (p.CreatedAt.Equal(createdAt) && p.ProductID <= cursor) {
			continue
		}
		if len(page) == limit {
			return page, true
		}
		page = append(page, all[i])
	}
	return page, false
}
