package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/inventory_management_app/internal/apperrors"
	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	"github.com/SscSPs/inventory_management_app/internal/dto"
	"github.com/SscSPs/inventory_management_app/internal/utils"
	"github.com/SscSPs/inventory_management_app/internal/utils/idgen"
	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

type productService struct {
	BaseService
}

func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest) (*domain.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := checkPrices(req.SalePrice, req.CostPrice); err != nil {
		return nil, err
	}

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	code := strings.TrimSpace(req.Code)
	if err := s.ensureCodeAvailable(ctx, code, ""); err != nil {
		return nil, err
	}

	product := domain.Product{
		ProductID:       s.ledger.ids.Next(idgen.Product),
		Code:            code,
		Name:            strings.TrimSpace(req.Name),
		Spec:            req.Spec,
		Unit:            req.Unit,
		SalePrice:       req.SalePrice,
		CostPrice:       req.CostPrice,
		SafetyStock:     req.SafetyStock,
		ReorderPoint:    req.ReorderPoint,
		ReorderQuantity: req.ReorderQuantity,
		Timestamps:      domain.NewTimestamps(s.ledger.now()),
	}

	if err := s.ledger.repos.ProductRepo.SaveProduct(ctx, product); err != nil {
		s.LogError(ctx, err, "Failed to save product", slog.String("product_id", product.ProductID))
		return nil, err
	}

	s.ledger.record(ctx, domain.ActivityProduct, product.ProductID, "Added product %s (%s)", product.Name, product.Code)
	s.LogInfo(ctx, "Product created", slog.String("product_id", product.ProductID), slog.String("code", product.Code))
	return &product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest) (*domain.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	var sale, cost decimal.Decimal
	if req.SalePrice != nil {
		sale = *req.SalePrice
	}
	if req.CostPrice != nil {
		cost = *req.CostPrice
	}
	if err := checkPrices(sale, cost); err != nil {
		return nil, err
	}

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	product, err := s.ledger.repos.ProductRepo.FindProductByID(ctx, productID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find product for update", slog.String("product_id", productID))
		return nil, err
	}

	if req.Code != nil {
		code := strings.TrimSpace(*req.Code)
		if err := s.ensureCodeAvailable(ctx, code, productID); err != nil {
			return nil, err
		}
		product.Code = code
	}
	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Spec != nil {
		product.Spec = *req.Spec
	}
	if req.Unit != nil {
		product.Unit = *req.Unit
	}
	if req.SalePrice != nil {
		product.SalePrice = *req.SalePrice
	}
	if req.CostPrice != nil {
		product.CostPrice = *req.CostPrice
	}
	if req.SafetyStock != nil {
		product.SafetyStock = *req.SafetyStock
	}
	if req.ReorderPoint != nil {
		product.ReorderPoint = *req.ReorderPoint
	}
	if req.ReorderQuantity != nil {
		product.ReorderQuantity = *req.ReorderQuantity
	}
	product.Touch(s.ledger.now())

	if err := s.ledger.repos.ProductRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.String("product_id", productID))
		return nil, err
	}

	s.ledger.record(ctx, domain.ActivityProduct, product.ProductID, "Updated product %s (%s)", product.Name, product.Code)
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID string) (*domain.Product, error) {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	product, err := s.ledger.repos.ProductRepo.DeleteProduct(ctx, productID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to delete product", slog.String("product_id", productID))
		return nil, err
	}

	s.ledger.record(ctx, domain.ActivityProduct, product.ProductID, "Deleted product %s (%s)", product.Name, product.Code)
	s.LogInfo(ctx, "Product deleted", slog.String("product_id", productID))
	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()

	product, err := s.ledger.repos.ProductRepo.FindProductByID(ctx, productID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find product", slog.String("product_id", productID))
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()
	return s.ledger.repos.ProductRepo.ListProducts(ctx)
}

func (s *productService) ListProductsPage(ctx context.Context, limit int, nextToken *string) ([]domain.Product, *string, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()

	products, token, err := s.ledger.repos.ProductRepo.ListProductsPage(ctx, limit, nextToken)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to list products page", slog.Int("limit", limit))
		return nil, nil, err
	}
	return products, token, nil
}

func (s *productService) SearchProducts(ctx context.Context, keyword string) ([]domain.Product, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	matches := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if matchesKeyword(keyword, p.Code, p.Name, p.Spec) {
			matches = append(matches, p)
		}
	}
	return matches, nil
}

func (s *productService) GetLowStockProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]domain.Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}

// ensureCodeAvailable fails with ErrDuplicate when another live product already uses code.
func (s *productService) ensureCodeAvailable(ctx context.Context, code string, selfID string) error {
	existing, err := s.ledger.repos.ProductRepo.FindProductByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		s.LogError(ctx, err, "Failed to check product code", slog.String("code", code))
		return err
	}
	if existing.ProductID == selfID {
		return nil
	}
	return fmt.Errorf("%w: product code %s is already used by %s", apperrors.ErrDuplicate, code, existing.ProductID)
}

func checkPrices(prices ...decimal.Decimal) error {
	for _, price := range prices {
		if price.IsNegative() {
			return fmt.Errorf("%w: prices must not be negative", apperrors.ErrValidation)
		}
	}
	return nil
}
