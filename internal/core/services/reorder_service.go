package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/inventory_management_app/internal/apperrors"
	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	"github.com/SscSPs/inventory_management_app/internal/dto"
	"github.com/SscSPs/inventory_management_app/internal/utils"
	"github.com/SscSPs/inventory_management_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type reorderService struct {
	BaseService
	purchaseOrders *purchaseOrderService
}

func (s *reorderService) GetReorderList(ctx context.Context) ([]domain.ReorderInfo, error) {
	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()
	return s.reorderListLocked(ctx)
}

func (s *reorderService) reorderListLocked(ctx context.Context) ([]domain.ReorderInfo, error) {
	products, err := s.ledger.repos.ProductRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products for reorder")
		return nil, err
	}
	list := make([]domain.ReorderInfo, 0)
	for _, p := range products {
		if p.NeedsReorder() {
			list = append(list, p.ReorderInfo())
		}
	}
	return list, nil
}

func (s *reorderService) GenerateReorderReport(ctx context.Context) (*domain.ReorderReport, error) {
	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()

	list, err := s.reorderListLocked(ctx)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, info := range list {
		total = total.Add(accounting.CalculateReorderCost(info.SuggestedQuantity, info.CostPrice))
	}
	return &domain.ReorderReport{
		ReportDate:          s.ledger.now(),
		TotalItems:          len(list),
		ReorderList:         list,
		TotalSuggestedValue: total,
	}, nil
}

func (s *reorderService) UpdateReorderSettings(ctx context.Context, productID string, req dto.UpdateReorderSettingsRequest) (*domain.Product, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	product, err := s.ledger.repos.ProductRepo.FindProductByID(ctx, productID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find product for reorder settings", slog.String("product_id", productID))
		return nil, err
	}
	if req.ReorderPoint != nil {
		product.ReorderPoint = *req.ReorderPoint
	}
	if req.ReorderQuantity != nil {
		product.ReorderQuantity = *req.ReorderQuantity
	}
	product.Touch(s.ledger.now())

	if err := s.ledger.repos.ProductRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update reorder settings", slog.String("product_id", productID))
		return nil, err
	}

	s.ledger.record(ctx, domain.ActivityProduct, product.ProductID, "Updated reorder settings of %s: reorder point %d, quantity %d",
		product.Name, product.ReorderPoint, product.ReorderQuantity)
	return product, nil
}

func (s *reorderService) GetReorderSuggestion(ctx context.Context, productID string) (*domain.ReorderSuggestion, error) {
	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()

	product, err := s.ledger.repos.ProductRepo.FindProductByID(ctx, productID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find product for reorder suggestion", slog.String("product_id", productID))
		return nil, err
	}

	rop, qty := accounting.SuggestReorderSettings(product.SafetyStock)
	return &domain.ReorderSuggestion{
		ProductID:       product.ProductID,
		ReorderPoint:    rop,
		ReorderQuantity: qty,
		Reasoning: fmt.Sprintf("With a safety stock of %d %s, reorder at %d (120%% of safety stock, at least 10) and order %d (twice the safety stock, at least 50).",
			product.SafetyStock, product.Unit, rop, qty),
	}, nil
}

func (s *reorderService) QuickReorder(ctx context.Context, productID string, supplierID string) (*domain.PurchaseOrder, error) {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	product, err := s.ledger.repos.ProductRepo.FindProductByID(ctx, productID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find product for quick reorder", slog.String("product_id", productID))
		return nil, err
	}
	if !product.NeedsReorder() {
		return nil, fmt.Errorf("%w: product %s is above its reorder point", apperrors.ErrValidation, productID)
	}
	qty := product.SuggestedReorderQuantity()
	if qty == 0 {
		return nil, fmt.Errorf("%w: product %s has no reorder quantity configured", apperrors.ErrValidation, productID)
	}

	items := []domain.LineItem{{ProductID: product.ProductID, Quantity: qty, UnitPrice: product.CostPrice}}
	return s.purchaseOrders.createLocked(ctx, supplierID, s.ledger.now(), items)
}
