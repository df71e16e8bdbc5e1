package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/inventory_management_app/internal/apperrors"
	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	"github.com/SscSPs/inventory_management_app/internal/dto"
	"github.com/SscSPs/inventory_management_app/internal/utils"
	"github.com/SscSPs/inventory_management_app/internal/utils/accounting"
	"github.com/SscSPs/inventory_management_app/internal/utils/idgen"
)

type inventoryService struct {
	BaseService
}

func (s *inventoryService) AdjustInventory(ctx context.Context, req dto.AdjustInventoryRequest) (*dto.AdjustInventoryResult, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := checkAdjustment(req.AdjustmentType, req.Quantity); err != nil {
		return nil, err
	}

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	product, err := s.ledger.repos.ProductRepo.FindProductByID(ctx, req.ProductID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find product to adjust", slog.String("product_id", req.ProductID))
		return nil, err
	}

	snapshot := *product
	original := product.CurrentStock
	switch req.AdjustmentType {
	case domain.AdjustIncrease:
		stock, err := accounting.AddQuantity(product.CurrentStock, req.Quantity)
		if err != nil {
			s.LogFailure(ctx, err, "Increase would overflow stock", slog.String("product_id", product.ProductID))
			return nil, err
		}
		product.CurrentStock = stock
	case domain.AdjustDecrease:
		if product.CurrentStock < req.Quantity {
			return nil, &apperrors.InsufficientStockError{
				ProductID:   product.ProductID,
				ProductName: product.Name,
				Available:   product.CurrentStock,
				Requested:   req.Quantity,
			}
		}
		product.CurrentStock -= req.Quantity
	case domain.AdjustSet:
		product.CurrentStock = req.Quantity
	}

	now := s.ledger.now()
	product.Touch(now)
	adjustment := domain.InventoryAdjustment{
		AdjustmentID:   s.ledger.ids.Next(idgen.Adjustment),
		ProductID:      product.ProductID,
		AdjustmentType: req.AdjustmentType,
		Quantity:       req.Quantity,
		OriginalStock:  original,
		NewStock:       product.CurrentStock,
		Reason:         strings.TrimSpace(req.Reason),
		CreatedAt:      now,
	}

	if err := s.ledger.repos.ProductRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product stock", slog.String("product_id", product.ProductID))
		return nil, err
	}
	if err := s.ledger.repos.AdjustmentRepo.AppendAdjustment(ctx, adjustment); err != nil {
		s.LogError(ctx, err, "Failed to record adjustment", slog.String("adjustment_id", adjustment.AdjustmentID))
		s.ledger.restoreProducts(ctx, []domain.Product{snapshot})
		return nil, err
	}

	s.ledger.record(ctx, domain.ActivityInventory, product.ProductID, "Adjusted stock of %s: %s %d (%d -> %d), reason: %s",
		product.Name, adjustment.AdjustmentType, adjustment.Quantity, original, product.CurrentStock, adjustment.Reason)
	s.LogInfo(ctx, "Inventory adjusted",
		slog.String("product_id", product.ProductID),
		slog.String("type", string(adjustment.AdjustmentType)),
		slog.Int("original_stock", original),
		slog.Int("new_stock", product.CurrentStock))

	return &dto.AdjustInventoryResult{Product: *product, Adjustment: adjustment}, nil
}

func (s *inventoryService) ListAdjustments(ctx context.Context) ([]domain.InventoryAdjustment, error) {
	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()
	return s.ledger.repos.AdjustmentRepo.ListAdjustments(ctx)
}

func (s *inventoryService) ListAdjustmentsByProduct(ctx context.Context, productID string) ([]domain.InventoryAdjustment, error) {
	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()
	return s.ledger.repos.AdjustmentRepo.ListAdjustmentsByProduct(ctx, productID)
}

func checkAdjustment(adjustmentType domain.AdjustmentType, quantity int) error {
	switch adjustmentType {
	case domain.AdjustIncrease, domain.AdjustDecrease:
		if quantity <= 0 {
			return fmt.Errorf("%w: %s quantity must be greater than zero", apperrors.ErrValidation, adjustmentType)
		}
	case domain.AdjustSet:
		if quantity < 0 {
			return fmt.Errorf("%w: stock cannot be set to a negative quantity", apperrors.ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown adjustment type %q", apperrors.ErrValidation, adjustmentType)
	}
	return nil
}
