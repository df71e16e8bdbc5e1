package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/inventory_management_app/internal/apperrors"
	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	"github.com/SscSPs/inventory_management_app/internal/dto"
	"github.com/SscSPs/inventory_management_app/internal/utils"
	"github.com/SscSPs/inventory_management_app/internal/utils/accounting"
	"github.com/SscSPs/inventory_management_app/internal/utils/idgen"
)

type purchaseOrderService struct {
	BaseService
}

func (s *purchaseOrderService) CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest) (*domain.PurchaseOrder, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	items := dto.ToLineItems(req.Items)
	if err := checkLinePrices(items); err != nil {
		return nil, err
	}

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	return s.createLocked(ctx, req.SupplierID, req.OrderDate, items)
}

// createLocked validates references and stores a pending order. The caller holds the write lock.
func (s *purchaseOrderService) createLocked(ctx context.Context, supplierID string, orderDate time.Time, items []domain.LineItem) (*domain.PurchaseOrder, error) {
	supplier, err := s.ledger.repos.SupplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		s.LogFailure(ctx, err, "Purchase order references unknown supplier", slog.String("supplier_id", supplierID))
		return nil, fmt.Errorf("supplier %s: %w", supplierID, err)
	}
	for _, item := range items {
		if _, err := s.ledger.repos.ProductRepo.FindProductByID(ctx, item.ProductID); err != nil {
			s.LogFailure(ctx, err, "Purchase order references unknown product", slog.String("product_id", item.ProductID))
			return nil, fmt.Errorf("product %s: %w", item.ProductID, err)
		}
	}

	now := s.ledger.now()
	if orderDate.IsZero() {
		orderDate = now
	}
	order := domain.PurchaseOrder{
		PurchaseOrderID: s.ledger.ids.Next(idgen.PurchaseOrder),
		SupplierID:      supplier.SupplierID,
		OrderDate:       orderDate,
		Items:           domain.CloneItems(items),
		TotalAmount:     accounting.CalculateOrderTotal(items),
		Status:          domain.PurchasePending,
		Timestamps:      domain.NewTimestamps(now),
	}

	if err := s.ledger.repos.PurchaseOrderRepo.SavePurchaseOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "Failed to save purchase order", slog.String("purchase_order_id", order.PurchaseOrderID))
		return nil, err
	}

	s.ledger.record(ctx, domain.ActivityPurchase, order.PurchaseOrderID, "Created purchase order %s for supplier %s, total %s",
		order.PurchaseOrderID, supplier.Name, utils.FormatWithPrecision(order.TotalAmount, 2))
	s.LogInfo(ctx, "Purchase order created", slog.String("purchase_order_id", order.PurchaseOrderID), slog.Int("lines", len(order.Items)))
	return &order, nil
}

func (s *purchaseOrderService) ReceivePurchaseOrder(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	order, err := s.ledger.repos.PurchaseOrderRepo.FindPurchaseOrderByID(ctx, purchaseOrderID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find purchase order to receive", slog.String("purchase_order_id", purchaseOrderID))
		return nil, err
	}
	if order.IsReceived() {
		return nil, fmt.Errorf("%w: purchase order %s was already received", apperrors.ErrAlreadyProcessed, purchaseOrderID)
	}

	now := s.ledger.now()

	// Load every product once so repeated lines accumulate on the same copy.
	products := make(map[string]*domain.Product)
	originals := make([]domain.Product, 0, len(order.Items))
	updateOrder := make([]string, 0, len(order.Items))
	for _, item := range order.Items {
		product, seen := products[item.ProductID]
		if !seen {
			found, err := s.ledger.repos.ProductRepo.FindProductByID(ctx, item.ProductID)
			if err != nil {
				if !errors.Is(err, apperrors.ErrNotFound) {
					s.LogError(ctx, err, "Failed to load product for receipt", slog.String("product_id", item.ProductID))
					return nil, err
				}
				s.LogInfo(ctx, "Skipping receipt line for deleted product",
					slog.String("purchase_order_id", purchaseOrderID), slog.String("product_id", item.ProductID))
				products[item.ProductID] = nil
				continue
			}
			product = found
			products[item.ProductID] = product
			originals = append(originals, *found)
			updateOrder = append(updateOrder, item.ProductID)
		}
		if product == nil {
			continue
		}
		stock, err := accounting.AddQuantity(product.CurrentStock, item.Quantity)
		if err != nil {
			s.LogFailure(ctx, err, "Receipt would overflow stock", slog.String("product_id", item.ProductID))
			return nil, fmt.Errorf("product %s: %w", item.ProductID, err)
		}
		product.CurrentStock = stock
		product.CostPrice = item.UnitPrice
		product.Touch(now)
	}

	updated := make([]domain.Product, len(updateOrder))
	for i, productID := range updateOrder {
		updated[i] = *products[productID]
	}
	if err := s.ledger.updateProducts(ctx, updated, originals); err != nil {
		s.LogError(ctx, err, "Failed to update product stock on receipt", slog.String("purchase_order_id", purchaseOrderID))
		return nil, err
	}

	order.Status = domain.PurchaseReceived
	order.ReceivedDate = &now
	order.Touch(now)
	if err := s.ledger.repos.PurchaseOrderRepo.UpdatePurchaseOrder(ctx, *order); err != nil {
		s.LogError(ctx, err, "Failed to mark purchase order received", slog.String("purchase_order_id", purchaseOrderID))
		s.ledger.restoreProducts(ctx, originals)
		return nil, err
	}

	s.ledger.record(ctx, domain.ActivityPurchase, order.PurchaseOrderID, "Received purchase order %s", order.PurchaseOrderID)
	s.LogInfo(ctx, "Purchase order received", slog.String("purchase_order_id", purchaseOrderID))
	return order, nil
}

func (s *purchaseOrderService) GetPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()

	order, err := s.ledger.repos.PurchaseOrderRepo.FindPurchaseOrderByID(ctx, purchaseOrderID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find purchase order", slog.String("purchase_order_id", purchaseOrderID))
		return nil, err
	}
	return order, nil
}

func (s *purchaseOrderService) ListPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()
	return s.ledger.repos.PurchaseOrderRepo.ListPurchaseOrders(ctx)
}

func (s *purchaseOrderService) ListPendingPurchaseOrders(ctx context.Context) ([]domain.PurchaseOrder, error) {
	orders, err := s.ListPurchaseOrders(ctx)
	if err != nil {
		return nil, err
	}
	pending := make([]domain.PurchaseOrder, 0, len(orders))
	for _, order := range orders {
		if !order.IsReceived() {
			pending = append(pending, order)
		}
	}
	return pending, nil
}

func checkLinePrices(items []domain.LineItem) error {
	for _, item := range items {
		if item.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: unit price of product %s must not be negative", apperrors.ErrValidation, item.ProductID)
		}
	}
	return nil
}
