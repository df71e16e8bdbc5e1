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
	"github.com/SscSPs/inventory_management_app/internal/utils/idgen"
)

const walkInCustomer = "walk-in customer"

type salesOrderService struct {
	BaseService
}

// CreateSalesOrder checks stock for every line before deducting any of it, then ships the order.
func (s *salesOrderService) CreateSalesOrder(ctx context.Context, req dto.CreateSalesOrderRequest) (*domain.SalesOrder, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	items := dto.ToLineItems(req.Items)
	if err := checkLinePrices(items); err != nil {
		return nil, err
	}

	s.ledger.mu.Lock()
	defer s.ledger.mu.Unlock()

	var customerID *string
	customerName := walkInCustomer
	if req.CustomerID != nil && *req.CustomerID != "" {
		customer, err := s.ledger.repos.CustomerRepo.FindCustomerByID(ctx, *req.CustomerID)
		if err != nil {
			s.LogFailure(ctx, err, "Sales order references unknown customer", slog.String("customer_id", *req.CustomerID))
			return nil, fmt.Errorf("customer %s: %w", *req.CustomerID, err)
		}
		id := customer.CustomerID
		customerID = &id
		customerName = customer.Name
	}

	requested, productOrder, err := accounting.AggregateQuantities(items)
	if err != nil {
		return nil, err
	}
	products := make(map[string]*domain.Product, len(productOrder))
	for _, productID := range productOrder {
		product, err := s.ledger.repos.ProductRepo.FindProductByID(ctx, productID)
		if err != nil {
			s.LogFailure(ctx, err, "Sales order references unknown product", slog.String("product_id", productID))
			return nil, fmt.Errorf("product %s: %w", productID, err)
		}
		if product.CurrentStock < requested[productID] {
			err := &apperrors.InsufficientStockError{
				ProductID:   product.ProductID,
				ProductName: product.Name,
				Available:   product.CurrentStock,
				Requested:   requested[productID],
			}
			s.LogFailure(ctx, err, "Sales order rejected")
			return nil, err
		}
		products[productID] = product
	}

	now := s.ledger.now()
	orderDate := req.OrderDate
	if orderDate.IsZero() {
		orderDate = now
	}
	order := domain.SalesOrder{
		SalesOrderID: s.ledger.ids.Next(idgen.SalesOrder),
		CustomerID:   customerID,
		OrderDate:    orderDate,
		Items:        domain.CloneItems(items),
		TotalAmount:  accounting.CalculateOrderTotal(items),
		Status:       domain.SalesShipped,
		ShippedDate:  &now,
		Timestamps:   domain.NewTimestamps(now),
	}
	originals := make([]domain.Product, 0, len(productOrder))
	updated := make([]domain.Product, 0, len(productOrder))
	for _, productID := range productOrder {
		product := products[productID]
		originals = append(originals, *product)
		product.CurrentStock -= requested[productID]
		product.Touch(now)
		updated = append(updated, *product)
	}

	if err := s.ledger.updateProducts(ctx, updated, originals); err != nil {
		s.LogError(ctx, err, "Failed to deduct stock for sales order", slog.String("sales_order_id", order.SalesOrderID))
		return nil, err
	}
	if err := s.ledger.repos.SalesOrderRepo.SaveSalesOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "Failed to save sales order", slog.String("sales_order_id", order.SalesOrderID))
		s.ledger.restoreProducts(ctx, originals)
		return nil, err
	}

	s.ledger.record(ctx, domain.ActivitySales, order.SalesOrderID, "Created sales order %s for %s, total %s",
		order.SalesOrderID, customerName, utils.FormatWithPrecision(order.TotalAmount, 2))
	s.LogInfo(ctx, "Sales order created", slog.String("sales_order_id", order.SalesOrderID), slog.Int("lines", len(order.Items)))
	return &order, nil
}

func (s *salesOrderService) GetSalesOrderByID(ctx context.Context, salesOrderID string) (*domain.SalesOrder, error) {
	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()

	order, err := s.ledger.repos.SalesOrderRepo.FindSalesOrderByID(ctx, salesOrderID)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to find sales order", slog.String("sales_order_id", salesOrderID))
		return nil, err
	}
	return order, nil
}

func (s *salesOrderService) ListSalesOrders(ctx context.Context) ([]domain.SalesOrder, error) {
	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()
	return s.ledger.repos.SalesOrderRepo.ListSalesOrders(ctx)
}
