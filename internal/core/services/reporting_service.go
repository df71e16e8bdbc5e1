package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/inventory_management_app/internal/apperrors"
	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

const recentActivityCount = 5

type reportingService struct {
	BaseService
}

func (s *reportingService) TransactionReport(ctx context.Context, start, end time.Time) (*domain.TransactionReport, error) {
	if start.After(end) {
		return nil, fmt.Errorf("%w: start date %s is after end date %s", apperrors.ErrValidation,
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()

	purchases, err := s.ledger.repos.PurchaseOrderRepo.ListPurchaseOrders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchase orders for report")
		return nil, err
	}
	sales, err := s.ledger.repos.SalesOrderRepo.ListSalesOrders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales orders for report")
		return nil, err
	}
	adjustments, err := s.ledger.repos.AdjustmentRepo.ListAdjustments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list adjustments for report")
		return nil, err
	}

	report := &domain.TransactionReport{
		StartDate:           start,
		EndDate:             end,
		PurchaseOrders:      make([]domain.PurchaseOrder, 0),
		SalesOrders:         make([]domain.SalesOrder, 0),
		Adjustments:         make([]domain.InventoryAdjustment, 0),
		TotalPurchaseAmount: decimal.Zero,
		TotalSalesAmount:    decimal.Zero,
	}
	for _, po := range purchases {
		if po.IsReceived() && inRange(po.OrderDate, &start, &end) {
			report.PurchaseOrders = append(report.PurchaseOrders, po)
			report.TotalPurchaseAmount = report.TotalPurchaseAmount.Add(po.TotalAmount)
		}
	}
	for _, so := range sales {
		if inRange(so.OrderDate, &start, &end) {
			report.SalesOrders = append(report.SalesOrders, so)
			report.TotalSalesAmount = report.TotalSalesAmount.Add(so.TotalAmount)
		}
	}
	for _, adj := range adjustments {
		if inRange(adj.CreatedAt, &start, &end) {
			report.Adjustments = append(report.Adjustments, adj)
		}
	}
	report.PurchaseCount = len(report.PurchaseOrders)
	report.SalesCount = len(report.SalesOrders)
	report.AdjustmentCount = len(report.Adjustments)
	report.NetAmount = report.TotalSalesAmount.Sub(report.TotalPurchaseAmount)
	return report, nil
}

// ProductMovementReport also works for deleted products as long as their history remains.
func (s *reportingService) ProductMovementReport(ctx context.Context, productID string, start, end *time.Time) (*domain.ProductMovementReport, error) {
	if start != nil && end != nil && start.After(*end) {
		return nil, fmt.Errorf("%w: start date is after end date", apperrors.ErrValidation)
	}

	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()

	report := &domain.ProductMovementReport{ProductID: productID, Movements: make([]domain.MovementEntry, 0)}
	known := false
	if product, err := s.ledger.repos.ProductRepo.FindProductByID(ctx, productID); err == nil {
		report.ProductName = product.Name
		known = true
	}

	purchases, err := s.ledger.repos.PurchaseOrderRepo.ListPurchaseOrders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchase orders for movement report")
		return nil, err
	}
	for _, po := range purchases {
		for _, item := range po.Items {
			if item.ProductID != productID {
				continue
			}
			known = true
			if !po.IsReceived() || po.ReceivedDate == nil || !inRange(*po.ReceivedDate, start, end) {
				continue
			}
			report.Movements = append(report.Movements, domain.MovementEntry{
				Date:        *po.ReceivedDate,
				Source:      domain.MovementPurchase,
				ReferenceID: po.PurchaseOrderID,
				Quantity:    item.Quantity,
				Description: fmt.Sprintf("Received on purchase order %s", po.PurchaseOrderID),
			})
		}
	}

	sales, err := s.ledger.repos.SalesOrderRepo.ListSalesOrders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales orders for movement report")
		return nil, err
	}
	for _, so := range sales {
		for _, item := range so.Items {
			if item.ProductID != productID {
				continue
			}
			known = true
			if !inRange(so.OrderDate, start, end) {
				continue
			}
			report.Movements = append(report.Movements, domain.MovementEntry{
				Date:        so.OrderDate,
				Source:      domain.MovementSale,
				ReferenceID: so.SalesOrderID,
				Quantity:    -item.Quantity,
				Description: fmt.Sprintf("Sold on sales order %s", so.SalesOrderID),
			})
		}
	}

	adjustments, err := s.ledger.repos.AdjustmentRepo.ListAdjustmentsByProduct(ctx, productID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list adjustments for movement report")
		return nil, err
	}
	for _, adj := range adjustments {
		known = true
		if !inRange(adj.CreatedAt, start, end) {
			continue
		}
		report.Movements = append(report.Movements, domain.MovementEntry{
			Date:        adj.CreatedAt,
			Source:      domain.MovementAdjustment,
			ReferenceID: adj.AdjustmentID,
			Quantity:    adj.Delta(),
			Description: fmt.Sprintf("Adjustment (%s): %s", adj.AdjustmentType, adj.Reason),
		})
	}

	if !known {
		s.LogDebug(ctx, "Movement report requested for unknown product", slog.String("product_id", productID))
		return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
	}

	sort.SliceStable(report.Movements, func(i, j int) bool {
		return report.Movements[i].Date.Before(report.Movements[j].Date)
	})
	for _, m := range report.Movements {
		report.NetMovement += m.Quantity
		if m.Quantity > 0 {
			report.TotalIn += m.Quantity
		} else {
			report.TotalOut -= m.Quantity
		}
	}
	return report, nil
}

func (s *reportingService) InventoryReport(ctx context.Context) (*domain.InventoryReport, error) {
	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()

	products, err := s.ledger.repos.ProductRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products for inventory report")
		return nil, err
	}

	report := &domain.InventoryReport{
		GeneratedAt:  s.ledger.now(),
		Rows:         make([]domain.InventoryReportRow, 0, len(products)),
		ProductCount: len(products),
		TotalValue:   decimal.Zero,
	}
	for _, p := range products {
		row := domain.InventoryReportRow{
			ProductID:    p.ProductID,
			Code:         p.Code,
			Name:         p.Name,
			CurrentStock: p.CurrentStock,
			SafetyStock:  p.SafetyStock,
			CostPrice:    p.CostPrice,
			StockValue:   p.StockValue(),
			IsLowStock:   p.IsLowStock(),
		}
		report.Rows = append(report.Rows, row)
		report.TotalValue = report.TotalValue.Add(row.StockValue)
		if row.IsLowStock {
			report.LowStockCount++
		}
	}
	return report, nil
}

func (s *reportingService) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()

	products, err := s.ledger.repos.ProductRepo.ListProducts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products for statistics")
		return nil, err
	}
	purchases, err := s.ledger.repos.PurchaseOrderRepo.ListPurchaseOrders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchase orders for statistics")
		return nil, err
	}
	sales, err := s.ledger.repos.SalesOrderRepo.ListSalesOrders(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales orders for statistics")
		return nil, err
	}
	recent, err := s.ledger.repos.ActivityRepo.ListRecentActivities(ctx, recentActivityCount)
	if err != nil {
		s.LogError(ctx, err, "Failed to list activities for statistics")
		return nil, err
	}

	stats := &domain.Statistics{
		ProductCount:        len(products),
		PurchaseOrderCount:  len(purchases),
		SalesOrderCount:     len(sales),
		TotalInventoryValue: decimal.Zero,
		RecentActivities:    recent,
	}
	for _, p := range products {
		stats.TotalInventoryValue = stats.TotalInventoryValue.Add(p.StockValue())
		if p.IsLowStock() {
			stats.LowStockCount++
		}
		if p.CurrentStock < 0 {
			stats.NegativeStockCount++
		}
	}
	for _, po := range purchases {
		if !po.IsReceived() {
			stats.PendingPurchases++
		}
	}
	return stats, nil
}
