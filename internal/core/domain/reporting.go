package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReorderInfo is one row of the reorder list.
type ReorderInfo struct {
	ProductID         string          `json:"productID"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Unit              string          `json:"unit"`
	CurrentStock      int             `json:"currentStock"`
	ReorderPoint      int             `json:"reorderPoint"`
	SuggestedQuantity int             `json:"suggestedQuantity"` // 0 means no suggestion configured
	CostPrice         decimal.Decimal `json:"costPrice"`
	NeedsReorder      bool            `json:"needsReorder"`
}

// ReorderReport aggregates the reorder list with its estimated purchase cost.
type ReorderReport struct {
	ReportDate          time.Time       `json:"reportDate"`
	TotalItems          int             `json:"totalItems"`
	ReorderList         []ReorderInfo   `json:"reorderList"`
	TotalSuggestedValue decimal.Decimal `json:"totalSuggestedValue"`
}

// ReorderSuggestion proposes reorder settings derived from the safety stock.
type ReorderSuggestion struct {
	ProductID       string `json:"productID"`
	ReorderPoint    int    `json:"reorderPoint"`
	ReorderQuantity int    `json:"reorderQuantity"`
	Reasoning       string `json:"reasoning"`
}

// TransactionReport summarizes the ledger's transactions within a date range.
type TransactionReport struct {
	StartDate           time.Time             `json:"startDate"`
	EndDate             time.Time             `json:"endDate"`
	PurchaseOrders      []PurchaseOrder       `json:"purchaseOrders"`
	SalesOrders         []SalesOrder          `json:"salesOrders"`
	Adjustments         []InventoryAdjustment `json:"adjustments"`
	PurchaseCount       int                   `json:"purchaseCount"`
	SalesCount          int                   `json:"salesCount"`
	AdjustmentCount     int                   `json:"adjustmentCount"`
	TotalPurchaseAmount decimal.Decimal       `json:"totalPurchaseAmount"`
	TotalSalesAmount    decimal.Decimal       `json:"totalSalesAmount"`
	NetAmount           decimal.Decimal       `json:"netAmount"` // Sales minus purchases
}

// MovementSource names where a stock movement came from.
type MovementSource string

const (
	MovementPurchase   MovementSource = "purchase"
	MovementSale       MovementSource = "sale"
	MovementAdjustment MovementSource = "adjustment"
)

// MovementEntry is one signed stock movement of a product.
type MovementEntry struct {
	Date        time.Time      `json:"date"`
	Source      MovementSource `json:"source"`
	ReferenceID string         `json:"referenceID"`
	Quantity    int            `json:"quantity"` // Positive for stock in, negative for stock out
	Description string         `json:"description"`
}

// ProductMovementReport is the chronological stock ledger of a single product.
type ProductMovementReport struct {
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName"` // Empty when the product has been deleted
	Movements   []MovementEntry `json:"movements"`
	NetMovement int             `json:"netMovement"`
	TotalIn     int             `json:"totalIn"`
	TotalOut    int             `json:"totalOut"`
}

// InventoryReportRow is the valuation of one product.
type InventoryReportRow struct {
	ProductID    string          `json:"productID"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	CurrentStock int             `json:"currentStock"`
	SafetyStock  int             `json:"safetyStock"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	StockValue   decimal.Decimal `json:"stockValue"`
	IsLowStock   bool            `json:"isLowStock"`
}

// InventoryReport is the valuation of the whole catalog.
type InventoryReport struct {
	GeneratedAt   time.Time            `json:"generatedAt"`
	Rows          []InventoryReportRow `json:"rows"`
	ProductCount  int                  `json:"productCount"`
	TotalValue    decimal.Decimal      `json:"totalValue"`
	LowStockCount int                  `json:"lowStockCount"`
}

// Statistics are the dashboard figures of the ledger.
type Statistics struct {
	ProductCount        int             `json:"productCount"`
	PurchaseOrderCount  int             `json:"purchaseOrderCount"`
	SalesOrderCount     int             `json:"salesOrderCount"`
	TotalInventoryValue decimal.Decimal `json:"totalInventoryValue"`
	LowStockCount       int             `json:"lowStockCount"`
	NegativeStockCount  int             `json:"negativeStockCount"`
	PendingPurchases    int             `json:"pendingPurchases"`
	RecentActivities    []Activity      `json:"recentActivities"`
}

// CustomerSalesStats summarizes the sales orders of one customer.
type CustomerSalesStats struct {
	CustomerID    string          `json:"customerID"`
	TotalOrders   int             `json:"totalOrders"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	LastOrderDate *time.Time      `json:"lastOrderDate"`
}
