package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus indicates the state of a purchase order.
type PurchaseOrderStatus string

const (
	PurchasePending  PurchaseOrderStatus = "pending"
	PurchaseReceived PurchaseOrderStatus = "received"
)

// SalesOrderStatus indicates the state of a sales order.
type SalesOrderStatus string

const (
	SalesPending SalesOrderStatus = "pending"
	SalesShipped SalesOrderStatus = "shipped"
)

// LineItem is one product line of an order.
type LineItem struct {
	ProductID string          `json:"productID"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Total returns Quantity × UnitPrice.
func (li LineItem) Total() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// PurchaseOrder records goods ordered from a supplier. TotalAmount is fixed at creation.
type PurchaseOrder struct {
	PurchaseOrderID string              `json:"purchaseOrderID"`
	SupplierID      string              `json:"supplierID"`
	OrderDate       time.Time           `json:"orderDate"`
	Items           []LineItem          `json:"items"`
	TotalAmount     decimal.Decimal     `json:"totalAmount"`
	Status          PurchaseOrderStatus `json:"status"`
	ReceivedDate    *time.Time          `json:"receivedDate"`
	Timestamps
}

// IsReceived reports whether the order reached its terminal state.
func (po PurchaseOrder) IsReceived() bool {
	return po.Status == PurchaseReceived
}

// SalesOrder records goods sold. A nil CustomerID denotes a walk-in sale.
type SalesOrder struct {
	SalesOrderID string           `json:"salesOrderID"`
	CustomerID   *string          `json:"customerID"`
	OrderDate    time.Time        `json:"orderDate"`
	Items        []LineItem       `json:"items"`
	TotalAmount  decimal.Decimal  `json:"totalAmount"`
	Status       SalesOrderStatus `json:"status"`
	ShippedDate  *time.Time       `json:"shippedDate"`
	Timestamps
}

// CloneItems returns a copy of items so stored orders never share a backing array with callers.
func CloneItems(items []LineItem) []LineItem {
	if items == nil {
		return nil
	}
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}
