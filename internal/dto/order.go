package dto

import (
	"time"

	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UnknownName is shown for references whose target has been deleted.
const UnknownName = "unknown"

// LineItemRequest is one order line in a create request.
type LineItemRequest struct {
	ProductID string          `json:"productID" validate:"required"`
	Quantity  int             `json:"quantity" validate:"gt=0,lte=1000000"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CreatePurchaseOrderRequest defines the data needed to create a purchase order.
type CreatePurchaseOrderRequest struct {
	SupplierID string            `json:"supplierID" validate:"required"`
	OrderDate  time.Time         `json:"orderDate"` // Defaults to now when omitted
	Items      []LineItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateSalesOrderRequest defines the data needed to create a sales order.
// A nil CustomerID records a walk-in sale.
type CreateSalesOrderRequest struct {
	CustomerID *string           `json:"customerID"`
	OrderDate  time.Time         `json:"orderDate"` // Defaults to now when omitted
	Items      []LineItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ListPurchaseOrdersParams filters the purchase order list.
type ListPurchaseOrdersParams struct {
	Status string `form:"status" validate:"omitempty,oneof=pending received"`
}

// LineItemResponse is one order line in a response.
type LineItemResponse struct {
	ProductID string          `json:"productID"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// PurchaseOrderResponse defines the data returned for a purchase order.
type PurchaseOrderResponse struct {
	PurchaseOrderID string                     `json:"purchaseOrderID"`
	SupplierID      string                     `json:"supplierID"`
	SupplierName    string                     `json:"supplierName"`
	OrderDate       time.Time                  `json:"orderDate"`
	Items           []LineItemResponse         `json:"items"`
	TotalAmount     decimal.Decimal            `json:"totalAmount"`
	Status          domain.PurchaseOrderStatus `json:"status"`
	ReceivedDate    *time.Time                 `json:"receivedDate"`
	CreatedAt       time.Time                  `json:"createdAt"`
	UpdatedAt       time.Time                  `json:"updatedAt"`
}

// SalesOrderResponse defines the data returned for a sales order.
type SalesOrderResponse struct {
	SalesOrderID string                  `json:"salesOrderID"`
	CustomerID   *string                 `json:"customerID"`
	CustomerName string                  `json:"customerName"`
	OrderDate    time.Time               `json:"orderDate"`
	Items        []LineItemResponse      `json:"items"`
	TotalAmount  decimal.Decimal         `json:"totalAmount"`
	Status       domain.SalesOrderStatus `json:"status"`
	ShippedDate  *time.Time              `json:"shippedDate"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}

// ToLineItems converts request lines to domain line items.
func ToLineItems(items []LineItemRequest) []domain.LineItem {
	res := make([]domain.LineItem, len(items))
	for i, item := range items {
		res[i] = domain.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return res
}

func toLineItemResponses(items []domain.LineItem) []LineItemResponse {
	res := make([]LineItemResponse, len(items))
	for i, item := range items {
		res[i] = LineItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			LineTotal: item.Total(),
		}
	}
	return res
}

// ToPurchaseOrderResponse converts a domain.PurchaseOrder to its DTO.
// supplierName should be UnknownName when the supplier no longer exists.
func ToPurchaseOrderResponse(po *domain.PurchaseOrder, supplierName string) PurchaseOrderResponse {
	return PurchaseOrderResponse{
		PurchaseOrderID: po.PurchaseOrderID,
		SupplierID:      po.SupplierID,
		SupplierName:    supplierName,
		OrderDate:       po.OrderDate,
		Items:           toLineItemResponses(po.Items),
		TotalAmount:     po.TotalAmount,
		Status:          po.Status,
		ReceivedDate:    po.ReceivedDate,
		CreatedAt:       po.CreatedAt,
		UpdatedAt:       po.UpdatedAt,
	}
}

// ToSalesOrderResponse converts a domain.SalesOrder to its DTO.
// customerName is empty for walk-in sales and UnknownName when the customer no longer exists.
func ToSalesOrderResponse(so *domain.SalesOrder, customerName string) SalesOrderResponse {
	return SalesOrderResponse{
		SalesOrderID: so.SalesOrderID,
		CustomerID:   so.CustomerID,
		CustomerName: customerName,
		OrderDate:    so.OrderDate,
		Items:        toLineItemResponses(so.Items),
		TotalAmount:  so.TotalAmount,
		Status:       so.Status,
		ShippedDate:  so.ShippedDate,
		CreatedAt:    so.CreatedAt,
		UpdatedAt:    so.UpdatedAt,
	}
}
