package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/inventory_management_app/internal/apperrors"
	portssvc "github.com/SscSPs/inventory_management_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_management_app/internal/dto"
	"github.com/SscSPs/inventory_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler handles HTTP requests for purchase and sales orders.
type orderHandler struct {
	purchaseOrderService portssvc.PurchaseOrderSvcFacade
	salesOrderService    portssvc.SalesOrderSvcFacade
	supplierService      portssvc.SupplierReaderSvc
	customerService      portssvc.CustomerReaderSvc
}

// registerOrderRoutes registers purchase order and sales order routes.
func registerOrderRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &orderHandler{
		purchaseOrderService: services.PurchaseOrder,
		salesOrderService:    services.SalesOrder,
		supplierService:      services.Supplier,
		customerService:      services.Customer,
	}

	purchaseOrders := rg.Group("/purchase-orders")
	{
		purchaseOrders.POST("", h.createPurchaseOrder)
		purchaseOrders.GET("", h.listPurchaseOrders)
		purchaseOrders.GET("/:id", h.getPurchaseOrder)
		purchaseOrders.POST("/:id/receive", h.receivePurchaseOrder)
	}

	salesOrders := rg.Group("/sales-orders")
	{
		salesOrders.POST("", h.createSalesOrder)
		salesOrders.GET("", h.listSalesOrders)
		salesOrders.GET("/:id", h.getSalesOrder)
	}
}

// supplierName resolves a supplier for display. Deleted suppliers show as unknown.
func supplierName(c *gin.Context, svc portssvc.SupplierReaderSvc, supplierID string) string {
	supplier, err := svc.GetSupplierByID(c.Request.Context(), supplierID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to resolve supplier name",
				slog.String("supplier_id", supplierID), slog.String("error", err.Error()))
		}
		return dto.UnknownName
	}
	return supplier.Name
}

// customerName resolves a customer for display. Walk-in sales have no name.
func customerName(c *gin.Context, svc portssvc.CustomerReaderSvc, customerID *string) string {
	if customerID == nil {
		return ""
	}
	customer, err := svc.GetCustomerByID(c.Request.Context(), *customerID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to resolve customer name",
				slog.String("customer_id", *customerID), slog.String("error", err.Error()))
		}
		return dto.UnknownName
	}
	return customer.Name
}

// createPurchaseOrder godoc
// @Summary Create a purchase order
// @Description Records a pending purchase order. Stock changes only when it is received.
// @Tags purchase-orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreatePurchaseOrderRequest true "Purchase order"
// @Success 201 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Supplier or product not found"
// @Failure 500 {object} map[string]string "Failed to create purchase order"
// @Router /purchase-orders [post]
func (h *orderHandler) createPurchaseOrder(c *gin.Context) {
	var req dto.CreatePurchaseOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.purchaseOrderService.CreatePurchaseOrder(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to create purchase order")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPurchaseOrderResponse(order, supplierName(c, h.supplierService, order.SupplierID)))
}

// listPurchaseOrders godoc
// @Summary List purchase orders
// @Tags purchase-orders
// @Produce  json
// @Param   status query string false "Filter by status" Enums(pending, received)
// @Success 200 {array} dto.PurchaseOrderResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Router /purchase-orders [get]
func (h *orderHandler) listPurchaseOrders(c *gin.Context) {
	var params dto.ListPurchaseOrdersParams
	if !bindQuery(c, &params) {
		return
	}

	ctx := c.Request.Context()
	orders, err := h.purchaseOrderService.ListPurchaseOrders(ctx)
	if params.Status == "pending" {
		orders, err = h.purchaseOrderService.ListPendingPurchaseOrders(ctx)
	}
	if err != nil {
		respondWithError(c, err, "Failed to list purchase orders")
		return
	}

	names := make(map[string]string)
	res := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for i := range orders {
		if params.Status != "" && string(orders[i].Status) != params.Status {
			continue
		}
		name, ok := names[orders[i].SupplierID]
		if !ok {
			name = supplierName(c, h.supplierService, orders[i].SupplierID)
			names[orders[i].SupplierID] = name
		}
		res = append(res, dto.ToPurchaseOrderResponse(&orders[i], name))
	}
	c.JSON(http.StatusOK, res)
}

// getPurchaseOrder godoc
// @Summary Get a purchase order by ID
// @Tags purchase-orders
// @Produce  json
// @Param   id path string true "Purchase order ID"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 404 {object} map[string]string "Purchase order not found"
// @Router /purchase-orders/{id} [get]
func (h *orderHandler) getPurchaseOrder(c *gin.Context) {
	order, err := h.purchaseOrderService.GetPurchaseOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve purchase order")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(order, supplierName(c, h.supplierService, order.SupplierID)))
}

// receivePurchaseOrder godoc
// @Summary Receive a purchase order
// @Description Books the goods into stock and updates each product's cost price
// @Tags purchase-orders
// @Produce  json
// @Param   id path string true "Purchase order ID"
// @Success 200 {object} dto.PurchaseOrderResponse
// @Failure 404 {object} map[string]string "Purchase order not found"
// @Failure 409 {object} map[string]string "Purchase order already received"
// @Router /purchase-orders/{id}/receive [post]
func (h *orderHandler) receivePurchaseOrder(c *gin.Context) {
	order, err := h.purchaseOrderService.ReceivePurchaseOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to receive purchase order")
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseOrderResponse(order, supplierName(c, h.supplierService, order.SupplierID)))
}

// createSalesOrder godoc
// @Summary Create a sales order
// @Description Ships the order immediately. Fails without changes if any line exceeds stock.
// @Tags sales-orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreateSalesOrderRequest true "Sales order"
// @Success 201 {object} dto.SalesOrderResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Customer or product not found"
// @Failure 422 {object} InsufficientStockResponse "Insufficient stock"
// @Router /sales-orders [post]
func (h *orderHandler) createSalesOrder(c *gin.Context) {
	var req dto.CreateSalesOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.salesOrderService.CreateSalesOrder(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to create sales order")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSalesOrderResponse(order, customerName(c, h.customerService, order.CustomerID)))
}

// listSalesOrders godoc
// @Summary List sales orders
// @Tags sales-orders
// @Produce  json
// @Success 200 {array} dto.SalesOrderResponse
// @Router /sales-orders [get]
func (h *orderHandler) listSalesOrders(c *gin.Context) {
	orders, err := h.salesOrderService.ListSalesOrders(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list sales orders")
		return
	}

	names := make(map[string]string)
	res := make([]dto.SalesOrderResponse, 0, len(orders))
	for i := range orders {
		var name string
		if id := orders[i].CustomerID; id != nil {
			var ok bool
			if name, ok = names[*id]; !ok {
				name = customerName(c, h.customerService, id)
				names[*id] = name
			}
		}
		res = append(res, dto.ToSalesOrderResponse(&orders[i], name))
	}
	c.JSON(http.StatusOK, res)
}

// getSalesOrder godoc
// @Summary Get a sales order by ID
// @Tags sales-orders
// @Produce  json
// @Param   id path string true "Sales order ID"
// @Success 200 {object} dto.SalesOrderResponse
// @Failure 404 {object} map[string]string "Sales order not found"
// @Router /sales-orders/{id} [get]
func (h *orderHandler) getSalesOrder(c *gin.Context) {
	order, err := h.salesOrderService.GetSalesOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve sales order")
		return
	}
	c.JSON(http.StatusOK, dto.ToSalesOrderResponse(order, customerName(c, h.customerService, order.CustomerID)))
}
