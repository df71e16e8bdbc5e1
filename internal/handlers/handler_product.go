package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/inventory_management_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_management_app/internal/dto"
	"github.com/SscSPs/inventory_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// productHandler handles HTTP requests related to products.
type productHandler struct {
	productService   portssvc.ProductSvcFacade
	reorderService   portssvc.ReorderSvcFacade
	reportingService portssvc.ReportingService
	supplierService  portssvc.SupplierReaderSvc
}

// registerProductRoutes registers routes related to products.
func registerProductRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &productHandler{
		productService:   services.Product,
		reorderService:   services.Reorder,
		reportingService: services.Reporting,
		supplierService:  services.Supplier,
	}

	products := rg.Group("/products")
	{
		products.POST("", h.createProduct)
		products.GET("", h.listProducts)
		products.GET("/low-stock", h.listLowStockProducts)
		products.GET("/:id", h.getProduct)
		products.PUT("/:id", h.updateProduct)
		products.DELETE("/:id", h.deleteProduct)
		products.GET("/:id/movements", h.getProductMovements)
		products.PUT("/:id/reorder-settings", h.updateReorderSettings)
		products.GET("/:id/reorder-suggestion", h.getReorderSuggestion)
		products.POST("/:id/quick-reorder", h.quickReorder)
	}
}

// createProduct godoc
// @Summary Create a new product
// @Description Adds a product to the catalog with zero stock
// @Tags products
// @Accept  json
// @Produce  json
// @Param   product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Product code already in use"
// @Failure 500 {object} map[string]string "Failed to create product"
// @Router /products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// listProducts godoc
// @Summary List or search products
// @Description Lists products page by page, or searches code, name and spec when q is given
// @Tags products
// @Produce  json
// @Param   q query string false "Keyword"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListProductsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list products"
// @Router /products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	var params dto.ListProductsParams
	if !bindQuery(c, &params) {
		return
	}

	if params.Query != "" {
		products, err := h.productService.SearchProducts(c.Request.Context(), params.Query)
		if err != nil {
			respondWithError(c, err, "Failed to search products")
			return
		}
		c.JSON(http.StatusOK, dto.ListProductsResponse{Products: dto.ToListProductResponse(products)})
		return
	}

	products, nextToken, err := h.productService.ListProductsPage(c.Request.Context(), params.Limit, params.NextToken)
	if err != nil {
		respondWithError(c, err, "Failed to list products")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Products listed", slog.Int("count", len(products)))
	c.JSON(http.StatusOK, dto.ListProductsResponse{Products: dto.ToListProductResponse(products), NextToken: nextToken})
}

// listLowStockProducts godoc
// @Summary List low-stock products
// @Description Lists products whose stock is at or below their safety stock
// @Tags products
// @Produce  json
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} map[string]string "Failed to list low-stock products"
// @Router /products/low-stock [get]
func (h *productHandler) listLowStockProducts(c *gin.Context) {
	products, err := h.productService.GetLowStockProducts(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list low-stock products")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProductResponse(products))
}

// getProduct godoc
// @Summary Get a product by ID
// @Tags products
// @Produce  json
// @Param   id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to retrieve product"
// @Router /products/{id} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	product, err := h.productService.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// updateProduct godoc
// @Summary Update a product
// @Description Updates the provided fields of a product. Stock can only change through orders and adjustments.
// @Tags products
// @Accept  json
// @Produce  json
// @Param   id path string true "Product ID"
// @Param   product body dto.UpdateProductRequest true "Fields to update"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 409 {object} map[string]string "Product code already in use"
// @Failure 500 {object} map[string]string "Failed to update product"
// @Router /products/{id} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// deleteProduct godoc
// @Summary Delete a product
// @Description Removes a product. Orders that reference it keep the id.
// @Tags products
// @Produce  json
// @Param   id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to delete product"
// @Router /products/{id} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	product, err := h.productService.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// getProductMovements godoc
// @Summary Get the stock movements of a product
// @Description Merges purchase receipts, sales and adjustments in date order
// @Tags products
// @Produce  json
// @Param   id path string true "Product ID"
// @Param   startDate query string false "Start date (YYYY-MM-DD)"
// @Param   endDate query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} domain.ProductMovementReport
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to build movement report"
// @Router /products/{id}/movements [get]
func (h *productHandler) getProductMovements(c *gin.Context) {
	var params dto.DateRangeParams
	if !bindQuery(c, &params) {
		return
	}

	var start, end *time.Time
	if params.StartDate != "" {
		t, err := dto.ParseReportDate(params.StartDate, false)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate. Use YYYY-MM-DD"})
			return
		}
		start = &t
	}
	if params.EndDate != "" {
		t, err := dto.ParseReportDate(params.EndDate, true)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate. Use YYYY-MM-DD"})
			return
		}
		end = &t
	}

	report, err := h.reportingService.ProductMovementReport(c.Request.Context(), c.Param("id"), start, end)
	if err != nil {
		respondWithError(c, err, "Failed to build movement report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// updateReorderSettings godoc
// @Summary Update reorder settings
// @Tags products
// @Accept  json
// @Produce  json
// @Param   id path string true "Product ID"
// @Param   settings body dto.UpdateReorderSettingsRequest true "Reorder point and quantity"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to update reorder settings"
// @Router /products/{id}/reorder-settings [put]
func (h *productHandler) updateReorderSettings(c *gin.Context) {
	var req dto.UpdateReorderSettingsRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.reorderService.UpdateReorderSettings(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update reorder settings")
		return
	}
	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// getReorderSuggestion godoc
// @Summary Suggest reorder settings
// @Description Derives a reorder point and quantity from the product's safety stock
// @Tags products
// @Produce  json
// @Param   id path string true "Product ID"
// @Success 200 {object} domain.ReorderSuggestion
// @Failure 404 {object} map[string]string "Product not found"
// @Router /products/{id}/reorder-suggestion [get]
func (h *productHandler) getReorderSuggestion(c *gin.Context) {
	suggestion, err := h.reorderService.GetReorderSuggestion(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, err, "Failed to suggest reorder settings")
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

// quickReorder godoc
// @Summary Raise a purchase order from the reorder settings
// @Description Creates a pending purchase order for the product's reorder quantity at cost price
// @Tags products
// @Accept  json
// @Produce  json
// @Param   id path string true "Product ID"
// @Param   request body dto.QuickReorderRequest true "Supplier"
// @Success 201 {object} dto.PurchaseOrderResponse
// @Failure 400 {object} map[string]string "Product does not need reorder or has no reorder quantity"
// @Failure 404 {object} map[string]string "Product or supplier not found"
// @Router /products/{id}/quick-reorder [post]
func (h *productHandler) quickReorder(c *gin.Context) {
	var req dto.QuickReorderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.reorderService.QuickReorder(c.Request.Context(), c.Param("id"), req.SupplierID)
	if err != nil {
		respondWithError(c, err, "Failed to create reorder purchase order")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPurchaseOrderResponse(order, supplierName(c, h.supplierService, order.SupplierID)))
}
