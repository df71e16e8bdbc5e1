package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/inventory_management_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_management_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// inventoryHandler handles stock adjustments and the reorder helper.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
	reorderService   portssvc.ReorderSvcFacade
}

// registerInventoryRoutes registers adjustment and reorder routes.
func registerInventoryRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &inventoryHandler{
		inventoryService: services.Inventory,
		reorderService:   services.Reorder,
	}

	adjustments := rg.Group("/inventory/adjustments")
	{
		adjustments.POST("", h.adjustInventory)
		adjustments.GET("", h.listAdjustments)
	}

	reorder := rg.Group("/reorder")
	{
		reorder.GET("/list", h.getReorderList)
		reorder.GET("/report", h.getReorderReport)
	}
}

// adjustInventory godoc
// @Summary Adjust stock manually
// @Description Increases, decreases or sets a product's stock and records the reason
// @Tags inventory
// @Accept  json
// @Produce  json
// @Param   adjustment body dto.AdjustInventoryRequest true "Adjustment"
// @Success 201 {object} dto.AdjustInventoryResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 422 {object} InsufficientStockResponse "Decrease exceeds stock"
// @Router /inventory/adjustments [post]
func (h *inventoryHandler) adjustInventory(c *gin.Context) {
	var req dto.AdjustInventoryRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.inventoryService.AdjustInventory(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to adjust inventory")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAdjustInventoryResponse(res))
}

// listAdjustments godoc
// @Summary List inventory adjustments
// @Tags inventory
// @Produce  json
// @Param   productID query string false "Only adjustments of this product"
// @Success 200 {array} domain.InventoryAdjustment
// @Router /inventory/adjustments [get]
func (h *inventoryHandler) listAdjustments(c *gin.Context) {
	var params dto.ListAdjustmentsParams
	if !bindQuery(c, &params) {
		return
	}

	ctx := c.Request.Context()
	adjustments, err := h.inventoryService.ListAdjustments(ctx)
	if params.ProductID != "" {
		adjustments, err = h.inventoryService.ListAdjustmentsByProduct(ctx, params.ProductID)
	}
	if err != nil {
		respondWithError(c, err, "Failed to list adjustments")
		return
	}
	c.JSON(http.StatusOK, adjustments)
}

// getReorderList godoc
// @Summary List products that need reordering
// @Tags reorder
// @Produce  json
// @Success 200 {array} domain.ReorderInfo
// @Router /reorder/list [get]
func (h *inventoryHandler) getReorderList(c *gin.Context) {
	list, err := h.reorderService.GetReorderList(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to build reorder list")
		return
	}
	c.JSON(http.StatusOK, list)
}

// getReorderReport godoc
// @Summary Estimate the cost of reordering
// @Tags reorder
// @Produce  json
// @Success 200 {object} domain.ReorderReport
// @Router /reorder/report [get]
func (h *inventoryHandler) getReorderReport(c *gin.Context) {
	report, err := h.reorderService.GenerateReorderReport(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to build reorder report")
		return
	}
	c.JSON(http.StatusOK, report)
}
