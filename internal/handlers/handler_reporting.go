package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/inventory_management_app/internal/core/ports/services"
	"github.com/SscSPs/inventory_management_app/internal/dto"
	"github.com/SscSPs/inventory_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to reports and the activity feed
type reportingHandler struct {
	reportingService portssvc.ReportingService
	activityService  portssvc.ActivitySvc
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, as portssvc.ActivitySvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		activityService:  as,
	}
}

// registerReportingRoutes registers routes related to reports and activities
func registerReportingRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newReportingHandler(services.Reporting, services.Activity)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/transactions", h.getTransactionReport)
		reportingGroup.GET("/inventory", h.getInventoryReport)
		reportingGroup.GET("/statistics", h.getStatistics)
	}

	activities := rg.Group("/activities")
	{
		activities.GET("", h.listActivities)
		activities.GET("/stream", h.streamActivities)
	}
}

// getTransactionReport godoc
// @Summary Generate transaction report
// @Description Collects received purchases, sales and adjustments between two dates, both inclusive
// @Tags reports
// @Produce json
// @Param startDate query string false "Start date (YYYY-MM-DD)" default(first day of the current month)
// @Param endDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.TransactionReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/transactions [get]
func (h *reportingHandler) getTransactionReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.DateRangeParams
	if !bindQuery(c, &params) {
		return
	}

	now := time.Now()
	if params.EndDate == "" {
		params.EndDate = now.Format("2006-01-02")
	}
	if params.StartDate == "" {
		params.StartDate = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
	}

	start, err := dto.ParseReportDate(params.StartDate, false)
	if err != nil {
		logger.Warn("Invalid startDate format", slog.String("startDate", params.StartDate), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid startDate. Use YYYY-MM-DD"})
		return
	}
	end, err := dto.ParseReportDate(params.EndDate, true)
	if err != nil {
		logger.Warn("Invalid endDate format", slog.String("endDate", params.EndDate), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid endDate. Use YYYY-MM-DD"})
		return
	}

	report, err := h.reportingService.TransactionReport(c.Request.Context(), start, end)
	if err != nil {
		respondWithError(c, err, "Failed to generate report")
		return
	}

	logger.Info("Transaction report generated",
		slog.Int("purchase_count", report.PurchaseCount),
		slog.Int("sales_count", report.SalesCount),
		slog.Int("adjustment_count", report.AdjustmentCount))
	c.JSON(http.StatusOK, dto.ToTransactionReportResponse(report))
}

// getInventoryReport godoc
// @Summary Generate inventory valuation report
// @Description Values every product's stock at cost price
// @Tags reports
// @Produce json
// @Success 200 {object} domain.InventoryReport
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /reports/inventory [get]
func (h *reportingHandler) getInventoryReport(c *gin.Context) {
	report, err := h.reportingService.InventoryReport(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to generate report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getStatistics godoc
// @Summary Dashboard statistics
// @Tags reports
// @Produce json
// @Success 200 {object} dto.StatisticsResponse
// @Failure 500 {object} map[string]string "Failed to compute statistics"
// @Router /reports/statistics [get]
func (h *reportingHandler) getStatistics(c *gin.Context) {
	stats, err := h.reportingService.GetStatistics(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to compute statistics")
		return
	}
	c.JSON(http.StatusOK, dto.ToStatisticsResponse(stats))
}

// listActivities godoc
// @Summary List recent activities
// @Description Returns the most recent activities, newest first
// @Tags activities
// @Produce json
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {array} domain.Activity
// @Router /activities [get]
func (h *reportingHandler) listActivities(c *gin.Context) {
	var params dto.ListActivitiesParams
	if !bindQuery(c, &params) {
		return
	}

	activities, err := h.activityService.ListActivities(c.Request.Context(), params.Limit)
	if err != nil {
		respondWithError(c, err, "Failed to list activities")
		return
	}
	c.JSON(http.StatusOK, activities)
}

// streamActivities godoc
// @Summary Stream activities
// @Description Pushes each new activity as a server-sent event named "activity"
// @Tags activities
// @Produce text/event-stream
// @Success 200 {object} domain.Activity
// @Router /activities/stream [get]
func (h *reportingHandler) streamActivities(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	events := h.activityService.Subscribe(c.Request.Context())

	logger.Info("Activity stream opened")
	c.Stream(func(w io.Writer) bool {
		activity, ok := <-events
		if !ok {
			return false
		}
		c.SSEvent("activity", activity)
		return true
	})
	logger.Info("Activity stream closed")
}
