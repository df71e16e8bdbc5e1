package dto

import (
	"time"

	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	"github.com/SscSPs/inventory_management_app/internal/utils"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// DateRangeParams are the query parameters of date-ranged reports.
// Dates are inclusive and parsed as YYYY-MM-DD or RFC 3339.
type DateRangeParams struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// ListActivitiesParams limits the activity list.
type ListActivitiesParams struct {
	Limit int `form:"limit,default=50" validate:"gte=0"`
}

// TransactionReportResponse represents the transaction report response
type TransactionReportResponse struct {
	StartDate string                       `json:"startDate"`
	EndDate   string                       `json:"endDate"`
	Purchases []domain.PurchaseOrder       `json:"purchases"`
	Sales     []domain.SalesOrder          `json:"sales"`
	Adjusts   []domain.InventoryAdjustment `json:"adjustments"`
	Summary   struct {
		PurchaseCount       int             `json:"purchaseCount"`
		TotalPurchaseAmount decimal.Decimal `json:"totalPurchaseAmount"`
		SalesCount          int             `json:"salesCount"`
		TotalSalesAmount    decimal.Decimal `json:"totalSalesAmount"`
		AdjustmentCount     int             `json:"adjustmentCount"`
		NetAmount           decimal.Decimal `json:"netAmount"`
	} `json:"summary"`
}

// StatisticsResponse represents the dashboard statistics with display-ready amounts.
type StatisticsResponse struct {
	domain.Statistics
	FormattedInventoryValue string `json:"formattedInventoryValue"`
}

// ToTransactionReportResponse converts a domain transaction report to a DTO response
func ToTransactionReportResponse(report *domain.TransactionReport) TransactionReportResponse {
	response := TransactionReportResponse{
		StartDate: report.StartDate.Format(dateLayout),
		EndDate:   report.EndDate.Format(dateLayout),
		Purchases: report.PurchaseOrders,
		Sales:     report.SalesOrders,
		Adjusts:   report.Adjustments,
	}
	response.Summary.PurchaseCount = report.PurchaseCount
	response.Summary.TotalPurchaseAmount = report.TotalPurchaseAmount
	response.Summary.SalesCount = report.SalesCount
	response.Summary.TotalSalesAmount = report.TotalSalesAmount
	response.Summary.AdjustmentCount = report.AdjustmentCount
	response.Summary.NetAmount = report.NetAmount
	return response
}

// ToStatisticsResponse converts dashboard statistics to a DTO response
func ToStatisticsResponse(stats *domain.Statistics) StatisticsResponse {
	return StatisticsResponse{
		Statistics:              *stats,
		FormattedInventoryValue: utils.FormatCompactAmount(stats.TotalInventoryValue),
	}
}

// ParseReportDate parses a report boundary. End dates given as a bare day cover the whole day.
func ParseReportDate(value string, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, nil
}
