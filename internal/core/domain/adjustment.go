package domain

import "time"

// AdjustmentType is the kind of manual stock correction.
type AdjustmentType string

const (
	AdjustIncrease AdjustmentType = "increase"
	AdjustDecrease AdjustmentType = "decrease"
	AdjustSet      AdjustmentType = "set"
)

// IsValid reports whether t is one of the known adjustment types.
func (t AdjustmentType) IsValid() bool {
	switch t {
	case AdjustIncrease, AdjustDecrease, AdjustSet:
		return true
	}
	return false
}

// InventoryAdjustment is an immutable record of a manual stock change.
type InventoryAdjustment struct {
	AdjustmentID   string         `json:"adjustmentID"`
	ProductID      string         `json:"productID"`
	AdjustmentType AdjustmentType `json:"adjustmentType"`
	Quantity       int            `json:"quantity"`
	OriginalStock  int            `json:"originalStock"`
	NewStock       int            `json:"newStock"`
	Reason         string         `json:"reason"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// Delta is the signed stock change the adjustment applied.
func (a InventoryAdjustment) Delta() int {
	return a.NewStock - a.OriginalStock
}
