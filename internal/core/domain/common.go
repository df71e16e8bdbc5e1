package domain

import "time"

// MaxQuantity bounds a single order line, adjustment or reorder quantity.
// Request validation uses the same literal in its `lte` rules.
const MaxQuantity = 1_000_000

// Timestamps holds the creation and last-modification times of a ledger entity.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Touch sets UpdatedAt to now.
func (t *Timestamps) Touch(now time.Time) {
	t.UpdatedAt = now
}

// NewTimestamps returns Timestamps with both fields set to now.
func NewTimestamps(now time.Time) Timestamps {
	return Timestamps{CreatedAt: now, UpdatedAt: now}
}
