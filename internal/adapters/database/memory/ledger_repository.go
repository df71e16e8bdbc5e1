package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/inventory_management_app/internal/core/domain"
	portsrepo "github.com/SscSPs/inventory_management_app/internal/core/ports/repositories"
)

// AdjustmentRepository is an append-only adjustment log.
type AdjustmentRepository struct {
	mu          sync.RWMutex
	adjustments []domain.InventoryAdjustment
}

func NewAdjustmentRepository() *AdjustmentRepository {
	return &AdjustmentRepository{}
}

var _ portsrepo.AdjustmentRepository = (*AdjustmentRepository)(nil)

func (r *AdjustmentRepository) AppendAdjustment(ctx context.Context, adjustment domain.InventoryAdjustment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adjustments = append(r.adjustments, adjustment)
	return nil
}

func (r *AdjustmentRepository) ListAdjustments(ctx context.Context) ([]domain.InventoryAdjustment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.InventoryAdjustment, len(r.adjustments))
	copy(out, r.adjustments)
	return out, nil
}

func (r *AdjustmentRepository) ListAdjustmentsByProduct(ctx context.Context, productID string) ([]domain.InventoryAdjustment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.InventoryAdjustment, 0)
	for _, adj := range r.adjustments {
		if adj.ProductID == productID {
			out = append(out, adj)
		}
	}
	return out, nil
}

// ActivityRepository is a fixed-capacity ring of the most recent activities.
type ActivityRepository struct {
	mu    sync.RWMutex
	ring  []domain.Activity
	next  int // slot the next activity is written to
	count int
}

// NewActivityRepository creates a feed that retains at most capacity activities.
// A capacity below 1 uses domain.DefaultActivityCapacity.
func NewActivityRepository(capacity int) *ActivityRepository {
	if capacity < 1 {
		capacity = domain.DefaultActivityCapacity
	}
	return &ActivityRepository{ring: make([]domain.Activity, capacity)}
}

var _ portsrepo.ActivityRepository = (*ActivityRepository)(nil)

func (r *ActivityRepository) AppendActivity(ctx context.Context, activity domain.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ring[r.next] = activity
	r.next = (r.next + 1) % len(r.ring)
	if r.count < len(r.ring) {
		r.count++
	}
	return nil
}

func (r *ActivityRepository) ListRecentActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := r.count
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.Activity, 0, n)
	for i := 1; i <= n; i++ {
		idx := (r.next - i + len(r.ring)) % len(r.ring)
		out = append(out, r.ring[idx])
	}
	return out, nil
}
