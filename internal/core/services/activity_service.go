package services

import (
	"context"

	"github.com/SscSPs/inventory_management_app/internal/core/domain"
)

type activityService struct {
	BaseService
}

func (s *activityService) ListActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	s.ledger.mu.RLock()
	defer s.ledger.mu.RUnlock()
	return s.ledger.repos.ActivityRepo.ListRecentActivities(ctx, limit)
}

func (s *activityService) Subscribe(ctx context.Context) <-chan domain.Activity {
	return s.ledger.subscribe(ctx)
}
