package service

import (
	"context"

	"github.com/cargohost/backend/internal/domain"
)

// PlanStore is the persistence the plan service needs.
type PlanStore interface {
	ListActive(ctx context.Context) ([]domain.Plan, error)
}

// PlanService serves the public plan list.
type PlanService struct {
	plans PlanStore
}

// NewPlanService creates a new PlanService.
func NewPlanService(plans PlanStore) *PlanService {
	return &PlanService{plans: plans}
}

// ListActive returns active plans ordered by price. The slice is never nil so
// the API always encodes a JSON array.
func (s *PlanService) ListActive(ctx context.Context) ([]domain.Plan, error) {
	plans, err := s.plans.ListActive(ctx)
	if err != nil {
		return nil, domain.ErrInternal("failed to load plans", err)
	}
	if plans == nil {
		plans = []domain.Plan{}
	}
	return plans, nil
}
