package handler

import (
	"context"
	"net/http"

	"github.com/cargohost/backend/internal/domain"
)

// PlanLister returns the plans currently on sale.
type PlanLister interface {
	ListActive(ctx context.Context) ([]domain.Plan, error)
}

// PlansHandler handles plan-related endpoints.
type PlansHandler struct {
	plans PlanLister
}

// NewPlansHandler creates a new PlansHandler.
func NewPlansHandler(plans PlanLister) *PlansHandler {
	return &PlansHandler{plans: plans}
}

// List handles GET /api/plans.
func (h *PlansHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.plans.ListActive(r.Context())
	if err != nil {
		requestLogger(r).WithError(err).Error("failed to list plans")
		JSON(w, http.StatusInternalServerError, domain.PlansResponse{Success: false, Plans: []domain.Plan{}})
		return
	}
	JSON(w, http.StatusOK, domain.PlansResponse{Success: true, Plans: plans})
}
