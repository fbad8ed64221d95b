package controllers

import (
	"net/http"

	"github.com/vishwasvr/guhae-rental-property-app/middleware"
	"github.com/vishwasvr/guhae-rental-property-app/services"
)

// DashboardController serves the aggregate stats endpoint
type DashboardController struct {
	Properties *services.PropertyService
}

func NewDashboardController(properties *services.PropertyService) *DashboardController {
	return &DashboardController{Properties: properties}
}

// GetStats handles GET /api/dashboard
func (c *DashboardController) GetStats(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r)
	if !ok {
		respondError(w, services.NewUnauthenticated("authentication required"))
		return
	}

	stats, err := c.Properties.GetDashboardStats(r.Context(), callerID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
