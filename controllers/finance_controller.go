package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vishwasvr/guhae-rental-property-app/middleware"
	"github.com/vishwasvr/guhae-rental-property-app/services"
)

// FinanceController handles the finance sub-record of a property
type FinanceController struct {
	Finance *services.FinanceService
}

func NewFinanceController(finance *services.FinanceService) *FinanceController {
	return &FinanceController{Finance: finance}
}

// GetFinance handles GET /api/properties/{id}/finance
func (c *FinanceController) GetFinance(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r)
	if !ok {
		respondError(w, services.NewUnauthenticated("authentication required"))
		return
	}

	finance, err := c.Finance.GetFinance(r.Context(), callerID, mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"finance": finance})
}

// UpdateFinance handles PUT /api/properties/{id}/finance
func (c *FinanceController) UpdateFinance(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r)
	if !ok {
		respondError(w, services.NewUnauthenticated("authentication required"))
		return
	}

	var updates map[string]interface{}
	if err := decodeBody(r, &updates); err != nil {
		respondError(w, err)
		return
	}

	finance, err := c.Finance.UpsertFinance(r.Context(), callerID, mux.Vars(r)["id"], updates)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"finance": finance})
}
