package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vishwasvr/guhae-rental-property-app/middleware"
	"github.com/vishwasvr/guhae-rental-property-app/models"
	"github.com/vishwasvr/guhae-rental-property-app/services"
)

// PropertyController handles requests related to properties
type PropertyController struct {
	Properties *services.PropertyService
}

func NewPropertyController(properties *services.PropertyService) *PropertyController {
	return &PropertyController{Properties: properties}
}

// ListProperties handles GET /api/properties
func (c *PropertyController) ListProperties(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r)
	if !ok {
		respondError(w, services.NewUnauthenticated("authentication required"))
		return
	}

	properties, err := c.Properties.ListProperties(r.Context(), callerID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"properties": properties})
}

// CreateProperty handles POST /api/properties
func (c *PropertyController) CreateProperty(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r)
	if !ok {
		respondError(w, services.NewUnauthenticated("authentication required"))
		return
	}

	var req models.PropertyCreateRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	property, err := c.Properties.CreateProperty(r.Context(), callerID, req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{"property": property})
}

// GetProperty handles GET /api/properties/{id}
func (c *PropertyController) GetProperty(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r)
	if !ok {
		respondError(w, services.NewUnauthenticated("authentication required"))
		return
	}

	property, err := c.Properties.GetProperty(r.Context(), callerID, mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"property": property})
}

// UpdateProperty handles PUT /api/properties/{id}
func (c *PropertyController) UpdateProperty(w http.ResponseWriter, r *http.Request) {
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

	property, err := c.Properties.UpdateProperty(r.Context(), callerID, mux.Vars(r)["id"], updates)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"property": property})
}

// DeleteProperty handles DELETE /api/properties/{id}
func (c *PropertyController) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r)
	if !ok {
		respondError(w, services.NewUnauthenticated("authentication required"))
		return
	}

	if err := c.Properties.DeleteProperty(r.Context(), callerID, mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Property deleted"})
}
