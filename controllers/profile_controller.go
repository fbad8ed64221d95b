package controllers

import (
	"net/http"

	"github.com/vishwasvr/guhae-rental-property-app/middleware"
	"github.com/vishwasvr/guhae-rental-property-app/services"
)

// ProfileController handles the caller's own profile
type ProfileController struct {
	Profiles *services.ProfileService
}

func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{Profiles: profiles}
}

// GetProfile handles GET /api/profile
func (c *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r)
	if !ok {
		respondError(w, services.NewUnauthenticated("authentication required"))
		return
	}

	profile, err := c.Profiles.GetProfile(r.Context(), callerID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}

// UpdateProfile handles PUT /api/profile
func (c *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
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

	profile, err := c.Profiles.UpdateProfile(r.Context(), callerID, updates)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"profile": profile})
}
