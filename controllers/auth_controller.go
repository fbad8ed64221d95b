package controllers

import (
	"net/http"

	"github.com/vishwasvr/guhae-rental-property-app/services"
)

// AuthController handles registration and login
type AuthController struct {
	Identity services.IdentityProvider
}

func NewAuthController(identity services.IdentityProvider) *AuthController {
	return &AuthController{Identity: identity}
}

// Register handles POST /api/auth/register
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	result, err := c.Identity.Register(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, result)
}

// Login handles POST /api/auth/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(w, err)
		return
	}

	result, err := c.Identity.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
