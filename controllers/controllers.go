package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/vishwasvr/guhae-rental-property-app/services"
)

// respondJSON writes a JSON body with the given status
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// respondError translates a service error into its HTTP envelope
func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, services.StatusOf(err), map[string]string{"error": services.MessageOf(err)})
}

// decodeBody decodes a JSON request body into dst
func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return services.NewInvalidInput("invalid request payload")
	}
	return nil
}
