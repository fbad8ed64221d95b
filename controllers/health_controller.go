package controllers

import (
	"net/http"
	"time"

	"github.com/vishwasvr/guhae-rental-property-app/services"
)

// HealthController probes store connectivity
type HealthController struct {
	Dynamo *services.DynamoService
}

func NewHealthController(dynamo *services.DynamoService) *HealthController {
	return &HealthController{Dynamo: dynamo}
}

// GetHealth handles GET /api/health
func (c *HealthController) GetHealth(w http.ResponseWriter, r *http.Request) {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	if err := c.Dynamo.Ping(r.Context()); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "unhealthy",
			"timestamp": timestamp,
			"error":     services.MessageOf(err),
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": timestamp,
		"services": map[string]string{
			"database": "healthy",
			"storage":  "healthy",
		},
	})
}
