package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vishwasvr/guhae-rental-property-app/middleware"
	"github.com/vishwasvr/guhae-rental-property-app/services"
)

// S3Controller generates presigned URLs for property images
type S3Controller struct {
	Objects    services.ObjectStore
	Properties *services.PropertyService
	Logger     *zap.Logger
}

func NewS3Controller(objects services.ObjectStore, properties *services.PropertyService, logger *zap.Logger) *S3Controller {
	return &S3Controller{Objects: objects, Properties: properties, Logger: logger}
}

// GenerateUploadURL handles POST /api/properties/{id}/images
func (c *S3Controller) GenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r)
	if !ok {
		respondError(w, services.NewUnauthenticated("authentication required"))
		return
	}

	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, err)
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		respondError(w, services.NewInvalidInput("fileName and fileType are required"))
		return
	}

	propertyID := mux.Vars(r)["id"]
	if _, err := c.Properties.GetProperty(r.Context(), callerID, propertyID); err != nil {
		respondError(w, err)
		return
	}

	key := services.PropertyImageKey(propertyID, payload.FileName)
	url, err := c.Objects.PresignUpload(r.Context(), key, payload.FileType)
	if err != nil {
		respondError(w, err)
		return
	}

	c.Logger.Info("image upload URL generated",
		zap.String("propertyId", propertyID),
		zap.String("key", key))
	respondJSON(w, http.StatusOK, map[string]string{"url": url, "key": key})
}

// GenerateReadURL handles POST /api/properties/{id}/images/read
func (c *S3Controller) GenerateReadURL(w http.ResponseWriter, r *http.Request) {
	callerID, ok := middleware.CallerID(r)
	if !ok {
		respondError(w, services.NewUnauthenticated("authentication required"))
		return
	}

	var payload struct {
		Key string `json:"key"`
	}
	if err := decodeBody(r, &payload); err != nil {
		respondError(w, err)
		return
	}
	if payload.Key == "" {
		respondError(w, services.NewInvalidInput("key is required"))
		return
	}

	if _, err := c.Properties.GetProperty(r.Context(), callerID, mux.Vars(r)["id"]); err != nil {
		respondError(w, err)
		return
	}

	url, err := c.Objects.PresignRead(r.Context(), payload.Key)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"url": url})
}
