package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"nestify_server/services"
)

// PhotoController hands out presigned URLs for listing photos
type PhotoController struct {
	PhotoService *services.PhotoService
}

// NewPhotoController creates a new instance of PhotoController
func NewPhotoController(photos *services.PhotoService) *PhotoController {
	return &PhotoController{PhotoService: photos}
}

// GenerateUploadURL generates a presigned URL for uploading a listing photo
func (c *PhotoController) GenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		http.Error(w, `{"error": "fileName and fileType are required"}`, http.StatusBadRequest)
		return
	}

	url, key, err := c.PhotoService.UploadURL(context.TODO(), payload.FileName, payload.FileType)
	if err != nil {
		log.Printf("Failed to presign upload for %s: %v", payload.FileName, err)
		http.Error(w, `{"error": "Failed to generate upload URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url, "key": key})
}

// GenerateReadURL generates a presigned URL for reading a listing photo
func (c *PhotoController) GenerateReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		http.Error(w, `{"error": "key is required"}`, http.StatusBadRequest)
		return
	}

	url, err := c.PhotoService.ReadURL(context.TODO(), payload.Key)
	if err != nil {
		http.Error(w, `{"error": "Failed to generate read URL"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}
