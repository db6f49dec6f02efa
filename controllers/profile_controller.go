package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"nestify_server/services"

	"github.com/gorilla/mux"
)

// ProfileController handles requests related to user profiles
type ProfileController struct {
	ProfileService *services.ProfileService
}

// NewProfileController creates a new instance of ProfileController
func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profiles}
}

// GetProfile handles fetching a user profile by ID
func (c *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.ProfileService.GetProfile(context.TODO(), userID)
	if err != nil {
		log.Printf("Failed to fetch profile for %s: %v", userID, err)
		http.Error(w, `{"error": "Failed to fetch profile"}`, http.StatusInternalServerError)
		return
	}
	if profile == nil {
		http.Error(w, `{"error": "Profile not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// SaveProfile handles the profile screen's explicit save
func (c *ProfileController) SaveProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var update services.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}

	profile, err := c.ProfileService.UpsertProfile(context.TODO(), userID, update)
	if err != nil {
		log.Printf("Failed to save profile for %s: %v", userID, err)
		http.Error(w, `{"error": "Failed to update profile"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Profile updated",
		"profile": profile,
	})
}

// GetStats returns the liked and viewed counts for the profile screen
func (c *ProfileController) GetStats(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	stats, err := c.ProfileService.Stats(context.TODO(), userID)
	if err != nil {
		log.Printf("Failed to fetch stats for %s: %v", userID, err)
		http.Error(w, `{"error": "Failed to fetch stats"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
