package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"nestify_server/models"
	"nestify_server/services"

	"github.com/gorilla/mux"
)

// LikeController handles the favorites list: fetching liked listings,
// liking directly from the suggestions screen, and removing favorites.
type LikeController struct {
	FeedService *services.FeedService
}

// NewLikeController creates a new instance of LikeController
func NewLikeController(feed *services.FeedService) *LikeController {
	return &LikeController{FeedService: feed}
}

// GetLikes returns the user's like records, liked rows only.
func (c *LikeController) GetLikes(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	likes, err := c.FeedService.LikedRecords(context.TODO(), userID)
	if err != nil {
		http.Error(w, `{"error": "Failed to fetch likes"}`, http.StatusInternalServerError)
		return
	}
	if likes == nil {
		likes = []models.PropertyLike{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(likes)
}

// GetLikedProperties returns the full listing rows the user has liked, for
// the favorites and map screens.
func (c *LikeController) GetLikedProperties(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	properties, err := c.FeedService.LikedProperties(context.TODO(), userID)
	if err != nil {
		http.Error(w, `{"error": "Failed to fetch liked properties"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(properties)
}

// LikeProperty saves a like directly, the suggestion screen's save button.
func (c *LikeController) LikeProperty(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID     string `json:"userId"`
		PropertyID string `json:"propertyId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.UserID == "" || payload.PropertyID == "" {
		http.Error(w, `{"error": "userId and propertyId are required"}`, http.StatusBadRequest)
		return
	}

	if err := c.FeedService.LikeProperty(context.TODO(), payload.UserID, payload.PropertyID); err != nil {
		http.Error(w, `{"error": "Failed to save property"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Added to favorites"})
}

// RemoveLike deletes a like, removing the listing from favorites.
func (c *LikeController) RemoveLike(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := c.FeedService.RemoveLike(context.TODO(), vars["userId"], vars["propertyId"]); err != nil {
		http.Error(w, `{"error": "Failed to remove property"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Removed from favorites"})
}
