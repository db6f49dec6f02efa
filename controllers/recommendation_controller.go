package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"nestify_server/services"

	"github.com/gorilla/mux"
)

// RecommendationController serves the suggestions screen
type RecommendationController struct {
	RecommendationService *services.RecommendationService
	SessionService        *services.SessionService
}

// NewRecommendationController creates a new instance of RecommendationController
func NewRecommendationController(recs *services.RecommendationService, sessions *services.SessionService) *RecommendationController {
	return &RecommendationController{RecommendationService: recs, SessionService: sessions}
}

// GetSuggestions runs a recommendation cycle for the session's user and
// returns the suggestions with their display-only match percentages.
// Anonymous sessions have no like history to learn from and get an empty
// list.
func (c *RecommendationController) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	session, err := c.SessionService.GetSession(mux.Vars(r)["sessionId"])
	if err != nil {
		http.Error(w, `{"error": "Session not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if session.Anonymous() {
		json.NewEncoder(w).Encode([]services.RecommendedProperty{})
		return
	}

	suggestions, err := c.RecommendationService.Suggestions(context.TODO(), session.UserID)
	if err != nil {
		log.Printf("Failed to load suggestions for user %s: %v", session.UserID, err)
		http.Error(w, `{"error": "Failed to load suggestions"}`, http.StatusBadGateway)
		return
	}

	json.NewEncoder(w).Encode(services.AnnotateMatchPercent(suggestions))
}
