package routes

import (
	"nestify_server/controllers"
	"nestify_server/services"

	"github.com/gorilla/mux"
)

// RegisterRecommendationRoutes sets up the suggestions route
func RegisterRecommendationRoutes(r *mux.Router, recs *services.RecommendationService, sessions *services.SessionService) {
	controller := controllers.NewRecommendationController(recs, sessions)

	r.HandleFunc("/api/sessions/{sessionId}/recommendations", controller.GetSuggestions).Methods("GET")
}
