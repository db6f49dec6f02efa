package routes

import (
	"nestify_server/controllers"
	"nestify_server/services"

	"github.com/gorilla/mux"
)

// RegisterFeedRoutes sets up discovery deck routes under /api/sessions
func RegisterFeedRoutes(r *mux.Router, feed *services.FeedService, sessions *services.SessionService) {
	controller := controllers.NewFeedController(feed, sessions)

	r.HandleFunc("/api/filters/options", controller.GetFilterOptions).Methods("GET")

	feedRouter := r.PathPrefix("/api/sessions/{sessionId}").Subrouter()
	feedRouter.HandleFunc("/feed", controller.GetFeed).Methods("GET")
	feedRouter.HandleFunc("/feed/refresh", controller.RefreshFeed).Methods("POST")
	feedRouter.HandleFunc("/filters/reset", controller.ResetFilters).Methods("POST")
	feedRouter.HandleFunc("/swipe", controller.Swipe).Methods("POST")
	feedRouter.HandleFunc("/swipe/button", controller.SwipeButton).Methods("POST")
}
