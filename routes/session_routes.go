package routes

import (
	"nestify_server/controllers"
	"nestify_server/services"

	"github.com/gorilla/mux"
)

// RegisterSessionRoutes sets up session lifecycle routes under /api/sessions
func RegisterSessionRoutes(r *mux.Router, sessions *services.SessionService, profiles *services.ProfileService, chat *services.ChatService) {
	controller := controllers.NewSessionController(sessions, profiles, chat)

	sessionRouter := r.PathPrefix("/api/sessions").Subrouter()
	sessionRouter.HandleFunc("", controller.CreateSession).Methods("POST")
	sessionRouter.HandleFunc("/{sessionId}", controller.EndSession).Methods("DELETE")
}
