package routes

import (
	"nestify_server/controllers"
	"nestify_server/services"

	"github.com/gorilla/mux"
)

// RegisterProfileRoutes sets up routes for profile operations under /api/profiles
func RegisterProfileRoutes(r *mux.Router, profiles *services.ProfileService) {
	controller := controllers.NewProfileController(profiles)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()
	profileRouter.HandleFunc("/{userId}", controller.GetProfile).Methods("GET")
	profileRouter.HandleFunc("/{userId}", controller.SaveProfile).Methods("PUT")
	profileRouter.HandleFunc("/{userId}/stats", controller.GetStats).Methods("GET")
}
