package routes

import (
	"nestify_server/controllers"
	"nestify_server/services"

	"github.com/gorilla/mux"
)

// RegisterLikeRoutes sets up favorites routes under /api/likes
func RegisterLikeRoutes(r *mux.Router, feed *services.FeedService) {
	controller := controllers.NewLikeController(feed)

	likeRouter := r.PathPrefix("/api/likes").Subrouter()
	likeRouter.HandleFunc("", controller.LikeProperty).Methods("POST")
	likeRouter.HandleFunc("/{userId}", controller.GetLikes).Methods("GET")
	likeRouter.HandleFunc("/{userId}/properties", controller.GetLikedProperties).Methods("GET")
	likeRouter.HandleFunc("/{userId}/{propertyId}", controller.RemoveLike).Methods("DELETE")
}
