package routes

import (
	"nestify_server/controllers"
	"nestify_server/services"

	"github.com/gorilla/mux"
)

// RegisterPhotoRoutes sets up presigned URL routes for listing photos
func RegisterPhotoRoutes(r *mux.Router, photos *services.PhotoService) {
	controller := controllers.NewPhotoController(photos)

	photoRouter := r.PathPrefix("/api/photos").Subrouter()
	photoRouter.HandleFunc("/upload-url", controller.GenerateUploadURL).Methods("POST")
	photoRouter.HandleFunc("/read-url", controller.GenerateReadURL).Methods("POST")
}
