package routes

import (
	"nestify_server/controllers"
	"nestify_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up simulated conversation routes under /api/chat
func RegisterChatRoutes(r *mux.Router, chat *services.ChatService) {
	controller := controllers.NewChatController(chat)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.HandleFunc("/conversations", controller.StartConversation).Methods("POST")
	chatRouter.HandleFunc("/conversations/{conversationId}/messages", controller.SendMessage).Methods("POST")
	chatRouter.HandleFunc("/conversations/{conversationId}/messages", controller.GetMessages).Methods("GET")
}
