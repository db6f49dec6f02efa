package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"nestify_server/services"

	"github.com/gorilla/mux"
)

// ChatController handles the simulated agent conversations
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController initializes the chat controller
func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{ChatService: chat}
}

// StartConversation opens a conversation about a listing, seeded with the
// opening exchange.
func (c *ChatController) StartConversation(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID  string `json:"sessionId"`
		PropertyID string `json:"propertyId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.SessionID == "" || payload.PropertyID == "" {
		http.Error(w, `{"error": "sessionId and propertyId are required"}`, http.StatusBadRequest)
		return
	}

	conversation, messages, err := c.ChatService.StartConversation(context.TODO(), payload.SessionID, payload.PropertyID)
	if err != nil {
		http.Error(w, `{"error": "Failed to start conversation"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"conversation": conversation,
		"messages":     messages,
	})
}

// SendMessage appends the user's message. The agent's reply lands in the
// transcript after the typing delay and is pushed over the socket room.
func (c *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	conversationID := mux.Vars(r)["conversationId"]

	var payload struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Content == "" {
		http.Error(w, `{"error": "content is required"}`, http.StatusBadRequest)
		return
	}

	message, err := c.ChatService.SendMessage(conversationID, payload.Content)
	if err != nil {
		http.Error(w, `{"error": "Conversation not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(message)
}

// GetMessages returns the conversation transcript
func (c *ChatController) GetMessages(w http.ResponseWriter, r *http.Request) {
	conversationID := mux.Vars(r)["conversationId"]

	messages, err := c.ChatService.Messages(conversationID)
	if err != nil {
		http.Error(w, `{"error": "Conversation not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}
