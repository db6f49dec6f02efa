package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"nestify_server/services"

	"github.com/gorilla/mux"
)

// SessionController handles sign-in and sign-out of discovery sessions
type SessionController struct {
	SessionService *services.SessionService
	ProfileService *services.ProfileService
	ChatService    *services.ChatService
}

// NewSessionController creates a new instance of SessionController
func NewSessionController(sessions *services.SessionService, profiles *services.ProfileService, chat *services.ChatService) *SessionController {
	return &SessionController{SessionService: sessions, ProfileService: profiles, ChatService: chat}
}

// CreateSession establishes a session. A signed-in user gets a profile
// created on first authentication; an empty userId starts an anonymous
// session whose swipes are never persisted.
func (c *SessionController) CreateSession(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID string `json:"userId"`
		Email  string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}

	session := c.SessionService.CreateSession(payload.UserID)

	if payload.UserID != "" {
		if _, err := c.ProfileService.EnsureProfile(context.TODO(), payload.UserID, payload.Email); err != nil {
			log.Printf("Failed to ensure profile for %s: %v", payload.UserID, err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"sessionId": session.SessionID,
		"userId":    session.UserID,
		"filters":   session.Filters(),
	})
}

// EndSession tears a session down, discarding its deck, filters, and chat
// transcripts.
func (c *SessionController) EndSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	c.SessionService.EndSession(sessionID)
	c.ChatService.DropSession(sessionID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Session ended"})
}
