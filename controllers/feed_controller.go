package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"nestify_server/models"
	"nestify_server/services"

	"github.com/gorilla/mux"
)

// FeedController handles the discovery deck: refresh, the visible card
// window, filter changes, and swipe decisions.
type FeedController struct {
	FeedService    *services.FeedService
	SessionService *services.SessionService
}

// NewFeedController creates a new instance of FeedController
func NewFeedController(feed *services.FeedService, sessions *services.SessionService) *FeedController {
	return &FeedController{FeedService: feed, SessionService: sessions}
}

func (c *FeedController) session(w http.ResponseWriter, r *http.Request) *services.Session {
	session, err := c.SessionService.GetSession(mux.Vars(r)["sessionId"])
	if err != nil {
		http.Error(w, `{"error": "Session not found"}`, http.StatusNotFound)
		return nil
	}
	return session
}

// RefreshFeed re-runs the whole fetch-and-exclude cycle and resets the
// cursor. An optional filters payload replaces the session's configuration
// first, which is how the filter sheet applies. On a read failure the deck
// is left empty.
func (c *FeedController) RefreshFeed(w http.ResponseWriter, r *http.Request) {
	session := c.session(w, r)
	if session == nil {
		return
	}

	if r.Body != nil && r.ContentLength != 0 {
		var payload struct {
			Filters *models.Filters `json:"filters"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
			return
		}
		if payload.Filters != nil {
			session.SetFilters(*payload.Filters)
		}
	}

	properties, err := c.FeedService.FetchFeed(context.TODO(), session.UserID, session.Filters())
	if err != nil {
		log.Printf("Failed to load feed for session %s: %v", session.SessionID, err)
		session.Deck.Load(nil)
		http.Error(w, `{"error": "Failed to load properties"}`, http.StatusBadGateway)
		return
	}

	session.Deck.Load(properties)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"total":  session.Deck.Size(),
		"cursor": session.Deck.Cursor(),
	})
}

// GetFeed returns the two-card visible window plus deck position.
func (c *FeedController) GetFeed(w http.ResponseWriter, r *http.Request) {
	session := c.session(w, r)
	if session == nil {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"properties": session.Deck.Visible(),
		"cursor":     session.Deck.Cursor(),
		"remaining":  session.Deck.Remaining(),
		"total":      session.Deck.Size(),
	})
}

// GetFilterOptions returns the fixed vocabularies the filter sheet offers
// plus the default configuration.
func (c *FeedController) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"propertyTypes": models.PropertyTypes,
		"amenities":     models.AmenityTags,
		"defaults":      models.DefaultFilters(),
	})
}

// ResetFilters restores the default configuration without refetching.
func (c *FeedController) ResetFilters(w http.ResponseWriter, r *http.Request) {
	session := c.session(w, r)
	if session == nil {
		return
	}

	session.SetFilters(models.DefaultFilters())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"filters": session.Filters()})
}

// Swipe interprets a drag gesture released at the given horizontal offset.
// A decision records the like or dismissal fire-and-forget and schedules
// the cursor advance for when the exit animation finishes; the advance is
// never rolled back if the write fails.
func (c *FeedController) Swipe(w http.ResponseWriter, r *http.Request) {
	session := c.session(w, r)
	if session == nil {
		return
	}

	var payload struct {
		OffsetX float64 `json:"offsetX"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}

	decision := services.InterpretDrag(payload.OffsetX)
	c.resolveDecision(w, session, decision, services.DragExitDuration)
}

// SwipeButton produces the same two outcomes as a drag via the manual
// like/dismiss buttons, with the slower button animation.
func (c *FeedController) SwipeButton(w http.ResponseWriter, r *http.Request) {
	session := c.session(w, r)
	if session == nil {
		return
	}

	var payload struct {
		Direction string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, `{"error": "Invalid request payload"}`, http.StatusBadRequest)
		return
	}

	decision, err := services.InterpretButton(payload.Direction)
	if err != nil {
		http.Error(w, `{"error": "Direction must be left or right"}`, http.StatusBadRequest)
		return
	}
	c.resolveDecision(w, session, decision, services.ButtonExitDuration)
}

func (c *FeedController) resolveDecision(w http.ResponseWriter, session *services.Session, decision services.SwipeDecision, exit time.Duration) {
	w.Header().Set("Content-Type", "application/json")

	if decision == services.SwipeNone {
		json.NewEncoder(w).Encode(map[string]interface{}{"decision": decision})
		return
	}

	property, ok := session.Deck.Current()
	if ok && !session.Anonymous() {
		userID := session.UserID
		propertyID := property.ID
		go func() {
			var err error
			if decision == services.SwipeLike {
				err = c.FeedService.LikeProperty(context.TODO(), userID, propertyID)
			} else {
				err = c.FeedService.DismissProperty(context.TODO(), userID, propertyID)
			}
			if err != nil {
				log.Printf("Failed to record %s for user %s on property %s: %v", decision, userID, propertyID, err)
			}
		}()
	}

	session.Deck.ScheduleAdvance(services.AdvanceDelay)

	response := map[string]interface{}{
		"decision":       decision,
		"exitDurationMs": exit.Milliseconds(),
		"advanceDelayMs": services.AdvanceDelay.Milliseconds(),
	}
	if ok {
		response["propertyId"] = property.ID
	}
	json.NewEncoder(w).Encode(response)
}
