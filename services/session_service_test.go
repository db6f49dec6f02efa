package services

import (
	"testing"

	"nestify_server/models"
)

func TestSessionLifecycle(t *testing.T) {
	ss := NewSessionService()

	session := ss.CreateSession("user-1")
	if session.SessionID == "" {
		t.Fatal("session should get an identifier")
	}
	if session.Anonymous() {
		t.Error("session with a user should not be anonymous")
	}
	if session.Filters().MaxPrice != 10000000 {
		t.Errorf("new session should start from default filters, got %+v", session.Filters())
	}

	found, err := ss.GetSession(session.SessionID)
	if err != nil || found != session {
		t.Fatalf("GetSession() = %v, %v", found, err)
	}

	ss.EndSession(session.SessionID)
	if _, err := ss.GetSession(session.SessionID); err == nil {
		t.Error("ended session should not be found")
	}

	// Ending twice is a no-op.
	ss.EndSession(session.SessionID)
}

func TestAnonymousSession(t *testing.T) {
	ss := NewSessionService()
	session := ss.CreateSession("")
	if !session.Anonymous() {
		t.Error("empty user should make an anonymous session")
	}
}

func TestSetFiltersReplacesWholesale(t *testing.T) {
	ss := NewSessionService()
	session := ss.CreateSession("user-1")

	f := models.DefaultFilters()
	f.City = "Boulder"
	f.PropertyTypes = []string{"House"}
	session.SetFilters(f)

	got := session.Filters()
	if got.City != "Boulder" || len(got.PropertyTypes) != 1 {
		t.Errorf("Filters() = %+v, want applied configuration", got)
	}
}

func TestSortNewestFirst(t *testing.T) {
	properties := []models.Property{
		{ID: "old", CreatedAt: "2026-01-02T00:00:00Z"},
		{ID: "newest", CreatedAt: "2026-08-01T12:00:00Z"},
		{ID: "mid", CreatedAt: "2026-05-15T09:30:00Z"},
	}

	sortNewestFirst(properties)

	want := []string{"newest", "mid", "old"}
	for i, id := range want {
		if properties[i].ID != id {
			t.Fatalf("position %d = %s, want %s (%v)", i, properties[i].ID, id, properties)
		}
	}
}
