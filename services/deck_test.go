package services

import (
	"testing"
	"time"

	"nestify_server/models"
)

func listings(ids ...string) []models.Property {
	properties := make([]models.Property, len(ids))
	for i, id := range ids {
		properties[i] = models.Property{ID: id}
	}
	return properties
}

func TestDeckAdvanceAndWindow(t *testing.T) {
	deck := NewDeck()
	deck.Load(listings("a", "b", "c"))

	if got := deck.Size(); got != 3 {
		t.Fatalf("Size() = %d, want 3", got)
	}

	window := deck.Visible()
	if len(window) != 2 || window[0].ID != "a" || window[1].ID != "b" {
		t.Fatalf("Visible() = %v, want [a b]", window)
	}

	deck.Advance()
	if top, ok := deck.Current(); !ok || top.ID != "b" {
		t.Fatalf("Current() after advance = %v, %v, want b", top, ok)
	}
	if got := deck.Remaining(); got != 2 {
		t.Errorf("Remaining() = %d, want 2", got)
	}

	deck.Advance()
	window = deck.Visible()
	if len(window) != 1 || window[0].ID != "c" {
		t.Fatalf("Visible() near end = %v, want [c]", window)
	}

	deck.Advance()
	if _, ok := deck.Current(); ok {
		t.Error("Current() on exhausted deck should report no card")
	}
	if got := deck.Remaining(); got != 0 {
		t.Errorf("Remaining() on exhausted deck = %d, want 0", got)
	}
}

func TestDeckCursorNeverDecreases(t *testing.T) {
	deck := NewDeck()
	deck.Load(listings("a", "b"))

	last := deck.Cursor()
	for i := 0; i < 5; i++ {
		deck.Advance()
		if cur := deck.Cursor(); cur < last {
			t.Fatalf("cursor decreased from %d to %d", last, cur)
		} else {
			last = cur
		}
	}

	// Advancing past the end stays put.
	if got := deck.Cursor(); got != 2 {
		t.Errorf("Cursor() after exhausting = %d, want 2", got)
	}
}

func TestDeckLoadResetsCursor(t *testing.T) {
	deck := NewDeck()
	deck.Load(listings("a", "b", "c"))
	deck.Advance()
	deck.Advance()

	deck.Load(listings("x", "y"))
	if got := deck.Cursor(); got != 0 {
		t.Fatalf("Cursor() after reload = %d, want 0", got)
	}
	if top, ok := deck.Current(); !ok || top.ID != "x" {
		t.Errorf("Current() after reload = %v, %v, want x", top, ok)
	}
}

func TestDeckScheduleAdvance(t *testing.T) {
	deck := NewDeck()
	deck.Load(listings("a", "b"))

	deck.ScheduleAdvance(10 * time.Millisecond)

	// The advance must not happen before the delay elapses.
	if got := deck.Cursor(); got != 0 {
		t.Fatalf("Cursor() immediately after scheduling = %d, want 0", got)
	}

	deadline := time.Now().Add(time.Second)
	for deck.Cursor() != 1 {
		if time.Now().After(deadline) {
			t.Fatal("scheduled advance never fired")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
