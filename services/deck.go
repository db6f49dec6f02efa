package services

import (
	"sync"
	"time"

	"nestify_server/models"
)

// Deck holds one session's ordered listing queue and its cursor. The cursor
// only ever moves forward; Load (a refresh) is the single way back to zero.
type Deck struct {
	mu         sync.Mutex
	properties []models.Property
	cursor     int
}

// NewDeck returns an empty deck.
func NewDeck() *Deck {
	return &Deck{}
}

// Load replaces the queue with a freshly fetched result set and resets the
// cursor.
func (d *Deck) Load(properties []models.Property) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.properties = properties
	d.cursor = 0
}

// Current returns the top card, or false when the deck is exhausted.
func (d *Deck) Current() (models.Property, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cursor >= len(d.properties) {
		return models.Property{}, false
	}
	return d.properties[d.cursor], true
}

// Visible returns the two-card window starting at the cursor, matching what
// the card stack renders.
func (d *Deck) Visible() []models.Property {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cursor >= len(d.properties) {
		return []models.Property{}
	}
	end := d.cursor + 2
	if end > len(d.properties) {
		end = len(d.properties)
	}
	window := make([]models.Property, end-d.cursor)
	copy(window, d.properties[d.cursor:end])
	return window
}

// Advance moves the cursor past the top card.
func (d *Deck) Advance() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cursor < len(d.properties) {
		d.cursor++
	}
}

// ScheduleAdvance advances the cursor after the card's exit animation has
// played out, keeping the visual affordance ahead of the state change.
func (d *Deck) ScheduleAdvance(delay time.Duration) {
	time.AfterFunc(delay, d.Advance)
}

// Cursor returns the current position.
func (d *Deck) Cursor() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cursor
}

// Size returns the total number of listings loaded.
func (d *Deck) Size() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.properties)
}

// Remaining returns how many listings the session has not yet decided on.
func (d *Deck) Remaining() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	remaining := len(d.properties) - d.cursor
	if remaining < 0 {
		return 0
	}
	return remaining
}
