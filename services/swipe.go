package services

import (
	"errors"
	"time"
)

// SwipeDecision is the discrete outcome of a gesture on the top card.
type SwipeDecision string

const (
	SwipeLike    SwipeDecision = "like"
	SwipeDismiss SwipeDecision = "dismiss"
	SwipeNone    SwipeDecision = "none"
)

// SwipeThreshold is the horizontal drag distance, in device-independent
// pixels, a card must travel before release to count as a decision.
const SwipeThreshold = 100.0

const (
	// DragExitDuration is how long a released card slides off screen.
	DragExitDuration = 300 * time.Millisecond
	// ButtonExitDuration is the slower slide used by the like/dismiss buttons.
	ButtonExitDuration = 500 * time.Millisecond
	// AdvanceDelay separates the visual exit from the queue advance so the
	// card is gone before the next one becomes the top card.
	AdvanceDelay = 300 * time.Millisecond
)

// InterpretDrag maps a signed horizontal offset sampled at gesture end to a
// decision. Offsets exactly at the threshold snap back.
func InterpretDrag(offsetX float64) SwipeDecision {
	switch {
	case offsetX > SwipeThreshold:
		return SwipeLike
	case offsetX < -SwipeThreshold:
		return SwipeDismiss
	default:
		return SwipeNone
	}
}

// InterpretButton maps the manual control's direction to the same decisions
// a drag produces.
func InterpretButton(direction string) (SwipeDecision, error) {
	switch direction {
	case "right":
		return SwipeLike, nil
	case "left":
		return SwipeDismiss, nil
	default:
		return SwipeNone, errors.New("direction must be \"left\" or \"right\"")
	}
}
