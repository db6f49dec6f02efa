package services

import "testing"

func TestInterpretDrag(t *testing.T) {
	tests := []struct {
		name     string
		offsetX  float64
		expected SwipeDecision
	}{
		{"far right", 250, SwipeLike},
		{"just past threshold right", 100.5, SwipeLike},
		{"exactly at threshold right", 100, SwipeNone},
		{"small right drag", 40, SwipeNone},
		{"rest", 0, SwipeNone},
		{"small left drag", -40, SwipeNone},
		{"exactly at threshold left", -100, SwipeNone},
		{"just past threshold left", -100.5, SwipeDismiss},
		{"far left", -250, SwipeDismiss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InterpretDrag(tt.offsetX); got != tt.expected {
				t.Errorf("InterpretDrag(%v) = %q, want %q", tt.offsetX, got, tt.expected)
			}
		})
	}
}

func TestInterpretButton(t *testing.T) {
	tests := []struct {
		direction string
		expected  SwipeDecision
		wantErr   bool
	}{
		{"right", SwipeLike, false},
		{"left", SwipeDismiss, false},
		{"up", SwipeNone, true},
		{"", SwipeNone, true},
	}

	for _, tt := range tests {
		t.Run("direction "+tt.direction, func(t *testing.T) {
			got, err := InterpretButton(tt.direction)
			if (err != nil) != tt.wantErr {
				t.Fatalf("InterpretButton(%q) error = %v, wantErr %v", tt.direction, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("InterpretButton(%q) = %q, want %q", tt.direction, got, tt.expected)
			}
		})
	}
}
