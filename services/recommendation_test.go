package services

import (
	"math"
	"testing"

	"nestify_server/models"
)

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestDeriveTasteProfileNoLikes(t *testing.T) {
	profile := DeriveTasteProfile(nil)

	if len(profile.PropertyTypes) != 0 {
		t.Errorf("empty history should derive no categories, got %v", profile.PropertyTypes)
	}
	if profile.MinPrice != 0 || profile.MaxPrice != 10000000 {
		t.Errorf("empty history band = [%v, %v], want [0, 10000000]", profile.MinPrice, profile.MaxPrice)
	}
}

func TestDeriveTasteProfileBand(t *testing.T) {
	liked := []models.Property{
		{ID: "a", PropertyType: "House", Price: 200000},
		{ID: "b", PropertyType: "House", Price: 300000},
		{ID: "c", PropertyType: "Condo", Price: 400000},
	}

	profile := DeriveTasteProfile(liked)

	// mean 300000 -> band [210000, 390000]
	if !closeTo(profile.MinPrice, 210000) {
		t.Errorf("band min = %v, want 210000", profile.MinPrice)
	}
	if !closeTo(profile.MaxPrice, 390000) {
		t.Errorf("band max = %v, want 390000", profile.MaxPrice)
	}

	if len(profile.PropertyTypes) != 2 {
		t.Fatalf("categories = %v, want distinct House and Condo", profile.PropertyTypes)
	}
	seen := map[string]bool{}
	for _, pt := range profile.PropertyTypes {
		seen[pt] = true
	}
	if !seen["House"] || !seen["Condo"] {
		t.Errorf("categories = %v, want House and Condo", profile.PropertyTypes)
	}
}

func TestDeriveTasteProfileTwoLikes(t *testing.T) {
	liked := []models.Property{
		{ID: "a", PropertyType: "House", Price: 100000},
		{ID: "b", PropertyType: "Land", Price: 200000},
	}

	profile := DeriveTasteProfile(liked)

	// mean 150000 -> band [105000, 195000]
	if !closeTo(profile.MinPrice, 105000) {
		t.Errorf("band min = %v, want 105000", profile.MinPrice)
	}
	if !closeTo(profile.MaxPrice, 195000) {
		t.Errorf("band max = %v, want 195000", profile.MaxPrice)
	}
	if len(profile.PropertyTypes) != 2 {
		t.Errorf("categories = %v, want the union of both liked categories", profile.PropertyTypes)
	}
}

func TestAnnotateMatchPercent(t *testing.T) {
	properties := []models.Property{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	for i := 0; i < 50; i++ {
		annotated := AnnotateMatchPercent(properties)
		if len(annotated) != len(properties) {
			t.Fatalf("annotated %d properties, want %d", len(annotated), len(properties))
		}
		for _, rp := range annotated {
			if rp.MatchPercent < 80 || rp.MatchPercent >= 95 {
				t.Fatalf("match percent %d outside [80, 95)", rp.MatchPercent)
			}
		}
	}

	// The annotation is render-time only; the listing rows stay untouched.
	for _, p := range properties {
		if p.Title != "" {
			t.Errorf("input property mutated: %+v", p)
		}
	}
}
