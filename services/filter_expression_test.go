package services

import (
	"strings"
	"testing"

	"nestify_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func stringValue(t *testing.T, values map[string]types.AttributeValue, placeholder string) string {
	t.Helper()
	attr, ok := values[placeholder]
	if !ok {
		t.Fatalf("missing expression value %s", placeholder)
	}
	s, ok := attr.(*types.AttributeValueMemberS)
	if !ok {
		t.Fatalf("expression value %s is %T, want string", placeholder, attr)
	}
	return s.Value
}

func numValue(t *testing.T, values map[string]types.AttributeValue, placeholder string) string {
	t.Helper()
	attr, ok := values[placeholder]
	if !ok {
		t.Fatalf("missing expression value %s", placeholder)
	}
	n, ok := attr.(*types.AttributeValueMemberN)
	if !ok {
		t.Fatalf("expression value %s is %T, want number", placeholder, attr)
	}
	return n.Value
}

func TestBuildListingFilterDefaults(t *testing.T) {
	expr, values, names := BuildListingFilter(models.DefaultFilters())

	// The default configuration constrains nothing but activity and the
	// full-range numerics.
	for _, absent := range []string{"#country", "#state", "#zipCode", "#propertyType"} {
		if _, ok := names[absent]; ok {
			t.Errorf("default filter should not bind %s", absent)
		}
		if strings.Contains(expr, absent) {
			t.Errorf("default filter expression should not mention %s: %s", absent, expr)
		}
	}

	if !strings.Contains(expr, "#isActive = :active") {
		t.Errorf("expression missing active clause: %s", expr)
	}
	if !strings.Contains(expr, "#price BETWEEN :minPrice AND :maxPrice") {
		t.Errorf("expression missing price range: %s", expr)
	}
	if got := numValue(t, values, ":maxPrice"); got != "10000000" {
		t.Errorf("default max price = %s, want 10000000", got)
	}
	if got := numValue(t, values, ":maxBedrooms"); got != "10" {
		t.Errorf("default max bedrooms = %s, want 10", got)
	}
}

func TestBuildListingFilterWithEverything(t *testing.T) {
	f := models.DefaultFilters()
	f.Country = "USA"
	f.State = "CO"
	f.ZipCode = "80302"
	f.City = "Boulder"
	f.PropertyTypes = []string{"House", "Condo"}
	f.MinPrice = 250000
	f.MaxPrice = 750000
	f.MinBedrooms = 2
	f.MaxBedrooms = 4
	f.MinBathrooms = 1
	f.MaxBathrooms = 3

	expr, values, names := BuildListingFilter(f)

	if !strings.Contains(expr, "#country = :country") {
		t.Errorf("expression missing country equality: %s", expr)
	}
	if got := stringValue(t, values, ":country"); got != "USA" {
		t.Errorf("country value = %s, want USA", got)
	}
	if !strings.Contains(expr, "#state = :state") || names["#state"] != "state" {
		t.Errorf("state should be bound through a name placeholder: %s", expr)
	}
	if !strings.Contains(expr, "#propertyType IN (:pt0, :pt1)") {
		t.Errorf("expression missing category membership: %s", expr)
	}
	if got := stringValue(t, values, ":pt1"); got != "Condo" {
		t.Errorf("second category = %s, want Condo", got)
	}
	if got := numValue(t, values, ":minPrice"); got != "250000" {
		t.Errorf("min price = %s, want 250000", got)
	}
	if got := numValue(t, values, ":maxBathrooms"); got != "3" {
		t.Errorf("max bathrooms = %s, want 3", got)
	}

	// City never reaches the remote expression; it is matched in memory.
	if strings.Contains(expr, "city") || strings.Contains(expr, "City") {
		t.Errorf("city must not appear in the remote expression: %s", expr)
	}
}

func TestMatchesCity(t *testing.T) {
	tests := []struct {
		listingCity string
		filterCity  string
		expected    bool
	}{
		{"Boulder", "", true},
		{"Boulder", "boulder", true},
		{"Boulder", "OULD", true},
		{"Boulder", "Denver", false},
		{"", "Denver", false},
		{"South Lake Tahoe", "lake", true},
	}

	for _, tt := range tests {
		if got := MatchesCity(tt.listingCity, tt.filterCity); got != tt.expected {
			t.Errorf("MatchesCity(%q, %q) = %v, want %v", tt.listingCity, tt.filterCity, got, tt.expected)
		}
	}
}

func TestBuildRecommendationFilter(t *testing.T) {
	expr, values, _ := BuildRecommendationFilter(TasteProfile{
		PropertyTypes: []string{"House"},
		MinPrice:      210000,
		MaxPrice:      390000,
	})

	if !strings.Contains(expr, "#propertyType IN (:pt0)") {
		t.Errorf("expression missing category clause: %s", expr)
	}
	if got := numValue(t, values, ":minPrice"); got != "210000" {
		t.Errorf("band min = %s, want 210000", got)
	}
	if got := numValue(t, values, ":maxPrice"); got != "390000" {
		t.Errorf("band max = %s, want 390000", got)
	}

	// No likes: the category clause is omitted entirely.
	expr, _, names := BuildRecommendationFilter(TasteProfile{MinPrice: 0, MaxPrice: 10000000})
	if strings.Contains(expr, "propertyType") {
		t.Errorf("empty profile must not constrain categories: %s", expr)
	}
	if _, ok := names["#propertyType"]; ok {
		t.Error("empty profile should not bind #propertyType")
	}
}
