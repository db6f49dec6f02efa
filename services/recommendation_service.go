package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"nestify_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TasteProfile is the coarse preference summary derived from a user's liked
// listings: the distinct categories they liked and a price band around the
// mean liked price.
type TasteProfile struct {
	PropertyTypes []string
	MinPrice      float64
	MaxPrice      float64
}

const (
	// RecommendationLimit caps how many suggestions a cycle returns.
	RecommendationLimit = 10
	// AnalysisDelay is a pacing wait before the suggestion query, presented
	// to the user as analysis time. It performs no work and must not be
	// removed; the product leans on it.
	AnalysisDelay = 1500 * time.Millisecond
)

// RecommendedProperty is a listing plus its display-only match percentage.
type RecommendedProperty struct {
	models.Property
	MatchPercent int `json:"matchPercent"`
}

// RecommendationService derives taste profiles and queries the table store
// for suggested listings.
type RecommendationService struct {
	Dynamo *DynamoService
	Feed   *FeedService

	// Delay overrides AnalysisDelay when non-zero. Tests shorten it.
	Delay time.Duration
}

// DeriveTasteProfile computes the category set and price band from liked
// listings. With no likes the profile is unconstrained: no category filter
// and the full default price range.
func DeriveTasteProfile(liked []models.Property) TasteProfile {
	if len(liked) == 0 {
		return TasteProfile{MinPrice: 0, MaxPrice: 10000000}
	}

	var categories []string
	seen := map[string]struct{}{}
	total := 0.0
	for _, p := range liked {
		if _, ok := seen[p.PropertyType]; !ok {
			seen[p.PropertyType] = struct{}{}
			categories = append(categories, p.PropertyType)
		}
		total += p.Price
	}

	mean := total / float64(len(liked))
	minPrice := mean * 0.7
	if minPrice < 0 {
		minPrice = 0
	}

	return TasteProfile{
		PropertyTypes: categories,
		MinPrice:      minPrice,
		MaxPrice:      mean * 1.3,
	}
}

// Suggestions runs one read-derive-query cycle: fetch the like history,
// derive the taste profile, wait out the analysis pacing, then query for
// matching unseen listings, newest first, capped at RecommendationLimit.
func (rs *RecommendationService) Suggestions(ctx context.Context, userID string) ([]models.Property, error) {
	likedIDs, err := rs.Feed.LikedPropertyIDs(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	dismissedIDs, err := rs.Feed.DismissedPropertyIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	exclude := make(map[string]struct{}, len(likedIDs)+len(dismissedIDs))
	for _, id := range likedIDs {
		exclude[id] = struct{}{}
	}
	for _, id := range dismissedIDs {
		exclude[id] = struct{}{}
	}

	var likedProperties []models.Property
	if len(likedIDs) > 0 {
		keys := make([]map[string]types.AttributeValue, len(likedIDs))
		for i, id := range likedIDs {
			keys[i] = map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: id},
			}
		}
		items, err := rs.Dynamo.BatchGetItems(ctx, models.PropertiesTable, keys)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch liked properties: %w", err)
		}
		if err := attributevalue.UnmarshalListOfMaps(items, &likedProperties); err != nil {
			return nil, fmt.Errorf("failed to parse liked properties: %w", err)
		}
	}

	profile := DeriveTasteProfile(likedProperties)

	if err := rs.analysisPause(ctx); err != nil {
		return nil, err
	}

	expr, values, names := BuildRecommendationFilter(profile)
	items, err := rs.Dynamo.ScanItems(ctx, models.PropertiesTable, expr, values, names)
	if err != nil {
		return nil, fmt.Errorf("failed to load suggestions: %w", err)
	}

	var candidates []models.Property
	if err := attributevalue.UnmarshalListOfMaps(items, &candidates); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions: %w", err)
	}

	suggestions := excludeDecided(candidates, exclude)

	sortNewestFirst(suggestions)
	if len(suggestions) > RecommendationLimit {
		suggestions = suggestions[:RecommendationLimit]
	}
	return suggestions, nil
}

func (rs *RecommendationService) analysisPause(ctx context.Context) error {
	delay := rs.Delay
	if delay == 0 {
		delay = AnalysisDelay
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// AnnotateMatchPercent attaches a uniformly random match percentage in
// [80, 95) to each suggestion. The value is cosmetic: it is generated at
// render time, never persisted, and carries no similarity meaning.
func AnnotateMatchPercent(properties []models.Property) []RecommendedProperty {
	annotated := make([]RecommendedProperty, len(properties))
	for i, p := range properties {
		annotated[i] = RecommendedProperty{
			Property:     p,
			MatchPercent: 80 + rand.Intn(15),
		}
	}
	return annotated
}
