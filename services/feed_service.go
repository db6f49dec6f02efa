package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"nestify_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// FeedService produces the ordered listing queue for the discovery screen
// and records swipe decisions against the table store.
type FeedService struct {
	Dynamo *DynamoService
}

// FetchFeed runs the full fetch-and-exclude cycle: scan active listings
// matching the filters, drop everything the user has already liked or
// dismissed, and order the remainder newest-first. Anonymous users skip the
// history exclusion. The entire matching set is returned; the deck advances
// through it in memory.
func (fs *FeedService) FetchFeed(ctx context.Context, userID string, filters models.Filters) ([]models.Property, error) {
	expr, values, names := BuildListingFilter(filters)

	items, err := fs.Dynamo.ScanItems(ctx, models.PropertiesTable, expr, values, names)
	if err != nil {
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}

	var properties []models.Property
	if err := attributevalue.UnmarshalListOfMaps(items, &properties); err != nil {
		return nil, fmt.Errorf("failed to parse properties: %w", err)
	}

	var exclude map[string]struct{}
	if userID != "" {
		exclude, err = fs.DecidedPropertyIDs(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	filtered := properties[:0]
	for _, p := range properties {
		if MatchesCity(p.City, filters.City) {
			filtered = append(filtered, p)
		}
	}
	filtered = excludeDecided(filtered, exclude)

	sortNewestFirst(filtered)
	return filtered, nil
}

// excludeDecided drops every listing the user already has a like or
// dismissal record for. A nil or empty set passes everything through, the
// anonymous case.
func excludeDecided(properties []models.Property, decided map[string]struct{}) []models.Property {
	if len(decided) == 0 {
		return properties
	}
	kept := properties[:0]
	for _, p := range properties {
		if _, ok := decided[p.ID]; ok {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// DecidedPropertyIDs returns the union of the user's liked and dismissed
// listing identities, the set the feed and recommendations must exclude.
func (fs *FeedService) DecidedPropertyIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	liked, err := fs.LikedPropertyIDs(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	dismissed, err := fs.DismissedPropertyIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	decided := make(map[string]struct{}, len(liked)+len(dismissed))
	for _, id := range liked {
		decided[id] = struct{}{}
	}
	for _, id := range dismissed {
		decided[id] = struct{}{}
	}
	return decided, nil
}

// LikedRecords returns the user's like records, restricted to rows whose
// liked flag is still set.
func (fs *FeedService) LikedRecords(ctx context.Context, userID string) ([]models.PropertyLike, error) {
	keyCondition := "userId = :userId"
	values := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
		":liked":  &types.AttributeValueMemberBOOL{Value: true},
	}

	items, err := fs.Dynamo.QueryItems(ctx, models.PropertyLikesTable, keyCondition, "liked = :liked", values, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch likes: %w", err)
	}

	var likes []models.PropertyLike
	if err := attributevalue.UnmarshalListOfMaps(items, &likes); err != nil {
		return nil, fmt.Errorf("failed to parse likes: %w", err)
	}
	return likes, nil
}

// LikedPropertyIDs returns the listing identities the user has like records
// for. With likedOnly set, records whose liked flag was cleared are left out.
func (fs *FeedService) LikedPropertyIDs(ctx context.Context, userID string, likedOnly bool) ([]string, error) {
	keyCondition := "userId = :userId"
	values := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}
	filterExpression := ""
	if likedOnly {
		filterExpression = "liked = :liked"
		values[":liked"] = &types.AttributeValueMemberBOOL{Value: true}
	}

	items, err := fs.Dynamo.QueryItems(ctx, models.PropertyLikesTable, keyCondition, filterExpression, values, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch likes: %w", err)
	}

	var likes []models.PropertyLike
	if err := attributevalue.UnmarshalListOfMaps(items, &likes); err != nil {
		return nil, fmt.Errorf("failed to parse likes: %w", err)
	}

	ids := make([]string, 0, len(likes))
	for _, l := range likes {
		ids = append(ids, l.PropertyID)
	}
	return ids, nil
}

// DismissedPropertyIDs returns the listing identities the user has swiped away.
func (fs *FeedService) DismissedPropertyIDs(ctx context.Context, userID string) ([]string, error) {
	keyCondition := "userId = :userId"
	values := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}

	items, err := fs.Dynamo.QueryItems(ctx, models.PropertyDismissalsTable, keyCondition, "", values, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dismissals: %w", err)
	}

	var dismissals []models.PropertyDismissal
	if err := attributevalue.UnmarshalListOfMaps(items, &dismissals); err != nil {
		return nil, fmt.Errorf("failed to parse dismissals: %w", err)
	}

	ids := make([]string, 0, len(dismissals))
	for _, d := range dismissals {
		ids = append(ids, d.PropertyID)
	}
	return ids, nil
}

// LikeProperty upserts a like for the (user, listing) pair. Liking the same
// listing twice leaves exactly one record.
func (fs *FeedService) LikeProperty(ctx context.Context, userID, propertyID string) error {
	like := models.PropertyLike{
		UserID:     userID,
		PropertyID: propertyID,
		Liked:      true,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := fs.Dynamo.PutItem(ctx, models.PropertyLikesTable, like); err != nil {
		return fmt.Errorf("failed to save like: %w", err)
	}
	return nil
}

// DismissProperty upserts a dismissal for the (user, listing) pair.
func (fs *FeedService) DismissProperty(ctx context.Context, userID, propertyID string) error {
	dismissal := models.PropertyDismissal{
		UserID:     userID,
		PropertyID: propertyID,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if err := fs.Dynamo.PutItem(ctx, models.PropertyDismissalsTable, dismissal); err != nil {
		return fmt.Errorf("failed to save dismissal: %w", err)
	}
	return nil
}

// RemoveLike deletes a like, the explicit "remove from favorites" action.
func (fs *FeedService) RemoveLike(ctx context.Context, userID, propertyID string) error {
	key := map[string]types.AttributeValue{
		"userId":     &types.AttributeValueMemberS{Value: userID},
		"propertyId": &types.AttributeValueMemberS{Value: propertyID},
	}
	if err := fs.Dynamo.DeleteItem(ctx, models.PropertyLikesTable, key); err != nil {
		return fmt.Errorf("failed to remove like: %w", err)
	}
	return nil
}

// LikedProperties returns the full listing rows behind the user's likes,
// for the favorites and map screens.
func (fs *FeedService) LikedProperties(ctx context.Context, userID string) ([]models.Property, error) {
	ids, err := fs.LikedPropertyIDs(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Property{}, nil
	}

	keys := make([]map[string]types.AttributeValue, len(ids))
	for i, id := range ids {
		keys[i] = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		}
	}

	items, err := fs.Dynamo.BatchGetItems(ctx, models.PropertiesTable, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch liked properties: %w", err)
	}

	var properties []models.Property
	if err := attributevalue.UnmarshalListOfMaps(items, &properties); err != nil {
		return nil, fmt.Errorf("failed to parse liked properties: %w", err)
	}
	return properties, nil
}

// CountLikes returns how many like records the user has.
func (fs *FeedService) CountLikes(ctx context.Context, userID string) (int, error) {
	return fs.Dynamo.CountItems(ctx, models.PropertyLikesTable, "userId = :userId", map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	})
}

// CountDismissals returns how many dismissal records the user has.
func (fs *FeedService) CountDismissals(ctx context.Context, userID string) (int, error) {
	return fs.Dynamo.CountItems(ctx, models.PropertyDismissalsTable, "userId = :userId", map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	})
}

// sortNewestFirst orders listings by creation time, most recent first.
// DynamoDB scans return items in key order, so ordering happens here.
func sortNewestFirst(properties []models.Property) {
	sort.SliceStable(properties, func(i, j int) bool {
		return properties[i].CreatedAt > properties[j].CreatedAt
	})
}
