package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nestify_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ProfileService manages user profiles and the profile screen's swipe stats.
type ProfileService struct {
	Dynamo *DynamoService
	Feed   *FeedService
}

// ProfileUpdate carries the fields the profile screen saves.
type ProfileUpdate struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	City     string `json:"city"`
	State    string `json:"state"`
}

// GetProfile fetches a user's profile. Returns nil without error when the
// user has none yet.
func (ps *ProfileService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: userID},
	}
	item, err := ps.Dynamo.GetItem(ctx, models.ProfilesTable, key)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	var profile models.Profile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &profile, nil
}

// EnsureProfile creates a profile on first sign-in, seeding the stored
// preference ranges with the defaults. Existing profiles are returned
// untouched.
func (ps *ProfileService) EnsureProfile(ctx context.Context, userID, email string) (models.Profile, error) {
	existing, err := ps.GetProfile(ctx, userID)
	if err != nil {
		return models.Profile{}, err
	}
	if existing != nil {
		return *existing, nil
	}

	defaults := models.DefaultFilters()
	now := time.Now().UTC().Format(time.RFC3339)
	profile := models.Profile{
		ID:           userID,
		Email:        email,
		MinPrice:     defaults.MinPrice,
		MaxPrice:     defaults.MaxPrice,
		MinBedrooms:  defaults.MinBedrooms,
		MaxBedrooms:  defaults.MaxBedrooms,
		MinBathrooms: defaults.MinBathrooms,
		MaxBathrooms: defaults.MaxBathrooms,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := ps.Dynamo.PutItem(ctx, models.ProfilesTable, profile); err != nil {
		return models.Profile{}, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

// UpsertProfile applies an explicit save from the profile screen.
func (ps *ProfileService) UpsertProfile(ctx context.Context, userID string, update ProfileUpdate) (models.Profile, error) {
	profile, err := ps.EnsureProfile(ctx, userID, update.Email)
	if err != nil {
		return models.Profile{}, err
	}

	profile.FullName = update.FullName
	profile.Email = update.Email
	profile.City = update.City
	profile.State = update.State
	profile.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := ps.Dynamo.PutItem(ctx, models.ProfilesTable, profile); err != nil {
		return models.Profile{}, fmt.Errorf("failed to save profile: %w", err)
	}
	return profile, nil
}

// Stats returns the like and viewed counts shown on the profile screen.
// Viewed is every decision, liked or dismissed.
func (ps *ProfileService) Stats(ctx context.Context, userID string) (models.ProfileStats, error) {
	liked, err := ps.Feed.CountLikes(ctx, userID)
	if err != nil {
		return models.ProfileStats{}, err
	}
	dismissed, err := ps.Feed.CountDismissals(ctx, userID)
	if err != nil {
		return models.ProfileStats{}, err
	}
	return models.ProfileStats{
		Liked:  liked,
		Viewed: liked + dismissed,
	}, nil
}
