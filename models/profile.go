package models

// Profile defines per-user account data. Created on first sign-in, updated
// by an explicit save from the profile screen. The preference range fields
// are stored but not consulted by the feed, which works off the transient
// per-session filters instead.
type Profile struct {
	ID                     string   `dynamodbav:"id" json:"id"`
	Email                  string   `dynamodbav:"email,omitempty" json:"email,omitempty"`
	FullName               string   `dynamodbav:"fullName,omitempty" json:"fullName,omitempty"`
	AvatarURL              string   `dynamodbav:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`
	Country                string   `dynamodbav:"country,omitempty" json:"country,omitempty"`
	State                  string   `dynamodbav:"state,omitempty" json:"state,omitempty"`
	City                   string   `dynamodbav:"city,omitempty" json:"city,omitempty"`
	ZipCode                string   `dynamodbav:"zipCode,omitempty" json:"zipCode,omitempty"`
	PreferredPropertyTypes []string `dynamodbav:"preferredPropertyTypes,omitempty" json:"preferredPropertyTypes,omitempty"`
	MinPrice               float64  `dynamodbav:"minPrice,omitempty" json:"minPrice,omitempty"`
	MaxPrice               float64  `dynamodbav:"maxPrice,omitempty" json:"maxPrice,omitempty"`
	MinBedrooms            int      `dynamodbav:"minBedrooms,omitempty" json:"minBedrooms,omitempty"`
	MaxBedrooms            int      `dynamodbav:"maxBedrooms,omitempty" json:"maxBedrooms,omitempty"`
	MinBathrooms           int      `dynamodbav:"minBathrooms,omitempty" json:"minBathrooms,omitempty"`
	MaxBathrooms           int      `dynamodbav:"maxBathrooms,omitempty" json:"maxBathrooms,omitempty"`
	Amenities              []string `dynamodbav:"amenities,omitempty" json:"amenities,omitempty"`
	CreatedAt              string   `dynamodbav:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt              string   `dynamodbav:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// ProfileStats summarizes a user's swipe history for the profile screen.
// Viewed counts every decision, liked or dismissed.
type ProfileStats struct {
	Liked  int `json:"liked"`
	Viewed int `json:"viewed"`
}

// ProfilesTable is the DynamoDB table name for user profiles
const ProfilesTable = "Profiles"
