package models

// PropertyLike records that a user liked a listing. The table is keyed on
// (userId, propertyId), so writing the same pair twice overwrites in place
// rather than duplicating.
type PropertyLike struct {
	UserID     string `dynamodbav:"userId" json:"userId"`
	PropertyID string `dynamodbav:"propertyId" json:"propertyId"`
	Liked      bool   `dynamodbav:"liked" json:"liked"`
	CreatedAt  string `dynamodbav:"createdAt" json:"createdAt"`
}

// PropertyDismissal records that a user swiped a listing away. Same
// composite key scheme as likes.
type PropertyDismissal struct {
	UserID     string `dynamodbav:"userId" json:"userId"`
	PropertyID string `dynamodbav:"propertyId" json:"propertyId"`
	CreatedAt  string `dynamodbav:"createdAt" json:"createdAt"`
}

// PropertyLikesTable is the DynamoDB table name for likes
const PropertyLikesTable = "PropertyLikes"

// PropertyDismissalsTable is the DynamoDB table name for dismissals
const PropertyDismissalsTable = "PropertyDismissals"
