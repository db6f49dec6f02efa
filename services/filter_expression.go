package services

import (
	"fmt"
	"strconv"
	"strings"

	"nestify_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// BuildListingFilter translates a Filters configuration into a DynamoDB
// filter expression over the Properties table. Every predicate is attached
// only when its field differs from the no-constraint default. The city
// predicate is the one exception: DynamoDB cannot express a
// case-insensitive substring match, so city is matched in memory by
// MatchesCity after the scan.
func BuildListingFilter(f models.Filters) (string, map[string]types.AttributeValue, map[string]string) {
	var clauses []string
	values := map[string]types.AttributeValue{}
	names := map[string]string{}

	clauses = append(clauses, "#isActive = :active")
	names["#isActive"] = "isActive"
	values[":active"] = &types.AttributeValueMemberBOOL{Value: true}

	if f.Country != "" {
		clauses = append(clauses, "#country = :country")
		names["#country"] = "country"
		values[":country"] = &types.AttributeValueMemberS{Value: f.Country}
	}
	if f.State != "" {
		// "state" is a DynamoDB reserved word
		clauses = append(clauses, "#state = :state")
		names["#state"] = "state"
		values[":state"] = &types.AttributeValueMemberS{Value: f.State}
	}
	if f.ZipCode != "" {
		clauses = append(clauses, "#zipCode = :zipCode")
		names["#zipCode"] = "zipCode"
		values[":zipCode"] = &types.AttributeValueMemberS{Value: f.ZipCode}
	}

	if len(f.PropertyTypes) > 0 {
		placeholders := make([]string, len(f.PropertyTypes))
		for i, pt := range f.PropertyTypes {
			placeholder := fmt.Sprintf(":pt%d", i)
			placeholders[i] = placeholder
			values[placeholder] = &types.AttributeValueMemberS{Value: pt}
		}
		clauses = append(clauses, fmt.Sprintf("#propertyType IN (%s)", strings.Join(placeholders, ", ")))
		names["#propertyType"] = "propertyType"
	}

	clauses = append(clauses, "#price BETWEEN :minPrice AND :maxPrice")
	names["#price"] = "price"
	values[":minPrice"] = numberAttr(f.MinPrice)
	values[":maxPrice"] = numberAttr(f.MaxPrice)

	clauses = append(clauses, "#bedrooms BETWEEN :minBedrooms AND :maxBedrooms")
	names["#bedrooms"] = "bedrooms"
	values[":minBedrooms"] = intAttr(f.MinBedrooms)
	values[":maxBedrooms"] = intAttr(f.MaxBedrooms)

	clauses = append(clauses, "#bathrooms BETWEEN :minBathrooms AND :maxBathrooms")
	names["#bathrooms"] = "bathrooms"
	values[":minBathrooms"] = intAttr(f.MinBathrooms)
	values[":maxBathrooms"] = intAttr(f.MaxBathrooms)

	return strings.Join(clauses, " AND "), values, names
}

// BuildRecommendationFilter translates a taste profile into a filter
// expression: active listings inside the price band, restricted to the
// liked categories when any exist.
func BuildRecommendationFilter(profile TasteProfile) (string, map[string]types.AttributeValue, map[string]string) {
	var clauses []string
	values := map[string]types.AttributeValue{}
	names := map[string]string{}

	clauses = append(clauses, "#isActive = :active")
	names["#isActive"] = "isActive"
	values[":active"] = &types.AttributeValueMemberBOOL{Value: true}

	if len(profile.PropertyTypes) > 0 {
		placeholders := make([]string, len(profile.PropertyTypes))
		for i, pt := range profile.PropertyTypes {
			placeholder := fmt.Sprintf(":pt%d", i)
			placeholders[i] = placeholder
			values[placeholder] = &types.AttributeValueMemberS{Value: pt}
		}
		clauses = append(clauses, fmt.Sprintf("#propertyType IN (%s)", strings.Join(placeholders, ", ")))
		names["#propertyType"] = "propertyType"
	}

	clauses = append(clauses, "#price BETWEEN :minPrice AND :maxPrice")
	names["#price"] = "price"
	values[":minPrice"] = numberAttr(profile.MinPrice)
	values[":maxPrice"] = numberAttr(profile.MaxPrice)

	return strings.Join(clauses, " AND "), values, names
}

// MatchesCity reports whether a listing's city contains the configured city
// filter, ignoring case. An empty filter matches everything.
func MatchesCity(listingCity, filterCity string) bool {
	if filterCity == "" {
		return true
	}
	return strings.Contains(strings.ToLower(listingCity), strings.ToLower(filterCity))
}

func numberAttr(v float64) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.FormatFloat(v, 'f', -1, 64)}
}

func intAttr(v int) types.AttributeValue {
	return &types.AttributeValueMemberN{Value: strconv.Itoa(v)}
}
