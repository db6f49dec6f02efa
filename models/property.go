package models

// Property defines a listing record owned by the remote table store.
// Clients never mutate listings; they are created and maintained by the
// listing owners.
type Property struct {
	ID             string   `dynamodbav:"id" json:"id"`
	Title          string   `dynamodbav:"title" json:"title"`
	Description    string   `dynamodbav:"description,omitempty" json:"description,omitempty"`
	PropertyType   string   `dynamodbav:"propertyType" json:"propertyType"`
	Price          float64  `dynamodbav:"price" json:"price"`
	Bedrooms       int      `dynamodbav:"bedrooms" json:"bedrooms"`
	Bathrooms      int      `dynamodbav:"bathrooms" json:"bathrooms"`
	Sqft           int      `dynamodbav:"sqft,omitempty" json:"sqft,omitempty"`
	Address        string   `dynamodbav:"address" json:"address"`
	City           string   `dynamodbav:"city" json:"city"`
	State          string   `dynamodbav:"state" json:"state"`
	Country        string   `dynamodbav:"country" json:"country"`
	ZipCode        string   `dynamodbav:"zipCode,omitempty" json:"zipCode,omitempty"`
	Latitude       float64  `dynamodbav:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude      float64  `dynamodbav:"longitude,omitempty" json:"longitude,omitempty"`
	Images         []string `dynamodbav:"images" json:"images"`
	VirtualTourURL string   `dynamodbav:"virtualTourUrl,omitempty" json:"virtualTourUrl,omitempty"`
	Amenities      []string `dynamodbav:"amenities,omitempty" json:"amenities,omitempty"`
	RealtorID      string   `dynamodbav:"realtorId,omitempty" json:"realtorId,omitempty"`
	RealtorName    string   `dynamodbav:"realtorName,omitempty" json:"realtorName,omitempty"`
	RealtorEmail   string   `dynamodbav:"realtorEmail,omitempty" json:"realtorEmail,omitempty"`
	RealtorPhone   string   `dynamodbav:"realtorPhone,omitempty" json:"realtorPhone,omitempty"`
	IsActive       bool     `dynamodbav:"isActive" json:"isActive"`
	CreatedAt      string   `dynamodbav:"createdAt" json:"createdAt"`
	UpdatedAt      string   `dynamodbav:"updatedAt" json:"updatedAt"`
}

// PropertiesTable is the DynamoDB table name for listings
const PropertiesTable = "Properties"

// Property types offered by the app
const (
	PropertyTypeHouse = "House"
	PropertyTypeCondo = "Condo"
	PropertyTypeLand  = "Land"
)

// PropertyTypes lists every selectable listing category
var PropertyTypes = []string{PropertyTypeHouse, PropertyTypeCondo, PropertyTypeLand}

// AmenityTags is the fixed amenity vocabulary listings are tagged with
var AmenityTags = []string{
	"Pool", "Gym", "Home Office", "Smart Home", "Pet-friendly",
	"Beach Access", "Hot Tub", "Fireplace", "Wine Cellar", "Outdoor Kitchen",
	"Rooftop Access", "Doorman", "Garden", "Ski Storage", "EV Charging",
	"Solar", "Guest House", "Boat Dock", "Marina Access", "Spa",
}
