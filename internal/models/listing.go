package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Animal type values.
const (
	AnimalTypeChicken = "chicken"
	AnimalTypeGoat    = "goat"
)

// Listing status values.
const (
	StatusActive   = "active"
	StatusSold     = "sold"
	StatusInactive = "inactive"
)

// DefaultContactMethod is applied when a listing is created without one.
const DefaultContactMethod = "Phone"

// Listing represents a livestock listing offered for sale.
type Listing struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	AnimalType    string             `bson:"animal_type" json:"animalType"` // "chicken" or "goat"
	Breed         string             `bson:"breed" json:"breed"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	PricePerUnit  float64            `bson:"price_per_unit" json:"pricePerUnit"`
	Description   string             `bson:"description" json:"description"`
	Image         string             `bson:"image" json:"image"` // URL, no file storage
	HealthStatus  string             `bson:"health_status" json:"healthStatus"`
	Location      string             `bson:"location" json:"location"`
	ContactMethod string             `bson:"contact_method" json:"contactMethod"`
	Phone         string             `bson:"phone" json:"phone"`
	Status        string             `bson:"status" json:"status"` // "active", "sold" or "inactive"
	CreatedAt     time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updatedAt"`
}

// ListingFilter holds the optional public browse filters. Nil/empty fields
// are not applied. Browse results are always restricted to active listings.
type ListingFilter struct {
	AnimalType string   // exact match; "" or "all" means no filter
	MinPrice   *float64 // inclusive
	MaxPrice   *float64 // inclusive
	Location   string   // case-insensitive substring match
}

// ListingUpdate carries the admin-editable fields of a listing, one optional
// slot per field. Nil fields are left untouched; present fields overwrite.
type ListingUpdate struct {
	AnimalType    *string  `json:"animalType"`
	Breed         *string  `json:"breed"`
	Quantity      *int     `json:"quantity"`
	PricePerUnit  *float64 `json:"pricePerUnit"`
	Description   *string  `json:"description"`
	Image         *string  `json:"image"`
	HealthStatus  *string  `json:"healthStatus"`
	Location      *string  `json:"location"`
	ContactMethod *string  `json:"contactMethod"`
	Phone         *string  `json:"phone"`
	Status        *string  `json:"status"`
}

// IsValidAnimalType reports whether t is one of the supported animal types.
func IsValidAnimalType(t string) bool {
	return t == AnimalTypeChicken || t == AnimalTypeGoat
}

// IsValidStatus reports whether s is one of the supported listing statuses.
func IsValidStatus(s string) bool {
	return s == StatusActive || s == StatusSold || s == StatusInactive
}
