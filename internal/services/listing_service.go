package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/goldenharvestfarm/goldenharvest-backend/internal/config"
	"github.com/goldenharvestfarm/goldenharvest-backend/internal/db"
	"github.com/goldenharvestfarm/goldenharvest-backend/internal/models"
)

// CreateListingInput carries the admin-supplied fields for a new listing.
// ID, status and timestamps are server-assigned.
type CreateListingInput struct {
	AnimalType    string  `json:"animalType" binding:"required"`
	Breed         string  `json:"breed" binding:"required"`
	Quantity      int     `json:"quantity" binding:"required"`
	PricePerUnit  float64 `json:"pricePerUnit" binding:"required"`
	Description   string  `json:"description" binding:"required"`
	Image         string  `json:"image" binding:"required"`
	HealthStatus  string  `json:"healthStatus" binding:"required"`
	Location      string  `json:"location" binding:"required"`
	ContactMethod string  `json:"contactMethod"`
	Phone         string  `json:"phone" binding:"required"`
}

// IListingService defines the interface for listing-related operations.
type IListingService interface {
	CreateListing(ctx context.Context, input CreateListingInput) (*models.Listing, error)
	FindListingByID(ctx context.Context, listingID primitive.ObjectID) (*models.Listing, error)
	SearchListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)
	UpdateListing(ctx context.Context, listingID primitive.ObjectID, update models.ListingUpdate) (*models.Listing, error)
	DeleteListing(ctx context.Context, listingID primitive.ObjectID) error
	SeedListings(ctx context.Context) ([]models.Listing, error)
}

const listingsCollection = "listings"

// ErrInvalidEnumValue is returned when a create or update supplies an
// animal type or status outside the supported set.
var ErrInvalidEnumValue = errors.New("invalid enum value")

// listingService implements IListingService.
type listingService struct {
	db  *mongo.Database
	cfg *config.Config
}

// NewListingService creates a new ListingService.
func NewListingService(db *mongo.Database, cfg *config.Config) IListingService {
	return &listingService{db: db, cfg: cfg}
}

// CreateListing creates a new active listing document.
func (s *listingService) CreateListing(ctx context.Context, input CreateListingInput) (*models.Listing, error) {
	if !models.IsValidAnimalType(input.AnimalType) {
		return nil, fmt.Errorf("%w: animal type %q", ErrInvalidEnumValue, input.AnimalType)
	}

	contactMethod := input.ContactMethod
	if contactMethod == "" {
		contactMethod = models.DefaultContactMethod
	}

	collection := s.db.Collection(listingsCollection)
	now := time.Now().UTC()

	var newListing *models.Listing

	operation := func() error {
		newListing = &models.Listing{
			ID:            primitive.NewObjectID(),
			AnimalType:    input.AnimalType,
			Breed:         input.Breed,
			Quantity:      input.Quantity,
			PricePerUnit:  input.PricePerUnit,
			Description:   input.Description,
			Image:         input.Image,
			HealthStatus:  input.HealthStatus,
			Location:      input.Location,
			ContactMethod: contactMethod,
			Phone:         input.Phone,
			Status:        models.StatusActive,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		_, insertErr := collection.InsertOne(ctx, newListing)
		return insertErr
	}

	if err := db.Try(operation); err != nil {
		return nil, fmt.Errorf("failed to insert new listing: %w", err)
	}

	return newListing, nil
}

// FindListingByID finds a listing by its ID regardless of status.
func (s *listingService) FindListingByID(ctx context.Context, listingID primitive.ObjectID) (*models.Listing, error) {
	var listing models.Listing
	collection := s.db.Collection(listingsCollection)

	err := collection.FindOne(ctx, bson.M{"_id": listingID}).Decode(&listing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, mongo.ErrNoDocuments
		}
		return nil, fmt.Errorf("error finding listing by ID %s: %w", listingID.Hex(), err)
	}
	return &listing, nil
}

// SearchListings returns active listings matching the filter, newest first.
// The full matching set is returned; there is no pagination.
func (s *listingService) SearchListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	collection := s.db.Collection(listingsCollection)

	query := bson.M{"status": models.StatusActive}

	if filter.AnimalType != "" && filter.AnimalType != "all" {
		query["animal_type"] = filter.AnimalType
	}

	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := bson.M{}
		if filter.MinPrice != nil {
			price["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			price["$lte"] = *filter.MaxPrice
		}
		query["price_per_unit"] = price
	}

	if filter.Location != "" {
		query["location"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Location), Options: "i"}
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to execute listing search query: %w", err)
	}
	defer cursor.Close(ctx)

	results := []models.Listing{}
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode listing search results: %w", err)
	}

	return results, nil
}

// UpdateListing merges the present fields of the update into the listing and
// refreshes updated_at. Returns the updated document.
func (s *listingService) UpdateListing(ctx context.Context, listingID primitive.ObjectID, update models.ListingUpdate) (*models.Listing, error) {
	if update.AnimalType != nil && !models.IsValidAnimalType(*update.AnimalType) {
		return nil, fmt.Errorf("%w: animal type %q", ErrInvalidEnumValue, *update.AnimalType)
	}
	if update.Status != nil && !models.IsValidStatus(*update.Status) {
		return nil, fmt.Errorf("%w: status %q", ErrInvalidEnumValue, *update.Status)
	}

	set := bson.M{}
	if update.AnimalType != nil {
		set["animal_type"] = *update.AnimalType
	}
	if update.Breed != nil {
		set["breed"] = *update.Breed
	}
	if update.Quantity != nil {
		set["quantity"] = *update.Quantity
	}
	if update.PricePerUnit != nil {
		set["price_per_unit"] = *update.PricePerUnit
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	if update.HealthStatus != nil {
		set["health_status"] = *update.HealthStatus
	}
	if update.Location != nil {
		set["location"] = *update.Location
	}
	if update.ContactMethod != nil {
		set["contact_method"] = *update.ContactMethod
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	set["updated_at"] = time.Now().UTC()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updatedListing models.Listing
	err := s.db.Collection(listingsCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": listingID}, bson.M{"$set": set}, opts).
		Decode(&updatedListing)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, mongo.ErrNoDocuments
		}
		return nil, fmt.Errorf("failed to update listing %s: %w", listingID.Hex(), err)
	}

	return &updatedListing, nil
}

// DeleteListing removes the listing document. Hard delete.
func (s *listingService) DeleteListing(ctx context.Context, listingID primitive.ObjectID) error {
	result, err := s.db.Collection(listingsCollection).DeleteOne(ctx, bson.M{"_id": listingID})
	if err != nil {
		return fmt.Errorf("db error deleting listing %s: %w", listingID.Hex(), err)
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// SeedListings wipes the listings collection and inserts the fixed sample
// set. Destroys live data if invoked against a populated store.
func (s *listingService) SeedListings(ctx context.Context) ([]models.Listing, error) {
	collection := s.db.Collection(listingsCollection)

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		return nil, fmt.Errorf("failed to clear listings before seeding: %w", err)
	}

	now := time.Now().UTC()
	samples := sampleListings(now)

	docs := make([]interface{}, len(samples))
	for i := range samples {
		docs[i] = samples[i]
	}

	operation := func() error {
		_, insertErr := collection.InsertMany(ctx, docs)
		return insertErr
	}
	if err := db.Try(operation); err != nil {
		return nil, fmt.Errorf("failed to insert seed listings: %w", err)
	}

	return samples, nil
}

// sampleListings returns the six fixed demo listings: three chicken breeds
// and three goat breeds across distinct locations and prices.
func sampleListings(now time.Time) []models.Listing {
	mk := func(animalType, breed string, quantity int, price float64, description, image, health, location, phone string) models.Listing {
		return models.Listing{
			ID:            primitive.NewObjectID(),
			AnimalType:    animalType,
			Breed:         breed,
			Quantity:      quantity,
			PricePerUnit:  price,
			Description:   description,
			Image:         image,
			HealthStatus:  health,
			Location:      location,
			ContactMethod: models.DefaultContactMethod,
			Phone:         phone,
			Status:        models.StatusActive,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	}

	return []models.Listing{
		mk(models.AnimalTypeChicken, "Kuroiler", 50, 4500,
			"Healthy dual-purpose Kuroiler chickens, excellent layers and good meat yield.",
			"https://images.goldenharvestfarm.rw/listings/kuroiler.jpg",
			"Vaccinated", "Kigali", "+250788100001"),
		mk(models.AnimalTypeChicken, "Sasso", 80, 4000,
			"Free-range Sasso broilers raised on natural feed, ready for market.",
			"https://images.goldenharvestfarm.rw/listings/sasso.jpg",
			"Vaccinated and dewormed", "Musanze", "+250788100002"),
		mk(models.AnimalTypeChicken, "Rhode Island Red", 30, 5500,
			"Rhode Island Red layers at point of lay, consistent brown egg production.",
			"https://images.goldenharvestfarm.rw/listings/rhode-island-red.jpg",
			"Excellent", "Huye", "+250788100003"),
		mk(models.AnimalTypeGoat, "Boer", 12, 85000,
			"Purebred Boer goats with strong frames, ideal for meat production.",
			"https://images.goldenharvestfarm.rw/listings/boer.jpg",
			"Vet checked", "Nyagatare", "+250788100004"),
		mk(models.AnimalTypeGoat, "Galla", 20, 60000,
			"Hardy Galla goats, drought tolerant and fast growing.",
			"https://images.goldenharvestfarm.rw/listings/galla.jpg",
			"Healthy", "Bugesera", "+250788100005"),
		mk(models.AnimalTypeGoat, "Small East African", 25, 45000,
			"Local Small East African goats, well adapted and low maintenance.",
			"https://images.goldenharvestfarm.rw/listings/small-east-african.jpg",
			"Dewormed", "Rubavu", "+250788100006"),
	}
}
