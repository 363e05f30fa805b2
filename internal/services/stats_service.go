package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/goldenharvestfarm/goldenharvest-backend/internal/models"
)

// IStatsService computes aggregate counts for the admin dashboard.
type IStatsService interface {
	GetStats(ctx context.Context) (*models.Stats, error)
}

// statsService implements IStatsService.
type statsService struct {
	db *mongo.Database
}

// NewStatsService creates a new StatsService.
func NewStatsService(db *mongo.Database) IStatsService {
	return &statsService{db: db}
}

// GetStats computes all counts fresh per request: listing and message totals
// via CountDocuments, live quantity per animal type via an aggregation over
// active listings only.
func (s *statsService) GetStats(ctx context.Context) (*models.Stats, error) {
	listings := s.db.Collection(listingsCollection)
	messages := s.db.Collection(contactMessagesCollection)

	stats := &models.Stats{}

	var err error
	stats.TotalListings, err = listings.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count listings: %w", err)
	}

	stats.ActiveListings, err = listings.CountDocuments(ctx, bson.M{"status": models.StatusActive})
	if err != nil {
		return nil, fmt.Errorf("failed to count active listings: %w", err)
	}

	stats.TotalMessages, err = messages.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to count contact messages: %w", err)
	}

	stats.TotalChickens, err = s.sumActiveQuantity(ctx, models.AnimalTypeChicken)
	if err != nil {
		return nil, err
	}

	stats.TotalGoats, err = s.sumActiveQuantity(ctx, models.AnimalTypeGoat)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// sumActiveQuantity sums the quantity field over active listings of the
// given animal type. Returns zero when nothing matches.
func (s *statsService) sumActiveQuantity(ctx context.Context, animalType string) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"status": models.StatusActive, "animal_type": animalType}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$quantity"}}}},
	}

	cursor, err := s.db.Collection(listingsCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate %s quantity: %w", animalType, err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode %s quantity aggregation: %w", animalType, err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
