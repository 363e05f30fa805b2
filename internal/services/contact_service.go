package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/goldenharvestfarm/goldenharvest-backend/internal/db"
	"github.com/goldenharvestfarm/goldenharvest-backend/internal/models"
)

// IContactService defines the interface for contact message operations.
// Messages are append-only: create and list, nothing else.
type IContactService interface {
	CreateMessage(ctx context.Context, name, email, phone, subject, message string) (*models.ContactMessage, error)
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
}

const contactMessagesCollection = "contact_messages"

// contactService implements IContactService.
type contactService struct {
	db *mongo.Database
}

// NewContactService creates a new ContactService.
func NewContactService(db *mongo.Database) IContactService {
	return &contactService{db: db}
}

// CreateMessage persists a new contact message with a server-assigned ID and
// creation timestamp. Submission is pure persistence: no deduplication, no
// delivery.
func (s *contactService) CreateMessage(ctx context.Context, name, email, phone, subject, message string) (*models.ContactMessage, error) {
	collection := s.db.Collection(contactMessagesCollection)

	var doc *models.ContactMessage

	operation := func() error {
		doc = &models.ContactMessage{
			ID:        primitive.NewObjectID(),
			Name:      name,
			Email:     email,
			Phone:     phone,
			Subject:   subject,
			Message:   message,
			CreatedAt: time.Now().UTC(),
		}
		_, insertErr := collection.InsertOne(ctx, doc)
		return insertErr
	}

	if err := db.Try(operation); err != nil {
		return nil, fmt.Errorf("failed to insert contact message: %w", err)
	}

	return doc, nil
}

// ListMessages returns all contact messages, most recent first.
func (s *contactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	collection := s.db.Collection(contactMessagesCollection)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer cursor.Close(ctx)

	messages := []models.ContactMessage{}
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode contact messages: %w", err)
	}

	return messages, nil
}
