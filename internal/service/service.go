package service

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"messageboard/internal/models"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks messageboard/internal/service MessageRepository,MessageLedger

// MessageRepository is the persistence contract for the messages collection.
// ListMessages returns documents in the store's natural order.
type MessageRepository interface {
	ListMessages(ctx context.Context) ([]models.Message, error)
	FindMessages(ctx context.Context, id primitive.ObjectID) ([]models.Message, error)
	InsertMessage(ctx context.Context, msg *models.Message) error
}

// MessageLedger records saved message ids outside the main store.
type MessageLedger interface {
	StoreSavedMessage(ctx context.Context, id string, createdAt time.Time) error
}

type MessageService struct {
	repo   MessageRepository
	ledger MessageLedger
	now    func() time.Time
}

// NewMessageService wires a repository and an optional ledger (nil disables it).
func NewMessageService(repo MessageRepository, ledger MessageLedger) *MessageService {
	return &MessageService{repo: repo, ledger: ledger, now: time.Now}
}

func (s *MessageService) ListMessages(ctx context.Context) ([]models.Message, error) {
	messages, err := s.repo.ListMessages(ctx)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

// GetMessage looks a message up by its hex id. A malformed or unknown id
// yields an empty result, not an error.
func (s *MessageService) GetMessage(ctx context.Context, rawID string) ([]models.Message, error) {
	id, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return []models.Message{}, nil
	}
	messages, err := s.repo.FindMessages(ctx, id)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

func (s *MessageService) SaveMessage(ctx context.Context, req models.SaveMessageRequest) (models.Message, error) {
	// BSON dates carry millisecond precision.
	now := s.now().UTC().Truncate(time.Millisecond)
	msg := models.Message{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Text:      req.Message,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.InsertMessage(ctx, &msg); err != nil {
		return models.Message{}, err
	}
	if s.ledger != nil {
		if err := s.ledger.StoreSavedMessage(ctx, msg.ID.Hex(), msg.CreatedAt); err != nil {
			log.Printf("Error recording saved message %s in ledger: %v", msg.ID.Hex(), err)
		}
	}
	return msg, nil
}
