package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"messageboard/internal/models"
	"messageboard/internal/service"
)

// UnavailableRepo stands in for a store whose client could not be built.
// Every call fails with the original error.
type UnavailableRepo struct {
	err error
}

func NewUnavailableRepo(err error) *UnavailableRepo {
	return &UnavailableRepo{err: fmt.Errorf("database unavailable: %w", err)}
}

var _ service.MessageRepository = (*UnavailableRepo)(nil)

func (r *UnavailableRepo) Ping(ctx context.Context) error { return r.err }

func (r *UnavailableRepo) Close(ctx context.Context) error { return nil }

func (r *UnavailableRepo) ListMessages(ctx context.Context) ([]models.Message, error) {
	return nil, r.err
}

func (r *UnavailableRepo) FindMessages(ctx context.Context, id primitive.ObjectID) ([]models.Message, error) {
	return nil, r.err
}

func (r *UnavailableRepo) InsertMessage(ctx context.Context, msg *models.Message) error {
	return r.err
}
