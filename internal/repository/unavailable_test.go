package repository

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"messageboard/internal/models"
)

func TestOpenMongoBadURIFallsBack(t *testing.T) {
	_, err := OpenMongo("not-a-mongo-uri", "messageboard")
	if err == nil {
		t.Fatalf("expected error for malformed uri")
	}

	repo := NewUnavailableRepo(err)
	ctx := context.Background()
	if _, err := repo.ListMessages(ctx); !errors.Is(err, errors.Unwrap(repo.err)) {
		t.Errorf("list: expected startup error, got %v", err)
	}
	if _, err := repo.FindMessages(ctx, primitive.NewObjectID()); err == nil {
		t.Errorf("find: expected error")
	}
	if err := repo.InsertMessage(ctx, &models.Message{}); err == nil {
		t.Errorf("insert: expected error")
	}
	if err := repo.Ping(ctx); err == nil {
		t.Errorf("ping: expected error")
	}
	if err := repo.Close(ctx); err != nil {
		t.Errorf("close: unexpected error %v", err)
	}
}
