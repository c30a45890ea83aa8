package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"messageboard/internal/models"
	"messageboard/internal/service"
)

const MessagesCollection = "messages"

type MongoRepo struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// OpenMongo builds a client for uri. The driver connects lazily, so an
// unreachable server is reported by Ping or by the first query, not here.
func OpenMongo(uri, dbName string) (*MongoRepo, error) {
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}
	repo := NewMongoRepo(client.Database(dbName).Collection(MessagesCollection))
	repo.client = client
	return repo, nil
}

func NewMongoRepo(coll *mongo.Collection) *MongoRepo {
	return &MongoRepo{coll: coll}
}

var _ service.MessageRepository = (*MongoRepo)(nil)

func (r *MongoRepo) Ping(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Ping(ctx, nil)
}

func (r *MongoRepo) Close(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Disconnect(ctx)
}

func (r *MongoRepo) ListMessages(ctx context.Context) ([]models.Message, error) {
	return r.find(ctx, bson.D{})
}

func (r *MongoRepo) FindMessages(ctx context.Context, id primitive.ObjectID) ([]models.Message, error) {
	return r.find(ctx, bson.D{{Key: "_id", Value: id}})
}

func (r *MongoRepo) InsertMessage(ctx context.Context, msg *models.Message) error {
	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

func (r *MongoRepo) find(ctx context.Context, filter bson.D) ([]models.Message, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	results := []models.Message{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}
	return results, nil
}
