package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mamadbah2/finca/internal/domain/models"
)

const digestCollection = "dashboard_digests"

// Repository archives dashboard digests.
type Repository interface {
	SaveDigest(ctx context.Context, digest models.DashboardDigest) error
	LatestDigest(ctx context.Context) (*models.DashboardDigest, error)
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: digestCollection,
	}, nil
}

// Name identifies the sink in logs.
func (r *MongoDBRepository) Name() string { return "mongodb" }

// PublishDigest archives digest; it lets the repository act as a digest sink.
func (r *MongoDBRepository) PublishDigest(ctx context.Context, digest models.DashboardDigest) error {
	return r.SaveDigest(ctx, digest)
}

// SaveDigest stores one digest, replacing an earlier digest of the same day.
func (r *MongoDBRepository) SaveDigest(ctx context.Context, digest models.DashboardDigest) error {
	collection := r.client.Database(r.dbName).Collection(r.collName)
	filter := bson.M{"date": digest.Date}
	_, err := collection.ReplaceOne(ctx, filter, digest, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save dashboard digest: %w", err)
	}
	return nil
}

// LatestDigest returns the most recent archived digest, or nil when none exists.
func (r *MongoDBRepository) LatestDigest(ctx context.Context) (*models.DashboardDigest, error) {
	collection := r.client.Database(r.dbName).Collection(r.collName)
	opts := options.FindOne().SetSort(bson.D{{Key: "date", Value: -1}})

	var digest models.DashboardDigest
	err := collection.FindOne(ctx, bson.D{}, opts).Decode(&digest)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load latest digest: %w", err)
	}
	return &digest, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
