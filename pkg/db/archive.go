package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"catalog-scrape/pkg/domain"
)

// ArchiveClient stores raw scraped course records in MongoDB, keyed by
// course code. The archive is an optional side channel: the relational
// store holds the normalized data, the archive keeps the untyped scrape
// output so a re-run of the normalize stage never needs a re-scrape.
type ArchiveClient struct {
	mongoClient *mongo.Client
	collection  *mongo.Collection
}

// NewArchiveClient creates a new archive client for the given
// connection string, database and collection.
func NewArchiveClient(connectionString, databaseName, collectionName string) (*ArchiveClient, error) {
	clientOptions := options.Client().ApplyURI(connectionString)
	mongoClient, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	return &ArchiveClient{
		mongoClient: mongoClient,
		collection:  mongoClient.Database(databaseName).Collection(collectionName),
	}, nil
}

// Connect verifies connectivity to the archive.
func (c *ArchiveClient) Connect(ctx context.Context) error {
	if c.mongoClient == nil {
		return fmt.Errorf("mongo client not initialized")
	}
	return c.mongoClient.Ping(ctx, nil)
}

// Close closes the archive connection.
func (c *ArchiveClient) Close(ctx context.Context) error {
	if c.mongoClient == nil {
		return nil
	}
	return c.mongoClient.Disconnect(ctx)
}

// SaveCourse upserts one raw course record, keyed by its code.
func (c *ArchiveClient) SaveCourse(ctx context.Context, course domain.Course) error {
	if c.collection == nil {
		return fmt.Errorf("collection not initialized")
	}

	filter := bson.M{"code": course.Code}
	update := bson.M{"$set": bson.M{
		"code":          course.Code,
		"name":          course.Name,
		"description":   course.Description,
		"credits":       course.Credits,
		"prerequisites": course.Prerequisites,
		"corequisites":  course.Corequisites,
		"offered":       course.Offered,
	}}
	opts := options.Update().SetUpsert(true)

	_, err := c.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// SaveCourses upserts a batch of raw course records one at a time,
// returning the first error encountered.
func (c *ArchiveClient) SaveCourses(ctx context.Context, records []domain.Course) error {
	for _, course := range records {
		if err := c.SaveCourse(ctx, course); err != nil {
			return fmt.Errorf("archive %s: %w", course.Code, err)
		}
	}
	return nil
}
