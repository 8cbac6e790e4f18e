package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoDocument struct {
	ID   string `bson:"_id"`
	JSON string `bson:"json"`
}

// MongoBackend keeps the document as a single record in one collection,
// replaced wholesale on every save. The record holds the serialized JSON
// blob, so the persisted shape is identical across backends.
type MongoBackend struct {
	collection *mongo.Collection
}

func NewMongoBackend(collection *mongo.Collection) *MongoBackend {
	return &MongoBackend{collection: collection}
}

func (b *MongoBackend) Load(ctx context.Context) ([]byte, error) {
	var doc mongoDocument
	err := b.collection.FindOne(ctx, bson.M{"_id": StorageKey}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	return []byte(doc.JSON), nil
}

func (b *MongoBackend) Save(ctx context.Context, data []byte) error {
	_, err := b.collection.ReplaceOne(ctx, bson.M{"_id": StorageKey},
		mongoDocument{ID: StorageKey, JSON: string(data)},
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}
