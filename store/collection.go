package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"record-api/models"
)

// Collection names in the shared database.
const (
	ItemsCollection   = "Items"
	ClockInCollection = "clock_in_records"
)

// Collection is the persistence gateway for one resource. Documents cross it as
// loosely typed bson.M values; decoding into records is the caller's job.
//
// FindOne and FindOneAndUpdate return models.ErrNotFound when no document
// matches. Every other error is a driver error.
type Collection interface {
	Name() string
	InsertOne(ctx context.Context, doc bson.M) (primitive.ObjectID, error)
	FindOne(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	Find(ctx context.Context, filter bson.M) ([]bson.M, error)
	FindOneAndUpdate(ctx context.Context, id primitive.ObjectID, set bson.M) (bson.M, error)
	DeleteOne(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// ParseID converts the hex form of an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", models.ErrInvalidID, id)
	}
	return oid, nil
}

// MongoCollection implements Collection on a *mongo.Collection.
type MongoCollection struct {
	coll *mongo.Collection
}

func NewMongoCollection(db *mongo.Database, name string) *MongoCollection {
	return &MongoCollection{coll: db.Collection(name)}
}

func (c *MongoCollection) Name() string {
	return c.coll.Name()
}

func (c *MongoCollection) InsertOne(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid, nil
}

func (c *MongoCollection) FindOne(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var doc bson.M
	err := c.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *MongoCollection) Find(ctx context.Context, filter bson.M) ([]bson.M, error) {
	cursor, err := c.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx) //nolint:errcheck

	docs := []bson.M{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *MongoCollection) FindOneAndUpdate(ctx context.Context, id primitive.ObjectID, set bson.M) (bson.M, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc bson.M
	err := c.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *MongoCollection) DeleteOne(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := c.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
