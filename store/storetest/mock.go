// Package storetest provides a testify mock of store.Collection.
package storetest

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockCollection struct {
	mock.Mock
	CollectionName string
}

func (m *MockCollection) Name() string {
	if m.CollectionName == "" {
		return "mock"
	}
	return m.CollectionName
}

func (m *MockCollection) InsertOne(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	args := m.Called(ctx, doc)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockCollection) FindOne(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	args := m.Called(ctx, id)
	doc, _ := args.Get(0).(bson.M)
	return doc, args.Error(1)
}

func (m *MockCollection) Find(ctx context.Context, filter bson.M) ([]bson.M, error) {
	args := m.Called(ctx, filter)
	docs, _ := args.Get(0).([]bson.M)
	return docs, args.Error(1)
}

func (m *MockCollection) FindOneAndUpdate(ctx context.Context, id primitive.ObjectID, set bson.M) (bson.M, error) {
	args := m.Called(ctx, id, set)
	doc, _ := args.Get(0).(bson.M)
	return doc, args.Error(1)
}

func (m *MockCollection) DeleteOne(ctx context.Context, id primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
