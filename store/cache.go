package store

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"record-api/logger"
)

// CachedCollection puts a Redis read-through cache in front of FindOne.
// Documents are cached as canonical Extended JSON so BSON types survive the
// round trip. Writes evict the key; cache failures fall back to the store.
type CachedCollection struct {
	Collection
	rdb *redis.Client
	ttl time.Duration
	log logger.Logger
}

func NewCachedCollection(inner Collection, rdb *redis.Client, ttl time.Duration, log logger.Logger) *CachedCollection {
	return &CachedCollection{Collection: inner, rdb: rdb, ttl: ttl, log: log.With("collection", inner.Name())}
}

func (c *CachedCollection) key(id primitive.ObjectID) string {
	return c.Name() + ":" + id.Hex()
}

func (c *CachedCollection) FindOne(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	val, err := c.rdb.Get(ctx, c.key(id)).Bytes()
	switch {
	case err == nil:
		var doc bson.M
		if err := bson.UnmarshalExtJSON(val, true, &doc); err == nil {
			return doc, nil
		}
		c.log.WarnContext(ctx, "discarding unreadable cache entry", "id", id.Hex())
	case !errors.Is(err, redis.Nil):
		c.log.WarnContext(ctx, "cache get failed", "id", id.Hex(), "error", err)
	}

	doc, err := c.Collection.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, id, doc)
	return doc, nil
}

func (c *CachedCollection) FindOneAndUpdate(ctx context.Context, id primitive.ObjectID, set bson.M) (bson.M, error) {
	doc, err := c.Collection.FindOneAndUpdate(ctx, id, set)
	c.evict(ctx, id)
	return doc, err
}

func (c *CachedCollection) DeleteOne(ctx context.Context, id primitive.ObjectID) (int64, error) {
	n, err := c.Collection.DeleteOne(ctx, id)
	c.evict(ctx, id)
	return n, err
}

func (c *CachedCollection) set(ctx context.Context, id primitive.ObjectID, doc bson.M) {
	data, err := bson.MarshalExtJSON(doc, true, false)
	if err != nil {
		c.log.WarnContext(ctx, "cache encode failed", "id", id.Hex(), "error", err)
		return
	}
	if err := c.rdb.Set(ctx, c.key(id), data, c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "cache set failed", "id", id.Hex(), "error", err)
	}
}

func (c *CachedCollection) evict(ctx context.Context, id primitive.ObjectID) {
	if err := c.rdb.Del(ctx, c.key(id)).Err(); err != nil {
		c.log.WarnContext(ctx, "cache evict failed", "id", id.Hex(), "error", err)
	}
}
