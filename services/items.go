package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"record-api/logger"
	"record-api/models"
	"record-api/store"
)

// ItemService owns the lifecycle of inventory items.
type ItemService struct {
	coll store.Collection
	log  logger.Logger
	now  func() time.Time
}

func NewItemService(coll store.Collection, log logger.Logger) *ItemService {
	return &ItemService{coll: coll, log: log.With("resource", "item"), now: time.Now}
}

// WithClock replaces the clock used to stamp insert_date.
func (s *ItemService) WithClock(now func() time.Time) *ItemService {
	s.now = now
	return s
}

func (s *ItemService) Create(ctx context.Context, in models.ItemCreate) (*models.Item, error) {
	item := models.Item{
		Name:       in.Name,
		Email:      in.Email,
		ItemName:   in.ItemName,
		Quantity:   *in.Quantity,
		ExpiryDate: *in.ExpiryDate,
		InsertDate: models.DateOf(s.now()),
	}
	oid, err := s.coll.InsertOne(ctx, bson.M{
		"name":        item.Name,
		"email":       item.Email,
		"item_name":   item.ItemName,
		"quantity":    item.Quantity,
		"expiry_date": item.ExpiryDate.String(),
		"insert_date": item.InsertDate.String(),
	})
	if err != nil {
		return nil, storageErr("insert item", err)
	}
	item.ID = oid.Hex()
	return &item, nil
}

func (s *ItemService) Get(ctx context.Context, id string) (*models.Item, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}
	doc, err := s.coll.FindOne(ctx, oid)
	if errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("item %s %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, storageErr("find item", err)
	}
	item, err := decodeItem(doc)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", id, err)
	}
	return &item, nil
}

// Filter returns every item matching all given bounds. Documents that cannot
// be decoded are logged and left out.
func (s *ItemService) Filter(ctx context.Context, f models.ItemFilter) ([]models.Item, error) {
	docs, err := s.coll.Find(ctx, itemQuery(f))
	if err != nil {
		return nil, storageErr("filter items", err)
	}
	items := make([]models.Item, 0, len(docs))
	for _, doc := range docs {
		item, err := decodeItem(doc)
		if err != nil {
			s.log.WarnContext(ctx, "skipping stored item", "op", "filter", "id", doc["_id"], "error", err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// itemQuery builds the Find filter. Date bounds compare ISO strings, which
// order the same way as the dates themselves.
func itemQuery(f models.ItemFilter) bson.M {
	q := bson.M{}
	if f.Email != nil {
		q["email"] = *f.Email
	}
	if f.ExpiryDate != nil {
		q["expiry_date"] = bson.M{"$gte": f.ExpiryDate.String()}
	}
	if f.InsertDate != nil {
		q["insert_date"] = bson.M{"$gte": f.InsertDate.String()}
	}
	if f.Quantity != nil {
		q["quantity"] = bson.M{"$gte": *f.Quantity}
	}
	return q
}

// Update applies the non-nil fields of u and returns the record as stored
// afterwards. An empty update is a plain read.
func (s *ItemService) Update(ctx context.Context, id string, u models.ItemUpdate) (*models.Item, error) {
	if u.IsEmpty() {
		return s.Get(ctx, id)
	}
	oid, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}
	set := bson.M{}
	if u.ItemName != nil {
		set["item_name"] = *u.ItemName
	}
	if u.Quantity != nil {
		set["quantity"] = *u.Quantity
	}
	if u.ExpiryDate != nil {
		set["expiry_date"] = u.ExpiryDate.String()
	}
	doc, err := s.coll.FindOneAndUpdate(ctx, oid, set)
	if errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("item %s %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, storageErr("update item", err)
	}
	item, err := decodeItem(doc)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", id, err)
	}
	return &item, nil
}

func (s *ItemService) Delete(ctx context.Context, id string) error {
	oid, err := store.ParseID(id)
	if err != nil {
		return err
	}
	n, err := s.coll.DeleteOne(ctx, oid)
	if err != nil {
		return storageErr("delete item", err)
	}
	if n == 0 {
		return fmt.Errorf("item %s %w", id, models.ErrNotFound)
	}
	return nil
}
