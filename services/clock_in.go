package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"record-api/logger"
	"record-api/models"
	"record-api/store"
)

// ClockInService owns the lifecycle of attendance records.
type ClockInService struct {
	coll store.Collection
	log  logger.Logger
	now  func() time.Time
}

func NewClockInService(coll store.Collection, log logger.Logger) *ClockInService {
	return &ClockInService{coll: coll, log: log.With("resource", "clock_in"), now: time.Now}
}

// WithClock replaces the clock used to stamp insert_datetime.
func (s *ClockInService) WithClock(now func() time.Time) *ClockInService {
	s.now = now
	return s
}

func (s *ClockInService) Create(ctx context.Context, in models.ClockInCreate) (*models.ClockIn, error) {
	// BSON datetimes hold milliseconds; truncate so the response matches the store.
	stamp := s.now().UTC().Truncate(time.Millisecond)
	oid, err := s.coll.InsertOne(ctx, bson.M{
		"email":           in.Email,
		"location":        in.Location,
		"insert_datetime": primitive.NewDateTimeFromTime(stamp),
	})
	if err != nil {
		return nil, storageErr("insert clock-in record", err)
	}
	return &models.ClockIn{
		ID:             oid.Hex(),
		Email:          in.Email,
		Location:       in.Location,
		InsertDatetime: stamp,
	}, nil
}

func (s *ClockInService) Get(ctx context.Context, id string) (*models.ClockIn, error) {
	oid, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}
	doc, err := s.coll.FindOne(ctx, oid)
	if errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("clock-in record %s %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, storageErr("find clock-in record", err)
	}
	rec, err := decodeClockIn(doc)
	if err != nil {
		return nil, fmt.Errorf("clock-in record %s: %w", id, err)
	}
	return &rec, nil
}

// Filter returns every record matching all given fields. Documents that
// cannot be decoded are logged and left out.
func (s *ClockInService) Filter(ctx context.Context, f models.ClockInFilter) ([]models.ClockIn, error) {
	docs, err := s.coll.Find(ctx, clockInQuery(f))
	if err != nil {
		return nil, storageErr("filter clock-in records", err)
	}
	recs := make([]models.ClockIn, 0, len(docs))
	for _, doc := range docs {
		rec, err := decodeClockIn(doc)
		if err != nil {
			s.log.WarnContext(ctx, "skipping stored clock-in record", "op", "filter", "id", doc["_id"], "error", err)
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// clockInQuery builds the Find filter. after_datetime is exclusive, unlike the
// inclusive date bounds on items.
func clockInQuery(f models.ClockInFilter) bson.M {
	q := bson.M{}
	if f.Email != nil {
		q["email"] = *f.Email
	}
	if f.Location != nil {
		q["location"] = *f.Location
	}
	if f.AfterDatetime != nil {
		q["insert_datetime"] = bson.M{"$gt": primitive.NewDateTimeFromTime(*f.AfterDatetime)}
	}
	return q
}

// Update sets location when given and returns the record as stored afterwards.
func (s *ClockInService) Update(ctx context.Context, id string, u models.ClockInUpdate) (*models.ClockIn, error) {
	if u.IsEmpty() {
		return s.Get(ctx, id)
	}
	oid, err := store.ParseID(id)
	if err != nil {
		return nil, err
	}
	doc, err := s.coll.FindOneAndUpdate(ctx, oid, bson.M{"location": *u.Location})
	if errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("clock-in record %s %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, storageErr("update clock-in record", err)
	}
	rec, err := decodeClockIn(doc)
	if err != nil {
		return nil, fmt.Errorf("clock-in record %s: %w", id, err)
	}
	return &rec, nil
}

func (s *ClockInService) Delete(ctx context.Context, id string) error {
	oid, err := store.ParseID(id)
	if err != nil {
		return err
	}
	n, err := s.coll.DeleteOne(ctx, oid)
	if err != nil {
		return storageErr("delete clock-in record", err)
	}
	if n == 0 {
		return fmt.Errorf("clock-in record %s %w", id, models.ErrNotFound)
	}
	return nil
}
