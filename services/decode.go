package services

import (
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"record-api/models"
)

// decodeItem turns a stored Items document into a typed record.
func decodeItem(doc bson.M) (models.Item, error) {
	var (
		it  models.Item
		err error
	)
	if it.ID, err = idField(doc); err != nil {
		return it, err
	}
	if it.Name, err = stringField(doc, "name"); err != nil {
		return it, err
	}
	if it.Email, err = stringField(doc, "email"); err != nil {
		return it, err
	}
	if it.ItemName, err = stringField(doc, "item_name"); err != nil {
		return it, err
	}
	if it.Quantity, err = intField(doc, "quantity"); err != nil {
		return it, err
	}
	if it.ExpiryDate, err = dateField(doc, "expiry_date"); err != nil {
		return it, err
	}
	if it.InsertDate, err = dateField(doc, "insert_date"); err != nil {
		return it, err
	}
	return it, nil
}

// decodeClockIn turns a stored clock_in_records document into a typed record.
func decodeClockIn(doc bson.M) (models.ClockIn, error) {
	var (
		rec models.ClockIn
		err error
	)
	if rec.ID, err = idField(doc); err != nil {
		return rec, err
	}
	if rec.Email, err = stringField(doc, "email"); err != nil {
		return rec, err
	}
	if rec.Location, err = stringField(doc, "location"); err != nil {
		return rec, err
	}
	if rec.InsertDatetime, err = timeField(doc, "insert_datetime"); err != nil {
		return rec, err
	}
	return rec, nil
}

func idField(doc bson.M) (string, error) {
	switch v := doc["_id"].(type) {
	case primitive.ObjectID:
		return v.Hex(), nil
	case nil:
		return "", fmt.Errorf("%w: missing _id", models.ErrDecode)
	default:
		return "", fmt.Errorf("%w: _id has type %T", models.ErrDecode, v)
	}
}

func stringField(doc bson.M, key string) (string, error) {
	switch v := doc[key].(type) {
	case string:
		return v, nil
	case nil:
		return "", fmt.Errorf("%w: missing %s", models.ErrDecode, key)
	default:
		return "", fmt.Errorf("%w: %s has type %T", models.ErrDecode, key, v)
	}
}

func intField(doc bson.M, key string) (int, error) {
	switch v := doc[key].(type) {
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case int:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %s is not an integer", models.ErrDecode, key)
		}
		return int(v), nil
	case nil:
		return 0, fmt.Errorf("%w: missing %s", models.ErrDecode, key)
	default:
		return 0, fmt.Errorf("%w: %s has type %T", models.ErrDecode, key, v)
	}
}

// dateField reads an ISO date string. Native datetimes written by other
// clients are accepted and truncated to their UTC date.
func dateField(doc bson.M, key string) (models.Date, error) {
	switch v := doc[key].(type) {
	case string:
		d, err := models.ParseDate(v)
		if err != nil {
			return models.Date{}, fmt.Errorf("%w: %s: %v", models.ErrDecode, key, err)
		}
		return d, nil
	case primitive.DateTime:
		return models.DateOf(v.Time()), nil
	case nil:
		return models.Date{}, fmt.Errorf("%w: missing %s", models.ErrDecode, key)
	default:
		return models.Date{}, fmt.Errorf("%w: %s has type %T", models.ErrDecode, key, v)
	}
}

func timeField(doc bson.M, key string) (time.Time, error) {
	switch v := doc[key].(type) {
	case primitive.DateTime:
		return v.Time().UTC(), nil
	case time.Time:
		return v.UTC(), nil
	case nil:
		return time.Time{}, fmt.Errorf("%w: missing %s", models.ErrDecode, key)
	default:
		return time.Time{}, fmt.Errorf("%w: %s has type %T", models.ErrDecode, key, v)
	}
}
