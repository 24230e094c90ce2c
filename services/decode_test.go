package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"record-api/models"
)

func TestDecodeItem_NumericAndDateVariants(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := bson.M{
		"_id":         oid,
		"name":        "Milk",
		"email":       "a@b.com",
		"item_name":   "Milk 1L",
		"quantity":    int64(7),
		"expiry_date": primitive.NewDateTimeFromTime(time.Date(2025, 1, 10, 23, 0, 0, 0, time.UTC)),
		"insert_date": "2025-01-03",
	}
	it, err := decodeItem(doc)
	require.NoError(t, err)
	assert.Equal(t, 7, it.Quantity)
	assert.Equal(t, "2025-01-10", it.ExpiryDate.String())

	doc["quantity"] = float64(8)
	it, err = decodeItem(doc)
	require.NoError(t, err)
	assert.Equal(t, 8, it.Quantity)

	doc["quantity"] = 8.5
	_, err = decodeItem(doc)
	assert.ErrorIs(t, err, models.ErrDecode)
}

func TestDecodeItem_Rejects(t *testing.T) {
	base := func() bson.M {
		return bson.M{
			"_id": primitive.NewObjectID(), "name": "Milk", "email": "a@b.com", "item_name": "Milk 1L",
			"quantity": int32(1), "expiry_date": "2025-01-10", "insert_date": "2025-01-03",
		}
	}
	mutations := map[string]func(bson.M){
		"missing id":       func(d bson.M) { delete(d, "_id") },
		"string id":        func(d bson.M) { d["_id"] = "abc" },
		"missing name":     func(d bson.M) { delete(d, "name") },
		"numeric email":    func(d bson.M) { d["email"] = 3 },
		"string quantity":  func(d bson.M) { d["quantity"] = "3" },
		"bad expiry":       func(d bson.M) { d["expiry_date"] = "soon" },
		"missing inserted": func(d bson.M) { delete(d, "insert_date") },
	}
	for name, mutate := range mutations {
		doc := base()
		mutate(doc)
		_, err := decodeItem(doc)
		assert.ErrorIs(t, err, models.ErrDecode, name)
	}
}

func TestDecodeClockIn(t *testing.T) {
	at := time.Date(2025, 1, 3, 9, 30, 0, 0, time.UTC)
	doc := bson.M{
		"_id":             primitive.NewObjectID(),
		"email":           "a@b.com",
		"location":        "HQ",
		"insert_datetime": primitive.NewDateTimeFromTime(at),
	}
	rec, err := decodeClockIn(doc)
	require.NoError(t, err)
	assert.True(t, rec.InsertDatetime.Equal(at))

	delete(doc, "insert_datetime")
	_, err = decodeClockIn(doc)
	assert.ErrorIs(t, err, models.ErrDecode)
}

func TestQueries(t *testing.T) {
	assert.Equal(t, bson.M{}, itemQuery(models.ItemFilter{}))
	assert.Equal(t, bson.M{}, clockInQuery(models.ClockInFilter{}))

	d := models.NewDate(2025, 1, 3)
	assert.Equal(t, bson.M{"insert_date": bson.M{"$gte": "2025-01-03"}}, itemQuery(models.ItemFilter{InsertDate: &d}))

	at := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t,
		bson.M{"insert_datetime": bson.M{"$gt": primitive.NewDateTimeFromTime(at)}},
		clockInQuery(models.ClockInFilter{AfterDatetime: &at}))
}
