package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record-api/models"
)

func TestDateOf_UsesUTCCalendarDay(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2025-01-04 06:00 in Tokyo is still 2025-01-03 in UTC.
	d := models.DateOf(time.Date(2025, 1, 4, 6, 0, 0, 0, tokyo))
	assert.Equal(t, "2025-01-03", d.String())
}

func TestDate_JSONRoundTrip(t *testing.T) {
	in := models.NewDate(2025, time.January, 10)
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-10"`, string(b))

	var out models.Date
	require.NoError(t, json.Unmarshal(b, &out))
	assert.True(t, in.Equal(out))
	assert.Equal(t, in, out)
}

func TestDate_RejectsBadInput(t *testing.T) {
	for _, raw := range []string{`"2025-13-01"`, `"10/01/2025"`, `"2025-01-10T00:00:00Z"`, `20250110`, `""`} {
		var d models.Date
		assert.Error(t, json.Unmarshal([]byte(raw), &d), raw)
	}
}

func TestDate_StringsSortLikeDates(t *testing.T) {
	a := models.NewDate(2024, time.December, 31)
	b := models.NewDate(2025, time.January, 1)
	assert.True(t, a.Before(b.Time))
	assert.Less(t, a.String(), b.String())
}

func TestUpdate_IsEmpty(t *testing.T) {
	assert.True(t, models.ItemUpdate{}.IsEmpty())
	q := 1
	assert.False(t, models.ItemUpdate{Quantity: &q}.IsEmpty())

	assert.True(t, models.ClockInUpdate{}.IsEmpty())
	loc := "HQ"
	assert.False(t, models.ClockInUpdate{Location: &loc}.IsEmpty())
}
