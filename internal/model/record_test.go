package model

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimestampOrdersLexicographically(t *testing.T) {
	times := []time.Time{
		time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 5, 9, 30, 0, 0, time.UTC),
		time.Date(2025, 1, 5, 9, 30, 0, 999, time.UTC),
		time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC),
	}

	formatted := make([]string, len(times))
	for i, ts := range times {
		formatted[i] = Timestamp(ts)
		assert.Len(t, formatted[i], len("2006-01-02T15:04:05.000000000Z"))
	}

	byString := append([]string(nil), formatted...)
	sort.Strings(byString)

	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	for i, ts := range times {
		assert.Equal(t, Timestamp(ts), byString[i])
	}
}

func TestTimestampNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	local := time.Date(2025, 3, 15, 10, 0, 0, 0, loc)

	assert.Equal(t, "2025-03-15T04:30:00.000000000Z", Timestamp(local))
}

func TestRecordClone(t *testing.T) {
	orig := Record{"id": "a", "title": "Original"}
	copied := orig.Clone()
	copied["title"] = "Changed"

	assert.Equal(t, "Original", orig["title"])
	assert.Equal(t, "a", copied["id"])
}

func TestRecordString(t *testing.T) {
	rec := Record{"name": "Ada", "order": float64(3)}

	assert.Equal(t, "Ada", rec.String("name"))
	assert.Equal(t, "", rec.String("order"))
	assert.Equal(t, "", rec.String("missing"))
}

func TestRecordHas(t *testing.T) {
	rec := Record{"image": nil}

	assert.True(t, rec.Has("image"))
	assert.False(t, rec.Has("title"))
}
