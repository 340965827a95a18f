package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2026, 10, 19, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-10-18", DateKey(ts))
	assert.Equal(t, "2026-01-05", DateKey(time.Date(2026, 1, 5, 23, 0, 0, 0, time.UTC)))
}

func TestWordIndex(t *testing.T) {
	day := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	later := time.Date(2026, 10, 19, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, -1, WordIndex(day, "salt", 0))
	assert.Equal(t, 0, WordIndex(day, "salt", 1))
	a := WordIndex(day, "salt", 1000)
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 1000)
	assert.Equal(t, a, WordIndex(later, "salt", 1000))
}

func TestSecret(t *testing.T) {
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	list := []string{"CRANE", "SLATE", "IRATE"}
	assert.Equal(t, "", Secret(day, "salt", nil))
	assert.Equal(t, list[WordIndex(day, "salt", len(list))], Secret(day, "salt", list))
}
