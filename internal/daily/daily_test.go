package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	d := time.Date(2024, 3, 9, 23, 30, 0, 0, loc)
	assert.Equal(t, "2024-03-10", DateKey(d))
}

func TestWordIndexDeterministic(t *testing.T) {
	d := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	i := WordIndex(d, DefaultSalt, 500)
	for k := 0; k < 5; k++ {
		assert.Equal(t, i, WordIndex(d, DefaultSalt, 500))
	}

	// Any time of the same UTC day maps to the same index.
	later := time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, i, WordIndex(later, DefaultSalt, 500))
}

func TestWordIndexRange(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := map[int]bool{}
	for day := 0; day < 365; day++ {
		i := WordIndex(start.AddDate(0, 0, day), DefaultSalt, 50)
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, 50)
		seen[i] = true
	}
	// A year of dates should cover a decent share of a 50-word list.
	assert.Greater(t, len(seen), 25)
}

func TestWordIndexSaltChangesSchedule(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	diff := 0
	for day := 0; day < 30; day++ {
		d := start.AddDate(0, 0, day)
		if WordIndex(d, "salt-a", 1000) != WordIndex(d, "salt-b", 1000) {
			diff++
		}
	}
	assert.Greater(t, diff, 20)
}

func TestWordIndexDegenerateLength(t *testing.T) {
	d := time.Now()
	assert.Equal(t, 0, WordIndex(d, DefaultSalt, 0))
	assert.Equal(t, 0, WordIndex(d, DefaultSalt, -3))
	assert.Equal(t, 0, WordIndex(d, DefaultSalt, 1))
}
