package history

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(offset int) string {
	return DayKey(time.Now().AddDate(0, 0, offset))
}

func TestSeed(t *testing.T) {
	now := time.Now()
	entries := Seed(now, 31)

	assert.Len(t, entries, 31)
	assert.Equal(t, DayKey(now), entries[30].Date)
	assert.Equal(t, DayKey(now.AddDate(0, 0, -30)), entries[0].Date)
	for _, e := range entries {
		assert.True(t, e.Value.IsZero())
	}
	// strictly increasing date keys
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].Date, entries[i].Date)
	}
}

func TestUpsertDay_SameDayReplaces(t *testing.T) {
	entries := []Entry{
		{Date: day(-2), Value: decimal.NewFromInt(100)},
		{Date: day(-1), Value: decimal.NewFromInt(200)},
	}

	entries = UpsertDay(entries, day(0), decimal.NewFromInt(300))
	assert.Len(t, entries, 3)

	before := len(entries)
	entries = UpsertDay(entries, day(0), decimal.NewFromInt(2800))
	assert.Len(t, entries, before)
	assert.Equal(t, day(0), entries[len(entries)-1].Date)
	assert.True(t, entries[len(entries)-1].Value.Equal(decimal.NewFromInt(2800)))
}

func TestUpsertDay_WindowBound(t *testing.T) {
	var entries []Entry
	for i := 0; i < 60; i++ {
		entries = UpsertDay(entries, day(i-59), decimal.NewFromInt(int64(i)))
		assert.LessOrEqual(t, len(entries), Window)
	}
	assert.Len(t, entries, Window)
	// oldest entries were dropped from the head
	assert.Equal(t, day(-29), entries[0].Date)
	assert.Equal(t, day(0), entries[len(entries)-1].Date)
}

func TestUpsertDay_TrimsSyntheticSeed(t *testing.T) {
	entries := Seed(time.Now(), 31)

	entries = UpsertDay(entries, day(0), decimal.NewFromInt(2800))
	assert.Len(t, entries, Window)
	assert.Equal(t, day(0), entries[len(entries)-1].Date)
	assert.True(t, entries[len(entries)-1].Value.Equal(decimal.NewFromInt(2800)))
}

func TestUpsertDay_StaleDayIgnored(t *testing.T) {
	entries := []Entry{
		{Date: day(-1), Value: decimal.NewFromInt(100)},
		{Date: day(0), Value: decimal.NewFromInt(200)},
	}

	out := UpsertDay(entries, day(-3), decimal.NewFromInt(999))
	assert.Equal(t, entries, out)
}

func TestUpsertDay_KeepsDateOrder(t *testing.T) {
	var entries []Entry
	for _, offset := range []int{-5, -4, -4, -2, -1, 0, 0} {
		entries = UpsertDay(entries, day(offset), decimal.NewFromInt(int64(offset)))
	}
	for i := 1; i < len(entries); i++ {
		assert.Less(t, entries[i-1].Date, entries[i].Date)
	}
	assert.Len(t, entries, 5)
}

func TestDailyChange(t *testing.T) {
	entries := []Entry{
		{Date: day(-1), Value: decimal.NewFromInt(200)},
		{Date: day(0), Value: decimal.NewFromInt(250)},
	}

	change, pct, ok := DailyChange(entries)
	assert.True(t, ok)
	assert.True(t, change.Equal(decimal.NewFromInt(50)))
	assert.True(t, pct.Equal(decimal.NewFromInt(25)))

	_, _, ok = DailyChange(entries[:1])
	assert.False(t, ok)

	_, _, ok = DailyChange([]Entry{
		{Date: day(-1), Value: decimal.Zero},
		{Date: day(0), Value: decimal.NewFromInt(10)},
	})
	assert.False(t, ok)
}
