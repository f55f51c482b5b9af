// Package history maintains the bounded, date-indexed series of total
// portfolio value used for trend charts and day-over-day change.
package history

import (
	"time"

	"github.com/shopspring/decimal"
)

// Window is the maximum number of entries kept after an upsert.
const Window = 30

// DayFormat is the calendar-date key format for history entries.
const DayFormat = "2006-01-02"

// Entry is a single (calendar day, total value) point.
type Entry struct {
	Date  string          `json:"date"`
	Value decimal.Decimal `json:"value"`
}

// DayKey returns the calendar-date key for t in local time. Two calls on the
// same calendar day yield the same key regardless of time of day.
func DayKey(t time.Time) string {
	return t.Format(DayFormat)
}

// Seed builds a series of `days` consecutive zero-valued entries ending on
// `today`. A fresh portfolio starts with Seed(now, 31): today plus the
// preceding 30 days.
func Seed(today time.Time, days int) []Entry {
	entries := make([]Entry, 0, days)
	for i := days - 1; i >= 0; i-- {
		entries = append(entries, Entry{
			Date:  DayKey(today.AddDate(0, 0, -i)),
			Value: decimal.Zero,
		})
	}
	return entries
}

// UpsertDay records value under the given calendar-day key and returns the
// revised series. If the tail entry already carries that key its value is
// replaced in place; a later key appends a new entry and drops the oldest
// once the series exceeds Window. A key earlier than the tail is stale and
// leaves the series unchanged: out-of-order backfill is not supported.
//
// Keys compare lexically, which for DayFormat matches chronological order,
// so entries stay date-ordered without sorting.
func UpsertDay(entries []Entry, day string, value decimal.Decimal) []Entry {
	if n := len(entries); n > 0 {
		last := entries[n-1].Date
		switch {
		case day == last:
			entries[n-1].Value = value
		case day < last:
			return entries
		default:
			entries = append(entries, Entry{Date: day, Value: value})
		}
	} else {
		entries = append(entries, Entry{Date: day, Value: value})
	}
	// Sliding window: at most one entry was added, so at most one is dropped.
	// This also trims the 31-entry synthetic seed on its first upsert.
	if len(entries) > Window {
		entries = entries[1:]
	}
	return entries
}

// UpsertToday records value under today's local calendar date.
func UpsertToday(entries []Entry, value decimal.Decimal) []Entry {
	return UpsertDay(entries, DayKey(time.Now()), value)
}

// DailyChange returns the absolute and percent change between the last two
// entries. It reports ok=false when fewer than two entries exist or the
// previous value is zero.
func DailyChange(entries []Entry) (change decimal.Decimal, percent decimal.Decimal, ok bool) {
	n := len(entries)
	if n < 2 {
		return decimal.Zero, decimal.Zero, false
	}
	prev := entries[n-2].Value
	if prev.IsZero() {
		return decimal.Zero, decimal.Zero, false
	}
	change = entries[n-1].Value.Sub(prev)
	percent = change.Div(prev).Mul(decimal.NewFromInt(100))
	return change, percent, true
}
