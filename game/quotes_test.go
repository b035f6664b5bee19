package game

import (
	"testing"
	"time"
)

func TestQuoteForDayRotates(t *testing.T) {
	seen := make(map[Quote]bool)
	day := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < len(dailyQuotes); i++ {
		q := QuoteForDay(day.AddDate(0, 0, i))
		if q.Text == "" || q.Author == "" {
			t.Fatalf("empty quote on day %d", i)
		}
		seen[q] = true
	}
	if len(seen) != len(dailyQuotes) {
		t.Errorf("rotation covered %d of %d quotes", len(seen), len(dailyQuotes))
	}

	// Wraps around after the full cycle.
	if QuoteForDay(day) != QuoteForDay(day.AddDate(0, 0, len(dailyQuotes))) {
		t.Error("rotation does not wrap cleanly")
	}
}

// Day of year is 1-based: Jan 1 indexes entry 1, and the day whose number
// is a multiple of the list length wraps to entry 0.
func TestQuoteForDayIndexing(t *testing.T) {
	jan1 := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	if got := QuoteForDay(jan1); got != dailyQuotes[1] {
		t.Errorf("Jan 1 quote = %q, want %q", got.Text, dailyQuotes[1].Text)
	}

	jan30 := time.Date(2025, 1, 30, 12, 0, 0, 0, time.UTC)
	if got := QuoteForDay(jan30); got != dailyQuotes[0] {
		t.Errorf("Jan 30 quote = %q, want %q", got.Text, dailyQuotes[0].Text)
	}
}

func TestQuoteStableAcrossOneDay(t *testing.T) {
	morning := time.Date(2025, 6, 15, 0, 0, 1, 0, time.UTC)
	night := time.Date(2025, 6, 15, 23, 59, 59, 0, time.UTC)
	if QuoteForDay(morning) != QuoteForDay(night) {
		t.Error("quote changed during the day")
	}
}
