package game

import "time"

// DateLayout is the calendar-day format used everywhere in the app.
// Lexicographic order matches chronological order for this layout.
const DateLayout = "2006-01-02"

// streakScanLimit bounds the backward walk. Streaks longer than a year are
// undercounted here; the longer milestones are reached via best-streak
// history instead.
const streakScanLimit = 365

// Streak counts consecutive completed days walking backward from today.
// Today itself being incomplete does not break the streak; any other
// missing day does.
func Streak(completed map[string]bool, today time.Time) int {
	if len(completed) == 0 {
		return 0
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	streak := 0

	for i := 0; i < streakScanLimit; i++ {
		if completed[day.Format(DateLayout)] {
			streak++
			day = day.AddDate(0, 0, -1)
		} else if i == 0 {
			// Today not completed yet, check yesterday.
			day = day.AddDate(0, 0, -1)
		} else {
			break
		}
	}

	return streak
}

// StreakFromDates is a convenience wrapper over a date-string slice.
func StreakFromDates(dates []string, today time.Time) int {
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[d] = true
	}
	return Streak(set, today)
}
