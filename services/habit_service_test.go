package services

import (
	"testing"

	"github.com/habitflow/HabitFlowBackend/models"
)

func comps(dates ...string) []models.HabitCompletion {
	out := make([]models.HabitCompletion, len(dates))
	for i, d := range dates {
		out[i] = models.HabitCompletion{HabitID: "h", Date: d}
	}
	return out
}

func TestLongestStreak(t *testing.T) {
	cases := []struct {
		name  string
		dates []string // descending, as queried
		want  int
	}{
		{"empty", nil, 0},
		{"single day", []string{"2025-03-05"}, 1},
		{"three consecutive", []string{"2025-03-05", "2025-03-04", "2025-03-03"}, 3},
		{"gap splits runs", []string{"2025-03-05", "2025-03-03", "2025-03-02", "2025-03-01"}, 3},
		{"longer run in the past", []string{"2025-03-05", "2025-02-10", "2025-02-09", "2025-02-08", "2025-02-07"}, 4},
		{"across month boundary", []string{"2025-03-01", "2025-02-28", "2025-02-27"}, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := longestStreak(comps(tc.dates...)); got != tc.want {
				t.Errorf("longestStreak = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestLongestStreakSkipsBadDates(t *testing.T) {
	completions := comps("2025-03-05", "not-a-date", "2025-03-04")
	if got := longestStreak(completions); got < 1 {
		t.Errorf("longestStreak = %d, want at least 1", got)
	}
}
