package services

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/habitflow/HabitFlowBackend/cache"
	"github.com/habitflow/HabitFlowBackend/db"
	"github.com/habitflow/HabitFlowBackend/game"
	"github.com/habitflow/HabitFlowBackend/models"
)

type HabitStats struct {
	HabitID          string  `json:"habit_id"`
	Name             string  `json:"name"`
	TotalCompletions int     `json:"total_completions"`
	CompletionRate   float64 `json:"completion_rate"`
	CurrentStreak    int     `json:"current_streak"`
	BestStreak       int     `json:"best_streak"`
	CompletedToday   bool    `json:"completed_today"`
	Error            error   `json:"-"`
}

type UserHabitStats struct {
	UserID         uint          `json:"user_id"`
	TotalHabits    int           `json:"total_habits"`
	CompletedToday int           `json:"completed_today"`
	MaxStreak      int           `json:"max_streak"`
	OverallRate    float64       `json:"overall_completion_rate"`
	HabitStats     []HabitStats  `json:"habit_stats"`
	ProcessingTime time.Duration `json:"processing_time_ms"`
}

// statsRateWindow is the trailing window used for completion rates.
const statsRateWindow = 30

// CalculateUserHabitStatsConcurrently computes per-habit stats with one
// goroutine per habit. Each habit needs its own completions query and the
// computations are independent, so they fan out and meet on a channel.
func CalculateUserHabitStatsConcurrently(userID uint, logger *zap.Logger) (*UserHabitStats, error) {
	startTime := time.Now()

	cacheKey := fmt.Sprintf("user_stats:%d", userID)
	var cachedStats UserHabitStats
	if err := cache.Get(cacheKey, &cachedStats); err == nil {
		logger.Info("cache_hit", zap.String("key", cacheKey))
		return &cachedStats, nil
	}

	var habits []models.Habit
	if err := db.DB.Where("user_id = ?", userID).Find(&habits).Error; err != nil {
		return nil, err
	}

	if len(habits) == 0 {
		return &UserHabitStats{UserID: userID}, nil
	}

	statsChan := make(chan HabitStats, len(habits))
	var wg sync.WaitGroup

	for _, habit := range habits {
		wg.Add(1)
		go func(h models.Habit) {
			defer wg.Done()
			statsChan <- calculateSingleHabitStats(h)
		}(habit)
	}

	go func() {
		wg.Wait()
		close(statsChan)
	}()

	var habitStats []HabitStats
	var totalRate float64
	completedToday := 0
	maxStreak := 0

	for stat := range statsChan {
		if stat.Error != nil {
			logger.Warn("habit_stats_error",
				zap.String("habit_id", stat.HabitID),
				zap.Error(stat.Error),
			)
			continue
		}
		habitStats = append(habitStats, stat)
		totalRate += stat.CompletionRate
		if stat.CompletedToday {
			completedToday++
		}
		if stat.CurrentStreak > maxStreak {
			maxStreak = stat.CurrentStreak
		}
	}

	overallRate := 0.0
	if len(habitStats) > 0 {
		overallRate = totalRate / float64(len(habitStats))
	}

	result := &UserHabitStats{
		UserID:         userID,
		TotalHabits:    len(habits),
		CompletedToday: completedToday,
		MaxStreak:      maxStreak,
		OverallRate:    overallRate,
		HabitStats:     habitStats,
		ProcessingTime: time.Since(startTime),
	}

	cache.Set(cacheKey, result, 5*time.Minute)

	logger.Info("stats_calculated_concurrently",
		zap.Uint("user_id", userID),
		zap.Int("habits_count", len(habits)),
		zap.Duration("duration", result.ProcessingTime),
	)

	return result, nil
}

func calculateSingleHabitStats(h models.Habit) HabitStats {
	stats := HabitStats{HabitID: h.ID, Name: h.Name}

	var completions []models.HabitCompletion
	if err := db.DB.Where("habit_id = ?", h.ID).
		Order("date DESC").
		Find(&completions).Error; err != nil {
		stats.Error = err
		return stats
	}

	now := time.Now()
	today := now.Format(game.DateLayout)

	dates := make([]string, 0, len(completions))
	for _, c := range completions {
		dates = append(dates, c.Date)
		if c.Date == today {
			stats.CompletedToday = true
		}
	}

	stats.TotalCompletions = len(completions)
	stats.CurrentStreak = game.StreakFromDates(dates, now)
	stats.BestStreak = longestStreak(completions)
	if stats.CurrentStreak > stats.BestStreak {
		stats.BestStreak = stats.CurrentStreak
	}

	recent := 0
	cutoff := now.AddDate(0, 0, -statsRateWindow).Format(game.DateLayout)
	for _, c := range completions {
		if c.Date > cutoff {
			recent++
		}
	}
	stats.CompletionRate = float64(recent) / float64(statsRateWindow) * 100

	return stats
}

// longestStreak finds the longest run of consecutive days. Completions
// must be ordered by date descending.
func longestStreak(completions []models.HabitCompletion) int {
	longest := 0
	run := 0
	var prev time.Time

	for i, c := range completions {
		day, err := time.Parse(game.DateLayout, c.Date)
		if err != nil {
			continue
		}
		if i == 0 || prev.Sub(day) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = day
	}
	return longest
}

// DailySnapshot gathers the counters the reward calculation needs for a
// user on a given day.
func DailySnapshot(userID uint, today string) (completedToday, totalHabits, maxStreak int, err error) {
	var habits []models.Habit
	if err = db.DB.Where("user_id = ?", userID).Find(&habits).Error; err != nil {
		return 0, 0, 0, err
	}
	totalHabits = len(habits)

	for _, h := range habits {
		var count int64
		if err = db.DB.Model(&models.HabitCompletion{}).
			Where("habit_id = ? AND date = ?", h.ID, today).
			Count(&count).Error; err != nil {
			return 0, 0, 0, err
		}
		if count > 0 {
			completedToday++
		}
		if h.Streak > maxStreak {
			maxStreak = h.Streak
		}
	}
	return completedToday, totalHabits, maxStreak, nil
}

// RecomputeHabitStreaksConcurrently refreshes the stored streak columns
// for a set of habits, one goroutine per habit. Used after bulk imports
// and on the nightly refresh.
func RecomputeHabitStreaksConcurrently(habitIDs []string, logger *zap.Logger) error {
	if len(habitIDs) == 0 {
		return nil
	}

	errChan := make(chan error, len(habitIDs))
	var wg sync.WaitGroup

	for _, id := range habitIDs {
		wg.Add(1)
		go func(habitID string) {
			defer wg.Done()

			var habit models.Habit
			if err := db.DB.First(&habit, "id = ?", habitID).Error; err != nil {
				errChan <- fmt.Errorf("failed to load habit %s: %w", habitID, err)
				return
			}
			stats := calculateSingleHabitStats(habit)
			if stats.Error != nil {
				errChan <- fmt.Errorf("failed to compute habit %s: %w", habitID, stats.Error)
				return
			}

			if err := db.DB.Model(&models.Habit{}).
				Where("id = ?", habitID).
				Updates(map[string]interface{}{
					"streak":      stats.CurrentStreak,
					"best_streak": stats.BestStreak,
				}).Error; err != nil {
				errChan <- fmt.Errorf("failed to update habit %s: %w", habitID, err)
				return
			}

			cache.Delete(fmt.Sprintf("habit:%s", habitID))
			errChan <- nil
		}(id)
	}

	go func() {
		wg.Wait()
		close(errChan)
	}()

	for err := range errChan {
		if err != nil {
			logger.Error("streak_recompute_error", zap.Error(err))
			return err
		}
	}

	logger.Info("streak_recompute_completed", zap.Int("count", len(habitIDs)))
	return nil
}
