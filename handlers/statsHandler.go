package handlers

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/habitflow/HabitFlowBackend/db"
	"github.com/habitflow/HabitFlowBackend/game"
	"github.com/habitflow/HabitFlowBackend/middleware"
	"github.com/habitflow/HabitFlowBackend/models"
	"github.com/habitflow/HabitFlowBackend/services"
)

// GetUserStats returns the per-habit stats block computed by the
// concurrent stats service.
func GetUserStats(c *gin.Context) {
	currentUser, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := services.CalculateUserHabitStatsConcurrently(currentUser.ID, logger)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

type dayActivity struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

// completionsPerDay counts a user's completions grouped by day since the
// given date.
func completionsPerDay(userID uint, since string) (map[string]int, error) {
	type row struct {
		Date  string
		Count int
	}
	var rows []row
	err := db.DB.Model(&models.HabitCompletion{}).
		Select("habit_completions.date AS date, COUNT(*) AS count").
		Joins("JOIN habits ON habits.id = habit_completions.habit_id").
		Where("habits.user_id = ? AND habit_completions.date >= ?", userID, since).
		Group("habit_completions.date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Date] = r.Count
	}
	return counts, nil
}

func userHabitCount(userID uint) (int, error) {
	var total int64
	err := db.DB.Model(&models.Habit{}).Where("user_id = ?", userID).Count(&total).Error
	return int(total), err
}

// GetWeeklyStats returns completed/total per day for the last 7 days,
// oldest first.
func GetWeeklyStats(c *gin.Context) {
	currentUser, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	now := time.Now()
	since := now.AddDate(0, 0, -6).Format(game.DateLayout)

	counts, err := completionsPerDay(currentUser.ID, since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
		return
	}
	total, err := userHabitCount(currentUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load habits"})
		return
	}

	days := make([]dayActivity, 0, 7)
	for i := 6; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format(game.DateLayout)
		days = append(days, dayActivity{Date: date, Completed: counts[date], Total: total})
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}

type weekActivity struct {
	WeekStart string `json:"week_start"`
	Completed int    `json:"completed"`
	Possible  int    `json:"possible"`
}

// GetMonthlyStats returns 4 week buckets, oldest first. Possible counts
// assume every habit could run daily, matching the dashboard chart.
func GetMonthlyStats(c *gin.Context) {
	currentUser, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	now := time.Now()
	since := now.AddDate(0, 0, -27).Format(game.DateLayout)

	counts, err := completionsPerDay(currentUser.ID, since)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity"})
		return
	}
	total, err := userHabitCount(currentUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load habits"})
		return
	}

	weeks := make([]weekActivity, 0, 4)
	for w := 3; w >= 0; w-- {
		start := now.AddDate(0, 0, -(w*7 + 6))
		completed := 0
		for d := 0; d < 7; d++ {
			completed += counts[start.AddDate(0, 0, d).Format(game.DateLayout)]
		}
		weeks = append(weeks, weekActivity{
			WeekStart: start.Format(game.DateLayout),
			Completed: completed,
			Possible:  total * 7,
		})
	}

	c.JSON(http.StatusOK, gin.H{"weeks": weeks})
}

// GetHabitRate returns the habit's completion rate over the trailing
// window as a rounded percentage. days defaults to 30.
func GetHabitRate(c *gin.Context) {
	currentUser, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	habit, found := loadOwnedHabit(c, currentUser)
	if !found {
		return
	}

	days := 30
	if v := c.Query("days"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 365 {
			days = n
		}
	}

	since := time.Now().AddDate(0, 0, -(days - 1)).Format(game.DateLayout)
	var completed int64
	err := db.DB.Model(&models.HabitCompletion{}).
		Where("habit_id = ? AND date >= ?", habit.ID, since).
		Count(&completed).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load completions"})
		return
	}

	rate := int(math.Round(float64(completed) / float64(days) * 100))
	c.JSON(http.StatusOK, gin.H{
		"habit_id": habit.ID,
		"days":     days,
		"rate":     rate,
	})
}

// RecomputeStreaks refreshes the stored streak columns for every habit the
// user owns.
func RecomputeStreaks(c *gin.Context) {
	currentUser, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var ids []string
	if err := db.DB.Model(&models.Habit{}).
		Where("user_id = ?", currentUser.ID).
		Pluck("id", &ids).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load habits"})
		return
	}

	if err := services.RecomputeHabitStreaksConcurrently(ids, logger); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute streaks"})
		return
	}

	middleware.InvalidateUserCache(currentUser.ID)
	c.JSON(http.StatusOK, gin.H{"recomputed": len(ids)})
}
