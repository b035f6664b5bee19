package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/habitflow/HabitFlowBackend/db"
	"github.com/habitflow/HabitFlowBackend/game"
	"github.com/habitflow/HabitFlowBackend/middleware"
	"github.com/habitflow/HabitFlowBackend/models"
	"github.com/habitflow/HabitFlowBackend/services"
	"github.com/habitflow/HabitFlowBackend/utils"
)

type habitInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Icon        string `json:"icon" validate:"max=16"`
	Color       string `json:"color"`
	Frequency   string `json:"frequency" validate:"omitempty,oneof=daily weekly custom"`
	TargetDays  string `json:"target_days"`
}

func validColor(color string) bool {
	for _, c := range models.HabitColors {
		if c == color {
			return true
		}
	}
	return false
}

func CreateHabit(c *gin.Context) {
	currentUser, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input habitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := middleware.ValidateStruct(input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Color != "" && !validColor(input.Color) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown color"})
		return
	}

	habit := models.Habit{
		ID:          uuid.NewString(),
		UserID:      currentUser.ID,
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Color:       input.Color,
		Frequency:   input.Frequency,
		TargetDays:  input.TargetDays,
	}
	if err := db.DB.Create(&habit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create habit"})
		return
	}

	middleware.InvalidateUserCache(currentUser.ID)
	c.JSON(http.StatusCreated, gin.H{"habit": habit})
}

func GetHabits(c *gin.Context) {
	currentUser, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var habits []models.Habit
	query := db.DB.Preload("Completions")

	if currentUser.Role != models.RoleAdmin {
		query = query.Where("user_id = ?", currentUser.ID)
	} else if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	if err := query.Find(&habits).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load habits"})
		return
	}

	c.JSON(http.StatusOK, habits)
}

func UpdateHabit(c *gin.Context) {
	currentUser, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	habit, found := loadOwnedHabit(c, currentUser)
	if !found {
		return
	}

	var input struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Icon        *string `json:"icon"`
		Color       *string `json:"color"`
		Frequency   *string `json:"frequency"`
		TargetDays  *string `json:"target_days"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if input.Name != nil {
		habit.Name = *input.Name
	}
	if input.Description != nil {
		habit.Description = *input.Description
	}
	if input.Icon != nil {
		habit.Icon = *input.Icon
	}
	if input.Color != nil {
		if !validColor(*input.Color) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown color"})
			return
		}
		habit.Color = *input.Color
	}
	if input.Frequency != nil {
		habit.Frequency = *input.Frequency
	}
	if input.TargetDays != nil {
		habit.TargetDays = *input.TargetDays
	}

	if err := db.DB.Save(&habit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update habit"})
		return
	}

	middleware.InvalidateUserCache(currentUser.ID)
	c.JSON(http.StatusOK, gin.H{"habit": habit})
}

func DeleteHabit(c *gin.Context) {
	currentUser, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	habit, found := loadOwnedHabit(c, currentUser)
	if !found {
		return
	}

	if err := db.DB.Select("Completions").Delete(&habit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete habit"})
		return
	}

	middleware.InvalidateUserCache(currentUser.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Habit deleted"})
}

// ToggleHabit flips today's completion for a habit. Completing grants XP,
// combo and achievements through the game engine exactly once per habit
// per day; un-completing reverts exactly what that completion granted.
func ToggleHabit(c *gin.Context) {
	currentUser, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	habit, found := loadOwnedHabit(c, currentUser)
	if !found {
		return
	}

	eng, err := engines.Engine(c.Request.Context(), currentUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load game state"})
		return
	}

	today := time.Now().Format(game.DateLayout)
	ledger := services.LoadLedger(currentUser.ID, today)

	var existing models.HabitCompletion
	err = db.DB.Where("habit_id = ? AND date = ?", habit.ID, today).First(&existing).Error

	var resp gin.H
	if err == nil {
		resp, err = untoggleCompletion(c, eng, &habit, existing, ledger, currentUser.ID, today)
	} else {
		resp, err = toggleCompletion(c, eng, &habit, ledger, currentUser.ID, today)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle habit"})
		return
	}

	if err := services.SaveLedger(currentUser.ID, ledger); err != nil {
		logger.Warn("ledger_save_failed",
			zap.Uint("user_id", currentUser.ID),
			zap.Error(err),
		)
	}
	middleware.InvalidateUserCache(currentUser.ID)

	c.JSON(http.StatusOK, resp)
}

func toggleCompletion(c *gin.Context, eng *game.Engine, habit *models.Habit, ledger *game.Ledger, userID uint, today string) (gin.H, error) {
	completion := models.HabitCompletion{HabitID: habit.ID, Date: today}
	if err := db.DB.Create(&completion).Error; err != nil {
		return nil, err
	}
	if err := refreshHabitStreak(habit); err != nil {
		return nil, err
	}

	resp := gin.H{
		"completed": true,
		"habit":     habit,
	}

	// A habit already rewarded today keeps its reward across re-toggles.
	if !ledger.WasRewarded(habit.ID) {
		completedToday, totalHabits, maxStreak, err := services.DailySnapshot(userID, today)
		if err != nil {
			return nil, err
		}

		result := eng.RecordCompletion(c.Request.Context(), completedToday, totalHabits, maxStreak)

		ids := make([]string, 0, len(result.Unlocked))
		notifications := make([]services.UnlockNotification, 0, len(result.Unlocked))
		for _, a := range result.Unlocked {
			ids = append(ids, a.ID)
			utils.AchievementsUnlocked.WithLabelValues(string(a.Type)).Inc()
			notifications = append(notifications, services.UnlockNotification{
				UserID:        userID,
				AchievementID: a.ID,
				Name:          a.Name,
				XPReward:      a.XPReward,
			})
		}
		ledger.Mark(habit.ID, result.XPGained, ids)

		utils.CompletionsRecorded.Inc()
		utils.XPGranted.Add(float64(result.XPGained))
		if result.Persist == game.PersistFailed {
			utils.PersistFailures.Inc()
			resp["sync_pending"] = true
		}
		go services.DispatchUnlockNotifications(notifications, 3, logger)

		resp["xp_gained"] = result.XPGained
		resp["combo"] = result.Combo
		resp["unlocked"] = result.Unlocked
		resp["leveled_up"] = result.LeveledUp
		resp["level"] = result.NewLevel
	}

	return resp, nil
}

func untoggleCompletion(c *gin.Context, eng *game.Engine, habit *models.Habit, completion models.HabitCompletion, ledger *game.Ledger, userID uint, today string) (gin.H, error) {
	if err := db.DB.Delete(&completion).Error; err != nil {
		return nil, err
	}
	if err := refreshHabitStreak(habit); err != nil {
		return nil, err
	}

	resp := gin.H{
		"completed": false,
		"habit":     habit,
	}

	if ledger.WasRewarded(habit.ID) {
		xp := ledger.RewardedXP(habit.ID)
		achievements := ledger.RewardedAchievements(habit.ID)
		status := eng.RevertCompletion(c.Request.Context(), xp, achievements)
		ledger.Unmark(habit.ID)

		utils.CompletionsReverted.Inc()
		if status == game.PersistFailed {
			utils.PersistFailures.Inc()
			resp["sync_pending"] = true
		}

		resp["xp_removed"] = xp
		resp["achievements_revoked"] = achievements
	}

	return resp, nil
}

// refreshHabitStreak recomputes the stored streak from completion rows and
// ratchets the best streak.
func refreshHabitStreak(habit *models.Habit) error {
	var completions []models.HabitCompletion
	if err := db.DB.Where("habit_id = ?", habit.ID).Find(&completions).Error; err != nil {
		return err
	}
	dates := make([]string, 0, len(completions))
	for _, comp := range completions {
		dates = append(dates, comp.Date)
	}

	habit.Streak = game.StreakFromDates(dates, time.Now())
	if habit.Streak > habit.BestStreak {
		habit.BestStreak = habit.Streak
	}
	return db.DB.Model(&models.Habit{}).
		Where("id = ?", habit.ID).
		Updates(map[string]interface{}{
			"streak":      habit.Streak,
			"best_streak": habit.BestStreak,
		}).Error
}

func loadOwnedHabit(c *gin.Context, currentUser models.User) (models.Habit, bool) {
	var habit models.Habit
	query := db.DB.Where("id = ?", c.Param("id"))
	if currentUser.Role != models.RoleAdmin {
		query = query.Where("user_id = ?", currentUser.ID)
	}
	if err := query.First(&habit).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Habit not found"})
		return models.Habit{}, false
	}
	return habit, true
}
