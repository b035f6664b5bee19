package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/habitflow/HabitFlowBackend/game"
	"github.com/habitflow/HabitFlowBackend/middleware"
	"github.com/habitflow/HabitFlowBackend/utils"
)

// GetGameState returns the full gamification snapshot for the player
// screen: XP, level, progress bar, combos, shields and today's quote.
func GetGameState(c *gin.Context) {
	currentUser, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	eng, err := engines.Engine(c.Request.Context(), currentUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load game state"})
		return
	}

	state := eng.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"xp":                   state.XP,
		"level":                eng.Level(),
		"level_title":          eng.LevelTitle(),
		"progress":             eng.Progress(),
		"current_combo":        state.CurrentCombo,
		"max_combo":            state.MaxCombo,
		"last_completion_date": state.LastCompletionDate,
		"streak_shields":       state.StreakShields,
		"sound_enabled":        state.SoundEnabled,
		"daily_quote":          eng.DailyQuote(),
	})
}

// GetAchievements lists the whole catalog split into unlocked and locked.
func GetAchievements(c *gin.Context) {
	currentUser, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	eng, err := engines.Engine(c.Request.Context(), currentUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load game state"})
		return
	}

	unlocked := eng.UnlockedAchievements()
	locked := eng.LockedAchievements()
	c.JSON(http.StatusOK, gin.H{
		"unlocked":       unlocked,
		"locked":         locked,
		"unlocked_count": len(unlocked),
		"total":          len(unlocked) + len(locked),
	})
}

// UseStreakShield spends one shield. 409 when none are left.
func UseStreakShield(c *gin.Context) {
	currentUser, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	eng, err := engines.Engine(c.Request.Context(), currentUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load game state"})
		return
	}

	used, status := eng.UseStreakShield(c.Request.Context())
	if !used {
		c.JSON(http.StatusConflict, gin.H{"error": "No streak shields left"})
		return
	}

	resp := gin.H{"streak_shields": eng.Snapshot().StreakShields}
	if status == game.PersistFailed {
		resp["sync_pending"] = true
	}
	c.JSON(http.StatusOK, resp)
}

// ToggleSound flips the sound preference.
func ToggleSound(c *gin.Context) {
	currentUser, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	eng, err := engines.Engine(c.Request.Context(), currentUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load game state"})
		return
	}

	enabled, status := eng.ToggleSound(c.Request.Context())
	resp := gin.H{"sound_enabled": enabled}
	if status == game.PersistFailed {
		resp["sync_pending"] = true
	}
	c.JSON(http.StatusOK, resp)
}

// GetDailyQuote returns today's rotating motivational quote.
func GetDailyQuote(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"quote": game.QuoteForDay(time.Now())})
}

// RecordCompletion applies a completion straight to the engine. The toggle
// endpoint is the normal path; this one exists for clients that track
// habits elsewhere and only use the gamification layer.
func RecordCompletion(c *gin.Context) {
	currentUser, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		CompletedToday int `json:"completed_today"`
		TotalHabits    int `json:"total_habits"`
		MaxStreak      int `json:"max_streak"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if input.CompletedToday < 0 || input.TotalHabits < 0 || input.MaxStreak < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Counts must not be negative"})
		return
	}

	eng, err := engines.Engine(c.Request.Context(), currentUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load game state"})
		return
	}

	result := eng.RecordCompletion(c.Request.Context(), input.CompletedToday, input.TotalHabits, input.MaxStreak)

	utils.CompletionsRecorded.Inc()
	utils.XPGranted.Add(float64(result.XPGained))
	for _, a := range result.Unlocked {
		utils.AchievementsUnlocked.WithLabelValues(string(a.Type)).Inc()
	}

	resp := gin.H{
		"xp_gained":  result.XPGained,
		"unlocked":   result.Unlocked,
		"combo":      result.Combo,
		"leveled_up": result.LeveledUp,
		"level":      result.NewLevel,
	}
	if result.Persist == game.PersistFailed {
		utils.PersistFailures.Inc()
		resp["sync_pending"] = true
	}
	c.JSON(http.StatusOK, resp)
}

// RevertCompletion removes a previously granted reward from the engine.
// It trusts the caller's XP/achievement amounts and does not consult the
// daily reward ledger, so it must not be mixed with the toggle flow: the
// toggle endpoint already reverts exactly what it granted.
func RevertCompletion(c *gin.Context) {
	currentUser, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input struct {
		XP             int      `json:"xp"`
		AchievementIDs []string `json:"achievement_ids"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.XP < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	eng, err := engines.Engine(c.Request.Context(), currentUser.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load game state"})
		return
	}

	status := eng.RevertCompletion(c.Request.Context(), input.XP, input.AchievementIDs)
	utils.CompletionsReverted.Inc()

	resp := gin.H{"xp_removed": input.XP}
	if status == game.PersistFailed {
		utils.PersistFailures.Inc()
		resp["sync_pending"] = true
	}
	c.JSON(http.StatusOK, resp)
}
