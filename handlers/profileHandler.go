package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/habitflow/HabitFlowBackend/middleware"
)

// GetProfile returns the account plus a compact game summary.
func GetProfile(c *gin.Context) {
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
		"id":         currentUser.ID,
		"username":   currentUser.Username,
		"role":       currentUser.Role,
		"created_at": currentUser.CreatedAt,
		"game": gin.H{
			"xp":          state.XP,
			"level":       eng.Level(),
			"level_title": eng.LevelTitle(),
			"max_combo":   state.MaxCombo,
		},
	})
}
