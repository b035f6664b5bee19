package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/habitflow/HabitFlowBackend/config"
	"github.com/habitflow/HabitFlowBackend/handlers"
	"github.com/habitflow/HabitFlowBackend/middleware"
	"github.com/habitflow/HabitFlowBackend/models"
)

// Setup registers every endpoint on the router.
func Setup(r *gin.Engine, cfg *config.Config) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now(),
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/api/register", middleware.RateLimitMiddleware(10, time.Minute), handlers.RegisterHandler)
	r.POST("/api/login", middleware.RateLimitMiddleware(10, time.Minute), handlers.LoginHandler)

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	if cfg.CSRF.Enabled && cfg.CSRF.AuthKey != "" {
		api.Use(middleware.CSRFProtection(cfg.CSRF))
	}
	{
		api.GET("/profile", handlers.GetProfile)

		api.GET("/habits", middleware.CacheMiddleware(time.Minute), handlers.GetHabits)
		api.POST("/habits", handlers.CreateHabit)
		api.PUT("/habits/:id", handlers.UpdateHabit)
		api.DELETE("/habits/:id", handlers.DeleteHabit)
		api.POST("/habits/:id/toggle", handlers.ToggleHabit)
		api.GET("/habits/:id/rate", handlers.GetHabitRate)

		api.GET("/game", handlers.GetGameState)
		api.GET("/game/achievements", handlers.GetAchievements)
		api.GET("/game/quote", handlers.GetDailyQuote)
		api.POST("/game/shield", handlers.UseStreakShield)
		api.POST("/game/sound", handlers.ToggleSound)
		api.POST("/game/record", handlers.RecordCompletion)
		api.POST("/game/revert", handlers.RevertCompletion)

		api.GET("/stats/summary", middleware.CacheMiddleware(time.Minute), handlers.GetUserStats)
		api.GET("/stats/weekly", handlers.GetWeeklyStats)
		api.GET("/stats/monthly", handlers.GetMonthlyStats)
		api.POST("/stats/recompute", handlers.RecomputeStreaks)

		api.GET("/admin/habits", middleware.RoleMiddleware(models.RoleAdmin), handlers.GetHabits)
	}
}
