package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/habitflow/HabitFlowBackend/cache"
	"github.com/habitflow/HabitFlowBackend/config"
	"github.com/habitflow/HabitFlowBackend/db"
	"github.com/habitflow/HabitFlowBackend/game"
	"github.com/habitflow/HabitFlowBackend/handlers"
	"github.com/habitflow/HabitFlowBackend/middleware"
	"github.com/habitflow/HabitFlowBackend/models"
	"github.com/habitflow/HabitFlowBackend/routes"
	"github.com/habitflow/HabitFlowBackend/services"
	"github.com/habitflow/HabitFlowBackend/utils"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		panic(err)
	}

	utils.InitLogger(cfg.Log.File)
	defer utils.Logger.Sync()
	utils.InitMetrics()
	utils.InitAuth(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	utils.Logger.Info("starting_application")

	db.Connect(cfg.DSN())
	if err := db.DB.AutoMigrate(
		&models.User{},
		&models.Habit{},
		&models.HabitCompletion{},
		&models.GameState{},
		&models.AchievementUnlock{},
	); err != nil {
		utils.Logger.Fatal("migration_failed", zap.Error(err))
	}

	if err := cache.InitRedis(cfg.RedisAddr(), utils.Logger); err != nil {
		utils.Logger.Fatal("redis_init_failed", zap.Error(err))
	}
	defer cache.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gameStore := services.NewGameStore(db.DB, utils.Logger)
	engineManager := services.NewEngineManager(gameStore, game.NewCatalog(), utils.Logger)
	engineManager.Start(ctx)
	handlers.Init(engineManager, utils.Logger)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.SecurityHeaders())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(r, cfg)

	startServer(r, cfg.Server.Port)
}

func startServer(router *gin.Engine, port string) {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	utils.Logger.Info("starting_http_server", zap.String("port", port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal("http_server_failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Logger.Info("shutting_down_server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.Fatal("server_forced_shutdown", zap.Error(err))
	}

	utils.Logger.Info("server_stopped")
}
