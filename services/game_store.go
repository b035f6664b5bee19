package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/habitflow/HabitFlowBackend/cache"
	"github.com/habitflow/HabitFlowBackend/game"
	"github.com/habitflow/HabitFlowBackend/models"
)

// GameStore is the gorm-backed game.Store. Every save writes the whole
// record (game_states row + achievement_unlocks set) in one transaction,
// then publishes a change event so other sessions reload.
type GameStore struct {
	db         *gorm.DB
	logger     *zap.Logger
	instanceID string
}

func NewGameStore(db *gorm.DB, logger *zap.Logger) *GameStore {
	return &GameStore{
		db:         db,
		logger:     logger,
		instanceID: uuid.NewString(),
	}
}

// InstanceID identifies this process in change events, so the subscriber
// can skip reloading state it just wrote itself.
func (s *GameStore) InstanceID() string {
	return s.instanceID
}

func (s *GameStore) Load(ctx context.Context, userID uint) (game.State, error) {
	var rec models.GameState
	err := s.db.WithContext(ctx).First(&rec, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return game.State{}, game.ErrStateNotFound
	}
	if err != nil {
		return game.State{}, err
	}

	var unlocks []models.AchievementUnlock
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&unlocks).Error; err != nil {
		return game.State{}, err
	}

	state := game.State{
		XP:                 rec.XP,
		Unlocked:           make(map[string]time.Time, len(unlocks)),
		CurrentCombo:       rec.CurrentCombo,
		MaxCombo:           rec.MaxCombo,
		LastCompletionDate: rec.LastCompletionDate,
		StreakShields:      rec.StreakShields,
		SoundEnabled:       rec.SoundEnabled,
	}
	for _, u := range unlocks {
		state.Unlocked[u.AchievementID] = u.UnlockedAt
	}
	return state, nil
}

func (s *GameStore) Save(ctx context.Context, userID uint, state game.State) error {
	rec := models.GameState{
		UserID:             userID,
		XP:                 state.XP,
		CurrentCombo:       state.CurrentCombo,
		MaxCombo:           state.MaxCombo,
		LastCompletionDate: state.LastCompletionDate,
		StreakShields:      state.StreakShields,
		SoundEnabled:       state.SoundEnabled,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).Create(&rec).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", userID).Delete(&models.AchievementUnlock{}).Error; err != nil {
			return err
		}
		if len(state.Unlocked) == 0 {
			return nil
		}
		unlocks := make([]models.AchievementUnlock, 0, len(state.Unlocked))
		for id, at := range state.Unlocked {
			unlocks = append(unlocks, models.AchievementUnlock{
				UserID:        userID,
				AchievementID: id,
				UnlockedAt:    at,
			})
		}
		return tx.Create(&unlocks).Error
	})
	if err != nil {
		return err
	}

	if err := cache.PublishGameStateChange(userID, s.instanceID); err != nil {
		s.logger.Warn("game_state_publish_failed",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
	}
	return nil
}
