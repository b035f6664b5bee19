package services

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/habitflow/HabitFlowBackend/cache"
	"github.com/habitflow/HabitFlowBackend/game"
)

// EngineManager hands out one game.Engine per user and keeps the cached
// engines in sync across processes. Writes from other instances arrive on
// the redis change channel and trigger a reload; the newest write wins.
type EngineManager struct {
	store   *GameStore
	catalog *game.Catalog
	logger  *zap.Logger

	mu      sync.Mutex
	engines map[uint]*game.Engine
}

func NewEngineManager(store *GameStore, catalog *game.Catalog, logger *zap.Logger) *EngineManager {
	return &EngineManager{
		store:   store,
		catalog: catalog,
		logger:  logger,
		engines: make(map[uint]*game.Engine),
	}
}

// Engine returns the cached engine for userID, creating and loading it on
// first use.
func (m *EngineManager) Engine(ctx context.Context, userID uint) (*game.Engine, error) {
	m.mu.Lock()
	if eng, ok := m.engines[userID]; ok {
		m.mu.Unlock()
		return eng, nil
	}
	m.mu.Unlock()

	eng, err := game.NewEngine(ctx, userID, m.store, m.catalog, game.WithLogger(m.logger))
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.engines[userID]; ok {
		return existing, nil
	}
	m.engines[userID] = eng
	return eng, nil
}

// Start consumes game state change events until ctx is cancelled. Events
// published by this process are skipped; events for users without a cached
// engine are ignored.
func (m *EngineManager) Start(ctx context.Context) {
	sub := cache.SubscribeGameStateChanges()
	ch := sub.Channel()

	go func() {
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				m.handleChange(ctx, msg.Payload)
			}
		}
	}()
}

func (m *EngineManager) handleChange(ctx context.Context, payload string) {
	parts := strings.SplitN(payload, "|", 2)
	if len(parts) != 2 {
		m.logger.Warn("game_state_event_malformed", zap.String("payload", payload))
		return
	}
	if parts[1] == m.store.InstanceID() {
		return
	}
	id, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		m.logger.Warn("game_state_event_malformed", zap.String("payload", payload))
		return
	}
	userID := uint(id)

	m.mu.Lock()
	eng, ok := m.engines[userID]
	m.mu.Unlock()
	if !ok {
		return
	}

	if err := eng.Reload(ctx); err != nil {
		m.logger.Warn("game_state_reload_failed",
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return
	}
	m.logger.Info("game_state_reloaded", zap.Uint("user_id", userID))
}
