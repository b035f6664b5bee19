package game

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Base XP for any completion; the combo bonus tops out at the same amount
// once the combo reaches 10.
const (
	baseCompletionXP = 25
	comboBonusCapXP  = 25
	defaultShields   = 3
)

// ErrStateNotFound is returned by a Store when the user has no record yet.
var ErrStateNotFound = errors.New("game state not found")

// State is the whole persisted game record for one user.
type State struct {
	XP                 int                  `json:"xp"`
	Unlocked           map[string]time.Time `json:"unlocked"`
	CurrentCombo       int                  `json:"current_combo"`
	MaxCombo           int                  `json:"max_combo"`
	LastCompletionDate string               `json:"last_completion_date"`
	StreakShields      int                  `json:"streak_shields"`
	SoundEnabled       bool                 `json:"sound_enabled"`
}

// DefaultState is the record created for a new user on first access.
func DefaultState() State {
	return State{
		Unlocked:      make(map[string]time.Time),
		StreakShields: defaultShields,
		SoundEnabled:  true,
	}
}

func (s State) clone() State {
	c := s
	c.Unlocked = make(map[string]time.Time, len(s.Unlocked))
	for k, v := range s.Unlocked {
		c.Unlocked[k] = v
	}
	return c
}

// Store persists whole game records. Load returns ErrStateNotFound for a
// user without a record; the engine then starts from defaults.
type Store interface {
	Load(ctx context.Context, userID uint) (State, error)
	Save(ctx context.Context, userID uint, state State) error
}

// PersistStatus tells the caller whether the in-memory mutation made it to
// storage. A failed persist is not fatal: memory stays authoritative for
// the session and the caller may surface a sync warning.
type PersistStatus int

const (
	PersistOK PersistStatus = iota
	PersistFailed
)

// CompletionResult is what RecordCompletion hands back to the caller.
type CompletionResult struct {
	XPGained  int
	Unlocked  []Achievement
	Combo     int
	LeveledUp bool
	NewLevel  int
	Persist   PersistStatus
}

// UnlockedAchievement pairs a catalog entry with its unlock time.
type UnlockedAchievement struct {
	Achievement
	UnlockedAt time.Time `json:"unlocked_at"`
}

// Engine owns one user's gamification state. All operations compute the
// new state fully in memory, then persist the whole record. Operations are
// expected to arrive one at a time per user; the mutex only guards against
// reload racing a local mutation.
type Engine struct {
	userID  uint
	store   Store
	catalog *Catalog
	logger  *zap.Logger
	now     func() time.Time

	mu    sync.Mutex
	state State
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides the engine's time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithLogger attaches a logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// NewEngine loads the user's record, creating a default one for new users.
func NewEngine(ctx context.Context, userID uint, store Store, catalog *Catalog, opts ...Option) (*Engine, error) {
	e := &Engine{
		userID:  userID,
		store:   store,
		catalog: catalog,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}

	state, err := store.Load(ctx, userID)
	switch {
	case err == nil:
		e.state = state
	case errors.Is(err, ErrStateNotFound):
		e.state = DefaultState()
		if saveErr := store.Save(ctx, userID, e.state.clone()); saveErr != nil {
			e.logger.Warn("game_state_init_persist_failed",
				zap.Uint("user_id", userID),
				zap.Error(saveErr),
			)
		}
	default:
		return nil, err
	}
	if e.state.Unlocked == nil {
		e.state.Unlocked = make(map[string]time.Time)
	}
	return e, nil
}

// RecordCompletion applies one habit completion: combo accounting,
// achievement evaluation, XP grant, then a whole-record persist.
func (e *Engine) RecordCompletion(ctx context.Context, completedToday, totalHabits, maxStreak int) CompletionResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	today := now.Format(DateLayout)

	newCombo := 1
	if e.state.LastCompletionDate == today {
		newCombo = e.state.CurrentCombo + 1
	}
	if newCombo > e.state.MaxCombo {
		e.state.MaxCombo = newCombo
	}

	prevLevel := LevelFromXP(e.state.XP)
	newly := e.catalog.Evaluate(e.state.Unlocked, EvalContext{
		CompletedToday: completedToday,
		TotalHabits:    totalHabits,
		MaxStreak:      maxStreak,
		Combo:          newCombo,
		Level:          prevLevel,
		Now:            now,
	})
	for _, a := range newly {
		e.state.Unlocked[a.ID] = now
	}

	xpGain := baseCompletionXP
	comboBonus := math.Min(float64(newCombo)*0.1, 1)
	xpGain += int(math.Floor(comboBonusCapXP * comboBonus))
	for _, a := range newly {
		xpGain += a.XPReward
	}

	e.state.XP += xpGain
	e.state.CurrentCombo = newCombo
	e.state.LastCompletionDate = today

	newLevel := LevelFromXP(e.state.XP)

	e.logger.Info("completion_recorded",
		zap.Uint("user_id", e.userID),
		zap.Int("xp_gained", xpGain),
		zap.Int("combo", newCombo),
		zap.Int("achievements_unlocked", len(newly)),
	)

	return CompletionResult{
		XPGained:  xpGain,
		Unlocked:  newly,
		Combo:     newCombo,
		LeveledUp: newLevel > prevLevel,
		NewLevel:  newLevel,
		Persist:   e.persist(ctx),
	}
}

// RevertCompletion undoes exactly one completion's rewards. MaxCombo,
// LastCompletionDate and shields are historical facts and stay untouched.
func (e *Engine) RevertCompletion(ctx context.Context, xpToRemove int, achievementIDs []string) PersistStatus {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.XP -= xpToRemove
	if e.state.XP < 0 {
		e.state.XP = 0
	}
	if e.state.CurrentCombo > 0 {
		e.state.CurrentCombo--
	}
	for _, id := range achievementIDs {
		delete(e.state.Unlocked, id)
	}

	e.logger.Info("completion_reverted",
		zap.Uint("user_id", e.userID),
		zap.Int("xp_removed", xpToRemove),
		zap.Int("achievements_revoked", len(achievementIDs)),
	)

	return e.persist(ctx)
}

// UseStreakShield consumes one shield if any remain. The streak protection
// itself is applied by the caller; this only tracks the counter.
func (e *Engine) UseStreakShield(ctx context.Context) (bool, PersistStatus) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.StreakShields <= 0 {
		return false, PersistOK
	}
	e.state.StreakShields--
	return true, e.persist(ctx)
}

// ToggleSound flips the sound flag and returns the new value.
func (e *Engine) ToggleSound(ctx context.Context) (bool, PersistStatus) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.SoundEnabled = !e.state.SoundEnabled
	return e.state.SoundEnabled, e.persist(ctx)
}

// Reload replaces in-memory state wholesale from the store. Last writer
// wins; an in-flight local mutation from another session is clobbered.
func (e *Engine) Reload(ctx context.Context) error {
	state, err := e.store.Load(ctx, e.userID)
	if errors.Is(err, ErrStateNotFound) {
		state = DefaultState()
	} else if err != nil {
		return err
	}
	if state.Unlocked == nil {
		state.Unlocked = make(map[string]time.Time)
	}

	e.mu.Lock()
	e.state = state
	e.mu.Unlock()

	e.logger.Info("game_state_reloaded", zap.Uint("user_id", e.userID))
	return nil
}

// persist must be called with the mutex held.
func (e *Engine) persist(ctx context.Context) PersistStatus {
	if err := e.store.Save(ctx, e.userID, e.state.clone()); err != nil {
		e.logger.Warn("game_state_persist_failed",
			zap.Uint("user_id", e.userID),
			zap.Error(err),
		)
		return PersistFailed
	}
	return PersistOK
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.clone()
}

// Level derives the current level from XP.
func (e *Engine) Level() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return LevelFromXP(e.state.XP)
}

// LevelTitle returns the tier name for the current level.
func (e *Engine) LevelTitle() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return TitleForLevel(LevelFromXP(e.state.XP))
}

// Progress reports progress toward the next level.
func (e *Engine) Progress() XPProgress {
	e.mu.Lock()
	defer e.mu.Unlock()
	return ProgressFromXP(e.state.XP)
}

// UnlockedAchievements lists unlocked entries in catalog order.
func (e *Engine) UnlockedAchievements() []UnlockedAchievement {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []UnlockedAchievement
	for _, a := range e.catalog.Entries() {
		if at, ok := e.state.Unlocked[a.ID]; ok {
			out = append(out, UnlockedAchievement{Achievement: a, UnlockedAt: at})
		}
	}
	return out
}

// LockedAchievements lists still-locked entries in catalog order.
func (e *Engine) LockedAchievements() []Achievement {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []Achievement
	for _, a := range e.catalog.Entries() {
		if _, ok := e.state.Unlocked[a.ID]; !ok {
			out = append(out, a)
		}
	}
	return out
}

// DailyQuote returns today's rotating quote.
func (e *Engine) DailyQuote() Quote {
	return QuoteForDay(e.now())
}
