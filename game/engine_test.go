package game

import (
	"context"
	"errors"
	"testing"
	"time"
)

// memStore is an in-memory Store with a switchable failure mode.
type memStore struct {
	states   map[uint]State
	failSave bool
	saves    int
}

func newMemStore() *memStore {
	return &memStore{states: make(map[uint]State)}
}

func (m *memStore) Load(_ context.Context, userID uint) (State, error) {
	s, ok := m.states[userID]
	if !ok {
		return State{}, ErrStateNotFound
	}
	return s, nil
}

func (m *memStore) Save(_ context.Context, userID uint, state State) error {
	if m.failSave {
		return errors.New("save failed")
	}
	m.saves++
	m.states[userID] = state
	return nil
}

// Wednesday noon, far from the early_bird and night_owl windows.
var testStart = time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

// fakeClock lets each test move its own engine's time without touching
// any shared state.
type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func newTestEngine(t *testing.T, store Store) (*Engine, *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: testStart}
	eng, err := NewEngine(context.Background(), 1, store, NewCatalog(), WithClock(clk.Now))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return eng, clk
}

func TestNewEngineDefaults(t *testing.T) {
	store := newMemStore()
	eng, _ := newTestEngine(t, store)

	s := eng.Snapshot()
	if s.XP != 0 || s.CurrentCombo != 0 || s.StreakShields != 3 || !s.SoundEnabled {
		t.Errorf("unexpected default state %+v", s)
	}
	if _, ok := store.states[1]; !ok {
		t.Error("default state was not persisted for the new user")
	}
	if eng.Level() != 1 || eng.LevelTitle() != "Beginner" {
		t.Errorf("level=%d title=%q", eng.Level(), eng.LevelTitle())
	}
}

func TestFirstCompletionRewards(t *testing.T) {
	eng, _ := newTestEngine(t, newMemStore())

	res := eng.RecordCompletion(context.Background(), 1, 1, 1)

	// 25 base + 2 combo bonus + 50 first_habit + 200 perfect_day.
	if res.XPGained != 277 {
		t.Errorf("XPGained = %d, want 277", res.XPGained)
	}
	ids := idsOf(res.Unlocked)
	if len(ids) != 2 || !containsID(ids, "first_habit") || !containsID(ids, "perfect_day") {
		t.Errorf("Unlocked = %v, want [first_habit perfect_day]", ids)
	}
	if res.Combo != 1 {
		t.Errorf("Combo = %d, want 1", res.Combo)
	}
	if !res.LeveledUp || res.NewLevel != 3 {
		t.Errorf("LeveledUp=%v NewLevel=%d, want level up to 3", res.LeveledUp, res.NewLevel)
	}
	if res.Persist != PersistOK {
		t.Errorf("Persist = %v, want PersistOK", res.Persist)
	}

	s := eng.Snapshot()
	if s.XP != 277 || s.LastCompletionDate != "2025-03-05" || s.MaxCombo != 1 {
		t.Errorf("state after completion: %+v", s)
	}
}

func TestComboGrowsWithinDay(t *testing.T) {
	eng, _ := newTestEngine(t, newMemStore())

	eng.RecordCompletion(context.Background(), 1, 3, 1)
	res := eng.RecordCompletion(context.Background(), 2, 3, 1)

	if res.Combo != 2 {
		t.Errorf("second completion combo = %d, want 2", res.Combo)
	}
	// 25 base + floor(25*0.2) = 30, no new achievements.
	if res.XPGained != 30 {
		t.Errorf("second completion XPGained = %d, want 30", res.XPGained)
	}
	if containsID(idsOf(res.Unlocked), "first_habit") {
		t.Error("first_habit unlocked twice")
	}
}

func TestComboResetsOnNewDay(t *testing.T) {
	eng, clk := newTestEngine(t, newMemStore())

	for i := 0; i < 4; i++ {
		eng.RecordCompletion(context.Background(), i+1, 5, 1)
	}
	if s := eng.Snapshot(); s.CurrentCombo != 4 || s.MaxCombo != 4 {
		t.Fatalf("combo=%d max=%d before day change", s.CurrentCombo, s.MaxCombo)
	}

	clk.now = clk.now.AddDate(0, 0, 1)

	res := eng.RecordCompletion(context.Background(), 1, 5, 2)
	if res.Combo != 1 {
		t.Errorf("combo after new day = %d, want 1", res.Combo)
	}
	if s := eng.Snapshot(); s.MaxCombo != 4 {
		t.Errorf("MaxCombo dropped to %d", s.MaxCombo)
	}
}

func TestComboBonusCaps(t *testing.T) {
	eng, _ := newTestEngine(t, newMemStore())

	var last CompletionResult
	for i := 0; i < 12; i++ {
		last = eng.RecordCompletion(context.Background(), 1, 1, 1)
	}
	if last.Combo != 12 {
		t.Fatalf("combo = %d, want 12", last.Combo)
	}
	// Bonus caps at +25 once the combo passes 10.
	if last.XPGained != 50 {
		t.Errorf("XPGained at combo 12 = %d, want 50", last.XPGained)
	}
}

func TestRevertCompletionIsExactInverse(t *testing.T) {
	eng, _ := newTestEngine(t, newMemStore())

	res := eng.RecordCompletion(context.Background(), 1, 1, 1)
	before := eng.Snapshot()

	status := eng.RevertCompletion(context.Background(), res.XPGained, idsOf(res.Unlocked))
	if status != PersistOK {
		t.Errorf("revert persist = %v", status)
	}

	s := eng.Snapshot()
	if s.XP != 0 {
		t.Errorf("XP after revert = %d, want 0", s.XP)
	}
	if len(s.Unlocked) != 0 {
		t.Errorf("unlocks remain after revert: %v", s.Unlocked)
	}
	if s.CurrentCombo != before.CurrentCombo-1 {
		t.Errorf("combo after revert = %d, want %d", s.CurrentCombo, before.CurrentCombo-1)
	}
	// History stays.
	if s.MaxCombo != before.MaxCombo || s.LastCompletionDate != before.LastCompletionDate {
		t.Errorf("revert touched history: %+v", s)
	}
}

func TestRevertFloorsAtZero(t *testing.T) {
	eng, _ := newTestEngine(t, newMemStore())

	eng.RevertCompletion(context.Background(), 1000, nil)
	s := eng.Snapshot()
	if s.XP != 0 || s.CurrentCombo != 0 {
		t.Errorf("revert on empty state went negative: %+v", s)
	}
}

func TestUseStreakShield(t *testing.T) {
	eng, _ := newTestEngine(t, newMemStore())

	for i := 3; i > 0; i-- {
		used, _ := eng.UseStreakShield(context.Background())
		if !used {
			t.Fatalf("shield %d refused", 4-i)
		}
	}
	if used, _ := eng.UseStreakShield(context.Background()); used {
		t.Error("shield used with zero remaining")
	}
	if s := eng.Snapshot(); s.StreakShields != 0 {
		t.Errorf("shields = %d, want 0", s.StreakShields)
	}
}

func TestToggleSound(t *testing.T) {
	eng, _ := newTestEngine(t, newMemStore())

	enabled, _ := eng.ToggleSound(context.Background())
	if enabled {
		t.Error("sound should be off after first toggle")
	}
	enabled, _ = eng.ToggleSound(context.Background())
	if !enabled {
		t.Error("sound should be back on")
	}
}

func TestPersistFailureSurfaced(t *testing.T) {
	store := newMemStore()
	eng, _ := newTestEngine(t, store)

	store.failSave = true
	res := eng.RecordCompletion(context.Background(), 1, 1, 1)
	if res.Persist != PersistFailed {
		t.Errorf("Persist = %v, want PersistFailed", res.Persist)
	}
	// Memory stays authoritative for the session.
	if eng.Snapshot().XP != res.XPGained {
		t.Error("in-memory state lost on persist failure")
	}
}

func TestReloadReplacesState(t *testing.T) {
	store := newMemStore()
	eng, _ := newTestEngine(t, store)

	eng.RecordCompletion(context.Background(), 1, 1, 1)

	// Another session wrote a different record.
	store.states[1] = State{XP: 5000, Unlocked: map[string]time.Time{"streak_3": testStart}, StreakShields: 1, SoundEnabled: true}

	if err := eng.Reload(context.Background()); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	s := eng.Snapshot()
	if s.XP != 5000 || s.StreakShields != 1 {
		t.Errorf("reload did not replace state: %+v", s)
	}
	if _, ok := s.Unlocked["first_habit"]; ok {
		t.Error("local unlock survived wholesale reload")
	}
}

func TestAchievementListsPartitionCatalog(t *testing.T) {
	eng, _ := newTestEngine(t, newMemStore())
	eng.RecordCompletion(context.Background(), 1, 1, 1)

	unlocked := eng.UnlockedAchievements()
	locked := eng.LockedAchievements()
	total := len(NewCatalog().Entries())
	if len(unlocked)+len(locked) != total {
		t.Errorf("unlocked %d + locked %d != catalog %d", len(unlocked), len(locked), total)
	}
	for _, u := range unlocked {
		if u.UnlockedAt.IsZero() {
			t.Errorf("%s has zero unlock time", u.ID)
		}
	}
}

func TestDailyQuoteStableWithinDay(t *testing.T) {
	eng, clk := newTestEngine(t, newMemStore())
	q1 := eng.DailyQuote()
	clk.now = clk.now.Add(8 * time.Hour)
	q2 := eng.DailyQuote()
	if q1 != q2 {
		t.Error("quote changed within the same day")
	}
	if q1.Text == "" {
		t.Error("empty quote")
	}
}
