package game

import (
	"testing"
	"time"
)

func TestCatalogUniqueIDs(t *testing.T) {
	c := NewCatalog()
	seen := make(map[string]bool)
	for _, a := range c.Entries() {
		if seen[a.ID] {
			t.Errorf("duplicate achievement id %q", a.ID)
		}
		seen[a.ID] = true
		if a.Name == "" || a.XPReward < 0 {
			t.Errorf("malformed entry %+v", a)
		}
	}
}

func TestEvaluateSkipsUnlocked(t *testing.T) {
	c := NewCatalog()
	ectx := EvalContext{
		CompletedToday: 1,
		TotalHabits:    1,
		MaxStreak:      1,
		Combo:          1,
		Level:          1,
		Now:            time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC), // Wednesday
	}

	newly := c.Evaluate(nil, ectx)
	ids := idsOf(newly)
	if !containsID(ids, "first_habit") || !containsID(ids, "perfect_day") {
		t.Fatalf("expected first_habit and perfect_day, got %v", ids)
	}

	unlocked := map[string]time.Time{}
	for _, a := range newly {
		unlocked[a.ID] = time.Now()
	}
	if again := c.Evaluate(unlocked, ectx); len(again) != 0 {
		t.Errorf("already unlocked entries fired again: %v", idsOf(again))
	}
}

func TestEvaluateCatalogOrder(t *testing.T) {
	c := NewCatalog()
	ectx := EvalContext{
		CompletedToday: 10,
		TotalHabits:    10,
		MaxStreak:      30,
		Combo:          10,
		Level:          10,
		Now:            time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC),
	}

	newly := c.Evaluate(nil, ectx)
	pos := make(map[string]int)
	for i, a := range c.Entries() {
		pos[a.ID] = i
	}
	for i := 1; i < len(newly); i++ {
		if pos[newly[i-1].ID] > pos[newly[i].ID] {
			t.Fatalf("results out of catalog order: %s before %s", newly[i-1].ID, newly[i].ID)
		}
	}
}

func TestThresholdPredicates(t *testing.T) {
	c := NewCatalog()

	cases := []struct {
		id     string
		ectx   EvalContext
		unlock bool
	}{
		{"streak_3", EvalContext{MaxStreak: 3}, true},
		{"streak_3", EvalContext{MaxStreak: 2}, false},
		{"combo_5", EvalContext{Combo: 5}, true},
		{"combo_5", EvalContext{Combo: 4}, false},
		{"habits_3", EvalContext{TotalHabits: 3}, true},
		{"habits_3", EvalContext{TotalHabits: 2}, false},
		{"level_5", EvalContext{Level: 5}, true},
		{"level_5", EvalContext{Level: 4}, false},
	}

	for _, tc := range cases {
		got := firedFor(c, tc.id, tc.ectx)
		if got != tc.unlock {
			t.Errorf("%s with %+v: fired=%v, want %v", tc.id, tc.ectx, got, tc.unlock)
		}
	}
}

func TestTimeOfDayPredicates(t *testing.T) {
	c := NewCatalog()
	base := EvalContext{CompletedToday: 1, TotalHabits: 2} // not a perfect day

	base.Now = time.Date(2025, 3, 5, 5, 59, 0, 0, time.UTC)
	if !firedFor(c, "early_bird", base) {
		t.Error("early_bird should fire before 6 AM")
	}
	// The unlock window is wider than the catalog text: completions up
	// to 8 AM count, matching what players' histories already contain.
	base.Now = time.Date(2025, 3, 5, 7, 0, 0, 0, time.UTC)
	if !firedFor(c, "early_bird", base) {
		t.Error("early_bird should fire at 7 AM")
	}
	base.Now = time.Date(2025, 3, 5, 8, 0, 0, 0, time.UTC)
	if firedFor(c, "early_bird", base) {
		t.Error("early_bird should not fire at 8 AM")
	}

	base.Now = time.Date(2025, 3, 5, 22, 0, 0, 0, time.UTC)
	if !firedFor(c, "night_owl", base) {
		t.Error("night_owl should fire at 10 PM")
	}
	base.Now = time.Date(2025, 3, 5, 21, 59, 0, 0, time.UTC)
	if firedFor(c, "night_owl", base) {
		t.Error("night_owl should not fire before 10 PM")
	}

	base.Now = time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC) // Saturday
	if !firedFor(c, "weekend_warrior", base) {
		t.Error("weekend_warrior should fire on Saturday")
	}
	base.Now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) // Monday
	if firedFor(c, "weekend_warrior", base) {
		t.Error("weekend_warrior should not fire on Monday")
	}
}

func TestPerfectDayAndWeek(t *testing.T) {
	c := NewCatalog()
	now := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)

	if firedFor(c, "perfect_day", EvalContext{CompletedToday: 2, TotalHabits: 3, Now: now}) {
		t.Error("perfect_day with incomplete day")
	}
	if !firedFor(c, "perfect_day", EvalContext{CompletedToday: 3, TotalHabits: 3, Now: now}) {
		t.Error("perfect_day with all habits done")
	}
	if firedFor(c, "perfect_day", EvalContext{CompletedToday: 0, TotalHabits: 0, Now: now}) {
		t.Error("perfect_day with no habits at all")
	}

	if firedFor(c, "perfect_week", EvalContext{CompletedToday: 20, TotalHabits: 3, Now: now}) {
		t.Error("perfect_week below 7x total")
	}
	if !firedFor(c, "perfect_week", EvalContext{CompletedToday: 21, TotalHabits: 3, Now: now}) {
		t.Error("perfect_week at 7x total")
	}
}

// Lifetime-count and milestone entries have no completion-time predicate
// and must never fire through Evaluate.
func TestUncheckableEntriesStayLocked(t *testing.T) {
	c := NewCatalog()
	ectx := EvalContext{
		CompletedToday: 1000,
		TotalHabits:    1000,
		MaxStreak:      1000,
		Combo:          1000,
		Level:          1000,
		Now:            time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC),
	}
	for _, id := range []string{"getting_started", "xp_1000", "anniversary_1month"} {
		if _, ok := c.Get(id); !ok {
			t.Fatalf("catalog entry %s missing", id)
		}
		if firedFor(c, id, ectx) {
			t.Errorf("%s fired but has no checkable condition", id)
		}
	}
}

func firedFor(c *Catalog, id string, ectx EvalContext) bool {
	return containsID(idsOf(c.Evaluate(nil, ectx)), id)
}

func idsOf(as []Achievement) []string {
	ids := make([]string, 0, len(as))
	for _, a := range as {
		ids = append(ids, a.ID)
	}
	return ids
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
