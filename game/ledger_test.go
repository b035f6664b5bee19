package game

import "testing"

func TestLedgerFirstWriteWins(t *testing.T) {
	l := NewLedger("2025-03-05")

	l.Mark("h1", 277, []string{"first_habit", "perfect_day"})
	l.Mark("h1", 999, []string{"other"})

	if !l.WasRewarded("h1") {
		t.Fatal("h1 should be rewarded")
	}
	if got := l.RewardedXP("h1"); got != 277 {
		t.Errorf("RewardedXP = %d, want 277", got)
	}
	ids := l.RewardedAchievements("h1")
	if len(ids) != 2 || ids[0] != "first_habit" || ids[1] != "perfect_day" {
		t.Errorf("RewardedAchievements = %v", ids)
	}
}

func TestLedgerUnmark(t *testing.T) {
	l := NewLedger("2025-03-05")
	l.Mark("h1", 27, nil)
	l.Unmark("h1")

	if l.WasRewarded("h1") {
		t.Error("h1 still rewarded after unmark")
	}
	if got := l.RewardedXP("h1"); got != 0 {
		t.Errorf("RewardedXP after unmark = %d, want 0", got)
	}

	// Re-marking after unmark is a fresh write, not a replay.
	l.Mark("h1", 30, []string{"streak_3"})
	if got := l.RewardedXP("h1"); got != 30 {
		t.Errorf("RewardedXP after re-mark = %d, want 30", got)
	}
}

func TestLedgerValidFor(t *testing.T) {
	l := NewLedger("2025-03-05")
	if !l.ValidFor("2025-03-05") {
		t.Error("ledger should be valid for its own day")
	}
	if l.ValidFor("2025-03-06") {
		t.Error("ledger should be stale on the next day")
	}

	var nilLedger *Ledger
	if nilLedger.ValidFor("2025-03-05") {
		t.Error("nil ledger should never be valid")
	}
}

func TestLedgerMarkCopiesIDs(t *testing.T) {
	l := NewLedger("2025-03-05")
	src := []string{"first_habit"}
	l.Mark("h1", 77, src)
	src[0] = "mutated"

	if ids := l.RewardedAchievements("h1"); ids[0] != "first_habit" {
		t.Errorf("ledger shares backing array with caller: %v", ids)
	}
}

func TestLedgerTracksHabitsIndependently(t *testing.T) {
	l := NewLedger("2025-03-05")
	l.Mark("h1", 277, []string{"first_habit"})
	l.Mark("h2", 29, nil)

	if l.RewardedXP("h1") != 277 || l.RewardedXP("h2") != 29 {
		t.Error("per-habit rewards mixed up")
	}
	l.Unmark("h1")
	if !l.WasRewarded("h2") {
		t.Error("unmarking h1 touched h2")
	}
}
