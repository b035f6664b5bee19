package game

// Reward records what a single habit completion granted today.
type Reward struct {
	XP             int      `json:"xp"`
	AchievementIDs []string `json:"achievements"`
}

// Ledger tracks which habits have already been rewarded on a given day so
// toggling a habit complete/incomplete grants XP at most once per day and
// reverts exactly what was granted. A ledger whose Date is not today must
// be discarded by the caller and replaced with a fresh one.
type Ledger struct {
	Date    string            `json:"date"`
	Rewards map[string]Reward `json:"rewards"`
}

// NewLedger returns an empty ledger scoped to the given calendar day.
func NewLedger(date string) *Ledger {
	return &Ledger{Date: date, Rewards: make(map[string]Reward)}
}

// ValidFor reports whether the ledger belongs to the given day.
func (l *Ledger) ValidFor(date string) bool {
	return l != nil && l.Date == date
}

// WasRewarded reports whether the habit already got its reward today.
func (l *Ledger) WasRewarded(habitID string) bool {
	_, ok := l.Rewards[habitID]
	return ok
}

// Mark records a reward for the habit. First write wins; a second mark on
// the same day is a no-op.
func (l *Ledger) Mark(habitID string, xp int, achievementIDs []string) {
	if _, ok := l.Rewards[habitID]; ok {
		return
	}
	if l.Rewards == nil {
		l.Rewards = make(map[string]Reward)
	}
	ids := make([]string, len(achievementIDs))
	copy(ids, achievementIDs)
	l.Rewards[habitID] = Reward{XP: xp, AchievementIDs: ids}
}

// Unmark removes the habit's ledger entry entirely.
func (l *Ledger) Unmark(habitID string) {
	delete(l.Rewards, habitID)
}

// RewardedXP returns the XP granted to the habit today, zero if none.
func (l *Ledger) RewardedXP(habitID string) int {
	return l.Rewards[habitID].XP
}

// RewardedAchievements returns the achievement ids granted to the habit
// today, empty if none.
func (l *Ledger) RewardedAchievements(habitID string) []string {
	return l.Rewards[habitID].AchievementIDs
}
