package services

import (
	"fmt"
	"time"

	"github.com/habitflow/HabitFlowBackend/cache"
	"github.com/habitflow/HabitFlowBackend/game"
)

const ledgerTTL = 48 * time.Hour

func ledgerKey(userID uint, date string) string {
	return fmt.Sprintf("ledger:%d:%s", userID, date)
}

// LoadLedger fetches the reward ledger for a user and day. A missing or
// stale entry yields a fresh empty ledger for the day.
func LoadLedger(userID uint, date string) *game.Ledger {
	var l game.Ledger
	if err := cache.Get(ledgerKey(userID, date), &l); err == nil && l.ValidFor(date) {
		if l.Rewards == nil {
			l.Rewards = make(map[string]game.Reward)
		}
		return &l
	}
	return game.NewLedger(date)
}

// SaveLedger writes the ledger back under its own day key.
func SaveLedger(userID uint, l *game.Ledger) error {
	return cache.Set(ledgerKey(userID, l.Date), l, ledgerTTL)
}
