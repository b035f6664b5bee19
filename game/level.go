package game

import "math"

// Level titles, one band per 5 levels. Level 45+ stays at the top tier.
var levelTitles = []string{
	"Beginner",
	"Apprentice",
	"Dedicated",
	"Committed",
	"Disciplined",
	"Master",
	"Grandmaster",
	"Legend",
	"Mythic",
	"Transcendent",
}

// XPForLevel returns the XP needed to advance from level to level+1.
// Exponential curve: level 1 needs 100, level 2 needs 150, and so on.
func XPForLevel(level int) int {
	return int(math.Floor(100 * math.Pow(1.5, float64(level-1))))
}

// LevelFromXP derives the current level from total XP. Always >= 1.
func LevelFromXP(xp int) int {
	level := 1
	total := 0
	for total+XPForLevel(level) <= xp {
		total += XPForLevel(level)
		level++
	}
	return level
}

// XPProgress describes progress within the current level.
type XPProgress struct {
	Current    int `json:"current"`
	Required   int `json:"required"`
	Percentage int `json:"percentage"`
}

// ProgressFromXP returns how far into the current level the given XP sits.
func ProgressFromXP(xp int) XPProgress {
	level := LevelFromXP(xp)
	below := 0
	for i := 1; i < level; i++ {
		below += XPForLevel(i)
	}
	current := xp - below
	required := XPForLevel(level)
	return XPProgress{
		Current:    current,
		Required:   required,
		Percentage: int(math.Round(float64(current) / float64(required) * 100)),
	}
}

// TitleForLevel maps a level to its tier name.
func TitleForLevel(level int) string {
	idx := (level - 1) / 5
	if idx >= len(levelTitles) {
		idx = len(levelTitles) - 1
	}
	return levelTitles[idx]
}
