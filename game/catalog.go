package game

import (
	"strings"
	"time"
)

// AchievementType tags how an achievement's requirement is interpreted.
type AchievementType string

const (
	TypeCompletions AchievementType = "completions"
	TypeStreak      AchievementType = "streak"
	TypeHabits      AchievementType = "habits"
	TypeCombo       AchievementType = "combo"
	TypeSpecial     AchievementType = "special"
)

// Achievement is one immutable catalog entry.
type Achievement struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Requirement int             `json:"requirement"`
	Type        AchievementType `json:"type"`
	XPReward    int             `json:"xp_reward"`
}

// EvalContext carries everything an unlock predicate may look at for one
// recorded completion. Level and XP are the pre-completion values.
type EvalContext struct {
	CompletedToday int
	TotalHabits    int
	MaxStreak      int
	Combo          int
	Level          int
	Now            time.Time
}

// Predicate reports whether a locked achievement should unlock now.
type Predicate func(EvalContext) bool

// Catalog is the ordered achievement list plus its predicate table,
// built once at startup and never mutated.
type Catalog struct {
	entries    []Achievement
	byID       map[string]Achievement
	predicates map[string]Predicate
}

// NewCatalog builds the catalog from the static definition list.
func NewCatalog() *Catalog {
	c := &Catalog{
		entries:    achievementDefs,
		byID:       make(map[string]Achievement, len(achievementDefs)),
		predicates: make(map[string]Predicate, len(achievementDefs)),
	}
	for _, a := range achievementDefs {
		c.byID[a.ID] = a
		if p := buildPredicate(a); p != nil {
			c.predicates[a.ID] = p
		}
	}
	return c
}

// Entries returns the catalog in definition order.
func (c *Catalog) Entries() []Achievement {
	out := make([]Achievement, len(c.entries))
	copy(out, c.entries)
	return out
}

// Get looks an achievement up by id.
func (c *Catalog) Get(id string) (Achievement, bool) {
	a, ok := c.byID[id]
	return a, ok
}

// Evaluate returns, in catalog order, every achievement that is not in
// unlocked and whose predicate passes for ectx.
func (c *Catalog) Evaluate(unlocked map[string]time.Time, ectx EvalContext) []Achievement {
	var newly []Achievement
	for _, a := range c.entries {
		if _, done := unlocked[a.ID]; done {
			continue
		}
		p, ok := c.predicates[a.ID]
		if ok && p(ectx) {
			newly = append(newly, a)
		}
	}
	return newly
}

// buildPredicate maps an entry to its unlock condition. Entries whose
// requirement cannot be checked against the completion-time context
// (lifetime completion counts, XP milestones, account anniversaries) get
// no predicate and stay locked through this path.
func buildPredicate(a Achievement) Predicate {
	switch a.Type {
	case TypeStreak:
		req := a.Requirement
		return func(e EvalContext) bool { return e.MaxStreak >= req }
	case TypeCombo:
		req := a.Requirement
		return func(e EvalContext) bool { return e.Combo >= req }
	case TypeHabits:
		req := a.Requirement
		return func(e EvalContext) bool { return e.TotalHabits >= req }
	case TypeCompletions:
		if a.ID == "first_habit" {
			return func(EvalContext) bool { return true }
		}
		return nil
	}

	if strings.HasPrefix(a.ID, "level_") {
		req := a.Requirement
		return func(e EvalContext) bool { return e.Level >= req }
	}

	switch a.ID {
	case "perfect_day":
		return func(e EvalContext) bool {
			return e.CompletedToday >= e.TotalHabits && e.TotalHabits > 0
		}
	case "perfect_week":
		return func(e EvalContext) bool {
			return e.TotalHabits > 0 && e.CompletedToday >= e.TotalHabits*7
		}
	case "early_bird":
		// The catalog text says "before 6 AM" but unlocks have always
		// used 8; keeping both so existing players' unlocks line up.
		return func(e EvalContext) bool { return e.Now.Hour() < 8 }
	case "night_owl":
		return func(e EvalContext) bool { return e.Now.Hour() >= 22 }
	case "weekend_warrior":
		return func(e EvalContext) bool {
			wd := e.Now.Weekday()
			return (wd == time.Saturday || wd == time.Sunday) && e.CompletedToday > 0
		}
	}

	return nil
}

var achievementDefs = []Achievement{
	// Completion achievements (total habits completed)
	{ID: "first_habit", Name: "First Step", Description: "Complete your first habit", Icon: "🌟", Requirement: 1, Type: TypeCompletions, XPReward: 50},
	{ID: "getting_started", Name: "Getting Started", Description: "Complete 10 habits", Icon: "🚀", Requirement: 10, Type: TypeCompletions, XPReward: 100},
	{ID: "building_momentum", Name: "Building Momentum", Description: "Complete 25 habits", Icon: "📈", Requirement: 25, Type: TypeCompletions, XPReward: 150},
	{ID: "on_fire", Name: "On Fire", Description: "Complete 50 habits", Icon: "🔥", Requirement: 50, Type: TypeCompletions, XPReward: 250},
	{ID: "centurion", Name: "Centurion", Description: "Complete 100 habits", Icon: "💯", Requirement: 100, Type: TypeCompletions, XPReward: 500},
	{ID: "dedicated", Name: "Dedicated", Description: "Complete 250 habits", Icon: "🎖️", Requirement: 250, Type: TypeCompletions, XPReward: 750},
	{ID: "habit_machine", Name: "Habit Machine", Description: "Complete 500 habits", Icon: "🤖", Requirement: 500, Type: TypeCompletions, XPReward: 1000},
	{ID: "thousand_club", Name: "Thousand Club", Description: "Complete 1,000 habits", Icon: "👑", Requirement: 1000, Type: TypeCompletions, XPReward: 2500},
	{ID: "habit_veteran", Name: "Habit Veteran", Description: "Complete 2,500 habits", Icon: "🎗️", Requirement: 2500, Type: TypeCompletions, XPReward: 5000},
	{ID: "five_thousand", Name: "High Five Thousand", Description: "Complete 5,000 habits", Icon: "🖐️", Requirement: 5000, Type: TypeCompletions, XPReward: 10000},
	{ID: "ten_thousand", Name: "Ten Thousand Hours", Description: "Complete 10,000 habits", Icon: "⏰", Requirement: 10000, Type: TypeCompletions, XPReward: 25000},
	{ID: "habit_master", Name: "Habit Master", Description: "Complete 25,000 habits", Icon: "🧙", Requirement: 25000, Type: TypeCompletions, XPReward: 50000},
	{ID: "fifty_thousand", Name: "Golden Milestone", Description: "Complete 50,000 habits", Icon: "🏅", Requirement: 50000, Type: TypeCompletions, XPReward: 100000},
	{ID: "hundred_thousand", Name: "Platinum Achievement", Description: "Complete 100,000 habits", Icon: "💎", Requirement: 100000, Type: TypeCompletions, XPReward: 250000},
	{ID: "quarter_million", Name: "Diamond Legacy", Description: "Complete 250,000 habits", Icon: "💠", Requirement: 250000, Type: TypeCompletions, XPReward: 500000},
	{ID: "half_million", Name: "Legendary Status", Description: "Complete 500,000 habits", Icon: "🌠", Requirement: 500000, Type: TypeCompletions, XPReward: 1000000},
	{ID: "million", Name: "The Millionaire", Description: "Complete 1,000,000 habits", Icon: "👸", Requirement: 1000000, Type: TypeCompletions, XPReward: 2500000},

	// Streak achievements (consecutive days)
	{ID: "streak_3", Name: "Hat Trick", Description: "Reach a 3-day streak", Icon: "🎩", Requirement: 3, Type: TypeStreak, XPReward: 75},
	{ID: "streak_7", Name: "Week Warrior", Description: "Reach a 7-day streak", Icon: "⚔️", Requirement: 7, Type: TypeStreak, XPReward: 150},
	{ID: "streak_14", Name: "Fortnight Fighter", Description: "Reach a 14-day streak", Icon: "🛡️", Requirement: 14, Type: TypeStreak, XPReward: 300},
	{ID: "streak_21", Name: "Habit Formed", Description: "Reach a 21-day streak (habits form!)", Icon: "🧠", Requirement: 21, Type: TypeStreak, XPReward: 500},
	{ID: "streak_30", Name: "Monthly Master", Description: "Reach a 30-day streak", Icon: "🏆", Requirement: 30, Type: TypeStreak, XPReward: 750},
	{ID: "streak_45", Name: "Forty-Five Days", Description: "Reach a 45-day streak", Icon: "🌙", Requirement: 45, Type: TypeStreak, XPReward: 1000},
	{ID: "streak_60", Name: "Habit Hero", Description: "Reach a 60-day streak", Icon: "🦸", Requirement: 60, Type: TypeStreak, XPReward: 1500},
	{ID: "streak_90", Name: "Quarter Year", Description: "Reach a 90-day streak", Icon: "📅", Requirement: 90, Type: TypeStreak, XPReward: 2000},
	{ID: "streak_100", Name: "Century Club", Description: "Reach a 100-day streak", Icon: "💎", Requirement: 100, Type: TypeStreak, XPReward: 3000},
	{ID: "streak_150", Name: "Unstoppable Force", Description: "Reach a 150-day streak", Icon: "🌊", Requirement: 150, Type: TypeStreak, XPReward: 4500},
	{ID: "streak_180", Name: "Half Year Hero", Description: "Reach a 180-day streak", Icon: "☀️", Requirement: 180, Type: TypeStreak, XPReward: 6000},
	{ID: "streak_250", Name: "Persistence Pro", Description: "Reach a 250-day streak", Icon: "🎯", Requirement: 250, Type: TypeStreak, XPReward: 8000},
	{ID: "streak_365", Name: "Year of Excellence", Description: "Reach a 365-day streak", Icon: "🌈", Requirement: 365, Type: TypeStreak, XPReward: 15000},
	{ID: "streak_500", Name: "Beyond Limits", Description: "Reach a 500-day streak", Icon: "🚀", Requirement: 500, Type: TypeStreak, XPReward: 25000},
	{ID: "streak_730", Name: "Two Year Titan", Description: "Reach a 730-day streak (2 years!)", Icon: "🏛️", Requirement: 730, Type: TypeStreak, XPReward: 50000},
	{ID: "streak_1000", Name: "Thousand Days", Description: "Reach a 1,000-day streak", Icon: "👑", Requirement: 1000, Type: TypeStreak, XPReward: 75000},
	{ID: "streak_1095", Name: "Three Year Legend", Description: "Reach a 1,095-day streak (3 years!)", Icon: "🌟", Requirement: 1095, Type: TypeStreak, XPReward: 100000},
	{ID: "streak_1825", Name: "Five Year Phenomenon", Description: "Reach a 1,825-day streak (5 years!)", Icon: "🔮", Requirement: 1825, Type: TypeStreak, XPReward: 200000},
	{ID: "streak_2555", Name: "Seven Year Sage", Description: "Reach a 2,555-day streak (7 years!)", Icon: "🧙‍♂️", Requirement: 2555, Type: TypeStreak, XPReward: 350000},
	{ID: "streak_3650", Name: "Decade of Dedication", Description: "Reach a 3,650-day streak (10 years!)", Icon: "🏆", Requirement: 3650, Type: TypeStreak, XPReward: 500000},
	{ID: "streak_5475", Name: "Fifteen Year Phoenix", Description: "Reach a 5,475-day streak (15 years!)", Icon: "🦅", Requirement: 5475, Type: TypeStreak, XPReward: 750000},
	{ID: "streak_7300", Name: "Twenty Year Immortal", Description: "Reach a 7,300-day streak (20 years!)", Icon: "⚡", Requirement: 7300, Type: TypeStreak, XPReward: 1000000},
	{ID: "streak_9125", Name: "Quarter Century God", Description: "Reach a 9,125-day streak (25 years!)", Icon: "🌌", Requirement: 9125, Type: TypeStreak, XPReward: 2000000},
	{ID: "streak_10950", Name: "Thirty Year Transcendent", Description: "Reach a 10,950-day streak (30 years!)", Icon: "🌀", Requirement: 10950, Type: TypeStreak, XPReward: 3000000},
	{ID: "streak_12775", Name: "Thirty-Five Year Eternal", Description: "Reach a 12,775-day streak (35 years!)", Icon: "💫", Requirement: 12775, Type: TypeStreak, XPReward: 4000000},
	{ID: "streak_14600", Name: "Forty Year Oracle", Description: "Reach a 14,600-day streak (40 years!)", Icon: "🔱", Requirement: 14600, Type: TypeStreak, XPReward: 5000000},
	{ID: "streak_16425", Name: "Forty-Five Year Ancient", Description: "Reach a 16,425-day streak (45 years!)", Icon: "📜", Requirement: 16425, Type: TypeStreak, XPReward: 7500000},
	{ID: "streak_18250", Name: "Fifty Year Cosmic Being", Description: "Reach a 18,250-day streak (50 years!)", Icon: "🌟", Requirement: 18250, Type: TypeStreak, XPReward: 10000000},

	// Combo achievements (habits completed in a row)
	{ID: "combo_3", Name: "Triple Threat", Description: "Complete 3 habits in a row", Icon: "3️⃣", Requirement: 3, Type: TypeCombo, XPReward: 50},
	{ID: "combo_5", Name: "Combo King", Description: "Complete 5 habits in a row", Icon: "👊", Requirement: 5, Type: TypeCombo, XPReward: 100},
	{ID: "combo_10", Name: "Unstoppable", Description: "Complete 10 habits in a row", Icon: "💪", Requirement: 10, Type: TypeCombo, XPReward: 250},
	{ID: "combo_15", Name: "Momentum Master", Description: "Complete 15 habits in a row", Icon: "🌀", Requirement: 15, Type: TypeCombo, XPReward: 400},
	{ID: "combo_20", Name: "Twenty Streak", Description: "Complete 20 habits in a row", Icon: "🎯", Requirement: 20, Type: TypeCombo, XPReward: 600},
	{ID: "combo_25", Name: "On a Roll", Description: "Complete 25 habits in a row", Icon: "🎳", Requirement: 25, Type: TypeCombo, XPReward: 800},
	{ID: "combo_30", Name: "Combo God", Description: "Complete 30 habits in a row", Icon: "⚡", Requirement: 30, Type: TypeCombo, XPReward: 1000},
	{ID: "combo_50", Name: "Half Century Combo", Description: "Complete 50 habits in a row", Icon: "🔥", Requirement: 50, Type: TypeCombo, XPReward: 2000},
	{ID: "combo_75", Name: "Combo Legend", Description: "Complete 75 habits in a row", Icon: "🌟", Requirement: 75, Type: TypeCombo, XPReward: 3500},
	{ID: "combo_100", Name: "Century Combo", Description: "Complete 100 habits in a row", Icon: "💯", Requirement: 100, Type: TypeCombo, XPReward: 5000},

	// Level achievements
	{ID: "level_5", Name: "Level 5", Description: "Reach level 5", Icon: "⭐", Requirement: 5, Type: TypeSpecial, XPReward: 100},
	{ID: "level_10", Name: "Level 10", Description: "Reach level 10", Icon: "🌟", Requirement: 10, Type: TypeSpecial, XPReward: 250},
	{ID: "level_15", Name: "Level 15", Description: "Reach level 15", Icon: "✨", Requirement: 15, Type: TypeSpecial, XPReward: 400},
	{ID: "level_20", Name: "Level 20", Description: "Reach level 20", Icon: "🌠", Requirement: 20, Type: TypeSpecial, XPReward: 600},
	{ID: "level_25", Name: "Level 25", Description: "Reach level 25", Icon: "💫", Requirement: 25, Type: TypeSpecial, XPReward: 1000},
	{ID: "level_30", Name: "Level 30", Description: "Reach level 30", Icon: "🔮", Requirement: 30, Type: TypeSpecial, XPReward: 1500},
	{ID: "level_40", Name: "Level 40", Description: "Reach level 40", Icon: "🏅", Requirement: 40, Type: TypeSpecial, XPReward: 2500},
	{ID: "level_50", Name: "Level 50", Description: "Reach level 50", Icon: "🥇", Requirement: 50, Type: TypeSpecial, XPReward: 5000},
	{ID: "level_60", Name: "Level 60", Description: "Reach level 60", Icon: "🎖️", Requirement: 60, Type: TypeSpecial, XPReward: 7500},
	{ID: "level_75", Name: "Level 75", Description: "Reach level 75", Icon: "🏆", Requirement: 75, Type: TypeSpecial, XPReward: 12500},
	{ID: "level_100", Name: "Level 100", Description: "Reach level 100", Icon: "👑", Requirement: 100, Type: TypeSpecial, XPReward: 25000},
	{ID: "level_150", Name: "Level 150", Description: "Reach level 150", Icon: "💎", Requirement: 150, Type: TypeSpecial, XPReward: 50000},
	{ID: "level_200", Name: "Level 200", Description: "Reach level 200", Icon: "🌈", Requirement: 200, Type: TypeSpecial, XPReward: 100000},
	{ID: "level_300", Name: "Level 300", Description: "Reach level 300", Icon: "🔱", Requirement: 300, Type: TypeSpecial, XPReward: 200000},
	{ID: "level_500", Name: "Level 500", Description: "Reach level 500", Icon: "⚜️", Requirement: 500, Type: TypeSpecial, XPReward: 500000},
	{ID: "level_1000", Name: "Level 1000", Description: "Reach level 1000", Icon: "🌌", Requirement: 1000, Type: TypeSpecial, XPReward: 1000000},

	// Special achievements
	{ID: "night_owl", Name: "Night Owl", Description: "Complete a habit after 10 PM", Icon: "🦉", Requirement: 1, Type: TypeSpecial, XPReward: 100},
	{ID: "early_bird", Name: "Early Bird", Description: "Complete a habit before 6 AM", Icon: "🐦", Requirement: 1, Type: TypeSpecial, XPReward: 100},
	{ID: "perfect_day", Name: "Perfect Day", Description: "Complete all habits in one day", Icon: "✨", Requirement: 1, Type: TypeSpecial, XPReward: 200},
	{ID: "perfect_week", Name: "Perfect Week", Description: "Complete all habits for 7 days straight", Icon: "🌟", Requirement: 7, Type: TypeSpecial, XPReward: 1000},
	{ID: "weekend_warrior", Name: "Weekend Warrior", Description: "Complete habits on a weekend", Icon: "🎉", Requirement: 1, Type: TypeSpecial, XPReward: 50},

	// Habit count achievements (number of habits tracked)
	{ID: "habits_3", Name: "Triple Tracker", Description: "Track 3 different habits", Icon: "3️⃣", Requirement: 3, Type: TypeHabits, XPReward: 50},
	{ID: "habits_5", Name: "High Five", Description: "Track 5 different habits", Icon: "🖐️", Requirement: 5, Type: TypeHabits, XPReward: 100},
	{ID: "habits_7", Name: "Lucky Seven", Description: "Track 7 different habits", Icon: "🍀", Requirement: 7, Type: TypeHabits, XPReward: 150},
	{ID: "habits_10", Name: "Perfect Ten", Description: "Track 10 different habits", Icon: "🔟", Requirement: 10, Type: TypeHabits, XPReward: 250},
	{ID: "habits_15", Name: "Habit Collector", Description: "Track 15 different habits", Icon: "📚", Requirement: 15, Type: TypeHabits, XPReward: 400},
	{ID: "habits_20", Name: "Habit Hoarder", Description: "Track 20 different habits", Icon: "🗃️", Requirement: 20, Type: TypeHabits, XPReward: 600},
	{ID: "habits_25", Name: "Life Optimizer", Description: "Track 25 different habits", Icon: "🎯", Requirement: 25, Type: TypeHabits, XPReward: 1000},

	// Anniversary achievements (account age milestones)
	{ID: "anniversary_1month", Name: "One Month In", Description: "Use HabitFlow for 1 month", Icon: "📆", Requirement: 30, Type: TypeSpecial, XPReward: 500},
	{ID: "anniversary_3month", Name: "Quarter Journey", Description: "Use HabitFlow for 3 months", Icon: "🗓️", Requirement: 90, Type: TypeSpecial, XPReward: 1500},
	{ID: "anniversary_6month", Name: "Half Year Mark", Description: "Use HabitFlow for 6 months", Icon: "📅", Requirement: 180, Type: TypeSpecial, XPReward: 3000},
	{ID: "anniversary_1year", Name: "One Year Anniversary", Description: "Use HabitFlow for 1 year", Icon: "🎂", Requirement: 365, Type: TypeSpecial, XPReward: 10000},
	{ID: "anniversary_2year", Name: "Two Year Veteran", Description: "Use HabitFlow for 2 years", Icon: "🎊", Requirement: 730, Type: TypeSpecial, XPReward: 25000},
	{ID: "anniversary_3year", Name: "Three Year Champion", Description: "Use HabitFlow for 3 years", Icon: "🏅", Requirement: 1095, Type: TypeSpecial, XPReward: 50000},
	{ID: "anniversary_5year", Name: "Five Year Legend", Description: "Use HabitFlow for 5 years", Icon: "🌟", Requirement: 1825, Type: TypeSpecial, XPReward: 100000},
	{ID: "anniversary_7year", Name: "Seven Year Sage", Description: "Use HabitFlow for 7 years", Icon: "🔮", Requirement: 2555, Type: TypeSpecial, XPReward: 175000},
	{ID: "anniversary_10year", Name: "Decade of Growth", Description: "Use HabitFlow for 10 years", Icon: "💎", Requirement: 3650, Type: TypeSpecial, XPReward: 500000},
	{ID: "anniversary_15year", Name: "Fifteen Year Faithful", Description: "Use HabitFlow for 15 years", Icon: "👑", Requirement: 5475, Type: TypeSpecial, XPReward: 1000000},
	{ID: "anniversary_20year", Name: "Twenty Year Titan", Description: "Use HabitFlow for 20 years", Icon: "🏛️", Requirement: 7300, Type: TypeSpecial, XPReward: 2000000},
	{ID: "anniversary_25year", Name: "Quarter Century Master", Description: "Use HabitFlow for 25 years", Icon: "⚡", Requirement: 9125, Type: TypeSpecial, XPReward: 3500000},
	{ID: "anniversary_30year", Name: "Thirty Year Oracle", Description: "Use HabitFlow for 30 years", Icon: "🌌", Requirement: 10950, Type: TypeSpecial, XPReward: 5000000},
	{ID: "anniversary_40year", Name: "Forty Year Immortal", Description: "Use HabitFlow for 40 years", Icon: "🔱", Requirement: 14600, Type: TypeSpecial, XPReward: 7500000},
	{ID: "anniversary_50year", Name: "Fifty Year Eternal", Description: "Use HabitFlow for 50 years", Icon: "✨", Requirement: 18250, Type: TypeSpecial, XPReward: 10000000},

	// XP milestones
	{ID: "xp_1000", Name: "First Thousand", Description: "Earn 1,000 XP", Icon: "💰", Requirement: 1000, Type: TypeSpecial, XPReward: 100},
	{ID: "xp_5000", Name: "Five K Club", Description: "Earn 5,000 XP", Icon: "💵", Requirement: 5000, Type: TypeSpecial, XPReward: 500},
	{ID: "xp_10000", Name: "Ten Thousand", Description: "Earn 10,000 XP", Icon: "💴", Requirement: 10000, Type: TypeSpecial, XPReward: 1000},
	{ID: "xp_25000", Name: "XP Enthusiast", Description: "Earn 25,000 XP", Icon: "💶", Requirement: 25000, Type: TypeSpecial, XPReward: 2500},
	{ID: "xp_50000", Name: "XP Addict", Description: "Earn 50,000 XP", Icon: "💷", Requirement: 50000, Type: TypeSpecial, XPReward: 5000},
	{ID: "xp_100000", Name: "XP Millionaire", Description: "Earn 100,000 XP", Icon: "💎", Requirement: 100000, Type: TypeSpecial, XPReward: 10000},
	{ID: "xp_250000", Name: "XP Mogul", Description: "Earn 250,000 XP", Icon: "🏦", Requirement: 250000, Type: TypeSpecial, XPReward: 25000},
	{ID: "xp_500000", Name: "XP Tycoon", Description: "Earn 500,000 XP", Icon: "🏰", Requirement: 500000, Type: TypeSpecial, XPReward: 50000},
	{ID: "xp_1000000", Name: "XP Billionaire", Description: "Earn 1,000,000 XP", Icon: "👸", Requirement: 1000000, Type: TypeSpecial, XPReward: 100000},
	{ID: "xp_5000000", Name: "XP Emperor", Description: "Earn 5,000,000 XP", Icon: "👑", Requirement: 5000000, Type: TypeSpecial, XPReward: 500000},
	{ID: "xp_10000000", Name: "XP God", Description: "Earn 10,000,000 XP", Icon: "🌟", Requirement: 10000000, Type: TypeSpecial, XPReward: 1000000},
}
