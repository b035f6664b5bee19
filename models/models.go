package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// HabitColors is the fixed color palette accepted by the API.
var HabitColors = []string{"purple", "pink", "blue", "green", "orange", "teal"}

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"unique" json:"username"`
	PasswordHash string     `json:"-"`
	Role         string     `gorm:"default:user" json:"role"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	Habits       []Habit    `gorm:"foreignKey:UserID" json:"habits,omitempty"`
	GameState    *GameState `gorm:"foreignKey:UserID" json:"game_state,omitempty"`
}

type Habit struct {
	ID          string            `gorm:"primaryKey" json:"id"` // uuid
	UserID      uint              `gorm:"index" json:"user_id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Icon        string            `json:"icon"`
	Color       string            `gorm:"default:purple" json:"color"`
	Frequency   string            `gorm:"default:daily" json:"frequency"` // daily, weekly, custom
	TargetDays  string            `json:"target_days"`                    // comma-joined weekday indices 0-6
	Streak      int               `gorm:"default:0" json:"streak"`
	BestStreak  int               `gorm:"default:0" json:"best_streak"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	Completions []HabitCompletion `gorm:"foreignKey:HabitID;constraint:OnDelete:CASCADE" json:"completions,omitempty"`
}

// HabitCompletion is one completed calendar day for a habit. Date is the
// YYYY-MM-DD day string; (habit_id, date) is unique.
type HabitCompletion struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	HabitID string `gorm:"uniqueIndex:idx_habit_date" json:"habit_id"`
	Date    string `gorm:"uniqueIndex:idx_habit_date;size:10" json:"date"`
}

// GameState is the persisted gamification record, one row per user.
// LastCompletionDate stays empty until the first completion.
type GameState struct {
	UserID             uint      `gorm:"primaryKey" json:"user_id"`
	XP                 int       `gorm:"default:0" json:"xp"`
	CurrentCombo       int       `gorm:"default:0" json:"current_combo"`
	MaxCombo           int       `gorm:"default:0" json:"max_combo"`
	LastCompletionDate string    `gorm:"size:10" json:"last_completion_date"`
	StreakShields      int       `gorm:"default:3" json:"streak_shields"`
	SoundEnabled       bool      `gorm:"default:true" json:"sound_enabled"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// AchievementUnlock records one unlocked catalog entry for a user. The
// catalog definitions themselves are static data in the game package.
type AchievementUnlock struct {
	UserID        uint      `gorm:"primaryKey" json:"user_id"`
	AchievementID string    `gorm:"primaryKey" json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}
