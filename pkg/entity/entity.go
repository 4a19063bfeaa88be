package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the canonical calendar date format used everywhere:
// log keys, pet state and the persisted document.
const DateLayout = "2006-01-02"

type Profile struct {
	Name    string `json:"name"`
	PetName string `json:"pet_name"`
}

type HabitDefinition struct {
	Name string  `json:"name" validate:"required,notblank,max=100"`
	XP   float64 `json:"xp" validate:"gte=0"`
}

// LogEntry holds one calendar day of recorded activity. Date is the
// unique key; habit names may repeat and each occurrence earns XP.
type LogEntry struct {
	Date            string   `json:"date"`
	StudyMinutes    int      `json:"study_minutes"`
	HabitsCompleted []string `json:"habits_completed"`
	Notes           string   `json:"notes"`
}

// PetState is the small persisted part of the pet. Hunger stays within
// [0,100]; LastLevel only ever grows and marks the last level for which
// an evolution celebration was shown.
type PetState struct {
	Hunger     int     `json:"hunger"`
	LastActive *string `json:"last_active"`
	LastLevel  int     `json:"last_level"`
}

type Timer struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Minutes   int        `json:"minutes"`
	Running   bool       `json:"running"`
	StartTime *time.Time `json:"start_time"`
}

type Friend struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	XP   float64   `json:"xp"`
}

// Document is the whole persisted state of one profile. Stores replace
// it wholesale on every write.
type Document struct {
	User    Profile           `json:"user"`
	Habits  []HabitDefinition `json:"habits"`
	Logs    []LogEntry        `json:"logs"`
	Pet     PetState          `json:"pet"`
	Timers  []Timer           `json:"timers"`
	Friends []Friend          `json:"friends"`
}

// DayXP is one row of the derived per-day XP breakdown, ascending by date.
type DayXP struct {
	Date         string  `json:"date"`
	StudyMinutes int     `json:"study_minutes"`
	HabitsCount  int     `json:"habits_count"`
	StudyXP      float64 `json:"xp_from_study"`
	HabitXP      float64 `json:"xp_from_habits"`
	TotalXP      float64 `json:"xp_total_day"`
	CumulativeXP float64 `json:"xp_cum"`
}

// Metrics is everything the presentation layer needs, derived from the
// document. Never persisted.
type Metrics struct {
	PerDayXP             []DayXP `json:"per_day_xp"`
	TotalXP              float64 `json:"total_xp"`
	Level                int     `json:"level"`
	XPEarnedInLevel      float64 `json:"xp_earned_in_level"`
	XPNeededForNextLevel float64 `json:"xp_needed_for_next_level"`
	StreakDays           int     `json:"streak_days"`
	ActivityGapDays      int     `json:"activity_gap_days"`
	Hunger               int     `json:"hunger"`
	MoodLabel            string  `json:"mood_label"`
	EvolutionStage       string  `json:"evolution_stage"`
	LeveledUp            bool    `json:"leveled_up"`
}
