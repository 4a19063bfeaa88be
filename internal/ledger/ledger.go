// Package ledger derives all display metrics of the study RPG from the
// raw log collection: per-day and cumulative XP, level, streak, the
// activity gap and the pet state. Everything here is pure: the same
// inputs always give the same Metrics and nothing is mutated.
package ledger

import (
	"sort"
	"time"

	"github.com/limbo/godsaeng/pkg/entity"
)

const (
	XPPerMinute = 0.5
	// LevelXP is the fixed XP span of one level. Levels start at 1.
	LevelXP = 100.0
	// GapNever stands in for "no qualifying activity ever recorded".
	GapNever = 999
)

// BuildDays collapses the log collection into one row per calendar
// date, ascending. Duplicate-date entries are a caller error but are
// tolerated by summing them. Stale habit references earn zero XP;
// repeated completions of the same habit each earn the full reward.
func BuildDays(logs []entity.LogEntry, habits []entity.HabitDefinition) []entity.DayXP {
	rewards := make(map[string]float64, len(habits))
	for _, h := range habits {
		rewards[h.Name] = h.XP
	}
	byDate := make(map[string]*entity.DayXP)
	for _, log := range logs {
		if _, err := time.Parse(entity.DateLayout, log.Date); err != nil {
			continue
		}
		day, ok := byDate[log.Date]
		if !ok {
			day = &entity.DayXP{Date: log.Date}
			byDate[log.Date] = day
		}
		day.StudyMinutes += log.StudyMinutes
		day.HabitsCount += len(log.HabitsCompleted)
		day.StudyXP += float64(log.StudyMinutes) * XPPerMinute
		for _, name := range log.HabitsCompleted {
			day.HabitXP += rewards[name]
		}
	}
	days := make([]entity.DayXP, 0, len(byDate))
	for _, day := range byDate {
		day.TotalXP = day.StudyXP + day.HabitXP
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	cum := 0.0
	for i := range days {
		cum += days[i].TotalXP
		days[i].CumulativeXP = cum
	}
	return days
}

func TotalXP(days []entity.DayXP) float64 {
	if len(days) == 0 {
		return 0
	}
	return days[len(days)-1].CumulativeXP
}

func LevelFromXP(xp float64) int {
	return int(xp/LevelXP) + 1
}

// LevelProgress splits xp into the portion earned within the current
// level and the remainder to the next one. The two always sum to
// LevelXP and needed is never negative.
func LevelProgress(xp float64) (level int, earned, needed float64) {
	level = LevelFromXP(xp)
	base := float64(level-1) * LevelXP
	earned = xp - base
	needed = LevelXP - earned
	if needed < 0 {
		needed = 0
	}
	return level, earned, needed
}

// CurrentStreak counts consecutive calendar days ending at today that
// carry qualifying activity. A day with an entry but zero minutes and
// no habits does not qualify, so a blank entry for today ends the
// streak at 0.
func CurrentStreak(days []entity.DayXP, today time.Time) int {
	active := make(map[string]bool, len(days))
	for _, day := range days {
		if day.StudyMinutes > 0 || day.HabitsCount > 0 {
			active[day.Date] = true
		}
	}
	streak := 0
	for d := today; active[d.Format(entity.DateLayout)]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// DaysSinceActivity returns the gap between today and the most recent
// qualifying day, or GapNever when no such day exists.
func DaysSinceActivity(days []entity.DayXP, today time.Time) int {
	last := ""
	for _, day := range days {
		if day.StudyMinutes > 0 || day.HabitsCount > 0 {
			last = day.Date
		}
	}
	if last == "" {
		return GapNever
	}
	lastDay, err := time.Parse(entity.DateLayout, last)
	if err != nil {
		return GapNever
	}
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	gap := int(midnight.Sub(lastDay).Hours() / 24)
	if gap < 0 {
		return 0
	}
	return gap
}

// ComputeMetrics assembles the full metric set for the presentation
// layer. The pet state is read, never written: the recomputed hunger is
// presented only, and LeveledUp flags a level beyond pet.LastLevel that
// the caller still has to commit.
func ComputeMetrics(logs []entity.LogEntry, habits []entity.HabitDefinition, pet entity.PetState, today time.Time) entity.Metrics {
	days := BuildDays(logs, habits)
	total := TotalXP(days)
	level, earned, needed := LevelProgress(total)
	gap := DaysSinceActivity(days, today)
	hunger := PresentedHunger(pet.Hunger, gap)
	return entity.Metrics{
		PerDayXP:             days,
		TotalXP:              total,
		Level:                level,
		XPEarnedInLevel:      earned,
		XPNeededForNextLevel: needed,
		StreakDays:           CurrentStreak(days, today),
		ActivityGapDays:      gap,
		Hunger:               hunger,
		MoodLabel:            Mood(hunger, gap),
		EvolutionStage:       StageForLevel(level),
		LeveledUp:            level > pet.LastLevel,
	}
}
