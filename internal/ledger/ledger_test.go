package ledger_test

import (
	"testing"
	"time"

	"github.com/limbo/godsaeng/internal/ledger"
	"github.com/limbo/godsaeng/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2025, 9, 14, 15, 30, 0, 0, time.UTC)

func day(offset int) string {
	return today.AddDate(0, 0, offset).Format(entity.DateLayout)
}

var testHabits = []entity.HabitDefinition{
	{Name: "수학 문제 20분", XP: 10},
	{Name: "운동 30분", XP: 15},
}

func TestDailyXPIsExact(t *testing.T) {
	logs := []entity.LogEntry{
		{Date: day(0), StudyMinutes: 60, HabitsCompleted: []string{"운동 30분"}},
	}
	days := ledger.BuildDays(logs, testHabits)
	require.Len(t, days, 1)
	assert.Equal(t, 30.0, days[0].StudyXP)
	assert.Equal(t, 15.0, days[0].HabitXP)
	assert.Equal(t, 45.0, days[0].TotalXP)
	assert.Equal(t, 45.0, days[0].CumulativeXP)

	level, earned, needed := ledger.LevelProgress(ledger.TotalXP(days))
	assert.Equal(t, 1, level)
	assert.Equal(t, 45.0, earned)
	assert.Equal(t, 55.0, needed)
}

func TestCumulativeXPIgnoresInsertionOrder(t *testing.T) {
	ordered := []entity.LogEntry{
		{Date: day(-2), StudyMinutes: 30},
		{Date: day(-1), StudyMinutes: 20, HabitsCompleted: []string{"수학 문제 20분"}},
		{Date: day(0), StudyMinutes: 10},
	}
	shuffled := []entity.LogEntry{ordered[2], ordered[0], ordered[1]}
	assert.Equal(t, ledger.BuildDays(ordered, testHabits), ledger.BuildDays(shuffled, testHabits))
}

func TestDuplicateDateEntriesAreSummed(t *testing.T) {
	logs := []entity.LogEntry{
		{Date: day(0), StudyMinutes: 20, HabitsCompleted: []string{"운동 30분"}},
		{Date: day(0), StudyMinutes: 40},
	}
	days := ledger.BuildDays(logs, testHabits)
	require.Len(t, days, 1)
	assert.Equal(t, 60, days[0].StudyMinutes)
	assert.Equal(t, 45.0, days[0].TotalXP)
}

func TestStaleHabitReferenceEarnsZero(t *testing.T) {
	logs := []entity.LogEntry{
		{Date: day(0), HabitsCompleted: []string{"deleted habit", "운동 30분"}},
	}
	days := ledger.BuildDays(logs, testHabits)
	require.Len(t, days, 1)
	assert.Equal(t, 15.0, days[0].HabitXP)
}

func TestRepeatedHabitCompletionsEachEarnXP(t *testing.T) {
	logs := []entity.LogEntry{
		{Date: day(0), HabitsCompleted: []string{"운동 30분", "운동 30분", "운동 30분"}},
	}
	days := ledger.BuildDays(logs, testHabits)
	require.Len(t, days, 1)
	assert.Equal(t, 45.0, days[0].HabitXP)
}

func TestLevelProgressInvariant(t *testing.T) {
	for _, xp := range []float64{0, 1, 45, 99.5, 100, 100.5, 250, 1000} {
		level, earned, needed := ledger.LevelProgress(xp)
		assert.GreaterOrEqual(t, needed, 0.0, "xp=%v", xp)
		assert.Equal(t, ledger.LevelXP, earned+needed, "xp=%v", xp)
		assert.Equal(t, ledger.LevelFromXP(xp), level, "xp=%v", xp)
	}
	assert.Equal(t, 1, ledger.LevelFromXP(0))
	assert.Equal(t, 1, ledger.LevelFromXP(99.9))
	assert.Equal(t, 2, ledger.LevelFromXP(100))
	assert.Equal(t, 4, ledger.LevelFromXP(350))
}

func TestBlankEntryForTodayBreaksStreak(t *testing.T) {
	logs := []entity.LogEntry{
		{Date: day(-1), StudyMinutes: 45},
		{Date: day(0), StudyMinutes: 0},
	}
	days := ledger.BuildDays(logs, testHabits)
	assert.Equal(t, 0, ledger.CurrentStreak(days, today))
}

func TestStreakCountsBackFromToday(t *testing.T) {
	logs := []entity.LogEntry{
		{Date: day(-4), StudyMinutes: 10},
		// day(-3) missing: streak must stop here
		{Date: day(-2), HabitsCompleted: []string{"운동 30분"}},
		{Date: day(-1), StudyMinutes: 30},
		{Date: day(0), StudyMinutes: 5},
	}
	days := ledger.BuildDays(logs, testHabits)
	assert.Equal(t, 3, ledger.CurrentStreak(days, today))
}

func TestActivityGap(t *testing.T) {
	assert.Equal(t, ledger.GapNever, ledger.DaysSinceActivity(nil, today))

	logs := []entity.LogEntry{{Date: day(-3), StudyMinutes: 15}}
	days := ledger.BuildDays(logs, testHabits)
	assert.Equal(t, 3, ledger.DaysSinceActivity(days, today))

	blankOnly := ledger.BuildDays([]entity.LogEntry{{Date: day(0)}}, testHabits)
	assert.Equal(t, ledger.GapNever, ledger.DaysSinceActivity(blankOnly, today))
}

func TestComputeMetricsEmptyLogs(t *testing.T) {
	pet := entity.PetState{Hunger: ledger.DefaultHunger, LastLevel: 1}
	m := ledger.ComputeMetrics(nil, testHabits, pet, today)
	assert.Empty(t, m.PerDayXP)
	assert.Equal(t, 0.0, m.TotalXP)
	assert.Equal(t, 1, m.Level)
	assert.Equal(t, ledger.LevelXP, m.XPNeededForNextLevel)
	assert.Equal(t, 0, m.StreakDays)
	assert.Equal(t, ledger.GapNever, m.ActivityGapDays)
	assert.Equal(t, 0, m.Hunger)
	assert.Equal(t, "fainted", m.MoodLabel)
	assert.Equal(t, "egg", m.EvolutionStage)
	assert.False(t, m.LeveledUp)
}

func TestComputeMetricsFlagsLevelCrossing(t *testing.T) {
	logs := []entity.LogEntry{
		{Date: day(-1), StudyMinutes: 150},
		{Date: day(0), StudyMinutes: 100, HabitsCompleted: []string{"운동 30분"}},
	}
	pet := entity.PetState{Hunger: 80, LastLevel: 1}
	m := ledger.ComputeMetrics(logs, testHabits, pet, today)
	assert.Equal(t, 140.0, m.TotalXP)
	assert.Equal(t, 2, m.Level)
	assert.True(t, m.LeveledUp)
	assert.Equal(t, "chick", m.EvolutionStage)

	pet.LastLevel = 2
	m = ledger.ComputeMetrics(logs, testHabits, pet, today)
	assert.False(t, m.LeveledUp)
}

func TestComputeMetricsIsPure(t *testing.T) {
	logs := []entity.LogEntry{{Date: day(0), StudyMinutes: 30}}
	pet := entity.PetState{Hunger: 40, LastLevel: 1}
	first := ledger.ComputeMetrics(logs, testHabits, pet, today)
	second := ledger.ComputeMetrics(logs, testHabits, pet, today)
	assert.Equal(t, first, second)
	assert.Equal(t, 40, pet.Hunger, "pet state must not be mutated")
}
