package ledger_test

import (
	"testing"

	"github.com/limbo/godsaeng/internal/ledger"
	"github.com/stretchr/testify/assert"
)

func TestPresentedHungerClamps(t *testing.T) {
	// 80 stored, 3 idle days at 20/day: floors at 20, never negative
	assert.Equal(t, 20, ledger.PresentedHunger(80, 3))
	assert.Equal(t, 0, ledger.PresentedHunger(80, 5))
	assert.Equal(t, 0, ledger.PresentedHunger(10, ledger.GapNever))
	// recovery on an active day caps at 100
	assert.Equal(t, 100, ledger.PresentedHunger(90, 0))
	assert.Equal(t, 65, ledger.PresentedHunger(40, 0))
}

func TestRecoveryAndDecayAreExclusive(t *testing.T) {
	// gap 0 always takes the recovery branch, never decay
	assert.Equal(t, 100, ledger.PresentedHunger(80, 0))
	// gap > 0 always decays, even right after a near-full state
	assert.Equal(t, 80, ledger.PresentedHunger(100, 1))
}

func TestMoodPriorityOrder(t *testing.T) {
	tests := []struct {
		hunger, gap int
		want        string
	}{
		{95, 0, "ecstatic"}, // happy also matches, but ecstatic wins
		{95, 1, "happy"},    // ecstatic needs gap 0
		{80, 1, "happy"},
		{60, 1, "content"},
		{50, 2, "neutral"},
		{45, 3, "lonely"}, // neutral needs gap <= 2
		{30, 9, "lonely"},
		{10, 5, "weak"},
		{1, 0, "weak"},
		{0, 0, "fainted"},
		{0, 999, "fainted"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ledger.Mood(tt.hunger, tt.gap), "hunger=%d gap=%d", tt.hunger, tt.gap)
	}
}

func TestStageForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{1, "egg"},
		{2, "chick"},
		{3, "chicken"},
		{4, "chicken"},
		{5, "cat"},
		{7, "cat"},
		{8, "unicorn"},
		{30, "unicorn"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ledger.StageForLevel(tt.level), "level=%d", tt.level)
	}
}
