package ledger

const (
	HungerDecayPerDay     = 20
	HungerGainPerActivity = 25
	HungerMax             = 100
	DefaultHunger         = 80
)

// moodRules are evaluated top-down over (hunger, gap); the first match
// wins, so a higher rule shadows every rule below it.
var moodRules = []struct {
	label string
	match func(hunger, gap int) bool
}{
	{"ecstatic", func(h, g int) bool { return h >= 90 && g == 0 }},
	{"happy", func(h, g int) bool { return h >= 75 && g <= 1 }},
	{"content", func(h, g int) bool { return h >= 60 && g <= 1 }},
	{"neutral", func(h, g int) bool { return h >= 45 && g <= 2 }},
	{"lonely", func(h, g int) bool { return h >= 30 }},
	{"weak", func(h, g int) bool { return h > 0 }},
}

const moodFainted = "fainted"

func Mood(hunger, gap int) string {
	for _, rule := range moodRules {
		if rule.match(hunger, gap) {
			return rule.label
		}
	}
	return moodFainted
}

// PresentedHunger recomputes hunger from the stored value and the
// activity gap. Recovery applies only on an active day (gap 0), decay
// only on idle days; the two branches never combine. The result is
// clamped to [0,100] and is not persisted here.
func PresentedHunger(stored, gap int) int {
	if gap == 0 {
		return min(HungerMax, stored+HungerGainPerActivity)
	}
	return max(0, stored-gap*HungerDecayPerDay)
}

// evolutionStages maps the lowest level unlocking each stage, ascending.
var evolutionStages = []struct {
	level int
	name  string
}{
	{1, "egg"},
	{2, "chick"},
	{3, "chicken"},
	{5, "cat"},
	{8, "unicorn"},
}

// StageForLevel picks the highest stage whose threshold doesn't exceed
// the level.
func StageForLevel(level int) string {
	stage := evolutionStages[0].name
	for _, s := range evolutionStages {
		if level >= s.level {
			stage = s.name
		}
	}
	return stage
}
