package store

import (
	"github.com/limbo/godsaeng/internal/ledger"
	"github.com/limbo/godsaeng/pkg/entity"
)

// DefaultHabits is the starter habit table every fresh profile gets.
func DefaultHabits() []entity.HabitDefinition {
	return []entity.HabitDefinition{
		{Name: "수학 문제 20분", XP: 10},
		{Name: "영어 단어 50개", XP: 12},
		{Name: "운동 30분", XP: 15},
		{Name: "정리/루틴 체크", XP: 8},
	}
}

// DefaultDocument is what a first run, a wiped profile or a malformed
// stored document resolves to.
func DefaultDocument() *entity.Document {
	return &entity.Document{
		User:   entity.Profile{Name: "사용자", PetName: "알"},
		Habits: DefaultHabits(),
		Logs:   []entity.LogEntry{},
		Pet: entity.PetState{
			Hunger:     ledger.DefaultHunger,
			LastActive: nil,
			LastLevel:  1,
		},
		Timers:  []entity.Timer{},
		Friends: []entity.Friend{},
	}
}

// normalize backfills nil collections after decoding so callers can
// append without nil checks, and clamps persisted pet fields back into
// their invariant ranges.
func normalize(doc *entity.Document) *entity.Document {
	if doc.Habits == nil {
		doc.Habits = []entity.HabitDefinition{}
	}
	if doc.Logs == nil {
		doc.Logs = []entity.LogEntry{}
	}
	if doc.Timers == nil {
		doc.Timers = []entity.Timer{}
	}
	if doc.Friends == nil {
		doc.Friends = []entity.Friend{}
	}
	if doc.Pet.Hunger < 0 {
		doc.Pet.Hunger = 0
	}
	if doc.Pet.Hunger > ledger.HungerMax {
		doc.Pet.Hunger = ledger.HungerMax
	}
	if doc.Pet.LastLevel < 1 {
		doc.Pet.LastLevel = 1
	}
	return doc
}
