package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/godsaeng/pkg/entity"
)

// WriteMode selects upsert semantics for RecordActivity. Accumulate
// adds minutes and appends habits/notes to an existing entry;
// Overwrite replaces the entry entirely.
type WriteMode string

const (
	ModeAccumulate WriteMode = "accumulate"
	ModeOverwrite  WriteMode = "overwrite"
)

type RecordActivityRequest struct {
	Date         string
	StudyMinutes int
	Habits       []string
	Notes        string
	Mode         WriteMode
}

type ProgressServiceI interface {
	// Recomputes all derived metrics from the stored document. When a
	// level boundary was crossed the new level is committed to the pet
	// state before returning, so the celebration fires exactly once.
	GetProgress(ctx context.Context) (*entity.Metrics, error)
	// Upserts one day of activity and feeds the pet. Rejects invalid or
	// future dates and writes that carry no activity at all.
	RecordActivity(ctx context.Context, req *RecordActivityRequest) error
	// Removes the entry for date. Reports whether anything was removed;
	// deleting an absent date is a normal no-op.
	DeleteDay(ctx context.Context, date string) (bool, error)
	// Drops today's entry only.
	ResetToday(ctx context.Context) error
	// Restores the default document, wiping all state.
	ResetAll(ctx context.Context) error
	GetHabits(ctx context.Context) ([]entity.HabitDefinition, error)
	// Replaces the habit table after validating and deduplicating it.
	SaveHabits(ctx context.Context, defs []entity.HabitDefinition) error
	GetProfile(ctx context.Context) (*entity.Profile, error)
	// Renames the user and/or pet; blank fields keep their old value.
	SaveProfile(ctx context.Context, name, petName string) (*entity.Profile, error)
}

type TimerServiceI interface {
	List(ctx context.Context) ([]entity.Timer, error)
	Add(ctx context.Context, title string) (*entity.Timer, error)
	Start(ctx context.Context, id uuid.UUID) error
	// Stops a running timer and credits it with the elapsed whole minutes.
	Stop(ctx context.Context, id uuid.UUID) (*entity.Timer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type FriendServiceI interface {
	List(ctx context.Context) ([]entity.Friend, error)
	Add(ctx context.Context, name string) (*entity.Friend, error)
}

type Advice struct {
	Topic string `json:"topic"`
	Reply string `json:"reply"`
}

type AdviceServiceI interface {
	Advise(text string) (*Advice, error)
}
