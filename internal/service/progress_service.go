package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/godsaeng/internal/error_values"
	"github.com/limbo/godsaeng/internal/ledger"
	"github.com/limbo/godsaeng/internal/store"
	"github.com/limbo/godsaeng/pkg/entity"
)

const notesSeparator = "\n"

type ProgressService struct {
	store store.DocumentStoreI
	now   func() time.Time
}

func NewProgressService(docStore store.DocumentStoreI) *ProgressService {
	return NewProgressServiceWithClock(docStore, time.Now)
}

func NewProgressServiceWithClock(docStore store.DocumentStoreI, now func() time.Time) *ProgressService {
	if docStore == nil {
		log.Fatal("provided nil document store")
	}
	return &ProgressService{
		store: docStore,
		now:   now,
	}
}

func (ps *ProgressService) GetProgress(ctx context.Context) (*entity.Metrics, error) {
	doc, err := ps.store.Load(ctx)
	if err != nil {
		return nil, errors.New("document store error: " + err.Error())
	}
	metrics := ledger.ComputeMetrics(doc.Logs, doc.Habits, doc.Pet, ps.now())
	if metrics.LeveledUp {
		// Commit the crossed level right away so repeated recomputes
		// don't re-trigger the celebration.
		doc.Pet.LastLevel = metrics.Level
		if err := ps.store.Save(ctx, doc); err != nil {
			return nil, errors.New("committing level error: " + err.Error())
		}
	}
	return &metrics, nil
}

func (ps *ProgressService) RecordActivity(ctx context.Context, req *RecordActivityRequest) error {
	day, err := time.Parse(entity.DateLayout, req.Date)
	if err != nil {
		return errorvalues.ErrInvalidDate
	}
	today := ps.now()
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if day.After(midnight) {
		return errorvalues.ErrDateInFuture
	}
	if req.StudyMinutes < 0 {
		return errorvalues.ErrNegativeMinutes
	}
	if req.StudyMinutes == 0 && len(req.Habits) == 0 {
		return errorvalues.ErrNothingToRecord
	}
	mode := req.Mode
	if mode == "" {
		mode = ModeOverwrite
	}
	if mode != ModeAccumulate && mode != ModeOverwrite {
		return errorvalues.ErrInvalidWriteMode
	}
	doc, err := ps.store.Load(ctx)
	if err != nil {
		return errors.New("document store error: " + err.Error())
	}
	upsertLog(doc, req, mode)
	// Hunger and last_active come from the pre-write pet state and land
	// together with the log entry in one document write.
	doc.Pet.Hunger = min(ledger.HungerMax, doc.Pet.Hunger+ledger.HungerGainPerActivity)
	dateCopy := req.Date
	doc.Pet.LastActive = &dateCopy
	if err := ps.store.Save(ctx, doc); err != nil {
		return errors.New("document store error: " + err.Error())
	}
	return nil
}

func upsertLog(doc *entity.Document, req *RecordActivityRequest, mode WriteMode) {
	for i := range doc.Logs {
		if doc.Logs[i].Date != req.Date {
			continue
		}
		if mode == ModeAccumulate {
			doc.Logs[i].StudyMinutes += req.StudyMinutes
			doc.Logs[i].HabitsCompleted = append(doc.Logs[i].HabitsCompleted, req.Habits...)
			if req.Notes != "" {
				if doc.Logs[i].Notes != "" {
					doc.Logs[i].Notes += notesSeparator + req.Notes
				} else {
					doc.Logs[i].Notes = req.Notes
				}
			}
		} else {
			doc.Logs[i].StudyMinutes = req.StudyMinutes
			doc.Logs[i].HabitsCompleted = append([]string{}, req.Habits...)
			doc.Logs[i].Notes = req.Notes
		}
		return
	}
	doc.Logs = append(doc.Logs, entity.LogEntry{
		Date:            req.Date,
		StudyMinutes:    req.StudyMinutes,
		HabitsCompleted: append([]string{}, req.Habits...),
		Notes:           req.Notes,
	})
}

func (ps *ProgressService) DeleteDay(ctx context.Context, date string) (bool, error) {
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return false, errorvalues.ErrInvalidDate
	}
	doc, err := ps.store.Load(ctx)
	if err != nil {
		return false, errors.New("document store error: " + err.Error())
	}
	kept := doc.Logs[:0]
	for _, entry := range doc.Logs {
		if entry.Date != date {
			kept = append(kept, entry)
		}
	}
	removed := len(kept) != len(doc.Logs)
	if !removed {
		return false, nil
	}
	doc.Logs = kept
	if err := ps.store.Save(ctx, doc); err != nil {
		return false, errors.New("document store error: " + err.Error())
	}
	return true, nil
}

func (ps *ProgressService) ResetToday(ctx context.Context) error {
	_, err := ps.DeleteDay(ctx, ps.now().Format(entity.DateLayout))
	return err
}

func (ps *ProgressService) ResetAll(ctx context.Context) error {
	if err := ps.store.Save(ctx, store.DefaultDocument()); err != nil {
		return errors.New("document store error: " + err.Error())
	}
	return nil
}

func (ps *ProgressService) GetHabits(ctx context.Context) ([]entity.HabitDefinition, error) {
	doc, err := ps.store.Load(ctx)
	if err != nil {
		return nil, errors.New("document store error: " + err.Error())
	}
	return doc.Habits, nil
}

func (ps *ProgressService) SaveHabits(ctx context.Context, defs []entity.HabitDefinition) error {
	cleaned := make([]entity.HabitDefinition, 0, len(defs))
	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		if err := validate.Struct(def); err != nil {
			if validationError, ok := err.(validator.ValidationErrors); ok {
				err = errors.New("habit validation error:")
				for _, fieldErr := range validationError {
					err = errors.Join(err, fieldErr)
				}
				return err
			}
			return errors.New("validation unexpected error: " + err.Error())
		}
		def.Name = strings.TrimSpace(def.Name)
		if seen[def.Name] {
			continue
		}
		seen[def.Name] = true
		cleaned = append(cleaned, def)
	}
	if len(cleaned) == 0 {
		return errorvalues.ErrEmptyHabitTable
	}
	doc, err := ps.store.Load(ctx)
	if err != nil {
		return errors.New("document store error: " + err.Error())
	}
	doc.Habits = cleaned
	if err := ps.store.Save(ctx, doc); err != nil {
		return errors.New("document store error: " + err.Error())
	}
	return nil
}

func (ps *ProgressService) GetProfile(ctx context.Context) (*entity.Profile, error) {
	doc, err := ps.store.Load(ctx)
	if err != nil {
		return nil, errors.New("document store error: " + err.Error())
	}
	return &doc.User, nil
}

func (ps *ProgressService) SaveProfile(ctx context.Context, name, petName string) (*entity.Profile, error) {
	doc, err := ps.store.Load(ctx)
	if err != nil {
		return nil, errors.New("document store error: " + err.Error())
	}
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		doc.User.Name = trimmed
	}
	if trimmed := strings.TrimSpace(petName); trimmed != "" {
		doc.User.PetName = trimmed
	}
	if err := ps.store.Save(ctx, doc); err != nil {
		return nil, errors.New("document store error: " + err.Error())
	}
	return &doc.User, nil
}
