package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/godsaeng/internal/error_values"
	"github.com/limbo/godsaeng/internal/store"
	"github.com/limbo/godsaeng/pkg/entity"
)

// TimerService manages the per-subject study timers. Minutes accrue
// only on stop; a crash while running loses the open interval.
type TimerService struct {
	store store.DocumentStoreI
	now   func() time.Time
}

func NewTimerService(docStore store.DocumentStoreI) *TimerService {
	return NewTimerServiceWithClock(docStore, time.Now)
}

func NewTimerServiceWithClock(docStore store.DocumentStoreI, now func() time.Time) *TimerService {
	if docStore == nil {
		log.Fatal("provided nil document store")
	}
	return &TimerService{
		store: docStore,
		now:   now,
	}
}

func (ts *TimerService) List(ctx context.Context) ([]entity.Timer, error) {
	doc, err := ts.store.Load(ctx)
	if err != nil {
		return nil, errors.New("document store error: " + err.Error())
	}
	return doc.Timers, nil
}

func (ts *TimerService) Add(ctx context.Context, title string) (*entity.Timer, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errorvalues.ErrEmptyName
	}
	doc, err := ts.store.Load(ctx)
	if err != nil {
		return nil, errors.New("document store error: " + err.Error())
	}
	timer := entity.Timer{
		ID:    uuid.New(),
		Title: title,
	}
	doc.Timers = append(doc.Timers, timer)
	if err := ts.store.Save(ctx, doc); err != nil {
		return nil, errors.New("document store error: " + err.Error())
	}
	return &timer, nil
}

func (ts *TimerService) Start(ctx context.Context, id uuid.UUID) error {
	doc, err := ts.store.Load(ctx)
	if err != nil {
		return errors.New("document store error: " + err.Error())
	}
	timer := findTimer(doc, id)
	if timer == nil {
		return errorvalues.ErrTimerNotFound
	}
	if timer.Running {
		return errorvalues.ErrTimerRunning
	}
	startedAt := ts.now()
	timer.Running = true
	timer.StartTime = &startedAt
	if err := ts.store.Save(ctx, doc); err != nil {
		return errors.New("document store error: " + err.Error())
	}
	return nil
}

func (ts *TimerService) Stop(ctx context.Context, id uuid.UUID) (*entity.Timer, error) {
	doc, err := ts.store.Load(ctx)
	if err != nil {
		return nil, errors.New("document store error: " + err.Error())
	}
	timer := findTimer(doc, id)
	if timer == nil {
		return nil, errorvalues.ErrTimerNotFound
	}
	if !timer.Running || timer.StartTime == nil {
		return nil, errorvalues.ErrTimerNotRunning
	}
	timer.Minutes += int(ts.now().Sub(*timer.StartTime).Minutes())
	timer.Running = false
	timer.StartTime = nil
	if err := ts.store.Save(ctx, doc); err != nil {
		return nil, errors.New("document store error: " + err.Error())
	}
	stopped := *timer
	return &stopped, nil
}

func (ts *TimerService) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := ts.store.Load(ctx)
	if err != nil {
		return errors.New("document store error: " + err.Error())
	}
	kept := doc.Timers[:0]
	for _, timer := range doc.Timers {
		if timer.ID != id {
			kept = append(kept, timer)
		}
	}
	if len(kept) == len(doc.Timers) {
		return errorvalues.ErrTimerNotFound
	}
	doc.Timers = kept
	if err := ts.store.Save(ctx, doc); err != nil {
		return errors.New("document store error: " + err.Error())
	}
	return nil
}

func findTimer(doc *entity.Document, id uuid.UUID) *entity.Timer {
	for i := range doc.Timers {
		if doc.Timers[i].ID == id {
			return &doc.Timers[i]
		}
	}
	return nil
}
