package errorvalues

import "errors"

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrDateInFuture     = errors.New("date is in the future")
	ErrNothingToRecord  = errors.New("nothing to record")
	ErrNegativeMinutes  = errors.New("study minutes can't be negative")
	ErrInvalidWriteMode = errors.New("unknown write mode")
	ErrEmptyHabitTable  = errors.New("habit table can't be empty")
	ErrTimerNotFound    = errors.New("timer doesn't exist")
	ErrTimerRunning     = errors.New("timer is already running")
	ErrTimerNotRunning  = errors.New("timer isn't running")
	ErrEmptyName        = errors.New("name can't be empty")
	ErrEmptyQuery       = errors.New("query text can't be empty")
	ErrInvalidToken     = errors.New("invalid token")
)
