package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/godsaeng/internal/error_values"
	"github.com/limbo/godsaeng/internal/service"
	"github.com/limbo/godsaeng/pkg/entity"
	"github.com/limbo/godsaeng/pkg/httputil"
)

type RecordActivityRequest struct {
	Date         string   `json:"date"`
	StudyMinutes int      `json:"study_minutes"`
	Habits       []string `json:"habits_completed"`
	Notes        string   `json:"notes"`
	Mode         string   `json:"mode"`
}

type SaveHabitsRequest struct {
	Habits []entity.HabitDefinition `json:"habits"`
}

type SaveProfileRequest struct {
	Name    string `json:"name"`
	PetName string `json:"pet_name"`
}

type AddTimerRequest struct {
	Title string `json:"title"`
}

type AddFriendRequest struct {
	Name string `json:"name"`
}

func (s *Server) CreateSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	profile, err := s.progress.GetProfile(ctx)
	if err != nil {
		logger.Error("session error: loading profile failed", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while loading profile", nil)
		return
	}
	token, err := s.jwtService.GenerateToken(profile.Name)
	if err != nil {
		logger.Error("session error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"name":  profile.Name,
		"token": token,
	})
	logger.Info("session issued")
}

func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	metrics, err := s.progress.GetProgress(ctx)
	if err != nil {
		logger.Error("progress error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while computing progress", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, metrics)
	logger.Info("progress provided")
}

func (s *Server) GetAdvice(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	advice, err := s.advice.Advise(r.URL.Query().Get("q"))
	if err != nil {
		if errors.Is(err, errorvalues.ErrEmptyQuery) {
			logger.Error("advice error: empty query")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "query text is required", nil)
			return
		}
		logger.Error("advice error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while advising", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, advice)
	logger.Info("advice provided", slog.String("topic", advice.Topic))
}

func (s *Server) RecordActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RecordActivityRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("record activity error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.progress.RecordActivity(ctx, &service.RecordActivityRequest{
		Date:         req.Date,
		StudyMinutes: req.StudyMinutes,
		Habits:       req.Habits,
		Notes:        req.Notes,
		Mode:         service.WriteMode(req.Mode),
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrInvalidDate), errors.Is(err, errorvalues.ErrDateInFuture),
			errors.Is(err, errorvalues.ErrNegativeMinutes), errors.Is(err, errorvalues.ErrInvalidWriteMode):
			logger.Error("record activity error: bad input", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, errorvalues.ErrNothingToRecord):
			logger.Error("record activity error: empty write")
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "nothing to record", nil)
		default:
			logger.Error("record activity error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while recording activity", nil)
		}
		return
	}
	httputil.WriteMessage(w, http.StatusCreated, "recorded")
	logger.Info("activity recorded", slog.String("date", req.Date))
}

func (s *Server) DeleteLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date := chi.URLParam(r, "date")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	removed, err := s.progress.DeleteDay(ctx, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidDate) {
			logger.Error("log deletion error: invalid date in path value")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date in path value", nil)
			return
		}
		logger.Error("log deletion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting log", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"date":    date,
		"removed": removed,
	})
	logger.Info("log deletion handled", slog.String("date", date), slog.Bool("removed", removed))
}

func (s *Server) ResetToday(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := s.progress.ResetToday(ctx); err != nil {
		logger.Error("reset today error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resetting today", nil)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "today's log cleared")
	logger.Info("today reset")
}

func (s *Server) ResetAll(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := s.progress.ResetAll(ctx); err != nil {
		logger.Error("reset all error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resetting profile", nil)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "profile reset to defaults")
	logger.Info("profile reset")
}

func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	habits, err := s.progress.GetHabits(ctx)
	if err != nil {
		logger.Error("get habits error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting habits", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"habits": habits})
	logger.Info("habits provided")
}

func (s *Server) SaveHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SaveHabitsRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("save habits error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.progress.SaveHabits(ctx, req.Habits)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEmptyHabitTable) {
			logger.Error("save habits error: empty table")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "habit table can't be empty", nil)
			return
		}
		logger.Error("save habits error: rejected", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit table", err)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "habits saved")
	logger.Info("habits saved")
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	profile, err := s.progress.GetProfile(ctx)
	if err != nil {
		logger.Error("get profile error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting profile", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
	logger.Info("profile provided")
}

func (s *Server) SaveProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SaveProfileRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("save profile error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	profile, err := s.progress.SaveProfile(ctx, req.Name, req.PetName)
	if err != nil {
		logger.Error("save profile error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving profile", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
	logger.Info("profile saved")
}

func (s *Server) ListTimers(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	timers, err := s.timers.List(ctx)
	if err != nil {
		logger.Error("list timers error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while listing timers", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"timers": timers})
	logger.Info("timers provided")
}

func (s *Server) AddTimer(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req AddTimerRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add timer error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	timer, err := s.timers.Add(ctx, req.Title)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEmptyName) {
			logger.Error("add timer error: empty title")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "timer title is required", nil)
			return
		}
		logger.Error("add timer error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while adding timer", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, timer)
	logger.Info("timer added", slog.String("timer_id", timer.ID.String()))
}

func (s *Server) StartTimer(w http.ResponseWriter, r *http.Request) {
	s.switchTimer(w, r, "start")
}

func (s *Server) StopTimer(w http.ResponseWriter, r *http.Request) {
	s.switchTimer(w, r, "stop")
}

func (s *Server) switchTimer(w http.ResponseWriter, r *http.Request, action string) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("timer error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid timer id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	var body any
	if action == "start" {
		err = s.timers.Start(ctx, id)
		body = map[string]any{"id": id.String(), "running": true}
	} else {
		var timer *entity.Timer
		timer, err = s.timers.Stop(ctx, id)
		body = timer
	}
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrTimerNotFound):
			logger.Error("timer error: unexist timer")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "timer doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrTimerRunning), errors.Is(err, errorvalues.ErrTimerNotRunning):
			logger.Error("timer error: wrong state", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusConflict, err.Error(), nil)
		default:
			logger.Error("timer error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while switching timer", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, body)
	logger.Info("timer switched", slog.String("action", action), slog.String("timer_id", id.String()))
}

func (s *Server) DeleteTimer(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("timer deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid timer id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := s.timers.Delete(ctx, id); err != nil {
		if errors.Is(err, errorvalues.ErrTimerNotFound) {
			logger.Error("timer deletion error: unexist timer")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "timer doesn't exist", nil)
			return
		}
		logger.Error("timer deletion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting timer", nil)
		return
	}
	httputil.WriteMessage(w, http.StatusOK, "timer deleted")
	logger.Info("timer deleted", slog.String("timer_id", id.String()))
}

func (s *Server) ListFriends(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	friends, err := s.friends.List(ctx)
	if err != nil {
		logger.Error("list friends error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while listing friends", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"friends": friends})
	logger.Info("friends provided")
}

func (s *Server) AddFriend(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req AddFriendRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("add friend error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	friend, err := s.friends.Add(ctx, req.Name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEmptyName) {
			logger.Error("add friend error: empty name")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "friend name is required", nil)
			return
		}
		logger.Error("add friend error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while adding friend", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, friend)
	logger.Info("friend added", slog.String("friend_id", friend.ID.String()))
}
