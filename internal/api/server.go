package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/godsaeng/internal/service"
)

type Server struct {
	mx         *chi.Mux
	progress   service.ProgressServiceI
	timers     service.TimerServiceI
	friends    service.FriendServiceI
	advice     service.AdviceServiceI
	jwtService JWTServiceI
}

type ServicesList struct {
	ProgressService service.ProgressServiceI
	TimerService    service.TimerServiceI
	FriendService   service.FriendServiceI
	AdviceService   service.AdviceServiceI
	JwtService      JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:         chi.NewMux(),
		progress:   servicesOptions.ProgressService,
		timers:     servicesOptions.TimerService,
		friends:    servicesOptions.FriendService,
		advice:     servicesOptions.AdviceService,
		jwtService: servicesOptions.JwtService,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
		r.Post("/session", s.CreateSession)
		r.Get("/progress", s.GetProgress)
		r.Get("/advice", s.GetAdvice)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Post("/logs", s.RecordActivity)
			r.Delete("/logs/{date}", s.DeleteLog)
			r.Post("/reset/today", s.ResetToday)
			r.Post("/reset/all", s.ResetAll)
			r.Get("/habits", s.GetHabits)
			r.Put("/habits", s.SaveHabits)
			r.Get("/profile", s.GetProfile)
			r.Put("/profile", s.SaveProfile)
			r.Get("/timers", s.ListTimers)
			r.Post("/timers", s.AddTimer)
			r.Post("/timers/{id}/start", s.StartTimer)
			r.Post("/timers/{id}/stop", s.StopTimer)
			r.Delete("/timers/{id}", s.DeleteTimer)
			r.Get("/friends", s.ListFriends)
			r.Post("/friends", s.AddFriend)
		})
	})
}

func (s *Server) Run(addr string) error {
	return http.ListenAndServe(addr, s.mx)
}

// Handler exposes the mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}
