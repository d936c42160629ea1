package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/binbuddy/tracker/internal/service"
)

type Server struct {
	mx             *chi.Mux
	trackerService service.TrackerServiceI
	catalog        service.CatalogI
}

type ServicesList struct {
	TrackerService service.TrackerServiceI
	Catalog        service.CatalogI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:             chi.NewMux(),
		trackerService: servicesOptions.TrackerService,
		catalog:        servicesOptions.Catalog,
	}
}

func (s *Server) Run(addr string) error {
	s.registerRoutes()
	return http.ListenAndServe(addr, s.mx)
}

func (s *Server) registerRoutes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Get("/stats", s.GetStats)
		r.Get("/log", s.GetLog)
		r.Post("/log", s.LogItem)
		r.Post("/log/custom", s.LogCustomItem)
		r.Get("/achievements", s.GetAchievements)
		r.Get("/settings", s.GetSettings)
		r.Put("/settings", s.UpdateSettings)
		r.Get("/categories", s.GetCategories)
		r.Get("/categories/{id}", s.GetCategory)
	})
}
