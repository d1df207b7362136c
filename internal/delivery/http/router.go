package http

import (
	"net/http"

	"doctor-directory/internal/delivery/http/handler"
	"doctor-directory/internal/delivery/http/middleware"
	"doctor-directory/internal/delivery/http/view"
	"doctor-directory/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	doctorHandler     *handler.DoctorHandler
	pageHandler       *handler.PageHandler
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	doctorHandler *handler.DoctorHandler,
	pageHandler *handler.PageHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		doctorHandler:     doctorHandler,
		pageHandler:       pageHandler,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// Upstream proxy
	r.router.HandleFunc("/api/doctors", r.doctorHandler.ProxyDoctors).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Directory API
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/suggestions", r.doctorHandler.Suggest).Methods(http.MethodGet)
	api.HandleFunc("/specialties", r.doctorHandler.ListSpecialties).Methods(http.MethodGet)

	// Directory page
	r.router.HandleFunc("/", r.pageHandler.ShowDirectory).Methods(http.MethodGet)
	r.router.HandleFunc("/filters", r.pageHandler.UpdateFilters).Methods(http.MethodPost)
	r.router.HandleFunc("/suggestions/select", r.pageHandler.SelectSuggestion).Methods(http.MethodGet)
	r.router.PathPrefix("/static/").Handler(view.StaticHandler()).Methods(http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "")
	})

	// Add middleware
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
