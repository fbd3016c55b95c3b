package api

import (
	"github.com/gorilla/mux"

	"github.com/garnizeh/portfolio/internal/config"
	"github.com/garnizeh/portfolio/internal/content"
	"github.com/garnizeh/portfolio/pkg/store"
)

func SetupRoutes(cfg *config.Config, st store.Store, validator *content.Validator) *mux.Router {
	r := mux.NewRouter()

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)

	// Create handlers
	systemHandler := NewSystemHandler(st)
	authHandler := NewAuthHandler(cfg)
	contentHandler := NewContentHandler(st, validator)

	// Open endpoints
	r.HandleFunc("/", systemHandler.RootHandler).Methods("GET")
	r.HandleFunc("/test", systemHandler.TestHandler).Methods("GET")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/projects", contentHandler.ListProjects).Methods("GET")
	r.HandleFunc("/api/projects/{slug}", contentHandler.GetProject).Methods("GET")
	r.HandleFunc("/api/tech", contentHandler.ListTech).Methods("GET")
	r.HandleFunc("/api/posts", contentHandler.ListPosts).Methods("GET")
	r.HandleFunc("/api/experience", contentHandler.ListExperience).Methods("GET")
	r.HandleFunc("/api/education", contentHandler.ListEducation).Methods("GET")

	// Admin-only write endpoints
	admin := r.PathPrefix("/api").Subrouter()
	admin.Use(AdminAuthMiddleware(cfg))
	admin.HandleFunc("/projects", contentHandler.CreateProject).Methods("POST")
	admin.HandleFunc("/projects/{slug}", contentHandler.UpdateProject).Methods("PUT")
	admin.HandleFunc("/projects/{slug}", contentHandler.DeleteProject).Methods("DELETE")
	admin.HandleFunc("/tech", contentHandler.CreateTech).Methods("POST")
	admin.HandleFunc("/posts", contentHandler.CreatePost).Methods("POST")

	return r
}
