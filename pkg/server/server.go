package server

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ksemonis/advisor/pkg/api"
	"github.com/ksemonis/advisor/pkg/catalog"
)

// Server holds the router and the shared catalog session.
type Server struct {
	router  *mux.Router
	catalog *catalog.Catalog
}

// NewServer creates a new instance of Server.
func NewServer(options ...catalog.Option) *Server {
	s := &Server{
		router:  mux.NewRouter(),
		catalog: catalog.New(options...),
	}

	// Define HTTP routes
	api.NewHandler(s.catalog).RegisterRoutes(s.router)

	// Use the logging middleware for all routes
	s.router.Use(requestLoggerMiddleware)

	// Customize NotFoundHandler to log 404s
	s.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("WARN: No route found for %s %s", r.Method, r.URL.Path)
		http.NotFound(w, r)
	})

	return s
}

// requestLoggerMiddleware logs the method, URL path, and duration for each request.
func requestLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		elapsed := time.Since(start)
		log.Printf("INFO: Request %s %s took %s", r.Method, r.URL.Path, elapsed)
	})
}

// Preload loads a course data file into the session at startup.
func (s *Server) Preload(filename string) {
	result, err := s.catalog.Load(filename)
	if err != nil {
		log.Printf("ERROR: Could not preload course data from file %s: %v", filename, err)
		return
	}
	log.Printf("INFO: Preloaded %d courses from file %s", result.Loaded, filename)
}

// Catalog exposes the shared session.
func (s *Server) Catalog() *catalog.Catalog {
	return s.catalog
}

// Router exposes the internal mux.Router.
func (s *Server) Router() http.Handler {
	return s.router
}
