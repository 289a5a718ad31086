package api

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API routes with the given router
func (h *Handler) RegisterRoutes(router *mux.Router) {
	// Catalog contents
	router.HandleFunc("/catalog/courses", h.HandleListCourses).Methods("GET")
	router.HandleFunc("/catalog/courses/{number}", h.HandleGetCourse).Methods("GET")

	// Bulk transfer
	router.HandleFunc("/catalog/dump", h.HandleDump).Methods("GET")

	// Load pass (replaces the catalog)
	router.HandleFunc("/catalog/load", h.HandleLoad).Methods("POST")

	// Health check
	router.HandleFunc("/health", h.HandleHealth).Methods("GET")
}
