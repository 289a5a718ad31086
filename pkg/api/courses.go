package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// HandleListCourses handles GET requests for the full course list in
// alphanumeric order
func (h *Handler) HandleListCourses(w http.ResponseWriter, r *http.Request) {
	log.Printf("INFO: handleListCourses called")

	if !h.session.Loaded() {
		log.Printf("WARN: List requested before any course data was loaded")
		WriteJSONError(w, http.StatusConflict, "no course data loaded")
		return
	}

	courses := h.session.All()
	log.Printf("INFO: Listing %d courses", len(courses))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(courses)
}

// HandleGetCourse handles GET requests for one course by number
func (h *Handler) HandleGetCourse(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	number := vars["number"]

	log.Printf("INFO: handleGetCourse called for course '%s'", number)

	if !h.session.Loaded() {
		log.Printf("WARN: Course '%s' requested before any course data was loaded", number)
		WriteJSONError(w, http.StatusConflict, "no course data loaded")
		return
	}

	course, ok := h.session.Find(number)
	if !ok {
		// Absence is an expected outcome, not a server error.
		log.Printf("INFO: Course '%s' not found", number)
		WriteJSONError(w, http.StatusNotFound, "course not found")
		return
	}

	log.Printf("INFO: Retrieved course '%s'", number)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(course)
}
