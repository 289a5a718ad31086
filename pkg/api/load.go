package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ksemonis/advisor/pkg/catalog"
)

// LoadRequest names the course data file a load pass should read.
type LoadRequest struct {
	Filename string `json:"filename"`
}

// HandleLoad handles POST requests that replace the catalog contents
// from a course data file on the server
func (h *Handler) HandleLoad(w http.ResponseWriter, r *http.Request) {
	var req LoadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("ERROR: Decoding load request failed: %v", err)
		WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Filename == "" {
		WriteJSONError(w, http.StatusBadRequest, "filename is required")
		return
	}

	log.Printf("INFO: handleLoad called for file '%s'", req.Filename)

	result, err := h.session.Load(req.Filename)
	if err != nil {
		log.Printf("ERROR: Load failed for file '%s': %v", req.Filename, err)
		if errors.Is(err, catalog.ErrEmptyLoad) {
			WriteJSONError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Printf("INFO: Load successful for file '%s': %d courses", req.Filename, result.Loaded)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
