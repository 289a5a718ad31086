package api

import (
	"log"
	"net/http"

	"github.com/ksemonis/advisor/pkg/catalog"
)

// DumpContentType identifies the msgpack+lz4 bulk payload.
const DumpContentType = "application/vnd.advisor.catalog-dump"

// HandleDump handles GET requests for the whole catalog as one
// compressed bulk-transfer payload
func (h *Handler) HandleDump(w http.ResponseWriter, r *http.Request) {
	log.Printf("INFO: handleDump called")

	if !h.session.Loaded() {
		log.Printf("WARN: Dump requested before any course data was loaded")
		WriteJSONError(w, http.StatusConflict, "no course data loaded")
		return
	}

	courses := h.session.All()
	w.Header().Set("Content-Type", DumpContentType)
	if err := catalog.WriteDump(w, courses); err != nil {
		// Headers are already gone; all we can do is log.
		log.Printf("ERROR: Writing catalog dump failed: %v", err)
		return
	}

	log.Printf("INFO: Dumped %d courses", len(courses))
}
