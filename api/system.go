package api

import (
	"fmt"
	"net/http"

	"github.com/garnizeh/portfolio/pkg/store"
)

type SystemHandler struct {
	store store.Store
}

func NewSystemHandler(st store.Store) *SystemHandler {
	return &SystemHandler{store: st}
}

func (h *SystemHandler) RootHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, `{"status":"ok","service":"portfolio-api"}`)
}

// TestHandler probes the document store. Store errors degrade the probe to
// "not-available" rather than failing the request.
func (h *SystemHandler) TestHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"backend":     "running",
		"database":    "not-available",
		"collections": []string{},
	}

	if h.store != nil {
		resp["database"] = "connected"
		if cols, err := h.store.Collections(r.Context()); err == nil {
			if len(cols) > 10 {
				cols = cols[:10]
			}
			if cols == nil {
				cols = []string{}
			}
			resp["collections"] = cols
		}
	}

	writeJSON(w, resp, http.StatusOK)
}
