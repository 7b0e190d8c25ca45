// Package site serves the embedded capture UI pages.
package site

import (
	"context"
	"errors"
	"net/http"
)

// Error constants
var (
	ErrServe = errors.New("site serve failed")
)

// Register attaches the embedded page routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	h := NewPagesHandler()
	mux.HandleFunc("/", h.HandleIndex)
	mux.HandleFunc("/vasovue", h.HandleCapture)
	mux.HandleFunc("/report", h.HandleReport)
	mux.HandleFunc("/results", h.HandleResults)
}

// PagesHandler serves the embedded HTML pages.
type PagesHandler struct{}

// NewPagesHandler creates a new pages handler.
func NewPagesHandler() *PagesHandler {
	return &PagesHandler{}
}

// HandleIndex handles GET / requests. The root pattern catches every path no
// other route claimed, so anything but "/" itself is a 404.
func (h *PagesHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	servePage(w, r, "index.html")
}

// HandleCapture handles GET /vasovue requests, an alias for the capture page.
func (h *PagesHandler) HandleCapture(w http.ResponseWriter, r *http.Request) {
	servePage(w, r, "index.html")
}

// HandleReport handles GET /report requests.
func (h *PagesHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	servePage(w, r, "report.html")
}

// HandleResults handles GET /results requests.
func (h *PagesHandler) HandleResults(w http.ResponseWriter, r *http.Request) {
	servePage(w, r, "results.html")
}

func servePage(w http.ResponseWriter, r *http.Request, name string) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.NotFound(w, r)
		return
	}
	http.ServeFileFS(w, r, pagesFS, name)
}
