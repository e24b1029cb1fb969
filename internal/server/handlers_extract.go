package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/readability-analyzer/internal/extraction"
)

// ---------------------------------------------------------------------
// Extraction Handler
// ---------------------------------------------------------------------

type ExtractRequest struct {
	URL  string `json:"url,omitempty"`
	HTML string `json:"html,omitempty"`
	Path string `json:"path,omitempty"`
}

// handleExtract pulls plain text out of a URL, an inline HTML document or a
// local file. Exactly one source must be given.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sources := 0
	for _, src := range []string{req.URL, req.HTML, req.Path} {
		if src != "" {
			sources++
		}
	}
	if sources != 1 {
		s.errorResponse(w, http.StatusBadRequest, "Exactly one of url, html or path is required")
		return
	}

	var (
		text string
		err  error
	)
	switch {
	case req.URL != "":
		opts := extraction.DefaultOptions()
		opts.UseBrowser = s.useBrowser
		text, err = extraction.FromURL(r.Context(), req.URL, opts)
	case req.HTML != "":
		text, err = extraction.FromHTML(req.HTML)
	default:
		text, err = extraction.FromFile(req.Path)
	}
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"text": text})
}
