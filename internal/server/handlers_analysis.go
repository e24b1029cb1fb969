package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/jonathan/readability-analyzer/internal/rendering"
	"github.com/jonathan/readability-analyzer/internal/types"
)

// ---------------------------------------------------------------------
// Analysis Handlers
// ---------------------------------------------------------------------

// targetsFromQuery resolves the grade targets for a request: the server
// defaults, overridden per category by the dialogue, math_problem and
// narration query parameters.
func (s *Server) targetsFromQuery(r *http.Request) (types.TargetMap, error) {
	targets := s.targets
	overrides := map[string]*int{
		"dialogue":     &targets.Dialogue,
		"math_problem": &targets.MathProblem,
		"narration":    &targets.Narration,
	}
	for param, field := range overrides {
		raw := r.URL.Query().Get(param)
		if raw == "" {
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		*field = value
	}
	if err := targets.Validate(); err != nil {
		return nil, err
	}
	return targets.Map(), nil
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	targets, err := s.targetsFromQuery(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid target override: "+err.Error())
		return
	}

	summaries, err := sess.registry.Summaries(targets)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"summaries": summaries})
}

func (s *Server) handleAnnotations(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	targets, err := s.targetsFromQuery(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid target override: "+err.Error())
		return
	}

	results, err := sess.registry.AnnotateAll(r.Context(), targets)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"zones": results})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	targets, err := s.targetsFromQuery(r)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid target override: "+err.Error())
		return
	}

	results, err := sess.registry.AnnotateAll(r.Context(), targets)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	summaries, err := sess.registry.Summaries(targets)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(rendering.Report(results, summaries))); err != nil {
		log.Printf("Error writing report response: %v", err)
	}
}
