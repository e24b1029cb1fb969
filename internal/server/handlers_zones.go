package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jonathan/readability-analyzer/internal/types"
)

// ---------------------------------------------------------------------
// Zone Handlers
// ---------------------------------------------------------------------

type AddZoneRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

func (s *Server) handleAddZone(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	var req AddZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	category, err := types.ParseCategory(req.Category)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	zone, err := sess.registry.Add(req.Text, category)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := s.store.persist(r.Context(), sess); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]any{
		"position": sess.registry.Len() - 1,
		"zone":     zone,
	})
}

func (s *Server) handleListZones(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"zones": sess.registry.Zones()})
}

type ReplaceZonesRequest struct {
	Zones []AddZoneRequest `json:"zones"`
}

func (s *Server) handleReplaceZones(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	var req ReplaceZonesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	zones := make([]types.Zone, 0, len(req.Zones))
	for _, z := range req.Zones {
		category, err := types.ParseCategory(z.Category)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		zones = append(zones, types.Zone{Text: z.Text, Category: category})
	}

	if err := sess.registry.Replace(zones); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := s.store.persist(r.Context(), sess); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"count": sess.registry.Len()})
}

func (s *Server) handleClearZones(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	sess.registry.Clear()
	if err := s.store.persist(r.Context(), sess); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (s *Server) handleRemoveZone(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessionFromRequest(w, r)
	if !ok {
		return
	}

	position, err := strconv.Atoi(r.PathValue("position"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid zone position")
		return
	}

	if err := sess.registry.Remove(position); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := s.store.persist(r.Context(), sess); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "removed"})
}
