// sources_api.go — Admin CRUD over the Override Store.
// These handlers are the write path behind the stream-source editor.
package streams

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ─── GET /api/streams/sources ────────────────────────────────────────────────

// handleListSources returns the full catalog, optionally filtered by league.
// The response carries the active mapping version so clients can detect a
// stale lineup after a provider renumbering.
func (s *Server) handleListSources(w http.ResponseWriter, r *http.Request) {
	sources := s.store.GetAll()

	if league := r.URL.Query().Get("league"); league != "" {
		filtered := sources[:0]
		for _, src := range sources {
			if string(src.LeagueID) == league {
				filtered = append(filtered, src)
			}
		}
		sources = filtered
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sources":         sources,
		"count":           len(sources),
		"mapping_version": CurrentMappingVersion,
	})
}

// ─── GET /api/streams/sources/{id} ───────────────────────────────────────────

func (s *Server) handleGetSource(w http.ResponseWriter, r *http.Request) {
	id, ok := parseStreamID(w, r)
	if !ok {
		return
	}
	src, found := s.store.Get(id)
	if !found {
		writeError(w, http.StatusNotFound, "not_found", "Stream source not found")
		return
	}
	writeJSON(w, http.StatusOK, src)
}

// ─── POST /api/streams/sources ───────────────────────────────────────────────

// handleCreateSource registers a stream source under an explicit channel
// number. Creation and update share the store's upsert path so a re-POST of
// an existing number behaves like an edit rather than a conflict.
func (s *Server) handleCreateSource(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID int `json:"id"`
		StreamSourceUpdate
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "Invalid request body")
		return
	}
	if req.ID <= 0 {
		writeError(w, http.StatusBadRequest, "missing_fields", "id must be a positive integer")
		return
	}
	if req.LeagueID != nil && !validLeague(*req.LeagueID) {
		writeError(w, http.StatusBadRequest, "invalid_league",
			"league_id must be one of: nhl, nba, nfl, mlb, special, other")
		return
	}

	src, err := s.store.Upsert(req.ID, req.StreamSourceUpdate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_source", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, src)
}

// ─── PATCH/PUT /api/streams/sources/{id} ─────────────────────────────────────

// handleUpdateSource applies a partial edit. Fields absent from the body are
// preserved — this is what lets the URL editor change just the URL without
// touching the admin-entered team name.
func (s *Server) handleUpdateSource(w http.ResponseWriter, r *http.Request) {
	id, ok := parseStreamID(w, r)
	if !ok {
		return
	}

	var upd StreamSourceUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "Invalid request body")
		return
	}
	if upd.LeagueID != nil && !validLeague(*upd.LeagueID) {
		writeError(w, http.StatusBadRequest, "invalid_league",
			"league_id must be one of: nhl, nba, nfl, mlb, special, other")
		return
	}

	src, err := s.store.Upsert(id, upd)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_source", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, src)
}

// ─── DELETE /api/streams/sources/{id} ────────────────────────────────────────

// handleDeleteSource hard-deletes a source from every cache layer. Only an
// explicit admin delete reaches this path.
func (s *Server) handleDeleteSource(w http.ResponseWriter, r *http.Request) {
	id, ok := parseStreamID(w, r)
	if !ok {
		return
	}
	if !s.store.Delete(id) {
		writeError(w, http.StatusNotFound, "not_found", "Stream source not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func parseStreamID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_id", "Stream id must be a positive integer")
		return 0, false
	}
	return id, true
}

func validLeague(l League) bool {
	switch l {
	case LeagueNHL, LeagueNBA, LeagueNFL, LeagueMLB, LeagueSpecial, LeagueOther:
		return true
	}
	return false
}
