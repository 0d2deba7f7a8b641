// stream_api.go — Game → stream URL endpoint for the video player.
// A game with no mapped channel is a routine condition and gets its own
// error code, distinct from a genuine server failure.
package streams

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ─── GET /api/games/{id}/stream ──────────────────────────────────────────────

func (s *Server) handleGameStream(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")

	if s.schedule == nil {
		writeError(w, http.StatusServiceUnavailable, "schedule_unavailable",
			"No schedule provider configured")
		return
	}

	game, err := s.schedule.GameByID(r.Context(), gameID)
	if errors.Is(err, ErrGameNotFound) {
		writeError(w, http.StatusNotFound, "game_not_found", "Game not found")
		return
	}
	if err != nil {
		s.log.WithField("component", "streams/http").WithField("game_id", gameID).
			WithError(err).Error("schedule lookup failed")
		writeError(w, http.StatusBadGateway, "schedule_error", "Failed to load game")
		return
	}

	result := s.resolver.Resolve(game)
	if result.HomeStreamURL == nil && result.AwayStreamURL == nil {
		writeError(w, http.StatusNotFound, "no_stream_available",
			"No stream available for this game")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"game_id":         game.ID,
		"league":          game.League,
		"home_stream_url": result.HomeStreamURL,
		"away_stream_url": result.AwayStreamURL,
	})
}
