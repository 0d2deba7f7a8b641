// schedule_test.go — Schedule client adapter against a stub server.
package streams

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestScheduleClient_GameByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/games/mlb-001":
			json.NewEncoder(w).Encode(GameReference{
				ID:       "mlb-001",
				League:   LeagueMLB,
				AwayTeam: TeamRef{Name: "Baltimore Orioles", Abbreviation: "BAL"},
				HomeTeam: TeamRef{Name: "Boston Red Sox", Abbreviation: "BOS"},
			})
		case "/api/games/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewScheduleClient(srv.URL)
	ctx := context.Background()

	game, err := client.GameByID(ctx, "mlb-001")
	if err != nil {
		t.Fatalf("GameByID: %v", err)
	}
	if game.ID != "mlb-001" || game.League != LeagueMLB || game.HomeTeam.Name != "Boston Red Sox" {
		t.Errorf("game = %+v", game)
	}

	if _, err := client.GameByID(ctx, "ghost"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("missing game error = %v, want ErrGameNotFound", err)
	}

	if _, err := client.GameByID(ctx, "broken"); err == nil || errors.Is(err, ErrGameNotFound) {
		t.Errorf("server error mapped wrong: %v", err)
	}
}
