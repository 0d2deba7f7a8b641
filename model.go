// model.go — Core record types shared across the stream-source engine.
package streams

import (
	"context"
	"errors"
	"time"
)

// League identifies which channel block a stream belongs to.
type League string

const (
	LeagueNHL     League = "nhl"
	LeagueNBA     League = "nba"
	LeagueNFL     League = "nfl"
	LeagueMLB     League = "mlb"
	LeagueSpecial League = "special"
	LeagueOther   League = "other"
)

// StreamSource is the durable record for one upstream HLS channel.
// JSON tags are snake_case to match both the relational schema and the
// file-cache layout.
type StreamSource struct {
	ID          int       `json:"id"`
	DisplayName string    `json:"name"`
	TeamName    string    `json:"team_name"`
	LeagueID    League    `json:"league_id"`
	URL         string    `json:"url"`
	IsActive    bool      `json:"is_active"`
	Priority    int       `json:"priority"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// StreamSourceUpdate is a partial update. Nil fields are left untouched on
// merge, so an admin edit to just the URL never clobbers the team name.
type StreamSourceUpdate struct {
	DisplayName *string `json:"name"`
	TeamName    *string `json:"team_name"`
	LeagueID    *League `json:"league_id"`
	URL         *string `json:"url"`
	IsActive    *bool   `json:"is_active"`
	Priority    *int    `json:"priority"`
	Description *string `json:"description"`
}

// TeamRef is one side of a scheduled game as supplied by the schedule feed.
type TeamRef struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// GameReference is the resolution input. Owned by the schedule collaborator;
// any field may be empty.
type GameReference struct {
	ID        string  `json:"id"`
	League    League  `json:"league"`
	HomeTeam  TeamRef `json:"home_team"`
	AwayTeam  TeamRef `json:"away_team"`
	Name      string  `json:"name"`
	ShortName string  `json:"short_name"`
}

// MatchTrace records which fallback stage produced a side's URL.
type MatchTrace struct {
	Side       string  `json:"side"`
	Input      string  `json:"input"`
	Stage      string  `json:"stage"`
	Key        string  `json:"key"`
	StreamID   int     `json:"stream_id"`
	Confidence float64 `json:"confidence"`
}

// ResolutionResult is the per-request output of the Resolver. A nil URL means
// no channel is mapped for that side — an expected outcome, not an error.
type ResolutionResult struct {
	HomeStreamURL *string      `json:"home_stream_url"`
	AwayStreamURL *string      `json:"away_stream_url"`
	Trail         []MatchTrace `json:"-"`
}

// ErrGameNotFound is returned by a GameSchedule when the game ID is unknown.
var ErrGameNotFound = errors.New("game not found")

// GameSchedule supplies game records from the schedule collaborator.
type GameSchedule interface {
	GameByID(ctx context.Context, id string) (GameReference, error)
}
