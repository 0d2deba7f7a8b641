// schedule.go — HTTP client for the schedule collaborator.
// The schedule service owns game data; this adapter only fetches one game
// record and maps it onto GameReference.
package streams

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// scheduleTimeout bounds the schedule fetch so a slow feed cannot hold the
// stream endpoint open.
const scheduleTimeout = 10 * time.Second

// ScheduleClient implements GameSchedule against the schedule service's
// REST API.
type ScheduleClient struct {
	baseURL string
	client  *http.Client
}

// NewScheduleClient returns a client for the given base URL
// (e.g. "http://schedule:8090").
func NewScheduleClient(baseURL string) *ScheduleClient {
	return &ScheduleClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: scheduleTimeout},
	}
}

// GameByID fetches GET {base}/api/games/{id}. A 404 maps to ErrGameNotFound.
func (c *ScheduleClient) GameByID(ctx context.Context, id string) (GameReference, error) {
	endpoint := fmt.Sprintf("%s/api/games/%s", c.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return GameReference{}, fmt.Errorf("build schedule request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return GameReference{}, fmt.Errorf("fetch game: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return GameReference{}, ErrGameNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return GameReference{}, fmt.Errorf("schedule returned HTTP %d", resp.StatusCode)
	}

	var game GameReference
	if err := json.NewDecoder(resp.Body).Decode(&game); err != nil {
		return GameReference{}, fmt.Errorf("decode game: %w", err)
	}
	return game, nil
}
