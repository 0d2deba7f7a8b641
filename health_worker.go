// health_worker.go — Background reachability checks for stream sources.
// Every cycle it samples active channels, probes each playlist URL with a
// ranged GET, and deactivates a channel only after repeated consecutive
// failures. A channel the worker disabled is re-enabled the moment a probe
// succeeds again; a channel an admin disabled is never touched.
package streams

import (
	"context"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	healthCheckInterval = 5 * time.Minute
	streamProbeTimeout  = 5 * time.Second
	maxSampleStreams    = 25
	// deactivateAfter is how many consecutive failed probes it takes before
	// a channel is marked inactive. One bad cycle is routine on live feeds.
	deactivateAfter = 3
)

// HealthWorker probes stream URLs and feeds results back into the store.
type HealthWorker struct {
	store *OverrideStore
	log   *logrus.Logger

	mu           sync.Mutex
	failures     map[int]int
	autoDisabled map[int]bool
	probe        func(ctx context.Context, url string) bool
}

// NewHealthWorker builds a worker over the given store.
func NewHealthWorker(store *OverrideStore, log *logrus.Logger) *HealthWorker {
	return &HealthWorker{
		store:        store,
		log:          log,
		failures:     map[int]int{},
		autoDisabled: map[int]bool{},
		probe:        probeStreamURL,
	}
}

// Start runs the probe loop until ctx is cancelled. Runs one pass
// immediately on startup.
func (h *HealthWorker) Start(ctx context.Context) {
	h.runChecks(ctx)

	ticker := time.NewTicker(healthCheckInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.runChecks(ctx)
		}
	}
}

// runChecks probes a random sample of the catalog in parallel.
func (h *HealthWorker) runChecks(ctx context.Context) {
	candidates := h.sample()
	if len(candidates) == 0 {
		return
	}

	start := time.Now()
	var wg sync.WaitGroup
	results := make([]bool, len(candidates))
	for i, src := range candidates {
		wg.Add(1)
		go func(idx int, url string) {
			defer wg.Done()
			results[idx] = h.probe(ctx, url)
		}(i, src.URL)
	}
	wg.Wait()

	ok := 0
	for i, src := range candidates {
		if results[i] {
			ok++
			healthProbes.WithLabelValues("ok").Inc()
			h.recordSuccess(src.ID)
		} else {
			healthProbes.WithLabelValues("failed").Inc()
			h.recordFailure(src.ID)
		}
	}

	h.log.WithFields(logrus.Fields{
		"component":   "streams/health",
		"probed":      len(candidates),
		"ok":          ok,
		"duration_ms": time.Since(start).Round(time.Millisecond).Milliseconds(),
	}).Info("health check cycle complete")
}

// sample picks up to maxSampleStreams channels: every channel this worker has
// auto-disabled (so recovery is noticed) plus a random draw of active ones.
func (h *HealthWorker) sample() []StreamSource {
	all := h.store.GetAll()

	h.mu.Lock()
	disabled := make(map[int]bool, len(h.autoDisabled))
	for id, v := range h.autoDisabled {
		disabled[id] = v
	}
	h.mu.Unlock()

	var picked []StreamSource
	var active []StreamSource
	for _, src := range all {
		if src.URL == "" {
			continue
		}
		if disabled[src.ID] {
			picked = append(picked, src)
		} else if src.IsActive {
			active = append(active, src)
		}
	}

	rand.Shuffle(len(active), func(i, j int) { active[i], active[j] = active[j], active[i] })
	for _, src := range active {
		if len(picked) >= maxSampleStreams {
			break
		}
		picked = append(picked, src)
	}
	return picked
}

// recordFailure bumps the consecutive-failure count and deactivates the
// channel once it crosses the threshold.
func (h *HealthWorker) recordFailure(id int) {
	h.mu.Lock()
	h.failures[id]++
	count := h.failures[id]
	alreadyDisabled := h.autoDisabled[id]
	if count >= deactivateAfter {
		h.autoDisabled[id] = true
	}
	h.mu.Unlock()

	if count < deactivateAfter || alreadyDisabled {
		return
	}

	inactive := false
	if _, err := h.store.Upsert(id, StreamSourceUpdate{IsActive: &inactive}); err == nil {
		h.log.WithFields(logrus.Fields{
			"component": "streams/health",
			"stream_id": id,
			"failures":  count,
		}).Warn("stream deactivated after consecutive probe failures")
	}
}

// recordSuccess clears the failure count and restores a channel this worker
// had disabled.
func (h *HealthWorker) recordSuccess(id int) {
	h.mu.Lock()
	h.failures[id] = 0
	wasAutoDisabled := h.autoDisabled[id]
	delete(h.autoDisabled, id)
	h.mu.Unlock()

	if !wasAutoDisabled {
		return
	}

	active := true
	if _, err := h.store.Upsert(id, StreamSourceUpdate{IsActive: &active}); err == nil {
		h.log.WithFields(logrus.Fields{
			"component": "streams/health",
			"stream_id": id,
		}).Info("stream reactivated after successful probe")
	}
}

// probeStreamURL sends a ranged GET (bytes 0-4095) to the playlist URL.
// True on HTTP 200–206.
func probeStreamURL(ctx context.Context, streamURL string) bool {
	probeCtx, cancel := context.WithTimeout(ctx, streamProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, streamURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("Range", "bytes=0-4095")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode <= 206
}
