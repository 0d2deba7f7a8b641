// health_worker_test.go — Probe threshold and recovery behavior.
package streams

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func newTestWorker(t *testing.T) (*HealthWorker, *OverrideStore) {
	t.Helper()
	store, _ := newTestStore(t)
	store.EnsureCatalog()
	return NewHealthWorker(store, newTestLogger()), store
}

func TestHealthWorker_DeactivatesAfterConsecutiveFailures(t *testing.T) {
	worker, store := newTestWorker(t)

	worker.recordFailure(210)
	worker.recordFailure(210)
	if rec, _ := store.Get(210); !rec.IsActive {
		t.Fatal("deactivated before reaching the failure threshold")
	}

	worker.recordFailure(210)
	if rec, _ := store.Get(210); rec.IsActive {
		t.Fatal("still active after three consecutive failures")
	}
}

func TestHealthWorker_SuccessResetsFailureCount(t *testing.T) {
	worker, store := newTestWorker(t)

	worker.recordFailure(115)
	worker.recordFailure(115)
	worker.recordSuccess(115)
	worker.recordFailure(115)
	worker.recordFailure(115)

	if rec, _ := store.Get(115); !rec.IsActive {
		t.Error("failure count not reset by an intervening success")
	}
}

func TestHealthWorker_ReactivatesOnlyAutoDisabled(t *testing.T) {
	worker, store := newTestWorker(t)

	// Worker-disabled channel comes back on the next good probe.
	for i := 0; i < deactivateAfter; i++ {
		worker.recordFailure(18)
	}
	if rec, _ := store.Get(18); rec.IsActive {
		t.Fatal("channel not auto-disabled")
	}
	worker.recordSuccess(18)
	if rec, _ := store.Get(18); !rec.IsActive {
		t.Error("auto-disabled channel not reactivated")
	}

	// Admin-disabled channel stays off even when its probe succeeds.
	if _, err := store.Upsert(66, StreamSourceUpdate{IsActive: boolPtr(false)}); err != nil {
		t.Fatal(err)
	}
	worker.recordSuccess(66)
	if rec, _ := store.Get(66); rec.IsActive {
		t.Error("admin-disabled channel was reactivated")
	}
}

func TestHealthWorker_SampleIncludesAutoDisabled(t *testing.T) {
	worker, store := newTestWorker(t)

	for i := 0; i < deactivateAfter; i++ {
		worker.recordFailure(210)
	}
	if rec, _ := store.Get(210); rec.IsActive {
		t.Fatal("channel not auto-disabled")
	}

	found := false
	for _, src := range worker.sample() {
		if src.ID == 210 {
			found = true
			break
		}
	}
	if !found {
		t.Error("auto-disabled channel missing from the probe sample")
	}
}

func TestHealthWorker_SampleCap(t *testing.T) {
	worker, _ := newTestWorker(t)
	if got := len(worker.sample()); got > maxSampleStreams {
		t.Errorf("sample size = %d, want at most %d", got, maxSampleStreams)
	}
}

func TestProbeStreamURL(t *testing.T) {
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Range") == "" {
			t.Error("probe sent no Range header")
		}
		w.WriteHeader(http.StatusPartialContent)
	}))
	defer ok.Close()

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer bad.Close()

	ctx := context.Background()
	if !probeStreamURL(ctx, ok.URL) {
		t.Error("healthy endpoint reported down")
	}
	if probeStreamURL(ctx, bad.URL) {
		t.Error("502 endpoint reported healthy")
	}
	if probeStreamURL(ctx, "http://127.0.0.1:1/nothing.m3u8") {
		t.Error("unreachable endpoint reported healthy")
	}
}

func TestHealthWorker_RunChecksWithInjectedProbe(t *testing.T) {
	worker, _ := newTestWorker(t)

	var mu sync.Mutex
	probed := make(map[string]bool)
	worker.probe = func(_ context.Context, url string) bool {
		mu.Lock()
		probed[url] = true
		mu.Unlock()
		return true
	}

	worker.runChecks(context.Background())
	if len(probed) == 0 {
		t.Fatal("runChecks probed nothing")
	}
	if len(probed) > maxSampleStreams {
		t.Errorf("probed %d URLs, want at most %d", len(probed), maxSampleStreams)
	}
}
