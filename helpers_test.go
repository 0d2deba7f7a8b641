// helpers_test.go — Shared fixtures for the engine tests. No live DB or
// network required anywhere: stores run cache-only on a temp dir.
package streams

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

// testTemplate pins the canonical CDN so URL assertions don't depend on env.
var testTemplate = URLTemplate{Domain: "edge.vpstream.live", Port: "443", Path: "live"}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestStore returns a cache-only store over a temp file, plus the registry
// it was built with.
func newTestStore(t *testing.T) (*OverrideStore, *Registry) {
	t.Helper()
	log := newTestLogger()
	registry := NewRegistry()
	cache := NewFileCache(filepath.Join(t.TempDir(), "stream_sources.json"), log)
	return NewOverrideStore(nil, cache, registry, testTemplate, log), registry
}

// newTestResolver returns a resolver over a fully seeded cache-only store.
func newTestResolver(t *testing.T) (*Resolver, *OverrideStore) {
	t.Helper()
	store, registry := newTestStore(t)
	store.EnsureCatalog()
	return NewResolver(store, registry, testTemplate, newTestLogger()), store
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }
