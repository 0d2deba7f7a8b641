// filecache_test.go — Tests for the JSON cache layer.
package streams

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestCache(t *testing.T) *FileCache {
	t.Helper()
	return NewFileCache(filepath.Join(t.TempDir(), "stream_sources.json"), newTestLogger())
}

func TestFileCache_MissingFileIsEmpty(t *testing.T) {
	cache := newTestCache(t)
	records, quarantined, err := cache.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 0 || quarantined != 0 {
		t.Errorf("got %d records, %d quarantined, want empty", len(records), quarantined)
	}
}

func TestFileCache_Roundtrip(t *testing.T) {
	cache := newTestCache(t)
	in := map[int]StreamSource{
		210: {ID: 210, DisplayName: "Boston Red Sox", TeamName: "Boston Red Sox",
			LeagueID: LeagueMLB, URL: "https://edge.vpstream.live:443/live/210.m3u8", IsActive: true},
		1: {ID: 1, DisplayName: "ESPN", TeamName: "ESPN",
			LeagueID: LeagueSpecial, URL: "https://edge.vpstream.live:443/live/1.m3u8", IsActive: true},
	}
	if err := cache.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, quarantined, err := cache.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if quarantined != 0 {
		t.Errorf("quarantined = %d, want 0", quarantined)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d records, want %d", len(out), len(in))
	}
	for id, want := range in {
		got, ok := out[id]
		if !ok {
			t.Fatalf("record %d missing after roundtrip", id)
		}
		if got.DisplayName != want.DisplayName || got.URL != want.URL ||
			got.LeagueID != want.LeagueID || got.IsActive != want.IsActive {
			t.Errorf("record %d = %+v, want %+v", id, got, want)
		}
	}
}

func TestFileCache_QuarantinesMalformedRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stream_sources.json")
	cache := NewFileCache(path, newTestLogger())

	// One good record, one with an empty url, one whose id lives only in the
	// map key (an older file shape that must still load).
	raw := `{
		"210": {"id": 210, "name": "Boston Red Sox", "team_name": "Boston Red Sox", "url": "https://edge.vpstream.live:443/live/210.m3u8", "league_id": "mlb", "is_active": true},
		"66":  {"id": 66, "name": "Boston Celtics", "team_name": "Boston Celtics", "url": "", "league_id": "nba", "is_active": true},
		"7":   {"name": "Buffalo Sabres", "team_name": "Buffalo Sabres", "url": "https://edge.vpstream.live:443/live/7.m3u8", "league_id": "nhl", "is_active": true}
	}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	records, quarantined, err := cache.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if quarantined != 1 {
		t.Errorf("quarantined = %d, want 1", quarantined)
	}
	if _, ok := records[66]; ok {
		t.Error("record with empty url was not quarantined")
	}
	if rec, ok := records[7]; !ok || rec.ID != 7 {
		t.Errorf("key-only id not backfilled: %+v", records[7])
	}
	if _, ok := records[210]; !ok {
		t.Error("valid record dropped")
	}
}

func TestFileCache_CorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stream_sources.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	cache := NewFileCache(path, newTestLogger())
	if _, _, err := cache.Load(); err == nil {
		t.Error("Load accepted corrupt JSON")
	}
}
