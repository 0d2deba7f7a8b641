// store.go — Override Store: the durable, admin-editable stream-source
// catalog that takes precedence over the static registry defaults.
//
// Three layers, in read order: in-memory map (request fast path), local JSON
// file (write-through before a mutation returns), Postgres stream_sources
// table (asynchronous write-behind — the source of truth across instances,
// but a transient outage must never block an admin edit). A nil *sql.DB puts
// the store in cache-only mode, which the tests and offline deployments use.
package streams

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// dbTimeout bounds every relational call so a hung database degrades the
// store to cache-only behavior instead of blocking callers.
const dbTimeout = 5 * time.Second

// OverrideStore owns the mutable stream-source catalog.
type OverrideStore struct {
	mu      sync.RWMutex
	records map[int]StreamSource
	index   map[string]int // normalized team/display name → channel number

	cache    *FileCache
	db       *sql.DB
	registry *Registry
	urls     URLTemplate
	log      *logrus.Logger
}

// NewOverrideStore loads the file cache, then refreshes from the relational
// table when one is reachable. Constructed once at process start.
func NewOverrideStore(db *sql.DB, cache *FileCache, registry *Registry, urls URLTemplate, log *logrus.Logger) *OverrideStore {
	s := &OverrideStore{
		records:  map[int]StreamSource{},
		index:    map[string]int{},
		cache:    cache,
		db:       db,
		registry: registry,
		urls:     urls,
		log:      log,
	}

	records, quarantined, err := cache.Load()
	if err != nil {
		log.WithField("component", "streams/store").WithError(err).
			Warn("file cache unreadable, starting empty")
	} else {
		s.records = records
		if quarantined > 0 {
			log.WithFields(logrus.Fields{
				"component":   "streams/store",
				"quarantined": quarantined,
			}).Warn("skipped malformed file-cache records")
		}
	}

	s.refreshFromDB()
	s.mu.Lock()
	s.rebuildIndexLocked()
	s.mu.Unlock()
	return s
}

// Get returns the record for a channel number.
func (s *OverrideStore) Get(id int) (StreamSource, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	return rec, ok
}

// GetAll returns the full catalog sorted by channel number. A catalog of N
// known channel numbers always yields at least N entries: if the durable
// stores came up short, the missing records are synthesized from registry
// defaults before returning.
func (s *OverrideStore) GetAll() []StreamSource {
	s.mu.RLock()
	short := len(s.records) < len(s.registry.KnownIDs())
	s.mu.RUnlock()
	if short {
		s.EnsureCatalog()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]StreamSource, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Upsert merges a partial update onto the existing record (or the registry
// default for a brand-new channel number) and persists it. The file-cache
// write happens synchronously under the lock, so a reader never observes a
// partially merged record and a process kill right after return cannot lose
// the edit. The relational mirror is written in the background.
func (s *OverrideStore) Upsert(id int, upd StreamSourceUpdate) (StreamSource, error) {
	if id <= 0 {
		return StreamSource{}, fmt.Errorf("invalid stream id %d", id)
	}

	s.mu.Lock()
	rec, ok := s.records[id]
	if !ok {
		rec = s.defaultRecord(id)
		rec.CreatedAt = time.Now().UTC()
	}
	s.applyUpdate(&rec, upd)
	rec.ID = id
	rec.UpdatedAt = time.Now().UTC()
	s.records[id] = rec
	s.rebuildIndexLocked()

	if err := s.cache.Save(s.records); err != nil {
		// The edit is live in memory and queued for the DB; losing the file
		// write degrades restart durability only.
		s.log.WithField("component", "streams/store").WithError(err).
			Error("file cache write failed")
	}
	s.mu.Unlock()

	go s.mirrorUpsert(rec)
	return rec, nil
}

// Delete removes a channel from every layer. Returns false if it was absent.
func (s *OverrideStore) Delete(id int) bool {
	s.mu.Lock()
	_, ok := s.records[id]
	if !ok {
		s.mu.Unlock()
		return false
	}
	delete(s.records, id)
	s.rebuildIndexLocked()
	if err := s.cache.Save(s.records); err != nil {
		s.log.WithField("component", "streams/store").WithError(err).
			Error("file cache write failed")
	}
	s.mu.Unlock()

	go s.mirrorDelete(id)
	return true
}

// EnsureCatalog synthesizes registry-default records for every known channel
// number missing from the catalog. Idempotent; called at startup and whenever
// a read finds the catalog short. Returns how many records were added.
func (s *OverrideStore) EnsureCatalog() int {
	s.mu.Lock()
	var added []StreamSource
	for _, id := range s.registry.KnownIDs() {
		if _, ok := s.records[id]; ok {
			continue
		}
		rec := s.defaultRecord(id)
		now := time.Now().UTC()
		rec.CreatedAt, rec.UpdatedAt = now, now
		s.records[id] = rec
		added = append(added, rec)
	}
	if len(added) > 0 {
		s.rebuildIndexLocked()
		if err := s.cache.Save(s.records); err != nil {
			s.log.WithField("component", "streams/store").WithError(err).
				Error("file cache write failed")
		}
	}
	s.mu.Unlock()

	if len(added) > 0 {
		s.log.WithFields(logrus.Fields{
			"component": "streams/store",
			"added":     len(added),
		}).Info("repaired catalog from registry defaults")
		go func(recs []StreamSource) {
			for _, rec := range recs {
				s.mirrorUpsert(rec)
			}
		}(added)
	}
	return len(added)
}

// LookupKey resolves a normalized name key through the alias-aware index.
func (s *OverrideStore) LookupKey(key string) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.index[key]
	return id, ok
}

// Keys returns a snapshot of every indexed name key, for the substring
// fallback matcher.
func (s *OverrideStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.index))
	for k := range s.index {
		keys = append(keys, k)
	}
	return keys
}

// ─── merge semantics ─────────────────────────────────────────────────────────

// applyUpdate merges non-nil fields of upd onto rec. Bulk seeds pass registry
// placeholder names; those never overwrite a name an administrator entered.
func (s *OverrideStore) applyUpdate(rec *StreamSource, upd StreamSourceUpdate) {
	if upd.DisplayName != nil && !s.demotesName(rec.ID, rec.DisplayName, *upd.DisplayName) {
		rec.DisplayName = *upd.DisplayName
	}
	if upd.TeamName != nil && !s.demotesName(rec.ID, rec.TeamName, *upd.TeamName) {
		rec.TeamName = *upd.TeamName
	}
	if upd.LeagueID != nil {
		rec.LeagueID = *upd.LeagueID
	}
	if upd.URL != nil {
		rec.URL = s.urls.Standardize(*upd.URL)
	}
	if upd.IsActive != nil {
		rec.IsActive = *upd.IsActive
	}
	if upd.Priority != nil {
		rec.Priority = *upd.Priority
	}
	if upd.Description != nil {
		rec.Description = *upd.Description
	}
}

// demotesName reports whether replacing current with incoming would swap a
// real, admin-entered name for a registry placeholder.
func (s *OverrideStore) demotesName(id int, current, incoming string) bool {
	if current == "" || current == incoming {
		return false
	}
	cls := s.registry.Classify(id)
	incomingIsPlaceholder := incoming == placeholderName(cls.LeagueID, id)
	currentIsPlaceholder := current == placeholderName(cls.LeagueID, id)
	return incomingIsPlaceholder && !currentIsPlaceholder
}

// defaultRecord builds the registry-default record for a channel number.
func (s *OverrideStore) defaultRecord(id int) StreamSource {
	cls := s.registry.Classify(id)
	return StreamSource{
		ID:          id,
		DisplayName: cls.DisplayName,
		TeamName:    cls.TeamName,
		LeagueID:    cls.LeagueID,
		URL:         s.urls.FallbackURL(id),
		IsActive:    true,
	}
}

// rebuildIndexLocked rebuilds the name index. Caller holds the write lock.
// The catalog is a few hundred records, so a full rebuild per mutation is
// cheaper than tracking stale keys.
func (s *OverrideStore) rebuildIndexLocked() {
	idx := make(map[string]int, len(s.records)*2)
	for id, rec := range s.records {
		if rec.TeamName != "" {
			idx[Normalize(rec.TeamName)] = id
		}
		if rec.DisplayName != "" {
			idx[Normalize(rec.DisplayName)] = id
		}
	}
	s.index = idx
}

// ─── relational layer ────────────────────────────────────────────────────────

// refreshFromDB overlays rows from stream_sources onto the local records.
// The table is the cross-instance source of truth, so its rows win. Any
// failure leaves the store on its local cache.
func (s *OverrideStore) refreshFromDB() {
	if s.db == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, team_name, url, league_id, is_active, priority,
		       description, created_at, updated_at
		FROM stream_sources`)
	if err != nil {
		s.log.WithField("component", "streams/store").WithError(err).
			Warn("stream_sources unreachable, serving from local cache")
		return
	}
	defer rows.Close()

	loaded := 0
	s.mu.Lock()
	for rows.Next() {
		var rec StreamSource
		var league string
		if err := rows.Scan(&rec.ID, &rec.DisplayName, &rec.TeamName, &rec.URL,
			&league, &rec.IsActive, &rec.Priority, &rec.Description,
			&rec.CreatedAt, &rec.UpdatedAt); err != nil {
			continue
		}
		if rec.ID <= 0 || rec.URL == "" {
			continue
		}
		rec.LeagueID = League(league)
		s.records[rec.ID] = rec
		loaded++
	}
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{
		"component": "streams/store",
		"rows":      loaded,
	}).Info("loaded stream sources from database")
}

// mirrorUpsert writes one record through to stream_sources. Failures are
// logged and counted, never surfaced: the admin edit already succeeded
// locally and the next successful write re-converges the mirror.
func (s *OverrideStore) mirrorUpsert(rec StreamSource) {
	if s.db == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO stream_sources
		  (id, name, team_name, url, league_id, is_active, priority, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
		  name        = EXCLUDED.name,
		  team_name   = EXCLUDED.team_name,
		  url         = EXCLUDED.url,
		  league_id   = EXCLUDED.league_id,
		  is_active   = EXCLUDED.is_active,
		  priority    = EXCLUDED.priority,
		  description = EXCLUDED.description,
		  updated_at  = EXCLUDED.updated_at`,
		rec.ID, rec.DisplayName, rec.TeamName, rec.URL, string(rec.LeagueID),
		rec.IsActive, rec.Priority, rec.Description, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		storeWriteFailures.Inc()
		s.log.WithFields(logrus.Fields{
			"component": "streams/store",
			"stream_id": rec.ID,
		}).WithError(err).Warn("db mirror write failed, edit retained locally")
	}
}

// mirrorDelete removes one row from stream_sources.
func (s *OverrideStore) mirrorDelete(id int) {
	if s.db == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM stream_sources WHERE id = $1`, id); err != nil {
		storeWriteFailures.Inc()
		s.log.WithFields(logrus.Fields{
			"component": "streams/store",
			"stream_id": id,
		}).WithError(err).Warn("db mirror delete failed")
	}
}
