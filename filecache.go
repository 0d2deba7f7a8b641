// filecache.go — Local JSON cache layer of the Override Store.
// The file mirrors the stream_sources table keyed by channel number, with
// snake_case fields so the same shape round-trips through the relational
// layer. Reads validate each record at the boundary: entries missing an id or
// url are quarantined (skipped and counted), never handed to callers.
package streams

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
)

// FileCache persists the full stream-source catalog to one JSON file.
type FileCache struct {
	path string
	log  *logrus.Logger
}

// NewFileCache returns a cache backed by the given path. The file is created
// on first save; a missing file is an empty cache, not an error.
func NewFileCache(path string, log *logrus.Logger) *FileCache {
	return &FileCache{path: path, log: log}
}

// Load reads and validates the cache file. Returns the valid records plus
// the number of quarantined entries.
func (c *FileCache) Load() (map[int]StreamSource, int, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[int]StreamSource{}, 0, nil
		}
		return nil, 0, fmt.Errorf("read stream cache: %w", err)
	}

	var onDisk map[string]StreamSource
	if err := json.Unmarshal(raw, &onDisk); err != nil {
		return nil, 0, fmt.Errorf("parse stream cache: %w", err)
	}

	records := make(map[int]StreamSource, len(onDisk))
	quarantined := 0
	for key, rec := range onDisk {
		if rec.ID == 0 {
			// Tolerate older files where the id lives only in the key.
			if id, err := strconv.Atoi(key); err == nil {
				rec.ID = id
			}
		}
		if rec.ID <= 0 || rec.URL == "" {
			quarantined++
			cacheQuarantined.Inc()
			c.log.WithFields(logrus.Fields{
				"component": "streams/filecache",
				"key":       key,
			}).Warn("quarantined malformed cache record")
			continue
		}
		records[rec.ID] = rec
	}
	return records, quarantined, nil
}

// Save writes the full record set synchronously. Called under the store's
// write lock so saves serialize with mutations; the write must land before
// Upsert returns so an immediately-killed process keeps the edit.
func (c *FileCache) Save(records map[int]StreamSource) error {
	onDisk := make(map[string]StreamSource, len(records))
	for id, rec := range records {
		onDisk[strconv.Itoa(id)] = rec
	}

	data, err := json.MarshalIndent(onDisk, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stream cache: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write stream cache: %w", err)
	}
	return nil
}
