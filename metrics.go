// metrics.go — Prometheus collectors for the stream-source engine.
package streams

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// resolutionsTotal counts resolution outcomes per side by the fallback
	// stage that matched ("direct", "registry", "nickname", "league_prefix",
	// "substring", "none").
	resolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "streams_resolutions_total",
		Help: "Stream resolutions by matching stage and league.",
	}, []string{"stage", "league"})

	// storeWriteFailures counts relational write-behind failures. These are
	// recovered locally (the file cache has the edit) but indicate the DB
	// mirror is falling behind.
	storeWriteFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "streams_store_db_write_failures_total",
		Help: "Failed asynchronous writes to the stream_sources table.",
	})

	// cacheQuarantined counts malformed records skipped while reading the
	// file cache.
	cacheQuarantined = promauto.NewCounter(prometheus.CounterOpts{
		Name: "streams_filecache_quarantined_total",
		Help: "Malformed file-cache records skipped at load.",
	})

	// healthProbes counts stream health probe outcomes.
	healthProbes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "streams_health_probes_total",
		Help: "Stream URL health probes by result.",
	}, []string{"result"})
)
