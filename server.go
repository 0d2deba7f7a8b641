// server.go — HTTP surface of the stream-source service.
// Thin chi handlers over the Override Store and Resolver; all JSON, all
// snake_case, matching the relational schema end to end.
package streams

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Server holds the service's collaborators. A nil db is valid: the store
// runs cache-only and every handler keeps working.
type Server struct {
	db       *sql.DB
	store    *OverrideStore
	resolver *Resolver
	registry *Registry
	schedule GameSchedule
	urls     URLTemplate
	log      *logrus.Logger
}

// NewServer wires the full engine. schedule may be nil when no schedule
// collaborator is configured; the game-stream endpoint then reports
// unavailability instead of failing.
func NewServer(db *sql.DB, store *OverrideStore, registry *Registry, urls URLTemplate, schedule GameSchedule, log *logrus.Logger) *Server {
	return &Server{
		db:       db,
		store:    store,
		resolver: NewResolver(store, registry, urls, log),
		registry: registry,
		schedule: schedule,
		urls:     urls,
		log:      log,
	}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.accessLog)

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/streams/sources", func(r chi.Router) {
			r.Get("/", s.handleListSources)
			r.Post("/", s.handleCreateSource)
			r.Get("/{id}", s.handleGetSource)
			r.Patch("/{id}", s.handleUpdateSource)
			r.Put("/{id}", s.handleUpdateSource)
			r.Delete("/{id}", s.handleDeleteSource)
		})
		r.Get("/games/{id}/stream", s.handleGameStream)
	})
	return r
}

// handleHealth is the liveness endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":          "ok",
		"mapping_version": CurrentMappingVersion,
		"db":              s.db != nil,
	})
}

// ─── middleware ──────────────────────────────────────────────────────────────

type ctxKeyRequestID struct{}

// requestID assigns a UUID to every request and echoes it in the response.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID{}, id)))
	})
}

// accessLog emits one structured line per request.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		reqID, _ := r.Context().Value(ctxKeyRequestID{}).(string)
		s.log.WithFields(logrus.Fields{
			"component":   "streams/http",
			"request_id":  reqID,
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      sw.status,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("request")
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the service's uniform error envelope.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// ConnectDB opens a Postgres pool via the pgx stdlib driver and verifies it
// with a bounded ping.
func ConnectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
