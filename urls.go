// urls.go — Canonical stream URL template and rewriting.
// The provider has retired CDN hosts before; stored URLs from any era are
// rewritten onto the current template so old records keep resolving. A URL
// that doesn't end in "{id}.m3u8" is passed through untouched rather than
// risk corrupting a format we don't recognize.
package streams

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
)

// streamIDSuffix matches the trailing "{id}.m3u8" segment of a stream URL.
var streamIDSuffix = regexp.MustCompile(`(\d+)\.m3u8/?$`)

// URLTemplate holds the currently canonical CDN host/port/path.
type URLTemplate struct {
	Domain string
	Port   string
	Path   string
}

// NewURLTemplateFromEnv builds the template from STREAM_CDN_* env vars,
// defaulting to the active CDN edge.
func NewURLTemplateFromEnv() URLTemplate {
	return URLTemplate{
		Domain: envOr("STREAM_CDN_DOMAIN", "edge.vpstream.live"),
		Port:   envOr("STREAM_CDN_PORT", "443"),
		Path:   envOr("STREAM_CDN_PATH", "live"),
	}
}

// FallbackURL constructs the canonical playlist URL for a channel number.
func (t URLTemplate) FallbackURL(id int) string {
	return fmt.Sprintf("https://%s:%s/%s/%d.m3u8", t.Domain, t.Port, t.Path, id)
}

// Standardize rewrites any URL carrying a trailing "{id}.m3u8" segment onto
// the canonical template. Unrecognized formats are returned unchanged.
// Idempotent: standardizing a canonical URL yields itself.
func (t URLTemplate) Standardize(rawURL string) string {
	m := streamIDSuffix.FindStringSubmatch(rawURL)
	if m == nil {
		return rawURL
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return rawURL
	}
	return t.FallbackURL(id)
}

// StreamIDFromURL extracts the channel number from a playlist URL.
func StreamIDFromURL(rawURL string) (int, bool) {
	m := streamIDSuffix.FindStringSubmatch(rawURL)
	if m == nil {
		return 0, false
	}
	id, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return id, true
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
