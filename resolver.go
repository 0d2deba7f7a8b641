// resolver.go — Turns a scheduled game into playable stream URLs.
// Each side (home/away) runs the same ordered fallback chain independently;
// a side with no mapped channel yields a nil URL, which is a normal outcome.
// The store and registry are injected — the resolver itself is stateless and
// read-only per request.
package streams

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// minSubstringLen guards the containment fallback: both the candidate and the
// indexed key must be at least this long, so short tokens like "SOX" cannot
// false-positive across teams.
const minSubstringLen = 4

// nicknameLeagueOrder is the fixed search order for city-less nicknames when
// the game's own league doesn't claim the name.
var nicknameLeagueOrder = []League{LeagueNHL, LeagueNBA, LeagueNFL, LeagueMLB}

// Resolver computes a game's stream URLs from the Override Store with the
// Identifier Registry as static fallback.
type Resolver struct {
	store    *OverrideStore
	registry *Registry
	urls     URLTemplate
	log      *logrus.Logger
}

// NewResolver wires the resolver to its collaborators.
func NewResolver(store *OverrideStore, registry *Registry, urls URLTemplate, log *logrus.Logger) *Resolver {
	return &Resolver{store: store, registry: registry, urls: urls, log: log}
}

// Resolve maps a game to zero, one, or two stream URLs. It never fails:
// malformed input degrades to nil URLs. The returned trail records which
// fallback stage matched each side, for operability.
func (r *Resolver) Resolve(game GameReference) ResolutionResult {
	away, home := r.extractTeams(game)

	var result ResolutionResult
	awayURL, awayTrace := r.resolveSide(game.League, away, "away")
	homeURL, homeTrace := r.resolveSide(game.League, home, "home")
	result.AwayStreamURL = awayURL
	result.HomeStreamURL = homeURL
	result.Trail = []MatchTrace{awayTrace, homeTrace}

	for _, tr := range result.Trail {
		resolutionsTotal.WithLabelValues(tr.Stage, leagueLabel(game.League)).Inc()
		r.log.WithFields(logrus.Fields{
			"component":  "streams/resolver",
			"game_id":    game.ID,
			"side":       tr.Side,
			"input":      tr.Input,
			"stage":      tr.Stage,
			"key":        tr.Key,
			"stream_id":  tr.StreamID,
			"confidence": tr.Confidence,
		}).Debug("resolved side")
	}
	return result
}

// extractTeams pulls the away/home display names from the structured fields
// when present, expanding bare abbreviations through the registry, and falls
// back to parsing the free-text title.
func (r *Resolver) extractTeams(game GameReference) (away, home string) {
	away = strings.TrimSpace(game.AwayTeam.Name)
	home = strings.TrimSpace(game.HomeTeam.Name)

	if away == "" && game.AwayTeam.Abbreviation != "" {
		if name, ok := r.registry.CanonicalForAbbreviation(game.League, game.AwayTeam.Abbreviation); ok {
			away = name
		}
	}
	if home == "" && game.HomeTeam.Abbreviation != "" {
		if name, ok := r.registry.CanonicalForAbbreviation(game.League, game.HomeTeam.Abbreviation); ok {
			home = name
		}
	}

	if away != "" && home != "" {
		return away, home
	}

	for _, title := range []string{game.Name, game.ShortName} {
		a, h, ok := parseTitle(title)
		if !ok {
			continue
		}
		if away == "" {
			away = a
		}
		if home == "" {
			home = h
		}
		break
	}
	return away, home
}

// parseTitle splits a free-text game title into (away, home). Separators are
// tried in priority order. For every separator the first token is treated as
// the away side — for " vs " this is a convention inherited from the schedule
// feed, not something the title itself disambiguates.
func parseTitle(title string) (away, home string, ok bool) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "", false
	}
	for _, sep := range []string{" at ", " vs ", " @ ", " - "} {
		idx := strings.Index(title, sep)
		if idx <= 0 {
			continue
		}
		away = strings.TrimSpace(title[:idx])
		home = strings.TrimSpace(title[idx+len(sep):])
		if away != "" && home != "" {
			return away, home, true
		}
	}
	return "", "", false
}

// resolveSide runs the fallback chain for one team name. Stages, in order:
// direct store lookup, registry canonical lookup, city-less nickname, the
// provider's league-prefixed channel-name forms (both stripping a prefix from
// the input and trying prefixed spellings of it), and finally bounded
// substring containment. Stops at the first hit.
func (r *Resolver) resolveSide(league League, raw, side string) (*string, MatchTrace) {
	trace := MatchTrace{Side: side, Input: raw, Stage: "none"}
	if strings.TrimSpace(raw) == "" {
		return nil, trace
	}
	key := Normalize(raw)

	if id, stage, ok := r.lookupKey(league, key); ok {
		return r.found(&trace, stage, key, id, stageConfidence(stage))
	}

	// Inputs already in the provider's spelling ("NFL-BEARS") resolve like
	// the plain team name once the prefix is stripped.
	if remainder, prefixLeague, ok := stripLeaguePrefix(key); ok {
		rk := Normalize(remainder)
		if id, _, ok := r.lookupKey(prefixLeague, rk); ok {
			return r.found(&trace, "league_prefix", rk, id, 0.9)
		}
	}
	for _, candidate := range prefixedForms(league, key) {
		if id, ok := r.store.LookupKey(Normalize(candidate)); ok {
			return r.found(&trace, "league_prefix", candidate, id, 0.9)
		}
	}

	if id, matched, score, ok := r.substringMatch(key); ok {
		return r.found(&trace, "substring", matched, id, score)
	}

	return nil, trace
}

// lookupKey resolves a normalized key through the store index, the registry's
// canonical names, and the league-aware nickname table, in that order.
func (r *Resolver) lookupKey(league League, key string) (id int, stage string, ok bool) {
	if id, ok := r.store.LookupKey(key); ok {
		return id, "direct", true
	}
	if id, ok := r.registry.IDByName(key); ok {
		return id, "registry", true
	}
	if canonical, ok := r.nicknameToCanonical(league, key); ok {
		ck := Normalize(canonical)
		if id, ok := r.store.LookupKey(ck); ok {
			return id, "nickname", true
		}
		if id, ok := r.registry.IDByName(ck); ok {
			return id, "nickname", true
		}
	}
	return 0, "", false
}

func stageConfidence(stage string) float64 {
	if stage == "nickname" {
		return 0.95
	}
	return 1.0
}

// found fills the trace and produces the side's URL: the stored record's URL
// standardized onto the current template, or the pure template fallback.
func (r *Resolver) found(trace *MatchTrace, stage, key string, id int, confidence float64) (*string, MatchTrace) {
	trace.Stage = stage
	trace.Key = key
	trace.StreamID = id
	trace.Confidence = confidence

	url := r.urls.FallbackURL(id)
	if rec, ok := r.store.Get(id); ok && rec.URL != "" {
		url = r.urls.Standardize(rec.URL)
	}
	return &url, *trace
}

// nicknameToCanonical resolves a city-less nickname, preferring the game's
// own league before the fixed league order. Needed because several nicknames
// (Panthers, Rangers, Giants, Cardinals, Jets, Kings) exist in two leagues.
func (r *Resolver) nicknameToCanonical(league League, key string) (string, bool) {
	if name, ok := r.registry.CanonicalForNickname(league, key); ok {
		return name, true
	}
	for _, l := range nicknameLeagueOrder {
		if l == league {
			continue
		}
		if name, ok := r.registry.CanonicalForNickname(l, key); ok {
			return name, true
		}
	}
	return "", false
}

// leaguePrefixes are the provider's channel-name prefixes, checked against
// normalized input.
var leaguePrefixes = []struct {
	prefix string
	league League
}{
	{"NFL-", LeagueNFL},
	{"VIP NBA ", LeagueNBA},
	{"MLB - ", LeagueMLB},
	{"NHL ", LeagueNHL},
}

// stripLeaguePrefix removes a recognized provider prefix from a normalized
// key, returning the remainder and the league the prefix implies.
func stripLeaguePrefix(key string) (string, League, bool) {
	for _, lp := range leaguePrefixes {
		if strings.HasPrefix(key, lp.prefix) && len(key) > len(lp.prefix) {
			return key[len(lp.prefix):], lp.league, true
		}
	}
	return "", "", false
}

// prefixedForms builds the provider's channel-name spellings for a team key.
// Sources imported straight from the provider keep names like "NFL-BEARS",
// "VIP NBA LAKERS", "MLB - YANKEES"; these forms find them when the plain key
// does not. An unknown league tries all three shapes.
func prefixedForms(league League, key string) []string {
	words := strings.Fields(key)
	last := key
	if len(words) > 0 {
		last = words[len(words)-1]
	}
	switch league {
	case LeagueNFL:
		return []string{"NFL-" + last}
	case LeagueNBA:
		return []string{"VIP NBA " + key, "VIP NBA " + last}
	case LeagueMLB:
		return []string{"MLB - " + key, "MLB - " + last}
	default:
		return []string{"NFL-" + last, "VIP NBA " + key, "MLB - " + key}
	}
}

// substringMatch scans the indexed keys for bidirectional containment,
// accepting the candidate only when both strings clear minSubstringLen.
// Among multiple hits the highest Jaro-Winkler similarity wins; that score
// doubles as the reported confidence.
func (r *Resolver) substringMatch(key string) (id int, matched string, score float64, ok bool) {
	if len(key) < minSubstringLen {
		return 0, "", 0, false
	}
	best := 0.0
	for _, k := range r.store.Keys() {
		if len(k) < minSubstringLen {
			continue
		}
		if !strings.Contains(k, key) && !strings.Contains(key, k) {
			continue
		}
		s := jaroWinkler(strings.ToLower(key), strings.ToLower(k))
		if s > best {
			if candidateID, found := r.store.LookupKey(k); found {
				best = s
				matched = k
				id = candidateID
			}
		}
	}
	if matched == "" {
		return 0, "", 0, false
	}
	return id, matched, best, true
}

func leagueLabel(l League) string {
	if l == "" {
		return string(LeagueOther)
	}
	return string(l)
}
