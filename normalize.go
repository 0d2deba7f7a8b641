// normalize.go — Canonical team-name keys.
// Every lookup in the engine goes through Normalize so that "LA Lakers",
// "Los Angeles Lakers" and "LAKERS" collide to one key. Synonyms are applied
// only on an exact whole-string match; partial replacement inside longer
// names caused false hits in an earlier revision and is deliberately avoided.
package streams

import (
	"strings"

	"github.com/Rezx100/veloplay1-sub001/data"
)

// synonyms maps an exact normalized alias to the canonical full name.
// Built once at startup from the team dictionaries plus the shorthand table;
// nicknames shared by two leagues (PANTHERS, RANGERS, ...) are excluded here
// and resolved league-aware by the Resolver instead.
var synonyms = buildSynonyms()

// shorthandAliases are common city shorthands the schedule feeds use.
// An alias maps directly to one canonical name — no alias chains.
var shorthandAliases = map[string]string{
	"LA LAKERS":     "Los Angeles Lakers",
	"LA CLIPPERS":   "Los Angeles Clippers",
	"LA KINGS":      "Los Angeles Kings",
	"LA DODGERS":    "Los Angeles Dodgers",
	"LA ANGELS":     "Los Angeles Angels",
	"LA RAMS":       "Los Angeles Rams",
	"LA CHARGERS":   "Los Angeles Chargers",
	"NY YANKEES":    "New York Yankees",
	"NY METS":       "New York Mets",
	"NY KNICKS":     "New York Knicks",
	"NY RANGERS":    "New York Rangers",
	"NY ISLANDERS":  "New York Islanders",
	"NY GIANTS":     "New York Giants",
	"NY JETS":       "New York Jets",
	"SF GIANTS":     "San Francisco Giants",
	"SF 49ERS":      "San Francisco 49ers",
	"TB LIGHTNING":  "Tampa Bay Lightning",
	"TB RAYS":       "Tampa Bay Rays",
	"TB BUCCANEERS": "Tampa Bay Buccaneers",
	"VEGAS KNIGHTS": "Vegas Golden Knights",
	"OKC THUNDER":   "Oklahoma City Thunder",
}

// Normalize canonicalizes a free-text team name: trim, uppercase, strip
// periods, collapse runs of whitespace, then apply the synonym table on an
// exact match. Idempotent, pure, never fails — unknown input comes back
// normalized but otherwise unchanged.
func Normalize(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Join(strings.Fields(s), " ")
	if canonical, ok := synonyms[s]; ok {
		return canonical
	}
	return s
}

// normalizeBase is Normalize without the synonym pass, used while building
// the synonym table itself.
func normalizeBase(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, ".", "")
	return strings.Join(strings.Fields(s), " ")
}

func buildSynonyms() map[string]string {
	// Count nickname keys across every block to find cross-league collisions.
	counts := make(map[string]int)
	for _, block := range data.Blocks() {
		for _, t := range block.Teams {
			if t.Nickname != "" && t.Nickname != t.Name {
				counts[normalizeBase(t.Nickname)]++
			}
		}
	}

	m := make(map[string]string)
	for _, block := range data.Blocks() {
		for _, t := range block.Teams {
			if t.Nickname == "" || t.Nickname == t.Name {
				continue
			}
			key := normalizeBase(t.Nickname)
			if counts[key] > 1 {
				continue // ambiguous across leagues — Resolver handles these
			}
			m[key] = normalizeBase(t.Name)
		}
	}
	for alias, name := range shorthandAliases {
		m[normalizeBase(alias)] = normalizeBase(name)
	}
	return m
}
