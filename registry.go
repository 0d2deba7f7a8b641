// registry.go — Static channel-number classifier and mapping-version history.
// Classifies an upstream channel number into a league by testing it against an
// ordered list of disjoint ranges, and supplies default team/display names for
// numbers inside a seeded block. The ranges move when the provider renumbers a
// block (the MLB block has moved twice already), so they are edited here and
// nowhere else.
package streams

import (
	"fmt"
	"sort"

	"github.com/Rezx100/veloplay1-sub001/data"
)

// CurrentMappingVersion tags the active bulk numbering. Bumped on every
// provider renumbering event; never reused.
const CurrentMappingVersion = 3

// leagueRange maps an inclusive channel-number range to a league.
type leagueRange struct {
	min, max int
	league   League
}

// leagueRanges is the active mapping (version 3). First match wins; ranges
// are disjoint at any one version.
var leagueRanges = []leagueRange{
	{1, 5, LeagueSpecial},
	{6, 37, LeagueNHL},
	{66, 95, LeagueNBA},
	{111, 142, LeagueNFL},
	{185, 214, LeagueMLB},
}

// retiredRange is a range from an earlier mapping version, kept so that stale
// records can be recognized for what they were.
type retiredRange struct {
	min, max int
	league   League
	version  int
}

// retiredRanges records the MLB block's renumbering history.
var retiredRanges = []retiredRange{
	{36, 65, LeagueMLB, 1},
	{148, 177, LeagueMLB, 2},
}

// Classification is the registry's answer for one channel number.
type Classification struct {
	LeagueID    League
	DisplayName string
	TeamName    string
}

// Registry classifies channel numbers and indexes the seeded team
// dictionaries by number, canonical name, nickname, and abbreviation.
type Registry struct {
	byID      map[int]data.Team
	idByName  map[string]int            // normalized canonical name → channel number
	nicknames map[League]map[string]string // normalized nickname → canonical name
	abbrs     map[League]map[string]string // abbreviation → canonical name
	leagueOf  map[int]League
}

// NewRegistry builds the lookup indexes from the static data blocks.
func NewRegistry() *Registry {
	r := &Registry{
		byID:      make(map[int]data.Team),
		idByName:  make(map[string]int),
		nicknames: make(map[League]map[string]string),
		abbrs:     make(map[League]map[string]string),
		leagueOf:  make(map[int]League),
	}
	for _, block := range data.Blocks() {
		league := League(block.League)
		r.nicknames[league] = make(map[string]string)
		r.abbrs[league] = make(map[string]string)
		for _, t := range block.Teams {
			r.byID[t.ID] = t
			r.leagueOf[t.ID] = league
			r.idByName[normalizeBase(t.Name)] = t.ID
			if t.Nickname != "" {
				r.nicknames[league][normalizeBase(t.Nickname)] = t.Name
			}
			if t.Abbreviation != "" {
				r.abbrs[league][t.Abbreviation] = t.Name
			}
		}
	}
	return r
}

// Classify returns the league and default names for a channel number.
// Numbers outside every known range fall into the "other" bucket; this never
// fails and never blocks resolution.
func (r *Registry) Classify(id int) Classification {
	for _, rng := range leagueRanges {
		if id < rng.min || id > rng.max {
			continue
		}
		if t, ok := r.byID[id]; ok {
			return Classification{LeagueID: rng.league, DisplayName: t.Name, TeamName: t.Name}
		}
		return Classification{
			LeagueID:    rng.league,
			DisplayName: placeholderName(rng.league, id),
			TeamName:    placeholderName(rng.league, id),
		}
	}
	return Classification{
		LeagueID:    LeagueOther,
		DisplayName: placeholderName(LeagueOther, id),
		TeamName:    placeholderName(LeagueOther, id),
	}
}

// IDByName returns the channel number for a normalized canonical team name.
func (r *Registry) IDByName(key string) (int, bool) {
	id, ok := r.idByName[key]
	return id, ok
}

// CanonicalForNickname resolves a normalized city-less nickname within one
// league. Nickname maps are flat: an alias points directly at one canonical
// name, never at another alias.
func (r *Registry) CanonicalForNickname(league League, key string) (string, bool) {
	m, ok := r.nicknames[league]
	if !ok {
		return "", false
	}
	name, ok := m[key]
	return name, ok
}

// CanonicalForAbbreviation resolves a league abbreviation ("LAL", "BOS").
func (r *Registry) CanonicalForAbbreviation(league League, abbr string) (string, bool) {
	m, ok := r.abbrs[league]
	if !ok {
		return "", false
	}
	name, ok := m[abbr]
	return name, ok
}

// KnownIDs returns every seeded channel number in ascending order. This is
// the catalog the Override Store must always be able to enumerate in full.
func (r *Registry) KnownIDs() []int {
	ids := make([]int, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// RetiredVersionFor reports whether a channel number belonged to a retired
// block, and at which mapping version.
func RetiredVersionFor(id int) (League, int, bool) {
	for _, rng := range retiredRanges {
		if id >= rng.min && id <= rng.max {
			return rng.league, rng.version, true
		}
	}
	return "", 0, false
}

// placeholderName is the human-readable default for a number with no explicit
// team mapping.
func placeholderName(league League, id int) string {
	switch league {
	case LeagueOther:
		return fmt.Sprintf("Channel %d", id)
	case LeagueSpecial:
		return fmt.Sprintf("Special Channel %d", id)
	default:
		return fmt.Sprintf("%s Channel %d", upperLeague(league), id)
	}
}

// upperLeague renders a league ID the way it appears in channel names.
func upperLeague(l League) string {
	switch l {
	case LeagueNHL:
		return "NHL"
	case LeagueNBA:
		return "NBA"
	case LeagueNFL:
		return "NFL"
	case LeagueMLB:
		return "MLB"
	default:
		return string(l)
	}
}
