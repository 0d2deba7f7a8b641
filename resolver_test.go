// resolver_test.go — Fallback-chain behavior over a seeded cache-only store.
package streams

import "testing"

func urlFor(id int) string { return testTemplate.FallbackURL(id) }

func TestResolve_StructuredTeamNames(t *testing.T) {
	resolver, _ := newTestResolver(t)

	result := resolver.Resolve(GameReference{
		ID:       "mlb-001",
		League:   LeagueMLB,
		AwayTeam: TeamRef{Name: "Baltimore Orioles"},
		HomeTeam: TeamRef{Name: "Boston Red Sox"},
	})

	if result.AwayStreamURL == nil || *result.AwayStreamURL != urlFor(201) {
		t.Errorf("away = %v, want %q", deref(result.AwayStreamURL), urlFor(201))
	}
	if result.HomeStreamURL == nil || *result.HomeStreamURL != urlFor(210) {
		t.Errorf("home = %v, want %q", deref(result.HomeStreamURL), urlFor(210))
	}
}

func TestResolve_TitleOnlyGame(t *testing.T) {
	resolver, _ := newTestResolver(t)

	tests := []struct {
		name     string
		title    string
		wantAway int
		wantHome int
	}{
		{"vs separator", "Lakers vs Celtics", 88, 66},
		{"at separator", "New York Yankees at Boston Red Sox", 185, 210},
		{"@ separator", "Chicago Bears @ Green Bay Packers", 115, 117},
		{"dash separator", "Lakers - Celtics", 88, 66},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := resolver.Resolve(GameReference{League: "", Name: tt.title})
			if tt.wantAway > 0 {
				if result.AwayStreamURL == nil || *result.AwayStreamURL != urlFor(tt.wantAway) {
					t.Errorf("away = %v, want channel %d", deref(result.AwayStreamURL), tt.wantAway)
				}
			}
			if tt.wantHome > 0 {
				if result.HomeStreamURL == nil || *result.HomeStreamURL != urlFor(tt.wantHome) {
					t.Errorf("home = %v, want channel %d", deref(result.HomeStreamURL), tt.wantHome)
				}
			}
		})
	}
}

func TestResolve_ShortNameFallback(t *testing.T) {
	resolver, _ := newTestResolver(t)
	result := resolver.Resolve(GameReference{
		League:    LeagueNHL,
		ShortName: "Buffalo Sabres at New York Rangers",
	})
	if result.HomeStreamURL == nil || *result.HomeStreamURL != urlFor(18) {
		t.Errorf("home = %v, want channel 18", deref(result.HomeStreamURL))
	}
}

func TestResolve_AbbreviationExpansion(t *testing.T) {
	resolver, _ := newTestResolver(t)

	mlb := resolver.Resolve(GameReference{
		League:   LeagueMLB,
		AwayTeam: TeamRef{Abbreviation: "BOS"},
		HomeTeam: TeamRef{Name: "New York Yankees"},
	})
	if mlb.AwayStreamURL == nil || *mlb.AwayStreamURL != urlFor(210) {
		t.Errorf("BOS in mlb = %v, want channel 210", deref(mlb.AwayStreamURL))
	}

	nba := resolver.Resolve(GameReference{
		League:   LeagueNBA,
		AwayTeam: TeamRef{Abbreviation: "BOS"},
		HomeTeam: TeamRef{Name: "Los Angeles Lakers"},
	})
	if nba.AwayStreamURL == nil || *nba.AwayStreamURL != urlFor(66) {
		t.Errorf("BOS in nba = %v, want channel 66", deref(nba.AwayStreamURL))
	}
}

func TestResolve_LeagueAwareNicknames(t *testing.T) {
	resolver, _ := newTestResolver(t)

	tests := []struct {
		league League
		raw    string
		want   int
	}{
		{LeagueMLB, "Rangers", 191},  // Texas Rangers
		{LeagueNHL, "Rangers", 18},   // New York Rangers
		{"", "Rangers", 18},          // unknown league searches NHL first
		{LeagueNFL, "Panthers", 120}, // Carolina Panthers
		{LeagueNHL, "Panthers", 9},   // Florida Panthers
	}
	for _, tt := range tests {
		result := resolver.Resolve(GameReference{
			League:   tt.league,
			AwayTeam: TeamRef{Name: tt.raw},
			HomeTeam: TeamRef{Name: "ESPN"},
		})
		if result.AwayStreamURL == nil || *result.AwayStreamURL != urlFor(tt.want) {
			t.Errorf("%q in league %q = %v, want channel %d",
				tt.raw, tt.league, deref(result.AwayStreamURL), tt.want)
		}
	}
}

func TestResolve_LeaguePrefixedInput(t *testing.T) {
	resolver, _ := newTestResolver(t)

	// Provider-spelled inputs resolve to the same URL as the plain name.
	pairs := []struct {
		prefixed string
		plain    string
		league   League
	}{
		{"NFL-Bears", "Chicago Bears", LeagueNFL},
		{"VIP NBA Lakers", "Los Angeles Lakers", LeagueNBA},
		{"MLB - Yankees", "New York Yankees", LeagueMLB},
	}
	for _, p := range pairs {
		got := resolver.Resolve(GameReference{
			League:   p.league,
			AwayTeam: TeamRef{Name: p.prefixed},
			HomeTeam: TeamRef{Name: p.plain},
		})
		if got.AwayStreamURL == nil || got.HomeStreamURL == nil {
			t.Fatalf("%q unresolved: away=%v home=%v", p.prefixed,
				deref(got.AwayStreamURL), deref(got.HomeStreamURL))
		}
		if *got.AwayStreamURL != *got.HomeStreamURL {
			t.Errorf("%q resolved to %q, plain name to %q",
				p.prefixed, *got.AwayStreamURL, *got.HomeStreamURL)
		}
	}
}

func TestResolve_PrefixedStoreNames(t *testing.T) {
	// Sources imported straight from the provider keep prefixed names; a
	// plain team input must still find them via the prefixed spellings.
	store, registry := newTestStore(t)
	resolver := NewResolver(store, registry, testTemplate, newTestLogger())

	if _, err := store.Upsert(300, StreamSourceUpdate{
		TeamName: strPtr("NFL-RHINOS"),
		URL:      strPtr(urlFor(300)),
	}); err != nil {
		t.Fatal(err)
	}

	result := resolver.Resolve(GameReference{
		League:   LeagueNFL,
		AwayTeam: TeamRef{Name: "Austin Rhinos"},
	})
	if result.AwayStreamURL == nil || *result.AwayStreamURL != urlFor(300) {
		t.Errorf("away = %v, want channel 300", deref(result.AwayStreamURL))
	}
	if result.Trail[0].Stage != "league_prefix" {
		t.Errorf("stage = %q, want league_prefix", result.Trail[0].Stage)
	}
}

func TestResolve_SubstringFallback(t *testing.T) {
	resolver, _ := newTestResolver(t)

	result := resolver.Resolve(GameReference{
		League:   LeagueMLB,
		AwayTeam: TeamRef{Name: "Boston Red"},
	})
	if result.AwayStreamURL == nil || *result.AwayStreamURL != urlFor(210) {
		t.Fatalf("away = %v, want channel 210", deref(result.AwayStreamURL))
	}
	tr := result.Trail[0]
	if tr.Stage != "substring" {
		t.Errorf("stage = %q, want substring", tr.Stage)
	}
	if tr.Confidence <= 0 || tr.Confidence > 1 {
		t.Errorf("confidence = %f, want (0, 1]", tr.Confidence)
	}
}

func TestResolve_SubstringGuardsShortTokens(t *testing.T) {
	resolver, _ := newTestResolver(t)
	result := resolver.Resolve(GameReference{
		League:   LeagueMLB,
		AwayTeam: TeamRef{Name: "Sox"},
	})
	if result.AwayStreamURL != nil {
		t.Errorf("three-character token matched: %v", deref(result.AwayStreamURL))
	}
	if result.Trail[0].Stage != "none" {
		t.Errorf("stage = %q, want none", result.Trail[0].Stage)
	}
}

func TestResolve_EmptyGameYieldsNilURLs(t *testing.T) {
	resolver, _ := newTestResolver(t)
	result := resolver.Resolve(GameReference{})
	if result.AwayStreamURL != nil || result.HomeStreamURL != nil {
		t.Errorf("empty game resolved: away=%v home=%v",
			deref(result.AwayStreamURL), deref(result.HomeStreamURL))
	}
	for _, tr := range result.Trail {
		if tr.Stage != "none" {
			t.Errorf("side %s stage = %q, want none", tr.Side, tr.Stage)
		}
	}
}

func TestResolve_SidesAreIndependent(t *testing.T) {
	resolver, _ := newTestResolver(t)
	result := resolver.Resolve(GameReference{
		League:   LeagueNFL,
		AwayTeam: TeamRef{Name: "Chicago Bears"},
		HomeTeam: TeamRef{Name: "Zzyzx Nobodies"},
	})
	if result.AwayStreamURL == nil || *result.AwayStreamURL != urlFor(115) {
		t.Errorf("away = %v, want channel 115", deref(result.AwayStreamURL))
	}
	if result.HomeStreamURL != nil {
		t.Errorf("unknown home resolved: %v", deref(result.HomeStreamURL))
	}
}

func TestResolve_OverrideURLWins(t *testing.T) {
	resolver, store := newTestResolver(t)

	// An override without a trailing "{id}.m3u8" passes standardization
	// untouched, so the resolved URL must be the override verbatim.
	override := "https://backup.vpstream.live/custom/index.m3u8"
	if _, err := store.Upsert(210, StreamSourceUpdate{URL: strPtr(override)}); err != nil {
		t.Fatal(err)
	}

	result := resolver.Resolve(GameReference{
		League:   LeagueMLB,
		HomeTeam: TeamRef{Name: "Boston Red Sox"},
	})
	if result.HomeStreamURL == nil || *result.HomeStreamURL != override {
		t.Errorf("home = %v, want the override URL", deref(result.HomeStreamURL))
	}
}

func TestResolve_TraceStages(t *testing.T) {
	resolver, _ := newTestResolver(t)

	tests := []struct {
		raw       string
		league    League
		wantStage string
	}{
		{"Boston Red Sox", LeagueMLB, "direct"},
		{"Rangers", LeagueMLB, "nickname"},
		{"NFL-Bears", LeagueNFL, "league_prefix"},
		{"Boston Red", LeagueMLB, "substring"},
		{"Zzyzx Nobodies", LeagueNFL, "none"},
	}
	for _, tt := range tests {
		result := resolver.Resolve(GameReference{
			League:   tt.league,
			AwayTeam: TeamRef{Name: tt.raw},
		})
		if got := result.Trail[0].Stage; got != tt.wantStage {
			t.Errorf("stage for %q = %q, want %q", tt.raw, got, tt.wantStage)
		}
	}
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

func TestParseTitle(t *testing.T) {
	tests := []struct {
		title string
		away  string
		home  string
		ok    bool
	}{
		{"Yankees at Red Sox", "Yankees", "Red Sox", true},
		{"Lakers vs Celtics", "Lakers", "Celtics", true},
		{"Bears @ Packers", "Bears", "Packers", true},
		{"Rangers - Islanders", "Rangers", "Islanders", true},
		{"no separator here", "", "", false},
		{"", "", "", false},
		{" at nothing", "", "", false},
	}
	for _, tt := range tests {
		away, home, ok := parseTitle(tt.title)
		if away != tt.away || home != tt.home || ok != tt.ok {
			t.Errorf("parseTitle(%q) = (%q, %q, %v), want (%q, %q, %v)",
				tt.title, away, home, ok, tt.away, tt.home, tt.ok)
		}
	}
}

func TestJaroWinkler(t *testing.T) {
	if got := jaroWinkler("boston red sox", "boston red sox"); got != 1.0 {
		t.Errorf("identical strings = %f, want 1.0", got)
	}
	if got := jaroWinkler("boston red sox", "denver nuggets"); got > 0.7 {
		t.Errorf("unrelated strings = %f, want low", got)
	}
	close := jaroWinkler("boston red sox", "boston red")
	far := jaroWinkler("boston red sox", "texas rangers")
	if close <= far {
		t.Errorf("prefix-similar %f not above dissimilar %f", close, far)
	}
}
