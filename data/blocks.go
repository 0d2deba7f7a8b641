// blocks.go — League block enumeration over the team dictionaries.
package data

// Block pairs a league ID with the teams occupying its channel block.
type Block struct {
	League string
	Teams  []Team
}

// Blocks returns every seeded channel block in lineup order.
func Blocks() []Block {
	return []Block{
		{"special", SpecialChannels},
		{"nhl", NHLTeams},
		{"nba", NBATeams},
		{"nfl", NFLTeams},
		{"mlb", MLBTeams},
	}
}

// TotalChannels is the number of channel numbers across all seeded blocks.
func TotalChannels() int {
	n := 0
	for _, b := range Blocks() {
		n += len(b.Teams)
	}
	return n
}
