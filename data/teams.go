// teams.go — Static team dictionaries and channel-number blocks per league.
// Channel numbers follow the upstream provider's lineup order, which is not
// alphabetical and has been renumbered before (see the MLB block history in
// the registry). Edit the blocks here, never at lookup call sites.
package data

// Team is one entry in a league's channel block.
type Team struct {
	ID           int    // upstream channel number
	Name         string // full canonical name, the durable lookup key
	Nickname     string // city-less form ("Red Sox", "Maple Leafs")
	Abbreviation string
}

// SpecialChannels are national broadcaster channels outside any league block.
var SpecialChannels = []Team{
	{1, "ESPN", "ESPN", "ESPN"},
	{2, "ESPN2", "ESPN2", "ESPN2"},
	{3, "FOX Sports 1", "FS1", "FS1"},
	{4, "TNT Sports", "TNT", "TNT"},
	{5, "NFL Network", "NFL Network", "NFLN"},
}

// NHLTeams covers channels 6–37, in division order.
var NHLTeams = []Team{
	// Atlantic
	{6, "Boston Bruins", "Bruins", "BOS"},
	{7, "Buffalo Sabres", "Sabres", "BUF"},
	{8, "Detroit Red Wings", "Red Wings", "DET"},
	{9, "Florida Panthers", "Panthers", "FLA"},
	{10, "Montreal Canadiens", "Canadiens", "MTL"},
	{11, "Ottawa Senators", "Senators", "OTT"},
	{12, "Tampa Bay Lightning", "Lightning", "TBL"},
	{13, "Toronto Maple Leafs", "Maple Leafs", "TOR"},
	// Metropolitan
	{14, "Carolina Hurricanes", "Hurricanes", "CAR"},
	{15, "Columbus Blue Jackets", "Blue Jackets", "CBJ"},
	{16, "New Jersey Devils", "Devils", "NJD"},
	{17, "New York Islanders", "Islanders", "NYI"},
	{18, "New York Rangers", "Rangers", "NYR"},
	{19, "Philadelphia Flyers", "Flyers", "PHI"},
	{20, "Pittsburgh Penguins", "Penguins", "PIT"},
	{21, "Washington Capitals", "Capitals", "WSH"},
	// Central
	{22, "Chicago Blackhawks", "Blackhawks", "CHI"},
	{23, "Colorado Avalanche", "Avalanche", "COL"},
	{24, "Dallas Stars", "Stars", "DAL"},
	{25, "Minnesota Wild", "Wild", "MIN"},
	{26, "Nashville Predators", "Predators", "NSH"},
	{27, "St. Louis Blues", "Blues", "STL"},
	{28, "Utah Mammoth", "Mammoth", "UTA"},
	{29, "Winnipeg Jets", "Jets", "WPG"},
	// Pacific
	{30, "Anaheim Ducks", "Ducks", "ANA"},
	{31, "Calgary Flames", "Flames", "CGY"},
	{32, "Edmonton Oilers", "Oilers", "EDM"},
	{33, "Los Angeles Kings", "Kings", "LAK"},
	{34, "San Jose Sharks", "Sharks", "SJS"},
	{35, "Seattle Kraken", "Kraken", "SEA"},
	{36, "Vancouver Canucks", "Canucks", "VAN"},
	{37, "Vegas Golden Knights", "Golden Knights", "VGK"},
}

// NBATeams covers channels 66–95, in division order.
var NBATeams = []Team{
	// Atlantic
	{66, "Boston Celtics", "Celtics", "BOS"},
	{67, "Brooklyn Nets", "Nets", "BKN"},
	{68, "New York Knicks", "Knicks", "NYK"},
	{69, "Philadelphia 76ers", "76ers", "PHI"},
	{70, "Toronto Raptors", "Raptors", "TOR"},
	// Central
	{71, "Chicago Bulls", "Bulls", "CHI"},
	{72, "Cleveland Cavaliers", "Cavaliers", "CLE"},
	{73, "Detroit Pistons", "Pistons", "DET"},
	{74, "Indiana Pacers", "Pacers", "IND"},
	{75, "Milwaukee Bucks", "Bucks", "MIL"},
	// Southeast
	{76, "Atlanta Hawks", "Hawks", "ATL"},
	{77, "Charlotte Hornets", "Hornets", "CHA"},
	{78, "Miami Heat", "Heat", "MIA"},
	{79, "Orlando Magic", "Magic", "ORL"},
	{80, "Washington Wizards", "Wizards", "WAS"},
	// Northwest
	{81, "Denver Nuggets", "Nuggets", "DEN"},
	{82, "Minnesota Timberwolves", "Timberwolves", "MIN"},
	{83, "Oklahoma City Thunder", "Thunder", "OKC"},
	{84, "Portland Trail Blazers", "Trail Blazers", "POR"},
	{85, "Utah Jazz", "Jazz", "UTA"},
	// Pacific
	{86, "Golden State Warriors", "Warriors", "GSW"},
	{87, "Los Angeles Clippers", "Clippers", "LAC"},
	{88, "Los Angeles Lakers", "Lakers", "LAL"},
	{89, "Phoenix Suns", "Suns", "PHX"},
	{90, "Sacramento Kings", "Kings", "SAC"},
	// Southwest
	{91, "Dallas Mavericks", "Mavericks", "DAL"},
	{92, "Houston Rockets", "Rockets", "HOU"},
	{93, "Memphis Grizzlies", "Grizzlies", "MEM"},
	{94, "New Orleans Pelicans", "Pelicans", "NOP"},
	{95, "San Antonio Spurs", "Spurs", "SAS"},
}

// NFLTeams covers channels 111–142, in division order.
var NFLTeams = []Team{
	// NFC East
	{111, "Philadelphia Eagles", "Eagles", "PHI"},
	{112, "Dallas Cowboys", "Cowboys", "DAL"},
	{113, "New York Giants", "Giants", "NYG"},
	{114, "Washington Commanders", "Commanders", "WAS"},
	// NFC North
	{115, "Chicago Bears", "Bears", "CHI"},
	{116, "Detroit Lions", "Lions", "DET"},
	{117, "Green Bay Packers", "Packers", "GB"},
	{118, "Minnesota Vikings", "Vikings", "MIN"},
	// NFC South
	{119, "Atlanta Falcons", "Falcons", "ATL"},
	{120, "Carolina Panthers", "Panthers", "CAR"},
	{121, "New Orleans Saints", "Saints", "NO"},
	{122, "Tampa Bay Buccaneers", "Buccaneers", "TB"},
	// NFC West
	{123, "Arizona Cardinals", "Cardinals", "ARI"},
	{124, "Los Angeles Rams", "Rams", "LAR"},
	{125, "San Francisco 49ers", "49ers", "SF"},
	{126, "Seattle Seahawks", "Seahawks", "SEA"},
	// AFC East
	{127, "Buffalo Bills", "Bills", "BUF"},
	{128, "Miami Dolphins", "Dolphins", "MIA"},
	{129, "New England Patriots", "Patriots", "NE"},
	{130, "New York Jets", "Jets", "NYJ"},
	// AFC North
	{131, "Baltimore Ravens", "Ravens", "BAL"},
	{132, "Cincinnati Bengals", "Bengals", "CIN"},
	{133, "Cleveland Browns", "Browns", "CLE"},
	{134, "Pittsburgh Steelers", "Steelers", "PIT"},
	// AFC South
	{135, "Houston Texans", "Texans", "HOU"},
	{136, "Indianapolis Colts", "Colts", "IND"},
	{137, "Jacksonville Jaguars", "Jaguars", "JAX"},
	{138, "Tennessee Titans", "Titans", "TEN"},
	// AFC West
	{139, "Denver Broncos", "Broncos", "DEN"},
	{140, "Kansas City Chiefs", "Chiefs", "KC"},
	{141, "Las Vegas Raiders", "Raiders", "LV"},
	{142, "Los Angeles Chargers", "Chargers", "LAC"},
}

// MLBTeams covers channels 185–214 — the third MLB block the provider has
// issued (previously 36–65, then 148–177). Provider lineup order.
var MLBTeams = []Team{
	{185, "New York Yankees", "Yankees", "NYY"},
	{186, "Los Angeles Dodgers", "Dodgers", "LAD"},
	{187, "Houston Astros", "Astros", "HOU"},
	{188, "Atlanta Braves", "Braves", "ATL"},
	{189, "Philadelphia Phillies", "Phillies", "PHI"},
	{190, "San Diego Padres", "Padres", "SD"},
	{191, "Texas Rangers", "Rangers", "TEX"},
	{192, "Seattle Mariners", "Mariners", "SEA"},
	{193, "Toronto Blue Jays", "Blue Jays", "TOR"},
	{194, "Tampa Bay Rays", "Rays", "TB"},
	{195, "Minnesota Twins", "Twins", "MIN"},
	{196, "Cleveland Guardians", "Guardians", "CLE"},
	{197, "Chicago Cubs", "Cubs", "CHC"},
	{198, "St. Louis Cardinals", "Cardinals", "STL"},
	{199, "Milwaukee Brewers", "Brewers", "MIL"},
	{200, "Arizona Diamondbacks", "Diamondbacks", "AZ"},
	{201, "Baltimore Orioles", "Orioles", "BAL"},
	{202, "San Francisco Giants", "Giants", "SF"},
	{203, "New York Mets", "Mets", "NYM"},
	{204, "Miami Marlins", "Marlins", "MIA"},
	{205, "Cincinnati Reds", "Reds", "CIN"},
	{206, "Pittsburgh Pirates", "Pirates", "PIT"},
	{207, "Detroit Tigers", "Tigers", "DET"},
	{208, "Kansas City Royals", "Royals", "KC"},
	{209, "Chicago White Sox", "White Sox", "CWS"},
	{210, "Boston Red Sox", "Red Sox", "BOS"},
	{211, "Los Angeles Angels", "Angels", "LAA"},
	{212, "Oakland Athletics", "Athletics", "OAK"},
	{213, "Colorado Rockies", "Rockies", "COL"},
	{214, "Washington Nationals", "Nationals", "WSH"},
}
