package teams

import (
	"sort"
	"strings"
)

var all = []Team{
	{Abbreviation: "ANA", ID: 24, Name: "Anaheim Ducks", Conference: "Western", Division: "Pacific"},
	{Abbreviation: "BOS", ID: 6, Name: "Boston Bruins", Conference: "Eastern", Division: "Atlantic"},
	{Abbreviation: "BUF", ID: 7, Name: "Buffalo Sabres", Conference: "Eastern", Division: "Atlantic"},
	{Abbreviation: "CGY", ID: 20, Name: "Calgary Flames", Conference: "Western", Division: "Pacific"},
	{Abbreviation: "CAR", ID: 12, Name: "Carolina Hurricanes", Conference: "Eastern", Division: "Metropolitan"},
	{Abbreviation: "CHI", ID: 16, Name: "Chicago Blackhawks", Conference: "Western", Division: "Central"},
	{Abbreviation: "COL", ID: 21, Name: "Colorado Avalanche", Conference: "Western", Division: "Central"},
	{Abbreviation: "CBJ", ID: 29, Name: "Columbus Blue Jackets", Conference: "Eastern", Division: "Metropolitan"},
	{Abbreviation: "DAL", ID: 25, Name: "Dallas Stars", Conference: "Western", Division: "Central"},
	{Abbreviation: "DET", ID: 17, Name: "Detroit Red Wings", Conference: "Eastern", Division: "Atlantic"},
	{Abbreviation: "EDM", ID: 22, Name: "Edmonton Oilers", Conference: "Western", Division: "Pacific"},
	{Abbreviation: "FLA", ID: 13, Name: "Florida Panthers", Conference: "Eastern", Division: "Atlantic"},
	{Abbreviation: "LAK", ID: 26, Name: "Los Angeles Kings", Conference: "Western", Division: "Pacific"},
	{Abbreviation: "MIN", ID: 30, Name: "Minnesota Wild", Conference: "Western", Division: "Central"},
	{Abbreviation: "MTL", ID: 8, Name: "Montreal Canadiens", Conference: "Eastern", Division: "Atlantic"},
	{Abbreviation: "NSH", ID: 18, Name: "Nashville Predators", Conference: "Western", Division: "Central"},
	{Abbreviation: "NJD", ID: 1, Name: "New Jersey Devils", Conference: "Eastern", Division: "Metropolitan"},
	{Abbreviation: "NYI", ID: 2, Name: "New York Islanders", Conference: "Eastern", Division: "Metropolitan"},
	{Abbreviation: "NYR", ID: 3, Name: "New York Rangers", Conference: "Eastern", Division: "Metropolitan"},
	{Abbreviation: "OTT", ID: 9, Name: "Ottawa Senators", Conference: "Eastern", Division: "Atlantic"},
	{Abbreviation: "PHI", ID: 4, Name: "Philadelphia Flyers", Conference: "Eastern", Division: "Metropolitan"},
	{Abbreviation: "PIT", ID: 5, Name: "Pittsburgh Penguins", Conference: "Eastern", Division: "Metropolitan"},
	{Abbreviation: "SJS", ID: 28, Name: "San Jose Sharks", Conference: "Western", Division: "Pacific"},
	{Abbreviation: "SEA", ID: 55, Name: "Seattle Kraken", Conference: "Western", Division: "Pacific"},
	{Abbreviation: "STL", ID: 19, Name: "St. Louis Blues", Conference: "Western", Division: "Central"},
	{Abbreviation: "TBL", ID: 14, Name: "Tampa Bay Lightning", Conference: "Eastern", Division: "Atlantic"},
	{Abbreviation: "TOR", ID: 10, Name: "Toronto Maple Leafs", Conference: "Eastern", Division: "Atlantic"},
	{Abbreviation: "UTA", ID: 32, Name: "Utah Hockey Club", Conference: "Western", Division: "Central"},
	{Abbreviation: "VAN", ID: 23, Name: "Vancouver Canucks", Conference: "Western", Division: "Pacific"},
	{Abbreviation: "VGK", ID: 54, Name: "Vegas Golden Knights", Conference: "Western", Division: "Pacific"},
	{Abbreviation: "WSH", ID: 15, Name: "Washington Capitals", Conference: "Eastern", Division: "Metropolitan"},
	{Abbreviation: "WPG", ID: 52, Name: "Winnipeg Jets", Conference: "Western", Division: "Central"},
}

var (
	byAbbrev = make(map[string]Team, len(all))
	byID     = make(map[int]Team, len(all))
)

func init() {
	for _, t := range all {
		byAbbrev[t.Abbreviation] = t
		byID[t.ID] = t
	}
}

// All returns a copy of the directory in its canonical order.
func All() []Team {
	out := make([]Team, len(all))
	copy(out, all)
	return out
}

// ByAbbrev looks up a team by its three-letter abbreviation. Lookups are exact.
func ByAbbrev(abbrev string) (Team, bool) {
	t, ok := byAbbrev[abbrev]
	return t, ok
}

// ByID looks up a team by its upstream numeric id.
func ByID(id int) (Team, bool) {
	t, ok := byID[id]
	return t, ok
}

// Exists reports whether abbrev names a known team.
func Exists(abbrev string) bool {
	_, ok := byAbbrev[abbrev]
	return ok
}

// NameOr returns the team's display name, or fallback when abbrev is unknown.
func NameOr(abbrev, fallback string) string {
	if t, ok := byAbbrev[abbrev]; ok {
		return t.Name
	}
	return fallback
}

// Abbreviations returns every known abbreviation, sorted.
func Abbreviations() []string {
	out := make([]string, 0, len(all))
	for _, t := range all {
		out = append(out, t.Abbreviation)
	}
	sort.Strings(out)
	return out
}

// Normalize upper-cases and trims a user supplied abbreviation.
func Normalize(abbrev string) string {
	return strings.ToUpper(strings.TrimSpace(abbrev))
}
