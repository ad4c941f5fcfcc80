package games

// Phase is the lifecycle phase of a game as seen by the tracker.
type Phase string

const (
	PhaseIdle         Phase = "IDLE"
	PhasePreGame      Phase = "PRE_GAME"
	PhaseLive         Phase = "LIVE"
	PhaseIntermission Phase = "INTERMISSION"
	PhasePostGame     Phase = "POST_GAME"
)

// MapPhase converts an upstream lifecycle code into a Phase.
// Unrecognized codes map to PhaseIdle.
func MapPhase(code string) Phase {
	switch code {
	case "FUT", "PRE":
		return PhasePreGame
	case "LIVE", "CRIT":
		return PhaseLive
	case "OFF", "FINAL":
		return PhasePostGame
	default:
		return PhaseIdle
	}
}

// ScheduledGame is one entry from a team's schedule for the day.
type ScheduledGame struct {
	ID            int64  `json:"id"`
	LifecycleCode string `json:"gameState"`
	GameDate      string `json:"gameDate"`
	StartTimeUTC  string `json:"startTimeUTC,omitempty"`
	HomeTeam      string `json:"homeTeam"`
	AwayTeam      string `json:"awayTeam"`
}

// Phase maps the game's lifecycle code.
func (g ScheduledGame) Phase() Phase {
	return MapPhase(g.LifecycleCode)
}

// FeedTeam identifies one side of a game in a detailed feed.
type FeedTeam struct {
	ID     int    `json:"id"`
	Abbrev string `json:"abbrev"`
}

// RosterEntry is a player dressed for a game.
type RosterEntry struct {
	PlayerID      int64  `json:"playerId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	SweaterNumber int    `json:"sweaterNumber,omitempty"`
	TeamID        int    `json:"teamId"`
	Headshot      string `json:"headshot,omitempty"`
}

// FullName joins first and last name.
func (r RosterEntry) FullName() string {
	return r.FirstName + " " + r.LastName
}

// ScoringPlay is a goal event from the play-by-play feed.
// Scores are nil when the upstream omitted them.
type ScoringPlay struct {
	EventID         int64   `json:"eventId"`
	ScoringTeamID   int     `json:"scoringTeamId"`
	ScoringPlayerID int64   `json:"scoringPlayerId"`
	AssistPlayerIDs []int64 `json:"assistPlayerIds,omitempty"`
	HomeScore       *int    `json:"homeScore,omitempty"`
	AwayScore       *int    `json:"awayScore,omitempty"`
	PeriodNumber    int     `json:"periodNumber,omitempty"`
	PeriodType      string  `json:"periodType,omitempty"`
	TimeInPeriod    string  `json:"timeInPeriod,omitempty"`
}

// HasPeriod reports whether the play carried a period descriptor.
func (p ScoringPlay) HasPeriod() bool {
	return p.PeriodNumber > 0 || p.PeriodType != ""
}

// Feed is the detailed event feed for a single game.
type Feed struct {
	GameID         int64         `json:"gameId"`
	LifecycleCode  string        `json:"gameState"`
	HomeTeam       FeedTeam      `json:"homeTeam"`
	AwayTeam       FeedTeam      `json:"awayTeam"`
	Roster         []RosterEntry `json:"roster"`
	ScoringPlays   []ScoringPlay `json:"scoringPlays"`
	InIntermission bool          `json:"inIntermission"`
}

// Phase maps the feed's lifecycle code.
func (f Feed) Phase() Phase {
	return MapPhase(f.LifecycleCode)
}

// TeamAbbrevFor resolves a team id to the home or away abbreviation.
func (f Feed) TeamAbbrevFor(teamID int) (string, bool) {
	switch {
	case teamID == f.HomeTeam.ID && f.HomeTeam.Abbrev != "":
		return f.HomeTeam.Abbrev, true
	case teamID == f.AwayTeam.ID && f.AwayTeam.Abbrev != "":
		return f.AwayTeam.Abbrev, true
	default:
		return "", false
	}
}

// EventKey identifies a scoring play across the lifetime of the service.
type EventKey struct {
	GameID  int64
	EventID int64
}

// NewEventKey builds the dedup key for a play in a game.
func NewEventKey(gameID int64, play ScoringPlay) EventKey {
	return EventKey{GameID: gameID, EventID: play.EventID}
}
