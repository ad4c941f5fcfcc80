package testutil

import (
	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/games"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/subscriptions"
)

// Team ids used by the fixtures below.
const (
	TORID = 10
	BOSID = 6
)

// Player ids on the sample roster.
const (
	JaneDoeID  int64 = 8478483
	JohnRoeID  int64 = 8479318
	AmyPoeID   int64 = 8477939
	BobStoneID int64 = 8475166
)

// SampleRoster returns a small two-team roster.
func SampleRoster() []games.RosterEntry {
	return []games.RosterEntry{
		{PlayerID: JaneDoeID, FirstName: "Jane", LastName: "Doe", SweaterNumber: 9, TeamID: TORID, Headshot: "https://assets.nhle.com/mugs/jane.png"},
		{PlayerID: JohnRoeID, FirstName: "John", LastName: "Roe", SweaterNumber: 16, TeamID: TORID},
		{PlayerID: AmyPoeID, FirstName: "Amy", LastName: "Poe", SweaterNumber: 44, TeamID: TORID},
		{PlayerID: BobStoneID, FirstName: "Bob", LastName: "Stone", SweaterNumber: 63, TeamID: BOSID},
	}
}

// SampleFeed returns a TOR (home) vs BOS (away) feed with the given state and plays.
func SampleFeed(gameID int64, code string, plays ...games.ScoringPlay) games.Feed {
	return games.Feed{
		GameID:        gameID,
		LifecycleCode: code,
		HomeTeam:      games.FeedTeam{ID: TORID, Abbrev: "TOR"},
		AwayTeam:      games.FeedTeam{ID: BOSID, Abbrev: "BOS"},
		Roster:        SampleRoster(),
		ScoringPlays:  plays,
	}
}

// Goal builds a scoring play in period 2 with the given score.
func Goal(eventID int64, teamID int, scorer int64, home, away int, assists ...int64) games.ScoringPlay {
	return games.ScoringPlay{
		EventID:         eventID,
		ScoringTeamID:   teamID,
		ScoringPlayerID: scorer,
		AssistPlayerIDs: assists,
		HomeScore:       IntPtr(home),
		AwayScore:       IntPtr(away),
		PeriodNumber:    2,
		PeriodType:      "REG",
		TimeInPeriod:    "10:00",
	}
}

// ScheduledGame returns a TOR vs BOS schedule entry.
func ScheduledGame(id int64, code string) games.ScheduledGame {
	return games.ScheduledGame{
		ID:            id,
		LifecycleCode: code,
		GameDate:      "2024-11-04",
		HomeTeam:      "TOR",
		AwayTeam:      "BOS",
	}
}

// SampleSubscription returns a subscription with the given id, topic and team.
func SampleSubscription(id, topic, team string) subscriptions.Subscription {
	return subscriptions.Subscription{
		ID:         id,
		Topic:      topic,
		TeamAbbrev: team,
		CreatedAt:  MustParseRFC3339("2024-11-04T18:00:00Z"),
	}
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
