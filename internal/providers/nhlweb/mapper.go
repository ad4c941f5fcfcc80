package nhlweb

import (
	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/games"
)

func mapScheduledGame(g scheduleGame) games.ScheduledGame {
	return games.ScheduledGame{
		ID:            g.ID,
		LifecycleCode: g.GameState,
		GameDate:      g.GameDate,
		StartTimeUTC:  g.StartTimeUTC,
		HomeTeam:      g.HomeTeam.Abbrev,
		AwayTeam:      g.AwayTeam.Abbrev,
	}
}

func mapFeed(gameID int64, p playByPlayResponse) games.Feed {
	feed := games.Feed{
		GameID:         gameID,
		LifecycleCode:  p.GameState,
		HomeTeam:       games.FeedTeam{ID: p.HomeTeam.ID, Abbrev: p.HomeTeam.Abbrev},
		AwayTeam:       games.FeedTeam{ID: p.AwayTeam.ID, Abbrev: p.AwayTeam.Abbrev},
		InIntermission: p.Clock.InIntermission,
		Roster:         make([]games.RosterEntry, 0, len(p.RosterSpots)),
	}
	for _, spot := range p.RosterSpots {
		feed.Roster = append(feed.Roster, mapRosterSpot(spot))
	}
	for _, play := range p.Plays {
		if play.TypeDescKey != playTypeGoal {
			continue
		}
		feed.ScoringPlays = append(feed.ScoringPlays, mapGoal(play))
	}
	return feed
}

func mapRosterSpot(s rosterSpot) games.RosterEntry {
	return games.RosterEntry{
		PlayerID:      s.PlayerID,
		FirstName:     string(s.FirstName),
		LastName:      string(s.LastName),
		SweaterNumber: s.SweaterNumber,
		TeamID:        s.TeamID,
		Headshot:      s.Headshot,
	}
}

// mapGoal keeps goals without details; the tracker treats them as orphaned.
func mapGoal(p playResponse) games.ScoringPlay {
	play := games.ScoringPlay{
		EventID:      p.EventID,
		PeriodNumber: p.PeriodDescriptor.Number,
		PeriodType:   p.PeriodDescriptor.PeriodType,
		TimeInPeriod: p.TimeInPeriod,
	}
	if d := p.Details; d != nil {
		play.ScoringTeamID = d.EventOwnerTeamID
		play.ScoringPlayerID = d.ScoringPlayerID
		play.HomeScore = d.HomeScore
		play.AwayScore = d.AwayScore
		for _, id := range []int64{d.Assist1PlayerID, d.Assist2PlayerID} {
			if id != 0 {
				play.AssistPlayerIDs = append(play.AssistPlayerIDs, id)
			}
		}
	}
	return play
}
