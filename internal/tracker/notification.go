package tracker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/games"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/notify"
)

const (
	unknownScorer = "Unknown"
	missingScore  = "?"
	maxAssists    = 2
)

var goalTags = []string{"ice_hockey", "goal"}

// goalContext is everything needed to describe one goal.
type goalContext struct {
	play        games.ScoringPlay
	feed        games.Feed
	scoringTeam string
	roster      map[int64]games.RosterEntry
	logoBaseURL string
}

func buildGoalNotification(gc goalContext) notify.Notification {
	scorer, known := gc.roster[gc.play.ScoringPlayerID]

	title := "🚨 GOAL! " + unknownScorer
	image := ""
	if known {
		title = "🚨 GOAL! " + scorer.FullName()
		if scorer.SweaterNumber > 0 {
			title += " #" + strconv.Itoa(scorer.SweaterNumber)
		}
		image = scorer.Headshot
	}

	message := strings.Join([]string{
		scoreLine(gc),
		periodLine(gc.play),
		assistLine(gc.play, gc.roster),
	}, "\n")

	return notify.Notification{
		Title:    title,
		Message:  message,
		ImageURL: image,
		IconURL:  logoURL(gc.logoBaseURL, gc.scoringTeam),
		Priority: notify.PriorityMax,
		Tags:     append([]string(nil), goalTags...),
	}
}

// scoreLine renders "<SCORER> <their score> - <OPPONENT> <opponent score>".
func scoreLine(gc goalContext) string {
	home, away := formatScore(gc.play.HomeScore), formatScore(gc.play.AwayScore)
	if gc.scoringTeam == gc.feed.HomeTeam.Abbrev {
		return fmt.Sprintf("%s %s - %s %s", gc.scoringTeam, home, gc.feed.AwayTeam.Abbrev, away)
	}
	return fmt.Sprintf("%s %s - %s %s", gc.scoringTeam, away, gc.feed.HomeTeam.Abbrev, home)
}

func formatScore(v *int) string {
	if v == nil {
		return missingScore
	}
	return strconv.Itoa(*v)
}

func periodLine(p games.ScoringPlay) string {
	if !p.HasPeriod() {
		return ""
	}
	label := "P" + strconv.Itoa(p.PeriodNumber)
	if p.PeriodType == "OT" {
		label = "OT"
	}
	return strings.TrimSpace(label + " " + p.TimeInPeriod)
}

// assistLine names up to two assists found in the roster cache.
func assistLine(p games.ScoringPlay, roster map[int64]games.RosterEntry) string {
	names := make([]string, 0, maxAssists)
	for _, id := range p.AssistPlayerIDs {
		if len(names) == maxAssists {
			break
		}
		if entry, ok := roster[id]; ok {
			names = append(names, entry.FullName())
		}
	}
	if len(names) == 0 {
		return "Unassisted"
	}
	return "Assists: " + strings.Join(names, ", ")
}

func logoURL(base, team string) string {
	if base == "" || team == "" {
		return ""
	}
	return strings.TrimSuffix(base, "/") + "/" + team + "_dark.svg"
}
