package games

import "testing"

func TestMapPhase(t *testing.T) {
	cases := map[string]Phase{
		"FUT":     PhasePreGame,
		"PRE":     PhasePreGame,
		"LIVE":    PhaseLive,
		"CRIT":    PhaseLive,
		"OFF":     PhasePostGame,
		"FINAL":   PhasePostGame,
		"":        PhaseIdle,
		"PPD":     PhaseIdle,
		"live":    PhaseIdle,
		"UNKNOWN": PhaseIdle,
	}
	for code, want := range cases {
		if got := MapPhase(code); got != want {
			t.Fatalf("MapPhase(%q) = %s, want %s", code, got, want)
		}
	}
}

func TestScheduledGamePhase(t *testing.T) {
	g := ScheduledGame{ID: 1, LifecycleCode: "CRIT"}
	if g.Phase() != PhaseLive {
		t.Fatalf("expected live, got %s", g.Phase())
	}
}

func TestFeedTeamAbbrevFor(t *testing.T) {
	f := Feed{
		HomeTeam: FeedTeam{ID: 10, Abbrev: "TOR"},
		AwayTeam: FeedTeam{ID: 6, Abbrev: "BOS"},
	}
	if abbrev, ok := f.TeamAbbrevFor(10); !ok || abbrev != "TOR" {
		t.Fatalf("expected TOR, got %q ok=%v", abbrev, ok)
	}
	if abbrev, ok := f.TeamAbbrevFor(6); !ok || abbrev != "BOS" {
		t.Fatalf("expected BOS, got %q ok=%v", abbrev, ok)
	}
	if _, ok := f.TeamAbbrevFor(99); ok {
		t.Fatalf("expected orphaned team id to be unresolved")
	}
}

func TestEventKeysAreValueComparable(t *testing.T) {
	// 1-23 and 12-3 collide as concatenated strings but not as keys.
	a := NewEventKey(1, ScoringPlay{EventID: 23})
	b := NewEventKey(12, ScoringPlay{EventID: 3})
	set := map[EventKey]struct{}{a: {}}
	if _, ok := set[b]; ok {
		t.Fatalf("expected distinct keys")
	}
	if _, ok := set[EventKey{GameID: 1, EventID: 23}]; !ok {
		t.Fatalf("expected equal keys to match")
	}
}

func TestScoringPlayHasPeriod(t *testing.T) {
	if (ScoringPlay{}).HasPeriod() {
		t.Fatalf("expected empty play to have no period")
	}
	if !(ScoringPlay{PeriodType: "OT"}).HasPeriod() {
		t.Fatalf("expected OT play to have a period")
	}
}

func TestRosterEntryFullName(t *testing.T) {
	r := RosterEntry{FirstName: "Jane", LastName: "Doe"}
	if r.FullName() != "Jane Doe" {
		t.Fatalf("unexpected full name %q", r.FullName())
	}
}
