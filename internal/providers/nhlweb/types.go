package nhlweb

import (
	"encoding/json"
)

// localizedName accepts either {"default": "Jane"} or a bare string.
type localizedName string

func (n *localizedName) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*n = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = localizedName(s)
		return nil
	}
	var obj struct {
		Default string `json:"default"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*n = localizedName(obj.Default)
	return nil
}

type scheduleResponse struct {
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	ID           int64        `json:"id"`
	GameDate     string       `json:"gameDate"`
	StartTimeUTC string       `json:"startTimeUTC"`
	GameState    string       `json:"gameState"`
	HomeTeam     teamResponse `json:"homeTeam"`
	AwayTeam     teamResponse `json:"awayTeam"`
}

type teamResponse struct {
	ID     int    `json:"id"`
	Abbrev string `json:"abbrev"`
}

type playByPlayResponse struct {
	ID          int64          `json:"id"`
	GameState   string         `json:"gameState"`
	HomeTeam    teamResponse   `json:"homeTeam"`
	AwayTeam    teamResponse   `json:"awayTeam"`
	Clock       clockResponse  `json:"clock"`
	RosterSpots []rosterSpot   `json:"rosterSpots"`
	Plays       []playResponse `json:"plays"`
}

type clockResponse struct {
	InIntermission bool `json:"inIntermission"`
}

type rosterSpot struct {
	PlayerID      int64         `json:"playerId"`
	TeamID        int           `json:"teamId"`
	FirstName     localizedName `json:"firstName"`
	LastName      localizedName `json:"lastName"`
	SweaterNumber int           `json:"sweaterNumber"`
	Headshot      string        `json:"headshot"`
}

type playResponse struct {
	EventID          int64            `json:"eventId"`
	TypeDescKey      string           `json:"typeDescKey"`
	TimeInPeriod     string           `json:"timeInPeriod"`
	PeriodDescriptor periodDescriptor `json:"periodDescriptor"`
	Details          *playDetails     `json:"details"`
}

type periodDescriptor struct {
	Number     int    `json:"number"`
	PeriodType string `json:"periodType"`
}

type playDetails struct {
	EventOwnerTeamID int   `json:"eventOwnerTeamId"`
	ScoringPlayerID  int64 `json:"scoringPlayerId"`
	Assist1PlayerID  int64 `json:"assist1PlayerId"`
	Assist2PlayerID  int64 `json:"assist2PlayerId"`
	HomeScore        *int  `json:"homeScore"`
	AwayScore        *int  `json:"awayScore"`
}
