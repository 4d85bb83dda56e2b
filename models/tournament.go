package models

import (
	"encoding/json"
	"time"
)

// TournamentFormat соответствует полю format турнира.
type TournamentFormat string

const (
	FormatGroupStage TournamentFormat = "Group Stage"
	FormatRoundRobin TournamentFormat = "Round Robin"
)

func (f TournamentFormat) Valid() bool {
	return f == FormatGroupStage || f == FormatRoundRobin
}

// TournamentStage is the one-way progression of the group phase:
// ungrouped -> grouped -> fixtures_created.
type TournamentStage string

const (
	StageUngrouped       TournamentStage = "ungrouped"
	StageGrouped         TournamentStage = "grouped"
	StageFixturesCreated TournamentStage = "fixtures_created"
)

func (s TournamentStage) order() int {
	switch s {
	case StageUngrouped:
		return 0
	case StageGrouped:
		return 1
	case StageFixturesCreated:
		return 2
	default:
		return -1
	}
}

func (s TournamentStage) Valid() bool { return s.order() >= 0 }

// CanAdvanceTo reports whether next directly follows s.
func (s TournamentStage) CanAdvanceTo(next TournamentStage) bool {
	return s.Valid() && next.Valid() && next.order() == s.order()+1
}

// IsDividedGroup and GroupMatchesCreated mirror the legacy boolean flags.
func (s TournamentStage) IsDividedGroup() bool      { return s.order() >= 1 }
func (s TournamentStage) GroupMatchesCreated() bool { return s.order() >= 2 }

// Tournament представляет турнир.
type Tournament struct {
	ID                   int              `json:"_id" db:"id"`
	Name                 string           `json:"name" db:"name"`
	Format               TournamentFormat `json:"format" db:"format"`
	NumberOfTeams        int              `json:"number_of_teams" db:"number_of_teams"`
	NumberOfGroup        int              `json:"number_of_group" db:"number_of_group"`
	NumberOfTeamAdvances *int             `json:"number_of_team_advances,omitempty" db:"number_of_team_advances"`
	Stage                TournamentStage  `json:"stage" db:"stage"`
	CreatedBy            *int             `json:"createdBy,omitempty" db:"created_by"`
	CreatedAt            time.Time        `json:"createdAt" db:"created_at"`

	Teams []int `json:"teams" db:"-"`
}

// MarshalJSON adds the derived legacy flags so existing clients keep working.
func (t Tournament) MarshalJSON() ([]byte, error) {
	type plain Tournament
	return json.Marshal(struct {
		plain
		IsDividedGroup        bool `json:"is_Divided_Group"`
		IsGroupMatchesCreated bool `json:"isGroupMatchesCreated"`
	}{
		plain:                 plain(t),
		IsDividedGroup:        t.Stage.IsDividedGroup(),
		IsGroupMatchesCreated: t.Stage.GroupMatchesCreated(),
	})
}
