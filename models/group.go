package models

import "time"

// GroupMembership holds the aggregate statistics of one team inside a group.
// Points are derived: wins*3 + draws.
type GroupMembership struct {
	ID            int `json:"_id" db:"id"`
	GroupID       int `json:"group" db:"group_id"`
	TeamID        int `json:"team" db:"team_id"`
	Position      int `json:"-" db:"position"`
	MatchesPlayed int `json:"matchesPlayed" db:"matches_played"`
	Wins          int `json:"wins" db:"wins"`
	Draws         int `json:"draws" db:"draws"`
	Losses        int `json:"losses" db:"losses"`
	GoalsFor      int `json:"goalsFor" db:"goals_for"`
	GoalsAgainst  int `json:"goalsAgainst" db:"goals_against"`
	YellowCards   int `json:"yellowCards" db:"yellow_cards"`
	RedCards      int `json:"redCards" db:"red_cards"`
	Points        int `json:"points" db:"points"`
}

func (m GroupMembership) GoalDifference() int {
	return m.GoalsFor - m.GoalsAgainst
}

// ResetCounters zeroes all statistics, keeping identity fields.
func (m *GroupMembership) ResetCounters() {
	m.MatchesPlayed, m.Wins, m.Draws, m.Losses = 0, 0, 0, 0
	m.GoalsFor, m.GoalsAgainst = 0, 0
	m.YellowCards, m.RedCards = 0, 0
	m.Points = 0
}

type Group struct {
	ID           int       `json:"_id" db:"id"`
	TournamentID int       `json:"tournament" db:"tournament_id"`
	Name         string    `json:"name" db:"name"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	Teams []GroupMembership `json:"teams" db:"-"`
}

// TeamIDs returns member team ids in group order.
func (g *Group) TeamIDs() []int {
	ids := make([]int, 0, len(g.Teams))
	for _, m := range g.Teams {
		ids = append(ids, m.TeamID)
	}
	return ids
}

// RankedTeam is one row of a computed standings table.
type RankedTeam struct {
	Position       int `json:"position"`
	GoalDifference int `json:"goalDifference"`
	GroupMembership
}
