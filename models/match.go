package models

import "time"

type MatchStatus string

const (
	MatchStatusScheduled MatchStatus = "Scheduled"
	MatchStatusFinished  MatchStatus = "Finished"
	MatchStatusCancelled MatchStatus = "Cancelled"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case MatchStatusScheduled, MatchStatusFinished, MatchStatusCancelled:
		return true
	}
	return false
}

type MatchType string

const (
	MatchTypeGroupStage MatchType = "Group Stage"
	MatchTypeKnockout   MatchType = "Knockout"
)

// Match is a single fixture. For knockout matches Round 1..R counts towards
// the final and round 0 is the third-place match; RoundIndex is the slot
// index within the round.
type Match struct {
	ID               int         `json:"_id" db:"id"`
	TournamentID     int         `json:"tournament" db:"tournament_id"`
	GroupID          *int        `json:"group,omitempty" db:"group_id"`
	Team1ID          *int        `json:"team1" db:"team1_id"`
	Team2ID          *int        `json:"team2" db:"team2_id"`
	ScoreTeam1       *int        `json:"scoreTeam1" db:"score_team1"`
	ScoreTeam2       *int        `json:"scoreTeam2" db:"score_team2"`
	PenaltyTeam1     *int        `json:"penaltyTeam1" db:"penalty_team1"`
	PenaltyTeam2     *int        `json:"penaltyTeam2" db:"penalty_team2"`
	YellowCardsTeam1 int         `json:"yellowCardsTeam1" db:"yellow_cards_team1"`
	YellowCardsTeam2 int         `json:"yellowCardsTeam2" db:"yellow_cards_team2"`
	RedCardsTeam1    int         `json:"redCardsTeam1" db:"red_cards_team1"`
	RedCardsTeam2    int         `json:"redCardsTeam2" db:"red_cards_team2"`
	WinnerID         *int        `json:"winner" db:"winner_id"`
	Status           MatchStatus `json:"status" db:"status"`
	Type             MatchType   `json:"type" db:"type"`
	Round            *int        `json:"round,omitempty" db:"round"`
	RoundIndex       *int        `json:"roundIndex,omitempty" db:"round_index"`
	MatchDate        *time.Time  `json:"matchDate,omitempty" db:"match_date"`
	MatchVenue       string      `json:"matchVenue" db:"match_venue"`
	CreatedAt        time.Time   `json:"createdAt" db:"created_at"`
}

func (m *Match) IsFinished() bool { return m.Status == MatchStatusFinished }

// Loser returns the team that is not the winner, or nil when undecided.
func (m *Match) Loser() *int {
	if m.WinnerID == nil || m.Team1ID == nil || m.Team2ID == nil {
		return nil
	}
	if *m.WinnerID == *m.Team1ID {
		return m.Team2ID
	}
	return m.Team1ID
}

// ResultPayload is what an operator submits for a match.
type ResultPayload struct {
	ScoreTeam1       *int        `json:"scoreTeam1"`
	ScoreTeam2       *int        `json:"scoreTeam2"`
	PenaltyTeam1     *int        `json:"penaltyTeam1,omitempty"`
	PenaltyTeam2     *int        `json:"penaltyTeam2,omitempty"`
	YellowCardsTeam1 int         `json:"yellowCardsTeam1,omitempty"`
	YellowCardsTeam2 int         `json:"yellowCardsTeam2,omitempty"`
	RedCardsTeam1    int         `json:"redCardsTeam1,omitempty"`
	RedCardsTeam2    int         `json:"redCardsTeam2,omitempty"`
	Status           MatchStatus `json:"status"`
	MatchDate        *time.Time  `json:"matchDate,omitempty"`
	MatchVenue       *string     `json:"matchVenue,omitempty"`
}

// ApplyTo copies the payload onto m. Winner is not touched.
func (p ResultPayload) ApplyTo(m *Match) {
	m.ScoreTeam1 = p.ScoreTeam1
	m.ScoreTeam2 = p.ScoreTeam2
	m.PenaltyTeam1 = p.PenaltyTeam1
	m.PenaltyTeam2 = p.PenaltyTeam2
	m.YellowCardsTeam1 = p.YellowCardsTeam1
	m.YellowCardsTeam2 = p.YellowCardsTeam2
	m.RedCardsTeam1 = p.RedCardsTeam1
	m.RedCardsTeam2 = p.RedCardsTeam2
	m.Status = p.Status
	if p.MatchDate != nil {
		m.MatchDate = p.MatchDate
	}
	if p.MatchVenue != nil {
		m.MatchVenue = *p.MatchVenue
	}
}
