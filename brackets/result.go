package brackets

import (
	"fmt"

	"github.com/Dosada05/tournament-progression/models"
)

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// DetermineWinner applies score, then penalties. A nil result is a draw.
// Missing scores and penalties count as zero.
func DetermineWinner(m *models.Match) *int {
	s1, s2 := intValue(m.ScoreTeam1), intValue(m.ScoreTeam2)
	p1, p2 := intValue(m.PenaltyTeam1), intValue(m.PenaltyTeam2)
	switch {
	case s1 > s2:
		return copyInt(m.Team1ID)
	case s2 > s1:
		return copyInt(m.Team2ID)
	case p1 > p2:
		return copyInt(m.Team1ID)
	case p2 > p1:
		return copyInt(m.Team2ID)
	}
	return nil
}

// ValidateResult checks that a match carrying a result is consistent.
// Winner must already be set by DetermineWinner.
func ValidateResult(m *models.Match) error {
	if !m.Status.Valid() {
		return fmt.Errorf("%w: unknown match status %q", ErrInvalidInput, m.Status)
	}
	for _, v := range []*int{m.ScoreTeam1, m.ScoreTeam2, m.PenaltyTeam1, m.PenaltyTeam2} {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: scores and penalties cannot be negative", ErrInvalidInput)
		}
	}
	for _, v := range []int{m.YellowCardsTeam1, m.YellowCardsTeam2, m.RedCardsTeam1, m.RedCardsTeam2} {
		if v < 0 {
			return fmt.Errorf("%w: card counts cannot be negative", ErrInvalidInput)
		}
	}
	if !m.IsFinished() {
		return nil
	}
	if m.Team1ID == nil || m.Team2ID == nil {
		return fmt.Errorf("%w: cannot finish a match whose teams are not determined", ErrInvalidInput)
	}
	if *m.Team1ID == *m.Team2ID {
		return fmt.Errorf("%w: a team cannot play itself", ErrInvalidInput)
	}
	if m.ScoreTeam1 == nil || m.ScoreTeam2 == nil {
		return fmt.Errorf("%w: a finished match needs both scores", ErrInvalidInput)
	}
	if m.Type == models.MatchTypeKnockout && m.WinnerID == nil {
		return fmt.Errorf("%w: knockout match cannot end in a draw, record penalties", ErrInvalidInput)
	}
	return nil
}

// AffectsStandings reports whether moving a group-stage match from prev to
// next changes the group table.
func AffectsStandings(matchType models.MatchType, prev, next models.MatchStatus) bool {
	if matchType != models.MatchTypeGroupStage {
		return false
	}
	return prev == models.MatchStatusFinished || next == models.MatchStatusFinished
}

// ApplyMatch adds one finished match to both memberships.
func ApplyMatch(team1, team2 *models.GroupMembership, m *models.Match) {
	s1, s2 := intValue(m.ScoreTeam1), intValue(m.ScoreTeam2)

	team1.MatchesPlayed++
	team2.MatchesPlayed++
	team1.GoalsFor += s1
	team1.GoalsAgainst += s2
	team2.GoalsFor += s2
	team2.GoalsAgainst += s1
	team1.YellowCards += m.YellowCardsTeam1
	team1.RedCards += m.RedCardsTeam1
	team2.YellowCards += m.YellowCardsTeam2
	team2.RedCards += m.RedCardsTeam2

	switch {
	case m.WinnerID != nil && *m.WinnerID == team1.TeamID:
		team1.Wins++
		team1.Points += 3
		team2.Losses++
	case m.WinnerID != nil && *m.WinnerID == team2.TeamID:
		team2.Wins++
		team2.Points += 3
		team1.Losses++
	default:
		team1.Draws++
		team2.Draws++
		team1.Points++
		team2.Points++
	}
}
