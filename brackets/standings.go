package brackets

import (
	"fmt"
	"sort"

	"github.com/Dosada05/tournament-progression/models"
)

// RankStandings orders a group table by points, goal difference and wins,
// all descending. The sort is stable so remaining ties keep input order.
func RankStandings(memberships []models.GroupMembership) []models.RankedTeam {
	ranked := make([]models.RankedTeam, len(memberships))
	for i, m := range memberships {
		ranked[i] = models.RankedTeam{GroupMembership: m, GoalDifference: m.GoalDifference()}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		return a.Wins > b.Wins
	})
	for i := range ranked {
		ranked[i].Position = i + 1
	}
	return ranked
}

// RecomputeGroup rebuilds every membership counter from the finished
// group-stage matches of the group. The input slice is not modified.
func RecomputeGroup(memberships []models.GroupMembership, matches []*models.Match) ([]models.GroupMembership, error) {
	result := make([]models.GroupMembership, len(memberships))
	byTeam := make(map[int]*models.GroupMembership, len(memberships))
	for i := range memberships {
		result[i] = memberships[i]
		result[i].ResetCounters()
		if _, dup := byTeam[result[i].TeamID]; dup {
			return nil, fmt.Errorf("%w: team %d appears twice in group", ErrInvalidInput, result[i].TeamID)
		}
		byTeam[result[i].TeamID] = &result[i]
	}

	for _, m := range matches {
		if m == nil || m.Type != models.MatchTypeGroupStage || !m.IsFinished() {
			continue
		}
		if m.Team1ID == nil || m.Team2ID == nil {
			return nil, fmt.Errorf("%w: finished match %d has undetermined teams", ErrInvalidInput, m.ID)
		}
		t1, ok1 := byTeam[*m.Team1ID]
		t2, ok2 := byTeam[*m.Team2ID]
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("%w: match %d references a team outside the group", ErrInvalidInput, m.ID)
		}
		ApplyMatch(t1, t2, m)
	}
	return result, nil
}
