package brackets

import (
	"context"
	"fmt"
	"sort"
)

// Pairing is one group-stage fixture. Team1ID always belongs to the team
// listed earlier in the roster.
type Pairing struct {
	Team1ID  int
	Team2ID  int
	Matchday int
}

// RoundRobinPairings returns every unordered pair of the roster exactly once,
// n*(n-1)/2 in total. Pairs are spread over matchdays with the circle method
// so that no team plays twice on the same matchday.
func RoundRobinPairings(teamIDs []int) []Pairing {
	n := len(teamIDs)
	if n < 2 {
		return []Pairing{}
	}

	// Work on roster indices; -1 is the bye when n is odd.
	slots := make([]int, 0, n+1)
	for i := 0; i < n; i++ {
		slots = append(slots, i)
	}
	if n%2 != 0 {
		slots = append(slots, -1)
	}
	m := len(slots)

	type indexed struct {
		a, b, day int
	}
	pairs := make([]indexed, 0, n*(n-1)/2)

	for day := 1; day <= m-1; day++ {
		for i := 0; i < m/2; i++ {
			a, b := slots[i], slots[m-1-i]
			if a < 0 || b < 0 {
				continue
			}
			if a > b {
				a, b = b, a
			}
			pairs = append(pairs, indexed{a: a, b: b, day: day})
		}
		// Keep slots[0] fixed, rotate the rest clockwise.
		last := slots[m-1]
		copy(slots[2:], slots[1:m-1])
		slots[1] = last
	}

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].day != pairs[j].day {
			return pairs[i].day < pairs[j].day
		}
		if pairs[i].a != pairs[j].a {
			return pairs[i].a < pairs[j].a
		}
		return pairs[i].b < pairs[j].b
	})

	result := make([]Pairing, 0, len(pairs))
	for _, p := range pairs {
		result = append(result, Pairing{
			Team1ID:  teamIDs[p.a],
			Team2ID:  teamIDs[p.b],
			Matchday: p.day,
		})
	}
	return result
}

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() BracketGenerator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

// GenerateBracket creates the single round-robin fixture list of one group.
// Groups with fewer than two teams produce no matches.
func (g *RoundRobinGenerator) GenerateBracket(ctx context.Context, params GenerateBracketParams) ([]*BracketMatch, error) {
	seen := make(map[int]struct{}, len(params.TeamIDs))
	for _, id := range params.TeamIDs {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: team %d listed twice in group", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	groupKey := 0
	if params.GroupID != nil {
		groupKey = *params.GroupID
	}

	pairings := RoundRobinPairings(params.TeamIDs)
	matches := make([]*BracketMatch, 0, len(pairings))
	order := 0
	for _, p := range pairings {
		order++
		t1, t2 := p.Team1ID, p.Team2ID
		matches = append(matches, &BracketMatch{
			UID:          fmt.Sprintf("T%d_G%d_MD%d_%dv%d", params.TournamentID, groupKey, p.Matchday, t1, t2),
			Round:        p.Matchday,
			OrderInRound: order,
			Team1ID:      &t1,
			Team2ID:      &t2,
		})
	}
	return matches, nil
}
