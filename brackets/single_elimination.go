package brackets

import (
	"context"
	"fmt"
	"math/bits"
)

const (
	// ThirdPlaceRound tags the third-place match; elimination rounds are 1..R.
	ThirdPlaceRound  = 0
	MinKnockoutTeams = 2
	MaxKnockoutTeams = 16
)

// Slot identifies a node of the elimination tree.
type Slot struct {
	Round int
	Index int
}

// SlotRef describes an already stored knockout match. Index is nil for
// matches created before slot indices were recorded.
type SlotRef struct {
	Round int
	Index *int
}

// KnockoutLayout is the round structure of a single-elimination bracket.
type KnockoutLayout struct {
	TeamCount     int
	Rounds        int
	RoundSizes    []int // RoundSizes[r-1] is the number of matches in round r.
	HasThirdPlace bool
}

// NewKnockoutLayout builds the layout for teamCount in {2, 4, 8, 16}.
func NewKnockoutLayout(teamCount int) (KnockoutLayout, error) {
	if teamCount < MinKnockoutTeams || teamCount > MaxKnockoutTeams || bits.OnesCount(uint(teamCount)) != 1 {
		return KnockoutLayout{}, fmt.Errorf("%w: knockout team count must be a power of two between %d and %d, got %d",
			ErrInvalidInput, MinKnockoutTeams, MaxKnockoutTeams, teamCount)
	}
	rounds := bits.TrailingZeros(uint(teamCount))
	sizes := make([]int, rounds)
	for r := 1; r <= rounds; r++ {
		sizes[r-1] = teamCount >> r
	}
	return KnockoutLayout{
		TeamCount:     teamCount,
		Rounds:        rounds,
		RoundSizes:    sizes,
		HasThirdPlace: teamCount >= 4,
	}, nil
}

func (l KnockoutLayout) FinalRound() int { return l.Rounds }

// SemifinalRound is 0 when the bracket has no semifinals.
func (l KnockoutLayout) SemifinalRound() int {
	if l.Rounds < 2 {
		return 0
	}
	return l.Rounds - 1
}

// MatchesInRound returns the slot count of round r, including round 0.
func (l KnockoutLayout) MatchesInRound(round int) int {
	if round == ThirdPlaceRound {
		if l.HasThirdPlace {
			return 1
		}
		return 0
	}
	if round < 1 || round > l.Rounds {
		return 0
	}
	return l.RoundSizes[round-1]
}

func (l KnockoutLayout) TotalMatches() int {
	total := 0
	for _, size := range l.RoundSizes {
		total += size
	}
	if l.HasThirdPlace {
		total++
	}
	return total
}

// Slots lists every slot in creation order: round 1 first, the final, then
// the third-place match.
func (l KnockoutLayout) Slots() []Slot {
	slots := make([]Slot, 0, l.TotalMatches())
	for r := 1; r <= l.Rounds; r++ {
		for i := 0; i < l.RoundSizes[r-1]; i++ {
			slots = append(slots, Slot{Round: r, Index: i})
		}
	}
	if l.HasThirdPlace {
		slots = append(slots, Slot{Round: ThirdPlaceRound, Index: 0})
	}
	return slots
}

// PlanMissingSlots returns the slots that still have to be created given the
// knockout matches already stored. Stored matches without an index occupy the
// lowest free index of their round. The result follows Slots() order, so the
// shortfall is filled earliest round first.
func (l KnockoutLayout) PlanMissingSlots(existing []SlotRef) ([]Slot, error) {
	occupied := make(map[Slot]bool, len(existing))
	var unindexed []int

	for _, ref := range existing {
		size := l.MatchesInRound(ref.Round)
		if size == 0 {
			return nil, fmt.Errorf("%w: existing knockout match at round %d does not fit a %d-team bracket",
				ErrInvalidInput, ref.Round, l.TeamCount)
		}
		if ref.Index == nil {
			unindexed = append(unindexed, ref.Round)
			continue
		}
		s := Slot{Round: ref.Round, Index: *ref.Index}
		if s.Index < 0 || s.Index >= size || occupied[s] {
			return nil, fmt.Errorf("%w: existing knockout slot %d/%d is invalid or duplicated", ErrInvalidInput, s.Round, s.Index)
		}
		occupied[s] = true
	}

	for _, round := range unindexed {
		placed := false
		for i := 0; i < l.MatchesInRound(round); i++ {
			s := Slot{Round: round, Index: i}
			if !occupied[s] {
				occupied[s] = true
				placed = true
				break
			}
		}
		if !placed {
			return nil, fmt.Errorf("%w: round %d already holds more matches than a %d-team bracket allows",
				ErrInvalidInput, round, l.TeamCount)
		}
	}

	missing := make([]Slot, 0, l.TotalMatches()-len(existing))
	for _, s := range l.Slots() {
		if !occupied[s] {
			missing = append(missing, s)
		}
	}
	return missing, nil
}

// SlotTarget is a team position inside a knockout slot. Position is 1 for
// team1 and 2 for team2.
type SlotTarget struct {
	Slot     Slot
	Position int
}

// Advancement says where the winner (and, from a semifinal, the loser) of a
// match moves to.
type Advancement struct {
	Winner SlotTarget
	Loser  *SlotTarget
}

// AdvanceTargets computes the next slots for the match at from. The final and
// the third-place match lead nowhere.
func (l KnockoutLayout) AdvanceTargets(from Slot) (Advancement, error) {
	if from.Round < 1 || from.Round >= l.Rounds {
		return Advancement{}, fmt.Errorf("%w: match at round %d has no next round", ErrInvalidInput, from.Round)
	}
	if from.Index < 0 || from.Index >= l.MatchesInRound(from.Round) {
		return Advancement{}, fmt.Errorf("%w: slot index %d out of range for round %d", ErrInvalidInput, from.Index, from.Round)
	}
	position := from.Index%2 + 1
	adv := Advancement{
		Winner: SlotTarget{Slot: Slot{Round: from.Round + 1, Index: from.Index / 2}, Position: position},
	}
	if l.HasThirdPlace && from.Round == l.SemifinalRound() {
		adv.Loser = &SlotTarget{Slot: Slot{Round: ThirdPlaceRound, Index: 0}, Position: position}
	}
	return adv, nil
}

// RoundName is a display label for a knockout round.
func (l KnockoutLayout) RoundName(round int) string {
	if round == ThirdPlaceRound {
		return "Third place"
	}
	switch l.Rounds - round {
	case 0:
		return "Final"
	case 1:
		return "Semifinals"
	case 2:
		return "Quarterfinals"
	case 3:
		return "Round of 16"
	}
	return fmt.Sprintf("Round %d", round)
}

// PlacementRounds returns the rounds clients query for the final and the
// third place: final = log2(N), third = log2(N)-2, the latter only for N >= 4.
func PlacementRounds(teamCount int) (final int, third int, hasThird bool, err error) {
	l, err := NewKnockoutLayout(teamCount)
	if err != nil {
		return 0, 0, false, err
	}
	if !l.HasThirdPlace {
		return l.Rounds, 0, false, nil
	}
	return l.Rounds, l.Rounds - 2, true, nil
}

type SingleEliminationGenerator struct{}

func NewSingleEliminationGenerator() BracketGenerator {
	return &SingleEliminationGenerator{}
}

func (g *SingleEliminationGenerator) GetName() string {
	return "SingleElimination"
}

// GenerateBracket returns the empty knockout slots that are not stored yet.
// Teams are filled in later by qualification or AdvanceTargets.
func (g *SingleEliminationGenerator) GenerateBracket(ctx context.Context, params GenerateBracketParams) ([]*BracketMatch, error) {
	layout, err := NewKnockoutLayout(params.TeamCount)
	if err != nil {
		return nil, err
	}
	missing, err := layout.PlanMissingSlots(params.ExistingSlots)
	if err != nil {
		return nil, err
	}

	matches := make([]*BracketMatch, 0, len(missing))
	for _, s := range missing {
		matches = append(matches, &BracketMatch{
			UID:          fmt.Sprintf("T%d_R%dM%d", params.TournamentID, s.Round, s.Index+1),
			Round:        s.Round,
			OrderInRound: s.Index,
		})
	}
	return matches, nil
}
