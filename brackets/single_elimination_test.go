package brackets

import (
	"context"
	"errors"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestNewKnockoutLayout(t *testing.T) {
	tests := []struct {
		teams      int
		rounds     int
		sizes      []int
		thirdPlace bool
		total      int
	}{
		{2, 1, []int{1}, false, 1},
		{4, 2, []int{2, 1}, true, 4},
		{8, 3, []int{4, 2, 1}, true, 8},
		{16, 4, []int{8, 4, 2, 1}, true, 16},
	}
	for _, tt := range tests {
		l, err := NewKnockoutLayout(tt.teams)
		if err != nil {
			t.Fatalf("teams=%d: %v", tt.teams, err)
		}
		if l.Rounds != tt.rounds || l.HasThirdPlace != tt.thirdPlace || l.TotalMatches() != tt.total {
			t.Fatalf("teams=%d: got rounds=%d third=%v total=%d", tt.teams, l.Rounds, l.HasThirdPlace, l.TotalMatches())
		}
		for i, size := range tt.sizes {
			if l.RoundSizes[i] != size {
				t.Fatalf("teams=%d: round %d has %d matches, want %d", tt.teams, i+1, l.RoundSizes[i], size)
			}
		}
		if got := len(l.Slots()); got != tt.total {
			t.Fatalf("teams=%d: %d slots, want %d", tt.teams, got, tt.total)
		}
	}
}

func TestNewKnockoutLayoutRejects(t *testing.T) {
	for _, n := range []int{-4, 0, 1, 3, 6, 12, 32} {
		if _, err := NewKnockoutLayout(n); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("teams=%d: expected ErrInvalidInput, got %v", n, err)
		}
	}
}

func TestSlotsOrder(t *testing.T) {
	l, _ := NewKnockoutLayout(4)
	want := []Slot{{1, 0}, {1, 1}, {2, 0}, {ThirdPlaceRound, 0}}
	got := l.Slots()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slot %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestPlanMissingSlots(t *testing.T) {
	l, _ := NewKnockoutLayout(8)

	missing, err := l.PlanMissingSlots(nil)
	if err != nil || len(missing) != 8 {
		t.Fatalf("empty bracket: got %d slots (%v), want 8", len(missing), err)
	}

	existing := []SlotRef{
		{Round: 1, Index: intPtr(0)},
		{Round: 1, Index: intPtr(1)},
		{Round: 1},
	}
	missing, err = l.PlanMissingSlots(existing)
	if err != nil {
		t.Fatal(err)
	}
	if len(missing) != 5 {
		t.Fatalf("got %d missing slots, want 5", len(missing))
	}
	if missing[0] != (Slot{Round: 1, Index: 3}) {
		t.Fatalf("first missing slot = %+v, want round 1 index 3", missing[0])
	}
	if last := missing[len(missing)-1]; last.Round != ThirdPlaceRound {
		t.Fatalf("third-place slot should come last, got %+v", last)
	}

	full := make([]SlotRef, 0, 8)
	for _, s := range l.Slots() {
		full = append(full, SlotRef{Round: s.Round, Index: intPtr(s.Index)})
	}
	missing, err = l.PlanMissingSlots(full)
	if err != nil || len(missing) != 0 {
		t.Fatalf("complete bracket: got %d missing (%v)", len(missing), err)
	}
}

func TestPlanMissingSlotsRejectsMisfits(t *testing.T) {
	l, _ := NewKnockoutLayout(4)
	tests := []struct {
		name     string
		existing []SlotRef
	}{
		{"round beyond final", []SlotRef{{Round: 3, Index: intPtr(0)}}},
		{"index out of range", []SlotRef{{Round: 2, Index: intPtr(1)}}},
		{"duplicate slot", []SlotRef{{Round: 1, Index: intPtr(0)}, {Round: 1, Index: intPtr(0)}}},
		{"too many unindexed", []SlotRef{{Round: 2}, {Round: 2}}},
	}
	for _, tt := range tests {
		if _, err := l.PlanMissingSlots(tt.existing); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tt.name, err)
		}
	}

	two, _ := NewKnockoutLayout(2)
	if _, err := two.PlanMissingSlots([]SlotRef{{Round: ThirdPlaceRound, Index: intPtr(0)}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("2-team bracket has no third place slot, got %v", err)
	}
}

func TestAdvanceTargets(t *testing.T) {
	l, _ := NewKnockoutLayout(8)

	adv, err := l.AdvanceTargets(Slot{Round: 1, Index: 3})
	if err != nil {
		t.Fatal(err)
	}
	if adv.Winner != (SlotTarget{Slot: Slot{Round: 2, Index: 1}, Position: 2}) || adv.Loser != nil {
		t.Fatalf("quarterfinal 3: got %+v", adv)
	}

	adv, err = l.AdvanceTargets(Slot{Round: 2, Index: 0})
	if err != nil {
		t.Fatal(err)
	}
	if adv.Winner != (SlotTarget{Slot: Slot{Round: 3, Index: 0}, Position: 1}) {
		t.Fatalf("semifinal winner target = %+v", adv.Winner)
	}
	if adv.Loser == nil || *adv.Loser != (SlotTarget{Slot: Slot{Round: ThirdPlaceRound, Index: 0}, Position: 1}) {
		t.Fatalf("semifinal loser target = %+v", adv.Loser)
	}

	for _, from := range []Slot{{Round: 3, Index: 0}, {Round: ThirdPlaceRound, Index: 0}, {Round: 1, Index: 4}} {
		if _, err := l.AdvanceTargets(from); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("slot %+v: expected ErrInvalidInput, got %v", from, err)
		}
	}
}

func TestPlacementRounds(t *testing.T) {
	tests := []struct {
		teams    int
		final    int
		third    int
		hasThird bool
	}{
		{2, 1, 0, false},
		{4, 2, 0, true},
		{8, 3, 1, true},
		{16, 4, 2, true},
	}
	for _, tt := range tests {
		final, third, hasThird, err := PlacementRounds(tt.teams)
		if err != nil {
			t.Fatalf("teams=%d: %v", tt.teams, err)
		}
		if final != tt.final || third != tt.third || hasThird != tt.hasThird {
			t.Fatalf("teams=%d: got (%d, %d, %v)", tt.teams, final, third, hasThird)
		}
	}
	if _, _, _, err := PlacementRounds(5); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for 5 teams, got %v", err)
	}
}

func TestSingleEliminationGenerator(t *testing.T) {
	gen := NewSingleEliminationGenerator()
	matches, err := gen.GenerateBracket(context.Background(), GenerateBracketParams{
		TournamentID:  3,
		TeamCount:     4,
		ExistingSlots: []SlotRef{{Round: 1, Index: intPtr(1)}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 3 {
		t.Fatalf("got %d matches, want 3", len(matches))
	}
	if matches[0].Round != 1 || matches[0].OrderInRound != 0 || matches[0].UID != "T3_R1M1" {
		t.Fatalf("unexpected first match %+v", matches[0])
	}
	for _, m := range matches {
		if m.Team1ID != nil || m.Team2ID != nil {
			t.Fatalf("new knockout slots must have no teams, got %+v", m)
		}
	}
}

func TestRoundName(t *testing.T) {
	l, _ := NewKnockoutLayout(16)
	if l.RoundName(4) != "Final" || l.RoundName(1) != "Round of 16" || l.RoundName(ThirdPlaceRound) != "Third place" {
		t.Fatalf("unexpected round names")
	}
}
