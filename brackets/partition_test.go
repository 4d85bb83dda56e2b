package brackets

import (
	"errors"
	"testing"

	"github.com/Dosada05/tournament-progression/models"
)

func roster(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = 100 + i
	}
	return ids
}

func TestPartitionTeamsDistribution(t *testing.T) {
	tests := []struct {
		teams  int
		groups int
	}{
		{2, 1}, {4, 2}, {5, 2}, {7, 3}, {10, 4}, {16, 4}, {13, 5}, {3, 3},
	}
	for _, tt := range tests {
		teams := roster(tt.teams)
		parts, err := PartitionTeams(teams, tt.groups, models.FormatGroupStage)
		if err != nil {
			t.Fatalf("teams=%d groups=%d: unexpected error: %v", tt.teams, tt.groups, err)
		}
		if len(parts) != tt.groups {
			t.Fatalf("teams=%d groups=%d: got %d groups", tt.teams, tt.groups, len(parts))
		}
		seen := make(map[int]int)
		minSize, maxSize, total := len(teams), 0, 0
		for _, p := range parts {
			total += len(p.TeamIDs)
			minSize = min(minSize, len(p.TeamIDs))
			maxSize = max(maxSize, len(p.TeamIDs))
			for _, id := range p.TeamIDs {
				seen[id]++
			}
		}
		if total != tt.teams {
			t.Fatalf("teams=%d groups=%d: sizes sum to %d", tt.teams, tt.groups, total)
		}
		if maxSize-minSize > 1 {
			t.Fatalf("teams=%d groups=%d: group sizes differ by %d", tt.teams, tt.groups, maxSize-minSize)
		}
		for _, id := range teams {
			if seen[id] != 1 {
				t.Fatalf("teams=%d groups=%d: team %d appears %d times", tt.teams, tt.groups, id, seen[id])
			}
		}
	}
}

func TestPartitionTeamsDeterministicBlocks(t *testing.T) {
	parts, err := PartitionTeams([]int{1, 2, 3, 4, 5}, 2, models.FormatGroupStage)
	if err != nil {
		t.Fatal(err)
	}
	if parts[0].Name != "Group A" || parts[1].Name != "Group B" {
		t.Fatalf("unexpected names: %q %q", parts[0].Name, parts[1].Name)
	}
	if len(parts[0].TeamIDs) != 3 || parts[0].TeamIDs[0] != 1 || parts[0].TeamIDs[2] != 3 {
		t.Fatalf("first group = %v, want [1 2 3]", parts[0].TeamIDs)
	}
	if len(parts[1].TeamIDs) != 2 || parts[1].TeamIDs[0] != 4 {
		t.Fatalf("second group = %v, want [4 5]", parts[1].TeamIDs)
	}
}

func TestPartitionTeamsRoundRobinSinglePool(t *testing.T) {
	parts, err := PartitionTeams(roster(6), 3, models.FormatRoundRobin)
	if err != nil {
		t.Fatal(err)
	}
	if len(parts) != 1 || len(parts[0].TeamIDs) != 6 {
		t.Fatalf("round robin should produce one pool of 6, got %d groups", len(parts))
	}
}

func TestPartitionTeamsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		teams  []int
		groups int
	}{
		{"empty roster", nil, 1},
		{"zero groups", roster(4), 0},
		{"negative groups", roster(4), -2},
		{"more groups than teams", roster(3), 4},
		{"duplicate team", []int{1, 2, 2}, 1},
	}
	for _, tt := range tests {
		if _, err := PartitionTeams(tt.teams, tt.groups, models.FormatGroupStage); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tt.name, err)
		}
	}
}

func TestNewMembershipsZeroed(t *testing.T) {
	ms := NewMemberships(Partition{Name: "Group A", TeamIDs: []int{7, 8}})
	if len(ms) != 2 || ms[0].TeamID != 7 || ms[1].Position != 1 {
		t.Fatalf("unexpected memberships: %+v", ms)
	}
	for _, m := range ms {
		if m.MatchesPlayed != 0 || m.Points != 0 || m.GoalsFor != 0 {
			t.Fatalf("membership not zeroed: %+v", m)
		}
	}
}

func TestGroupName(t *testing.T) {
	if GroupName(0) != "Group A" || GroupName(25) != "Group Z" || GroupName(26) != "Group 27" {
		t.Fatalf("unexpected group names: %s %s %s", GroupName(0), GroupName(25), GroupName(26))
	}
}
