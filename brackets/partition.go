package brackets

import (
	"fmt"

	"github.com/Dosada05/tournament-progression/models"
)

// Partition is one group produced by PartitionTeams.
type Partition struct {
	Name    string
	TeamIDs []int
}

// GroupName returns "Group A", "Group B", ... and "Group 27" past Z.
func GroupName(index int) string {
	if index >= 0 && index < 26 {
		return fmt.Sprintf("Group %c", rune('A'+index))
	}
	return fmt.Sprintf("Group %d", index+1)
}

// PartitionTeams splits the roster into groupCount groups. Teams are taken
// in roster order in contiguous blocks; the first len(teamIDs)%groupCount
// groups get one extra team. The round-robin format always yields one group.
func PartitionTeams(teamIDs []int, groupCount int, format models.TournamentFormat) ([]Partition, error) {
	if len(teamIDs) == 0 {
		return nil, fmt.Errorf("%w: team roster is empty", ErrInvalidInput)
	}
	if format == models.FormatRoundRobin {
		groupCount = 1
	}
	if groupCount < 1 {
		return nil, fmt.Errorf("%w: group count must be at least 1, got %d", ErrInvalidInput, groupCount)
	}
	if groupCount > len(teamIDs) {
		return nil, fmt.Errorf("%w: %d groups requested for %d teams", ErrInvalidInput, groupCount, len(teamIDs))
	}

	seen := make(map[int]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: team %d appears twice in the roster", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	baseSize := len(teamIDs) / groupCount
	remainder := len(teamIDs) % groupCount

	partitions := make([]Partition, 0, groupCount)
	start := 0
	for i := 0; i < groupCount; i++ {
		size := baseSize
		if i < remainder {
			size++
		}
		members := make([]int, size)
		copy(members, teamIDs[start:start+size])
		partitions = append(partitions, Partition{Name: GroupName(i), TeamIDs: members})
		start += size
	}
	return partitions, nil
}

// NewMemberships creates zeroed memberships for a partition.
func NewMemberships(p Partition) []models.GroupMembership {
	memberships := make([]models.GroupMembership, 0, len(p.TeamIDs))
	for i, teamID := range p.TeamIDs {
		memberships = append(memberships, models.GroupMembership{TeamID: teamID, Position: i})
	}
	return memberships
}
