package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Dosada05/tournament-progression/models"
)

func TestStandingsKey(t *testing.T) {
	if got := standingsKey(12); got != "standings:group:12" {
		t.Fatalf("standingsKey = %q", got)
	}
}

func TestNewRedisStandingsTTL(t *testing.T) {
	if c := NewRedisStandings(nil, 0); c.ttl != DefaultStandingsTTL {
		t.Fatalf("zero ttl should default, got %v", c.ttl)
	}
	if c := NewRedisStandings(nil, time.Minute); c.ttl != time.Minute {
		t.Fatalf("ttl = %v, want 1m", c.ttl)
	}
}

func TestInvalidateWithoutGroupsIsNoop(t *testing.T) {
	c := NewRedisStandings(nil, 0)
	if err := c.InvalidateStandings(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewRedisClientRejectsBadURL(t *testing.T) {
	if _, err := NewRedisClient(context.Background(), "http://not-redis"); err == nil {
		t.Fatal("expected error for non-redis scheme")
	}
}

func TestStandingsEntryRoundTrip(t *testing.T) {
	table := []models.RankedTeam{
		{
			Position:       1,
			GoalDifference: 3,
			GroupMembership: models.GroupMembership{
				ID: 5, GroupID: 2, TeamID: 11, Position: 3,
				MatchesPlayed: 2, Wins: 2, GoalsFor: 4, GoalsAgainst: 1,
				YellowCards: 1, Points: 6,
			},
		},
		{
			Position:       2,
			GoalDifference: -3,
			GroupMembership: models.GroupMembership{
				ID: 6, GroupID: 2, TeamID: 12,
				MatchesPlayed: 2, Losses: 2, GoalsFor: 1, GoalsAgainst: 4,
				RedCards: 1,
			},
		},
	}

	data, err := encodeStandings(42, table)
	if err != nil {
		t.Fatal(err)
	}
	got, ok, err := decodeStandings(data, 42)
	if err != nil || !ok {
		t.Fatalf("decode = ok %v, err %v", ok, err)
	}
	if len(got) != len(table) {
		t.Fatalf("got %d rows, want %d", len(got), len(table))
	}

	// membership position is not serialized; the ranked position is
	want := table[0]
	want.GroupMembership.Position = 0
	if got[0] != want {
		t.Fatalf("row 0 = %+v, want %+v", got[0], want)
	}
	if got[1] != table[1] {
		t.Fatalf("row 1 = %+v, want %+v", got[1], table[1])
	}
	if got[0].Position != 1 || got[1].Position != 2 {
		t.Fatalf("positions = %d, %d", got[0].Position, got[1].Position)
	}
}

func TestDecodeStandingsVersionMismatch(t *testing.T) {
	data, err := encodeStandings(7, []models.RankedTeam{{Position: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if got, ok, err := decodeStandings(data, 8); err != nil || ok || got != nil {
		t.Fatalf("stale entry served: ok=%v got=%v err=%v", ok, got, err)
	}
	if _, _, err := decodeStandings([]byte("{"), 7); err == nil {
		t.Fatal("expected error for corrupt entry")
	}
}
