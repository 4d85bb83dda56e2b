package brackets

import (
	"context"
)

// GenerateBracketParams carries everything a generator may need. Generators
// ignore the fields they do not use.
type GenerateBracketParams struct {
	TournamentID int
	GroupID      *int
	TeamIDs      []int

	// Knockout only.
	TeamCount     int
	ExistingSlots []SlotRef
}

// BracketMatch is a fixture skeleton produced by a generator, before it is
// persisted as a models.Match.
type BracketMatch struct {
	UID   string
	Round int
	// Knockout: zero-based slot index. Round robin: running fixture number.
	OrderInRound int

	Team1ID *int
	Team2ID *int
}

type BracketGenerator interface {
	GenerateBracket(ctx context.Context, params GenerateBracketParams) ([]*BracketMatch, error)

	GetName() string
}
