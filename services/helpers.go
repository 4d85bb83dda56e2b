package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/tournament-progression/brackets"
	"github.com/Dosada05/tournament-progression/models"
	"github.com/Dosada05/tournament-progression/repositories"
	"github.com/Dosada05/tournament-progression/storage"
)

// EventPublisher pushes tournament events to connected clients.
type EventPublisher interface {
	Publish(ctx context.Context, tournamentID int, eventType string, payload interface{})
}

// StandingsCache stores ranked group tables between recomputations.
// Entries are tagged with the group version they were computed from; a
// lookup with any other version is a miss.
type StandingsCache interface {
	GetStandings(ctx context.Context, groupID int, version int64) ([]models.RankedTeam, bool, error)
	SetStandings(ctx context.Context, groupID int, version int64, standings []models.RankedTeam) error
	InvalidateStandings(ctx context.Context, groupIDs ...int) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, int, string, interface{}) {}

type noopStandingsCache struct{}

func (noopStandingsCache) GetStandings(context.Context, int, int64) ([]models.RankedTeam, bool, error) {
	return nil, false, nil
}
func (noopStandingsCache) SetStandings(context.Context, int, int64, []models.RankedTeam) error {
	return nil
}
func (noopStandingsCache) InvalidateStandings(context.Context, ...int) error { return nil }

func standingsVersion(updatedAt time.Time) int64 {
	return updatedAt.UnixMicro()
}

func publisherOrNoop(p EventPublisher) EventPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}

func cacheOrNoop(c StandingsCache) StandingsCache {
	if c == nil {
		return noopStandingsCache{}
	}
	return c
}

// handleRepositoryError translates repository and engine sentinels into
// service errors. Unknown errors are wrapped with op for context.
func handleRepositoryError(err error, op string) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, repositories.ErrTournamentNotFound):
		return ErrTournamentNotFound
	case errors.Is(err, repositories.ErrGroupNotFound):
		return ErrGroupNotFound
	case errors.Is(err, repositories.ErrMatchNotFound):
		return ErrMatchNotFound
	case errors.Is(err, repositories.ErrTeamNotFound), errors.Is(err, repositories.ErrRegistrationInvalid):
		return ErrTeamNotFound
	case errors.Is(err, repositories.ErrTeamAlreadyRegistered):
		return ErrTeamAlreadyRegistered
	case errors.Is(err, repositories.ErrTeamNameConflict):
		return ErrTeamNameConflict
	case errors.Is(err, repositories.ErrMatchSlotConflict), errors.Is(err, repositories.ErrGroupNameConflict):
		return fmt.Errorf("%w: %v", ErrAlreadyProcessed, err)
	case errors.Is(err, repositories.ErrMatchInvalid), errors.Is(err, repositories.ErrTournamentInvalid),
		errors.Is(err, repositories.ErrMembershipConflict):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, brackets.ErrSlotNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	if isServiceError(err) {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isServiceError(err error) bool {
	for _, target := range []error{
		ErrNotFound, ErrTournamentNotFound, ErrGroupNotFound, ErrMatchNotFound, ErrTeamNotFound,
		ErrInvalidInput, ErrWinnerUndetermined, ErrTournamentFull, ErrRosterLocked,
		ErrAlreadyProcessed, ErrTeamAlreadyRegistered, ErrTeamNameConflict,
		ErrForbiddenOperation, ErrStorageUnavailable,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func populateTeamLogoURLFunc(team *models.Team, uploader storage.FileUploader) {
	if team != nil && team.LogoKey != nil && *team.LogoKey != "" && uploader != nil {
		url := uploader.GetPublicURL(*team.LogoKey)
		if url != "" {
			team.LogoURL = &url
		}
	}
}
