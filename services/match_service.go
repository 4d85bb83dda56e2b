package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dosada05/tournament-progression/brackets"
	"github.com/Dosada05/tournament-progression/models"
	"github.com/Dosada05/tournament-progression/repositories"
)

type MatchService interface {
	// RecordResult stores a result and, for group-stage matches, rebuilds the
	// group table in the same transaction.
	RecordResult(ctx context.Context, matchID int, payload models.ResultPayload) (*models.Match, error)
	GetMatch(ctx context.Context, matchID int) (*models.Match, error)
	ListMatches(ctx context.Context, tournamentID int, filter repositories.MatchFilter) ([]*models.Match, error)
}

type matchService struct {
	tx             repositories.Transactor
	tournamentRepo repositories.TournamentRepository
	groupRepo      repositories.GroupRepository
	matchRepo      repositories.MatchRepository
	publisher      EventPublisher
	cache          StandingsCache
	logger         *slog.Logger
}

func NewMatchService(
	tx repositories.Transactor,
	tournamentRepo repositories.TournamentRepository,
	groupRepo repositories.GroupRepository,
	matchRepo repositories.MatchRepository,
	publisher EventPublisher,
	cache StandingsCache,
	logger *slog.Logger,
) MatchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &matchService{
		tx:             tx,
		tournamentRepo: tournamentRepo,
		groupRepo:      groupRepo,
		matchRepo:      matchRepo,
		publisher:      publisherOrNoop(publisher),
		cache:          cacheOrNoop(cache),
		logger:         logger,
	}
}

func (s *matchService) RecordResult(ctx context.Context, matchID int, payload models.ResultPayload) (*models.Match, error) {
	if payload.Status == "" {
		payload.Status = models.MatchStatusFinished
	}
	if !payload.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown match status %q", ErrInvalidInput, payload.Status)
	}

	var (
		match *models.Match
		group *models.Group
		table []models.GroupMembership
	)
	err := s.tx.WithinTransaction(ctx, func(exec repositories.SQLExecutor) error {
		m, err := s.matchRepo.GetByIDForUpdate(ctx, exec, matchID)
		if err != nil {
			return err
		}
		previous := m.Status

		payload.ApplyTo(m)
		m.WinnerID = nil
		if m.IsFinished() {
			m.WinnerID = brackets.DetermineWinner(m)
		}
		if err := brackets.ValidateResult(m); err != nil {
			return err
		}

		if brackets.AffectsStandings(m.Type, previous, m.Status) {
			if m.GroupID == nil {
				return fmt.Errorf("%w: group-stage match %d has no group", ErrGroupNotFound, m.ID)
			}
			group, err = s.groupRepo.GetByIDForUpdate(ctx, exec, *m.GroupID)
			if err != nil {
				return err
			}
		}

		if err := s.matchRepo.Update(ctx, exec, m); err != nil {
			return err
		}
		if group != nil {
			table, err = recomputeGroupStandings(ctx, exec, s.groupRepo, s.matchRepo, group)
			if err != nil {
				return err
			}
		}
		match = m
		return nil
	})
	if err != nil {
		return nil, handleRepositoryError(err, "record match result")
	}

	s.logger.Info("match result recorded",
		slog.Int("match_id", match.ID),
		slog.Int("tournament_id", match.TournamentID),
		slog.String("status", string(match.Status)),
	)
	s.publisher.Publish(ctx, match.TournamentID, brackets.EventMatchUpdated, match)

	if group != nil {
		if err := s.cache.InvalidateStandings(ctx, group.ID); err != nil {
			s.logger.Warn("standings cache invalidation failed", slog.Int("group_id", group.ID), slog.Any("error", err))
		}
		group.Teams = table
		s.publisher.Publish(ctx, match.TournamentID, brackets.EventStandingsUpdated, GroupTable{
			Group:     group,
			Standings: brackets.RankStandings(table),
		})
	}
	return match, nil
}

func (s *matchService) GetMatch(ctx context.Context, matchID int) (*models.Match, error) {
	m, err := s.matchRepo.GetByID(ctx, nil, matchID)
	if err != nil {
		return nil, handleRepositoryError(err, "get match")
	}
	return m, nil
}

func (s *matchService) ListMatches(ctx context.Context, tournamentID int, filter repositories.MatchFilter) ([]*models.Match, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, nil, tournamentID); err != nil {
		return nil, handleRepositoryError(err, "get tournament")
	}
	matches, err := s.matchRepo.ListByTournament(ctx, nil, tournamentID, filter)
	if err != nil {
		return nil, handleRepositoryError(err, "list matches")
	}
	return matches, nil
}
