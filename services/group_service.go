package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dosada05/tournament-progression/brackets"
	"github.com/Dosada05/tournament-progression/models"
	"github.com/Dosada05/tournament-progression/repositories"
)

// GroupTable is a group together with its ranked standings.
type GroupTable struct {
	Group     *models.Group       `json:"group"`
	Standings []models.RankedTeam `json:"standings"`
}

type GroupService interface {
	// FormGroups partitions the roster. groupCount <= 0 uses the tournament's number_of_group.
	FormGroups(ctx context.Context, tournamentID int, groupCount int) ([]*models.Group, error)
	GenerateGroupMatches(ctx context.Context, tournamentID int) ([]*models.Match, error)
	ListGroups(ctx context.Context, tournamentID int) ([]*models.Group, error)
	ListGroupTables(ctx context.Context, tournamentID int) ([]GroupTable, error)
	GetStandings(ctx context.Context, groupID int) ([]models.RankedTeam, error)
	// RecalculateStandings rebuilds a group table from its finished matches.
	RecalculateStandings(ctx context.Context, groupID int) ([]models.RankedTeam, error)
}

type groupService struct {
	tx             repositories.Transactor
	tournamentRepo repositories.TournamentRepository
	groupRepo      repositories.GroupRepository
	matchRepo      repositories.MatchRepository
	publisher      EventPublisher
	cache          StandingsCache
	logger         *slog.Logger
}

func NewGroupService(
	tx repositories.Transactor,
	tournamentRepo repositories.TournamentRepository,
	groupRepo repositories.GroupRepository,
	matchRepo repositories.MatchRepository,
	publisher EventPublisher,
	cache StandingsCache,
	logger *slog.Logger,
) GroupService {
	if logger == nil {
		logger = slog.Default()
	}
	return &groupService{
		tx:             tx,
		tournamentRepo: tournamentRepo,
		groupRepo:      groupRepo,
		matchRepo:      matchRepo,
		publisher:      publisherOrNoop(publisher),
		cache:          cacheOrNoop(cache),
		logger:         logger,
	}
}

func (s *groupService) FormGroups(ctx context.Context, tournamentID int, groupCount int) ([]*models.Group, error) {
	var groups []*models.Group
	err := s.tx.WithinTransaction(ctx, func(exec repositories.SQLExecutor) error {
		t, err := s.tournamentRepo.GetByIDForUpdate(ctx, exec, tournamentID)
		if err != nil {
			return err
		}
		if !t.Stage.CanAdvanceTo(models.StageGrouped) {
			return fmt.Errorf("%w: groups of tournament %d are already formed", ErrAlreadyProcessed, tournamentID)
		}
		if groupCount <= 0 {
			groupCount = t.NumberOfGroup
		}

		roster, err := s.tournamentRepo.ListTeamIDs(ctx, exec, tournamentID)
		if err != nil {
			return err
		}
		partitions, err := brackets.PartitionTeams(roster, groupCount, t.Format)
		if err != nil {
			return err
		}

		groups = make([]*models.Group, 0, len(partitions))
		for _, p := range partitions {
			g := &models.Group{
				TournamentID: tournamentID,
				Name:         p.Name,
				Teams:        brackets.NewMemberships(p),
			}
			if err := s.groupRepo.Create(ctx, exec, g); err != nil {
				return err
			}
			groups = append(groups, g)
		}
		return s.tournamentRepo.UpdateStage(ctx, exec, tournamentID, models.StageGrouped)
	})
	if err != nil {
		return nil, handleRepositoryError(err, "form groups")
	}

	s.logger.Info("groups formed", slog.Int("tournament_id", tournamentID), slog.Int("groups", len(groups)))
	s.publisher.Publish(ctx, tournamentID, brackets.EventGroupsFormed, groups)
	return groups, nil
}

func (s *groupService) GenerateGroupMatches(ctx context.Context, tournamentID int) ([]*models.Match, error) {
	generator := brackets.NewRoundRobinGenerator()

	var created []*models.Match
	err := s.tx.WithinTransaction(ctx, func(exec repositories.SQLExecutor) error {
		t, err := s.tournamentRepo.GetByIDForUpdate(ctx, exec, tournamentID)
		if err != nil {
			return err
		}
		switch t.Stage {
		case models.StageUngrouped:
			return fmt.Errorf("%w: groups must be formed before fixtures are generated", ErrInvalidInput)
		case models.StageFixturesCreated:
			return fmt.Errorf("%w: group matches of tournament %d already exist", ErrAlreadyProcessed, tournamentID)
		}

		groups, err := s.groupRepo.ListByTournament(ctx, exec, tournamentID)
		if err != nil {
			return err
		}

		created = make([]*models.Match, 0)
		for _, g := range groups {
			groupID := g.ID
			fixtures, err := generator.GenerateBracket(ctx, brackets.GenerateBracketParams{
				TournamentID: tournamentID,
				GroupID:      &groupID,
				TeamIDs:      g.TeamIDs(),
			})
			if err != nil {
				return fmt.Errorf("group %s: %w", g.Name, err)
			}
			for _, f := range fixtures {
				round := f.Round
				m := &models.Match{
					TournamentID: tournamentID,
					GroupID:      &groupID,
					Team1ID:      f.Team1ID,
					Team2ID:      f.Team2ID,
					Status:       models.MatchStatusScheduled,
					Type:         models.MatchTypeGroupStage,
					Round:        &round,
					MatchVenue:   "TBD",
				}
				if err := s.matchRepo.Create(ctx, exec, m); err != nil {
					return fmt.Errorf("failed to store fixture %s: %w", f.UID, err)
				}
				created = append(created, m)
			}
		}
		return s.tournamentRepo.UpdateStage(ctx, exec, tournamentID, models.StageFixturesCreated)
	})
	if err != nil {
		return nil, handleRepositoryError(err, "generate group matches")
	}

	s.logger.Info("group matches generated", slog.Int("tournament_id", tournamentID), slog.Int("matches", len(created)))
	s.publisher.Publish(ctx, tournamentID, brackets.EventFixturesCreated, created)
	return created, nil
}

func (s *groupService) ListGroups(ctx context.Context, tournamentID int) ([]*models.Group, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, nil, tournamentID); err != nil {
		return nil, handleRepositoryError(err, "get tournament")
	}
	groups, err := s.groupRepo.ListByTournament(ctx, nil, tournamentID)
	if err != nil {
		return nil, handleRepositoryError(err, "list groups")
	}
	return groups, nil
}

func (s *groupService) ListGroupTables(ctx context.Context, tournamentID int) ([]GroupTable, error) {
	groups, err := s.ListGroups(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	tables := make([]GroupTable, 0, len(groups))
	for _, g := range groups {
		tables = append(tables, GroupTable{Group: g, Standings: brackets.RankStandings(g.Teams)})
	}
	return tables, nil
}

func (s *groupService) GetStandings(ctx context.Context, groupID int) ([]models.RankedTeam, error) {
	updatedAt, err := s.groupRepo.GetVersion(ctx, nil, groupID)
	if err != nil {
		return nil, handleRepositoryError(err, "get group")
	}
	cached, ok, err := s.cache.GetStandings(ctx, groupID, standingsVersion(updatedAt))
	if err != nil {
		s.logger.Warn("standings cache read failed", slog.Int("group_id", groupID), slog.Any("error", err))
	} else if ok {
		return cached, nil
	}

	g, err := s.groupRepo.GetByID(ctx, nil, groupID)
	if err != nil {
		return nil, handleRepositoryError(err, "get group")
	}
	ranked := brackets.RankStandings(g.Teams)
	// Версия берется из прочитанной строки: запись, опоздавшая за коммитом, не попадет в выдачу.
	if err := s.cache.SetStandings(ctx, groupID, standingsVersion(g.UpdatedAt), ranked); err != nil {
		s.logger.Warn("standings cache write failed", slog.Int("group_id", groupID), slog.Any("error", err))
	}
	return ranked, nil
}

func (s *groupService) RecalculateStandings(ctx context.Context, groupID int) ([]models.RankedTeam, error) {
	var (
		tournamentID int
		table        []models.GroupMembership
	)
	err := s.tx.WithinTransaction(ctx, func(exec repositories.SQLExecutor) error {
		g, err := s.groupRepo.GetByIDForUpdate(ctx, exec, groupID)
		if err != nil {
			return err
		}
		tournamentID = g.TournamentID
		table, err = recomputeGroupStandings(ctx, exec, s.groupRepo, s.matchRepo, g)
		return err
	})
	if err != nil {
		return nil, handleRepositoryError(err, "recalculate standings")
	}

	if err := s.cache.InvalidateStandings(ctx, groupID); err != nil {
		s.logger.Warn("standings cache invalidation failed", slog.Int("group_id", groupID), slog.Any("error", err))
	}
	ranked := brackets.RankStandings(table)
	s.publisher.Publish(ctx, tournamentID, brackets.EventStandingsUpdated, GroupTable{
		Group:     &models.Group{ID: groupID, TournamentID: tournamentID},
		Standings: ranked,
	})
	return ranked, nil
}

// recomputeGroupStandings rebuilds the group's memberships from its finished
// matches and persists them. g must be locked by the caller.
func recomputeGroupStandings(
	ctx context.Context,
	exec repositories.SQLExecutor,
	groupRepo repositories.GroupRepository,
	matchRepo repositories.MatchRepository,
	g *models.Group,
) ([]models.GroupMembership, error) {
	matches, err := matchRepo.ListByGroup(ctx, exec, g.ID)
	if err != nil {
		return nil, err
	}
	table, err := brackets.RecomputeGroup(g.Teams, matches)
	if err != nil {
		return nil, fmt.Errorf("group %d: %w", g.ID, err)
	}
	if err := groupRepo.UpdateMemberships(ctx, exec, g.ID, table); err != nil {
		return nil, err
	}
	return table, nil
}
