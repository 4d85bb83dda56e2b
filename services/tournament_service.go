package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/tournament-progression/models"
	"github.com/Dosada05/tournament-progression/repositories"
	"golang.org/x/sync/errgroup"
)

type CreateTournamentInput struct {
	Name          string                  `json:"name"`
	Format        models.TournamentFormat `json:"format"`
	NumberOfTeams int                     `json:"number_of_teams"`
	NumberOfGroup int                     `json:"number_of_group"`
}

// TournamentOverview is everything a client needs to render a tournament page.
type TournamentOverview struct {
	Tournament *models.Tournament      `json:"tournament"`
	Teams      []*models.Team          `json:"teams"`
	Groups     []GroupTable            `json:"groups"`
	Matches    []*models.Match         `json:"matches"`
	Stats      *models.TournamentStats `json:"stats"`
}

type TournamentService interface {
	CreateTournament(ctx context.Context, input CreateTournamentInput, creatorID *int) (*models.Tournament, error)
	GetTournament(ctx context.Context, id int) (*models.Tournament, error)
	ListTournaments(ctx context.Context, limit, offset int) ([]*models.Tournament, error)
	RegisterTeam(ctx context.Context, tournamentID, teamID int) (*models.Tournament, error)
	GetStats(ctx context.Context, tournamentID int) (*models.TournamentStats, error)
	GetOverview(ctx context.Context, tournamentID int) (*TournamentOverview, error)
}

type tournamentService struct {
	tx             repositories.Transactor
	tournamentRepo repositories.TournamentRepository
	teamRepo       repositories.TeamRepository
	matchRepo      repositories.MatchRepository
	groupService   GroupService
	logger         *slog.Logger
}

func NewTournamentService(
	tx repositories.Transactor,
	tournamentRepo repositories.TournamentRepository,
	teamRepo repositories.TeamRepository,
	matchRepo repositories.MatchRepository,
	groupService GroupService,
	logger *slog.Logger,
) TournamentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &tournamentService{
		tx:             tx,
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		matchRepo:      matchRepo,
		groupService:   groupService,
		logger:         logger,
	}
}

func (s *tournamentService) CreateTournament(ctx context.Context, input CreateTournamentInput, creatorID *int) (*models.Tournament, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: tournament name is required", ErrInvalidInput)
	}
	if !input.Format.Valid() {
		return nil, fmt.Errorf("%w: unknown format %q", ErrInvalidInput, input.Format)
	}
	if input.NumberOfTeams < 2 {
		return nil, fmt.Errorf("%w: a tournament needs at least 2 teams", ErrInvalidInput)
	}
	groups := input.NumberOfGroup
	if input.Format == models.FormatRoundRobin || groups == 0 {
		groups = 1
	}
	if groups < 1 || groups > input.NumberOfTeams {
		return nil, fmt.Errorf("%w: number_of_group must be between 1 and number_of_teams", ErrInvalidInput)
	}

	t := &models.Tournament{
		Name:          name,
		Format:        input.Format,
		NumberOfTeams: input.NumberOfTeams,
		NumberOfGroup: groups,
		Stage:         models.StageUngrouped,
		CreatedBy:     creatorID,
		Teams:         []int{},
	}
	if err := s.tournamentRepo.Create(ctx, t); err != nil {
		return nil, handleRepositoryError(err, "create tournament")
	}
	s.logger.Info("tournament created", slog.Int("tournament_id", t.ID), slog.String("format", string(t.Format)))
	return t, nil
}

func (s *tournamentService) GetTournament(ctx context.Context, id int) (*models.Tournament, error) {
	t, err := s.tournamentRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, handleRepositoryError(err, "get tournament")
	}
	teams, err := s.tournamentRepo.ListTeamIDs(ctx, nil, id)
	if err != nil {
		return nil, handleRepositoryError(err, "list tournament teams")
	}
	t.Teams = teams
	return t, nil
}

func (s *tournamentService) ListTournaments(ctx context.Context, limit, offset int) ([]*models.Tournament, error) {
	list, err := s.tournamentRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, handleRepositoryError(err, "list tournaments")
	}
	return list, nil
}

// RegisterTeam adds a team to the roster. The roster is frozen once groups
// are formed and capped at number_of_teams.
func (s *tournamentService) RegisterTeam(ctx context.Context, tournamentID, teamID int) (*models.Tournament, error) {
	var tournament *models.Tournament
	err := s.tx.WithinTransaction(ctx, func(exec repositories.SQLExecutor) error {
		t, err := s.tournamentRepo.GetByIDForUpdate(ctx, exec, tournamentID)
		if err != nil {
			return err
		}
		if t.Stage != models.StageUngrouped {
			return ErrRosterLocked
		}
		roster, err := s.tournamentRepo.ListTeamIDs(ctx, exec, tournamentID)
		if err != nil {
			return err
		}
		for _, id := range roster {
			if id == teamID {
				return ErrTeamAlreadyRegistered
			}
		}
		if len(roster) >= t.NumberOfTeams {
			return ErrTournamentFull
		}
		if err := s.tournamentRepo.AddTeam(ctx, exec, tournamentID, teamID); err != nil {
			return err
		}
		t.Teams = append(roster, teamID)
		tournament = t
		return nil
	})
	if err != nil {
		return nil, handleRepositoryError(err, "register team")
	}
	s.logger.Info("team registered", slog.Int("tournament_id", tournamentID), slog.Int("team_id", teamID))
	return tournament, nil
}

func (s *tournamentService) GetStats(ctx context.Context, tournamentID int) (*models.TournamentStats, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, nil, tournamentID); err != nil {
		return nil, handleRepositoryError(err, "get tournament")
	}
	matches, err := s.matchRepo.ListByTournament(ctx, nil, tournamentID, repositories.MatchFilter{})
	if err != nil {
		return nil, handleRepositoryError(err, "list matches")
	}
	return CalculateStats(matches), nil
}

// CalculateStats totals goals and cards over every match. On a tie the
// highest-scoring match is the last scored one in list order.
func CalculateStats(matches []*models.Match) *models.TournamentStats {
	stats := &models.TournamentStats{TotalMatch: len(matches)}
	best := -1
	for _, m := range matches {
		goals := 0
		if m.ScoreTeam1 != nil {
			goals += *m.ScoreTeam1
		}
		if m.ScoreTeam2 != nil {
			goals += *m.ScoreTeam2
		}
		stats.TotalGoals += goals
		stats.TotalYellowCard += m.YellowCardsTeam1 + m.YellowCardsTeam2
		stats.TotalRedCard += m.RedCardsTeam1 + m.RedCardsTeam2
		if goals >= best && (m.ScoreTeam1 != nil || m.ScoreTeam2 != nil) {
			best = goals
			stats.TopScoringMatch = m
		}
	}
	return stats
}

func (s *tournamentService) GetOverview(ctx context.Context, tournamentID int) (*TournamentOverview, error) {
	tournament, err := s.GetTournament(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	overview := &TournamentOverview{Tournament: tournament}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		teams, err := s.teamRepo.ListByIDs(gCtx, nil, tournament.Teams)
		if err != nil {
			return handleRepositoryError(err, "list teams")
		}
		overview.Teams = teams
		return nil
	})

	g.Go(func() error {
		tables, err := s.groupService.ListGroupTables(gCtx, tournamentID)
		if err != nil {
			return err
		}
		overview.Groups = tables
		return nil
	})

	g.Go(func() error {
		matches, err := s.matchRepo.ListByTournament(gCtx, nil, tournamentID, repositories.MatchFilter{})
		if err != nil {
			return handleRepositoryError(err, "list matches")
		}
		overview.Matches = matches
		overview.Stats = CalculateStats(matches)
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("failed to load tournament overview", slog.Int("tournament_id", tournamentID), slog.Any("error", err))
		return nil, err
	}
	return overview, nil
}
