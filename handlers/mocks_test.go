package handlers

import (
	"context"
	"io"

	"github.com/Dosada05/tournament-progression/models"
	"github.com/Dosada05/tournament-progression/repositories"
	"github.com/Dosada05/tournament-progression/services"
)

// Each mock method calls the matching func field; an unset field means the
// test does not expect the call and the mock panics.

type mockTournamentService struct {
	createFn   func(ctx context.Context, input services.CreateTournamentInput, creatorID *int) (*models.Tournament, error)
	getFn      func(ctx context.Context, id int) (*models.Tournament, error)
	listFn     func(ctx context.Context, limit, offset int) ([]*models.Tournament, error)
	registerFn func(ctx context.Context, tournamentID, teamID int) (*models.Tournament, error)
	statsFn    func(ctx context.Context, tournamentID int) (*models.TournamentStats, error)
	overviewFn func(ctx context.Context, tournamentID int) (*services.TournamentOverview, error)
}

func (m *mockTournamentService) CreateTournament(ctx context.Context, input services.CreateTournamentInput, creatorID *int) (*models.Tournament, error) {
	return m.createFn(ctx, input, creatorID)
}
func (m *mockTournamentService) GetTournament(ctx context.Context, id int) (*models.Tournament, error) {
	return m.getFn(ctx, id)
}
func (m *mockTournamentService) ListTournaments(ctx context.Context, limit, offset int) ([]*models.Tournament, error) {
	return m.listFn(ctx, limit, offset)
}
func (m *mockTournamentService) RegisterTeam(ctx context.Context, tournamentID, teamID int) (*models.Tournament, error) {
	return m.registerFn(ctx, tournamentID, teamID)
}
func (m *mockTournamentService) GetStats(ctx context.Context, tournamentID int) (*models.TournamentStats, error) {
	return m.statsFn(ctx, tournamentID)
}
func (m *mockTournamentService) GetOverview(ctx context.Context, tournamentID int) (*services.TournamentOverview, error) {
	return m.overviewFn(ctx, tournamentID)
}

type mockTeamService struct {
	createFn func(ctx context.Context, name string) (*models.Team, error)
	getFn    func(ctx context.Context, id int) (*models.Team, error)
	listFn   func(ctx context.Context) ([]*models.Team, error)
	uploadFn func(ctx context.Context, teamID int, file io.Reader, contentType string) (*models.Team, error)
}

func (m *mockTeamService) CreateTeam(ctx context.Context, name string) (*models.Team, error) {
	return m.createFn(ctx, name)
}
func (m *mockTeamService) GetTeam(ctx context.Context, id int) (*models.Team, error) {
	return m.getFn(ctx, id)
}
func (m *mockTeamService) ListTeams(ctx context.Context) ([]*models.Team, error) {
	return m.listFn(ctx)
}
func (m *mockTeamService) UploadLogo(ctx context.Context, teamID int, file io.Reader, contentType string) (*models.Team, error) {
	return m.uploadFn(ctx, teamID, file, contentType)
}

type mockGroupService struct {
	formFn        func(ctx context.Context, tournamentID int, groupCount int) ([]*models.Group, error)
	generateFn    func(ctx context.Context, tournamentID int) ([]*models.Match, error)
	listFn        func(ctx context.Context, tournamentID int) ([]*models.Group, error)
	tablesFn      func(ctx context.Context, tournamentID int) ([]services.GroupTable, error)
	standingsFn   func(ctx context.Context, groupID int) ([]models.RankedTeam, error)
	recalculateFn func(ctx context.Context, groupID int) ([]models.RankedTeam, error)
}

func (m *mockGroupService) FormGroups(ctx context.Context, tournamentID int, groupCount int) ([]*models.Group, error) {
	return m.formFn(ctx, tournamentID, groupCount)
}
func (m *mockGroupService) GenerateGroupMatches(ctx context.Context, tournamentID int) ([]*models.Match, error) {
	return m.generateFn(ctx, tournamentID)
}
func (m *mockGroupService) ListGroups(ctx context.Context, tournamentID int) ([]*models.Group, error) {
	return m.listFn(ctx, tournamentID)
}
func (m *mockGroupService) ListGroupTables(ctx context.Context, tournamentID int) ([]services.GroupTable, error) {
	return m.tablesFn(ctx, tournamentID)
}
func (m *mockGroupService) GetStandings(ctx context.Context, groupID int) ([]models.RankedTeam, error) {
	return m.standingsFn(ctx, groupID)
}
func (m *mockGroupService) RecalculateStandings(ctx context.Context, groupID int) ([]models.RankedTeam, error) {
	return m.recalculateFn(ctx, groupID)
}

type mockMatchService struct {
	recordFn func(ctx context.Context, matchID int, payload models.ResultPayload) (*models.Match, error)
	getFn    func(ctx context.Context, matchID int) (*models.Match, error)
	listFn   func(ctx context.Context, tournamentID int, filter repositories.MatchFilter) ([]*models.Match, error)
}

func (m *mockMatchService) RecordResult(ctx context.Context, matchID int, payload models.ResultPayload) (*models.Match, error) {
	return m.recordFn(ctx, matchID, payload)
}
func (m *mockMatchService) GetMatch(ctx context.Context, matchID int) (*models.Match, error) {
	return m.getFn(ctx, matchID)
}
func (m *mockMatchService) ListMatches(ctx context.Context, tournamentID int, filter repositories.MatchFilter) ([]*models.Match, error) {
	return m.listFn(ctx, tournamentID, filter)
}

type mockBracketService struct {
	buildFn      func(ctx context.Context, tournamentID, teamCount int) ([]*models.Match, error)
	getFn        func(ctx context.Context, tournamentID int) (*services.KnockoutBracket, error)
	assignFn     func(ctx context.Context, matchID int, team1ID, team2ID *int) (*models.Match, error)
	advanceFn    func(ctx context.Context, matchID int) (*services.AdvanceResult, error)
	finalFn      func(ctx context.Context, tournamentID, round int) (*models.FinalResult, error)
	thirdFn      func(ctx context.Context, tournamentID, round int) (int, error)
	roundsFn     func(ctx context.Context, tournamentID int) (*services.PlacementRoundsView, error)
	placementsFn func(ctx context.Context, tournamentID int) (*models.Placements, error)
	archiveFn    func(ctx context.Context, tournamentID int) (*services.ArchivedPlacements, error)
}

func (m *mockBracketService) BuildKnockoutBracket(ctx context.Context, tournamentID, teamCount int) ([]*models.Match, error) {
	return m.buildFn(ctx, tournamentID, teamCount)
}
func (m *mockBracketService) GetBracket(ctx context.Context, tournamentID int) (*services.KnockoutBracket, error) {
	return m.getFn(ctx, tournamentID)
}
func (m *mockBracketService) AssignTeams(ctx context.Context, matchID int, team1ID, team2ID *int) (*models.Match, error) {
	return m.assignFn(ctx, matchID, team1ID, team2ID)
}
func (m *mockBracketService) AdvanceWinner(ctx context.Context, matchID int) (*services.AdvanceResult, error) {
	return m.advanceFn(ctx, matchID)
}
func (m *mockBracketService) ResolveFinal(ctx context.Context, tournamentID, round int) (*models.FinalResult, error) {
	return m.finalFn(ctx, tournamentID, round)
}
func (m *mockBracketService) ResolveThirdPlace(ctx context.Context, tournamentID, round int) (int, error) {
	return m.thirdFn(ctx, tournamentID, round)
}
func (m *mockBracketService) GetPlacementRounds(ctx context.Context, tournamentID int) (*services.PlacementRoundsView, error) {
	return m.roundsFn(ctx, tournamentID)
}
func (m *mockBracketService) ResolvePlacements(ctx context.Context, tournamentID int) (*models.Placements, error) {
	return m.placementsFn(ctx, tournamentID)
}
func (m *mockBracketService) ArchivePlacements(ctx context.Context, tournamentID int) (*services.ArchivedPlacements, error) {
	return m.archiveFn(ctx, tournamentID)
}
