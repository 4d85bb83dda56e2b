package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/Dosada05/tournament-progression/brackets"
	"github.com/Dosada05/tournament-progression/models"
	"github.com/Dosada05/tournament-progression/repositories"
	"github.com/Dosada05/tournament-progression/storage"
)

// KnockoutRound groups the matches of one bracket round for display.
type KnockoutRound struct {
	Round   int             `json:"round"`
	Name    string          `json:"name"`
	Matches []*models.Match `json:"matches"`
}

type KnockoutBracket struct {
	TournamentID int             `json:"tournament"`
	TeamCount    int             `json:"teamCount"`
	Rounds       []KnockoutRound `json:"rounds"`
}

// AdvanceResult lists the matches touched by AdvanceWinner.
type AdvanceResult struct {
	Match      *models.Match `json:"match"`
	NextMatch  *models.Match `json:"nextMatch"`
	ThirdPlace *models.Match `json:"thirdPlace,omitempty"`
}

type PlacementRoundsView struct {
	TeamCount       int  `json:"teamCount"`
	FinalRound      int  `json:"finalRound"`
	ThirdPlaceRound *int `json:"thirdPlaceRound,omitempty"`
	// Round the third-place match is actually stored at.
	ThirdPlaceSlotRound *int `json:"thirdPlaceSlotRound,omitempty"`
}

type ArchivedPlacements struct {
	Placements *models.Placements `json:"placements"`
	Key        string             `json:"key"`
	URL        string             `json:"url"`
}

type BracketService interface {
	BuildKnockoutBracket(ctx context.Context, tournamentID, teamCount int) ([]*models.Match, error)
	GetBracket(ctx context.Context, tournamentID int) (*KnockoutBracket, error)
	AssignTeams(ctx context.Context, matchID int, team1ID, team2ID *int) (*models.Match, error)
	AdvanceWinner(ctx context.Context, matchID int) (*AdvanceResult, error)
	ResolveFinal(ctx context.Context, tournamentID, round int) (*models.FinalResult, error)
	ResolveThirdPlace(ctx context.Context, tournamentID, round int) (int, error)
	GetPlacementRounds(ctx context.Context, tournamentID int) (*PlacementRoundsView, error)
	ResolvePlacements(ctx context.Context, tournamentID int) (*models.Placements, error)
	ArchivePlacements(ctx context.Context, tournamentID int) (*ArchivedPlacements, error)
}

type bracketService struct {
	tx             repositories.Transactor
	tournamentRepo repositories.TournamentRepository
	matchRepo      repositories.MatchRepository
	uploader       storage.FileUploader
	publisher      EventPublisher
	logger         *slog.Logger
}

func NewBracketService(
	tx repositories.Transactor,
	tournamentRepo repositories.TournamentRepository,
	matchRepo repositories.MatchRepository,
	uploader storage.FileUploader,
	publisher EventPublisher,
	logger *slog.Logger,
) BracketService {
	if logger == nil {
		logger = slog.Default()
	}
	return &bracketService{
		tx:             tx,
		tournamentRepo: tournamentRepo,
		matchRepo:      matchRepo,
		uploader:       uploader,
		publisher:      publisherOrNoop(publisher),
		logger:         logger,
	}
}

func knockoutFilter(round *int) repositories.MatchFilter {
	t := models.MatchTypeKnockout
	return repositories.MatchFilter{Type: &t, Round: round}
}

// BuildKnockoutBracket creates the knockout slots that do not exist yet and
// returns the whole bracket. Stored results are left untouched.
func (s *bracketService) BuildKnockoutBracket(ctx context.Context, tournamentID, teamCount int) ([]*models.Match, error) {
	generator := brackets.NewSingleEliminationGenerator()

	var (
		all     []*models.Match
		created int
	)
	err := s.tx.WithinTransaction(ctx, func(exec repositories.SQLExecutor) error {
		t, err := s.tournamentRepo.GetByIDForUpdate(ctx, exec, tournamentID)
		if err != nil {
			return err
		}

		existing, err := s.matchRepo.ListByTournament(ctx, exec, tournamentID, knockoutFilter(nil))
		if err != nil {
			return err
		}
		if len(existing) > 0 && t.NumberOfTeamAdvances != nil && *t.NumberOfTeamAdvances != teamCount {
			return fmt.Errorf("%w: bracket already built for %d teams", ErrInvalidInput, *t.NumberOfTeamAdvances)
		}

		refs := make([]brackets.SlotRef, 0, len(existing))
		for _, m := range existing {
			if m.Round == nil {
				return fmt.Errorf("%w: knockout match %d has no round", ErrInvalidInput, m.ID)
			}
			refs = append(refs, brackets.SlotRef{Round: *m.Round, Index: m.RoundIndex})
		}

		slots, err := generator.GenerateBracket(ctx, brackets.GenerateBracketParams{
			TournamentID:  tournamentID,
			TeamCount:     teamCount,
			ExistingSlots: refs,
		})
		if err != nil {
			return err
		}

		all = existing
		for _, slot := range slots {
			round, index := slot.Round, slot.OrderInRound
			m := &models.Match{
				TournamentID: tournamentID,
				Status:       models.MatchStatusScheduled,
				Type:         models.MatchTypeKnockout,
				Round:        &round,
				RoundIndex:   &index,
				MatchVenue:   "TBD",
			}
			if err := s.matchRepo.Create(ctx, exec, m); err != nil {
				return fmt.Errorf("failed to store knockout slot %s: %w", slot.UID, err)
			}
			all = append(all, m)
		}
		created = len(slots)
		return s.tournamentRepo.SetTeamAdvances(ctx, exec, tournamentID, teamCount)
	})
	if err != nil {
		return nil, handleRepositoryError(err, "build knockout bracket")
	}

	sortKnockout(all)
	s.logger.Info("knockout bracket built",
		slog.Int("tournament_id", tournamentID),
		slog.Int("team_count", teamCount),
		slog.Int("created", created),
	)
	if created > 0 {
		s.publisher.Publish(ctx, tournamentID, brackets.EventBracketUpdated, all)
	}
	return all, nil
}

// sortKnockout orders matches like KnockoutLayout.Slots: rounds ascending,
// third place last.
func sortKnockout(matches []*models.Match) {
	key := func(m *models.Match) (int, int) {
		round, index := 0, 0
		if m.Round != nil {
			round = *m.Round
		}
		if round == brackets.ThirdPlaceRound {
			round = brackets.MaxKnockoutTeams
		}
		if m.RoundIndex != nil {
			index = *m.RoundIndex
		}
		return round, index
	}
	sort.SliceStable(matches, func(i, j int) bool {
		ri, ii := key(matches[i])
		rj, ij := key(matches[j])
		if ri != rj {
			return ri < rj
		}
		return ii < ij
	})
}

func (s *bracketService) layoutFor(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) (brackets.KnockoutLayout, error) {
	t, err := s.tournamentRepo.GetByID(ctx, exec, tournamentID)
	if err != nil {
		return brackets.KnockoutLayout{}, err
	}
	if t.NumberOfTeamAdvances == nil {
		return brackets.KnockoutLayout{}, fmt.Errorf("%w: knockout bracket of tournament %d is not built", ErrInvalidInput, tournamentID)
	}
	return brackets.NewKnockoutLayout(*t.NumberOfTeamAdvances)
}

func (s *bracketService) GetBracket(ctx context.Context, tournamentID int) (*KnockoutBracket, error) {
	layout, err := s.layoutFor(ctx, nil, tournamentID)
	if err != nil {
		return nil, handleRepositoryError(err, "get bracket")
	}
	matches, err := s.matchRepo.ListByTournament(ctx, nil, tournamentID, knockoutFilter(nil))
	if err != nil {
		return nil, handleRepositoryError(err, "list knockout matches")
	}
	sortKnockout(matches)

	byRound := make(map[int][]*models.Match)
	for _, m := range matches {
		if m.Round != nil {
			byRound[*m.Round] = append(byRound[*m.Round], m)
		}
	}

	bracket := &KnockoutBracket{TournamentID: tournamentID, TeamCount: layout.TeamCount}
	rounds := make([]int, 0, layout.Rounds+1)
	for r := 1; r <= layout.Rounds; r++ {
		rounds = append(rounds, r)
	}
	if layout.HasThirdPlace {
		rounds = append(rounds, brackets.ThirdPlaceRound)
	}
	for _, r := range rounds {
		list := byRound[r]
		if list == nil {
			list = []*models.Match{}
		}
		bracket.Rounds = append(bracket.Rounds, KnockoutRound{Round: r, Name: layout.RoundName(r), Matches: list})
	}
	return bracket, nil
}

// AssignTeams sets the participants of a knockout slot, typically the
// qualifiers of the group stage for round 1.
func (s *bracketService) AssignTeams(ctx context.Context, matchID int, team1ID, team2ID *int) (*models.Match, error) {
	if team1ID != nil && team2ID != nil && *team1ID == *team2ID {
		return nil, fmt.Errorf("%w: a team cannot play itself", ErrInvalidInput)
	}

	var match *models.Match
	err := s.tx.WithinTransaction(ctx, func(exec repositories.SQLExecutor) error {
		m, err := s.matchRepo.GetByIDForUpdate(ctx, exec, matchID)
		if err != nil {
			return err
		}
		if m.Type != models.MatchTypeKnockout {
			return fmt.Errorf("%w: only knockout slots can be assigned", ErrInvalidInput)
		}
		if m.IsFinished() {
			return fmt.Errorf("%w: match %d is already finished", ErrAlreadyProcessed, matchID)
		}

		roster, err := s.tournamentRepo.ListTeamIDs(ctx, exec, m.TournamentID)
		if err != nil {
			return err
		}
		registered := make(map[int]bool, len(roster))
		for _, id := range roster {
			registered[id] = true
		}
		for _, id := range []*int{team1ID, team2ID} {
			if id != nil && !registered[*id] {
				return fmt.Errorf("%w: team %d is not registered in tournament %d", ErrTeamNotFound, *id, m.TournamentID)
			}
		}

		m.Team1ID, m.Team2ID = team1ID, team2ID
		if err := s.matchRepo.Update(ctx, exec, m); err != nil {
			return err
		}
		match = m
		return nil
	})
	if err != nil {
		return nil, handleRepositoryError(err, "assign knockout teams")
	}
	s.publisher.Publish(ctx, match.TournamentID, brackets.EventBracketUpdated, match)
	return match, nil
}

func (s *bracketService) AdvanceWinner(ctx context.Context, matchID int) (*AdvanceResult, error) {
	result := &AdvanceResult{}
	err := s.tx.WithinTransaction(ctx, func(exec repositories.SQLExecutor) error {
		m, err := s.matchRepo.GetByIDForUpdate(ctx, exec, matchID)
		if err != nil {
			return err
		}
		if m.Type != models.MatchTypeKnockout {
			return fmt.Errorf("%w: only knockout matches advance", ErrInvalidInput)
		}
		if !m.IsFinished() || m.WinnerID == nil {
			return ErrWinnerUndetermined
		}
		if m.Round == nil || m.RoundIndex == nil {
			return fmt.Errorf("%w: match %d has no bracket slot", ErrInvalidInput, matchID)
		}

		layout, err := s.layoutFor(ctx, exec, m.TournamentID)
		if err != nil {
			return err
		}
		adv, err := layout.AdvanceTargets(brackets.Slot{Round: *m.Round, Index: *m.RoundIndex})
		if err != nil {
			return err
		}

		result.Match = m
		result.NextMatch, err = s.placeTeam(ctx, exec, m.TournamentID, adv.Winner, *m.WinnerID)
		if err != nil {
			return err
		}
		if adv.Loser != nil {
			loser := m.Loser()
			if loser == nil {
				return fmt.Errorf("%w: loser of match %d is unknown", ErrInvalidInput, matchID)
			}
			result.ThirdPlace, err = s.placeTeam(ctx, exec, m.TournamentID, *adv.Loser, *loser)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, handleRepositoryError(err, "advance winner")
	}

	s.logger.Info("winner advanced",
		slog.Int("match_id", matchID),
		slog.Int("next_match_id", result.NextMatch.ID),
	)
	s.publisher.Publish(ctx, result.Match.TournamentID, brackets.EventBracketUpdated, result)
	return result, nil
}

// placeTeam writes teamID into the target slot. Re-placing the same team is a
// no-op; replacing a different team is only allowed while the target match is
// not finished.
func (s *bracketService) placeTeam(ctx context.Context, exec repositories.SQLExecutor, tournamentID int, target brackets.SlotTarget, teamID int) (*models.Match, error) {
	next, err := s.matchRepo.GetKnockoutSlotForUpdate(ctx, exec, tournamentID, target.Slot.Round, target.Slot.Index)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, fmt.Errorf("%w: knockout slot %d/%d does not exist", ErrNotFound, target.Slot.Round, target.Slot.Index)
		}
		return nil, err
	}

	current, other := &next.Team1ID, next.Team2ID
	if target.Position == 2 {
		current, other = &next.Team2ID, next.Team1ID
	}
	if *current != nil && **current == teamID {
		return next, nil
	}
	if other != nil && *other == teamID {
		return nil, fmt.Errorf("%w: team %d already occupies the other side of match %d", ErrInvalidInput, teamID, next.ID)
	}
	if *current != nil && next.IsFinished() {
		return nil, fmt.Errorf("%w: match %d is finished with a different team", ErrAlreadyProcessed, next.ID)
	}

	id := teamID
	*current = &id
	if err := s.matchRepo.Update(ctx, exec, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *bracketService) ResolveFinal(ctx context.Context, tournamentID, round int) (*models.FinalResult, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, nil, tournamentID); err != nil {
		return nil, handleRepositoryError(err, "get tournament")
	}
	matches, err := s.matchRepo.ListByTournament(ctx, nil, tournamentID, knockoutFilter(&round))
	if err != nil {
		return nil, handleRepositoryError(err, "list final matches")
	}
	result, err := brackets.ResolveFinal(matches)
	if err != nil {
		return nil, handleRepositoryError(err, "resolve final")
	}
	return &result, nil
}

func (s *bracketService) ResolveThirdPlace(ctx context.Context, tournamentID, round int) (int, error) {
	if _, err := s.tournamentRepo.GetByID(ctx, nil, tournamentID); err != nil {
		return 0, handleRepositoryError(err, "get tournament")
	}
	matches, err := s.matchRepo.ListByTournament(ctx, nil, tournamentID, knockoutFilter(&round))
	if err != nil {
		return 0, handleRepositoryError(err, "list third place matches")
	}
	winner, err := brackets.ResolveThirdPlace(matches)
	if err != nil {
		return 0, handleRepositoryError(err, "resolve third place")
	}
	return winner, nil
}

// GetPlacementRounds reports the rounds clients historically query for the
// final and the third place.
func (s *bracketService) GetPlacementRounds(ctx context.Context, tournamentID int) (*PlacementRoundsView, error) {
	layout, err := s.layoutFor(ctx, nil, tournamentID)
	if err != nil {
		return nil, handleRepositoryError(err, "get placement rounds")
	}
	final, third, hasThird, err := brackets.PlacementRounds(layout.TeamCount)
	if err != nil {
		return nil, handleRepositoryError(err, "get placement rounds")
	}
	view := &PlacementRoundsView{TeamCount: layout.TeamCount, FinalRound: final}
	if hasThird {
		slot := brackets.ThirdPlaceRound
		view.ThirdPlaceRound = &third
		view.ThirdPlaceSlotRound = &slot
	}
	return view, nil
}

// ResolvePlacements reads champion and runner-up from the final and third
// place from the round-0 match.
func (s *bracketService) ResolvePlacements(ctx context.Context, tournamentID int) (*models.Placements, error) {
	layout, err := s.layoutFor(ctx, nil, tournamentID)
	if err != nil {
		return nil, handleRepositoryError(err, "resolve placements")
	}
	final, err := s.ResolveFinal(ctx, tournamentID, layout.FinalRound())
	if err != nil {
		return nil, err
	}
	placements := &models.Placements{
		TournamentID: tournamentID,
		Champion:     final.Winner,
		RunnerUp:     final.RunnerUp,
	}
	if layout.HasThirdPlace {
		third, err := s.ResolveThirdPlace(ctx, tournamentID, brackets.ThirdPlaceRound)
		if err != nil {
			return nil, err
		}
		placements.ThirdPlace = &third
	}
	return placements, nil
}

// ArchivePlacements uploads the final placements as JSON to object storage.
func (s *bracketService) ArchivePlacements(ctx context.Context, tournamentID int) (*ArchivedPlacements, error) {
	if s.uploader == nil {
		return nil, ErrStorageUnavailable
	}
	placements, err := s.ResolvePlacements(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(placements)
	if err != nil {
		return nil, fmt.Errorf("failed to encode placements: %w", err)
	}
	key := storage.PlacementsKey(tournamentID)
	uploaded, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(body))
	if err != nil {
		s.logger.Error("failed to archive placements", slog.Int("tournament_id", tournamentID), slog.Any("error", err))
		return nil, fmt.Errorf("archive placements: %w", err)
	}

	archived := &ArchivedPlacements{Placements: placements, Key: uploaded.Key, URL: uploaded.Location}
	s.publisher.Publish(ctx, tournamentID, brackets.EventPlacementsDecided, archived)
	return archived, nil
}
