package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-progression/models"
)

var (
	ErrMatchNotFound     = errors.New("match not found")
	ErrMatchSlotConflict = errors.New("knockout slot already exists")
	ErrMatchInvalid      = errors.New("match violates a constraint")
)

// MatchFilter narrows ListByTournament. Nil fields are ignored.
type MatchFilter struct {
	Type  *models.MatchType
	Round *int
}

type MatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.Match) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Match, error)
	GetByIDForUpdate(ctx context.Context, exec SQLExecutor, id int) (*models.Match, error)
	// GetKnockoutSlotForUpdate locks the knockout match stored at (round, index).
	GetKnockoutSlotForUpdate(ctx context.Context, exec SQLExecutor, tournamentID, round, index int) (*models.Match, error)
	Update(ctx context.Context, exec SQLExecutor, match *models.Match) error
	// ListByTournament orders matches by creation, so the first match of a
	// round is the one created first.
	ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int, filter MatchFilter) ([]*models.Match, error)
	ListByGroup(ctx context.Context, exec SQLExecutor, groupID int) ([]*models.Match, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const matchColumns = `
	id, tournament_id, group_id, team1_id, team2_id, score_team1, score_team2,
	penalty_team1, penalty_team2, yellow_cards_team1, yellow_cards_team2,
	red_cards_team1, red_cards_team2, winner_id, status, type, round, round_index,
	match_date, match_venue, created_at`

func scanMatch(row rowScanner) (*models.Match, error) {
	var (
		m                             models.Match
		groupID, team1, team2, winner sql.NullInt64
		score1, score2, pen1, pen2    sql.NullInt64
		round, roundIndex             sql.NullInt64
		matchDate                     sql.NullTime
	)
	err := row.Scan(
		&m.ID, &m.TournamentID, &groupID, &team1, &team2, &score1, &score2,
		&pen1, &pen2, &m.YellowCardsTeam1, &m.YellowCardsTeam2,
		&m.RedCardsTeam1, &m.RedCardsTeam2, &winner, &m.Status, &m.Type, &round, &roundIndex,
		&matchDate, &m.MatchVenue, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	m.GroupID = intFromNull(groupID)
	m.Team1ID = intFromNull(team1)
	m.Team2ID = intFromNull(team2)
	m.ScoreTeam1 = intFromNull(score1)
	m.ScoreTeam2 = intFromNull(score2)
	m.PenaltyTeam1 = intFromNull(pen1)
	m.PenaltyTeam2 = intFromNull(pen2)
	m.WinnerID = intFromNull(winner)
	m.Round = intFromNull(round)
	m.RoundIndex = intFromNull(roundIndex)
	if matchDate.Valid {
		d := matchDate.Time
		m.MatchDate = &d
	}
	return &m, nil
}

func (r *postgresMatchRepository) Create(ctx context.Context, exec SQLExecutor, m *models.Match) error {
	if m.Status == "" {
		m.Status = models.MatchStatusScheduled
	}
	if m.MatchVenue == "" {
		m.MatchVenue = "TBD"
	}
	query := `
		INSERT INTO matches (
			tournament_id, group_id, team1_id, team2_id, status, type, round, round_index,
			match_date, match_venue
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	err := r.getExecutor(exec).QueryRowContext(ctx, query,
		m.TournamentID, nullableInt(m.GroupID), nullableInt(m.Team1ID), nullableInt(m.Team2ID),
		m.Status, m.Type, nullableInt(m.Round), nullableInt(m.RoundIndex),
		m.MatchDate, m.MatchVenue,
	).Scan(&m.ID, &m.CreatedAt)
	return r.handleMatchError(err)
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	return scanMatch(r.getExecutor(exec).QueryRowContext(ctx, query, id))
}

func (r *postgresMatchRepository) GetByIDForUpdate(ctx context.Context, exec SQLExecutor, id int) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1 FOR UPDATE`
	return scanMatch(r.getExecutor(exec).QueryRowContext(ctx, query, id))
}

func (r *postgresMatchRepository) GetKnockoutSlotForUpdate(ctx context.Context, exec SQLExecutor, tournamentID, round, index int) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches
		WHERE tournament_id = $1 AND type = $2 AND round = $3 AND round_index = $4
		FOR UPDATE`
	return scanMatch(r.getExecutor(exec).QueryRowContext(ctx, query,
		tournamentID, models.MatchTypeKnockout, round, index))
}

func (r *postgresMatchRepository) Update(ctx context.Context, exec SQLExecutor, m *models.Match) error {
	query := `
		UPDATE matches SET
			team1_id = $1, team2_id = $2,
			score_team1 = $3, score_team2 = $4, penalty_team1 = $5, penalty_team2 = $6,
			yellow_cards_team1 = $7, yellow_cards_team2 = $8, red_cards_team1 = $9, red_cards_team2 = $10,
			winner_id = $11, status = $12, match_date = $13, match_venue = $14
		WHERE id = $15`

	result, err := r.getExecutor(exec).ExecContext(ctx, query,
		nullableInt(m.Team1ID), nullableInt(m.Team2ID),
		nullableInt(m.ScoreTeam1), nullableInt(m.ScoreTeam2), nullableInt(m.PenaltyTeam1), nullableInt(m.PenaltyTeam2),
		m.YellowCardsTeam1, m.YellowCardsTeam2, m.RedCardsTeam1, m.RedCardsTeam2,
		nullableInt(m.WinnerID), m.Status, m.MatchDate, m.MatchVenue,
		m.ID,
	)
	if err != nil {
		return r.handleMatchError(err)
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int, filter MatchFilter) ([]*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE tournament_id = $1`
	args := []interface{}{tournamentID}
	argID := 2

	if filter.Type != nil {
		query += fmt.Sprintf(" AND type = $%d", argID)
		args = append(args, *filter.Type)
		argID++
	}
	if filter.Round != nil {
		query += fmt.Sprintf(" AND round = $%d", argID)
		args = append(args, *filter.Round)
	}
	query += " ORDER BY id"

	return r.list(ctx, r.getExecutor(exec), query, args...)
}

func (r *postgresMatchRepository) ListByGroup(ctx context.Context, exec SQLExecutor, groupID int) ([]*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE group_id = $1 ORDER BY round, id`
	return r.list(ctx, r.getExecutor(exec), query, groupID)
}

func (r *postgresMatchRepository) list(ctx context.Context, executor SQLExecutor, query string, args ...interface{}) ([]*models.Match, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		m, scanErr := scanMatch(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		matches = append(matches, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *postgresMatchRepository) handleMatchError(err error) error {
	if err == nil {
		return nil
	}
	code, constraint, ok := pqErrorCode(err)
	if !ok {
		return err
	}
	switch code {
	case pqUniqueViolation:
		if constraint == "matches_knockout_slot_key" {
			return ErrMatchSlotConflict
		}
	case pqForeignKeyViolation, pqCheckViolation:
		return fmt.Errorf("%w: %s", ErrMatchInvalid, constraint)
	}
	return err
}
