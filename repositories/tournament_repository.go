package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/tournament-progression/models"
)

var (
	ErrTournamentNotFound    = errors.New("tournament not found")
	ErrTeamAlreadyRegistered = errors.New("team is already registered for this tournament")
	ErrRegistrationInvalid   = errors.New("invalid tournament or team reference")
	ErrTournamentInvalid     = errors.New("tournament violates a constraint")
)

type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Tournament, error)
	// GetByIDForUpdate locks the tournament row until the transaction ends.
	GetByIDForUpdate(ctx context.Context, exec SQLExecutor, id int) (*models.Tournament, error)
	List(ctx context.Context, limit, offset int) ([]*models.Tournament, error)
	UpdateStage(ctx context.Context, exec SQLExecutor, id int, stage models.TournamentStage) error
	SetTeamAdvances(ctx context.Context, exec SQLExecutor, id int, teamCount int) error

	AddTeam(ctx context.Context, exec SQLExecutor, tournamentID, teamID int) error
	// ListTeamIDs returns the roster in registration order.
	ListTeamIDs(ctx context.Context, exec SQLExecutor, tournamentID int) ([]int, error)
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

func (r *postgresTournamentRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const tournamentColumns = `
	id, name, format, number_of_teams, number_of_group, number_of_team_advances,
	stage, created_by, created_at`

func scanTournament(row rowScanner) (*models.Tournament, error) {
	var (
		t         models.Tournament
		advances  sql.NullInt64
		createdBy sql.NullInt64
	)
	err := row.Scan(
		&t.ID, &t.Name, &t.Format, &t.NumberOfTeams, &t.NumberOfGroup, &advances,
		&t.Stage, &createdBy, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	t.NumberOfTeamAdvances = intFromNull(advances)
	t.CreatedBy = intFromNull(createdBy)
	return &t, nil
}

func (r *postgresTournamentRepository) Create(ctx context.Context, t *models.Tournament) error {
	executor := r.getExecutor(nil)
	if t.Stage == "" {
		t.Stage = models.StageUngrouped
	}
	query := `
		INSERT INTO tournaments (name, format, number_of_teams, number_of_group, stage, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	err := executor.QueryRowContext(ctx, query,
		t.Name, t.Format, t.NumberOfTeams, t.NumberOfGroup, t.Stage, nullableInt(t.CreatedBy),
	).Scan(&t.ID, &t.CreatedAt)

	return r.handleTournamentError(err)
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1`
	return scanTournament(r.getExecutor(exec).QueryRowContext(ctx, query, id))
}

func (r *postgresTournamentRepository) GetByIDForUpdate(ctx context.Context, exec SQLExecutor, id int) (*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1 FOR UPDATE`
	return scanTournament(r.getExecutor(exec).QueryRowContext(ctx, query, id))
}

func (r *postgresTournamentRepository) List(ctx context.Context, limit, offset int) ([]*models.Tournament, error) {
	executor := r.getExecutor(nil)
	query := `SELECT ` + tournamentColumns + ` FROM tournaments ORDER BY created_at DESC, id DESC`

	args := []interface{}{}
	argID := 1
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argID)
		args = append(args, limit)
		argID++
	}
	if offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argID)
		args = append(args, offset)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tournaments := make([]*models.Tournament, 0)
	for rows.Next() {
		t, scanErr := scanTournament(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		tournaments = append(tournaments, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *postgresTournamentRepository) UpdateStage(ctx context.Context, exec SQLExecutor, id int, stage models.TournamentStage) error {
	result, err := r.getExecutor(exec).ExecContext(ctx,
		`UPDATE tournaments SET stage = $1 WHERE id = $2`, stage, id)
	if err != nil {
		return r.handleTournamentError(err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) SetTeamAdvances(ctx context.Context, exec SQLExecutor, id int, teamCount int) error {
	result, err := r.getExecutor(exec).ExecContext(ctx,
		`UPDATE tournaments SET number_of_team_advances = $1 WHERE id = $2`, teamCount, id)
	if err != nil {
		return r.handleTournamentError(err)
	}
	return checkAffectedRows(result, ErrTournamentNotFound)
}

func (r *postgresTournamentRepository) AddTeam(ctx context.Context, exec SQLExecutor, tournamentID, teamID int) error {
	_, err := r.getExecutor(exec).ExecContext(ctx,
		`INSERT INTO tournament_teams (tournament_id, team_id) VALUES ($1, $2)`, tournamentID, teamID)
	return r.handleTournamentError(err)
}

func (r *postgresTournamentRepository) ListTeamIDs(ctx context.Context, exec SQLExecutor, tournamentID int) ([]int, error) {
	rows, err := r.getExecutor(exec).QueryContext(ctx,
		`SELECT team_id FROM tournament_teams WHERE tournament_id = $1 ORDER BY registered_at, id`, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *postgresTournamentRepository) handleTournamentError(err error) error {
	if err == nil {
		return nil
	}
	code, constraint, ok := pqErrorCode(err)
	if !ok {
		return err
	}
	switch code {
	case pqUniqueViolation:
		if constraint == "tournament_teams_tournament_id_team_id_key" {
			return ErrTeamAlreadyRegistered
		}
	case pqForeignKeyViolation:
		return ErrRegistrationInvalid
	case pqCheckViolation:
		return fmt.Errorf("%w: %s", ErrTournamentInvalid, constraint)
	}
	return err
}
