package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/tournament-progression/models"
	"github.com/lib/pq"
)

var (
	ErrGroupNotFound      = errors.New("group not found")
	ErrGroupNameConflict  = errors.New("group name already used in this tournament")
	ErrMembershipConflict = errors.New("team is already a member of this group")
)

type GroupRepository interface {
	// Create inserts the group together with its memberships.
	Create(ctx context.Context, exec SQLExecutor, group *models.Group) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Group, error)
	// GetByIDForUpdate locks the group and its membership rows.
	GetByIDForUpdate(ctx context.Context, exec SQLExecutor, id int) (*models.Group, error)
	ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]*models.Group, error)
	// GetVersion returns updated_at of the group. Every membership write moves it forward.
	GetVersion(ctx context.Context, exec SQLExecutor, id int) (time.Time, error)
	UpdateMemberships(ctx context.Context, exec SQLExecutor, groupID int, memberships []models.GroupMembership) error
}

type postgresGroupRepository struct {
	db *sql.DB
}

func NewPostgresGroupRepository(db *sql.DB) GroupRepository {
	return &postgresGroupRepository{db: db}
}

func (r *postgresGroupRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const membershipColumns = `
	id, group_id, team_id, position, matches_played, wins, draws, losses,
	goals_for, goals_against, yellow_cards, red_cards, points`

func scanMembership(row rowScanner) (models.GroupMembership, error) {
	var m models.GroupMembership
	err := row.Scan(
		&m.ID, &m.GroupID, &m.TeamID, &m.Position, &m.MatchesPlayed, &m.Wins, &m.Draws, &m.Losses,
		&m.GoalsFor, &m.GoalsAgainst, &m.YellowCards, &m.RedCards, &m.Points,
	)
	return m, err
}

func (r *postgresGroupRepository) Create(ctx context.Context, exec SQLExecutor, g *models.Group) error {
	executor := r.getExecutor(exec)
	err := executor.QueryRowContext(ctx,
		`INSERT INTO groups (tournament_id, name) VALUES ($1, $2) RETURNING id, created_at, updated_at`,
		g.TournamentID, g.Name,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return r.handleGroupError(err)
	}

	query := `
		INSERT INTO group_memberships (group_id, team_id, position)
		VALUES ($1, $2, $3)
		RETURNING id`
	for i := range g.Teams {
		m := &g.Teams[i]
		m.GroupID = g.ID
		if err := executor.QueryRowContext(ctx, query, g.ID, m.TeamID, m.Position).Scan(&m.ID); err != nil {
			return fmt.Errorf("failed to add team %d to group %s: %w", m.TeamID, g.Name, r.handleGroupError(err))
		}
	}
	return nil
}

func (r *postgresGroupRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Group, error) {
	return r.get(ctx, r.getExecutor(exec), id, "")
}

func (r *postgresGroupRepository) GetByIDForUpdate(ctx context.Context, exec SQLExecutor, id int) (*models.Group, error) {
	return r.get(ctx, r.getExecutor(exec), id, " FOR UPDATE")
}

func (r *postgresGroupRepository) get(ctx context.Context, executor SQLExecutor, id int, lock string) (*models.Group, error) {
	g := &models.Group{}
	err := executor.QueryRowContext(ctx,
		`SELECT id, tournament_id, name, created_at, updated_at FROM groups WHERE id = $1`+lock, id,
	).Scan(&g.ID, &g.TournamentID, &g.Name, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	members, err := r.listMemberships(ctx, executor,
		`SELECT `+membershipColumns+` FROM group_memberships WHERE group_id = $1 ORDER BY position, id`+lock, id)
	if err != nil {
		return nil, err
	}
	g.Teams = members
	return g, nil
}

func (r *postgresGroupRepository) GetVersion(ctx context.Context, exec SQLExecutor, id int) (time.Time, error) {
	var updatedAt time.Time
	err := r.getExecutor(exec).QueryRowContext(ctx,
		`SELECT updated_at FROM groups WHERE id = $1`, id,
	).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, ErrGroupNotFound
		}
		return time.Time{}, err
	}
	return updatedAt, nil
}

func (r *postgresGroupRepository) ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]*models.Group, error) {
	executor := r.getExecutor(exec)
	rows, err := executor.QueryContext(ctx,
		`SELECT id, tournament_id, name, created_at, updated_at FROM groups WHERE tournament_id = $1 ORDER BY id`,
		tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := make([]*models.Group, 0)
	byID := make(map[int]*models.Group)
	ids := make([]int, 0)
	for rows.Next() {
		g := &models.Group{Teams: []models.GroupMembership{}}
		if err := rows.Scan(&g.ID, &g.TournamentID, &g.Name, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, g)
		byID[g.ID] = g
		ids = append(ids, g.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return groups, nil
	}

	members, err := r.listMemberships(ctx, executor,
		`SELECT `+membershipColumns+` FROM group_memberships WHERE group_id = ANY($1) ORDER BY group_id, position, id`,
		pq.Array(ids))
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if g, ok := byID[m.GroupID]; ok {
			g.Teams = append(g.Teams, m)
		}
	}
	return groups, nil
}

func (r *postgresGroupRepository) listMemberships(ctx context.Context, executor SQLExecutor, query string, args ...interface{}) ([]models.GroupMembership, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]models.GroupMembership, 0)
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *postgresGroupRepository) UpdateMemberships(ctx context.Context, exec SQLExecutor, groupID int, memberships []models.GroupMembership) error {
	executor := r.getExecutor(exec)
	query := `
		UPDATE group_memberships SET
			matches_played = $1, wins = $2, draws = $3, losses = $4,
			goals_for = $5, goals_against = $6, yellow_cards = $7, red_cards = $8, points = $9
		WHERE group_id = $10 AND team_id = $11`

	for _, m := range memberships {
		result, err := executor.ExecContext(ctx, query,
			m.MatchesPlayed, m.Wins, m.Draws, m.Losses,
			m.GoalsFor, m.GoalsAgainst, m.YellowCards, m.RedCards, m.Points,
			groupID, m.TeamID,
		)
		if err != nil {
			return fmt.Errorf("failed to update standings of team %d in group %d: %w", m.TeamID, groupID, err)
		}
		if err := checkAffectedRows(result, ErrGroupNotFound); err != nil {
			return err
		}
	}

	// updated_at служит версией кэша таблицы и должен строго расти
	_, err := executor.ExecContext(ctx,
		`UPDATE groups SET updated_at = GREATEST(clock_timestamp(), updated_at + INTERVAL '1 microsecond') WHERE id = $1`,
		groupID)
	return err
}

func (r *postgresGroupRepository) handleGroupError(err error) error {
	code, constraint, ok := pqErrorCode(err)
	if !ok {
		return err
	}
	switch {
	case code == pqUniqueViolation && constraint == "groups_tournament_id_name_key":
		return ErrGroupNameConflict
	case code == pqUniqueViolation && constraint == "group_memberships_group_id_team_id_key":
		return ErrMembershipConflict
	case code == pqForeignKeyViolation:
		return ErrRegistrationInvalid
	}
	return err
}
