package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scorely/scoreboard-services/internal/boardsvc/models"
)

type TeamStore struct {
	db *pgxpool.Pool
}

func NewTeamStore(db *pgxpool.Pool) *TeamStore {
	return &TeamStore{db: db}
}

func (s *TeamStore) GetByID(ctx context.Context, teamId int64) (*models.Team, error) {
	query := `
		SELECT team_id, scoreboard_id, name, score, created_at
		FROM teams
		WHERE team_id = $1
	`

	t := &models.Team{}
	err := s.db.QueryRow(ctx, query, teamId).Scan(
		&t.TeamId,
		&t.ScoreboardId,
		&t.Name,
		&t.Score,
		&t.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // team not found
		}
		return nil, fmt.Errorf("failed to get team by id: %w", err)
	}

	return t, nil
}

func (s *TeamStore) ListByScoreboardID(ctx context.Context, scoreboardId int64) ([]models.Team, error) {
	query := `
		SELECT team_id, scoreboard_id, name, score, created_at
		FROM teams
		WHERE scoreboard_id = $1
	`

	rows, err := s.db.Query(ctx, query, scoreboardId)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	return scanTeams(rows)
}

// ListByCreator returns every team whose parent scoreboard was created
// by the given user.
func (s *TeamStore) ListByCreator(ctx context.Context, userId int64) ([]models.Team, error) {
	query := `
		SELECT t.team_id, t.scoreboard_id, t.name, t.score, t.created_at
		FROM teams t
		INNER JOIN scoreboards s ON t.scoreboard_id = s.scoreboard_id
		WHERE s.created_by = $1
	`

	rows, err := s.db.Query(ctx, query, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams by creator: %w", err)
	}
	defer rows.Close()

	return scanTeams(rows)
}

// CreateTx inserts a team inside the caller's transaction.
func (s *TeamStore) CreateTx(ctx context.Context, q Querier, scoreboardId int64, name string) (*models.Team, error) {
	query := `
		INSERT INTO teams (scoreboard_id, name)
		VALUES ($1, $2)
		RETURNING team_id, scoreboard_id, name, score, created_at
	`

	t := &models.Team{}
	err := q.QueryRow(ctx, query, scoreboardId, name).Scan(
		&t.TeamId,
		&t.ScoreboardId,
		&t.Name,
		&t.Score,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("could not create team: %w", err)
	}

	return t, nil
}

func (s *TeamStore) Update(ctx context.Context, teamId int64, name string, score int) (*models.Team, error) {
	query := `
		UPDATE teams
		SET name = $1, score = $2
		WHERE team_id = $3
		RETURNING team_id, scoreboard_id, name, score, created_at
	`

	t := &models.Team{}
	err := s.db.QueryRow(ctx, query, name, score, teamId).Scan(
		&t.TeamId,
		&t.ScoreboardId,
		&t.Name,
		&t.Score,
		&t.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not update team: %w", err)
	}

	return t, nil
}

func scanTeams(rows pgx.Rows) ([]models.Team, error) {
	var teams []models.Team
	for rows.Next() {
		var t models.Team
		err := rows.Scan(
			&t.TeamId,
			&t.ScoreboardId,
			&t.Name,
			&t.Score,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}

	return teams, rows.Err()
}
