package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scorely/scoreboard-services/internal/boardsvc/models"
)

type ScoreboardStore struct {
	db *pgxpool.Pool
}

func NewScoreboardStore(db *pgxpool.Pool) *ScoreboardStore {
	return &ScoreboardStore{db: db}
}

func (s *ScoreboardStore) GetByID(ctx context.Context, scoreboardId int64) (*models.Scoreboard, error) {
	query := `
		SELECT scoreboard_id, name, game, created_by, created_at, updated_at
		FROM scoreboards
		WHERE scoreboard_id = $1
	`

	sb := &models.Scoreboard{}
	err := s.db.QueryRow(ctx, query, scoreboardId).Scan(
		&sb.ScoreboardId,
		&sb.Name,
		&sb.Game,
		&sb.CreatedBy,
		&sb.CreatedAt,
		&sb.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // scoreboard not found
		}
		return nil, fmt.Errorf("failed to get scoreboard by id: %w", err)
	}

	return sb, nil
}

func (s *ScoreboardStore) ListByCreator(ctx context.Context, userId int64) ([]models.Scoreboard, error) {
	query := `
		SELECT scoreboard_id, name, game, created_by, created_at, updated_at
		FROM scoreboards
		WHERE created_by = $1
	`

	rows, err := s.db.Query(ctx, query, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to list scoreboards: %w", err)
	}
	defer rows.Close()

	var scoreboards []models.Scoreboard
	for rows.Next() {
		var sb models.Scoreboard
		err := rows.Scan(
			&sb.ScoreboardId,
			&sb.Name,
			&sb.Game,
			&sb.CreatedBy,
			&sb.CreatedAt,
			&sb.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		scoreboards = append(scoreboards, sb)
	}

	return scoreboards, rows.Err()
}

// CreateTx inserts a scoreboard inside the caller's transaction.
func (s *ScoreboardStore) CreateTx(ctx context.Context, q Querier, name, game string, createdBy int64) (*models.Scoreboard, error) {
	query := `
		INSERT INTO scoreboards (name, game, created_by)
		VALUES ($1, $2, $3)
		RETURNING scoreboard_id, name, game, created_by, created_at, updated_at
	`

	sb := &models.Scoreboard{}
	err := q.QueryRow(ctx, query, name, game, createdBy).Scan(
		&sb.ScoreboardId,
		&sb.Name,
		&sb.Game,
		&sb.CreatedBy,
		&sb.CreatedAt,
		&sb.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("could not create scoreboard: %w", err)
	}

	return sb, nil
}

// Delete removes a scoreboard; teams and players cascade at the
// storage layer.
func (s *ScoreboardStore) Delete(ctx context.Context, scoreboardId int64) error {
	query := `
		DELETE FROM scoreboards
		WHERE scoreboard_id = $1
	`

	if _, err := s.db.Exec(ctx, query, scoreboardId); err != nil {
		return fmt.Errorf("could not delete scoreboard: %w", err)
	}

	return nil
}
