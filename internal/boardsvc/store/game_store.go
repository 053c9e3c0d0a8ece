package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scorely/scoreboard-services/internal/boardsvc/models"
)

type GameStore struct {
	db *pgxpool.Pool
}

func NewGameStore(db *pgxpool.Pool) *GameStore {
	return &GameStore{db: db}
}

func (s *GameStore) List(ctx context.Context) ([]models.Game, error) {
	query := `
		SELECT game_id, name, created_at
		FROM games
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	var games []models.Game
	for rows.Next() {
		var g models.Game
		if err := rows.Scan(&g.GameId, &g.Name, &g.CreatedAt); err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	return games, rows.Err()
}

func (s *GameStore) GetByID(ctx context.Context, gameId int64) (*models.Game, error) {
	query := `
		SELECT game_id, name, created_at
		FROM games
		WHERE game_id = $1
	`

	g := &models.Game{}
	err := s.db.QueryRow(ctx, query, gameId).Scan(&g.GameId, &g.Name, &g.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // game not found
		}
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return g, nil
}

func (s *GameStore) Create(ctx context.Context, name string) (*models.Game, error) {
	query := `
		INSERT INTO games (name)
		VALUES ($1)
		RETURNING game_id, name, created_at
	`

	g := &models.Game{}
	err := s.db.QueryRow(ctx, query, name).Scan(&g.GameId, &g.Name, &g.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("could not create game: %w", err)
	}

	return g, nil
}
