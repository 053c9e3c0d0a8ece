package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scorely/scoreboard-services/internal/boardsvc/models"
)

type PlayerStore struct {
	db *pgxpool.Pool
}

func NewPlayerStore(db *pgxpool.Pool) *PlayerStore {
	return &PlayerStore{db: db}
}

// CreateTx inserts a player membership inside the caller's
// transaction. A user id that references no existing user fails the
// foreign key and aborts the whole transaction.
func (s *PlayerStore) CreateTx(ctx context.Context, q Querier, teamId, userId int64) (*models.Player, error) {
	query := `
		INSERT INTO teams_players (team_id, user_id)
		VALUES ($1, $2)
		RETURNING team_player_id, team_id, user_id, created_at
	`

	p := &models.Player{}
	err := q.QueryRow(ctx, query, teamId, userId).Scan(
		&p.TeamPlayerId,
		&p.TeamId,
		&p.UserId,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("could not create player: %w", err)
	}

	return p, nil
}

// ListByTeamID returns a team's players joined with their user profile.
func (s *PlayerStore) ListByTeamID(ctx context.Context, teamId int64) ([]models.PlayerRow, error) {
	query := `
		SELECT
			p.team_player_id,
			p.team_id,
			p.created_at AS player_created_at,
			u.user_id,
			u.username,
			u.email,
			u.avatar_background,
			u.avatar_emoji,
			u.created_at AS user_created_at
		FROM teams_players p
		INNER JOIN users u ON p.user_id = u.user_id
		WHERE p.team_id = $1
	`

	rows, err := s.db.Query(ctx, query, teamId)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var players []models.PlayerRow
	for rows.Next() {
		var p models.PlayerRow
		err := rows.Scan(
			&p.TeamPlayerId,
			&p.TeamId,
			&p.PlayerCreatedAt,
			&p.UserId,
			&p.Username,
			&p.Email,
			&p.AvatarBackground,
			&p.AvatarEmoji,
			&p.UserCreatedAt,
		)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}

	return players, rows.Err()
}
