package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scorely/scoreboard-services/internal/boardsvc/models"
)

type UserStore struct {
	db *pgxpool.Pool
}

func NewUserStore(db *pgxpool.Pool) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) GetByID(ctx context.Context, userId int64) (*models.User, error) {
	query := `
		SELECT user_id, username, email, password, avatar_background, avatar_emoji, created_at
		FROM users
		WHERE user_id = $1
	`

	u := &models.User{}
	err := s.db.QueryRow(ctx, query, userId).Scan(
		&u.UserId,
		&u.Username,
		&u.Email,
		&u.Password,
		&u.AvatarBackground,
		&u.AvatarEmoji,
		&u.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // user not found
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return u, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT user_id, username, email, password, avatar_background, avatar_emoji, created_at
		FROM users
		WHERE email = $1
	`

	u := &models.User{}
	err := s.db.QueryRow(ctx, query, email).Scan(
		&u.UserId,
		&u.Username,
		&u.Email,
		&u.Password,
		&u.AvatarBackground,
		&u.AvatarEmoji,
		&u.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

func (s *UserStore) Create(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	query := `
		INSERT INTO users (username, email, password)
		VALUES ($1, $2, $3)
		RETURNING user_id, username, email, password, avatar_background, avatar_emoji, created_at
	`

	u := &models.User{}
	err := s.db.QueryRow(ctx, query, username, email, passwordHash).Scan(
		&u.UserId,
		&u.Username,
		&u.Email,
		&u.Password,
		&u.AvatarBackground,
		&u.AvatarEmoji,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	return u, nil
}

func (s *UserStore) Update(ctx context.Context, userId int64, username, avatarBackground, avatarEmoji string) (*models.User, error) {
	query := `
		UPDATE users
		SET username = $1, avatar_background = $2, avatar_emoji = $3
		WHERE user_id = $4
		RETURNING user_id, username, email, password, avatar_background, avatar_emoji, created_at
	`

	u := &models.User{}
	err := s.db.QueryRow(ctx, query, username, avatarBackground, avatarEmoji, userId).Scan(
		&u.UserId,
		&u.Username,
		&u.Email,
		&u.Password,
		&u.AvatarBackground,
		&u.AvatarEmoji,
		&u.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not update user: %w", err)
	}

	return u, nil
}

// Search finds users whose username matches the query.
func (s *UserStore) Search(ctx context.Context, query string) ([]models.UserResponse, error) {
	likeTerm := "%" + query + "%"

	sql := `
		SELECT user_id, username, email, avatar_background, avatar_emoji, created_at
		FROM users
		WHERE username LIKE $1
		ORDER BY username
	`

	rows, err := s.db.Query(ctx, sql, likeTerm)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}
	defer rows.Close()

	var users []models.UserResponse
	for rows.Next() {
		var u models.UserResponse
		err := rows.Scan(
			&u.UserId,
			&u.Username,
			&u.Email,
			&u.AvatarBackground,
			&u.AvatarEmoji,
			&u.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
