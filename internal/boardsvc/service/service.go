package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/scorely/scoreboard-services/internal/boardsvc/models"
	"github.com/scorely/scoreboard-services/internal/boardsvc/store"
)

// TxBeginner checks out a single connection for a transaction.
// *pgxpool.Pool satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// UserStore is the user table contract the services consume.
type UserStore interface {
	GetByID(ctx context.Context, userId int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, username, email, passwordHash string) (*models.User, error)
	Update(ctx context.Context, userId int64, username, avatarBackground, avatarEmoji string) (*models.User, error)
	Search(ctx context.Context, query string) ([]models.UserResponse, error)
}

type ScoreboardStore interface {
	GetByID(ctx context.Context, scoreboardId int64) (*models.Scoreboard, error)
	ListByCreator(ctx context.Context, userId int64) ([]models.Scoreboard, error)
	CreateTx(ctx context.Context, q store.Querier, name, game string, createdBy int64) (*models.Scoreboard, error)
	Delete(ctx context.Context, scoreboardId int64) error
}

type TeamStore interface {
	GetByID(ctx context.Context, teamId int64) (*models.Team, error)
	ListByScoreboardID(ctx context.Context, scoreboardId int64) ([]models.Team, error)
	ListByCreator(ctx context.Context, userId int64) ([]models.Team, error)
	CreateTx(ctx context.Context, q store.Querier, scoreboardId int64, name string) (*models.Team, error)
	Update(ctx context.Context, teamId int64, name string, score int) (*models.Team, error)
}

type PlayerStore interface {
	CreateTx(ctx context.Context, q store.Querier, teamId, userId int64) (*models.Player, error)
	ListByTeamID(ctx context.Context, teamId int64) ([]models.PlayerRow, error)
}

type GameStore interface {
	List(ctx context.Context) ([]models.Game, error)
	GetByID(ctx context.Context, gameId int64) (*models.Game, error)
	Create(ctx context.Context, name string) (*models.Game, error)
}

// Events receives domain events after the corresponding write has
// committed. Implementations must not block the request.
type Events interface {
	ScoreboardCreated(sb *models.ScoreboardResponse)
	ScoreboardDeleted(scoreboardId int64)
	TeamUpdated(team *models.Team)
}

// CanMutate is the ownership guard: the acting identity must equal the
// resource's recorded creator.
func CanMutate(actorId, ownerId int64) bool {
	return actorId == ownerId
}
