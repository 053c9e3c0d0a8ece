package service

import (
	"context"

	"github.com/scorely/scoreboard-services/internal/boardsvc/apperr"
	"github.com/scorely/scoreboard-services/internal/boardsvc/models"
)

type GameService struct {
	games GameStore
}

func NewGameService(games GameStore) *GameService {
	return &GameService{games: games}
}

func (s *GameService) List(ctx context.Context) ([]models.Game, error) {
	games, err := s.games.List(ctx)
	if err != nil {
		return nil, apperr.Database(err)
	}

	if games == nil {
		games = []models.Game{}
	}

	return games, nil
}

func (s *GameService) Get(ctx context.Context, gameId int64) (*models.Game, error) {
	game, err := s.games.GetByID(ctx, gameId)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if game == nil {
		return nil, apperr.NotFound("game")
	}

	return game, nil
}

func (s *GameService) Create(ctx context.Context, p CreateGamePayload) (*models.Game, error) {
	if err := p.Validate(); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	game, err := s.games.Create(ctx, p.Name)
	if err != nil {
		return nil, apperr.Database(err)
	}

	return game, nil
}
