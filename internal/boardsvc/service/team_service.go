package service

import (
	"context"

	"github.com/scorely/scoreboard-services/internal/boardsvc/apperr"
	"github.com/scorely/scoreboard-services/internal/boardsvc/models"
)

type TeamService struct {
	teams       TeamStore
	scoreboards ScoreboardStore
	players     PlayerStore
	events      Events
}

func NewTeamService(teams TeamStore, scoreboards ScoreboardStore, players PlayerStore, events Events) *TeamService {
	return &TeamService{
		teams:       teams,
		scoreboards: scoreboards,
		players:     players,
		events:      events,
	}
}

func (s *TeamService) Get(ctx context.Context, teamId int64) (*models.Team, error) {
	team, err := s.teams.GetByID(ctx, teamId)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if team == nil {
		return nil, apperr.NotFound("team")
	}

	return team, nil
}

func (s *TeamService) ListByScoreboard(ctx context.Context, scoreboardId int64) ([]models.Team, error) {
	teams, err := s.teams.ListByScoreboardID(ctx, scoreboardId)
	if err != nil {
		return nil, apperr.Database(err)
	}

	if teams == nil {
		teams = []models.Team{}
	}

	return teams, nil
}

func (s *TeamService) Players(ctx context.Context, teamId int64) ([]models.PlayerRow, error) {
	team, err := s.teams.GetByID(ctx, teamId)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if team == nil {
		return nil, apperr.NotFound("team")
	}

	players, err := s.players.ListByTeamID(ctx, teamId)
	if err != nil {
		return nil, apperr.Database(err)
	}

	if players == nil {
		players = []models.PlayerRow{}
	}

	return players, nil
}

// Update changes a team's name and score. Teams carry no owner field,
// so the guard checks the parent scoreboard's creator: fetch the team,
// fetch its scoreboard, compare created_by against the actor.
func (s *TeamService) Update(ctx context.Context, actorId, teamId int64, p UpdateTeamPayload) (*models.Team, error) {
	if err := p.Validate(); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	team, err := s.teams.GetByID(ctx, teamId)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if team == nil {
		return nil, apperr.NotFound("team")
	}

	sb, err := s.scoreboards.GetByID(ctx, team.ScoreboardId)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if sb == nil {
		return nil, apperr.NotFound("scoreboard")
	}

	if !CanMutate(actorId, sb.CreatedBy) {
		return nil, apperr.ErrForbidden
	}

	updated, err := s.teams.Update(ctx, teamId, p.Name, p.Score)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if updated == nil {
		return nil, apperr.NotFound("team")
	}

	if s.events != nil {
		s.events.TeamUpdated(updated)
	}

	return updated, nil
}
