package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/scorely/scoreboard-services/internal/boardsvc/apperr"
	"github.com/scorely/scoreboard-services/internal/boardsvc/models"
)

type ScoreboardService struct {
	db          TxBeginner
	scoreboards ScoreboardStore
	teams       TeamStore
	players     PlayerStore
	users       UserStore
	events      Events
}

func NewScoreboardService(db TxBeginner, scoreboards ScoreboardStore, teams TeamStore,
	players PlayerStore, users UserStore, events Events) *ScoreboardService {
	return &ScoreboardService{
		db:          db,
		scoreboards: scoreboards,
		teams:       teams,
		players:     players,
		users:       users,
		events:      events,
	}
}

// Create inserts a scoreboard together with its full roster of teams
// and players as one transaction. The inserts run sequentially because
// each depends on an id generated by an earlier one. On any failure
// the transaction rolls back in full and no row remains visible.
func (s *ScoreboardService) Create(ctx context.Context, creatorId int64, p CreateScoreboardPayload) (*models.ScoreboardResponse, error) {
	if err := p.Validate(); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, apperr.Database(err)
	}
	// no-op after a successful commit, releases the connection otherwise
	defer tx.Rollback(ctx)

	sb, err := s.scoreboards.CreateTx(ctx, tx, p.Name, p.Game, creatorId)
	if err != nil {
		return nil, apperr.Database(err)
	}

	for _, teamPayload := range p.Teams {
		team, err := s.teams.CreateTx(ctx, tx, sb.ScoreboardId, teamPayload.Name)
		if err != nil {
			return nil, apperr.Database(err)
		}

		for _, userId := range teamPayload.Players {
			if _, err := s.players.CreateTx(ctx, tx, team.TeamId, userId); err != nil {
				return nil, apperr.Database(err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperr.Database(err)
	}

	// read-after-write: the commit above has completed, so this read
	// observes the full roster
	resp, err := s.Get(ctx, sb.ScoreboardId)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.ScoreboardCreated(resp)
	}

	return resp, nil
}

// Get assembles the denormalized view of one scoreboard. The
// scoreboard row and its teams are independent reads and are fetched
// concurrently; the creator lookup depends on the scoreboard row.
func (s *ScoreboardService) Get(ctx context.Context, scoreboardId int64) (*models.ScoreboardResponse, error) {
	var (
		sb    *models.Scoreboard
		teams []models.Team
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sb, err = s.scoreboards.GetByID(gctx, scoreboardId)
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = s.teams.ListByScoreboardID(gctx, scoreboardId)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperr.Database(err)
	}

	if sb == nil {
		return nil, apperr.NotFound("scoreboard")
	}

	user, err := s.users.GetByID(ctx, sb.CreatedBy)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if user == nil {
		return nil, apperr.Database(fmt.Errorf("scoreboard %d references missing creator %d", sb.ScoreboardId, sb.CreatedBy))
	}

	if teams == nil {
		teams = []models.Team{}
	}

	return &models.ScoreboardResponse{
		ScoreboardId: sb.ScoreboardId,
		Name:         sb.Name,
		Game:         sb.Game,
		CreatedBy:    user.Response(),
		CreatedAt:    sb.CreatedAt,
		UpdatedAt:    sb.UpdatedAt,
		Teams:        teams,
	}, nil
}

// ListByUser assembles every scoreboard created by the user. The three
// fetches are independent and run concurrently. Teams are grouped by
// scoreboard id afterwards; a scoreboard with no teams still appears,
// with a null team list.
func (s *ScoreboardService) ListByUser(ctx context.Context, userId int64) ([]models.ScoreboardResponse, error) {
	var (
		scoreboards []models.Scoreboard
		teams       []models.Team
		user        *models.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		scoreboards, err = s.scoreboards.ListByCreator(gctx, userId)
		return err
	})
	g.Go(func() error {
		var err error
		teams, err = s.teams.ListByCreator(gctx, userId)
		return err
	})
	g.Go(func() error {
		var err error
		user, err = s.users.GetByID(gctx, userId)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apperr.Database(err)
	}

	// the subject user must exist, an empty list is not an answer here
	if user == nil {
		return nil, apperr.NotFound("user")
	}

	grouped := make(map[int64][]models.Team)
	for _, team := range teams {
		grouped[team.ScoreboardId] = append(grouped[team.ScoreboardId], team)
	}

	response := make([]models.ScoreboardResponse, 0, len(scoreboards))
	for _, sb := range scoreboards {
		response = append(response, models.ScoreboardResponse{
			ScoreboardId: sb.ScoreboardId,
			Name:         sb.Name,
			Game:         sb.Game,
			CreatedBy:    user.Response(),
			CreatedAt:    sb.CreatedAt,
			UpdatedAt:    sb.UpdatedAt,
			Teams:        grouped[sb.ScoreboardId],
		})
	}

	return response, nil
}

// Delete removes a scoreboard after the ownership check. Teams and
// players cascade at the storage layer.
func (s *ScoreboardService) Delete(ctx context.Context, actorId, scoreboardId int64) error {
	sb, err := s.scoreboards.GetByID(ctx, scoreboardId)
	if err != nil {
		return apperr.Database(err)
	}
	if sb == nil {
		return apperr.NotFound("scoreboard")
	}

	if !CanMutate(actorId, sb.CreatedBy) {
		return apperr.ErrForbidden
	}

	if err := s.scoreboards.Delete(ctx, scoreboardId); err != nil {
		return apperr.Database(err)
	}

	if s.events != nil {
		s.events.ScoreboardDeleted(scoreboardId)
	}

	return nil
}
