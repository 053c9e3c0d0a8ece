package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/scorely/scoreboard-services/internal/boardsvc/models"
	"github.com/scorely/scoreboard-services/internal/boardsvc/store"
)

var errNoUser = errors.New("insert or update on table \"teams_players\" violates foreign key constraint")

// fakeTx satisfies pgx.Tx through embedding; only the lifecycle
// methods are implemented, everything else panics if touched.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(ctx context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type fakeDB struct {
	beginErr error
	tx       *fakeTx
	begun    bool
}

func (db *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	if db.beginErr != nil {
		return nil, db.beginErr
	}
	db.begun = true
	if db.tx == nil {
		db.tx = &fakeTx{}
	}
	return db.tx, nil
}

type fakeScoreboardStore struct {
	nextId    int64
	byId      map[int64]*models.Scoreboard
	byCreator map[int64][]models.Scoreboard
	created   []models.Scoreboard
	deleted   []int64
	createErr error
}

func newFakeScoreboardStore() *fakeScoreboardStore {
	return &fakeScoreboardStore{
		byId:      make(map[int64]*models.Scoreboard),
		byCreator: make(map[int64][]models.Scoreboard),
	}
}

func (f *fakeScoreboardStore) GetByID(ctx context.Context, scoreboardId int64) (*models.Scoreboard, error) {
	return f.byId[scoreboardId], nil
}

func (f *fakeScoreboardStore) ListByCreator(ctx context.Context, userId int64) ([]models.Scoreboard, error) {
	return f.byCreator[userId], nil
}

func (f *fakeScoreboardStore) CreateTx(ctx context.Context, q store.Querier, name, game string, createdBy int64) (*models.Scoreboard, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextId++
	sb := models.Scoreboard{
		ScoreboardId: f.nextId,
		Name:         name,
		Game:         game,
		CreatedBy:    createdBy,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.created = append(f.created, sb)
	f.byId[sb.ScoreboardId] = &sb
	f.byCreator[createdBy] = append(f.byCreator[createdBy], sb)
	return &sb, nil
}

func (f *fakeScoreboardStore) Delete(ctx context.Context, scoreboardId int64) error {
	f.deleted = append(f.deleted, scoreboardId)
	delete(f.byId, scoreboardId)
	return nil
}

type fakeTeamStore struct {
	nextId       int64
	byId         map[int64]*models.Team
	byScoreboard map[int64][]models.Team
	byCreator    map[int64][]models.Team
	created      []models.Team
	updated      []models.Team
	createErr    error
}

func newFakeTeamStore() *fakeTeamStore {
	return &fakeTeamStore{
		byId:         make(map[int64]*models.Team),
		byScoreboard: make(map[int64][]models.Team),
		byCreator:    make(map[int64][]models.Team),
	}
}

func (f *fakeTeamStore) GetByID(ctx context.Context, teamId int64) (*models.Team, error) {
	return f.byId[teamId], nil
}

func (f *fakeTeamStore) ListByScoreboardID(ctx context.Context, scoreboardId int64) ([]models.Team, error) {
	return f.byScoreboard[scoreboardId], nil
}

func (f *fakeTeamStore) ListByCreator(ctx context.Context, userId int64) ([]models.Team, error) {
	return f.byCreator[userId], nil
}

func (f *fakeTeamStore) CreateTx(ctx context.Context, q store.Querier, scoreboardId int64, name string) (*models.Team, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextId++
	team := models.Team{
		TeamId:       f.nextId,
		ScoreboardId: scoreboardId,
		Name:         name,
		CreatedAt:    time.Now(),
	}
	f.created = append(f.created, team)
	f.byId[team.TeamId] = &team
	f.byScoreboard[scoreboardId] = append(f.byScoreboard[scoreboardId], team)
	return &team, nil
}

func (f *fakeTeamStore) Update(ctx context.Context, teamId int64, name string, score int) (*models.Team, error) {
	team, ok := f.byId[teamId]
	if !ok {
		return nil, nil
	}
	updated := *team
	updated.Name = name
	updated.Score = score
	f.byId[teamId] = &updated
	f.updated = append(f.updated, updated)
	return &updated, nil
}

type fakePlayerStore struct {
	nextId     int64
	created    []models.Player
	byTeam     map[int64][]models.PlayerRow
	knownUsers map[int64]bool
}

func newFakePlayerStore(knownUsers ...int64) *fakePlayerStore {
	known := make(map[int64]bool, len(knownUsers))
	for _, id := range knownUsers {
		known[id] = true
	}
	return &fakePlayerStore{
		byTeam:     make(map[int64][]models.PlayerRow),
		knownUsers: known,
	}
}

func (f *fakePlayerStore) CreateTx(ctx context.Context, q store.Querier, teamId, userId int64) (*models.Player, error) {
	if !f.knownUsers[userId] {
		return nil, errNoUser
	}
	f.nextId++
	player := models.Player{
		TeamPlayerId: f.nextId,
		TeamId:       teamId,
		UserId:       userId,
		CreatedAt:    time.Now(),
	}
	f.created = append(f.created, player)
	return &player, nil
}

func (f *fakePlayerStore) ListByTeamID(ctx context.Context, teamId int64) ([]models.PlayerRow, error) {
	return f.byTeam[teamId], nil
}

type fakeUserStore struct {
	byId          map[int64]*models.User
	byEmail       map[string]*models.User
	created       []models.User
	searchResults []models.UserResponse
	nextId        int64
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	f := &fakeUserStore{
		byId:    make(map[int64]*models.User),
		byEmail: make(map[string]*models.User),
	}
	for _, u := range users {
		f.byId[u.UserId] = u
		f.byEmail[u.Email] = u
		if u.UserId > f.nextId {
			f.nextId = u.UserId
		}
	}
	return f
}

func (f *fakeUserStore) GetByID(ctx context.Context, userId int64) (*models.User, error) {
	return f.byId[userId], nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserStore) Create(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	f.nextId++
	user := &models.User{
		UserId:    f.nextId,
		Username:  username,
		Email:     email,
		Password:  passwordHash,
		CreatedAt: time.Now(),
	}
	f.byId[user.UserId] = user
	f.byEmail[user.Email] = user
	f.created = append(f.created, *user)
	return user, nil
}

func (f *fakeUserStore) Update(ctx context.Context, userId int64, username, avatarBackground, avatarEmoji string) (*models.User, error) {
	user, ok := f.byId[userId]
	if !ok {
		return nil, nil
	}
	updated := *user
	updated.Username = username
	updated.AvatarBackground = avatarBackground
	updated.AvatarEmoji = avatarEmoji
	f.byId[userId] = &updated
	return &updated, nil
}

func (f *fakeUserStore) Search(ctx context.Context, query string) ([]models.UserResponse, error) {
	return f.searchResults, nil
}

type fakeEvents struct {
	createdBoards []*models.ScoreboardResponse
	deletedBoards []int64
	updatedTeams  []*models.Team
}

func (f *fakeEvents) ScoreboardCreated(sb *models.ScoreboardResponse) {
	f.createdBoards = append(f.createdBoards, sb)
}

func (f *fakeEvents) ScoreboardDeleted(scoreboardId int64) {
	f.deletedBoards = append(f.deletedBoards, scoreboardId)
}

func (f *fakeEvents) TeamUpdated(team *models.Team) {
	f.updatedTeams = append(f.updatedTeams, team)
}

type fakeIssuer struct {
	token string
	err   error
	calls []int64
}

func (f *fakeIssuer) Issue(userId int64, email string) (string, error) {
	f.calls = append(f.calls, userId)
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}
