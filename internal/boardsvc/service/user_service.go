package service

import (
	"context"

	"github.com/scorely/scoreboard-services/internal/boardsvc/apperr"
	"github.com/scorely/scoreboard-services/internal/boardsvc/models"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Get(ctx context.Context, userId int64) (*models.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userId)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}

	resp := user.Response()
	return &resp, nil
}

func (s *UserService) Update(ctx context.Context, userId int64, p UpdateUserPayload) (*models.UserResponse, error) {
	if err := p.Validate(); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	user, err := s.users.Update(ctx, userId, p.Username, p.AvatarBackground, p.AvatarEmoji)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}

	resp := user.Response()
	return &resp, nil
}

// Search finds users by username. Results never include password material.
func (s *UserService) Search(ctx context.Context, query string) ([]models.UserResponse, error) {
	if query == "" {
		return nil, apperr.Validation("query must not be empty")
	}

	users, err := s.users.Search(ctx, query)
	if err != nil {
		return nil, apperr.Database(err)
	}

	if users == nil {
		users = []models.UserResponse{}
	}

	return users, nil
}
