package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/scorely/scoreboard-services/internal/boardsvc/apperr"
	"github.com/scorely/scoreboard-services/internal/boardsvc/models"
)

// TokenIssuer mints a signed session token for a user.
type TokenIssuer interface {
	Issue(userId int64, email string) (string, error)
}

type AuthService struct {
	users UserStore
	codec TokenIssuer
}

func NewAuthService(users UserStore, codec TokenIssuer) *AuthService {
	return &AuthService{users: users, codec: codec}
}

type LoginResponse struct {
	AccessToken string              `json:"access_token"`
	User        models.UserResponse `json:"user"`
}

// Login checks the credentials and responds with an access token.
func (s *AuthService) Login(ctx context.Context, p LoginPayload) (*LoginResponse, error) {
	if err := p.Validate(); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	user, err := s.users.GetByEmail(ctx, p.Email)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if user == nil {
		return nil, apperr.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(p.Password)); err != nil {
		return nil, apperr.ErrUnauthorized
	}

	accessToken, err := s.codec.Issue(user.UserId, user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: accessToken,
		User:        user.Response(),
	}, nil
}

// Signup registers a user and logs them in.
func (s *AuthService) Signup(ctx context.Context, p SignupPayload) (*LoginResponse, error) {
	if err := p.Validate(); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	existing, err := s.users.GetByEmail(ctx, p.Email)
	if err != nil {
		return nil, apperr.Database(err)
	}
	if existing != nil {
		return nil, apperr.Validation("email is already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user, err := s.users.Create(ctx, p.Username, p.Email, string(hash))
	if err != nil {
		return nil, apperr.Database(err)
	}

	accessToken, err := s.codec.Issue(user.UserId, user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: accessToken,
		User:        user.Response(),
	}, nil
}
