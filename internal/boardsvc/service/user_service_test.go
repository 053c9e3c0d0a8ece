package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorely/scoreboard-services/internal/boardsvc/apperr"
	"github.com/scorely/scoreboard-services/internal/boardsvc/models"
)

func TestGetUser(t *testing.T) {
	users := newFakeUserStore(&models.User{UserId: 1, Username: "ada", Email: "ada@scorely.app", Password: "secret-hash"})
	svc := NewUserService(users)

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "ada", resp.Username)

	_, err = svc.Get(context.Background(), 2)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.From(err).Code)
}

func TestUpdateUserValidation(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	_, err := svc.Update(context.Background(), 1, UpdateUserPayload{AvatarEmoji: "🏓"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.From(err).Code)
}

func TestSearchUsers(t *testing.T) {
	users := newFakeUserStore()
	users.searchResults = []models.UserResponse{{UserId: 1, Username: "ada"}}
	svc := NewUserService(users)

	found, err := svc.Search(context.Background(), "ad")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	_, err = svc.Search(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.From(err).Code)
}
