package models

import (
	"time"
)

// User represents the users table in the database.
// Password is the bcrypt hash and must never be serialized.
type User struct {
	UserId           int64     `json:"user_id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	Password         string    `json:"-"`
	AvatarBackground string    `json:"avatar_background"`
	AvatarEmoji      string    `json:"avatar_emoji"`
	CreatedAt        time.Time `json:"created_at"`
}

// UserResponse is the public view of a user, without password material.
type UserResponse struct {
	UserId           int64     `json:"user_id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	AvatarBackground string    `json:"avatar_background"`
	AvatarEmoji      string    `json:"avatar_emoji"`
	CreatedAt        time.Time `json:"created_at"`
}

func (u *User) Response() UserResponse {
	return UserResponse{
		UserId:           u.UserId,
		Username:         u.Username,
		Email:            u.Email,
		AvatarBackground: u.AvatarBackground,
		AvatarEmoji:      u.AvatarEmoji,
		CreatedAt:        u.CreatedAt,
	}
}
