package service

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p LoginPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, validation.Required, is.Email),
		validation.Field(&p.Password, validation.Required, validation.Length(6, 0)),
	)
}

type SignupPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p SignupPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Username, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.Email, validation.Required, is.Email),
		validation.Field(&p.Password, validation.Required, validation.Length(6, 0)),
	)
}

type UpdateUserPayload struct {
	Username         string `json:"username"`
	AvatarBackground string `json:"avatar_background"`
	AvatarEmoji      string `json:"avatar_emoji"`
}

func (p UpdateUserPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Username, validation.Required, validation.Length(1, 100)),
	)
}

type CreateTeamPayload struct {
	Name    string  `json:"name"`
	Players []int64 `json:"players"`
}

func (p CreateTeamPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 100)),
	)
}

type CreateScoreboardPayload struct {
	Name  string              `json:"name"`
	Game  string              `json:"game"`
	Teams []CreateTeamPayload `json:"teams"`
}

func (p CreateScoreboardPayload) Validate() error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&p.Game, validation.Required, validation.Length(1, 100)),
	)
	if err != nil {
		return err
	}

	for _, team := range p.Teams {
		if err := team.Validate(); err != nil {
			return err
		}
	}

	return nil
}

type UpdateTeamPayload struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func (p UpdateTeamPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 100)),
	)
}

type CreateGamePayload struct {
	Name string `json:"name"`
}

func (p CreateGamePayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 100)),
	)
}
