package api

import (
	"time"

	"github.com/itchan-dev/kanban/shared/domain"
)

type SignupRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=40"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	Id        domain.UserId `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email,omitempty"`
	CreatedAt time.Time     `json:"createdAt,omitzero"`
}

type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func NewUserResponse(u domain.User) UserResponse {
	return UserResponse{Id: u.Id, Username: u.Username, Email: u.Email, CreatedAt: u.CreatedAt}
}
