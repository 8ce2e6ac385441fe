package service

import (
	"context"
	"strings"

	"github.com/itchan-dev/kanban/shared/domain"
	"github.com/itchan-dev/kanban/shared/errors"
	"github.com/itchan-dev/kanban/shared/logger"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Signup(ctx context.Context, data domain.SignupData) (domain.User, error)
	Login(ctx context.Context, creds domain.Credentials) (domain.User, string, error)
	Me(ctx context.Context, userId domain.UserId) (domain.User, error)
}

type AuthStorage interface {
	SaveUser(ctx context.Context, user domain.User) (domain.UserId, error)
	User(ctx context.Context, id domain.UserId) (domain.User, error)
	UserByEmail(ctx context.Context, email domain.Email) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

type Auth struct {
	storage AuthStorage
	jwt     Jwt
}

func NewAuth(storage AuthStorage, jwt Jwt) *Auth {
	return &Auth{storage: storage, jwt: jwt}
}

// Signup stores a new user with a bcrypt hash of the password.
// Username and email clashes come back from storage as Conflict.
func (a *Auth) Signup(ctx context.Context, data domain.SignupData) (domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(data.Email))

	passHash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, errors.Validation("Invalid input", map[string]string{"password": "cannot be used"})
	}

	user := domain.User{Username: strings.TrimSpace(data.Username), Email: email, PassHash: string(passHash)}
	id, err := a.storage.SaveUser(ctx, user)
	if err != nil {
		return domain.User{}, err
	}
	user.Id = id
	logger.FromContext(ctx).Info("user signed up", "user_id", id)
	return user, nil
}

// Login returns the user and a fresh access token.
// Unknown email and wrong password look the same to the caller.
func (a *Auth) Login(ctx context.Context, creds domain.Credentials) (domain.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))

	user, err := a.storage.UserByEmail(ctx, email)
	if err != nil {
		// to not leak existing users
		if errors.IsNotFound(err) {
			return domain.User{}, "", errors.New(errors.Unauthenticated, "Invalid credentials")
		}
		return domain.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		return domain.User{}, "", errors.New(errors.Unauthenticated, "Invalid credentials")
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		return domain.User{}, "", err
	}
	logger.FromContext(ctx).Info("user logged in", "user_id", user.Id)
	return user, token, nil
}

func (a *Auth) Me(ctx context.Context, userId domain.UserId) (domain.User, error) {
	return a.storage.User(ctx, userId)
}
