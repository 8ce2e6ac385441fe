package pg

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/itchan-dev/kanban/shared/domain"
	"github.com/itchan-dev/kanban/shared/errors"
	sharedpg "github.com/itchan-dev/kanban/shared/storage/pg"
)

func (s *Storage) SaveUser(ctx context.Context, user domain.User) (domain.UserId, error) {
	var id domain.UserId
	err := s.db.QueryRowContext(ctx,
		"INSERT INTO users(username, email, pass_hash) VALUES($1, $2, $3) RETURNING id",
		user.Username, user.Email, user.PassHash,
	).Scan(&id)
	if constraint, ok := sharedpg.IsUniqueViolation(err); ok {
		if constraint == "users_username_key" {
			return 0, errors.New(errors.Conflict, "Username already taken")
		}
		return 0, errors.New(errors.Conflict, "Email already registered")
	}
	if err != nil {
		return 0, errors.Storage(err, "failed to insert user")
	}
	return id, nil
}

func (s *Storage) User(ctx context.Context, id domain.UserId) (domain.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		"SELECT id, username, email, pass_hash, created_at FROM users WHERE id = $1", id))
}

func (s *Storage) UserByEmail(ctx context.Context, email domain.Email) (domain.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		"SELECT id, username, email, pass_hash, created_at FROM users WHERE email = $1", email))
}

func (s *Storage) scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.Id, &u.Username, &u.Email, &u.PassHash, &u.CreatedAt)
	if stderrors.Is(err, sql.ErrNoRows) {
		return domain.User{}, errors.New(errors.NotFound, "User not found")
	}
	if err != nil {
		return domain.User{}, errors.Storage(err, "failed to get user")
	}
	return u, nil
}
