package service

import (
	"context"

	"github.com/itchan-dev/kanban/shared/domain"
	"github.com/itchan-dev/kanban/shared/errors"
	"github.com/itchan-dev/kanban/shared/logger"
)

type FavoriteService interface {
	Add(ctx context.Context, principal domain.UserId, boardId domain.BoardId) (domain.Favorite, error)
	ListMine(ctx context.Context, principal domain.UserId) ([]domain.Favorite, error)
	Remove(ctx context.Context, principal domain.UserId, favoriteId domain.FavoriteId) error
}

type FavoriteStorage interface {
	AddFavorite(ctx context.Context, userId domain.UserId, boardId domain.BoardId) (domain.Favorite, error)
	Favorite(ctx context.Context, id domain.FavoriteId) (domain.Favorite, error)
	FavoritesByUser(ctx context.Context, userId domain.UserId) ([]domain.Favorite, error)
	DeleteFavorite(ctx context.Context, id domain.FavoriteId) error
}

type Favorite struct {
	storage FavoriteStorage
	guard   *Guard
}

func NewFavorite(storage FavoriteStorage, guard *Guard) FavoriteService {
	return &Favorite{storage: storage, guard: guard}
}

// Add favorites one of the principal's boards. A repeated add is a Conflict.
func (f *Favorite) Add(ctx context.Context, principal domain.UserId, boardId domain.BoardId) (domain.Favorite, error) {
	if _, err := f.guard.AuthorizeBoard(ctx, principal, boardId); err != nil {
		return domain.Favorite{}, err
	}
	fav, err := f.storage.AddFavorite(ctx, principal, boardId)
	if err != nil {
		return domain.Favorite{}, err
	}
	logger.FromContext(ctx).Info("board favorited", "favorite_id", fav.Id, "board_id", boardId, "user_id", principal)
	return fav, nil
}

func (f *Favorite) ListMine(ctx context.Context, principal domain.UserId) ([]domain.Favorite, error) {
	return f.storage.FavoritesByUser(ctx, principal)
}

// Remove checks the favorite's own owner, not the board's.
func (f *Favorite) Remove(ctx context.Context, principal domain.UserId, favoriteId domain.FavoriteId) error {
	fav, err := f.storage.Favorite(ctx, favoriteId)
	if err != nil {
		return err
	}
	if fav.UserId != principal {
		return errors.New(errors.Forbidden, "You do not have access to this favorite")
	}
	return f.storage.DeleteFavorite(ctx, favoriteId)
}
