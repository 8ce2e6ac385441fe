package pg

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/itchan-dev/kanban/shared/domain"
	"github.com/itchan-dev/kanban/shared/errors"
	sharedpg "github.com/itchan-dev/kanban/shared/storage/pg"
)

const favoriteColumns = "f.id, f.user_id, f.board_id, f.created_at, b.id, b.name, b.user_id, b.created_at, b.updated_at"

// AddFavorite fails with Conflict when the pair already exists; the unique
// constraint decides, so concurrent adds leave exactly one row.
func (s *Storage) AddFavorite(ctx context.Context, userId domain.UserId, boardId domain.BoardId) (domain.Favorite, error) {
	f, err := scanFavorite(s.db.QueryRowContext(ctx, `
	WITH f AS (
		INSERT INTO favorites(user_id, board_id) VALUES($1, $2)
		RETURNING id, user_id, board_id, created_at
	)
	SELECT `+favoriteColumns+` FROM f JOIN boards b ON b.id = f.board_id`,
		userId, boardId))
	if _, ok := sharedpg.IsUniqueViolation(err); ok {
		return domain.Favorite{}, errors.New(errors.Conflict, "Board is already in favorites")
	}
	if _, ok := sharedpg.IsForeignKeyViolation(err); ok {
		return domain.Favorite{}, errors.New(errors.NotFound, "Board not found")
	}
	if err != nil {
		return domain.Favorite{}, errors.Storage(err, "failed to insert favorite")
	}
	return f, nil
}

func (s *Storage) Favorite(ctx context.Context, id domain.FavoriteId) (domain.Favorite, error) {
	f, err := scanFavorite(s.db.QueryRowContext(ctx,
		"SELECT "+favoriteColumns+" FROM favorites f JOIN boards b ON b.id = f.board_id WHERE f.id = $1", id))
	if stderrors.Is(err, sql.ErrNoRows) {
		return domain.Favorite{}, errors.New(errors.NotFound, "Favorite not found")
	}
	if err != nil {
		return domain.Favorite{}, errors.Storage(err, "failed to get favorite")
	}
	return f, nil
}

func (s *Storage) FavoritesByUser(ctx context.Context, userId domain.UserId) ([]domain.Favorite, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+favoriteColumns+" FROM favorites f JOIN boards b ON b.id = f.board_id WHERE f.user_id = $1 ORDER BY f.id",
		userId)
	if err != nil {
		return nil, errors.Storage(err, "failed to query favorites")
	}
	defer rows.Close()

	favorites := []domain.Favorite{}
	for rows.Next() {
		f, err := scanFavorite(rows)
		if err != nil {
			return nil, errors.Storage(err, "failed to scan favorite")
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Storage(err, "failed to iterate favorites")
	}
	return favorites, nil
}

func (s *Storage) DeleteFavorite(ctx context.Context, id domain.FavoriteId) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM favorites WHERE id = $1", id)
	if err != nil {
		return errors.Storage(err, "failed to delete favorite")
	}
	return requireAffected(res, "Favorite not found")
}

func scanFavorite(row scanner) (domain.Favorite, error) {
	var f domain.Favorite
	err := row.Scan(&f.Id, &f.UserId, &f.BoardId, &f.CreatedAt,
		&f.Board.Id, &f.Board.Name, &f.Board.UserId, &f.Board.CreatedAt, &f.Board.UpdatedAt)
	return f, err
}
