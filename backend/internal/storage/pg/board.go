package pg

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/itchan-dev/kanban/shared/domain"
	"github.com/itchan-dev/kanban/shared/errors"
	sharedpg "github.com/itchan-dev/kanban/shared/storage/pg"
)

const boardColumns = "id, name, user_id, created_at, updated_at"

func (s *Storage) CreateBoard(ctx context.Context, data domain.BoardCreationData) (domain.Board, error) {
	b, err := scanBoard(s.db.QueryRowContext(ctx,
		"INSERT INTO boards(name, user_id) VALUES($1, $2) RETURNING "+boardColumns,
		data.Name, data.UserId))
	if _, ok := sharedpg.IsForeignKeyViolation(err); ok {
		return domain.Board{}, errors.New(errors.NotFound, "User not found")
	}
	if err != nil {
		return domain.Board{}, errors.Storage(err, "failed to insert board")
	}
	return b, nil
}

func (s *Storage) Board(ctx context.Context, id domain.BoardId) (domain.Board, error) {
	b, err := scanBoard(s.db.QueryRowContext(ctx, "SELECT "+boardColumns+" FROM boards WHERE id = $1", id))
	if err != nil {
		return domain.Board{}, boardError(err)
	}
	return b, nil
}

func (s *Storage) BoardsByUser(ctx context.Context, userId domain.UserId) ([]domain.Board, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+boardColumns+" FROM boards WHERE user_id = $1 ORDER BY id", userId)
	if err != nil {
		return nil, errors.Storage(err, "failed to query boards")
	}
	defer rows.Close()

	boards := []domain.Board{}
	for rows.Next() {
		b, err := scanBoard(rows)
		if err != nil {
			return nil, errors.Storage(err, "failed to scan board")
		}
		boards = append(boards, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Storage(err, "failed to iterate boards")
	}
	return boards, nil
}

func (s *Storage) UpdateBoard(ctx context.Context, id domain.BoardId, name domain.BoardName) (domain.Board, error) {
	b, err := scanBoard(s.db.QueryRowContext(ctx,
		"UPDATE boards SET name = $2, updated_at = now() WHERE id = $1 RETURNING "+boardColumns,
		id, name))
	if err != nil {
		return domain.Board{}, boardError(err)
	}
	return b, nil
}

// DeleteBoard relies on ON DELETE CASCADE for sections, cards and favorites.
func (s *Storage) DeleteBoard(ctx context.Context, id domain.BoardId) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM boards WHERE id = $1", id)
	if err != nil {
		return errors.Storage(err, "failed to delete board")
	}
	return requireAffected(res, "Board not found")
}

// BoardDetail reads the board, its sections (by id) and their cards (by order, id)
// from one snapshot.
func (s *Storage) BoardDetail(ctx context.Context, id domain.BoardId) (domain.BoardDetail, error) {
	var detail domain.BoardDetail
	err := s.withReadTx(ctx, func(tx *sql.Tx) error {
		b, err := scanBoard(tx.QueryRowContext(ctx, "SELECT "+boardColumns+" FROM boards WHERE id = $1", id))
		if err != nil {
			return boardError(err)
		}
		detail.Board = b

		sections, err := sectionsByBoard(ctx, tx, id)
		if err != nil {
			return err
		}
		cards, err := cardsByBoard(ctx, tx, id)
		if err != nil {
			return err
		}

		bySection := make(map[domain.SectionId][]domain.Card, len(sections))
		for _, c := range cards {
			bySection[c.SectionId] = append(bySection[c.SectionId], c)
		}
		detail.Sections = make([]domain.SectionDetail, 0, len(sections))
		for _, sec := range sections {
			sectionCards := bySection[sec.Id]
			if sectionCards == nil {
				sectionCards = []domain.Card{}
			}
			detail.Sections = append(detail.Sections, domain.SectionDetail{Section: sec, Cards: sectionCards})
		}
		return nil
	})
	if err != nil {
		return domain.BoardDetail{}, err
	}
	return detail, nil
}

// withReadTx runs fn in a read-only repeatable read transaction.
func (s *Storage) withReadTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return errors.Wrap(errors.StorageError, err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	return errors.Storage(tx.Commit(), "failed to commit transaction")
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBoard(row scanner) (domain.Board, error) {
	var b domain.Board
	err := row.Scan(&b.Id, &b.Name, &b.UserId, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

func boardError(err error) error {
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.New(errors.NotFound, "Board not found")
	}
	return errors.Storage(err, "failed to get board")
}

func requireAffected(res sql.Result, notFound string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Storage(err, "failed to read affected rows")
	}
	if n == 0 {
		return errors.New(errors.NotFound, notFound)
	}
	return nil
}
