package pg

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/itchan-dev/kanban/shared/domain"
	"github.com/itchan-dev/kanban/shared/errors"
	sharedpg "github.com/itchan-dev/kanban/shared/storage/pg"
)

// Every section query joins its board to resolve the owner.
const sectionColumns = "s.id, s.title, s.board_id, b.user_id, s.created_at, s.updated_at"

func (s *Storage) CreateSection(ctx context.Context, data domain.SectionCreationData) (domain.Section, error) {
	sec, err := scanSection(s.db.QueryRowContext(ctx, `
	WITH s AS (
		INSERT INTO sections(title, board_id) VALUES($1, $2)
		RETURNING id, title, board_id, created_at, updated_at
	)
	SELECT `+sectionColumns+` FROM s JOIN boards b ON b.id = s.board_id`,
		data.Title, data.BoardId))
	if _, ok := sharedpg.IsForeignKeyViolation(err); ok {
		return domain.Section{}, errors.New(errors.NotFound, "Board not found")
	}
	if err != nil {
		return domain.Section{}, errors.Storage(err, "failed to insert section")
	}
	return sec, nil
}

func (s *Storage) Section(ctx context.Context, id domain.SectionId) (domain.Section, error) {
	sec, err := scanSection(s.db.QueryRowContext(ctx,
		"SELECT "+sectionColumns+" FROM sections s JOIN boards b ON b.id = s.board_id WHERE s.id = $1", id))
	if err != nil {
		return domain.Section{}, sectionError(err)
	}
	return sec, nil
}

func (s *Storage) UpdateSection(ctx context.Context, id domain.SectionId, title domain.SectionTitle) (domain.Section, error) {
	sec, err := scanSection(s.db.QueryRowContext(ctx, `
	WITH s AS (
		UPDATE sections SET title = $2, updated_at = now() WHERE id = $1
		RETURNING id, title, board_id, created_at, updated_at
	)
	SELECT `+sectionColumns+` FROM s JOIN boards b ON b.id = s.board_id`,
		id, title))
	if err != nil {
		return domain.Section{}, sectionError(err)
	}
	return sec, nil
}

// DeleteSection relies on ON DELETE CASCADE for the section's cards.
func (s *Storage) DeleteSection(ctx context.Context, id domain.SectionId) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM sections WHERE id = $1", id)
	if err != nil {
		return errors.Storage(err, "failed to delete section")
	}
	return requireAffected(res, "Section not found")
}

func sectionsByBoard(ctx context.Context, q sharedpg.Querier, boardId domain.BoardId) ([]domain.Section, error) {
	return querySections(ctx, q,
		"SELECT "+sectionColumns+" FROM sections s JOIN boards b ON b.id = s.board_id WHERE s.board_id = $1 ORDER BY s.id",
		boardId)
}

func querySections(ctx context.Context, q sharedpg.Querier, query string, args ...any) ([]domain.Section, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Storage(err, "failed to query sections")
	}
	defer rows.Close()

	sections := []domain.Section{}
	for rows.Next() {
		sec, err := scanSection(rows)
		if err != nil {
			return nil, errors.Storage(err, "failed to scan section")
		}
		sections = append(sections, sec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Storage(err, "failed to iterate sections")
	}
	return sections, nil
}

func scanSection(row scanner) (domain.Section, error) {
	var sec domain.Section
	err := row.Scan(&sec.Id, &sec.Title, &sec.BoardId, &sec.UserId, &sec.CreatedAt, &sec.UpdatedAt)
	return sec, err
}

func sectionError(err error) error {
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.New(errors.NotFound, "Section not found")
	}
	return errors.Storage(err, "failed to get section")
}
