package pg

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"

	"github.com/itchan-dev/kanban/shared/domain"
	"github.com/itchan-dev/kanban/shared/errors"
	sharedpg "github.com/itchan-dev/kanban/shared/storage/pg"
	"github.com/lib/pq"
)

// Cards carry no owner column, the owner comes from the section -> board join.
const (
	cardColumns = `c.id, c.name, c.description, c.labels, c.due_date, c."order", c.section_id, b.user_id, c.created_at, c.updated_at`
	cardJoins   = "JOIN sections s ON s.id = c.section_id JOIN boards b ON b.id = s.board_id"
)

// NextCardOrder returns 0 for an empty section, max(order)+1 otherwise.
func (s *Storage) NextCardOrder(ctx context.Context, sectionId domain.SectionId) (int, error) {
	var next int
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX("order") + 1, 0) FROM cards WHERE section_id = $1`, sectionId).Scan(&next)
	if err != nil {
		return 0, errors.Storage(err, "failed to compute next card order")
	}
	return next, nil
}

func (s *Storage) SectionCards(ctx context.Context, sectionId domain.SectionId) ([]domain.Card, error) {
	return queryCards(ctx, s.db,
		"SELECT "+cardColumns+" FROM cards c "+cardJoins+` WHERE c.section_id = $1 ORDER BY c."order", c.id`,
		sectionId)
}

// CreateCard appends to the end of the section when data.Order is nil.
func (s *Storage) CreateCard(ctx context.Context, data domain.CardCreationData) (domain.Card, error) {
	var order sql.NullInt64
	if data.Order != nil {
		order = sql.NullInt64{Int64: int64(*data.Order), Valid: true}
	}
	c, err := scanCard(s.db.QueryRowContext(ctx, `
	WITH c AS (
		INSERT INTO cards(section_id, name, description, labels, due_date, "order")
		VALUES($1, $2, $3, $4, $5,
			COALESCE($6::bigint, (SELECT COALESCE(MAX("order") + 1, 0) FROM cards WHERE section_id = $1)))
		RETURNING *
	)
	SELECT `+cardColumns+` FROM c `+cardJoins,
		data.SectionId, data.Name, nullString(data.Description), nullString(data.Labels), nullTime(data.DueDate), order))
	if _, ok := sharedpg.IsForeignKeyViolation(err); ok {
		return domain.Card{}, errors.New(errors.NotFound, "Section not found")
	}
	if err != nil {
		return domain.Card{}, errors.Storage(err, "failed to insert card")
	}
	return c, nil
}

func (s *Storage) Card(ctx context.Context, id domain.CardId) (domain.Card, error) {
	c, err := scanCard(s.db.QueryRowContext(ctx, "SELECT "+cardColumns+" FROM cards c "+cardJoins+" WHERE c.id = $1", id))
	if err != nil {
		return domain.Card{}, cardError(err)
	}
	return c, nil
}

// UpdateCard replaces the editable fields; order and section are left alone.
func (s *Storage) UpdateCard(ctx context.Context, data domain.CardUpdateData) (domain.Card, error) {
	c, err := scanCard(s.db.QueryRowContext(ctx, `
	WITH c AS (
		UPDATE cards SET name = $2, description = $3, labels = $4, due_date = $5, updated_at = now()
		WHERE id = $1
		RETURNING *
	)
	SELECT `+cardColumns+` FROM c `+cardJoins,
		data.Id, data.Name, nullString(data.Description), nullString(data.Labels), nullTime(data.DueDate)))
	if err != nil {
		return domain.Card{}, cardError(err)
	}
	return c, nil
}

func (s *Storage) DeleteCard(ctx context.Context, id domain.CardId) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM cards WHERE id = $1", id)
	if err != nil {
		return errors.Storage(err, "failed to delete card")
	}
	return requireAffected(res, "Card not found")
}

// MoveCards applies a reorder batch in one transaction.
// The referenced cards are locked in id order and the target sections are share-locked,
// then check inspects what was found (with resolved owners) before anything is written.
// Any error from check or from an update rolls the whole batch back.
func (s *Storage) MoveCards(ctx context.Context, moves []domain.CardMove, check func(cards []domain.Card, sections []domain.Section) error) error {
	cardIds := make([]int64, 0, len(moves))
	sectionIds := make([]int64, 0, len(moves))
	for _, m := range moves {
		cardIds = append(cardIds, m.CardId)
		sectionIds = append(sectionIds, m.SectionId)
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		cards, err := queryCards(ctx, tx,
			"SELECT "+cardColumns+" FROM cards c "+cardJoins+" WHERE c.id = ANY($1) ORDER BY c.id FOR UPDATE OF c",
			pq.Array(cardIds))
		if err != nil {
			return err
		}
		sections, err := querySections(ctx, tx,
			"SELECT "+sectionColumns+" FROM sections s JOIN boards b ON b.id = s.board_id WHERE s.id = ANY($1) ORDER BY s.id FOR SHARE OF s",
			pq.Array(sectionIds))
		if err != nil {
			return err
		}
		if err := check(cards, sections); err != nil {
			return err
		}

		stmt, err := tx.PrepareContext(ctx, `UPDATE cards SET "order" = $2, section_id = $3, updated_at = now() WHERE id = $1`)
		if err != nil {
			return errors.Storage(err, "failed to prepare card move")
		}
		defer stmt.Close()

		for _, m := range moves {
			res, err := stmt.ExecContext(ctx, m.CardId, m.Order, m.SectionId)
			if _, ok := sharedpg.IsForeignKeyViolation(err); ok {
				return errors.Newf(errors.NotFound, "Section %d not found", m.SectionId)
			}
			if err != nil {
				return errors.Storage(err, fmt.Sprintf("failed to move card %d", m.CardId))
			}
			if err := requireAffected(res, fmt.Sprintf("Card %d not found", m.CardId)); err != nil {
				return err
			}
		}
		return nil
	})
}

func cardsByBoard(ctx context.Context, q sharedpg.Querier, boardId domain.BoardId) ([]domain.Card, error) {
	return queryCards(ctx, q,
		"SELECT "+cardColumns+" FROM cards c "+cardJoins+` WHERE s.board_id = $1 ORDER BY c.section_id, c."order", c.id`,
		boardId)
}

func queryCards(ctx context.Context, q sharedpg.Querier, query string, args ...any) ([]domain.Card, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Storage(err, "failed to query cards")
	}
	defer rows.Close()

	cards := []domain.Card{}
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, errors.Storage(err, "failed to scan card")
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Storage(err, "failed to iterate cards")
	}
	return cards, nil
}

func scanCard(row scanner) (domain.Card, error) {
	var (
		c           domain.Card
		description sql.NullString
		labels      sql.NullString
		dueDate     sql.NullTime
	)
	err := row.Scan(&c.Id, &c.Name, &description, &labels, &dueDate, &c.Order, &c.SectionId, &c.UserId, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Card{}, err
	}
	c.Description = stringPtr(description)
	c.Labels = stringPtr(labels)
	if dueDate.Valid {
		d := dueDate.Time
		c.DueDate = &d
	}
	return c, nil
}

func cardError(err error) error {
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.New(errors.NotFound, "Card not found")
	}
	return errors.Storage(err, "failed to get card")
}
