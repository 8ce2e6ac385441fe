package service

import (
	"context"
	"fmt"

	"github.com/itchan-dev/kanban/shared/domain"
	"github.com/itchan-dev/kanban/shared/errors"
	"github.com/itchan-dev/kanban/shared/logger"
	"github.com/itchan-dev/kanban/shared/middleware/metrics"
)

type OrderingStorage interface {
	NextCardOrder(ctx context.Context, sectionId domain.SectionId) (int, error)
	SectionCards(ctx context.Context, sectionId domain.SectionId) ([]domain.Card, error)
	MoveCards(ctx context.Context, moves []domain.CardMove, check func(cards []domain.Card, sections []domain.Section) error) error
}

// Ordering owns card positions. Orders are sparse: a move writes only the cards
// it names and never renumbers the rest, listing breaks ties by id.
type Ordering struct {
	storage OrderingStorage
}

func NewOrdering(storage OrderingStorage) *Ordering {
	return &Ordering{storage: storage}
}

// NextOrder is 0 for an empty section, max(order)+1 otherwise.
func (o *Ordering) NextOrder(ctx context.Context, sectionId domain.SectionId) (int, error) {
	return o.storage.NextCardOrder(ctx, sectionId)
}

// ListOrdered returns the section's cards by (order, id). Every call reads the
// store again, so callers can restart the listing at any time.
func (o *Ordering) ListOrdered(ctx context.Context, sectionId domain.SectionId) ([]domain.Card, error) {
	return o.storage.SectionCards(ctx, sectionId)
}

// BulkReorder applies a drag-and-drop batch atomically: either every move is
// committed or none is. Ownership of each card and of each target section is
// checked inside the same transaction that writes the moves.
func (o *Ordering) BulkReorder(ctx context.Context, principal domain.UserId, moves []domain.CardMove) ([]domain.CardMove, error) {
	if len(moves) == 0 {
		return []domain.CardMove{}, nil
	}
	if err := validateMoves(moves); err != nil {
		metrics.ReorderBatches.WithLabelValues(string(errors.ValidationFailed)).Inc()
		return nil, err
	}

	err := o.storage.MoveCards(ctx, moves, func(cards []domain.Card, sections []domain.Section) error {
		return checkMoves(principal, moves, cards, sections)
	})
	if err != nil {
		metrics.ReorderBatches.WithLabelValues(string(errors.KindOf(err))).Inc()
		return nil, err
	}

	metrics.ReorderBatches.WithLabelValues("applied").Inc()
	metrics.CardsMoved.Add(float64(len(moves)))
	logger.FromContext(ctx).Info("cards reordered", "user_id", principal, "count", len(moves))
	return moves, nil
}

func validateMoves(moves []domain.CardMove) error {
	seen := make(map[domain.CardId]int, len(moves))
	for i, m := range moves {
		if first, ok := seen[m.CardId]; ok {
			return errors.Validation(
				fmt.Sprintf("Card %d appears more than once", m.CardId),
				map[string]string{fmt.Sprintf("reorderedCards[%d].id", i): fmt.Sprintf("duplicates reorderedCards[%d].id", first)},
			)
		}
		seen[m.CardId] = i
	}
	return nil
}

// checkMoves runs under the batch's row locks. The first offending item, in batch order, decides the error.
func checkMoves(principal domain.UserId, moves []domain.CardMove, cards []domain.Card, sections []domain.Section) error {
	cardOwners := make(map[domain.CardId]domain.UserId, len(cards))
	for _, c := range cards {
		cardOwners[c.Id] = c.UserId
	}
	sectionOwners := make(map[domain.SectionId]domain.UserId, len(sections))
	for _, s := range sections {
		sectionOwners[s.Id] = s.UserId
	}

	for _, m := range moves {
		owner, ok := cardOwners[m.CardId]
		if !ok {
			return errors.Newf(errors.NotFound, "Card %d not found", m.CardId)
		}
		if owner != principal {
			return errors.Newf(errors.Forbidden, "You do not have access to card %d", m.CardId)
		}
	}
	for _, m := range moves {
		owner, ok := sectionOwners[m.SectionId]
		if !ok {
			return errors.Newf(errors.NotFound, "Section %d not found", m.SectionId)
		}
		if owner != principal {
			return errors.Newf(errors.Forbidden, "You do not have access to section %d", m.SectionId)
		}
	}
	return nil
}
