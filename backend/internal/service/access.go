package service

import (
	"context"

	"github.com/itchan-dev/kanban/shared/domain"
	"github.com/itchan-dev/kanban/shared/errors"
)

type AccessStorage interface {
	Board(ctx context.Context, id domain.BoardId) (domain.Board, error)
	Section(ctx context.Context, id domain.SectionId) (domain.Section, error)
	Card(ctx context.Context, id domain.CardId) (domain.Card, error)
}

// Guard checks that the principal owns a resource before anything touches it.
// Absence is reported before ownership, so NotFound wins over Forbidden.
type Guard struct {
	storage AccessStorage
}

func NewGuard(storage AccessStorage) *Guard {
	return &Guard{storage: storage}
}

func (g *Guard) AuthorizeBoard(ctx context.Context, principal domain.UserId, boardId domain.BoardId) (domain.Board, error) {
	board, err := g.storage.Board(ctx, boardId)
	if err != nil {
		return domain.Board{}, err
	}
	if board.UserId != principal {
		return domain.Board{}, errors.New(errors.Forbidden, "You do not have access to this board")
	}
	return board, nil
}

func (g *Guard) AuthorizeSection(ctx context.Context, principal domain.UserId, sectionId domain.SectionId) (domain.Section, error) {
	section, err := g.storage.Section(ctx, sectionId)
	if err != nil {
		return domain.Section{}, err
	}
	if _, err := g.AuthorizeBoard(ctx, principal, section.BoardId); err != nil {
		return domain.Section{}, err
	}
	return section, nil
}

// AuthorizeCard compares the owner resolved through the card's section and board.
func (g *Guard) AuthorizeCard(ctx context.Context, principal domain.UserId, cardId domain.CardId) (domain.Card, error) {
	card, err := g.storage.Card(ctx, cardId)
	if err != nil {
		return domain.Card{}, err
	}
	if card.UserId != principal {
		return domain.Card{}, errors.New(errors.Forbidden, "You do not have access to this card")
	}
	return card, nil
}
