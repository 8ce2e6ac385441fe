package service

import (
	"context"

	"github.com/itchan-dev/kanban/backend/internal/service/utils"
	"github.com/itchan-dev/kanban/shared/domain"
	"github.com/itchan-dev/kanban/shared/errors"
	"github.com/itchan-dev/kanban/shared/logger"
)

// to mock service in tests
type BoardService interface {
	Create(ctx context.Context, principal domain.UserId, name domain.BoardName) (domain.Board, error)
	ListMine(ctx context.Context, principal domain.UserId) ([]domain.Board, error)
	Detail(ctx context.Context, principal domain.UserId, boardId domain.BoardId) (domain.BoardDetail, error)
	Update(ctx context.Context, principal domain.UserId, boardId domain.BoardId, name domain.BoardName) (domain.Board, error)
	Delete(ctx context.Context, principal domain.UserId, boardId domain.BoardId) error
}

type BoardStorage interface {
	CreateBoard(ctx context.Context, data domain.BoardCreationData) (domain.Board, error)
	BoardsByUser(ctx context.Context, userId domain.UserId) ([]domain.Board, error)
	BoardDetail(ctx context.Context, id domain.BoardId) (domain.BoardDetail, error)
	UpdateBoard(ctx context.Context, id domain.BoardId, name domain.BoardName) (domain.Board, error)
	DeleteBoard(ctx context.Context, id domain.BoardId) error
}

type Board struct {
	storage BoardStorage
	guard   *Guard
	text    *utils.TextProcessor
}

func NewBoard(storage BoardStorage, guard *Guard, text *utils.TextProcessor) BoardService {
	return &Board{storage: storage, guard: guard, text: text}
}

func (b *Board) Create(ctx context.Context, principal domain.UserId, name domain.BoardName) (domain.Board, error) {
	name, err := requiredText(b.text, "name", name)
	if err != nil {
		return domain.Board{}, err
	}
	board, err := b.storage.CreateBoard(ctx, domain.BoardCreationData{Name: name, UserId: principal})
	if err != nil {
		return domain.Board{}, err
	}
	logger.FromContext(ctx).Info("board created", "board_id", board.Id, "user_id", principal)
	return board, nil
}

func (b *Board) ListMine(ctx context.Context, principal domain.UserId) ([]domain.Board, error) {
	return b.storage.BoardsByUser(ctx, principal)
}

// Detail returns the board with its sections and their cards in display order.
func (b *Board) Detail(ctx context.Context, principal domain.UserId, boardId domain.BoardId) (domain.BoardDetail, error) {
	if _, err := b.guard.AuthorizeBoard(ctx, principal, boardId); err != nil {
		return domain.BoardDetail{}, err
	}
	detail, err := b.storage.BoardDetail(ctx, boardId)
	if err != nil {
		return domain.BoardDetail{}, err
	}
	for i := range detail.Sections {
		renderDescriptions(b.text, detail.Sections[i].Cards)
	}
	return detail, nil
}

func (b *Board) Update(ctx context.Context, principal domain.UserId, boardId domain.BoardId, name domain.BoardName) (domain.Board, error) {
	name, err := requiredText(b.text, "name", name)
	if err != nil {
		return domain.Board{}, err
	}
	if _, err := b.guard.AuthorizeBoard(ctx, principal, boardId); err != nil {
		return domain.Board{}, err
	}
	return b.storage.UpdateBoard(ctx, boardId, name)
}

// Delete removes the board; its sections, cards and favorites go with it.
func (b *Board) Delete(ctx context.Context, principal domain.UserId, boardId domain.BoardId) error {
	if _, err := b.guard.AuthorizeBoard(ctx, principal, boardId); err != nil {
		return err
	}
	if err := b.storage.DeleteBoard(ctx, boardId); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("board deleted", "board_id", boardId, "user_id", principal)
	return nil
}

// requiredText strips markup and fails if nothing is left.
func requiredText(text *utils.TextProcessor, field, value string) (string, error) {
	clean := text.Plain(value)
	if clean == "" {
		return "", errors.Validation("Invalid input", map[string]string{field: "is required"})
	}
	return clean, nil
}
