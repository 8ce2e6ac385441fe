package service

import (
	"context"

	"github.com/itchan-dev/kanban/backend/internal/service/utils"
	"github.com/itchan-dev/kanban/shared/domain"
	"github.com/itchan-dev/kanban/shared/logger"
)

type SectionService interface {
	Create(ctx context.Context, principal domain.UserId, boardId domain.BoardId, title domain.SectionTitle) (domain.Section, error)
	Update(ctx context.Context, principal domain.UserId, sectionId domain.SectionId, title domain.SectionTitle) (domain.Section, error)
	Delete(ctx context.Context, principal domain.UserId, sectionId domain.SectionId) error
	Cards(ctx context.Context, principal domain.UserId, sectionId domain.SectionId) ([]domain.Card, error)
}

type SectionStorage interface {
	CreateSection(ctx context.Context, data domain.SectionCreationData) (domain.Section, error)
	UpdateSection(ctx context.Context, id domain.SectionId, title domain.SectionTitle) (domain.Section, error)
	DeleteSection(ctx context.Context, id domain.SectionId) error
}

type Section struct {
	storage  SectionStorage
	guard    *Guard
	ordering *Ordering
	text     *utils.TextProcessor
}

func NewSection(storage SectionStorage, guard *Guard, ordering *Ordering, text *utils.TextProcessor) SectionService {
	return &Section{storage: storage, guard: guard, ordering: ordering, text: text}
}

func (s *Section) Create(ctx context.Context, principal domain.UserId, boardId domain.BoardId, title domain.SectionTitle) (domain.Section, error) {
	title, err := requiredText(s.text, "title", title)
	if err != nil {
		return domain.Section{}, err
	}
	if _, err := s.guard.AuthorizeBoard(ctx, principal, boardId); err != nil {
		return domain.Section{}, err
	}
	section, err := s.storage.CreateSection(ctx, domain.SectionCreationData{Title: title, BoardId: boardId})
	if err != nil {
		return domain.Section{}, err
	}
	logger.FromContext(ctx).Info("section created", "section_id", section.Id, "board_id", boardId, "user_id", principal)
	return section, nil
}

func (s *Section) Update(ctx context.Context, principal domain.UserId, sectionId domain.SectionId, title domain.SectionTitle) (domain.Section, error) {
	title, err := requiredText(s.text, "title", title)
	if err != nil {
		return domain.Section{}, err
	}
	if _, err := s.guard.AuthorizeSection(ctx, principal, sectionId); err != nil {
		return domain.Section{}, err
	}
	return s.storage.UpdateSection(ctx, sectionId, title)
}

// Delete removes the section together with its cards.
func (s *Section) Delete(ctx context.Context, principal domain.UserId, sectionId domain.SectionId) error {
	if _, err := s.guard.AuthorizeSection(ctx, principal, sectionId); err != nil {
		return err
	}
	if err := s.storage.DeleteSection(ctx, sectionId); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("section deleted", "section_id", sectionId, "user_id", principal)
	return nil
}

func (s *Section) Cards(ctx context.Context, principal domain.UserId, sectionId domain.SectionId) ([]domain.Card, error) {
	if _, err := s.guard.AuthorizeSection(ctx, principal, sectionId); err != nil {
		return nil, err
	}
	cards, err := s.ordering.ListOrdered(ctx, sectionId)
	if err != nil {
		return nil, err
	}
	renderDescriptions(s.text, cards)
	return cards, nil
}
