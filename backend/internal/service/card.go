package service

import (
	"context"

	"github.com/itchan-dev/kanban/backend/internal/service/utils"
	"github.com/itchan-dev/kanban/shared/domain"
	"github.com/itchan-dev/kanban/shared/logger"
)

type CardService interface {
	Create(ctx context.Context, principal domain.UserId, data domain.CardCreationData) (domain.Card, error)
	Get(ctx context.Context, principal domain.UserId, cardId domain.CardId) (domain.Card, error)
	Update(ctx context.Context, principal domain.UserId, data domain.CardUpdateData) (domain.Card, error)
	Delete(ctx context.Context, principal domain.UserId, cardId domain.CardId) error
	Reorder(ctx context.Context, principal domain.UserId, moves []domain.CardMove) ([]domain.CardMove, error)
}

type CardStorage interface {
	CreateCard(ctx context.Context, data domain.CardCreationData) (domain.Card, error)
	UpdateCard(ctx context.Context, data domain.CardUpdateData) (domain.Card, error)
	DeleteCard(ctx context.Context, id domain.CardId) error
}

type Card struct {
	storage  CardStorage
	guard    *Guard
	ordering *Ordering
	text     *utils.TextProcessor
}

func NewCard(storage CardStorage, guard *Guard, ordering *Ordering, text *utils.TextProcessor) CardService {
	return &Card{storage: storage, guard: guard, ordering: ordering, text: text}
}

// Create puts the card at the end of the section unless an order is given.
func (c *Card) Create(ctx context.Context, principal domain.UserId, data domain.CardCreationData) (domain.Card, error) {
	name, err := requiredText(c.text, "name", data.Name)
	if err != nil {
		return domain.Card{}, err
	}
	data.Name = name
	data.Description = c.text.PlainPtr(data.Description)
	data.Labels = c.text.PlainPtr(data.Labels)

	if _, err := c.guard.AuthorizeSection(ctx, principal, data.SectionId); err != nil {
		return domain.Card{}, err
	}
	if data.Order == nil {
		next, err := c.ordering.NextOrder(ctx, data.SectionId)
		if err != nil {
			return domain.Card{}, err
		}
		data.Order = &next
	}

	card, err := c.storage.CreateCard(ctx, data)
	if err != nil {
		return domain.Card{}, err
	}
	logger.FromContext(ctx).Info("card created", "card_id", card.Id, "section_id", card.SectionId, "order", card.Order, "user_id", principal)
	return c.render(card), nil
}

func (c *Card) Get(ctx context.Context, principal domain.UserId, cardId domain.CardId) (domain.Card, error) {
	card, err := c.guard.AuthorizeCard(ctx, principal, cardId)
	if err != nil {
		return domain.Card{}, err
	}
	return c.render(card), nil
}

// Update replaces name, description, labels and due date. Position changes only through Reorder.
func (c *Card) Update(ctx context.Context, principal domain.UserId, data domain.CardUpdateData) (domain.Card, error) {
	name, err := requiredText(c.text, "name", data.Name)
	if err != nil {
		return domain.Card{}, err
	}
	data.Name = name
	data.Description = c.text.PlainPtr(data.Description)
	data.Labels = c.text.PlainPtr(data.Labels)

	if _, err := c.guard.AuthorizeCard(ctx, principal, data.Id); err != nil {
		return domain.Card{}, err
	}
	card, err := c.storage.UpdateCard(ctx, data)
	if err != nil {
		return domain.Card{}, err
	}
	return c.render(card), nil
}

func (c *Card) Delete(ctx context.Context, principal domain.UserId, cardId domain.CardId) error {
	if _, err := c.guard.AuthorizeCard(ctx, principal, cardId); err != nil {
		return err
	}
	if err := c.storage.DeleteCard(ctx, cardId); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("card deleted", "card_id", cardId, "user_id", principal)
	return nil
}

func (c *Card) Reorder(ctx context.Context, principal domain.UserId, moves []domain.CardMove) ([]domain.CardMove, error) {
	return c.ordering.BulkReorder(ctx, principal, moves)
}

func (c *Card) render(card domain.Card) domain.Card {
	if card.Description != nil {
		card.DescriptionHTML = c.text.Render(*card.Description)
	}
	return card
}

func renderDescriptions(text *utils.TextProcessor, cards []domain.Card) {
	for i := range cards {
		if cards[i].Description != nil {
			cards[i].DescriptionHTML = text.Render(*cards[i].Description)
		}
	}
}
