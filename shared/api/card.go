package api

import (
	"time"

	"github.com/itchan-dev/kanban/shared/domain"
)

type CreateCardRequest struct {
	Name        string  `json:"name" validate:"required,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Labels      *string `json:"labels,omitempty" validate:"omitempty,max=50"`
	DueDate     *string `json:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	// client orders stay in the int32 range, the column is bigint so appends past the top still fit
	Order       *int    `json:"order,omitempty" validate:"omitempty,min=-2147483648,max=2147483647"`
}

type UpdateCardRequest struct {
	Name        string  `json:"name" validate:"required,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Labels      *string `json:"labels,omitempty" validate:"omitempty,max=50"`
	DueDate     *string `json:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// ReorderItem fields are pointers so a missing field is told apart from a zero.
type ReorderItem struct {
	Id            *domain.CardId    `json:"id" validate:"required"`
	Order         *int              `json:"order" validate:"required,min=-2147483648,max=2147483647"`
	CardSectionId *domain.SectionId `json:"cardSectionId" validate:"required"`
}

type ReorderCardsRequest struct {
	// an empty list is a valid no-op batch, a missing one is not
	ReorderedCards []ReorderItem `json:"reorderedCards" validate:"required,dive"`
}

type CardResponse struct {
	Id              domain.CardId    `json:"id"`
	Name            string           `json:"name"`
	Description     *string          `json:"description"`
	DescriptionHTML string           `json:"descriptionHtml,omitempty"`
	Labels          *string          `json:"labels"`
	DueDate         *string          `json:"dueDate"`
	Order           int              `json:"order"`
	CardSectionId   domain.SectionId `json:"cardSectionId"`
	UserId          domain.UserId    `json:"userId"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

type CardListResponse struct {
	Cards []CardResponse `json:"cards"`
}

type ReorderedCard struct {
	Id            domain.CardId    `json:"id"`
	Order         int              `json:"order"`
	CardSectionId domain.SectionId `json:"cardSectionId"`
}

type ReorderCardsResponse struct {
	ReorderedCards []ReorderedCard `json:"reorderedCards"`
}

func (r ReorderCardsRequest) Moves() []domain.CardMove {
	moves := make([]domain.CardMove, 0, len(r.ReorderedCards))
	for _, item := range r.ReorderedCards {
		moves = append(moves, domain.CardMove{CardId: *item.Id, Order: *item.Order, SectionId: *item.CardSectionId})
	}
	return moves
}

func NewCardResponse(c domain.Card) CardResponse {
	resp := CardResponse{
		Id:              c.Id,
		Name:            c.Name,
		Description:     c.Description,
		DescriptionHTML: c.DescriptionHTML,
		Labels:          c.Labels,
		Order:           c.Order,
		CardSectionId:   c.SectionId,
		UserId:          c.UserId,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
	if c.DueDate != nil {
		d := c.DueDate.Format(domain.DateLayout)
		resp.DueDate = &d
	}
	return resp
}

func NewCardResponses(cards []domain.Card) []CardResponse {
	resp := make([]CardResponse, 0, len(cards))
	for _, c := range cards {
		resp = append(resp, NewCardResponse(c))
	}
	return resp
}

func NewReorderCardsResponse(moves []domain.CardMove) ReorderCardsResponse {
	resp := ReorderCardsResponse{ReorderedCards: make([]ReorderedCard, 0, len(moves))}
	for _, m := range moves {
		resp.ReorderedCards = append(resp.ReorderedCards, ReorderedCard{Id: m.CardId, Order: m.Order, CardSectionId: m.SectionId})
	}
	return resp
}
