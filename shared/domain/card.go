package domain

import (
	"cmp"
	"slices"
	"time"
)

type CardCreationData struct {
	SectionId   SectionId
	Name        CardName
	Description *string
	Labels      *string
	DueDate     *time.Time
	// nil means "append to the end of the section"
	Order *int
}

// CardUpdateData replaces the editable fields of a card. Order and section change only through a move.
type CardUpdateData struct {
	Id          CardId
	Name        CardName
	Description *string
	Labels      *string
	DueDate     *time.Time
}

// Card has no owner column, UserId is resolved through section -> board.
type Card struct {
	Id          CardId
	SectionId   SectionId
	UserId      UserId
	Name        CardName
	Description *string
	// Description rendered for display, filled by the service layer
	DescriptionHTML string
	Labels          *string
	DueDate         *time.Time
	Order           int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CardMove is one item of a drag-and-drop batch.
type CardMove struct {
	CardId    CardId
	Order     int
	SectionId SectionId
}

// CompareCards orders cards by (Order, Id).
func CompareCards(a, b Card) int {
	if c := cmp.Compare(a.Order, b.Order); c != 0 {
		return c
	}
	return cmp.Compare(a.Id, b.Id)
}

func SortCards(cards []Card) {
	slices.SortFunc(cards, CompareCards)
}
