package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type BoardCreationData struct {
	Name   BoardName
	UserId UserId
}

type Board struct {
	Id        BoardId
	Name      BoardName
	UserId    UserId
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BoardDetail is a board with all of its sections, each holding its cards in display order.
type BoardDetail struct {
	Board
	Sections []SectionDetail
}

type SectionCreationData struct {
	Title   SectionTitle
	BoardId BoardId
}

// Section has no owner column, UserId is resolved through its board.
type Section struct {
	Id        SectionId
	Title     SectionTitle
	BoardId   BoardId
	UserId    UserId
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SectionDetail struct {
	Section
	Cards []Card
}

type Favorite struct {
	Id        FavoriteId
	UserId    UserId
	BoardId   BoardId
	CreatedAt time.Time
	Board     Board
}
