package api

import (
	"time"

	"github.com/itchan-dev/kanban/shared/domain"
)

// Request DTOs

type BoardRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type SectionRequest struct {
	Title string `json:"title" validate:"required,max=50"`
}

type AddFavoriteRequest struct {
	BoardId *domain.BoardId `json:"boardId" validate:"required"`
}

// Response DTOs. "Basic" views carry flat fields, "detail" views add nested children.

type BoardResponse struct {
	Id        domain.BoardId `json:"id"`
	Name      string         `json:"name"`
	UserId    domain.UserId  `json:"userId"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type BoardDetailResponse struct {
	BoardResponse
	Sections []SectionDetailResponse `json:"sections"`
}

type BoardListResponse struct {
	Count  int             `json:"count"`
	Boards []BoardResponse `json:"boards"`
}

type SectionResponse struct {
	Id        domain.SectionId `json:"id"`
	Title     string           `json:"title"`
	BoardId   domain.BoardId   `json:"boardId"`
	UserId    domain.UserId    `json:"userId"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

type SectionDetailResponse struct {
	SectionResponse
	Cards []CardResponse `json:"cards"`
}

type SectionListResponse struct {
	BoardName    string                  `json:"boardName"`
	SectionCount int                     `json:"sectionCount"`
	Sections     []SectionDetailResponse `json:"sections"`
}

type FavoriteResponse struct {
	Id        domain.FavoriteId `json:"id"`
	UserId    domain.UserId     `json:"userId"`
	BoardId   domain.BoardId    `json:"boardId"`
	CreatedAt time.Time         `json:"createdAt"`
	Board     BoardResponse     `json:"board"`
}

type FavoriteListResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
}

func NewBoardResponse(b domain.Board) BoardResponse {
	return BoardResponse{Id: b.Id, Name: b.Name, UserId: b.UserId, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

func NewBoardDetailResponse(b domain.BoardDetail) BoardDetailResponse {
	return BoardDetailResponse{BoardResponse: NewBoardResponse(b.Board), Sections: NewSectionDetailResponses(b.Sections)}
}

func NewBoardListResponse(boards []domain.Board) BoardListResponse {
	resp := BoardListResponse{Count: len(boards), Boards: make([]BoardResponse, 0, len(boards))}
	for _, b := range boards {
		resp.Boards = append(resp.Boards, NewBoardResponse(b))
	}
	return resp
}

func NewSectionResponse(s domain.Section) SectionResponse {
	return SectionResponse{Id: s.Id, Title: s.Title, BoardId: s.BoardId, UserId: s.UserId, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
}

func NewSectionDetailResponses(sections []domain.SectionDetail) []SectionDetailResponse {
	resp := make([]SectionDetailResponse, 0, len(sections))
	for _, s := range sections {
		resp = append(resp, SectionDetailResponse{SectionResponse: NewSectionResponse(s.Section), Cards: NewCardResponses(s.Cards)})
	}
	return resp
}

func NewFavoriteResponse(f domain.Favorite) FavoriteResponse {
	return FavoriteResponse{Id: f.Id, UserId: f.UserId, BoardId: f.BoardId, CreatedAt: f.CreatedAt, Board: NewBoardResponse(f.Board)}
}

func NewFavoriteListResponse(favs []domain.Favorite) FavoriteListResponse {
	resp := FavoriteListResponse{Favorites: make([]FavoriteResponse, 0, len(favs))}
	for _, f := range favs {
		resp.Favorites = append(resp.Favorites, NewFavoriteResponse(f))
	}
	return resp
}
