package handler

import (
	"net/http"

	"github.com/itchan-dev/kanban/shared/api"
	"github.com/itchan-dev/kanban/shared/utils"
)

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	userId, err := principal(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.BoardRequest
	if err := decodeBody(w, r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.board.Create(r.Context(), userId, body.Name)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.NewBoardResponse(board))
}

func (h *Handler) GetMyBoards(w http.ResponseWriter, r *http.Request) {
	userId, err := principal(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	boards, err := h.board.ListMine(r.Context(), userId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.NewBoardListResponse(boards))
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	userId, err := principal(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	boardId, err := parseIdParam(r, "board")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	detail, err := h.board.Detail(r.Context(), userId, boardId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.NewBoardDetailResponse(detail))
}

// GetBoardSections lists the board's sections, each with its ordered cards.
func (h *Handler) GetBoardSections(w http.ResponseWriter, r *http.Request) {
	userId, err := principal(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	boardId, err := parseIdParam(r, "board")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	detail, err := h.board.Detail(r.Context(), userId, boardId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.SectionListResponse{
		BoardName:    detail.Name,
		SectionCount: len(detail.Sections),
		Sections:     api.NewSectionDetailResponses(detail.Sections),
	})
}

func (h *Handler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	userId, err := principal(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	boardId, err := parseIdParam(r, "board")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.BoardRequest
	if err := decodeBody(w, r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.board.Update(r.Context(), userId, boardId, body.Name)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.NewBoardResponse(board))
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	userId, err := principal(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	boardId, err := parseIdParam(r, "board")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.board.Delete(r.Context(), userId, boardId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
