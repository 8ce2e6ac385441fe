package handler

import (
	"net/http"

	"github.com/itchan-dev/kanban/shared/api"
	"github.com/itchan-dev/kanban/shared/utils"
)

func (h *Handler) CreateSection(w http.ResponseWriter, r *http.Request) {
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
	var body api.SectionRequest
	if err := decodeBody(w, r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	section, err := h.section.Create(r.Context(), userId, boardId, body.Title)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.NewSectionResponse(section))
}

func (h *Handler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	userId, err := principal(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	sectionId, err := parseIdParam(r, "section")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.SectionRequest
	if err := decodeBody(w, r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	section, err := h.section.Update(r.Context(), userId, sectionId, body.Title)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.NewSectionResponse(section))
}

func (h *Handler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	userId, err := principal(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	sectionId, err := parseIdParam(r, "section")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.section.Delete(r.Context(), userId, sectionId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetSectionCards(w http.ResponseWriter, r *http.Request) {
	userId, err := principal(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	sectionId, err := parseIdParam(r, "section")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	cards, err := h.section.Cards(r.Context(), userId, sectionId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.CardListResponse{Cards: api.NewCardResponses(cards)})
}
