package handler

import (
	"net/http"

	"github.com/itchan-dev/kanban/shared/api"
	"github.com/itchan-dev/kanban/shared/domain"
	"github.com/itchan-dev/kanban/shared/utils"
)

func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
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
	var body api.CreateCardRequest
	if err := decodeBody(w, r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	dueDate, err := parseDueDate(body.DueDate)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	card, err := h.card.Create(r.Context(), userId, domain.CardCreationData{
		SectionId:   sectionId,
		Name:        body.Name,
		Description: body.Description,
		Labels:      body.Labels,
		DueDate:     dueDate,
		Order:       body.Order,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.NewCardResponse(card))
}

func (h *Handler) GetCard(w http.ResponseWriter, r *http.Request) {
	userId, err := principal(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	cardId, err := parseIdParam(r, "card")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	card, err := h.card.Get(r.Context(), userId, cardId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.NewCardResponse(card))
}

func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	userId, err := principal(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	cardId, err := parseIdParam(r, "card")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.UpdateCardRequest
	if err := decodeBody(w, r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	dueDate, err := parseDueDate(body.DueDate)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	card, err := h.card.Update(r.Context(), userId, domain.CardUpdateData{
		Id:          cardId,
		Name:        body.Name,
		Description: body.Description,
		Labels:      body.Labels,
		DueDate:     dueDate,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.NewCardResponse(card))
}

func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	userId, err := principal(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	cardId, err := parseIdParam(r, "card")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.card.Delete(r.Context(), userId, cardId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ReorderCards applies a drag-and-drop batch; nothing is written unless every item is valid.
func (h *Handler) ReorderCards(w http.ResponseWriter, r *http.Request) {
	userId, err := principal(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.ReorderCardsRequest
	if err := decodeBody(w, r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	applied, err := h.card.Reorder(r.Context(), userId, body.Moves())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.NewReorderCardsResponse(applied))
}
