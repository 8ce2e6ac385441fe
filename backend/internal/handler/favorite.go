package handler

import (
	"net/http"

	"github.com/itchan-dev/kanban/shared/api"
	"github.com/itchan-dev/kanban/shared/utils"
)

func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	userId, err := principal(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	var body api.AddFavoriteRequest
	if err := decodeBody(w, r, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	fav, err := h.favorite.Add(r.Context(), userId, *body.BoardId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.NewFavoriteResponse(fav))
}

func (h *Handler) GetMyFavorites(w http.ResponseWriter, r *http.Request) {
	userId, err := principal(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	favs, err := h.favorite.ListMine(r.Context(), userId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.NewFavoriteListResponse(favs))
}

func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	userId, err := principal(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	favoriteId, err := parseIdParam(r, "favorite")
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.favorite.Remove(r.Context(), userId, favoriteId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
