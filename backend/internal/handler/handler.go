package handler

import (
	"context"

	"github.com/itchan-dev/kanban/backend/internal/service"
	"github.com/itchan-dev/kanban/shared/config"
)

// HealthChecker reports whether the storage can serve requests.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth     service.AuthService
	board    service.BoardService
	section  service.SectionService
	card     service.CardService
	favorite service.FavoriteService
	health   HealthChecker
	cfg      *config.Config
}

func New(auth service.AuthService, board service.BoardService, section service.SectionService, card service.CardService, favorite service.FavoriteService, health HealthChecker, cfg *config.Config) *Handler {
	return &Handler{
		auth:     auth,
		board:    board,
		section:  section,
		card:     card,
		favorite: favorite,
		health:   health,
		cfg:      cfg,
	}
}
