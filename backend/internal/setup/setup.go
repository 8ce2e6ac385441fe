package setup

import (
	"github.com/itchan-dev/kanban/backend/internal/handler"
	"github.com/itchan-dev/kanban/backend/internal/service"
	"github.com/itchan-dev/kanban/backend/internal/service/utils"
	"github.com/itchan-dev/kanban/backend/internal/storage/pg"
	"github.com/itchan-dev/kanban/shared/config"
	"github.com/itchan-dev/kanban/shared/jwt"
	mw "github.com/itchan-dev/kanban/shared/middleware"
	rl "github.com/itchan-dev/kanban/shared/middleware/ratelimiter"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	Jwt            jwt.JwtService
	AuthMiddleware *mw.Auth
	AuthLimiter    *rl.UserRateLimiter
	UserLimiter    *rl.UserRateLimiter
	Config         *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwt := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	text := utils.NewTextProcessor()

	guard := service.NewGuard(storage)
	ordering := service.NewOrdering(storage)

	auth := service.NewAuth(storage, jwt)
	board := service.NewBoard(storage, guard, text)
	section := service.NewSection(storage, guard, ordering, text)
	card := service.NewCard(storage, guard, ordering, text)
	favorite := service.NewFavorite(storage, guard)

	h := handler.New(auth, board, section, card, favorite, storage, cfg)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		Jwt:            jwt,
		AuthMiddleware: mw.NewAuth(jwt),
		AuthLimiter:    rl.PerMinute(cfg.Public.AuthAttemptsPerMinute),
		UserLimiter:    rl.PerSecond(cfg.Public.UserRps),
		Config:         cfg,
	}, nil
}

// Close stops background timers and releases the database pool.
func (d *Dependencies) Close() error {
	d.AuthLimiter.Stop()
	d.UserLimiter.Stop()
	return d.Storage.Cleanup()
}
