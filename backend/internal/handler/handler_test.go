package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/kanban/shared/config"
	"github.com/itchan-dev/kanban/shared/domain"
	mw "github.com/itchan-dev/kanban/shared/middleware"
	"github.com/itchan-dev/kanban/shared/utils"
	"github.com/stretchr/testify/require"
)

// =========================================================================
// Service mocks
// =========================================================================

type MockAuthService struct {
	MockSignup func(ctx context.Context, data domain.SignupData) (domain.User, error)
	MockLogin  func(ctx context.Context, creds domain.Credentials) (domain.User, string, error)
	MockMe     func(ctx context.Context, userId domain.UserId) (domain.User, error)
}

func (m *MockAuthService) Signup(ctx context.Context, data domain.SignupData) (domain.User, error) {
	if m.MockSignup != nil {
		return m.MockSignup(ctx, data)
	}
	return domain.User{Id: 1, Username: data.Username, Email: data.Email}, nil
}

func (m *MockAuthService) Login(ctx context.Context, creds domain.Credentials) (domain.User, string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(ctx, creds)
	}
	return domain.User{Id: 1, Email: creds.Email}, "token", nil
}

func (m *MockAuthService) Me(ctx context.Context, userId domain.UserId) (domain.User, error) {
	if m.MockMe != nil {
		return m.MockMe(ctx, userId)
	}
	return domain.User{Id: userId}, nil
}

type MockBoardService struct {
	MockCreate   func(ctx context.Context, principal domain.UserId, name domain.BoardName) (domain.Board, error)
	MockListMine func(ctx context.Context, principal domain.UserId) ([]domain.Board, error)
	MockDetail   func(ctx context.Context, principal domain.UserId, boardId domain.BoardId) (domain.BoardDetail, error)
	MockUpdate   func(ctx context.Context, principal domain.UserId, boardId domain.BoardId, name domain.BoardName) (domain.Board, error)
	MockDelete   func(ctx context.Context, principal domain.UserId, boardId domain.BoardId) error
}

func (m *MockBoardService) Create(ctx context.Context, principal domain.UserId, name domain.BoardName) (domain.Board, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, principal, name)
	}
	return domain.Board{Id: 1, Name: name, UserId: principal}, nil
}

func (m *MockBoardService) ListMine(ctx context.Context, principal domain.UserId) ([]domain.Board, error) {
	if m.MockListMine != nil {
		return m.MockListMine(ctx, principal)
	}
	return []domain.Board{}, nil
}

func (m *MockBoardService) Detail(ctx context.Context, principal domain.UserId, boardId domain.BoardId) (domain.BoardDetail, error) {
	if m.MockDetail != nil {
		return m.MockDetail(ctx, principal, boardId)
	}
	return domain.BoardDetail{Board: domain.Board{Id: boardId, UserId: principal}}, nil
}

func (m *MockBoardService) Update(ctx context.Context, principal domain.UserId, boardId domain.BoardId, name domain.BoardName) (domain.Board, error) {
	if m.MockUpdate != nil {
		return m.MockUpdate(ctx, principal, boardId, name)
	}
	return domain.Board{Id: boardId, Name: name, UserId: principal}, nil
}

func (m *MockBoardService) Delete(ctx context.Context, principal domain.UserId, boardId domain.BoardId) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, principal, boardId)
	}
	return nil
}

type MockSectionService struct {
	MockCreate func(ctx context.Context, principal domain.UserId, boardId domain.BoardId, title domain.SectionTitle) (domain.Section, error)
	MockUpdate func(ctx context.Context, principal domain.UserId, sectionId domain.SectionId, title domain.SectionTitle) (domain.Section, error)
	MockDelete func(ctx context.Context, principal domain.UserId, sectionId domain.SectionId) error
	MockCards  func(ctx context.Context, principal domain.UserId, sectionId domain.SectionId) ([]domain.Card, error)
}

func (m *MockSectionService) Create(ctx context.Context, principal domain.UserId, boardId domain.BoardId, title domain.SectionTitle) (domain.Section, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, principal, boardId, title)
	}
	return domain.Section{Id: 1, Title: title, BoardId: boardId, UserId: principal}, nil
}

func (m *MockSectionService) Update(ctx context.Context, principal domain.UserId, sectionId domain.SectionId, title domain.SectionTitle) (domain.Section, error) {
	if m.MockUpdate != nil {
		return m.MockUpdate(ctx, principal, sectionId, title)
	}
	return domain.Section{Id: sectionId, Title: title, UserId: principal}, nil
}

func (m *MockSectionService) Delete(ctx context.Context, principal domain.UserId, sectionId domain.SectionId) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, principal, sectionId)
	}
	return nil
}

func (m *MockSectionService) Cards(ctx context.Context, principal domain.UserId, sectionId domain.SectionId) ([]domain.Card, error) {
	if m.MockCards != nil {
		return m.MockCards(ctx, principal, sectionId)
	}
	return []domain.Card{}, nil
}

type MockCardService struct {
	MockCreate  func(ctx context.Context, principal domain.UserId, data domain.CardCreationData) (domain.Card, error)
	MockGet     func(ctx context.Context, principal domain.UserId, cardId domain.CardId) (domain.Card, error)
	MockUpdate  func(ctx context.Context, principal domain.UserId, data domain.CardUpdateData) (domain.Card, error)
	MockDelete  func(ctx context.Context, principal domain.UserId, cardId domain.CardId) error
	MockReorder func(ctx context.Context, principal domain.UserId, moves []domain.CardMove) ([]domain.CardMove, error)
}

func (m *MockCardService) Create(ctx context.Context, principal domain.UserId, data domain.CardCreationData) (domain.Card, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ctx, principal, data)
	}
	return domain.Card{Id: 1, SectionId: data.SectionId, Name: data.Name, UserId: principal}, nil
}

func (m *MockCardService) Get(ctx context.Context, principal domain.UserId, cardId domain.CardId) (domain.Card, error) {
	if m.MockGet != nil {
		return m.MockGet(ctx, principal, cardId)
	}
	return domain.Card{Id: cardId, UserId: principal}, nil
}

func (m *MockCardService) Update(ctx context.Context, principal domain.UserId, data domain.CardUpdateData) (domain.Card, error) {
	if m.MockUpdate != nil {
		return m.MockUpdate(ctx, principal, data)
	}
	return domain.Card{Id: data.Id, Name: data.Name, UserId: principal}, nil
}

func (m *MockCardService) Delete(ctx context.Context, principal domain.UserId, cardId domain.CardId) error {
	if m.MockDelete != nil {
		return m.MockDelete(ctx, principal, cardId)
	}
	return nil
}

func (m *MockCardService) Reorder(ctx context.Context, principal domain.UserId, moves []domain.CardMove) ([]domain.CardMove, error) {
	if m.MockReorder != nil {
		return m.MockReorder(ctx, principal, moves)
	}
	return moves, nil
}

type MockFavoriteService struct {
	MockAdd      func(ctx context.Context, principal domain.UserId, boardId domain.BoardId) (domain.Favorite, error)
	MockListMine func(ctx context.Context, principal domain.UserId) ([]domain.Favorite, error)
	MockRemove   func(ctx context.Context, principal domain.UserId, favoriteId domain.FavoriteId) error
}

func (m *MockFavoriteService) Add(ctx context.Context, principal domain.UserId, boardId domain.BoardId) (domain.Favorite, error) {
	if m.MockAdd != nil {
		return m.MockAdd(ctx, principal, boardId)
	}
	return domain.Favorite{Id: 1, UserId: principal, BoardId: boardId}, nil
}

func (m *MockFavoriteService) ListMine(ctx context.Context, principal domain.UserId) ([]domain.Favorite, error) {
	if m.MockListMine != nil {
		return m.MockListMine(ctx, principal)
	}
	return []domain.Favorite{}, nil
}

func (m *MockFavoriteService) Remove(ctx context.Context, principal domain.UserId, favoriteId domain.FavoriteId) error {
	if m.MockRemove != nil {
		return m.MockRemove(ctx, principal, favoriteId)
	}
	return nil
}

type MockHealth struct {
	MockPing func(ctx context.Context) error
}

func (m *MockHealth) Ping(ctx context.Context) error {
	if m.MockPing != nil {
		return m.MockPing(ctx)
	}
	return nil
}

// =========================================================================
// Test router
// =========================================================================

const testUserId domain.UserId = 1

func testConfig() *config.Config {
	return &config.Config{Public: config.Public{JwtTTL: time.Hour, SecureCookies: true}}
}

func newTestHandler() *Handler {
	return New(&MockAuthService{}, &MockBoardService{}, &MockSectionService{}, &MockCardService{}, &MockFavoriteService{}, &MockHealth{}, testConfig())
}

// withUser puts a principal into the context the same way NeedAuth does.
func withUser(id domain.UserId) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), mw.UserClaimsKey, &domain.User{Id: id})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func setupRouter(h *Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/health", h.Health)
	router.Get("/ready", h.Ready)
	router.Post("/v1/auth/signup", h.Signup)
	router.Post("/v1/auth/login", h.Login)
	router.Post("/v1/auth/logout", h.Logout)

	router.Group(func(r chi.Router) {
		r.Use(withUser(testUserId))
		r.Get("/v1/auth/me", h.Me)
		r.Get("/v1/boards/mine", h.GetMyBoards)
		r.Post("/v1/boards", h.CreateBoard)
		r.Get("/v1/boards/{board}", h.GetBoard)
		r.Put("/v1/boards/{board}", h.UpdateBoard)
		r.Delete("/v1/boards/{board}", h.DeleteBoard)
		r.Get("/v1/boards/{board}/sections", h.GetBoardSections)
		r.Post("/v1/boards/{board}/sections", h.CreateSection)
		r.Put("/v1/sections/{section}", h.UpdateSection)
		r.Delete("/v1/sections/{section}", h.DeleteSection)
		r.Get("/v1/sections/{section}/cards", h.GetSectionCards)
		r.Post("/v1/sections/{section}/cards", h.CreateCard)
		r.Put("/v1/cards/reorder", h.ReorderCards)
		r.Get("/v1/cards/{card}", h.GetCard)
		r.Put("/v1/cards/{card}", h.UpdateCard)
		r.Delete("/v1/cards/{card}", h.DeleteCard)
		r.Get("/v1/favorites", h.GetMyFavorites)
		r.Post("/v1/favorites", h.AddFavorite)
		r.Delete("/v1/favorites/{favorite}", h.RemoveFavorite)
	})
	// same handler without a principal
	router.Get("/anon/boards/mine", h.GetMyBoards)
	return router
}

func createRequest(t *testing.T, method, url string, body []byte) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var resp utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp
}
