package service

import (
	"context"

	"github.com/itchan-dev/kanban/backend/internal/service/utils"
	"github.com/itchan-dev/kanban/shared/domain"
	"github.com/itchan-dev/kanban/shared/errors"
)

// MockAccessStorage mocks the AccessStorage interface.
type MockAccessStorage struct {
	boardFunc   func(ctx context.Context, id domain.BoardId) (domain.Board, error)
	sectionFunc func(ctx context.Context, id domain.SectionId) (domain.Section, error)
	cardFunc    func(ctx context.Context, id domain.CardId) (domain.Card, error)
}

func (m *MockAccessStorage) Board(ctx context.Context, id domain.BoardId) (domain.Board, error) {
	if m.boardFunc != nil {
		return m.boardFunc(ctx, id)
	}
	return domain.Board{}, errors.New(errors.NotFound, "Board not found")
}

func (m *MockAccessStorage) Section(ctx context.Context, id domain.SectionId) (domain.Section, error) {
	if m.sectionFunc != nil {
		return m.sectionFunc(ctx, id)
	}
	return domain.Section{}, errors.New(errors.NotFound, "Section not found")
}

func (m *MockAccessStorage) Card(ctx context.Context, id domain.CardId) (domain.Card, error) {
	if m.cardFunc != nil {
		return m.cardFunc(ctx, id)
	}
	return domain.Card{}, errors.New(errors.NotFound, "Card not found")
}

// ownedTree answers guard lookups for one board (id 1, owner 1) with one
// section (id 10) and one card (id 100).
func ownedTree() *MockAccessStorage {
	return &MockAccessStorage{
		boardFunc: func(_ context.Context, id domain.BoardId) (domain.Board, error) {
			if id != 1 {
				return domain.Board{}, errors.New(errors.NotFound, "Board not found")
			}
			return domain.Board{Id: 1, Name: "Work", UserId: 1}, nil
		},
		sectionFunc: func(_ context.Context, id domain.SectionId) (domain.Section, error) {
			if id != 10 {
				return domain.Section{}, errors.New(errors.NotFound, "Section not found")
			}
			return domain.Section{Id: 10, Title: "Todo", BoardId: 1, UserId: 1}, nil
		},
		cardFunc: func(_ context.Context, id domain.CardId) (domain.Card, error) {
			if id != 100 {
				return domain.Card{}, errors.New(errors.NotFound, "Card not found")
			}
			return domain.Card{Id: 100, Name: "card", SectionId: 10, UserId: 1}, nil
		},
	}
}

// MockOrderingStorage mocks the OrderingStorage interface.
type MockOrderingStorage struct {
	nextCardOrderFunc func(ctx context.Context, sectionId domain.SectionId) (int, error)
	sectionCardsFunc  func(ctx context.Context, sectionId domain.SectionId) ([]domain.Card, error)
	moveCardsFunc     func(ctx context.Context, moves []domain.CardMove, check func([]domain.Card, []domain.Section) error) error
}

func (m *MockOrderingStorage) NextCardOrder(ctx context.Context, sectionId domain.SectionId) (int, error) {
	if m.nextCardOrderFunc != nil {
		return m.nextCardOrderFunc(ctx, sectionId)
	}
	return 0, nil
}

func (m *MockOrderingStorage) SectionCards(ctx context.Context, sectionId domain.SectionId) ([]domain.Card, error) {
	if m.sectionCardsFunc != nil {
		return m.sectionCardsFunc(ctx, sectionId)
	}
	return []domain.Card{}, nil
}

func (m *MockOrderingStorage) MoveCards(ctx context.Context, moves []domain.CardMove, check func([]domain.Card, []domain.Section) error) error {
	if m.moveCardsFunc != nil {
		return m.moveCardsFunc(ctx, moves, check)
	}
	return nil
}

// MockBoardStorage mocks the BoardStorage interface.
type MockBoardStorage struct {
	createBoardFunc  func(ctx context.Context, data domain.BoardCreationData) (domain.Board, error)
	boardsByUserFunc func(ctx context.Context, userId domain.UserId) ([]domain.Board, error)
	boardDetailFunc  func(ctx context.Context, id domain.BoardId) (domain.BoardDetail, error)
	updateBoardFunc  func(ctx context.Context, id domain.BoardId, name domain.BoardName) (domain.Board, error)
	deleteBoardFunc  func(ctx context.Context, id domain.BoardId) error
}

func (m *MockBoardStorage) CreateBoard(ctx context.Context, data domain.BoardCreationData) (domain.Board, error) {
	if m.createBoardFunc != nil {
		return m.createBoardFunc(ctx, data)
	}
	return domain.Board{Id: 1, Name: data.Name, UserId: data.UserId}, nil
}

func (m *MockBoardStorage) BoardsByUser(ctx context.Context, userId domain.UserId) ([]domain.Board, error) {
	if m.boardsByUserFunc != nil {
		return m.boardsByUserFunc(ctx, userId)
	}
	return []domain.Board{}, nil
}

func (m *MockBoardStorage) BoardDetail(ctx context.Context, id domain.BoardId) (domain.BoardDetail, error) {
	if m.boardDetailFunc != nil {
		return m.boardDetailFunc(ctx, id)
	}
	return domain.BoardDetail{Board: domain.Board{Id: id}}, nil
}

func (m *MockBoardStorage) UpdateBoard(ctx context.Context, id domain.BoardId, name domain.BoardName) (domain.Board, error) {
	if m.updateBoardFunc != nil {
		return m.updateBoardFunc(ctx, id, name)
	}
	return domain.Board{Id: id, Name: name}, nil
}

func (m *MockBoardStorage) DeleteBoard(ctx context.Context, id domain.BoardId) error {
	if m.deleteBoardFunc != nil {
		return m.deleteBoardFunc(ctx, id)
	}
	return nil
}

// MockSectionStorage mocks the SectionStorage interface.
type MockSectionStorage struct {
	createSectionFunc func(ctx context.Context, data domain.SectionCreationData) (domain.Section, error)
	updateSectionFunc func(ctx context.Context, id domain.SectionId, title domain.SectionTitle) (domain.Section, error)
	deleteSectionFunc func(ctx context.Context, id domain.SectionId) error
}

func (m *MockSectionStorage) CreateSection(ctx context.Context, data domain.SectionCreationData) (domain.Section, error) {
	if m.createSectionFunc != nil {
		return m.createSectionFunc(ctx, data)
	}
	return domain.Section{Id: 10, Title: data.Title, BoardId: data.BoardId}, nil
}

func (m *MockSectionStorage) UpdateSection(ctx context.Context, id domain.SectionId, title domain.SectionTitle) (domain.Section, error) {
	if m.updateSectionFunc != nil {
		return m.updateSectionFunc(ctx, id, title)
	}
	return domain.Section{Id: id, Title: title}, nil
}

func (m *MockSectionStorage) DeleteSection(ctx context.Context, id domain.SectionId) error {
	if m.deleteSectionFunc != nil {
		return m.deleteSectionFunc(ctx, id)
	}
	return nil
}

// MockCardStorage mocks the CardStorage interface.
type MockCardStorage struct {
	createCardFunc func(ctx context.Context, data domain.CardCreationData) (domain.Card, error)
	updateCardFunc func(ctx context.Context, data domain.CardUpdateData) (domain.Card, error)
	deleteCardFunc func(ctx context.Context, id domain.CardId) error
}

func (m *MockCardStorage) CreateCard(ctx context.Context, data domain.CardCreationData) (domain.Card, error) {
	if m.createCardFunc != nil {
		return m.createCardFunc(ctx, data)
	}
	card := domain.Card{Id: 100, SectionId: data.SectionId, Name: data.Name, Description: data.Description, Labels: data.Labels}
	if data.Order != nil {
		card.Order = *data.Order
	}
	return card, nil
}

func (m *MockCardStorage) UpdateCard(ctx context.Context, data domain.CardUpdateData) (domain.Card, error) {
	if m.updateCardFunc != nil {
		return m.updateCardFunc(ctx, data)
	}
	return domain.Card{Id: data.Id, Name: data.Name, Description: data.Description, Labels: data.Labels}, nil
}

func (m *MockCardStorage) DeleteCard(ctx context.Context, id domain.CardId) error {
	if m.deleteCardFunc != nil {
		return m.deleteCardFunc(ctx, id)
	}
	return nil
}

// MockFavoriteStorage mocks the FavoriteStorage interface.
type MockFavoriteStorage struct {
	addFavoriteFunc     func(ctx context.Context, userId domain.UserId, boardId domain.BoardId) (domain.Favorite, error)
	favoriteFunc        func(ctx context.Context, id domain.FavoriteId) (domain.Favorite, error)
	favoritesByUserFunc func(ctx context.Context, userId domain.UserId) ([]domain.Favorite, error)
	deleteFavoriteFunc  func(ctx context.Context, id domain.FavoriteId) error
}

func (m *MockFavoriteStorage) AddFavorite(ctx context.Context, userId domain.UserId, boardId domain.BoardId) (domain.Favorite, error) {
	if m.addFavoriteFunc != nil {
		return m.addFavoriteFunc(ctx, userId, boardId)
	}
	return domain.Favorite{Id: 1000, UserId: userId, BoardId: boardId}, nil
}

func (m *MockFavoriteStorage) Favorite(ctx context.Context, id domain.FavoriteId) (domain.Favorite, error) {
	if m.favoriteFunc != nil {
		return m.favoriteFunc(ctx, id)
	}
	return domain.Favorite{}, errors.New(errors.NotFound, "Favorite not found")
}

func (m *MockFavoriteStorage) FavoritesByUser(ctx context.Context, userId domain.UserId) ([]domain.Favorite, error) {
	if m.favoritesByUserFunc != nil {
		return m.favoritesByUserFunc(ctx, userId)
	}
	return []domain.Favorite{}, nil
}

func (m *MockFavoriteStorage) DeleteFavorite(ctx context.Context, id domain.FavoriteId) error {
	if m.deleteFavoriteFunc != nil {
		return m.deleteFavoriteFunc(ctx, id)
	}
	return nil
}

// MockAuthStorage mocks the AuthStorage interface.
type MockAuthStorage struct {
	saveUserFunc    func(ctx context.Context, user domain.User) (domain.UserId, error)
	userFunc        func(ctx context.Context, id domain.UserId) (domain.User, error)
	userByEmailFunc func(ctx context.Context, email domain.Email) (domain.User, error)
}

func (m *MockAuthStorage) SaveUser(ctx context.Context, user domain.User) (domain.UserId, error) {
	if m.saveUserFunc != nil {
		return m.saveUserFunc(ctx, user)
	}
	return 1, nil
}

func (m *MockAuthStorage) User(ctx context.Context, id domain.UserId) (domain.User, error) {
	if m.userFunc != nil {
		return m.userFunc(ctx, id)
	}
	return domain.User{Id: id}, nil
}

func (m *MockAuthStorage) UserByEmail(ctx context.Context, email domain.Email) (domain.User, error) {
	if m.userByEmailFunc != nil {
		return m.userByEmailFunc(ctx, email)
	}
	return domain.User{}, errors.New(errors.NotFound, "User not found")
}

// MockJwt mocks the Jwt interface.
type MockJwt struct {
	newTokenFunc func(user domain.User) (string, error)
}

func (m *MockJwt) NewToken(user domain.User) (string, error) {
	if m.newTokenFunc != nil {
		return m.newTokenFunc(user)
	}
	return "token", nil
}

var tp = utils.NewTextProcessor()

func intPtr(i int) *int {
	return &i
}

func strPtr(s string) *string {
	return &s
}
