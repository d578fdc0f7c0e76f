package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mariano/flashdeck/internal/errors"
	"github.com/mariano/flashdeck/internal/models"
	"github.com/mariano/flashdeck/internal/testutil/mocks"
)

func TestDeckService_Create(t *testing.T) {
	decks := new(mocks.MockDeckRepository)
	svc := NewDeckService(decks, new(mocks.MockFlashcardRepository))

	decks.On("Insert", mock.Anything, mock.MatchedBy(func(d models.Deck) bool {
		return d.Name == "Spanish" && len(d.ShareToken) == shareTokenLength
	})).Return(int64(1), nil)
	decks.On("Get", mock.Anything, int64(1)).Return(&models.Deck{ID: 1, UserID: 7, Name: "Spanish"}, nil)

	deck, err := svc.Create(context.Background(), models.Deck{UserID: 7, Name: "Spanish"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deck.ID)
	decks.AssertExpectations(t)
}

func TestDeckService_Create_EmptyName(t *testing.T) {
	svc := NewDeckService(new(mocks.MockDeckRepository), new(mocks.MockFlashcardRepository))

	_, err := svc.Create(context.Background(), models.Deck{UserID: 7, Name: "  "})
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidation, appErr.Code)
}

func TestDeckService_Get_NotFound(t *testing.T) {
	decks := new(mocks.MockDeckRepository)
	svc := NewDeckService(decks, new(mocks.MockFlashcardRepository))

	decks.On("Get", mock.Anything, int64(3)).Return(nil, nil)

	deck, err := svc.Get(context.Background(), 3, 7)
	require.Error(t, err)
	assert.Nil(t, deck)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
}

func TestDeckService_GetByShareToken_NotFound(t *testing.T) {
	decks := new(mocks.MockDeckRepository)
	svc := NewDeckService(decks, new(mocks.MockFlashcardRepository))

	decks.On("GetByShareToken", mock.Anything, "gone").Return(nil, nil)

	deck, err := svc.GetByShareToken(context.Background(), "gone")
	require.Error(t, err)
	assert.Nil(t, deck)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
}

func TestDeckService_AssignCardsByCategories(t *testing.T) {
	decks := new(mocks.MockDeckRepository)
	cards := new(mocks.MockFlashcardRepository)
	svc := NewDeckService(decks, cards)

	decks.On("Get", mock.Anything, int64(3)).Return(&models.Deck{ID: 3, UserID: 7}, nil)
	cards.On("AssignDeckByCategories", mock.Anything, int64(3), int64(7), []string{"Math", "Geo"}).Return(int64(5), nil)

	moved, err := svc.AssignCardsByCategories(context.Background(), 3, 7, []string{"Math", "Geo"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), moved)
}

func TestDeckService_AssignCardsByCategories_NotOwner(t *testing.T) {
	decks := new(mocks.MockDeckRepository)
	svc := NewDeckService(decks, new(mocks.MockFlashcardRepository))

	decks.On("Get", mock.Anything, int64(3)).Return(&models.Deck{ID: 3, UserID: 99}, nil)

	_, err := svc.AssignCardsByCategories(context.Background(), 3, 7, []string{"Math"})
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeForbidden, appErr.Code)
}

func TestDeckService_RemoveCard(t *testing.T) {
	decks := new(mocks.MockDeckRepository)
	cards := new(mocks.MockFlashcardRepository)
	svc := NewDeckService(decks, cards)

	deckID := int64(3)
	decks.On("Get", mock.Anything, deckID).Return(&models.Deck{ID: 3, UserID: 7}, nil)
	cards.On("Get", mock.Anything, int64(10)).Return(&models.Flashcard{ID: 10, UserID: 7, DeckID: &deckID}, nil)
	cards.On("ClearDeck", mock.Anything, int64(10)).Return(nil)

	err := svc.RemoveCard(context.Background(), 3, 10, 7)
	require.NoError(t, err)
	cards.AssertExpectations(t)
}

func TestDeckService_RemoveCard_NotInDeck(t *testing.T) {
	decks := new(mocks.MockDeckRepository)
	cards := new(mocks.MockFlashcardRepository)
	svc := NewDeckService(decks, cards)

	decks.On("Get", mock.Anything, int64(3)).Return(&models.Deck{ID: 3, UserID: 7}, nil)
	cards.On("Get", mock.Anything, int64(10)).Return(&models.Flashcard{ID: 10, UserID: 7}, nil)

	err := svc.RemoveCard(context.Background(), 3, 10, 7)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeBadRequest, appErr.Code)
}
