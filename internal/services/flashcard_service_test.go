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

func TestFlashcardService_Get(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	svc := NewFlashcardService(cards)

	cards.On("Get", mock.Anything, int64(10)).Return(&models.Flashcard{ID: 10, UserID: 7, Question: "2+2"}, nil)

	card, err := svc.Get(context.Background(), 10, 7)
	require.NoError(t, err)
	assert.Equal(t, "2+2", card.Question)
}

func TestFlashcardService_Get_NotFound(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	svc := NewFlashcardService(cards)

	cards.On("Get", mock.Anything, int64(10)).Return(nil, nil)

	card, err := svc.Get(context.Background(), 10, 7)
	require.Error(t, err)
	assert.Nil(t, card)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
	assert.Equal(t, 404, appErr.Status)
}

func TestFlashcardService_Get_WrongUser(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	svc := NewFlashcardService(cards)

	cards.On("Get", mock.Anything, int64(10)).Return(&models.Flashcard{ID: 10, UserID: 99}, nil)

	_, err := svc.Get(context.Background(), 10, 7)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeForbidden, appErr.Code)
}

func TestFlashcardService_Delete_NotFound(t *testing.T) {
	cards := new(mocks.MockFlashcardRepository)
	svc := NewFlashcardService(cards)

	cards.On("Get", mock.Anything, int64(10)).Return(nil, nil)

	err := svc.Delete(context.Background(), 10, 7)
	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
	cards.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
