package services

import (
	"context"
	"strings"

	"github.com/mariano/flashdeck/internal/errors"
	"github.com/mariano/flashdeck/internal/logger"
	"github.com/mariano/flashdeck/internal/models"
	"github.com/mariano/flashdeck/internal/repository"
)

var validPermissions = map[string]bool{"view": true, "edit": true}

var validRoles = map[string]bool{"viewer": true, "editor": true, "owner": true}

// SharingService handles deck sharing, collaborators, comments and ratings
type SharingService interface {
	ShareDeck(ctx context.Context, ownerID int64, share models.DeckShare) (*models.DeckShare, error)
	Unshare(ctx context.Context, ownerID, deckID, userID int64) error
	SharedWithUser(ctx context.Context, userID int64) ([]models.DeckShare, error)

	AddCollaborator(ctx context.Context, ownerID int64, collab models.DeckCollaborator) (*models.DeckCollaborator, error)
	Collaborators(ctx context.Context, userID, deckID int64) ([]models.DeckCollaborator, error)

	AddComment(ctx context.Context, comment models.DeckComment) (*models.DeckComment, error)
	Comments(ctx context.Context, userID, deckID int64) ([]models.DeckComment, error)

	RateDeck(ctx context.Context, rating models.DeckRating) error
	RatingSummary(ctx context.Context, userID, deckID int64) (*models.DeckRatingSummary, error)
}

type sharingService struct {
	sharing repository.SharingRepository
	decks   repository.DeckRepository
	users   repository.UserRepository
}

// NewSharingService creates a new SharingService
func NewSharingService(sharing repository.SharingRepository, decks repository.DeckRepository, users repository.UserRepository) SharingService {
	return &sharingService{sharing: sharing, decks: decks, users: users}
}

func (s *sharingService) ShareDeck(ctx context.Context, ownerID int64, share models.DeckShare) (*models.DeckShare, error) {
	log := logger.FromContext(ctx)

	if !validPermissions[share.Permission] {
		return nil, errors.NewValidationError("permission", "must be view or edit")
	}
	if _, err := s.requireOwner(ctx, share.DeckID, ownerID); err != nil {
		return nil, err
	}
	if share.SharedWithUserID == ownerID {
		return nil, errors.NewBadRequestError("cannot share a deck with yourself")
	}
	target, err := s.users.Get(ctx, share.SharedWithUserID)
	if err != nil {
		log.Error("failed to get user: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if target == nil {
		return nil, errors.NewNotFoundError("user", share.SharedWithUserID)
	}

	id, err := s.sharing.InsertShare(ctx, share)
	if err != nil {
		log.Error("failed to insert share: %v", err)
		return nil, errors.NewInternalError(err)
	}
	share.ID = id
	log.Info("deck %d shared with user %d (%s)", share.DeckID, share.SharedWithUserID, share.Permission)
	return &share, nil
}

func (s *sharingService) Unshare(ctx context.Context, ownerID, deckID, userID int64) error {
	if _, err := s.requireOwner(ctx, deckID, ownerID); err != nil {
		return err
	}
	if err := s.sharing.DeleteShare(ctx, deckID, userID); err != nil {
		logger.FromContext(ctx).Error("failed to delete share: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *sharingService) SharedWithUser(ctx context.Context, userID int64) ([]models.DeckShare, error) {
	shares, err := s.sharing.ListSharedWithUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list shares: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return shares, nil
}

func (s *sharingService) AddCollaborator(ctx context.Context, ownerID int64, collab models.DeckCollaborator) (*models.DeckCollaborator, error) {
	log := logger.FromContext(ctx)

	if !validRoles[collab.Role] {
		return nil, errors.NewValidationError("role", "must be viewer, editor or owner")
	}
	if _, err := s.requireOwner(ctx, collab.DeckID, ownerID); err != nil {
		return nil, err
	}

	id, err := s.sharing.UpsertCollaborator(ctx, collab)
	if err != nil {
		log.Error("failed to upsert collaborator: %v", err)
		return nil, errors.NewInternalError(err)
	}
	collab.ID = id
	return &collab, nil
}

func (s *sharingService) Collaborators(ctx context.Context, userID, deckID int64) ([]models.DeckCollaborator, error) {
	if err := s.requireAccess(ctx, deckID, userID); err != nil {
		return nil, err
	}
	collabs, err := s.sharing.ListCollaborators(ctx, deckID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list collaborators: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return collabs, nil
}

func (s *sharingService) AddComment(ctx context.Context, comment models.DeckComment) (*models.DeckComment, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(comment.Content) == "" {
		return nil, errors.NewValidationError("content", "must not be empty")
	}
	if err := s.requireAccess(ctx, comment.DeckID, comment.UserID); err != nil {
		return nil, err
	}

	id, err := s.sharing.InsertComment(ctx, comment)
	if err != nil {
		log.Error("failed to insert comment: %v", err)
		return nil, errors.NewInternalError(err)
	}
	comment.ID = id
	return &comment, nil
}

func (s *sharingService) Comments(ctx context.Context, userID, deckID int64) ([]models.DeckComment, error) {
	if err := s.requireAccess(ctx, deckID, userID); err != nil {
		return nil, err
	}
	comments, err := s.sharing.ListComments(ctx, deckID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to list comments: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return comments, nil
}

func (s *sharingService) RateDeck(ctx context.Context, rating models.DeckRating) error {
	if rating.Score < 1 || rating.Score > 5 {
		return errors.NewValidationError("score", "must be between 1 and 5")
	}
	if err := s.requireAccess(ctx, rating.DeckID, rating.UserID); err != nil {
		return err
	}
	if _, err := s.sharing.UpsertRating(ctx, rating); err != nil {
		logger.FromContext(ctx).Error("failed to upsert rating: %v", err)
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *sharingService) RatingSummary(ctx context.Context, userID, deckID int64) (*models.DeckRatingSummary, error) {
	if err := s.requireAccess(ctx, deckID, userID); err != nil {
		return nil, err
	}
	summary, err := s.sharing.RatingSummary(ctx, deckID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to get rating summary: %v", err)
		return nil, errors.NewInternalError(err)
	}
	return summary, nil
}

func (s *sharingService) requireOwner(ctx context.Context, deckID, userID int64) (*models.Deck, error) {
	deck, err := s.decks.Get(ctx, deckID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to get deck: %v", err)
		return nil, errors.NewInternalError(err)
	}
	if deck == nil {
		return nil, errors.NewNotFoundError("deck", deckID)
	}
	if deck.UserID != userID {
		return nil, errors.NewForbiddenError("only the deck owner can do this")
	}
	return deck, nil
}

// requireAccess allows the owner, anyone the deck is shared with, and anyone
// at all for public decks.
func (s *sharingService) requireAccess(ctx context.Context, deckID, userID int64) error {
	deck, err := s.decks.Get(ctx, deckID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to get deck: %v", err)
		return errors.NewInternalError(err)
	}
	if deck == nil {
		return errors.NewNotFoundError("deck", deckID)
	}
	if deck.IsPublic || deck.UserID == userID {
		return nil
	}
	share, err := s.sharing.GetShare(ctx, deckID, userID)
	if err != nil {
		logger.FromContext(ctx).Error("failed to get share: %v", err)
		return errors.NewInternalError(err)
	}
	if share == nil {
		return errors.NewForbiddenError("deck is private")
	}
	return nil
}
