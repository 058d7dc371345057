package service

import (
	"context"
	"errors"
	"strings"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/a2sh3r/bono/internal/logger"
	"github.com/a2sh3r/bono/internal/models"
	"github.com/a2sh3r/bono/internal/repository"
	"github.com/a2sh3r/bono/internal/utils"
	"go.uber.org/zap"
)

const supportLinkAttempts = 5

type UserService interface {
	GetOrCreateUser(ctx context.Context, externalID string, profile models.Profile) (*models.User, error)
	GetUser(ctx context.Context, userID int64) (*models.User, *models.Creator, error)
	CreateCreator(ctx context.Context, creator models.NewCreator) (*models.Creator, error)
	UpdateCreator(ctx context.Context, creatorID int64, update models.CreatorUpdate) (*models.Creator, error)
	IsHandleAvailable(ctx context.Context, handle string) (bool, error)
	GetCreatorBySupportLink(ctx context.Context, linkID string) (*models.PublicCreator, error)
	LookupCreator(ctx context.Context, identifier string) (*models.PublicCreator, error)
	GetCreatorByUser(ctx context.Context, userID int64) (*models.Creator, error)
	ListSupporters(ctx context.Context, creatorID int64) ([]models.Supporter, error)
}

type userService struct {
	users      repository.UserRepository
	creators   repository.CreatorRepository
	supporters repository.SupporterRepository
	newLinkID  func() (string, error)
}

func NewUserService(users repository.UserRepository, creators repository.CreatorRepository, supporters repository.SupporterRepository) UserService {
	return &userService{
		users:      users,
		creators:   creators,
		supporters: supporters,
		newLinkID:  utils.NewSupportLinkID,
	}
}

func (s *userService) GetOrCreateUser(ctx context.Context, externalID string, profile models.Profile) (*models.User, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, apperrors.ErrInvalidRequest
	}
	return s.users.UpsertUser(ctx, externalID, profile)
}

// GetUser returns the user and, when the user has one, their creator profile.
func (s *userService) GetUser(ctx context.Context, userID int64) (*models.User, *models.Creator, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	creator, err := s.creators.GetCreatorByUserID(ctx, userID)
	if errors.Is(err, apperrors.ErrCreatorNotFound) {
		return user, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}
	return user, creator, nil
}

func (s *userService) CreateCreator(ctx context.Context, nc models.NewCreator) (*models.Creator, error) {
	nc.Handle = utils.NormalizeHandle(nc.Handle)
	nc.DisplayName = strings.TrimSpace(nc.DisplayName)
	nc.Bio = strings.TrimSpace(nc.Bio)
	if nc.UserID <= 0 || !utils.IsValidHandle(nc.Handle) || nc.DisplayName == "" {
		return nil, apperrors.ErrInvalidRequest
	}

	for attempt := 1; ; attempt++ {
		linkID, err := s.newLinkID()
		if err != nil {
			return nil, err
		}
		creator, err := s.creators.CreateCreator(ctx, nc, linkID)
		if errors.Is(err, repository.ErrSupportLinkTaken) && attempt < supportLinkAttempts {
			logger.Log.Warn("support link collision, retrying", zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			return nil, err
		}
		logger.Log.Info("creator profile created",
			zap.Int64("creator_id", creator.ID),
			zap.Int64("user_id", creator.UserID),
			zap.String("handle", creator.Handle))
		return creator, nil
	}
}

func (s *userService) UpdateCreator(ctx context.Context, creatorID int64, update models.CreatorUpdate) (*models.Creator, error) {
	if update.DisplayName != nil {
		name := strings.TrimSpace(*update.DisplayName)
		if name == "" {
			return nil, apperrors.ErrInvalidRequest
		}
		update.DisplayName = &name
	}
	return s.creators.UpdateCreatorProfile(ctx, creatorID, update)
}

func (s *userService) IsHandleAvailable(ctx context.Context, handle string) (bool, error) {
	handle = utils.NormalizeHandle(handle)
	if !utils.IsValidHandle(handle) {
		return false, apperrors.ErrInvalidRequest
	}
	_, err := s.creators.GetCreatorByHandle(ctx, handle)
	if errors.Is(err, apperrors.ErrCreatorNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

func (s *userService) GetCreatorBySupportLink(ctx context.Context, linkID string) (*models.PublicCreator, error) {
	creator, err := s.creators.GetCreatorBySupportLink(ctx, strings.TrimSpace(linkID))
	if err != nil {
		return nil, err
	}
	public := creator.Public()
	return &public, nil
}

// LookupCreator resolves a pasted support URL, a bare support link id or a
// handle (with or without the leading @).
func (s *userService) LookupCreator(ctx context.Context, identifier string) (*models.PublicCreator, error) {
	input := strings.TrimSpace(identifier)
	if input == "" {
		return nil, apperrors.ErrInvalidRequest
	}

	if strings.Contains(input, "/support/") || len(input) > 20 {
		parts := strings.Split(strings.TrimRight(input, "/"), "/")
		public, err := s.GetCreatorBySupportLink(ctx, parts[len(parts)-1])
		if err == nil {
			return public, nil
		}
		if !errors.Is(err, apperrors.ErrCreatorNotFound) {
			return nil, err
		}
	}

	creator, err := s.creators.GetCreatorByHandle(ctx, utils.NormalizeHandle(input))
	if err != nil {
		return nil, err
	}
	if !creator.IsActive {
		return nil, apperrors.ErrCreatorNotFound
	}
	public := creator.Public()
	return &public, nil
}

func (s *userService) GetCreatorByUser(ctx context.Context, userID int64) (*models.Creator, error) {
	return s.creators.GetCreatorByUserID(ctx, userID)
}

func (s *userService) ListSupporters(ctx context.Context, creatorID int64) ([]models.Supporter, error) {
	if _, err := s.creators.GetCreatorByID(ctx, creatorID); err != nil {
		return nil, err
	}
	return s.supporters.GetSupporters(ctx, creatorID)
}
