package service

import (
	"context"
	"strings"
	"time"

	"weav-api/core/constants"
	"weav-api/core/database"
	"weav-api/core/errors"
	"weav-api/core/logger"
	"weav-api/core/storage"
	"weav-api/core/utils"
	"weav-api/modules/user/dto"
	"weav-api/modules/user/entity"
	"weav-api/modules/user/mapper"
	"weav-api/modules/user/repository"
)

// ProfileCache is the part of core/cache the profile reads use.
type ProfileCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type UserService struct {
	repo    repository.UserRepositoryInterface
	cache   ProfileCache
	storage storage.Storage
}

type UserServiceInterface interface {
	GetProfileByEmail(ctx context.Context, email string) (*dto.ProfileResponse, *errors.AppError)
	GetProfileByID(ctx context.Context, id int64) (*dto.ProfileResponse, *errors.AppError)
	UpdateProfile(ctx context.Context, callerID int64, req *dto.UpdateProfileRequest) *errors.AppError
	SyncProfile(ctx context.Context, email string, req *dto.SyncProfileRequest) (*dto.ProfileResponse, *errors.AppError)
	UploadAvatar(ctx context.Context, userID int64, file *dto.AvatarUpload) (*dto.AvatarResponse, *errors.AppError)
}

// NewUserService accepts a nil cache or storage; the related features are then disabled.
func NewUserService(repo repository.UserRepositoryInterface, cache ProfileCache, store storage.Storage) UserServiceInterface {
	return &UserService{repo: repo, cache: cache, storage: store}
}

func profileKey(id int64) string {
	return constants.RedisKeyUserProfile + utils.ToString(id)
}

func (s *UserService) GetProfileByEmail(ctx context.Context, email string) (*dto.ProfileResponse, *errors.AppError) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to fetch user profile by email", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User profile not found", nil)
	}
	return mapper.ToProfileResponse(user), nil
}

func (s *UserService) GetProfileByID(ctx context.Context, id int64) (*dto.ProfileResponse, *errors.AppError) {
	if s.cache != nil {
		var cached dto.ProfileResponse
		found, err := s.cache.GetJSON(ctx, profileKey(id), &cached)
		if err != nil {
			logger.Warn("UserService:GetProfileByID:CacheGet", "id", id, err)
		} else if found {
			return &cached, nil
		}
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to fetch user profile", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User profile not found", nil)
	}

	profile := mapper.ToProfileResponse(user)
	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, profileKey(id), profile, constants.UserProfileTTL); err != nil {
			logger.Warn("UserService:GetProfileByID:CacheSet", "id", id, err)
		}
	}
	return profile, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, callerID int64, req *dto.UpdateProfileRequest) *errors.AppError {
	if req.ID != nil && strings.TrimSpace(*req.ID) != utils.ToString(callerID) {
		return errors.NewAppError(errors.ErrForbidden, "Cannot update another user's profile", nil)
	}

	patch := mapper.ToUserPatch(req)
	if patch.IsEmpty() {
		return errors.NewAppError(errors.ErrInvalidInput, "No fields to update", nil)
	}

	user, err := s.repo.Update(ctx, callerID, patch)
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return errors.NewAppError(errors.ErrAlreadyExists, "Email already in use", err)
		}
		return errors.NewAppError(errors.ErrInternalServer, "Failed to update user", err)
	}
	if user == nil {
		return errors.NewAppError(errors.ErrNotFound, "User profile not found", nil)
	}

	s.invalidate(ctx, callerID)
	logger.Info("UserService:UpdateProfile:Updated", "user_id", callerID)
	return nil
}

func (s *UserService) SyncProfile(ctx context.Context, email string, req *dto.SyncProfileRequest) (*dto.ProfileResponse, *errors.AppError) {
	if email == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "User has no primary email address", nil)
	}

	user := &entity.User{
		Email:      email,
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		ProfilePic: req.ProfilePic,
	}
	if req.GcalPermission != nil {
		user.GcalPermission = *req.GcalPermission
	}

	saved, err := s.repo.UpsertByEmail(ctx, user)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to sync user profile", err)
	}

	s.invalidate(ctx, saved.ID)
	return mapper.ToProfileResponse(saved), nil
}

func (s *UserService) UploadAvatar(ctx context.Context, userID int64, file *dto.AvatarUpload) (*dto.AvatarResponse, *errors.AppError) {
	if s.storage == nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Avatar storage not configured", nil)
	}
	if !strings.HasPrefix(file.ContentType, "image/") {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Avatar must be an image", nil)
	}
	if file.Size <= 0 || file.Size > constants.MaxAvatarSize {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Avatar must be between 1 byte and 5 MiB", nil)
	}

	key := utils.ObjectKey("avatars", userID, file.Filename)
	url, err := s.storage.Upload(ctx, key, file.Body, file.Size, file.ContentType)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrExternalService, "Failed to upload avatar", err)
	}

	if err := s.repo.UpdateProfilePic(ctx, userID, url); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update user", err)
	}

	s.invalidate(ctx, userID)
	return &dto.AvatarResponse{Success: true, ProfilePic: url}, nil
}

func (s *UserService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, profileKey(id)); err != nil {
		logger.Warn("UserService:Invalidate", "id", id, err)
	}
}
