package service

import (
	"context"
	"strings"

	"weav-api/core/constants"
	"weav-api/core/database"
	"weav-api/core/errors"
	"weav-api/core/logger"
	"weav-api/core/queue"
	"weav-api/modules/friend/dto"
	"weav-api/modules/friend/mapper"
	"weav-api/modules/friend/repository"
	"weav-api/modules/notification/task"
)

type FriendServiceInterface interface {
	AddFriend(ctx context.Context, requesterID int64, targetEmail string) *errors.AppError
	AcceptFriend(ctx context.Context, userID, requesterID int64) *errors.AppError
	ListFriends(ctx context.Context, userID int64) ([]dto.FriendResponse, *errors.AppError)
}

type FriendService struct {
	repo  repository.FriendRepositoryInterface
	queue queue.Enqueuer
}

func NewFriendService(repo repository.FriendRepositoryInterface, q queue.Enqueuer) FriendServiceInterface {
	return &FriendService{repo: repo, queue: q}
}

// AddFriend creates a pending request from requesterID to the user owning targetEmail.
func (s *FriendService) AddFriend(ctx context.Context, requesterID int64, targetEmail string) *errors.AppError {
	targetEmail = strings.ToLower(strings.TrimSpace(targetEmail))

	targetID, err := s.repo.FindUserIDByEmail(ctx, targetEmail)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to add friend connection", err)
	}
	if targetID == nil {
		return errors.NewAppError(errors.ErrNotFound, "Target user not found", nil)
	}
	if *targetID == requesterID {
		return errors.NewAppError(errors.ErrInvalidInput, "Cannot add yourself as a friend", nil)
	}

	existing, err := s.repo.GetBetween(ctx, requesterID, *targetID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to add friend connection", err)
	}
	if existing != nil {
		return errors.NewAppError(errors.ErrAlreadyExists, "Friend request already exists", nil)
	}

	if _, err := s.repo.Create(ctx, requesterID, *targetID); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return errors.NewAppError(errors.ErrAlreadyExists, "Friend request already exists", err)
		}
		return errors.NewAppError(errors.ErrInternalServer, "Failed to add friend connection", err)
	}

	logger.Info("FriendService:AddFriend:Created", "user_id", requesterID, "friend_id", *targetID)
	task.EnqueueDeliver(ctx, s.queue, task.DeliverPayload{
		UserID:  *targetID,
		Title:   "New friend request",
		Message: "You have a new friend request",
		Type:    constants.NotificationTypeFriendRequest,
		Data:    map[string]any{"from_user_id": requesterID},
	})
	return nil
}

// AcceptFriend accepts the pending request requesterID sent to userID.
func (s *FriendService) AcceptFriend(ctx context.Context, userID, requesterID int64) *errors.AppError {
	ok, err := s.repo.Accept(ctx, userID, requesterID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to accept friend request", err)
	}
	if !ok {
		return errors.NewAppError(errors.ErrNotFound, "Friend request not found", nil)
	}

	task.EnqueueDeliver(ctx, s.queue, task.DeliverPayload{
		UserID:  requesterID,
		Title:   "Friend request accepted",
		Message: "Your friend request was accepted",
		Type:    constants.NotificationTypeFriendAccepted,
		Data:    map[string]any{"friend_id": userID},
	})
	return nil
}

func (s *FriendService) ListFriends(ctx context.Context, userID int64) ([]dto.FriendResponse, *errors.AppError) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to fetch friends", err)
	}
	return mapper.ToFriendResponses(rows, userID), nil
}
