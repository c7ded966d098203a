package task

import (
	"context"
	"fmt"

	"weav-api/core/constants"
	"weav-api/core/logger"
	"weav-api/core/queue"
	"weav-api/modules/notification/dto"

	"github.com/hibiken/asynq"
)

const TypeDeliver = constants.TaskNotificationDeliver

type DeliverPayload struct {
	UserID  int64          `json:"user_id"`
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Type    string         `json:"type"`
	Data    map[string]any `json:"data,omitempty"`
}

// EnqueueDeliver schedules a notification. Failures are logged and never
// fail the calling request.
func EnqueueDeliver(ctx context.Context, q queue.Enqueuer, p DeliverPayload) {
	if q == nil {
		return
	}
	if err := q.Enqueue(ctx, TypeDeliver, p); err != nil {
		logger.Warn("Notification:EnqueueDeliver", "user_id", p.UserID, "type", p.Type, err)
	}
}

type Creator interface {
	Create(ctx context.Context, req *dto.CreateNotificationRequest) error
}

// DeliverHandler stores notifications produced by other modules.
type DeliverHandler struct {
	notifications Creator
}

func NewDeliverHandler(notifications Creator) *DeliverHandler {
	return &DeliverHandler{notifications: notifications}
}

func (h *DeliverHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var p DeliverPayload
	if err := queue.Decode(t, &p); err != nil {
		return err
	}
	if p.UserID <= 0 || p.Type == "" {
		return fmt.Errorf("invalid notification payload for user %d: %w", p.UserID, asynq.SkipRetry)
	}

	err := h.notifications.Create(ctx, &dto.CreateNotificationRequest{
		UserID:  p.UserID,
		Title:   p.Title,
		Message: p.Message,
		Type:    p.Type,
		Data:    p.Data,
	})
	if err != nil {
		return fmt.Errorf("store notification: %w", err)
	}

	logger.Info("Notification:Deliver:Stored", "user_id", p.UserID, "type", p.Type)
	return nil
}
