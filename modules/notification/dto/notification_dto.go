package dto

import (
	"time"

	coreDto "weav-api/core/dto"
)

type NotificationResponse struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	IsRead    bool           `json:"is_read"`
	CreatedAt time.Time      `json:"created_at"`
}

type PaginatedNotificationResponse = coreDto.Pagination[NotificationResponse]

type MarkAsReadRequest struct {
	IDs []int64 `json:"ids" validate:"required,min=1"`
}

type CreateNotificationRequest struct {
	UserID  int64          `json:"user_id"`
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Type    string         `json:"type"`
	Data    map[string]any `json:"data"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
