package mapper

import (
	"weav-api/core/dto"
	"weav-api/core/params"
	notificationDto "weav-api/modules/notification/dto"
	"weav-api/modules/notification/entity"
)

func ToNotificationResponse(n *entity.Notification) notificationDto.NotificationResponse {
	data := map[string]any(n.Data)
	if data == nil {
		data = map[string]any{}
	}
	return notificationDto.NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Data:      data,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func ToPaginatedResponse(rows []entity.Notification, total int, p params.QueryParams) *notificationDto.PaginatedNotificationResponse {
	items := make([]notificationDto.NotificationResponse, 0, len(rows))
	for i := range rows {
		items = append(items, ToNotificationResponse(&rows[i]))
	}
	return dto.NewPagination(items, total, p.PageNumber, p.PageSize)
}
