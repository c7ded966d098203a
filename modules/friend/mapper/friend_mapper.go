package mapper

import (
	"weav-api/core/utils"
	"weav-api/modules/friend/dto"
	"weav-api/modules/friend/entity"
)

// DeriveStatus labels an edge from the point of view of viewerID.
func DeriveStatus(f *entity.FriendWithUser, viewerID int64) string {
	if f.Status == entity.StatusAccepted {
		return dto.StatusConfirmed
	}
	if f.UserID == viewerID {
		return dto.StatusPendingSent
	}
	return dto.StatusPendingReceived
}

func ToFriendResponses(rows []entity.FriendWithUser, viewerID int64) []dto.FriendResponse {
	out := make([]dto.FriendResponse, 0, len(rows))
	for i := range rows {
		f := &rows[i]
		out = append(out, dto.FriendResponse{
			ID:         utils.ToString(f.OtherID),
			FirstName:  f.OtherFirstName,
			LastName:   f.OtherLastName,
			Username:   f.OtherUsername,
			Email:      f.OtherEmail,
			ProfilePic: f.OtherProfilePic,
			Status:     DeriveStatus(f, viewerID),
		})
	}
	return out
}
