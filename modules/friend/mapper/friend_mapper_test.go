package mapper

import (
	"testing"

	"weav-api/modules/friend/dto"
	"weav-api/modules/friend/entity"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name   string
		row    entity.FriendWithUser
		viewer int64
		want   string
	}{
		{name: "accepted as requester", row: entity.FriendWithUser{UserID: 1, FriendID: 2, Status: entity.StatusAccepted}, viewer: 1, want: dto.StatusConfirmed},
		{name: "accepted as receiver", row: entity.FriendWithUser{UserID: 1, FriendID: 2, Status: entity.StatusAccepted}, viewer: 2, want: dto.StatusConfirmed},
		{name: "pending as requester", row: entity.FriendWithUser{UserID: 1, FriendID: 2, Status: entity.StatusPending}, viewer: 1, want: dto.StatusPendingSent},
		{name: "pending as receiver", row: entity.FriendWithUser{UserID: 1, FriendID: 2, Status: entity.StatusPending}, viewer: 2, want: dto.StatusPendingReceived},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(&tt.row, tt.viewer))
		})
	}
}

func TestToFriendResponses(t *testing.T) {
	name := "Bo"
	out := ToFriendResponses([]entity.FriendWithUser{
		{UserID: 1, FriendID: 2, Status: entity.StatusPending, OtherID: 2, OtherEmail: "bo@x.com", OtherFirstName: &name},
	}, 1)

	assert.Len(t, out, 1)
	assert.Equal(t, "2", out[0].ID)
	assert.Equal(t, "bo@x.com", out[0].Email)
	assert.Equal(t, "Bo", *out[0].FirstName)
	assert.Equal(t, dto.StatusPendingSent, out[0].Status)

	assert.NotNil(t, ToFriendResponses(nil, 1))
}
