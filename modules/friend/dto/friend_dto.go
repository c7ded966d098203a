package dto

const (
	StatusConfirmed       = "confirmed"
	StatusPendingSent     = "pending_sent"
	StatusPendingReceived = "pending_received"
)

type FriendResponse struct {
	ID         string  `json:"id"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Username   *string `json:"username"`
	Email      string  `json:"email"`
	ProfilePic *string `json:"profilePic"`
	Status     string  `json:"status"`
}

type AddFriendRequest struct {
	TargetEmail string `json:"targetEmail" validate:"required,email"`
}

type AcceptFriendRequest struct {
	FriendID string `json:"friendId" validate:"required"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
