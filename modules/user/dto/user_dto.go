package dto

import "io"

type ProfileResponse struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	Username       *string `json:"username"`
	ProfilePic     *string `json:"profilePic"`
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	IsVegetarian   bool    `json:"is_vegetarian"`
	IsSpicy        bool    `json:"is_spicy"`
	IsFamily       bool    `json:"is_family"`
	GcalPermission bool    `json:"gcal_permission"`
}

// UpdateProfileRequest is a partial patch; omitted fields keep their value.
type UpdateProfileRequest struct {
	ID             *string `json:"id"`
	FirstName      *string `json:"firstName" validate:"omitempty,max=100"`
	LastName       *string `json:"lastName" validate:"omitempty,max=100"`
	Username       *string `json:"username" validate:"omitempty,min=1,max=50"`
	Email          *string `json:"email" validate:"omitempty,email"`
	IsVegetarian   *bool   `json:"is_vegetarian"`
	IsSpicy        *bool   `json:"is_spicy"`
	IsFamily       *bool   `json:"is_family"`
	GcalPermission *bool   `json:"gcal_permission"`
}

// SyncProfileRequest carries identity-provider fields. The email always comes from the token.
type SyncProfileRequest struct {
	FirstName      *string `json:"firstName" validate:"omitempty,max=100"`
	LastName       *string `json:"lastName" validate:"omitempty,max=100"`
	Username       *string `json:"userName" validate:"omitempty,max=50"`
	ProfilePic     *string `json:"profilePic" validate:"omitempty,url"`
	GcalPermission *bool   `json:"gcal_permission"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type AvatarResponse struct {
	Success    bool   `json:"success"`
	ProfilePic string `json:"profilePic"`
}

// AvatarUpload is the file part of PUT /api/users/avatar.
type AvatarUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
