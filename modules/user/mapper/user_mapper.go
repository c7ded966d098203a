package mapper

import (
	"weav-api/core/utils"
	"weav-api/modules/user/dto"
	"weav-api/modules/user/entity"
)

func ToProfileResponse(u *entity.User) *dto.ProfileResponse {
	if u == nil {
		return nil
	}
	return &dto.ProfileResponse{
		ID:             utils.ToString(u.ID),
		Email:          u.Email,
		Username:       u.Username,
		ProfilePic:     u.ProfilePic,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		IsVegetarian:   u.IsVegetarian,
		IsSpicy:        u.IsSpicy,
		IsFamily:       u.IsFamily,
		GcalPermission: u.GcalPermission,
	}
}

func ToUserPatch(req *dto.UpdateProfileRequest) entity.UserPatch {
	return entity.UserPatch{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Username:       req.Username,
		Email:          req.Email,
		IsVegetarian:   req.IsVegetarian,
		IsSpicy:        req.IsSpicy,
		IsFamily:       req.IsFamily,
		GcalPermission: req.GcalPermission,
	}
}
