package entity

import "weav-api/core/entity"

type User struct {
	Email          string  `db:"email"`
	Username       *string `db:"username"`
	FirstName      *string `db:"first_name"`
	LastName       *string `db:"last_name"`
	ProfilePic     *string `db:"profile_pic"`
	IsVegetarian   bool    `db:"is_vegetarian"`
	IsSpicy        bool    `db:"is_spicy"`
	IsFamily       bool    `db:"is_family"`
	GcalPermission bool    `db:"gcal_permission"`
	entity.BaseEntity
}

// UserPatch holds the columns of a partial update. Nil fields are left untouched.
type UserPatch struct {
	FirstName      *string
	LastName       *string
	Username       *string
	Email          *string
	IsVegetarian   *bool
	IsSpicy        *bool
	IsFamily       *bool
	GcalPermission *bool
}

func (p UserPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Username == nil && p.Email == nil &&
		p.IsVegetarian == nil && p.IsSpicy == nil && p.IsFamily == nil && p.GcalPermission == nil
}
