package models

import "time"

type User struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	Username           string  `gorm:"size:100;not null" json:"username"`
	Email              string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash       string  `gorm:"size:255;not null" json:"-"`
	Role               string  `gorm:"size:20;not null;default:'MAID'" json:"role"`
	Active             bool    `gorm:"not null;default:true" json:"active"`
	FCMToken           *string `gorm:"size:255" json:"-"`
	MustChangePassword bool    `gorm:"not null;default:false" json:"must_change_password"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasPushToken reports whether the user registered a device for notifications.
func (u *User) HasPushToken() bool {
	return u.FCMToken != nil && *u.FCMToken != ""
}
