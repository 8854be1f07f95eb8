package models

import "time"

type Room struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Number string `gorm:"size:20;uniqueIndex;not null" json:"number"`
	Status string `gorm:"size:20;not null" json:"status"`

	MaidID *uint `gorm:"index" json:"maid_id"`
	Maid   *User `gorm:"foreignKey:MaidID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"maid,omitempty"`

	LastCleanedAt *time.Time `json:"last_cleaned_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
