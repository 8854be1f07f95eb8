package models

import "time"

type Report struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"size:500" json:"description"`

	RoomID uint `gorm:"not null;index" json:"room_id"`
	Room   Room `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"room"`

	Images []Image `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Image struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ReportID   uint   `gorm:"not null;index" json:"report_id"`
	URL        string `gorm:"size:500;not null" json:"url"`
	StorageKey string `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
