package dto

import (
	"time"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

type MaidSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type RoomView struct {
	ID            uint         `json:"id"`
	Number        string       `json:"number"`
	Status        string       `json:"status"`
	Maid          *MaidSummary `json:"maid"`
	LastCleanedAt *time.Time   `json:"lastCleanedAt"`
}

func NewRoomView(r *models.Room) RoomView {
	v := RoomView{
		ID:            r.ID,
		Number:        r.Number,
		Status:        r.Status,
		LastCleanedAt: r.LastCleanedAt,
	}
	if r.Maid != nil {
		v.Maid = &MaidSummary{ID: r.Maid.ID, Username: r.Maid.Username, Email: r.Maid.Email}
	}
	return v
}

func NewRoomViews(rooms []models.Room) []RoomView {
	out := make([]RoomView, 0, len(rooms))
	for i := range rooms {
		out = append(out, NewRoomView(&rooms[i]))
	}
	return out
}
