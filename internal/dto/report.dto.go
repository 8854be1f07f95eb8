package dto

import (
	"time"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

type RoomSummary struct {
	ID     uint   `json:"id"`
	Number string `json:"number"`
	Status string `json:"status"`
}

type ImageView struct {
	ID  uint   `json:"id"`
	URL string `json:"url"`
}

type ReportView struct {
	ID          uint        `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Room        RoomSummary `json:"room"`
	Images      []ImageView `json:"images"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func NewReportView(r *models.Report) ReportView {
	images := make([]ImageView, 0, len(r.Images))
	for _, img := range r.Images {
		images = append(images, ImageView{ID: img.ID, URL: img.URL})
	}

	return ReportView{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Room: RoomSummary{
			ID:     r.Room.ID,
			Number: r.Room.Number,
			Status: r.Room.Status,
		},
		Images:    images,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func NewReportViews(reports []models.Report) []ReportView {
	out := make([]ReportView, 0, len(reports))
	for i := range reports {
		out = append(out, NewReportView(&reports[i]))
	}
	return out
}
