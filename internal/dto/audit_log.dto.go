package dto

import (
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
)

type AuditLogView struct {
	ID        uint            `json:"id"`
	Actor     string          `json:"actor"`
	Action    string          `json:"action"`
	Entity    string          `json:"entity"`
	EntityID  *uint           `json:"entityId"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

func NewAuditLogViews(logs []models.AuditLog) []AuditLogView {
	out := make([]AuditLogView, 0, len(logs))
	for _, l := range logs {
		v := AuditLogView{
			ID:        l.ID,
			Actor:     l.Actor,
			Action:    l.Action,
			Entity:    l.Entity,
			EntityID:  l.EntityID,
			CreatedAt: l.CreatedAt,
		}
		if json.Valid([]byte(l.Metadata)) {
			v.Metadata = json.RawMessage(l.Metadata)
		}
		out = append(out, v)
	}
	return out
}
