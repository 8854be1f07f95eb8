package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/dto"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httpresp"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db       *gorm.DB
	timezone string
	log      *zap.Logger
}

func NewAuditLogsHandler(db *gorm.DB, tz string, log *zap.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, timezone: tz, log: log}
}

// List pages through the audit trail, newest first. Filters: action, entity,
// actor, and from/to as yyyy-mm-dd in the hotel timezone.
func (h *AuditLogsHandler) List(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if actor := c.Query("actor"); actor != "" {
		q = q.Where("actor = ?", actor)
	}

	loc := timezone.Location(h.timezone)
	if fromStr := c.Query("from"); fromStr != "" {
		if from, err := time.ParseInLocation("2006-01-02", fromStr, loc); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}
	if toStr := c.Query("to"); toStr != "" {
		if to, err := time.ParseInLocation("2006-01-02", toStr, loc); err == nil {
			q = q.Where("created_at < ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		h.log.Error("count audit logs", zap.Error(err))
		httperr.Internal(c, "audit_count_failed", "Could not count audit logs.")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		h.log.Error("list audit logs", zap.Error(err))
		httperr.Internal(c, "audit_list_failed", "Could not list audit logs.")
		return
	}

	httpresp.Paged(c, dto.NewAuditLogViews(logs), page, limit, total)
}
