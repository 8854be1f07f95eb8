package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/dto"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httpresp"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/timezone"
	ucRoom "github.com/BruksfildServices01/hotel-housekeeping/internal/usecase/room"
)

// ======================================================
// HANDLER
// ======================================================

type RoomHandler struct {
	list      *ucRoom.ListRooms
	get       *ucRoom.GetRoom
	byMaid    *ucRoom.ListRoomsByMaid
	create    *ucRoom.CreateRoom
	update    *ucRoom.UpdateRoom
	status    *ucRoom.ChangeRoomStatus
	remove    *ucRoom.DeleteRoom
	cleanTime *ucRoom.SetCleanTime
	timezone  string
	log       *zap.Logger
}

type RoomUseCases struct {
	List      *ucRoom.ListRooms
	Get       *ucRoom.GetRoom
	ByMaid    *ucRoom.ListRoomsByMaid
	Create    *ucRoom.CreateRoom
	Update    *ucRoom.UpdateRoom
	Status    *ucRoom.ChangeRoomStatus
	Delete    *ucRoom.DeleteRoom
	CleanTime *ucRoom.SetCleanTime
}

func NewRoomHandler(uc RoomUseCases, tz string, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		list:      uc.List,
		get:       uc.Get,
		byMaid:    uc.ByMaid,
		create:    uc.Create,
		update:    uc.Update,
		status:    uc.Status,
		remove:    uc.Delete,
		cleanTime: uc.CleanTime,
		timezone:  tz,
		log:       log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RoomRequest struct {
	Number string `json:"number" binding:"required,max=20"`
	Status string `json:"status"`
	MaidID *uint  `json:"maidId"`
}

// ======================================================
// READ
// ======================================================

func (h *RoomHandler) List(c *gin.Context) {
	rooms, err := h.list.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, dto.NewRoomViews(rooms))
}

func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	room, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.NewRoomView(room))
}

func (h *RoomHandler) ListByMaid(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	rooms, err := h.byMaid.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, dto.NewRoomViews(rooms))
}

// ======================================================
// WRITE (ADMIN)
// ======================================================

func (h *RoomHandler) Create(c *gin.Context) {
	actor, ok := requireAdmin(c)
	if !ok {
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	room, err := h.create.Execute(c.Request.Context(), actor, ucRoom.CreateRoomInput{
		Number: req.Number,
		Status: req.Status,
		MaidID: req.MaidID,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.Created(c, dto.NewRoomView(room))
}

func (h *RoomHandler) Update(c *gin.Context) {
	actor, ok := requireAdmin(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	room, err := h.update.Execute(c.Request.Context(), actor, id, ucRoom.UpdateRoomInput{
		Number: req.Number,
		Status: req.Status,
		MaidID: req.MaidID,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.NewRoomView(room))
}

func (h *RoomHandler) Delete(c *gin.Context) {
	actor, ok := requireAdmin(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), actor, id); err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, nil)
}

// SetCleanTime stamps every room. The optional cleanedAt query is read in the
// hotel timezone when it carries no offset.
func (h *RoomHandler) SetCleanTime(c *gin.Context) {
	actor, ok := requireAdmin(c)
	if !ok {
		return
	}

	var at *time.Time
	if raw := c.Query("cleanedAt"); raw != "" {
		t, err := timezone.ParseLocal(raw, h.timezone)
		if err != nil {
			httperr.BadRequest(c, "invalid_datetime", "Invalid date or time.")
			return
		}
		at = &t
	}

	n, err := h.cleanTime.Execute(c.Request.Context(), actor, at)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, gin.H{"updated": n})
}

// ======================================================
// STATUS
// ======================================================

func (h *RoomHandler) ChangeStatus(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	room, err := h.status.Execute(c.Request.Context(), actor, id, c.Param("status"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.NewRoomView(room))
}
