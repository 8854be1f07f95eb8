package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainReport "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/report"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/dto"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httpresp"
	ucReport "github.com/BruksfildServices01/hotel-housekeeping/internal/usecase/report"
)

// ======================================================
// HANDLER
// ======================================================

type ReportHandler struct {
	list         *ucReport.ListReports
	byRoom       *ucReport.ListReportsByRoom
	get          *ucReport.GetReport
	create       *ucReport.CreateReport
	update       *ucReport.UpdateReport
	remove       *ucReport.DeleteReport
	maxFileBytes int64
	log          *zap.Logger
}

type ReportUseCases struct {
	List   *ucReport.ListReports
	ByRoom *ucReport.ListReportsByRoom
	Get    *ucReport.GetReport
	Create *ucReport.CreateReport
	Update *ucReport.UpdateReport
	Delete *ucReport.DeleteReport
}

func NewReportHandler(uc ReportUseCases, maxFileBytes int64, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		list:         uc.List,
		byRoom:       uc.ByRoom,
		get:          uc.Get,
		create:       uc.Create,
		update:       uc.Update,
		remove:       uc.Delete,
		maxFileBytes: maxFileBytes,
		log:          log,
	}
}

// ======================================================
// READ
// ======================================================

func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.list.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, dto.NewReportViews(reports))
}

func (h *ReportHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	rep, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.NewReportView(rep))
}

func (h *ReportHandler) ListByRoom(c *gin.Context) {
	roomID, ok := parseID(c, "roomId")
	if !ok {
		return
	}

	reports, err := h.byRoom.Execute(c.Request.Context(), roomID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, dto.NewReportViews(reports))
}

// ======================================================
// WRITE (MULTIPART)
// ======================================================

// Create takes title, description, roomId and any number of "images" parts.
func (h *ReportHandler) Create(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		httperr.BadRequest(c, "invalid_multipart", "Expected a multipart form.")
		return
	}

	roomID, err := strconv.ParseUint(c.PostForm("roomId"), 10, 64)
	if err != nil || roomID == 0 {
		httperr.BadRequest(c, "invalid_room_id", "Invalid room.")
		return
	}

	images, err := h.readImages(form.File["images"])
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	rep, err := h.create.Execute(c.Request.Context(), actor, ucReport.CreateReportInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		RoomID:      uint(roomID),
		Images:      images,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.Created(c, dto.NewReportView(rep))
}

// Update replaces title, description and the whole image set.
func (h *ReportHandler) Update(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		httperr.BadRequest(c, "invalid_multipart", "Expected a multipart form.")
		return
	}

	images, err := h.readImages(form.File["images"])
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	rep, err := h.update.Execute(c.Request.Context(), actor, id, ucReport.UpdateReportInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Images:      images,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.NewReportView(rep))
}

func (h *ReportHandler) Delete(c *gin.Context) {
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

// ======================================================
// HELPERS
// ======================================================

func (h *ReportHandler) readImages(headers []*multipart.FileHeader) ([]domainReport.ImageFile, error) {
	files := make([]domainReport.ImageFile, 0, len(headers))

	for _, fh := range headers {
		if h.maxFileBytes > 0 && fh.Size > h.maxFileBytes {
			return nil, httperr.ErrBusiness("image_too_large")
		}

		data, err := readPart(fh)
		if err != nil {
			return nil, err
		}
		if len(data) == 0 {
			continue
		}

		contentType := fh.Header.Get("Content-Type")
		if contentType == "" || contentType == "application/octet-stream" {
			contentType = http.DetectContentType(data)
		}
		if !strings.HasPrefix(contentType, "image/") {
			return nil, httperr.ErrBusiness("invalid_image_type")
		}

		files = append(files, domainReport.ImageFile{
			Name:        fh.Filename,
			ContentType: contentType,
			Data:        data,
		})
	}

	return files, nil
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload %q: %w", fh.Filename, err)
	}
	return data, nil
}
