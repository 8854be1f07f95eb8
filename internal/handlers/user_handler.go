package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/dto"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httpresp"
	ucUser "github.com/BruksfildServices01/hotel-housekeeping/internal/usecase/user"
)

type UserHandler struct {
	list   *ucUser.ListUsers
	get    *ucUser.GetUser
	create *ucUser.CreateStaff
	update *ucUser.UpdateUser
	toggle *ucUser.ToggleUserStatus
	log    *zap.Logger
}

func NewUserHandler(
	list *ucUser.ListUsers,
	get *ucUser.GetUser,
	create *ucUser.CreateStaff,
	update *ucUser.UpdateUser,
	toggle *ucUser.ToggleUserStatus,
	log *zap.Logger,
) *UserHandler {
	return &UserHandler{
		list:   list,
		get:    get,
		create: create,
		update: update,
		toggle: toggle,
		log:    log,
	}
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role"`
}

type UpdateUserRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Role     string `json:"role" binding:"required"`
}

func (h *UserHandler) List(c *gin.Context) {
	if _, ok := requireAdmin(c); !ok {
		return
	}

	users, err := h.list.Execute(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, dto.NewUserViews(users))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	u, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.NewUserView(u))
}

func (h *UserHandler) GetByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.BadRequest(c, "email_required", "Email is required.")
		return
	}

	u, err := h.get.ByEmail(c.Request.Context(), email)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.NewUserView(u))
}

func (h *UserHandler) Create(c *gin.Context) {
	actor, ok := requireAdmin(c)
	if !ok {
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	u, err := h.create.Execute(c.Request.Context(), actor, ucUser.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.Created(c, dto.NewUserView(u))
}

func (h *UserHandler) Update(c *gin.Context) {
	actor, ok := requireAdmin(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	u, err := h.update.Execute(c.Request.Context(), actor, id, ucUser.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.NewUserView(u))
}

// ToggleStatus flips the active flag. Deactivating a user unassigns every room it holds.
func (h *UserHandler) ToggleStatus(c *gin.Context) {
	actor, ok := requireAdmin(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	u, err := h.toggle.Execute(c.Request.Context(), actor, id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.OK(c, dto.NewUserView(u))
}
