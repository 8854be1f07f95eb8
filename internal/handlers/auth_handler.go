package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/dto"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httperr"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/httpresp"
	ucAuth "github.com/BruksfildServices01/hotel-housekeeping/internal/usecase/auth"
)

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	login          *ucAuth.Login
	register       *ucAuth.Register
	pushToken      *ucAuth.UpdatePushToken
	changePassword *ucAuth.ChangePassword
	log            *zap.Logger
}

func NewAuthHandler(
	login *ucAuth.Login,
	register *ucAuth.Register,
	pushToken *ucAuth.UpdatePushToken,
	changePassword *ucAuth.ChangePassword,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		login:          login,
		register:       register,
		pushToken:      pushToken,
		changePassword: changePassword,
		log:            log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type PushTokenRequest struct {
	Token  string `json:"token"`
	UserID *uint  `json:"userId"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// ======================================================
// LOGIN
// ======================================================

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if httperr.FromError(c, err) {
			return
		}
		h.log.Error("login failed", zap.String("email", req.Email), zap.Error(err))
		httperr.BadRequest(c, "login_failed", "Could not log in.")
		return
	}

	httpresp.OK(c, dto.LoginView{
		Token:     res.Token.Value,
		TokenType: "Bearer",
		ExpiresAt: res.Token.ExpiresAt,
		User:      dto.NewUserView(res.User),
	})
}

// ======================================================
// REGISTER
// ======================================================

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	u, err := h.register.Execute(c.Request.Context(), ucAuth.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, dto.NewUserView(u))
}

// ======================================================
// PUSH TOKEN
// ======================================================

// UpdatePushToken accepts a JSON body or the token and userId query params.
func (h *AuthHandler) UpdatePushToken(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}

	var req PushTokenRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid request.")
			return
		}
	}
	if req.Token == "" {
		req.Token = c.Query("token")
	}
	if req.UserID == nil {
		if raw := c.Query("userId"); raw != "" {
			n, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				httperr.BadRequest(c, "invalid_id", "Invalid identifier.")
				return
			}
			id := uint(n)
			req.UserID = &id
		}
	}

	u, err := h.pushToken.Execute(c.Request.Context(), actor, req.UserID, req.Token)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, dto.NewUserView(u))
}

// ======================================================
// PASSWORD
// ======================================================

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	err := h.changePassword.Execute(c.Request.Context(), actor, req.CurrentPassword, req.NewPassword)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, nil)
}
