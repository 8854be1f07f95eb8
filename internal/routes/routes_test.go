package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/hotel-housekeeping/internal/auth"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/config"
	domainUser "github.com/BruksfildServices01/hotel-housekeeping/internal/domain/user"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/models"
	"github.com/BruksfildServices01/hotel-housekeeping/internal/testutil"
)

type envelope struct {
	Message   string          `json:"message"`
	Status    string          `json:"status"`
	ErrorCode string          `json:"error_code"`
	Data      json.RawMessage `json:"data"`
}

type app struct {
	t      *testing.T
	db     *gorm.DB
	engine *gin.Engine
	tokens *auth.TokenService
	store  *testutil.ImageStore
	push   *testutil.PushSender
	audit  *testutil.AuditRecorder
}

func newApp(t *testing.T) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	cfg := &config.Config{
		App: config.AppConfig{
			Env:         "test",
			Timezone:    "America/Mexico_City",
			CORSOrigins: []string{"*"},
		},
		Auth:    config.AuthConfig{JWTSecret: "0123456789abcdef0123456789abcdef", TokenTTL: time.Hour, BcryptCost: 4},
		Storage: config.StorageConfig{Driver: "disk", MaxFileBytes: 1 << 20},
	}

	a := &app{
		t:      t,
		db:     db,
		engine: gin.New(),
		tokens: auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		store:  &testutil.ImageStore{},
		push:   &testutil.PushSender{},
		audit:  &testutil.AuditRecorder{},
	}

	require.NoError(t, RegisterRoutes(a.engine, Deps{
		DB:     db,
		Config: cfg,
		Log:    zap.NewNop(),
		Tokens: a.tokens,
		Hasher: auth.NewPasswordHasher(cfg.Auth.BcryptCost),
		Store:  a.store,
		Push:   a.push,
		Audit:  a.audit,
	}))
	return a
}

func (a *app) tokenFor(u *models.User) string {
	a.t.Helper()
	tok, err := a.tokens.Issue(u.Email, domainUser.Role(u.Role))
	require.NoError(a.t, err)
	return tok.Value
}

func (a *app) send(req *http.Request, token string) (int, envelope) {
	a.t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func (a *app) call(method, path, token string, body any) (int, envelope) {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return a.send(req, token)
}

func multipartBody(t *testing.T, fields map[string]string, images ...string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, name := range images {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="images"; filename="%s"`, name))
		h.Set("Content-Type", "image/jpeg")
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write([]byte("jpeg-bytes-" + name))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

// ======================================================
// AUTH
// ======================================================

func TestLoginRoundTrip(t *testing.T) {
	a := newApp(t)
	testutil.CreateUser(t, a.db, "cafa@hotel.mx", "ADMIN")

	code, env := a.call(http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "cafa@hotel.mx", "password": testutil.DefaultPassword,
	})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Operation successful", env.Message)

	var login struct {
		Token     string `json:"token"`
		TokenType string `json:"tokenType"`
		User      struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	assert.Equal(t, "Bearer", login.TokenType)
	assert.Equal(t, "ADMIN", login.User.Role)
	assert.NotContains(t, string(env.Data), "password")

	claims, err := a.tokens.Validate(login.Token)
	require.NoError(t, err)
	assert.Equal(t, "cafa@hotel.mx", claims.Subject)
	assert.Equal(t, domainUser.RoleAdmin, claims.Role)

	code, env = a.call(http.MethodGet, "/api/user/me", login.Token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"email":"cafa@hotel.mx"`)
}

func TestLoginFailures(t *testing.T) {
	a := newApp(t)
	testutil.CreateUser(t, a.db, "agles@hotel.mx", "MAID")
	testutil.CreateUser(t, a.db, "gone@hotel.mx", "MAID", testutil.Inactive())

	code, env := a.call(http.MethodPost, "/api/auth/login", "", gin.H{"email": "agles@hotel.mx", "password": "wrong"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_credentials", env.ErrorCode)
	assert.Empty(t, env.Data)

	code, env = a.call(http.MethodPost, "/api/auth/login", "", gin.H{"email": "gone@hotel.mx", "password": testutil.DefaultPassword})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "inactive_account", env.ErrorCode)

	code, _ = a.call(http.MethodPost, "/api/auth/login", "", gin.H{"email": "nobody@hotel.mx", "password": "x"})
	assert.Equal(t, http.StatusNotFound, code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	a := newApp(t)

	body := gin.H{"username": "agles", "email": "agles@hotel.mx", "password": "secret1"}
	code, _ := a.call(http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, code)

	code, env := a.call(http.MethodPost, "/api/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "email_already_registered", env.ErrorCode)
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	a := newApp(t)

	code, env := a.call(http.MethodGet, "/api/room", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "token_missing", env.ErrorCode)
}

func TestAdminOnlyRoutes(t *testing.T) {
	a := newApp(t)
	maid := testutil.CreateUser(t, a.db, "agles@hotel.mx", "MAID")

	code, env := a.call(http.MethodGet, "/api/user", a.tokenFor(maid), nil)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "admin_only", env.ErrorCode)

	code, _ = a.call(http.MethodPost, "/api/room", a.tokenFor(maid), gin.H{"number": "101"})
	assert.Equal(t, http.StatusForbidden, code)
}

func TestAdminCreatesMaidWithDerivedPassword(t *testing.T) {
	a := newApp(t)
	admin := testutil.CreateUser(t, a.db, "cafa@hotel.mx", "ADMIN")

	code, env := a.call(http.MethodPost, "/api/user", a.tokenFor(admin), gin.H{
		"username": "agles", "email": "agles@hotel.mx",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Contains(t, string(env.Data), `"mustChangePassword":true`)

	code, _ = a.call(http.MethodPost, "/api/auth/login", "", gin.H{"email": "agles@hotel.mx", "password": "agles"})
	assert.Equal(t, http.StatusOK, code)
}

// ======================================================
// ROOMS
// ======================================================

func TestRoomLifecycle(t *testing.T) {
	a := newApp(t)
	admin := testutil.CreateUser(t, a.db, "cafa@hotel.mx", "ADMIN")
	maid := testutil.CreateUser(t, a.db, "agles@hotel.mx", "MAID")

	code, env := a.call(http.MethodPost, "/api/room", a.tokenFor(admin), gin.H{"number": "101", "maidId": maid.ID})
	require.Equal(t, http.StatusCreated, code)

	var room struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
		Maid   *struct {
			Email string `json:"email"`
		} `json:"maid"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &room))
	assert.Equal(t, "CLEAN", room.Status)
	require.NotNil(t, room.Maid)
	assert.Equal(t, "agles@hotel.mx", room.Maid.Email)

	code, env = a.call(http.MethodPost, "/api/room", a.tokenFor(admin), gin.H{"number": "101"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "room_number_taken", env.ErrorCode)

	path := fmt.Sprintf("/api/room/status/%d/dirty", room.ID)
	code, env = a.call(http.MethodPatch, path, a.tokenFor(maid), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"status":"DIRTY"`)

	path = fmt.Sprintf("/api/room/status/%d/FLOODED", room.ID)
	code, env = a.call(http.MethodPatch, path, a.tokenFor(maid), nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_status", env.ErrorCode)

	var stored models.Room
	require.NoError(t, a.db.First(&stored, room.ID).Error)
	assert.Equal(t, "DIRTY", stored.Status)

	code, env = a.call(http.MethodGet, fmt.Sprintf("/api/room/maid/%d", maid.ID), a.tokenFor(maid), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"number":"101"`)

	code, _ = a.call(http.MethodDelete, fmt.Sprintf("/api/room/%d", room.ID), a.tokenFor(admin), nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = a.call(http.MethodGet, fmt.Sprintf("/api/room/%d", room.ID), a.tokenFor(admin), nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestListRoomsIsNeverNull(t *testing.T) {
	a := newApp(t)
	maid := testutil.CreateUser(t, a.db, "agles@hotel.mx", "MAID")

	code, env := a.call(http.MethodGet, "/api/room", a.tokenFor(maid), nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

// ======================================================
// REPORTS
// ======================================================

func TestCreateReportBlocksRoomAndAlertsAdmins(t *testing.T) {
	a := newApp(t)
	testutil.CreateUser(t, a.db, "cafa@hotel.mx", "ADMIN", testutil.WithPushToken("admin-device"))
	maid := testutil.CreateUser(t, a.db, "agles@hotel.mx", "MAID")
	room := testutil.CreateRoom(t, a.db, "204", "DIRTY", &maid.ID)

	body, contentType := multipartBody(t, map[string]string{
		"title":       "Broken lamp",
		"description": "Lamp next to the bed does not turn on",
		"roomId":      fmt.Sprint(room.ID),
	}, "lamp1.jpg", "lamp2.jpg")

	req := httptest.NewRequest(http.MethodPost, "/api/report", body)
	req.Header.Set("Content-Type", contentType)
	code, env := a.send(req, a.tokenFor(maid))
	require.Equal(t, http.StatusCreated, code, env.ErrorCode)

	var rep struct {
		Title string `json:"title"`
		Room  struct {
			Status string `json:"status"`
		} `json:"room"`
		Images []struct {
			URL string `json:"url"`
		} `json:"images"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rep))
	assert.Equal(t, "Broken lamp", rep.Title)
	assert.Equal(t, "BLOCKED", rep.Room.Status)
	assert.Len(t, rep.Images, 2)

	var stored models.Room
	require.NoError(t, a.db.First(&stored, room.ID).Error)
	assert.Equal(t, "BLOCKED", stored.Status)

	assert.Equal(t, []string{"admin-device"}, a.push.Tokens())
	assert.Len(t, a.store.Uploaded, 2)
}

func TestCreateReportRejectsNonImages(t *testing.T) {
	a := newApp(t)
	maid := testutil.CreateUser(t, a.db, "agles@hotel.mx", "MAID")
	room := testutil.CreateRoom(t, a.db, "204", "CLEAN", nil)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("title", "Stain"))
	require.NoError(t, w.WriteField("roomId", fmt.Sprint(room.ID)))
	part, err := w.CreateFormFile("images", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("plain text, not a picture"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/report", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	code, env := a.send(req, a.tokenFor(maid))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_image_type", env.ErrorCode)

	var stored models.Room
	require.NoError(t, a.db.First(&stored, room.ID).Error)
	assert.Equal(t, "CLEAN", stored.Status)
}

func TestReportUploadFailureIsBadGateway(t *testing.T) {
	a := newApp(t)
	a.store.Fail = true
	maid := testutil.CreateUser(t, a.db, "agles@hotel.mx", "MAID")
	room := testutil.CreateRoom(t, a.db, "204", "CLEAN", nil)

	body, contentType := multipartBody(t, map[string]string{
		"title":  "Broken lamp",
		"roomId": fmt.Sprint(room.ID),
	}, "lamp.jpg")

	req := httptest.NewRequest(http.MethodPost, "/api/report", body)
	req.Header.Set("Content-Type", contentType)
	code, env := a.send(req, a.tokenFor(maid))
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, "image_upload_failed", env.ErrorCode)
}

// ======================================================
// AUDIT / DOCS / HEALTH
// ======================================================

func TestAuditLogsArePaged(t *testing.T) {
	a := newApp(t)
	admin := testutil.CreateUser(t, a.db, "cafa@hotel.mx", "ADMIN")
	for i := 0; i < 3; i++ {
		require.NoError(t, a.db.Create(&models.AuditLog{Actor: "cafa@hotel.mx", Action: "room_created", Entity: "room"}).Error)
	}
	require.NoError(t, a.db.Create(&models.AuditLog{Actor: "cafa@hotel.mx", Action: "room_deleted", Entity: "room"}).Error)

	code, env := a.call(http.MethodGet, "/api/audit-logs?action=room_created&limit=2", a.tokenFor(admin), nil)
	require.Equal(t, http.StatusOK, code)

	var page struct {
		Items []struct {
			Action string `json:"action"`
		} `json:"items"`
		Total int64 `json:"total"`
		Limit int   `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.Limit)
	assert.Len(t, page.Items, 2)
}

func TestDocsAndHealthAreOpen(t *testing.T) {
	a := newApp(t)

	req := httptest.NewRequest(http.MethodGet, "/v3/api-docs", nil)
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	w = httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"ok"`)
}
