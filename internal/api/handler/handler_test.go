package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/stevehanper/beetime-backend/internal/dto"
	"github.com/stevehanper/beetime-backend/internal/service"
	"github.com/stevehanper/beetime-backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	signupResult     *dto.TokenResponse
	signupErr        error
	loginResult      *dto.TokenResponse
	loginErr         error
	googleResult     *dto.GoogleAuthResponse
	googleErr        error
	completeResult   *dto.TokenResponse
	completeErr      error
	completeUserID   string // 记录实际收到的 userID
	getCurrentResult *dto.UserResponse
	getCurrentErr    error
}

func (m *mockAuthService) Signup(_ context.Context, _ *dto.SignupRequest) (*dto.TokenResponse, error) {
	return m.signupResult, m.signupErr
}
func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) GoogleAuth(_ context.Context, _ *dto.GoogleAuthRequest) (*dto.GoogleAuthResponse, error) {
	return m.googleResult, m.googleErr
}
func (m *mockAuthService) CompleteProfile(_ context.Context, userID string, _ *dto.UpdateUserInfoRequest) (*dto.TokenResponse, error) {
	m.completeUserID = userID
	return m.completeResult, m.completeErr
}
func (m *mockAuthService) GetCurrentUser(_ context.Context, _ string) (*dto.UserResponse, error) {
	return m.getCurrentResult, m.getCurrentErr
}

// ── Mock LocationService ──

type mockLocationService struct {
	listResult []dto.LocationResponse
	listErr    error
}

func (m *mockLocationService) List(_ context.Context) ([]dto.LocationResponse, error) {
	return m.listResult, m.listErr
}

// ── Mock TimeEntryService ──

type mockTimeEntryService struct {
	clockInResult *dto.TimeEntryResponse
	clockInErr    error
	listResult    []dto.TimeEntryResponse
	listErr       error
	updateResult  *dto.TimeEntryResponse
	updateErr     error
	updateID      string // 记录实际收到的记录 ID
}

func (m *mockTimeEntryService) ClockIn(_ context.Context, _ string) (*dto.TimeEntryResponse, error) {
	return m.clockInResult, m.clockInErr
}
func (m *mockTimeEntryService) List(_ context.Context, _ string) ([]dto.TimeEntryResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockTimeEntryService) Update(_ context.Context, _, recordID string, _ *dto.UpdateTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	m.updateID = recordID
	return m.updateResult, m.updateErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	xlsxErr  error
	calendar string
	calErr   error
}

func (m *mockExportService) ExportTimesheet(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.xlsxErr
}
func (m *mockExportService) ExportCalendar(_ context.Context, _ string) (string, error) {
	return m.calendar, m.calErr
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func setupGin() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}

func setAuth(c *gin.Context) {
	c.Set("user_id", "test-user-id")
	c.Set("role", "EMPLOYEE")
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Signup_Success(t *testing.T) {
	mock := &mockAuthService{
		signupResult: &dto.TokenResponse{
			Token:     "test-token",
			ExpiresIn: 604800,
		},
	}
	h := NewAuthHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("POST", "/auth/signup", jsonBody(dto.SignupRequest{
		Name:       "张三",
		Email:      "zhangsan@example.com",
		Password:   "secret123",
		LocationID: "11111111-1111-1111-1111-111111111111",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/signup", h.Signup)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Signup_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := setupGin()
	req := httptest.NewRequest("POST", "/auth/signup", bytes.NewReader([]byte("invalid json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/signup", h.Signup)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Signup_ShortPassword(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := setupGin()
	req := httptest.NewRequest("POST", "/auth/signup", jsonBody(dto.SignupRequest{
		Name:       "张三",
		Email:      "zhangsan@example.com",
		Password:   "short",
		LocationID: "11111111-1111-1111-1111-111111111111",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/signup", h.Signup)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{signupErr: service.ErrEmailExists})

	w := setupGin()
	req := httptest.NewRequest("POST", "/auth/signup", jsonBody(dto.SignupRequest{
		Name:       "张三",
		Email:      "taken@example.com",
		Password:   "secret123",
		LocationID: "11111111-1111-1111-1111-111111111111",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/signup", h.Signup)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11002 {
		t.Errorf("expected error code 11002, got %d", resp.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenResponse{Token: "test-token", ExpiresIn: 604800},
	}
	h := NewAuthHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "zhangsan@example.com",
		Password: "secret123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{loginErr: service.ErrInvalidCredentials})

	w := setupGin()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Email:    "zhangsan@example.com",
		Password: "wrong-password",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	// 凭证错误统一返回 400，不区分用户不存在与密码错误
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestAuthHandler_GoogleAuth_Success(t *testing.T) {
	mock := &mockAuthService{
		googleResult: &dto.GoogleAuthResponse{
			Token:                   "test-token",
			ExpiresIn:               604800,
			RequiresProfileComplete: true,
		},
	}
	h := NewAuthHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("POST", "/auth/google", jsonBody(dto.GoogleAuthRequest{
		Credential: "google-id-token",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/google", h.GoogleAuth)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAuthHandler_GoogleAuth_InvalidToken(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{googleErr: service.ErrInvalidGoogleToken})

	w := setupGin()
	req := httptest.NewRequest("POST", "/auth/google", jsonBody(dto.GoogleAuthRequest{
		Credential: "garbage",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/google", h.GoogleAuth)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11003 {
		t.Errorf("expected error code 11003, got %d", resp.Code)
	}
}

func TestAuthHandler_UpdateUserInfo_UsesContextIdentity(t *testing.T) {
	mock := &mockAuthService{
		completeResult: &dto.TokenResponse{Token: "new-token", ExpiresIn: 604800},
	}
	h := NewAuthHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("PUT", "/auth/update-user-info", jsonBody(dto.UpdateUserInfoRequest{
		Name:       "张三",
		LocationID: "11111111-1111-1111-1111-111111111111",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/auth/update-user-info", func(c *gin.Context) {
		setAuth(c)
		h.UpdateUserInfo(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	// 目标用户必须取自认证上下文
	if mock.completeUserID != "test-user-id" {
		t.Errorf("expected context user id, got %s", mock.completeUserID)
	}
}

func TestAuthHandler_UpdateUserInfo_Unauthenticated(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := setupGin()
	req := httptest.NewRequest("PUT", "/auth/update-user-info", jsonBody(dto.UpdateUserInfoRequest{
		Name:       "张三",
		LocationID: "11111111-1111-1111-1111-111111111111",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/auth/update-user-info", h.UpdateUserInfo)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthHandler_GetCurrentUser_Success(t *testing.T) {
	mock := &mockAuthService{
		getCurrentResult: &dto.UserResponse{
			ID:    "test-user-id",
			Email: "zhangsan@example.com",
			Name:  "张三",
		},
	}
	h := NewAuthHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("GET", "/auth/me", nil)

	r := gin.New()
	r.GET("/auth/me", func(c *gin.Context) {
		setAuth(c)
		h.GetCurrentUser(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAuthHandler_Logout_WithoutRedis(t *testing.T) {
	// Redis 不可用时降级为无状态登出
	h := NewAuthHandler(&mockAuthService{})

	w := setupGin()
	req := httptest.NewRequest("POST", "/auth/logout", nil)

	r := gin.New()
	r.POST("/auth/logout", func(c *gin.Context) {
		setAuth(c)
		h.Logout(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestAuthHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"EmailExists", service.ErrEmailExists, 409, 11002},
		{"LocationNotFound", service.ErrLocationNotFound, 400, 16001},
		{"InvalidCredentials", service.ErrInvalidCredentials, 400, 11001},
		{"InvalidGoogleToken", service.ErrInvalidGoogleToken, 400, 11003},
		{"UserNotFound", service.ErrUserNotFound, 404, 11004},
		{"InternalError", errors.New("unknown"), 500, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&mockAuthService{loginErr: tt.err})

			w := setupGin()
			req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
				Email:    "zhangsan@example.com",
				Password: "secret123",
			}))
			req.Header.Set("Content-Type", "application/json")

			r := gin.New()
			r.POST("/auth/login", h.Login)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			resp := parseResponse(w)
			if resp.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, resp.Code)
			}
		})
	}
}

// ═══════════════════════════════════════════════════════════
// LocationHandler Tests
// ═══════════════════════════════════════════════════════════

func TestLocationHandler_List_Success(t *testing.T) {
	branch := "Circular Quay"
	mock := &mockLocationService{
		listResult: []dto.LocationResponse{
			{ID: "loc-1", Name: "Baskin Robbins", Branch: &branch},
			{ID: "loc-2", Name: "Sorrel Cafe & Bar"},
		},
	}
	h := NewLocationHandler(mock)

	w := setupGin()
	req := httptest.NewRequest("GET", "/locations", nil)

	r := gin.New()
	r.GET("/locations", h.ListLocations)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Sorrel Cafe & Bar")) {
		t.Error("expected location list in response body")
	}
}

func TestLocationHandler_List_Error(t *testing.T) {
	h := NewLocationHandler(&mockLocationService{listErr: errors.New("db down")})

	w := setupGin()
	req := httptest.NewRequest("GET", "/locations", nil)

	r := gin.New()
	r.GET("/locations", h.ListLocations)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// TimeEntryHandler Tests
// ═══════════════════════════════════════════════════════════

func TestTimeEntryHandler_Create_Success(t *testing.T) {
	mock := &mockTimeEntryService{
		clockInResult: &dto.TimeEntryResponse{
			ID:         "rec-1",
			LocationID: "loc-1",
			Date:       "2025-01-15T09:00:00",
			ClockIn:    "2025-01-15T09:00:00",
		},
	}
	h := NewTimeEntryHandler(mock, &mockExportService{})

	w := setupGin()
	req := httptest.NewRequest("POST", "/time-entries", nil)

	r := gin.New()
	r.POST("/time-entries", func(c *gin.Context) {
		setAuth(c)
		h.CreateTimeEntry(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
}

func TestTimeEntryHandler_Create_OpenEntryExists(t *testing.T) {
	mock := &mockTimeEntryService{clockInErr: service.ErrOpenEntryExists}
	h := NewTimeEntryHandler(mock, &mockExportService{})

	w := setupGin()
	req := httptest.NewRequest("POST", "/time-entries", nil)

	r := gin.New()
	r.POST("/time-entries", func(c *gin.Context) {
		setAuth(c)
		h.CreateTimeEntry(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 17002 {
		t.Errorf("expected error code 17002, got %d", resp.Code)
	}
}

func TestTimeEntryHandler_Create_Unauthenticated(t *testing.T) {
	h := NewTimeEntryHandler(&mockTimeEntryService{}, &mockExportService{})

	w := setupGin()
	req := httptest.NewRequest("POST", "/time-entries", nil)

	r := gin.New()
	r.POST("/time-entries", h.CreateTimeEntry)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestTimeEntryHandler_List_Success(t *testing.T) {
	mock := &mockTimeEntryService{
		listResult: []dto.TimeEntryResponse{
			{ID: "rec-1", Date: "2025-01-15T09:00:00", ClockIn: "2025-01-15T09:00:00"},
		},
	}
	h := NewTimeEntryHandler(mock, &mockExportService{})

	w := setupGin()
	req := httptest.NewRequest("GET", "/time-entries", nil)

	r := gin.New()
	r.GET("/time-entries", func(c *gin.Context) {
		setAuth(c)
		h.ListTimeEntries(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte(`"list"`)) {
		t.Error("expected list wrapper in response body")
	}
}

func TestTimeEntryHandler_Update_Success(t *testing.T) {
	clockOut := "2025-01-15T17:30:00"
	mock := &mockTimeEntryService{
		updateResult: &dto.TimeEntryResponse{
			ID:       "rec-1",
			ClockOut: &clockOut,
		},
	}
	h := NewTimeEntryHandler(mock, &mockExportService{})

	w := setupGin()
	req := httptest.NewRequest("PATCH", "/time-entries/rec-1", jsonBody(map[string]string{
		"clock_out": clockOut,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PATCH("/time-entries/:id", func(c *gin.Context) {
		setAuth(c)
		h.UpdateTimeEntry(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if mock.updateID != "rec-1" {
		t.Errorf("expected record id rec-1, got %s", mock.updateID)
	}
}

func TestTimeEntryHandler_Update_BadTimestamp(t *testing.T) {
	h := NewTimeEntryHandler(&mockTimeEntryService{}, &mockExportService{})

	w := setupGin()
	req := httptest.NewRequest("PATCH", "/time-entries/rec-1", jsonBody(map[string]string{
		"clock_out": "15/01/2025 17:30", // 非法格式
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PATCH("/time-entries/:id", func(c *gin.Context) {
		setAuth(c)
		h.UpdateTimeEntry(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestTimeEntryHandler_Update_NotFound(t *testing.T) {
	mock := &mockTimeEntryService{updateErr: service.ErrTimeEntryNotFound}
	h := NewTimeEntryHandler(mock, &mockExportService{})

	w := setupGin()
	req := httptest.NewRequest("PATCH", "/time-entries/rec-x", jsonBody(map[string]string{
		"clock_out": "2025-01-15T17:30:00",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PATCH("/time-entries/:id", func(c *gin.Context) {
		setAuth(c)
		h.UpdateTimeEntry(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 17001 {
		t.Errorf("expected error code 17001, got %d", resp.Code)
	}
}

func TestTimeEntryHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"NotFound", service.ErrTimeEntryNotFound, 404, 17001},
		{"OpenEntryExists", service.ErrOpenEntryExists, 409, 17002},
		{"NoLocation", service.ErrNoLocationAssigned, 400, 17003},
		{"NoOpenBreak", service.ErrNoOpenBreak, 400, 17004},
		{"UserNotFound", service.ErrUserNotFound, 404, 11004},
		{"InternalError", errors.New("unknown"), 500, 50000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockTimeEntryService{clockInErr: tt.err}
			h := NewTimeEntryHandler(mock, &mockExportService{})

			w := setupGin()
			req := httptest.NewRequest("POST", "/time-entries", nil)

			r := gin.New()
			r.POST("/time-entries", func(c *gin.Context) {
				setAuth(c)
				h.CreateTimeEntry(c)
			})
			r.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			resp := parseResponse(w)
			if resp.Code != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, resp.Code)
			}
		})
	}
}

// ═══════════════════════════════════════════════════════════
// Export Tests
// ═══════════════════════════════════════════════════════════

func TestTimeEntryHandler_ExportTimesheet_Success(t *testing.T) {
	mock := &mockExportService{
		buf:      bytes.NewBufferString("excel content"),
		filename: "timesheet_20250115.xlsx",
	}
	h := NewTimeEntryHandler(&mockTimeEntryService{}, mock)

	w := setupGin()
	req := httptest.NewRequest("GET", "/time-entries/export", nil)

	r := gin.New()
	r.GET("/time-entries/export", func(c *gin.Context) {
		setAuth(c)
		h.ExportTimesheet(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	ct := w.Header().Get("Content-Type")
	if ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type: %s", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if cd == "" {
		t.Error("expected Content-Disposition header")
	}
}

func TestTimeEntryHandler_ExportTimesheet_NoEntries(t *testing.T) {
	mock := &mockExportService{xlsxErr: service.ErrExportNoEntries}
	h := NewTimeEntryHandler(&mockTimeEntryService{}, mock)

	w := setupGin()
	req := httptest.NewRequest("GET", "/time-entries/export", nil)

	r := gin.New()
	r.GET("/time-entries/export", func(c *gin.Context) {
		setAuth(c)
		h.ExportTimesheet(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 17005 {
		t.Errorf("expected error code 17005, got %d", resp.Code)
	}
}

func TestTimeEntryHandler_ExportCalendar_Success(t *testing.T) {
	mock := &mockExportService{
		calendar: "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n",
	}
	h := NewTimeEntryHandler(&mockTimeEntryService{}, mock)

	w := setupGin()
	req := httptest.NewRequest("GET", "/time-entries/calendar", nil)

	r := gin.New()
	r.GET("/time-entries/calendar", func(c *gin.Context) {
		setAuth(c)
		h.ExportCalendar(c)
	})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	ct := w.Header().Get("Content-Type")
	if ct != "text/calendar; charset=utf-8" {
		t.Errorf("unexpected content type: %s", ct)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("BEGIN:VCALENDAR")) {
		t.Error("expected iCalendar body")
	}
}
