package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul8704/Cookify-server/internal/middleware"
	"github.com/abdul8704/Cookify-server/internal/service"
	"github.com/abdul8704/Cookify-server/internal/testdb"
)

func setupAuthTestRouter(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.Setup(t)
	authService := service.NewAuthService(db, "test-secret", 15*time.Minute, 24*time.Hour)

	r := gin.New()
	v1 := r.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	NewUserHandler(service.NewUserService(db)).RegisterRoutes(protected)

	return r, authService
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterEndpoint(t *testing.T) {
	r, _ := setupAuthTestRouter(t)

	w := postJSON(t, r, "/api/v1/auth/register", gin.H{
		"name":     "Alice",
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)

	// Duplicate email surfaces as 409.
	w = postJSON(t, r, "/api/v1/auth/register", gin.H{
		"name":     "Alice Again",
		"username": "alice2",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterEndpointRejectsBadBody(t *testing.T) {
	r, _ := setupAuthTestRouter(t)

	// Missing password.
	w := postJSON(t, r, "/api/v1/auth/register", gin.H{
		"name": "Bob", "username": "bob", "email": "bob@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Non-email email.
	w = postJSON(t, r, "/api/v1/auth/register", gin.H{
		"name": "Bob", "username": "bob", "email": "not-an-email", "password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginAndProtectedRoute(t *testing.T) {
	r, _ := setupAuthTestRouter(t)

	w := postJSON(t, r, "/api/v1/auth/register", gin.H{
		"name": "Carol", "username": "carol", "email": "carol@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/v1/auth/login", gin.H{
		"username": "carol", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	// Without a token the protected route refuses.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/carol", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// With the token it serves.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/users/carol", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"carol"`)
}

func TestLoginWrongCredentials(t *testing.T) {
	r, _ := setupAuthTestRouter(t)

	w := postJSON(t, r, "/api/v1/auth/register", gin.H{
		"name": "Dave", "username": "dave", "email": "dave@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/api/v1/auth/login", gin.H{
		"username": "dave", "password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUsernameAvailableEndpoint(t *testing.T) {
	r, _ := setupAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/username-available/fresh", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"available":true`)
}
