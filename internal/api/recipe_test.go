package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/abdul8704/Cookify-server/internal/models"
	"github.com/abdul8704/Cookify-server/internal/service"
	"github.com/abdul8704/Cookify-server/internal/testdb"
)

// setupRecipeTestRouter injects claims directly so role handling can be
// exercised without minting tokens.
func setupRecipeTestRouter(t *testing.T, role string) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.Setup(t)

	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.Use(func(c *gin.Context) {
		user := models.User{Name: "Erin " + role, Username: "erin-" + role, Email: role + "@example.com", PasswordHash: "x", Role: role}
		require.NoError(t, db.FirstOrCreate(&user, models.User{Username: user.Username}).Error)
		c.Set("user_id", user.ID)
		c.Set("username", user.Username)
		c.Set("role", role)
		c.Next()
	})
	NewRecipeHandler(service.NewRecipeService(db)).RegisterRoutes(v1)

	return r, db
}

func createRecipeRow(t *testing.T, db *gorm.DB, name, slug string) *models.Recipe {
	t.Helper()
	recipe := models.Recipe{Name: name, Slug: slug, ServingSizeGrams: 100}
	require.NoError(t, db.Create(&recipe).Error)
	return &recipe
}

func TestRecipeMutationsRequireAdmin(t *testing.T) {
	r, db := setupRecipeTestRouter(t, "user")
	recipe := createRecipeRow(t, db, "Lentil Soup", "lentil-soup")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/recipes/"+recipe.ID.String(), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The row must survive the refused delete.
	var count int64
	require.NoError(t, db.Model(&models.Recipe{}).Where("id = ?", recipe.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/recipes", strings.NewReader(`{"name":"Sneaky"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/v1/recipes/"+recipe.ID.String(), strings.NewReader(`{"name":"Renamed"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Reads stay open to every authenticated user.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/recipes/lentil-soup", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecipeDeleteAllowedForAdmin(t *testing.T) {
	r, db := setupRecipeTestRouter(t, "admin")
	recipe := createRecipeRow(t, db, "Old Stew", "old-stew")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/recipes/"+recipe.ID.String(), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Recipe{}).Where("id = ?", recipe.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}
