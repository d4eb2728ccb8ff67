package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/edumart/edumart-back/internal/config"
	"github.com/edumart/edumart-back/internal/db"
	"github.com/edumart/edumart-back/internal/models"
)

func setupGuards(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	db.DB = gdb

	cfg := &config.Config{JWTSecret: "test-secret", JWTTTLMin: 60}

	r := gin.New()
	r.GET("/me", RequireAuth(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	r.GET("/admin-only", RequireAuth(cfg), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r, cfg
}

func get(r *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingHeader(t *testing.T) {
	r, _ := setupGuards(t)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "Basic abc").Code)
}

func TestRequireAuthBadToken(t *testing.T) {
	r, _ := setupGuards(t)

	assert.Equal(t, http.StatusForbidden, get(r, "/me", "Bearer garbage").Code)
}

func TestRequireAuthAttachesEmail(t *testing.T) {
	r, cfg := setupGuards(t)

	token, err := IssueToken(cfg, "a@x.com", models.RoleNormal)
	require.NoError(t, err)

	w := get(r, "/me", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "a@x.com")
}

func TestRequireAdminDeniesNonAdmins(t *testing.T) {
	r, cfg := setupGuards(t)
	ctx := context.Background()

	_, _, err := db.RegisterUser(ctx, "normal@x.com", models.RoleNormal)
	require.NoError(t, err)
	_, _, err = db.RegisterUser(ctx, "teacher@x.com", models.RoleTeacher)
	require.NoError(t, err)

	for _, email := range []string{"normal@x.com", "teacher@x.com", "ghost@x.com"} {
		token, err := IssueToken(cfg, email, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, get(r, "/admin-only", "Bearer "+token).Code, email)
	}
}

func TestRequireAdminRoleComesFromDirectory(t *testing.T) {
	r, cfg := setupGuards(t)
	ctx := context.Background()

	id, _, err := db.RegisterUser(ctx, "boss@x.com", models.RoleAdmin)
	require.NoError(t, err)

	token, err := IssueToken(cfg, "boss@x.com", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, get(r, "/admin-only", "Bearer "+token).Code)

	// Demotion takes effect immediately, even for tokens minted earlier.
	require.NoError(t, db.SetUserRole(ctx, id, models.RoleNormal))
	assert.Equal(t, http.StatusForbidden, get(r, "/admin-only", "Bearer "+token).Code)
}
