package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/africamarket/africa-market-api/internal/config"
	"github.com/africamarket/africa-market-api/internal/models"
)

const testSecret = "test-secret"

func authTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	cfg := &config.Config{JWTSecret: testSecret}

	r := gin.New()
	r.GET("/me", AuthMiddleware(cfg, db), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet(ContextUserID),
			"role":    c.MustGet(ContextUserRole),
		})
	})
	r.GET("/admin", AuthMiddleware(cfg, db), AdminOnly(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, db
}

func signToken(t *testing.T, userID uint, role, secret string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  float64(userID),
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func seedActiveUser(t *testing.T, db *gorm.DB, role string) *models.User {
	t.Helper()

	u := &models.User{
		Username: "amal-" + role, Email: role + "@example.com",
		PasswordHash: "x", Role: role, IsActive: true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestAuthMiddlewareCookie(t *testing.T) {
	r, db := authTestRouter(t)
	u := seedActiveUser(t, db, "user")

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: signToken(t, u.ID, "user", testSecret)})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestAuthMiddlewareBearerFallback(t *testing.T) {
	r, db := authTestRouter(t)
	u := seedActiveUser(t, db, "user")

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, u.ID, "user", testSecret))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestAuthMiddlewareRejects(t *testing.T) {
	r, db := authTestRouter(t)
	u := seedActiveUser(t, db, "user")

	cases := []struct {
		name  string
		setup func(req *http.Request)
	}{
		{"no token", func(*http.Request) {}},
		{"garbage token", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer not.a.jwt")
		}},
		{"wrong secret", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+signToken(t, u.ID, "user", "other-secret"))
		}},
		{"unknown user", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+signToken(t, 9999, "user", testSecret))
		}},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		tc.setup(req)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code, tc.name)
	}
}

func TestAuthMiddlewareDeactivatedUser(t *testing.T) {
	r, db := authTestRouter(t)
	u := seedActiveUser(t, db, "user")
	token := signToken(t, u.ID, "user", testSecret)

	require.NoError(t, db.Model(u).Update("is_active", false).Error)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "account_disabled")
}

func TestAdminOnly(t *testing.T) {
	r, db := authTestRouter(t)

	admin := seedActiveUser(t, db, "admin")
	user := seedActiveUser(t, db, "user")

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, admin.ID, "admin", testSecret))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, user.ID, "user", testSecret))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "admin_only")
}
