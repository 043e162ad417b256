package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"autoloco/internal/config"
	"autoloco/internal/database"
	jwtsvc "autoloco/internal/pkg/jwt"
)

const testSecret = "router-test-secret"

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	r, _ := setupRouterDB(t)
	return r
}

func setupRouterDB(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:api_%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrateReadModels(db))

	cfg := &config.Config{
		AppEnv:            "test",
		JWTSecret:         testSecret,
		ReportTimezone:    "UTC",
		AdminDashboardTTL: 2 * time.Minute,
		OwnerDashboardTTL: time.Minute,
		QueryTimeout:      5 * time.Second,
		ReportRPS:         100,
		ReportBurst:       100,
	}
	return newRouter(cfg, db, zap.NewNop()), db
}

func token(t *testing.T, userID int64, role string) string {
	t.Helper()
	tok, err := jwtsvc.New(testSecret, time.Hour).GenerateToken(userID, role)
	require.NoError(t, err)
	return tok
}

func do(r *gin.Engine, path, tok string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Health(t *testing.T) {
	r := setupRouter(t)
	w := do(r, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_Metrics(t *testing.T) {
	r := setupRouter(t)
	do(r, "/health", "")
	w := do(r, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "autoloco_http_requests_total")
}

func TestRouter_Access(t *testing.T) {
	r := setupRouter(t)
	admin := token(t, 1, "admin")
	ownerTok := token(t, 2, "Propriétaire")
	renterTok := token(t, 3, "locataire")

	cases := []struct {
		path string
		tok  string
		want int
	}{
		{"/api/v1/vehicles", "", http.StatusOK},
		{"/api/v1/admin/dashboard", "", http.StatusUnauthorized},
		{"/api/v1/admin/dashboard", renterTok, http.StatusForbidden},
		{"/api/v1/admin/dashboard", ownerTok, http.StatusForbidden},
		{"/api/v1/admin/dashboard", admin, http.StatusOK},
		{"/api/v1/admin/reports?period=year", admin, http.StatusOK},
		{"/api/v1/owner/dashboard", ownerTok, http.StatusOK},
		{"/api/v1/owner/dashboard", renterTok, http.StatusForbidden},
		{"/api/v1/renter/bookings", renterTok, http.StatusOK},
		{"/api/v1/renter/bookings", admin, http.StatusOK},
	}
	for _, tc := range cases {
		w := do(r, tc.path, tc.tok)
		assert.Equal(t, tc.want, w.Code, tc.path)
	}
}
