package renter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"autoloco/internal/database"
	"autoloco/internal/domain"
	"autoloco/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T, userID int64) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:renter_%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrateReadModels(db))

	h := NewHandler(NewService(repository.NewBookingRepository(db), func() time.Time { return now }))

	r := gin.New()
	g := r.Group("/api/v1/renter")
	g.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	h.RegisterRoutes(g)
	return r, db
}

func TestHandler_ListBookings(t *testing.T) {
	r, db := setupRouter(t, 1)
	require.NoError(t, db.Create(&domain.Vehicle{ID: 10, OwnerID: 2, Brand: "Toyota", Model: "Yaris", City: "Douala"}).Error)
	require.NoError(t, db.Create(&[]domain.Booking{
		{ID: 1, VehicleID: 10, RenterID: 1, OwnerID: 2, Status: str("confirmée"), StartDate: now.AddDate(0, 0, 2), EndDate: now.AddDate(0, 0, 4), CreatedAt: now.AddDate(0, 0, -1)},
		{ID: 2, VehicleID: 10, RenterID: 1, OwnerID: 2, Status: str("Terminée"), StartDate: now.AddDate(0, 0, -5), EndDate: now.AddDate(0, 0, -4), CreatedAt: now.AddDate(0, 0, -6)},
		{ID: 3, VehicleID: 10, RenterID: 9, OwnerID: 2, StartDate: now, EndDate: now, CreatedAt: now},
	}).Error)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/renter/bookings", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Bookings []struct {
				ID          int64  `json:"id"`
				Status      string `json:"status"`
				VehicleName string `json:"vehicleName"`
			} `json:"bookings"`
			Stats struct {
				Total     int `json:"total"`
				Upcoming  int `json:"upcoming"`
				Completed int `json:"completed"`
			} `json:"stats"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data.Bookings, 2)
	assert.Equal(t, int64(1), body.Data.Bookings[0].ID)
	assert.Equal(t, "upcoming", body.Data.Bookings[0].Status)
	assert.Equal(t, "Toyota Yaris", body.Data.Bookings[0].VehicleName)
	assert.Equal(t, "completed", body.Data.Bookings[1].Status)
	assert.Equal(t, 2, body.Data.Stats.Total)
	assert.Equal(t, 1, body.Data.Stats.Upcoming)
	assert.Equal(t, 1, body.Data.Stats.Completed)
}

func TestHandler_ListBookings_Unauthenticated(t *testing.T) {
	r, _ := setupRouter(t, 0)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/renter/bookings", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}
