package renter

import (
	"errors"
	"net/http"

	"autoloco/internal/database"
	"autoloco/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.ListBookings)
}

// ListBookings GET /renter/bookings
func (h *Handler) ListBookings(c *gin.Context) {
	out, err := h.service.ListBookings(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRenter):
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		case database.IsQueryTimeout(err):
			_ = c.Error(err)
			response.Error(c, http.StatusServiceUnavailable, "QUERY_TIMEOUT", "Request took too long, try again")
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		}
		return
	}
	response.Success(c, http.StatusOK, out)
}
