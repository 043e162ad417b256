package owner

import (
	"errors"
	"net/http"

	"autoloco/internal/database"
	"autoloco/internal/pkg/response"
	"autoloco/internal/reporting"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Dashboard)
}

// Dashboard GET /owner/dashboard?period=week|month|year|all
func (h *Handler) Dashboard(c *gin.Context) {
	period := reporting.ParsePeriod(c.Query("period"))

	out, err := h.service.Dashboard(c.Request.Context(), c.GetInt64("user_id"), period)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidOwner):
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		case database.IsQueryTimeout(err):
			_ = c.Error(err)
			response.Error(c, http.StatusServiceUnavailable, "QUERY_TIMEOUT", "Request took too long, try again")
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build dashboard")
		}
		return
	}
	response.Success(c, http.StatusOK, out)
}
