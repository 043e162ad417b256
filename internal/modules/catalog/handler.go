package catalog

import (
	"net/http"

	"autoloco/internal/database"
	"autoloco/internal/pkg/pagination"
	"autoloco/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 50
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/vehicles", h.SearchVehicles)
}

// SearchVehicles GET /vehicles?city=&page=&limit=
func (h *Handler) SearchVehicles(c *gin.Context) {
	p := pagination.Parse(c, defaultPageSize, maxPageSize)

	items, total, err := h.service.SearchVehicles(c.Request.Context(), c.Query("city"), p)
	if err != nil {
		_ = c.Error(err)
		if database.IsQueryTimeout(err) {
			response.Error(c, http.StatusServiceUnavailable, "QUERY_TIMEOUT", "Request took too long, try again")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search vehicles")
		return
	}
	response.Page(c, items, p.Page, p.Limit, total)
}
