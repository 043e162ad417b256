package admin

import (
	"errors"
	"net/http"
	"slices"

	"autoloco/internal/database"
	"autoloco/internal/pkg/pagination"
	"autoloco/internal/pkg/response"
	"autoloco/internal/reporting"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 50
	maxPageSize     = maxAuditRows
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the admin endpoints. reportMW wraps the expensive
// aggregation endpoints only.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup, reportMW ...gin.HandlerFunc) {
	withMW := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(slices.Clone(reportMW), handler)
	}
	admin.GET("/dashboard", withMW(h.Dashboard)...)
	admin.GET("/reports", withMW(h.Reports)...)

	admin.GET("/bookings", h.ListBookings)
	admin.GET("/transactions", h.ListTransactions)
	admin.GET("/users", h.ListUsers)
	admin.GET("/tickets", h.ListTickets)
}

// Dashboard GET /admin/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	out, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err, "Failed to build dashboard")
		return
	}
	response.Success(c, http.StatusOK, out)
}

// Reports GET /admin/reports?period=week|month|year|all
func (h *Handler) Reports(c *gin.Context) {
	out, err := h.service.Reports(c.Request.Context(), reporting.ParsePeriod(c.Query("period")))
	if err != nil {
		writeError(c, err, "Failed to build reports")
		return
	}
	response.Success(c, http.StatusOK, out)
}

// ListBookings GET /admin/bookings?status=&page=&limit=
//
// With status set, only the latest 1000 bookings are classified and
// filtered; when that bound is hit, pagination.truncated is true and total
// counts matches among those rows.
func (h *Handler) ListBookings(c *gin.Context) {
	p := pagination.Parse(c, defaultPageSize, maxPageSize)
	items, total, truncated, err := h.service.ListBookings(c.Request.Context(), c.Query("status"), p)
	if err != nil {
		writeError(c, err, "Failed to load bookings")
		return
	}
	if truncated {
		response.PartialPage(c, items, p.Page, p.Limit, total)
		return
	}
	response.Page(c, items, p.Page, p.Limit, total)
}

// ListTransactions GET /admin/transactions?page=&limit=
func (h *Handler) ListTransactions(c *gin.Context) {
	p := pagination.Parse(c, defaultPageSize, maxPageSize)
	out, total, err := h.service.ListTransactions(c.Request.Context(), p)
	if err != nil {
		writeError(c, err, "Failed to load transactions")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"items":  out.Items,
		"totals": out.Totals,
		"pagination": gin.H{
			"page":  p.Page,
			"limit": p.Limit,
			"total": total,
		},
	})
}

// ListUsers GET /admin/users?page=&limit=
func (h *Handler) ListUsers(c *gin.Context) {
	p := pagination.Parse(c, defaultPageSize, maxPageSize)
	items, total, err := h.service.ListUsers(c.Request.Context(), p)
	if err != nil {
		writeError(c, err, "Failed to load users")
		return
	}
	response.Page(c, items, p.Page, p.Limit, total)
}

// ListTickets GET /admin/tickets?page=&limit=
func (h *Handler) ListTickets(c *gin.Context) {
	p := pagination.Parse(c, defaultPageSize, maxPageSize)
	items, total, err := h.service.ListTickets(c.Request.Context(), p)
	if err != nil {
		writeError(c, err, "Failed to load tickets")
		return
	}
	response.Page(c, items, p.Page, p.Limit, total)
}

func writeError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, ErrInvalidStatusFilter):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown status filter")
	case database.IsQueryTimeout(err):
		_ = c.Error(err)
		response.Error(c, http.StatusServiceUnavailable, "QUERY_TIMEOUT", "Request took too long, try again")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", msg)
	}
}
