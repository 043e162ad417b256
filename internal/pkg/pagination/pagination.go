package pagination

import (
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Params is a resolved page request. Page is 1-based.
type Params struct {
	Page  int
	Limit int
}

// Offset saturates at math.MaxInt instead of overflowing.
func (p Params) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// Parse reads page and limit from the query string. Missing or invalid
// values fall back to 1 and def; limits above max are capped at max, and
// page is capped so that Offset fits in an int.
func Parse(c *gin.Context, def, max int) Params {
	return Clamp(parseInt(c.Query("page"), 1), parseInt(c.Query("limit"), def), def, max)
}

func Clamp(page, limit, def, max int) Params {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	if page > math.MaxInt/limit {
		page = math.MaxInt / limit
	}
	return Params{Page: page, Limit: limit}
}

func parseInt(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}
