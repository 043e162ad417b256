package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// Page wraps a list with its pagination metadata.
func Page(c *gin.Context, items any, page, limit int, total int64) {
	Success(c, http.StatusOK, gin.H{
		"items": items,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// PartialPage is Page for lists filtered over a bounded scan: total counts
// matches among the scanned rows only, and pagination.truncated is true.
func PartialPage(c *gin.Context, items any, page, limit int, total int64) {
	Success(c, http.StatusOK, gin.H{
		"items": items,
		"pagination": gin.H{
			"page":      page,
			"limit":     limit,
			"total":     total,
			"truncated": true,
		},
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// Abort writes the error envelope and stops the handler chain.
func Abort(c *gin.Context, statusCode int, code string, message string) {
	Error(c, statusCode, code, message)
	c.Abort()
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}
