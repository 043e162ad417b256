package middleware

import (
	"net/http"
	"strings"

	"autoloco/internal/pkg/jwt"
	"autoloco/internal/pkg/response"
	"autoloco/internal/status"

	"github.com/gin-gonic/gin"
)

// AuthCookie is the cookie the web app stores the access token in.
const AuthCookie = "auth_token"

// JWTAuth validates the bearer token (or the auth cookie) and stores the
// user id and the normalized role in the context.
func JWTAuth(j *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, code, msg := extractToken(c)
		if tokenStr == "" {
			response.Abort(c, http.StatusUnauthorized, code, msg)
			return
		}

		claims, err := j.ValidateToken(tokenStr)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid or expired token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", string(status.ClassifyUserType(claims.Role)))
		c.Next()
	}
}

func extractToken(c *gin.Context) (token, code, msg string) {
	h := c.GetHeader("Authorization")
	if h == "" {
		if cookie, err := c.Cookie(AuthCookie); err == nil && strings.TrimSpace(cookie) != "" {
			return strings.TrimSpace(cookie), "", ""
		}
		return "", "AUTH_HEADER_MISSING", "Missing Authorization header"
	}

	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", "INVALID_AUTH_FORMAT", "Authorization header must be 'Bearer <token>'"
	}
	token = strings.TrimSpace(parts[1])
	if token == "" {
		return "", "INVALID_AUTH_FORMAT", "Empty token"
	}
	return token, "", ""
}
