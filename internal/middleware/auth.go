package middleware

import (
	"errors"
	"net/http"
	"strings"

	"autoservice-backend/internal/config"
	"autoservice-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	UserIDKey = "user_id"
	RoleKey   = "role"
)

// AuthMiddleware admits requests carrying a staff token signed with
// JWT_SECRET.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, "missing authorization header", "")
			return
		}

		// Extract token from "Bearer <token>"
		scheme, tokenString, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			abort(c, "invalid authorization header format", "")
			return
		}
		tokenString = strings.TrimSpace(tokenString)
		if tokenString == "" {
			abort(c, "empty token", "")
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if cfg.JWTSecret == "" {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWTSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			var errorMsg string
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				errorMsg = "token has expired"
			case errors.Is(err, jwt.ErrTokenSignatureInvalid):
				errorMsg = "token signature is invalid"
			case errors.Is(err, jwt.ErrTokenMalformed):
				errorMsg = "token is malformed"
			default:
				errorMsg = err.Error()
			}
			abort(c, "invalid token", errorMsg)
			return
		}
		if !token.Valid {
			abort(c, "invalid token", "")
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			abort(c, "missing subject in token", "")
			return
		}
		role, _ := claims["role"].(string)
		if role != "staff" {
			abort(c, "staff role required", "")
			return
		}

		c.Set(UserIDKey, sub)
		c.Set(RoleKey, role)
		c.Next()
	}
}

func abort(c *gin.Context, errorMsg, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: errorMsg, Message: message})
}
