package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/VitaplanServices/appointment-scheduler/internal/config"
	"github.com/VitaplanServices/appointment-scheduler/internal/httperr"
	"github.com/VitaplanServices/appointment-scheduler/internal/objectid"
)

const (
	ContextUserID   = "userID"
	ContextUserType = "userType"
)

// AuthMiddleware resolves the acting customer from a verified bearer token.
// The use cases only ever see the id it sets, never anything client-supplied.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header", "Missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header", "Invalid authorization header")
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {

			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid_token", "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid_token_claims", "Invalid token claims")
			return
		}

		userID, ok := claims["sub"].(string)
		if !ok || !objectid.IsValid(userID) {
			abortUnauthorized(c, "invalid_token_payload", "Invalid token payload")
			return
		}
		userType, _ := claims["userType"].(string)

		c.Set(ContextUserID, userID)
		c.Set(ContextUserType, userType)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	httperr.Unauthorized(c, code, message)
	c.Abort()
}
