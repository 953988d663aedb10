package middleware

import (
	"net/http"
	"strings"

	"github.com/Jaydip614/medisync/db"
	"github.com/Jaydip614/medisync/models"
	"github.com/Jaydip614/medisync/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
)

func extractJwtClaims(c *gin.Context) (jwt.MapClaims, bool) {
	authHeader := c.GetHeader("Authorization")

	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
		c.Abort()
		return nil, false
	}

	authHeader = strings.Trim(authHeader, "\"' ")

	if !strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		authHeader = "Bearer " + authHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format, expected: Bearer <token>"})
		c.Abort()
		return nil, false
	}

	tokenString := parts[1]
	tokenString = strings.Trim(tokenString, "\"' ")

	claims, err := utils.DecodeJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
		c.Abort()
		return nil, false
	}

	return claims, true
}

// JWTAuth resolves the token subject (the external auth id) to the internal
// user row. The translation happens here and nowhere else; handlers only
// ever see the internal uuid in "user_id".
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := extractJwtClaims(c)
		if !ok {
			return
		}

		authID, _ := claims["sub"].(string)
		if authID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Subject not found in token"})
			c.Abort()
			return
		}

		var user models.User
		if err := db.DB.Where("auth_id = ?", authID).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unknown user"})
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("auth_id", user.AuthID)
		c.Set("role", string(user.Role))
		c.Next()
	}
}

// RoleAuth guards routes reserved to one role (doctor, admin).
func RoleAuth(required models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Role not found in context"})
			c.Abort()
			return
		}

		if role != string(required) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: " + string(required) + " role required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
