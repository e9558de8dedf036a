package security

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"enstracker/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var readOnlyRoles = map[string]bool{
	"Auditor": true,
	"Viewer":  true,
}

// IsReadOnlyRole reports whether the role is barred from mutating the
// inventory.
func IsReadOnlyRole(role string) bool {
	return readOnlyRoles[role]
}

func GenerateJWT(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"userID":   user.ID,
		"username": user.Username,
		"name":     user.Name,
		"role":     user.Role,
		"exp":      time.Now().Add(time.Hour * 120).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// JWTMiddleware validates the bearer token and extracts claims.
func JWTMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return jwtSecret, nil
		})

		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		claims := token.Claims.(jwt.MapClaims)
		c.Set("userID", claims["userID"])
		c.Set("username", claims["username"])
		c.Set("name", claims["name"])
		c.Set("role", claims["role"])
		c.Next()
	}
}

// RequireWriter denies mutating routes to read-only roles.
func RequireWriter() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: insufficient permissions"})
			c.Abort()
			return
		}
		userRole, ok := role.(string)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid role format"})
			c.Abort()
			return
		}

		if readOnlyRoles[userRole] {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden: read-only role"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// ActorName returns the display name of the authenticated user, for
// attributing activity log entries.
func ActorName(c *gin.Context) string {
	name, exists := c.Get("name")
	if !exists {
		return ""
	}
	if s, ok := name.(string); ok {
		return s
	}
	return ""
}
