package middleware

import (
	"net/http"
	"strings"

	"clinicore/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer token and requires one of the given
// roles (any role when none given). On success it sets "userID" and "role" on
// the context.
func JWTAuthMiddleware(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		if len(roles) > 0 && !roleAllowed(role, roles) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Set("userID", userID)
		c.Set("role", role)
		c.Next()
	}
}

// JWTAuthPatientMiddleware restricts a route to patient accounts.
func JWTAuthPatientMiddleware() gin.HandlerFunc {
	return JWTAuthMiddleware("patient")
}

// JWTAuthDoctorMiddleware restricts a route to doctor accounts.
func JWTAuthDoctorMiddleware() gin.HandlerFunc {
	return JWTAuthMiddleware("doctor")
}

// JWTAuthAdminMiddleware restricts a route to admin accounts.
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return JWTAuthMiddleware("admin")
}

func roleAllowed(role string, allowed []string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}
