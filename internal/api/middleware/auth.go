// internal/api/middleware/auth.go
package middleware

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"nextintern-api/internal/models"
	"nextintern-api/internal/policy"
	"nextintern-api/internal/services"
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "userID"   // Key to store user ID in context
	userTypeCtx         = "userType" // Key to store account type in context
	premiumCtx          = "premium"  // Key to store premium flag in context
)

// JWTAuthMiddleware creates a Gin middleware for JWT authentication. The
// parsed claims (account type, premium tier) are stored alongside the user
// ID so handlers can build a viewer without touching the database.
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authorizationHeader)
		if authHeader == "" {
			log.Println("Auth middleware: Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			log.Println("Auth middleware: Invalid Authorization header format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format"})
			return
		}

		tokenString := headerParts[1]

		token, err := jwt.ParseWithClaims(tokenString, &services.AccessClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			log.Printf("Auth middleware: Error parsing token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		if claims, ok := token.Claims.(*services.AccessClaims); ok && token.Valid {
			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				log.Printf("Auth middleware: Error parsing user ID from token subject '%s': %v", claims.Subject, err)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identifier in token"})
				return
			}

			c.Set(userCtx, userID)
			c.Set(userTypeCtx, claims.UserType)
			c.Set(premiumCtx, claims.IsPremium)
			c.Next()
		} else {
			log.Println("Auth middleware: Invalid token claims or token is not valid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		}
	}
}

// OptionalJWTAuthMiddleware authenticates when a bearer token is present and
// passes through anonymously otherwise. Used on browse routes that serve
// both public and signed-in viewers; a bad token still aborts so clients
// never silently fall back to the public view.
func OptionalJWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	required := JWTAuthMiddleware(jwtSecret)
	return func(c *gin.Context) {
		if c.GetHeader(authorizationHeader) == "" {
			c.Next()
			return
		}
		required(c)
	}
}

// RequireUserType aborts with 403 unless the authenticated account has the
// given type. Must run after JWTAuthMiddleware.
func RequireUserType(userType models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		typeAny, exists := c.Get(userTypeCtx)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if t, ok := typeAny.(models.UserType); !ok || t != userType {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": fmt.Sprintf("%s account required", strings.ToLower(string(userType)))})
			return
		}
		c.Next()
	}
}

// GetUserIDFromContext returns the authenticated account's ID.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	userIDAny, exists := c.Get(userCtx)
	if !exists {
		return uuid.Nil, errors.New("user ID not found in context")
	}

	userID, ok := userIDAny.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user ID in context is of invalid type")
	}

	return userID, nil
}

// GetViewerFromContext derives the policy viewer for the request. An
// unauthenticated request yields the zero viewer.
func GetViewerFromContext(c *gin.Context) policy.Viewer {
	userIDAny, exists := c.Get(userCtx)
	if !exists {
		return policy.Viewer{}
	}
	userID, _ := userIDAny.(uuid.UUID)
	premium, _ := c.Get(premiumCtx)
	isPremium, _ := premium.(bool)
	return policy.Viewer{Authenticated: true, Premium: isPremium, UserID: userID}
}
