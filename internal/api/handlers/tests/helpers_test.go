package handlers_test

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"nextintern-api/internal/models"
	"nextintern-api/internal/services"
)

func generateTestToken(userID uuid.UUID, userType models.UserType, isPremium bool, secret string, expiration time.Duration) (string, error) {
	now := time.Now()
	claims := &services.AccessClaims{
		UserType:  userType,
		IsPremium: isPremium,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
