package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry is the default bearer token lifetime.
const TokenExpiry = 7 * 24 * time.Hour

// AuthClaims carries the authenticated farmer's identity.
type AuthClaims struct {
	FarmerID uint   `json:"farmer_id"`
	Phone    string `json:"phone"`
	jwt.RegisteredClaims
}

func jwtSecret() string {
	return EnvOrDefault("JWT_SECRET", "dev-insecure-secret")
}

// GenerateToken signs a bearer token for a farmer.
func GenerateToken(farmerID uint, phone string) (string, error) {
	claims := AuthClaims{
		FarmerID: farmerID,
		Phone:    phone,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret()))
}

// ParseToken validates a bearer token and returns its claims.
func ParseToken(tokenStr string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &AuthClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(jwtSecret()), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid || claims.FarmerID == 0 {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
