package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/shoply/server/internal/models"
)

// TokenTTL is the fixed session lifetime. There is no refresh or revocation.
const TokenTTL = 30 * 24 * time.Hour

// Claims embeds the public user projection in the token payload, so the auth
// guard can attach an identity without a database round trip.
type Claims struct {
	User models.PublicUser `json:"user"`
	jwt.RegisteredClaims
}

func GenerateToken(secret []byte, user *models.PublicUser) (string, error) {
	now := time.Now()
	claims := &Claims{
		User: *user,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ParseToken(secret []byte, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
