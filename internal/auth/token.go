package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/sol1corejz/invoicedash/cmd/config"
)

const TokenExp = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

func jwtSecret() []byte {
	if config.JWTSecret != "" {
		return []byte(config.JWTSecret)
	}
	return []byte("your-secret-key")
}

func GenerateToken(userID uuid.UUID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userID": userID.String(),
		"exp":    time.Now().Add(TokenExp).Unix(),
	})

	return token.SignedString(jwtSecret())
}

// ParseUserID validates a session token and extracts the user id.
func ParseUserID(tokenString string) (uuid.UUID, error) {
	if tokenString == "" {
		return uuid.Nil, ErrInvalidToken
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtSecret(), nil
	})

	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	rawID, ok := claims["userID"].(string)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	return userID, nil
}
