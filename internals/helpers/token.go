package helper

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"eventhub_backend/internals/configs"
)

const AccessTokenTTL = 1 * time.Hour

// SignAccessToken issues the HS256 access token carrying the user's email.
func SignAccessToken(email string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
